package matchday

import (
	"strings"

	"github.com/riskibarqy/racha-league/internal/domain/match"
)

const (
	athleteKeyIDPrefix   = "id:"
	athleteKeyNamePrefix = "name:"
)

// AthleteResolver maps presence athlete references to a stable key.
//
// Resolution order: explicit athlete id, then the id already seen for the same normalized
// name, then a composite of name, match and team. The name tier can merge two athletes that share
// a display name; only presences without an id are exposed to it.
type AthleteResolver struct {
	idByName map[string]string
}

func NewAthleteResolver(matches []match.Match) AthleteResolver {
	r := AthleteResolver{idByName: make(map[string]string)}
	for _, item := range matches {
		for _, presence := range item.Presences {
			id := strings.TrimSpace(presence.Athlete.ID)
			if id == "" {
				continue
			}
			for _, name := range []string{presence.Athlete.Name, presence.Athlete.Nickname} {
				normalized := NormalizeName(name)
				if normalized == "" {
					continue
				}
				if _, exists := r.idByName[normalized]; !exists {
					r.idByName[normalized] = id
				}
			}
		}
	}
	return r
}

// Resolve returns the athlete key for ref as seen in matchID on teamKey.
func (r AthleteResolver) Resolve(ref match.AthleteRef, matchID, teamKey string) string {
	if id := strings.TrimSpace(ref.ID); id != "" {
		return AthleteIDKey(id)
	}

	name := NormalizeName(ref.Name)
	if name == "" {
		name = NormalizeName(ref.Nickname)
	}
	if id, ok := r.idByName[name]; ok && name != "" {
		return AthleteIDKey(id)
	}

	return athleteKeyNamePrefix + name + "@" + matchID + "/" + teamKey
}

// AthleteIDKey is the key used for athletes resolved by id.
func AthleteIDKey(id string) string {
	return athleteKeyIDPrefix + strings.TrimSpace(id)
}

func athleteIDFromKey(key string) string {
	if strings.HasPrefix(key, athleteKeyIDPrefix) {
		return strings.TrimPrefix(key, athleteKeyIDPrefix)
	}
	return ""
}

func NormalizeName(name string) string {
	return foldText(name)
}
