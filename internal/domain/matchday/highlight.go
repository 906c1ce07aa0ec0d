package matchday

import (
	"strings"

	"github.com/riskibarqy/racha-league/internal/domain/highlight"
)

type Role string

const (
	RoleAtacante   Role = "atacante"
	RoleMeia       Role = "meia"
	RoleZagueiro   Role = "zagueiro"
	RoleGoleiro    Role = "goleiro"
	RoleArtilheiro Role = "artilheiro"
	RoleMaestro    Role = "maestro"
)

// Branch names the step of the selection chain that produced a card.
type Branch string

const (
	BranchChampionRoster Branch = "champion_roster"
	BranchDayPool        Branch = "day_pool"
	BranchDayPoolFirst   Branch = "day_pool_first"
	BranchDayLeader      Branch = "day_leader"
	BranchManual         Branch = "manual"
	BranchVacant         Branch = "vacant"
)

const (
	BadgeAutomatic = "Automático"
	BadgeManual    = "Manual"
	BadgeVacant    = "Faltou"
)

// HighlightSubject is either a RealAthlete or a PlaceholderVacant.
type HighlightSubject interface {
	highlightSubject()
}

type RealAthlete struct {
	Stat AthleteStat
}

type PlaceholderVacant struct {
	RoleLabel string
}

func (RealAthlete) highlightSubject()       {}
func (PlaceholderVacant) highlightSubject() {}

type HighlightCard struct {
	Role      Role
	Title     string
	Subject   HighlightSubject
	StatValue int
	StatLabel string
	Badge     string
	Criteria  string
	Branch    Branch
}

// Athlete returns the stat line behind the card, if the subject is a real athlete.
func (c *HighlightCard) Athlete() (AthleteStat, bool) {
	if c == nil {
		return AthleteStat{}, false
	}
	athlete, ok := c.Subject.(RealAthlete)
	if !ok {
		return AthleteStat{}, false
	}
	return athlete.Stat, true
}

func (c *HighlightCard) Vacant() bool {
	if c == nil {
		return false
	}
	_, ok := c.Subject.(PlaceholderVacant)
	return ok
}

// Highlights is the day bundle; a nil card means no candidate.
type Highlights struct {
	Atacante   *HighlightCard
	Meia       *HighlightCard
	Zagueiro   *HighlightCard
	Goleiro    *HighlightCard
	Artilheiro *HighlightCard
	Maestro    *HighlightCard
}

// Cards returns the non-nil cards in display order.
func (h Highlights) Cards() []*HighlightCard {
	all := []*HighlightCard{h.Atacante, h.Meia, h.Zagueiro, h.Goleiro, h.Artilheiro, h.Maestro}
	out := make([]*HighlightCard, 0, len(all))
	for _, card := range all {
		if card != nil {
			out = append(out, card)
		}
	}
	return out
}

type roleRule struct {
	role           Role
	title          string
	roleLabel      string
	position       Position
	primary        func(AthleteStat) int
	secondary      func(AthleteStat) int
	statLabel      string
	rosterCriteria string
	poolCriteria   string
}

var (
	atacanteRule = roleRule{
		role: RoleAtacante, title: "Atacante do Dia", roleLabel: "Atacante", position: PositionAtacante,
		primary: byGoals, secondary: byAssists, statLabel: "gols",
		rosterCriteria: "Mais gols no time campeão",
		poolCriteria:   "Mais gols entre os atacantes do dia",
	}
	meiaRule = roleRule{
		role: RoleMeia, title: "Meia do Dia", roleLabel: "Meia", position: PositionMeia,
		primary: byAssists, secondary: byGoals, statLabel: "assistências",
		rosterCriteria: "Mais assistências no time campeão",
		poolCriteria:   "Mais assistências entre os meias do dia",
	}
	zagueiroRule = roleRule{
		role: RoleZagueiro, title: "Zagueiro do Dia", roleLabel: "Zagueiro", position: PositionZagueiro,
		primary: byGames, secondary: byGoals, statLabel: "jogos",
		rosterCriteria: "Mais jogos no time campeão",
		poolCriteria:   "Primeiro zagueiro do dia",
	}
	goleiroRule = roleRule{
		role: RoleGoleiro, title: "Goleiro do Dia", roleLabel: "Goleiro", position: PositionGoleiro,
		primary: byGames, secondary: byGoals, statLabel: "jogos",
		rosterCriteria: "Mais jogos no time campeão",
		poolCriteria:   "Primeiro goleiro do dia",
	}
	artilheiroRule = roleRule{
		role: RoleArtilheiro, title: "Artilheiro do Dia", roleLabel: "Artilheiro",
		primary: byGoals, secondary: byAssists, statLabel: "gols",
		poolCriteria: "Mais gols do dia",
	}
	maestroRule = roleRule{
		role: RoleMaestro, title: "Maestro do Dia", roleLabel: "Maestro",
		primary: byAssists, secondary: byGoals, statLabel: "assistências",
		poolCriteria: "Mais assistências do dia",
	}
)

const (
	manualCriteria = "Escolhido pelo administrador"
	vacantCriteria = "Nenhum jogador elegível no dia"
)

// SelectHighlights picks the day's highlight athletes. roster holds the champion team's athlete
// keys (empty when the day has no champion) and pool the day-wide stats.
func SelectHighlights(roster []string, pool StatPool, overrides highlight.Overrides) Highlights {
	inRoster := make(map[string]struct{}, len(roster))
	for _, key := range roster {
		inRoster[key] = struct{}{}
	}

	out := Highlights{
		Artilheiro: rankedPoolCard(artilheiroRule, pool.All(), BranchDayLeader),
		Maestro:    rankedPoolCard(maestroRule, pool.All(), BranchDayLeader),
	}

	if overrides.Faltou.Atacante {
		out.Atacante = vacantCard(atacanteRule)
	} else {
		out.Atacante = rankedPositionCard(atacanteRule, pool, inRoster)
	}

	if overrides.Faltou.Meia {
		out.Meia = vacantCard(meiaRule)
	} else {
		out.Meia = rankedPositionCard(meiaRule, pool, inRoster)
	}

	switch {
	case overrides.Faltou.Zagueiro:
		out.Zagueiro = vacantCard(zagueiroRule)
	case overrides.HasZagueiro():
		out.Zagueiro = manualCard(zagueiroRule, pool, overrides.ZagueiroID)
	default:
		out.Zagueiro = rosterThenFirstCard(zagueiroRule, pool, inRoster)
	}

	if overrides.Faltou.Goleiro {
		out.Goleiro = vacantCard(goleiroRule)
	} else {
		out.Goleiro = rosterThenFirstCard(goleiroRule, pool, inRoster)
	}

	return out
}

func rankedPositionCard(rule roleRule, pool StatPool, inRoster map[string]struct{}) *HighlightCard {
	if card := rosterCard(rule, pool, inRoster); card != nil {
		return card
	}
	return rankedPoolCard(rule, positionCandidates(pool, rule.position), BranchDayPool)
}

func rosterThenFirstCard(rule roleRule, pool StatPool, inRoster map[string]struct{}) *HighlightCard {
	if card := rosterCard(rule, pool, inRoster); card != nil {
		return card
	}
	return firstByPosition(rule, pool)
}

func rosterCard(rule roleRule, pool StatPool, inRoster map[string]struct{}) *HighlightCard {
	candidates := pool.Filter(func(s AthleteStat) bool {
		if s.Position != rule.position {
			return false
		}
		_, ok := inRoster[s.Key]
		return ok
	})
	best, ok := PickTop(candidates, rule.primary, rule.secondary)
	if !ok {
		return nil
	}
	return athleteCard(rule, best, BadgeAutomatic, rule.rosterCriteria, BranchChampionRoster)
}

func rankedPoolCard(rule roleRule, candidates []AthleteStat, branch Branch) *HighlightCard {
	best, ok := PickTop(candidates, rule.primary, rule.secondary)
	if !ok {
		return nil
	}
	return athleteCard(rule, best, BadgeAutomatic, rule.poolCriteria, branch)
}

// firstByPosition is the unranked fallback: the first athlete of the position in pool order,
// with no ordering by stats.
func firstByPosition(rule roleRule, pool StatPool) *HighlightCard {
	candidates := positionCandidates(pool, rule.position)
	if len(candidates) == 0 {
		return nil
	}
	return athleteCard(rule, candidates[0], BadgeAutomatic, rule.poolCriteria, BranchDayPoolFirst)
}

func manualCard(rule roleRule, pool StatPool, athleteID string) *HighlightCard {
	athleteID = strings.TrimSpace(athleteID)
	stat, ok := pool.GetByAthleteID(athleteID)
	if !ok {
		stat = AthleteStat{
			Key:       AthleteIDKey(athleteID),
			AthleteID: athleteID,
			Position:  rule.position,
		}
	}
	return athleteCard(rule, stat, BadgeManual, manualCriteria, BranchManual)
}

func vacantCard(rule roleRule) *HighlightCard {
	return &HighlightCard{
		Role:      rule.role,
		Title:     rule.title,
		Subject:   PlaceholderVacant{RoleLabel: rule.roleLabel},
		StatLabel: rule.statLabel,
		Badge:     BadgeVacant,
		Criteria:  vacantCriteria,
		Branch:    BranchVacant,
	}
}

func athleteCard(rule roleRule, stat AthleteStat, badge, criteria string, branch Branch) *HighlightCard {
	return &HighlightCard{
		Role:      rule.role,
		Title:     rule.title,
		Subject:   RealAthlete{Stat: stat},
		StatValue: rule.primary(stat),
		StatLabel: rule.statLabel,
		Badge:     badge,
		Criteria:  criteria,
		Branch:    branch,
	}
}

func positionCandidates(pool StatPool, position Position) []AthleteStat {
	return pool.Filter(func(s AthleteStat) bool {
		return s.Position == position
	})
}
