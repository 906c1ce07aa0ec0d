package httpapi

import (
	"context"
	"fmt"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/riskibarqy/racha-league/internal/domain/highlight"
	"github.com/riskibarqy/racha-league/internal/domain/match"
	"github.com/riskibarqy/racha-league/internal/domain/matchday"
	"github.com/riskibarqy/racha-league/internal/domain/racha"
	"github.com/riskibarqy/racha-league/internal/usecase"
)

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

type previewRequest struct {
	Matches   []previewMatchRecord `json:"matches" validate:"required,min=1,max=500,dive"`
	Overrides previewOverrides     `json:"overrides"`
}

type previewMatchRecord struct {
	ID        string            `json:"id" validate:"max=128"`
	Date      string            `json:"date" validate:"max=64"`
	TeamA     teamReference     `json:"teamA"`
	TeamB     teamReference     `json:"teamB"`
	Score     *previewScore     `json:"score"`
	ScoreA    *int              `json:"scoreA"`
	ScoreB    *int              `json:"scoreB"`
	Presences []previewPresence `json:"presences" validate:"max=100,dive"`
}

type previewScore struct {
	TeamA *int `json:"teamA"`
	TeamB *int `json:"teamB"`
}

type previewPresence struct {
	AthleteID   string        `json:"athleteId" validate:"max=128"`
	AthleteName string        `json:"athleteName" validate:"max=200"`
	Nickname    string        `json:"nickname" validate:"max=200"`
	Position    string        `json:"position" validate:"max=64"`
	Photo       string        `json:"photo" validate:"max=2048"`
	Team        teamReference `json:"team"`
	Status      string        `json:"status" validate:"omitempty,oneof=TITULAR SUBSTITUTO AUSENTE titular substituto ausente"`
	Goals       int           `json:"goals"`
	Assists     int           `json:"assists"`
}

type previewOverrides struct {
	ZagueiroID string        `json:"zagueiroId" validate:"max=128"`
	Faltou     previewFaltou `json:"faltou"`
}

type previewFaltou struct {
	Atacante bool `json:"atacante"`
	Meia     bool `json:"meia"`
	Zagueiro bool `json:"zagueiro"`
	Goleiro  bool `json:"goleiro"`
}

// teamReference accepts either a bare string (id or name) or an {id, name} object.
type teamReference struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (t *teamReference) UnmarshalJSON(data []byte) error {
	var raw string
	if err := jsoniter.Unmarshal(data, &raw); err == nil {
		t.ID, t.Name = "", strings.TrimSpace(raw)
		return nil
	}

	type plain teamReference
	var value plain
	if err := jsoniter.Unmarshal(data, &value); err != nil {
		return fmt.Errorf("team reference must be a string or an object: %w", err)
	}
	*t = teamReference(value)
	return nil
}

func (t teamReference) toTeamRef() match.TeamRef {
	return match.TeamRef{ID: strings.TrimSpace(t.ID), Name: strings.TrimSpace(t.Name)}
}

// toMatches maps the payload to domain matches. The nested score wins over the legacy flat
// scoreA/scoreB, side by side.
func (req previewRequest) toMatches(loc *time.Location) []match.Match {
	out := make([]match.Match, 0, len(req.Matches))
	for i, record := range req.Matches {
		matchID := strings.TrimSpace(record.ID)
		if matchID == "" {
			matchID = fmt.Sprintf("preview-%d", i+1)
		}

		item := match.Match{
			ID:        matchID,
			TeamA:     record.TeamA.toTeamRef(),
			TeamB:     record.TeamB.toTeamRef(),
			Score:     match.Score{TeamA: record.ScoreA, TeamB: record.ScoreB},
			Presences: make([]match.Presence, 0, len(record.Presences)),
		}
		if record.Score != nil {
			if record.Score.TeamA != nil {
				item.Score.TeamA = record.Score.TeamA
			}
			if record.Score.TeamB != nil {
				item.Score.TeamB = record.Score.TeamB
			}
		}
		if playedAt, ok := matchday.ParseMatchDate(record.Date, loc); ok {
			item.PlayedAt = playedAt
		}

		for _, p := range record.Presences {
			item.Presences = append(item.Presences, match.Presence{
				Athlete: match.AthleteRef{
					ID:       strings.TrimSpace(p.AthleteID),
					Name:     p.AthleteName,
					Nickname: p.Nickname,
					Position: p.Position,
					Photo:    p.Photo,
				},
				Team:    p.Team.toTeamRef(),
				Status:  match.NormalizeStatus(p.Status),
				Goals:   p.Goals,
				Assists: p.Assists,
			})
		}
		out = append(out, item)
	}
	return out
}

func (o previewOverrides) toOverrides() highlight.Overrides {
	return highlight.Overrides{
		ZagueiroID: strings.TrimSpace(o.ZagueiroID),
		Faltou: highlight.VacantRoles{
			Atacante: o.Faltou.Atacante,
			Meia:     o.Faltou.Meia,
			Zagueiro: o.Faltou.Zagueiro,
			Goleiro:  o.Faltou.Goleiro,
		},
	}
}

type rachaDTO struct {
	ID        string `json:"id"`
	Slug      string `json:"slug"`
	Name      string `json:"name"`
	City      string `json:"city"`
	IsDefault bool   `json:"isDefault"`
}

type teamPointsDTO struct {
	Team   string `json:"team"`
	Points int    `json:"points"`
}

type teamRowDTO struct {
	Team           string `json:"team"`
	Name           string `json:"name"`
	Played         int    `json:"played"`
	Won            int    `json:"won"`
	Drawn          int    `json:"drawn"`
	Lost           int    `json:"lost"`
	GoalsFor       int    `json:"goalsFor"`
	GoalsAgainst   int    `json:"goalsAgainst"`
	GoalDifference int    `json:"goalDifference"`
	Points         int    `json:"points"`
}

type standingsDTO struct {
	Day      string          `json:"day"`
	Champion *string         `json:"champion"`
	Points   []teamPointsDTO `json:"points"`
	Table    []teamRowDTO    `json:"table"`
}

type highlightCardDTO struct {
	Role         string `json:"role"`
	Title        string `json:"title"`
	AthleteID    string `json:"athleteId,omitempty"`
	AthleteName  string `json:"athleteName"`
	PhotoRef     string `json:"photoRef"`
	StatValue    int    `json:"statValue"`
	StatLabel    string `json:"statLabel"`
	Badge        string `json:"badge"`
	CriteriaText string `json:"criteriaText"`
	Branch       string `json:"branch"`
	Vacant       bool   `json:"vacant"`
}

type dayHighlightsDTO struct {
	Day        string            `json:"day"`
	Champion   *string           `json:"champion"`
	Atacante   *highlightCardDTO `json:"atacante"`
	Meia       *highlightCardDTO `json:"meia"`
	Zagueiro   *highlightCardDTO `json:"zagueiro"`
	Goleiro    *highlightCardDTO `json:"goleiro"`
	Artilheiro *highlightCardDTO `json:"artilheiro"`
	Maestro    *highlightCardDTO `json:"maestro"`
}

type previewDayDTO struct {
	Standings  standingsDTO     `json:"standings"`
	Highlights dayHighlightsDTO `json:"highlights"`
}

type seasonWindowDTO struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type seasonDTO struct {
	AthleteID      string  `json:"athleteId"`
	Name           string  `json:"name"`
	Nickname       string  `json:"nickname,omitempty"`
	Position       string  `json:"position"`
	PhotoRef       string  `json:"photoRef"`
	Games          int     `json:"games"`
	Goals          int     `json:"goals"`
	Assists        int     `json:"assists"`
	ChampionDays   int     `json:"championDays"`
	Wins           int     `json:"wins"`
	Draws          int     `json:"draws"`
	Losses         int     `json:"losses"`
	AverageWinRate float64 `json:"averageWinRate"`
	Score          int     `json:"score"`
}

type athleteSeasonDTO struct {
	Window seasonWindowDTO `json:"window"`
	Season seasonDTO       `json:"season"`
}

type rankingRowDTO struct {
	Rank    int       `json:"rank"`
	Athlete seasonDTO `json:"athlete"`
}

type seasonRankingDTO struct {
	Window seasonWindowDTO `json:"window"`
	Items  []rankingRowDTO `json:"items"`
}

func rachaToDTO(item racha.Racha) rachaDTO {
	return rachaDTO{
		ID:        item.ID,
		Slug:      item.Slug,
		Name:      item.Name,
		City:      item.City,
		IsDefault: item.IsDefault,
	}
}

func championOf(result matchday.DayResult) *string {
	if !result.HasChampion {
		return nil
	}
	key := result.Champion.ChampionKey
	return &key
}

func standingsToDTO(result matchday.DayResult) standingsDTO {
	out := standingsDTO{
		Day:      result.Day,
		Champion: championOf(result),
		Points:   make([]teamPointsDTO, 0, len(result.Champion.Points)),
		Table:    make([]teamRowDTO, 0, len(result.Champion.Points)),
	}
	for _, item := range result.Champion.Points {
		out.Points = append(out.Points, teamPointsDTO{Team: item.Key, Points: item.Points})
	}
	for _, row := range result.Champion.Table() {
		out.Table = append(out.Table, teamRowDTO{
			Team:           row.Key,
			Name:           row.Name,
			Played:         row.Played,
			Won:            row.Won,
			Drawn:          row.Drawn,
			Lost:           row.Lost,
			GoalsFor:       row.GoalsFor,
			GoalsAgainst:   row.GoalsAgainst,
			GoalDifference: row.GoalsFor - row.GoalsAgainst,
			Points:         row.Points,
		})
	}
	return out
}

func dayHighlightsToDTO(result matchday.DayResult) dayHighlightsDTO {
	h := result.Highlights
	return dayHighlightsDTO{
		Day:        result.Day,
		Champion:   championOf(result),
		Atacante:   cardToDTO(h.Atacante),
		Meia:       cardToDTO(h.Meia),
		Zagueiro:   cardToDTO(h.Zagueiro),
		Goleiro:    cardToDTO(h.Goleiro),
		Artilheiro: cardToDTO(h.Artilheiro),
		Maestro:    cardToDTO(h.Maestro),
	}
}

func cardToDTO(card *matchday.HighlightCard) *highlightCardDTO {
	if card == nil {
		return nil
	}

	out := &highlightCardDTO{
		Role:         string(card.Role),
		Title:        card.Title,
		StatValue:    card.StatValue,
		StatLabel:    card.StatLabel,
		Badge:        card.Badge,
		CriteriaText: card.Criteria,
		Branch:       string(card.Branch),
	}
	if stat, ok := card.Athlete(); ok {
		out.AthleteID = stat.AthleteID
		out.AthleteName = stat.DisplayName()
		out.PhotoRef = stat.Photo
		return out
	}
	if vacant, ok := card.Subject.(matchday.PlaceholderVacant); ok {
		out.AthleteName = vacant.RoleLabel
		out.Vacant = true
	}
	return out
}

func windowToDTO(window usecase.SeasonRange) seasonWindowDTO {
	return seasonWindowDTO{From: window.From, To: window.To}
}

func seasonToDTO(summary matchday.SeasonSummary) seasonDTO {
	return seasonDTO{
		AthleteID:      summary.AthleteID,
		Name:           summary.Name,
		Nickname:       summary.Nickname,
		Position:       string(summary.Position),
		PhotoRef:       summary.Photo,
		Games:          summary.Games,
		Goals:          summary.Goals,
		Assists:        summary.Assists,
		ChampionDays:   summary.ChampionDays,
		Wins:           summary.Wins,
		Draws:          summary.Draws,
		Losses:         summary.Losses,
		AverageWinRate: summary.AverageWinRate,
		Score:          summary.Score,
	}
}
