package highlight

import "strings"

// VacantRoles marks positional roles an admin flagged as having no eligible player ("faltou").
type VacantRoles struct {
	Atacante bool
	Meia     bool
	Zagueiro bool
	Goleiro  bool
}

// Overrides are the per-day admin inputs for highlight selection.
type Overrides struct {
	ZagueiroID string
	Faltou     VacantRoles
}

func (o Overrides) HasZagueiro() bool {
	return strings.TrimSpace(o.ZagueiroID) != ""
}
