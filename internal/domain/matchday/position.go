package matchday

import "strings"

// Position is the closed set of position codes used for highlight candidacy.
type Position string

const (
	PositionAtacante Position = "ATA"
	PositionMeia     Position = "MEIA"
	PositionZagueiro Position = "ZAG"
	PositionGoleiro  Position = "GOL"
	PositionUnknown  Position = ""
)

// Markers are matched in order against the folded label. Midfield markers precede the
// defensive ones so "volante defensivo" stays a midfielder.
var positionMarkers = []struct {
	marker   string
	position Position
}{
	{"gol", PositionGoleiro},
	{"gk", PositionGoleiro},
	{"mei", PositionMeia},
	{"volante", PositionMeia},
	{"mid", PositionMeia},
	{"zag", PositionZagueiro},
	{"def", PositionZagueiro},
	{"lateral", PositionZagueiro},
	{"ata", PositionAtacante},
	{"centroavante", PositionAtacante},
	{"ponta", PositionAtacante},
	{"fwd", PositionAtacante},
	{"forward", PositionAtacante},
}

// NormalizePosition maps a free-text position label to a Position code.
func NormalizePosition(label string) Position {
	text := foldText(label)
	if text == "" {
		return PositionUnknown
	}
	for _, item := range positionMarkers {
		if strings.Contains(text, item.marker) {
			return item.position
		}
	}
	return PositionUnknown
}

func (p Position) Known() bool {
	return p != PositionUnknown
}
