package matchday

// PickTop returns the candidate with the highest primary key, then the highest secondary key.
// Full ties resolve to the candidate that appears first in candidates.
func PickTop[T any](candidates []T, primary, secondary func(T) int) (T, bool) {
	var best T
	if len(candidates) == 0 {
		return best, false
	}

	best = candidates[0]
	bestPrimary, bestSecondary := primary(best), secondary(best)
	for _, candidate := range candidates[1:] {
		p, s := primary(candidate), secondary(candidate)
		if p > bestPrimary || (p == bestPrimary && s > bestSecondary) {
			best, bestPrimary, bestSecondary = candidate, p, s
		}
	}

	return best, true
}

func byGoals(s AthleteStat) int   { return s.Goals }
func byAssists(s AthleteStat) int { return s.Assists }
func byGames(s AthleteStat) int   { return s.Games }
