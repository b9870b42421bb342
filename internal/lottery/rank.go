package lottery

import "sort"

// Rank seeds the lottery field: teams ordered worst to best, trimmed to at
// most slots entries. Ties on win percentage go to the team with more points
// against.
func Rank(teams []Team, slots int) []Team {
	ranked := make([]Team, len(teams))
	copy(ranked, teams)

	sort.SliceStable(ranked, func(i, j int) bool {
		pi, pj := ranked[i].WinPct(), ranked[j].WinPct()
		if pi != pj {
			return pi < pj
		}
		return ranked[i].PointsAgainst > ranked[j].PointsAgainst
	})

	if slots < 0 {
		slots = 0
	}
	if len(ranked) > slots {
		ranked = ranked[:slots]
	}
	return ranked
}
