package standing

import "sort"

// TeamStanding represents one league table row. Field names follow the
// fixture-native schema; the normalizer maps API-native spellings onto it.
type TeamStanding struct {
	Team         string `json:"team"`
	Position     int    `json:"position"`
	Played       int    `json:"played"`
	Wins         int    `json:"wins"`
	Draws        int    `json:"draws"`
	Losses       int    `json:"losses"`
	GoalsFor     int    `json:"goals_for"`
	GoalsAgainst int    `json:"goals_against"`
	Points       int    `json:"points"`
	Shirt        string `json:"shirt,omitempty"`
}

// GoalDifference is the standard tie-breaker after points.
func (s TeamStanding) GoalDifference() int {
	return s.GoalsFor - s.GoalsAgainst
}

// Period is a named sub-season with its own mini-standings.
type Period struct {
	Name      string         `json:"name"`
	Standings []TeamStanding `json:"standings"`
}

// HasPlayedMatches reports whether at least one team in the table has a
// played match. Periods are only exposed once play has started.
func HasPlayedMatches(rows []TeamStanding) bool {
	for _, row := range rows {
		if row.Played > 0 {
			return true
		}
	}
	return false
}

// Rank sorts rows by points then goal difference, both descending, and
// renumbers positions. The sort is stable so further ties keep input order.
func Rank(rows []TeamStanding) []TeamStanding {
	ranked := make([]TeamStanding, len(rows))
	copy(ranked, rows)

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Points != ranked[j].Points {
			return ranked[i].Points > ranked[j].Points
		}
		return ranked[i].GoalDifference() > ranked[j].GoalDifference()
	})
	for i := range ranked {
		ranked[i].Position = i + 1
	}

	return ranked
}
