// Package views derives every dashboard view from the canonical league
// data. All functions are pure: they take explicit inputs (including a
// reference time where relevant) and return new values.
package views

import (
	"fmt"

	"github.com/zeeneddie/Sports-League-Management-System/internal/domain/leaguedata"
	"github.com/zeeneddie/Sports-League-Management-System/internal/domain/standing"
)

// FilterPeriodStandings keeps only periods in which at least one team has
// played, renaming them to the locale display label ("Periode N").
func FilterPeriodStandings(data leaguedata.LeagueData) []standing.Period {
	periods := []struct {
		number int
		rows   []standing.TeamStanding
	}{
		{1, data.Period1},
		{2, data.Period2},
		{3, data.Period3},
	}

	out := make([]standing.Period, 0, len(periods))
	for _, period := range periods {
		if len(period.rows) == 0 || !standing.HasPlayedMatches(period.rows) {
			continue
		}
		out = append(out, standing.Period{
			Name:      fmt.Sprintf("Periode %d", period.number),
			Standings: period.rows,
		})
	}

	return out
}
