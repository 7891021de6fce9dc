package views

import (
	"fmt"

	"github.com/zeeneddie/Sports-League-Management-System/internal/domain/leaguedata"
	"github.com/zeeneddie/Sports-League-Management-System/internal/domain/match"
)

// WeeklyResults groups played results by ISO week. Only date-only inputs
// are accepted here; entries with a time component or an unparseable date
// are silently skipped. That is stricter than NextWeekMatches, which
// accepts both forms — the asymmetry is preserved as observed upstream.
// Labels always carry the year. Matches within a week are date-ascending.
func WeeklyResults(data leaguedata.LeagueData) map[string][]match.Match {
	out := make(map[string][]match.Match)

	for _, m := range data.Results {
		date, ok := match.ParseDateOnly(m.Date)
		if !ok {
			continue
		}
		_, week := date.ISOWeek()
		label := fmt.Sprintf("Week %d (%d)", week, date.Year())
		out[label] = append(out[label], m)
	}

	for label := range out {
		out[label] = sortByDate(out[label])
	}

	return out
}
