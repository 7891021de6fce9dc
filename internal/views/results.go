package views

import (
	"sort"
	"time"

	"github.com/zeeneddie/Sports-League-Management-System/internal/domain/leaguedata"
	"github.com/zeeneddie/Sports-League-Management-System/internal/domain/match"
)

// DefaultResultsWindowDays is the lookback window for recent results.
const DefaultResultsWindowDays = 7

// LastWeekResults filters results to the last week, sorted ascending by
// date. Unparseable dates are skipped per record. In demo mode the date
// filter is bypassed entirely: the bundled fixture data is not current,
// and the dashboard should always have something to show.
func LastWeekResults(data leaguedata.LeagueData, now time.Time, demoMode bool) []match.Match {
	if demoMode {
		return sortByDate(data.Results)
	}

	weekAgo := now.AddDate(0, 0, -DefaultResultsWindowDays)

	out := make([]match.Match, 0, len(data.Results))
	for _, m := range data.Results {
		date, ok := match.ParseDate(m.Date)
		if !ok {
			continue
		}
		if !date.Before(weekAgo) && !date.After(now) {
			out = append(out, m)
		}
	}

	return sortByDate(out)
}

// AllMatches concatenates played results and upcoming fixtures into one
// date-ordered list. Entries appearing in both sets are kept twice; no
// reconciliation happens at this stage.
func AllMatches(data leaguedata.LeagueData) []match.Match {
	out := make([]match.Match, 0, len(data.Results)+len(data.Program))

	for _, m := range data.Results {
		m.Status = "played"
		out = append(out, m)
	}
	for _, m := range data.Program {
		m.Status = "upcoming"
		out = append(out, m)
	}

	return sortByDate(out)
}

// sortByDate orders matches ascending by their raw date string. Upstream
// dates are ISO formatted, so lexical order is chronological order.
func sortByDate(matches []match.Match) []match.Match {
	out := make([]match.Match, len(matches))
	copy(out, matches)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date < out[j].Date
	})
	return out
}
