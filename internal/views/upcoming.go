package views

import (
	"fmt"
	"sort"
	"time"

	"github.com/zeeneddie/Sports-League-Management-System/internal/domain/leaguedata"
	"github.com/zeeneddie/Sports-League-Management-System/internal/domain/match"
)

// MinUpcomingMatches is the cumulative fixture count the week-grouped
// upcoming view keeps adding buckets to reach.
const MinUpcomingMatches = 7

// demoFallbackCount bounds the tail of past fixtures shown when no future
// fixture exists.
const demoFallbackCount = 10

// NextWeekMatches selects fixtures on or after today (date-only
// comparison) and groups them by ISO week starting from the earliest
// selected fixture, adding whole weeks until at least MinUpcomingMatches
// fixtures are collected. When nothing is upcoming the most recent
// fixtures are shown instead, so the view is never empty while any
// fixture data exists. Each returned match carries its week label.
func NextWeekMatches(data leaguedata.LeagueData, now time.Time) []match.Match {
	today := match.Truncate(now)

	future := selectFutureMatches(data.Program, today)
	if len(future) == 0 {
		return []match.Match{}
	}
	future = sortByDate(future)

	firstDate, ok := match.ParseDate(future[0].Date)
	if !ok {
		return []match.Match{}
	}
	_, firstWeek := firstDate.ISOWeek()
	firstYear := firstDate.Year()

	return flattenWeekBuckets(groupByWeek(future, firstWeek, firstYear, now.Year()))
}

func selectFutureMatches(program []match.Match, today time.Time) []match.Match {
	future := make([]match.Match, 0, len(program))
	type dated struct {
		m    match.Match
		date time.Time
	}
	all := make([]dated, 0, len(program))

	for _, m := range program {
		date, ok := match.ParseDate(m.Date)
		if !ok {
			continue
		}
		day := match.Truncate(date)
		all = append(all, dated{m: m, date: day})
		if !day.Before(today) {
			future = append(future, m)
		}
	}

	if len(future) > 0 {
		return future
	}

	// Demo fallback: no future fixtures, show the most recent ones.
	sort.SliceStable(all, func(i, j int) bool { return all[i].date.Before(all[j].date) })
	start := len(all) - demoFallbackCount
	if start < 0 {
		start = 0
	}
	for _, item := range all[start:] {
		future = append(future, item.m)
	}
	return future
}

type weekBucket struct {
	week    int
	year    int
	label   string
	matches []match.Match
}

func groupByWeek(matches []match.Match, firstWeek, firstYear, currentYear int) []weekBucket {
	buckets := make([]weekBucket, 0, 4)
	index := make(map[string]int)
	total := 0

	for _, m := range matches {
		date, ok := match.ParseDate(m.Date)
		if !ok {
			continue
		}
		_, week := date.ISOWeek()
		year := date.Year()

		inRange := year > firstYear || (year == firstYear && week >= firstWeek)
		if !inRange {
			continue
		}

		label := weekLabel(week, year, currentYear)
		pos, ok := index[label]
		if !ok {
			pos = len(buckets)
			index[label] = pos
			buckets = append(buckets, weekBucket{week: week, year: year, label: label})
		}
		buckets[pos].matches = append(buckets[pos].matches, m)

		total++
		if total >= MinUpcomingMatches {
			break
		}
	}

	return buckets
}

func flattenWeekBuckets(buckets []weekBucket) []match.Match {
	sort.SliceStable(buckets, func(i, j int) bool {
		if buckets[i].year != buckets[j].year {
			return buckets[i].year < buckets[j].year
		}
		return buckets[i].week < buckets[j].week
	})

	out := make([]match.Match, 0, MinUpcomingMatches)
	for _, bucket := range buckets {
		for _, m := range bucket.matches {
			m.WeekLabel = bucket.label
			out = append(out, m)
		}
	}
	return out
}

// weekLabel includes the year only when it differs from the current
// calendar year.
func weekLabel(week, year, currentYear int) string {
	if year != currentYear {
		return fmt.Sprintf("Week %d (%d)", week, year)
	}
	return fmt.Sprintf("Week %d", week)
}
