package views

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/zeeneddie/Sports-League-Management-System/internal/domain/leaguedata"
	"github.com/zeeneddie/Sports-League-Management-System/internal/domain/match"
	"github.com/zeeneddie/Sports-League-Management-System/internal/domain/standing"
)

func intPtr(v int) *int { return &v }

func TestFilterPeriodStandings(t *testing.T) {
	t.Parallel()

	data := leaguedata.LeagueData{
		Period1: []standing.TeamStanding{{Team: "A", Played: 2}, {Team: "B", Played: 0}},
		Period2: []standing.TeamStanding{{Team: "A", Played: 0}, {Team: "B", Played: 0}},
	}

	periods := FilterPeriodStandings(data)

	require.Len(t, periods, 1)
	require.Equal(t, "Periode 1", periods[0].Name)
	require.Len(t, periods[0].Standings, 2)
}

func TestLastWeekResults_Window(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 9, 10, 12, 0, 0, 0, time.UTC)
	data := leaguedata.LeagueData{
		Results: []match.Match{
			{Home: "A", Away: "B", Date: "2025-09-08"},
			{Home: "C", Away: "D", Date: "2025-09-06 14:30:00"},
			{Home: "E", Away: "F", Date: "2025-08-01"},
			{Home: "G", Away: "H", Date: "not-a-date"},
		},
	}

	got := LastWeekResults(data, now, false)

	require.Len(t, got, 2)
	require.Equal(t, "2025-09-06 14:30:00", got[0].Date)
	require.Equal(t, "2025-09-08", got[1].Date)
}

func TestLastWeekResults_DemoModeReturnsAllSorted(t *testing.T) {
	t.Parallel()

	now := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	data := leaguedata.LeagueData{
		Results: []match.Match{
			{Home: "C", Away: "D", Date: "2025-09-13"},
			{Home: "A", Away: "B", Date: "2025-09-06"},
		},
	}

	got := LastWeekResults(data, now, true)

	require.Len(t, got, 2)
	require.Equal(t, "2025-09-06", got[0].Date)
}

func TestNextWeekMatches_GroupsByWeekUntilMinimum(t *testing.T) {
	t.Parallel()

	// Saturday 2025-09-06 is ISO week 36.
	now := time.Date(2025, 9, 1, 8, 0, 0, 0, time.UTC)
	program := make([]match.Match, 0, 10)
	for i := 0; i < 5; i++ {
		program = append(program, match.Match{
			Home: "A", Away: "B",
			Date: fmt.Sprintf("2025-09-0%d", 2+i), // week 36
		})
	}
	program = append(program,
		match.Match{Home: "C", Away: "D", Date: "2025-09-13"}, // week 37
		match.Match{Home: "E", Away: "F", Date: "2025-09-20"}, // week 38
		match.Match{Home: "G", Away: "H", Date: "2025-09-27"}, // week 39
	)

	got := NextWeekMatches(leaguedata.LeagueData{Program: program}, now)

	// 5 in week 36 + 1 in week 37 + 1 in week 38 reaches the minimum of 7.
	require.Len(t, got, 7)
	require.Equal(t, "Week 36", got[0].WeekLabel)
	require.Equal(t, "Week 37", got[5].WeekLabel)
	require.Equal(t, "Week 38", got[6].WeekLabel)
}

func TestNextWeekMatches_YearInLabelWhenNotCurrentYear(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 12, 20, 0, 0, 0, 0, time.UTC)
	data := leaguedata.LeagueData{
		Program: []match.Match{
			{Home: "A", Away: "B", Date: "2026-01-10"},
		},
	}

	got := NextWeekMatches(data, now)

	require.Len(t, got, 1)
	require.Equal(t, "Week 2 (2026)", got[0].WeekLabel)
}

func TestNextWeekMatches_FallsBackToRecentFixtures(t *testing.T) {
	t.Parallel()

	// Everything is in the past; the view still shows the tail of the
	// program so the dashboard is never empty.
	now := time.Date(2030, 6, 1, 0, 0, 0, 0, time.UTC)
	program := make([]match.Match, 0, 12)
	for i := 1; i <= 12; i++ {
		program = append(program, match.Match{
			Home: "A", Away: "B",
			Date: fmt.Sprintf("2025-03-%02d", i),
		})
	}

	got := NextWeekMatches(leaguedata.LeagueData{Program: program}, now)

	require.NotEmpty(t, got)
	// Fallback considers the most recent 10 entries and then applies the
	// minimum-count cutoff.
	require.LessOrEqual(t, len(got), 10)
	require.Equal(t, "2025-03-03", got[0].Date)
}

func TestNextWeekMatches_NoFixtureData(t *testing.T) {
	t.Parallel()

	got := NextWeekMatches(leaguedata.LeagueData{}, time.Now())
	require.NotNil(t, got)
	require.Empty(t, got)
}

func TestNextWeekMatches_UnparseableDatesYieldEmptyList(t *testing.T) {
	t.Parallel()

	program := []match.Match{
		{Home: "AVV Columbia", Away: "SV Epe", Date: "not-a-date"},
	}

	got := NextWeekMatches(leaguedata.LeagueData{Program: program}, time.Now())
	require.NotNil(t, got)
	require.Empty(t, got)
}

func TestWeeklyResults_DateOnlyCoverage(t *testing.T) {
	t.Parallel()

	data := leaguedata.LeagueData{
		Results: []match.Match{
			{Home: "A", Away: "B", Date: "2025-09-06"},
			{Home: "C", Away: "D", Date: "2025-09-06"},
			{Home: "E", Away: "F", Date: "2025-09-13"},
			{Home: "G", Away: "H", Date: "2025-09-13 14:30:00"}, // skipped: datetime form
			{Home: "I", Away: "J", Date: "garbage"},             // skipped: unparseable
		},
	}

	got := WeeklyResults(data)

	require.Len(t, got, 2)
	require.Len(t, got["Week 36 (2025)"], 2)
	require.Len(t, got["Week 37 (2025)"], 1)

	// Every parseable date-only result lands in exactly one bucket.
	total := 0
	for _, week := range got {
		total += len(week)
	}
	require.Equal(t, 3, total)
}

func TestFeaturedTeamMatches(t *testing.T) {
	t.Parallel()

	data := leaguedata.LeagueData{
		Results: []match.Match{
			{Home: "AVV Columbia", Away: "Victoria Boys", Date: "2025-09-13"},
			{Home: "SV Epe", Away: "AVV Columbia", Date: "2025-09-06"},
			{Home: "SV Epe", Away: "Victoria Boys", Date: "2025-09-20"},
		},
		Program: []match.Match{
			{HomeTeam: "AVV Columbia", AwayTeam: "Apeldoornse Boys", Date: "2025-09-27"},
		},
	}

	got := FeaturedTeamMatches(data, "Columbia")

	require.Len(t, got.Played, 2)
	require.Equal(t, "2025-09-06", got.Played[0].Date)
	require.Len(t, got.Upcoming, 1)
	require.Equal(t, "AVV Columbia", got.Upcoming[0].HomeName())

	empty := FeaturedTeamMatches(data, "")
	require.Empty(t, empty.Played)
	require.Empty(t, empty.Upcoming)
}

func TestAllMatches_TagsAndOrder(t *testing.T) {
	t.Parallel()

	data := leaguedata.LeagueData{
		Results: []match.Match{
			{Home: "A", Away: "B", Date: "2025-09-06", HomeGoals: intPtr(2), AwayGoals: intPtr(1)},
		},
		Program: []match.Match{
			{Home: "B", Away: "C", Date: "2025-09-20"},
		},
	}

	got := AllMatches(data)

	require.Len(t, got, 2)
	require.Equal(t, "played", got[0].Status)
	require.Equal(t, "upcoming", got[1].Status)
}

func TestCreateTeamMatrix_EndToEnd(t *testing.T) {
	t.Parallel()

	data := leaguedata.LeagueData{
		LeagueTable: []standing.TeamStanding{
			{Team: "A"}, {Team: "B"}, {Team: "C"},
		},
		Results: []match.Match{
			{Home: "A", Away: "B", Date: "2025-09-06", HomeGoals: intPtr(2), AwayGoals: intPtr(1)},
		},
		Program: []match.Match{
			{Home: "B", Away: "C", Date: "2025-09-20 14:30:00"},
		},
	}

	got := CreateTeamMatrix(data)

	require.Equal(t, []string{"A", "B", "C"}, got.Teams)
	require.NotNil(t, got.Cell("A", "B"))
	require.Equal(t, "2-1", *got.Cell("A", "B"))
	require.NotNil(t, got.Cell("B", "C"))
	require.Equal(t, "2025-09-20", *got.Cell("B", "C"))

	for _, home := range got.Teams {
		for _, away := range got.Teams {
			if home == away || (home == "A" && away == "B") || (home == "B" && away == "C") {
				continue
			}
			require.Nil(t, got.Cell(home, away), "cell (%s,%s)", home, away)
		}
	}
}

func TestCreateTeamMatrix_ResultWinsOverFixture(t *testing.T) {
	t.Parallel()

	// The same pair has both a played match and a scheduled fixture; the
	// result must survive regardless of population order.
	data := leaguedata.LeagueData{
		LeagueTable: []standing.TeamStanding{{Team: "A"}, {Team: "B"}},
		Results: []match.Match{
			{Home: "A", Away: "B", Date: "2025-09-06", HomeGoals: intPtr(3), AwayGoals: intPtr(0)},
		},
		Program: []match.Match{
			{Home: "A", Away: "B", Date: "2026-02-14"},
		},
	}

	got := CreateTeamMatrix(data)

	require.NotNil(t, got.Cell("A", "B"))
	require.Equal(t, "3-0", *got.Cell("A", "B"))
}

func TestCreateTeamMatrix_UnresolvableTeamsSkipped(t *testing.T) {
	t.Parallel()

	data := leaguedata.LeagueData{
		LeagueTable: []standing.TeamStanding{{Team: "AVV Columbia"}, {Team: "Victoria Boys"}},
		Results: []match.Match{
			{Home: "Columbia", Away: "SC Elsewhere", Date: "2025-09-06", HomeGoals: intPtr(1), AwayGoals: intPtr(1)},
		},
	}

	got := CreateTeamMatrix(data)

	require.Nil(t, got.Cell("AVV Columbia", "Victoria Boys"))
}
