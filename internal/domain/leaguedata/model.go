package leaguedata

import (
	"github.com/zeeneddie/Sports-League-Management-System/internal/domain/match"
	"github.com/zeeneddie/Sports-League-Management-System/internal/domain/standing"
)

// LeagueData is the canonical in-memory schema every upstream payload is
// normalized into, independent of source field naming.
type LeagueData struct {
	LeagueTable []standing.TeamStanding `json:"leaguetable"`
	Period1     []standing.TeamStanding `json:"period1"`
	Period2     []standing.TeamStanding `json:"period2"`
	Period3     []standing.TeamStanding `json:"period3"`
	Results     []match.Match           `json:"results"`
	Program     []match.Match           `json:"program"`
}

// IsEmpty reports whether no collection holds any data at all.
func (d LeagueData) IsEmpty() bool {
	return len(d.LeagueTable) == 0 && len(d.Results) == 0 && len(d.Program) == 0
}

// FeaturedMatches partitions the featured team's games.
type FeaturedMatches struct {
	Played   []match.Match `json:"played"`
	Upcoming []match.Match `json:"upcoming"`
}

// TeamMatrix is the full team-vs-team relation. A cell holds nil (no
// data), a result string "H-A", or a bare fixture date.
type TeamMatrix struct {
	Teams  []string                      `json:"teams"`
	Matrix map[string]map[string]*string `json:"matrix"`
}

// Cell returns the value for an ordered (home, away) pair.
func (m TeamMatrix) Cell(home, away string) *string {
	row, ok := m.Matrix[home]
	if !ok {
		return nil
	}
	return row[away]
}

// Document is the one persisted snapshot: canonical data plus every
// derived view, replaced wholesale on each successful refresh cycle.
type Document struct {
	RawData             LeagueData               `json:"raw_data"`
	LeagueTable         []standing.TeamStanding  `json:"league_table"`
	PeriodStandings     []standing.Period        `json:"period_standings"`
	LastWeekResults     []match.Match            `json:"last_week_results"`
	NextWeekMatches     []match.Match            `json:"next_week_matches"`
	FeaturedTeamMatches FeaturedMatches          `json:"featured_team_matches"`
	WeeklyResults       map[string][]match.Match `json:"weekly_results"`
	TeamMatrix          TeamMatrix               `json:"team_matrix"`
	AllMatches          []match.Match            `json:"all_matches"`
	LastUpdated         string                   `json:"last_updated"`
}
