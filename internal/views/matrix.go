package views

import (
	"github.com/zeeneddie/Sports-League-Management-System/internal/domain/leaguedata"
	"github.com/zeeneddie/Sports-League-Management-System/internal/domain/match"
	"github.com/zeeneddie/Sports-League-Management-System/internal/teamname"
)

// CreateTeamMatrix builds the full team-vs-team relation over the league
// table's teams. Played results write "H-A" into their cell; fixtures
// write a date-only string, but never over an existing result. Matches
// whose team names cannot be resolved to the table are skipped; messy
// upstream naming is expected, not an error.
func CreateTeamMatrix(data leaguedata.LeagueData) leaguedata.TeamMatrix {
	teams := make([]string, 0, len(data.LeagueTable))
	for _, row := range data.LeagueTable {
		if row.Team != "" {
			teams = append(teams, row.Team)
		}
	}

	matrix := make(map[string]map[string]*string, len(teams))
	for _, home := range teams {
		row := make(map[string]*string, len(teams)-1)
		for _, away := range teams {
			if home != away {
				row[away] = nil
			}
		}
		matrix[home] = row
	}

	for _, m := range data.Results {
		home := teamname.ResolveInList(m.HomeName(), teams)
		away := teamname.ResolveInList(m.AwayName(), teams)
		if home == "" || away == "" || home == away {
			continue
		}

		homeGoals, homeOK := m.HomeScore()
		awayGoals, awayOK := m.AwayScore()
		if !homeOK || !awayOK {
			continue
		}

		result := match.FormatResult(homeGoals, awayGoals)
		matrix[home][away] = &result
	}

	for _, m := range data.Program {
		home := teamname.ResolveInList(m.HomeName(), teams)
		away := teamname.ResolveInList(m.AwayName(), teams)
		if home == "" || away == "" || home == away {
			continue
		}

		// A result always wins over a prospective date.
		if matrix[home][away] != nil {
			continue
		}
		date := match.DateOnly(m.Date)
		matrix[home][away] = &date
	}

	return leaguedata.TeamMatrix{Teams: teams, Matrix: matrix}
}
