package views

import (
	"strings"

	"github.com/zeeneddie/Sports-League-Management-System/internal/domain/leaguedata"
	"github.com/zeeneddie/Sports-League-Management-System/internal/domain/match"
)

// FeaturedTeamMatches partitions results and program into the featured
// team's played and upcoming games. The team matches when its name is
// contained in either side, resolved across the known home/away field
// spellings in priority order.
func FeaturedTeamMatches(data leaguedata.LeagueData, featuredTeam string) leaguedata.FeaturedMatches {
	out := leaguedata.FeaturedMatches{
		Played:   []match.Match{},
		Upcoming: []match.Match{},
	}
	if featuredTeam == "" {
		return out
	}

	for _, m := range data.Results {
		if involvesTeam(m, featuredTeam) {
			out.Played = append(out.Played, m)
		}
	}
	for _, m := range data.Program {
		if involvesTeam(m, featuredTeam) {
			out.Upcoming = append(out.Upcoming, m)
		}
	}

	out.Played = sortByDate(out.Played)
	out.Upcoming = sortByDate(out.Upcoming)
	return out
}

func involvesTeam(m match.Match, team string) bool {
	return strings.Contains(m.HomeName(), team) || strings.Contains(m.AwayName(), team)
}
