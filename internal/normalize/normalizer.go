// Package normalize converts raw league payloads into the canonical
// schema. The hollandsevelden API and the bundled fixture file disagree
// on field names (matches/played, ties/draws, goalsFor/goals_for), so
// every canonical field declares an ordered list of source-field synonyms
// and one generic resolver takes the first present.
package normalize

import (
	"strconv"
	"strings"

	"github.com/zeeneddie/Sports-League-Management-System/internal/domain/leaguedata"
	"github.com/zeeneddie/Sports-League-Management-System/internal/domain/match"
	"github.com/zeeneddie/Sports-League-Management-System/internal/domain/standing"
)

// Ordered synonym candidates per canonical field, shared with every
// consumer that needs to guess upstream field names.
var (
	TeamFields      = []string{"team", "name"}
	PlayedFields    = []string{"played", "matches"}
	DrawsFields     = []string{"draws", "ties"}
	GoalsForFields  = []string{"goals_for", "goalsFor"}
	GoalsAgstFields = []string{"goals_against", "goalsAgainst"}

	HomeFields      = []string{"home", "hometeam", "home_team"}
	AwayFields      = []string{"away", "awayteam", "away_team"}
	HomeScoreFields = []string{"homeGoals", "homescore", "home_score"}
	AwayScoreFields = []string{"awayGoals", "awayscore", "away_score"}
)

// Normalize converts one raw competition payload into the canonical
// schema. Missing fields default to zero values; the caller never needs
// to know which naming convention the payload used.
func Normalize(raw map[string]any) leaguedata.LeagueData {
	if raw == nil {
		return leaguedata.LeagueData{}
	}

	return leaguedata.LeagueData{
		LeagueTable: normalizeStandings(listValue(raw, "leaguetable")),
		Period1:     normalizeStandings(listValue(raw, "period1")),
		Period2:     normalizeStandings(listValue(raw, "period2")),
		Period3:     normalizeStandings(listValue(raw, "period3")),
		Results:     normalizeMatches(listValue(raw, "results")),
		Program:     normalizeMatches(listValue(raw, "program")),
	}
}

// normalizeStandings maps rows onto the canonical schema and re-ranks
// them. Upstream position values are not trusted; the table order is
// recomputed from points and goal difference.
func normalizeStandings(rows []any) []standing.TeamStanding {
	out := make([]standing.TeamStanding, 0, len(rows))
	for _, row := range rows {
		fields, ok := row.(map[string]any)
		if !ok {
			continue
		}
		out = append(out, standing.TeamStanding{
			Team:         stringField(fields, TeamFields...),
			Played:       intField(fields, PlayedFields...),
			Wins:         intField(fields, "wins"),
			Draws:        intField(fields, DrawsFields...),
			Losses:       intField(fields, "losses"),
			GoalsFor:     intField(fields, GoalsForFields...),
			GoalsAgainst: intField(fields, GoalsAgstFields...),
			Points:       intField(fields, "points"),
			Shirt:        stringField(fields, "shirt"),
		})
	}
	return standing.Rank(out)
}

func normalizeMatches(rows []any) []match.Match {
	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		fields, ok := row.(map[string]any)
		if !ok {
			continue
		}
		out = append(out, match.Match{
			Home:      stringField(fields, HomeFields...),
			Away:      stringField(fields, AwayFields...),
			Date:      stringField(fields, "date"),
			HomeGoals: scoreField(fields, HomeScoreFields...),
			AwayGoals: scoreField(fields, AwayScoreFields...),
			Status:    stringField(fields, "status"),
			Result:    stringField(fields, "result", "uitslag"),
			Minute:    stringField(fields, "minute"),
			Source:    stringField(fields, "source"),
		})
	}
	return out
}

func listValue(fields map[string]any, key string) []any {
	list, _ := fields[key].([]any)
	return list
}

// stringField takes the first present, non-empty candidate.
func stringField(fields map[string]any, candidates ...string) string {
	for _, key := range candidates {
		value, ok := fields[key]
		if !ok {
			continue
		}
		if s, ok := value.(string); ok && strings.TrimSpace(s) != "" {
			return s
		}
	}
	return ""
}

// intField takes the first present candidate coercible to an integer.
func intField(fields map[string]any, candidates ...string) int {
	for _, key := range candidates {
		if n, ok := coerceInt(fields[key]); ok {
			return n
		}
	}
	return 0
}

// scoreField distinguishes "no score yet" (nil) from an actual zero.
func scoreField(fields map[string]any, candidates ...string) *int {
	for _, key := range candidates {
		value, ok := fields[key]
		if !ok || value == nil {
			continue
		}
		if s, isString := value.(string); isString && strings.TrimSpace(s) == "" {
			continue
		}
		if n, ok := coerceInt(value); ok {
			return &n
		}
	}
	return nil
}

func coerceInt(value any) (int, bool) {
	switch v := value.(type) {
	case float64:
		return int(v), true
	case int:
		return v, true
	case int64:
		return int(v), true
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}
