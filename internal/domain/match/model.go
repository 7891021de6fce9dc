package match

import (
	"fmt"
	"strings"
	"time"
)

const (
	StatusScheduled = "scheduled"
	StatusLive      = "live"
	StatusHalfTime  = "half-time"
	StatusFinished  = "finished"
	StatusCancelled = "cancelled"

	// Dutch display values written by the live merger, kept as the
	// dashboard renders them verbatim.
	DisplayFinished = "Afgelopen"
	DisplayHalfTime = "Rust"
	DisplayLive     = "Live"
)

const (
	SourceAPI       = "api"
	SourceFixture   = "fixture"
	SourceScrape    = "scrape"
	SourceLiveMerge = "live-merge"
)

// Match is the atomic entity: one played or scheduled game. Upstream
// sources disagree on field names, so every alternate spelling keeps its
// own tag and Home()/Away()/HomeScore()/AwayScore() resolve them in a
// fixed priority order.
type Match struct {
	Home     string `json:"home,omitempty"`
	HomeTeam string `json:"hometeam,omitempty"`
	HomeAlt  string `json:"home_team,omitempty"`
	Away     string `json:"away,omitempty"`
	AwayTeam string `json:"awayteam,omitempty"`
	AwayAlt  string `json:"away_team,omitempty"`

	Date string `json:"date,omitempty"`

	HomeGoals     *int `json:"homeGoals,omitempty"`
	HomeScoreOld  *int `json:"homescore,omitempty"`
	HomeScoreSnak *int `json:"home_score,omitempty"`
	AwayGoals     *int `json:"awayGoals,omitempty"`
	AwayScoreOld  *int `json:"awayscore,omitempty"`
	AwayScoreSnak *int `json:"away_score,omitempty"`

	Status    string `json:"status,omitempty"`
	Result    string `json:"result,omitempty"`
	Minute    string `json:"minute,omitempty"`
	WeekLabel string `json:"week_label,omitempty"`

	IsLive          bool    `json:"isLive,omitempty"`
	LastUpdate      string  `json:"lastUpdate,omitempty"`
	LiveSource      string  `json:"liveSource,omitempty"`
	MatchConfidence float64 `json:"matchConfidence,omitempty"`
	Source          string  `json:"source,omitempty"`
}

// HomeName resolves the home team across the known field spellings.
func (m Match) HomeName() string {
	return firstNonEmpty(m.Home, m.HomeTeam, m.HomeAlt)
}

// AwayName resolves the away team across the known field spellings.
func (m Match) AwayName() string {
	return firstNonEmpty(m.Away, m.AwayTeam, m.AwayAlt)
}

// HomeScore resolves the home goal count; zero is a valid score, absence
// means the match has not been played.
func (m Match) HomeScore() (int, bool) {
	return firstScore(m.HomeGoals, m.HomeScoreOld, m.HomeScoreSnak)
}

// AwayScore resolves the away goal count.
func (m Match) AwayScore() (int, bool) {
	return firstScore(m.AwayGoals, m.AwayScoreOld, m.AwayScoreSnak)
}

// FormatResult renders the display result string once both goals are known.
func FormatResult(homeGoals, awayGoals int) string {
	return fmt.Sprintf("%d-%d", homeGoals, awayGoals)
}

// LiveScore is an ephemeral scraped record. It drives a merge into
// persisted matches and is never itself the system of record.
type LiveScore struct {
	Home       string `json:"home"`
	Away       string `json:"away"`
	HomeGoals  int    `json:"homeGoals"`
	AwayGoals  int    `json:"awayGoals"`
	Minute     string `json:"minute,omitempty"`
	Status     string `json:"status,omitempty"`
	LastUpdate string `json:"lastUpdate,omitempty"`
	Source     string `json:"source,omitempty"`
}

const (
	dateOnlyLayout = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04:05"
)

// ParseDate accepts both textual date forms the upstream sources emit:
// date-only and date-with-time.
func ParseDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	layout := dateOnlyLayout
	if strings.Contains(value, " ") {
		layout = dateTimeLayout
	}
	parsed, err := time.Parse(layout, value)
	if err != nil {
		return time.Time{}, false
	}
	return parsed, true
}

// ParseDateOnly accepts the date-only form exclusively.
func ParseDateOnly(value string) (time.Time, bool) {
	parsed, err := time.Parse(dateOnlyLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, false
	}
	return parsed, true
}

// DateOnly strips a trailing time component from a raw date string.
func DateOnly(value string) string {
	if idx := strings.IndexByte(value, ' '); idx >= 0 {
		return value[:idx]
	}
	return value
}

// Truncate drops the time-of-day for date-only comparisons.
func Truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

func firstScore(values ...*int) (int, bool) {
	for _, v := range values {
		if v != nil {
			return *v, true
		}
	}
	return 0, false
}
