// Package voetbaloost scrapes live amateur scores from voetbaloost.nl.
// The page carries no stable markup contract, so parsing works on row
// text with a couple of regexes and ignores anything it cannot read.
package voetbaloost

import (
	"context"
	"io"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	crerr "github.com/cockroachdb/errors"

	"github.com/zeeneddie/Sports-League-Management-System/internal/domain/match"
	"github.com/zeeneddie/Sports-League-Management-System/internal/platform/logging"
	"github.com/zeeneddie/Sports-League-Management-System/internal/teamname"
)

const (
	defaultLiveURL = "https://www.voetbaloost.nl/live"
	defaultTimeout = 10 * time.Second

	// SourceName tags merged scores with their origin.
	SourceName = "voetbaloost"
)

// Row text looks like "AVV Columbia 2 - 1 SV Epe" with an optional
// minute or phase marker trailing it.
var (
	scoreLineRe = regexp.MustCompile(`^(.+?)\s+(\d{1,2})\s*-\s*(\d{1,2})\s+(.+?)$`)
	minuteRe    = regexp.MustCompile(`(\d{1,3}(?:\+\d{1,2})?)'`)
)

// Row selectors tried in order; the page has changed markup before.
var rowSelectors = []string{
	"div.live-match",
	"tr.match-row",
	"li.match",
	"div.wedstrijd",
}

type ScraperConfig struct {
	HTTPClient *http.Client
	LiveURL    string
	Matcher    *teamname.Matcher
	Logger     *logging.Logger
}

type Scraper struct {
	httpClient *http.Client
	liveURL    string
	matcher    *teamname.Matcher
	logger     *logging.Logger

	now func() time.Time
}

func NewScraper(cfg ScraperConfig) *Scraper {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	liveURL := strings.TrimSpace(cfg.LiveURL)
	if liveURL == "" {
		liveURL = defaultLiveURL
	}
	matcher := cfg.Matcher
	if matcher == nil {
		matcher = teamname.New()
	}
	return &Scraper{
		httpClient: httpClient,
		liveURL:    liveURL,
		matcher:    matcher,
		logger:     logger,
		now:        time.Now,
	}
}

// FetchLiveScores downloads the live page and returns the scores whose
// teams resolve against targetTeams. An empty target list keeps
// everything.
func (s *Scraper) FetchLiveScores(ctx context.Context, targetTeams []string) ([]match.LiveScore, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.liveURL, nil)
	if err != nil {
		return nil, crerr.Wrap(err, "build live page request")
	}
	req.Header.Set("accept", "text/html")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, crerr.Wrap(err, "fetch live page")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, crerr.Newf("live page status=%d", resp.StatusCode)
	}

	scores, err := s.Parse(resp.Body)
	if err != nil {
		return nil, err
	}

	filtered := s.filterTargets(scores, targetTeams)
	s.logger.InfoContext(ctx, "live page scraped",
		"url", s.liveURL,
		"scores", len(scores),
		"kept", len(filtered),
	)
	return filtered, nil
}

// Parse extracts live scores from a page body.
func (s *Scraper) Parse(body io.Reader) ([]match.LiveScore, error) {
	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return nil, crerr.Wrap(err, "parse live page")
	}

	stamp := s.now().UTC().Format(time.RFC3339)

	var scores []match.LiveScore
	for _, selector := range rowSelectors {
		doc.Find(selector).Each(func(_ int, row *goquery.Selection) {
			if score, ok := parseRow(row, stamp); ok {
				scores = append(scores, score)
			}
		})
		if len(scores) > 0 {
			break
		}
	}
	return scores, nil
}

func parseRow(row *goquery.Selection, stamp string) (match.LiveScore, bool) {
	text := strings.Join(strings.Fields(row.Text()), " ")
	if text == "" {
		return match.LiveScore{}, false
	}

	status, text := extractStatus(text)
	minute := ""
	if m := minuteRe.FindStringSubmatch(text); m != nil {
		minute = m[1] + "'"
		text = strings.TrimSpace(strings.Replace(text, m[0], "", 1))
	}

	groups := scoreLineRe.FindStringSubmatch(text)
	if groups == nil {
		return match.LiveScore{}, false
	}

	homeGoals, err := strconv.Atoi(groups[2])
	if err != nil {
		return match.LiveScore{}, false
	}
	awayGoals, err := strconv.Atoi(groups[3])
	if err != nil {
		return match.LiveScore{}, false
	}

	return match.LiveScore{
		Home:       strings.TrimSpace(groups[1]),
		Away:       strings.TrimSpace(groups[4]),
		HomeGoals:  homeGoals,
		AwayGoals:  awayGoals,
		Minute:     minute,
		Status:     status,
		LastUpdate: stamp,
		Source:     SourceName,
	}, true
}

// extractStatus recognizes the Dutch phase markers the page uses and
// strips them from the row text.
func extractStatus(text string) (string, string) {
	lower := strings.ToLower(text)
	for marker, status := range map[string]string{
		"afgelopen": "ft",
		"eindstand": "ft",
		"rust":      "ht",
	} {
		if idx := strings.Index(lower, marker); idx >= 0 {
			cleaned := strings.TrimSpace(text[:idx] + text[idx+len(marker):])
			return status, cleaned
		}
	}
	return "live", text
}

func (s *Scraper) filterTargets(scores []match.LiveScore, targetTeams []string) []match.LiveScore {
	if len(targetTeams) == 0 {
		return scores
	}

	out := make([]match.LiveScore, 0, len(scores))
	for _, score := range scores {
		if s.matchesAnyTarget(score, targetTeams) {
			out = append(out, score)
		}
	}
	return out
}

func (s *Scraper) matchesAnyTarget(score match.LiveScore, targetTeams []string) bool {
	threshold := s.matcher.Threshold()
	for _, target := range targetTeams {
		if s.matcher.Confidence(score.Home, target) >= threshold ||
			s.matcher.Confidence(score.Away, target) >= threshold {
			return true
		}
	}
	return false
}
