// Package livemerge folds scraped live scores into persisted match files.
// Every merge runs backup → load → match → validate → save, and a failed
// validation restores the backup byte-for-byte.
package livemerge

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"github.com/panjf2000/ants/v2"

	"github.com/zeeneddie/Sports-League-Management-System/internal/domain/match"
	"github.com/zeeneddie/Sports-League-Management-System/internal/platform/logging"
	"github.com/zeeneddie/Sports-League-Management-System/internal/teamname"
)

const (
	// DefaultMinConfidence is the minimum pairing confidence before a
	// live score is applied to a stored match.
	DefaultMinConfidence = 0.85

	maxGoals        = 20
	maxLiveMinute   = 120
	defaultPoolSize = 4

	backupTimeLayout = "20060102_150405"
)

// Config tunes a Merger. Zero values fall back to defaults.
type Config struct {
	BackupDir     string
	MinConfidence float64
	PoolSize      int
}

// Result reports one target file's merge outcome.
type Result struct {
	Merged int
	Err    error
}

// Merger applies live scores to match files. Each target file has its
// own mutex, so concurrent merges into distinct files proceed in
// parallel while merges into the same file serialize.
type Merger struct {
	cfg      Config
	matcher  *teamname.Matcher
	validate *validator.Validate
	log      *logging.Logger

	locks sync.Map // cleaned path -> *sync.Mutex

	now func() time.Time
}

func New(matcher *teamname.Matcher, log *logging.Logger, cfg Config) *Merger {
	if cfg.MinConfidence <= 0 {
		cfg.MinConfidence = DefaultMinConfidence
	}
	if cfg.PoolSize <= 0 {
		cfg.PoolSize = defaultPoolSize
	}
	if log == nil {
		log = logging.NewNop()
	}
	return &Merger{
		cfg:      cfg,
		matcher:  matcher,
		validate: validator.New(),
		log:      log,
		now:      time.Now,
	}
}

// MergeFiles merges the same live scores into every target file on a
// worker pool and returns per-file outcomes. A missing or malformed
// file fails that file only.
func (m *Merger) MergeFiles(ctx context.Context, paths []string, scores []match.LiveScore) map[string]Result {
	results := make(map[string]Result, len(paths))
	var mu sync.Mutex

	pool, err := ants.NewPool(m.cfg.PoolSize)
	if err != nil {
		for _, p := range paths {
			results[p] = Result{Err: crerr.Wrap(err, "create merge pool")}
		}
		return results
	}
	defer pool.Release()

	var wg sync.WaitGroup
	for _, path := range paths {
		wg.Add(1)
		path := path
		submitErr := pool.Submit(func() {
			defer wg.Done()
			merged, err := m.MergeFile(ctx, path, scores)

			mu.Lock()
			results[path] = Result{Merged: merged, Err: err}
			mu.Unlock()
		})
		if submitErr != nil {
			wg.Done()
			mu.Lock()
			results[path] = Result{Err: crerr.Wrap(submitErr, "submit merge job")}
			mu.Unlock()
		}
	}
	wg.Wait()

	return results
}

// MergeFile merges live scores into one target file and returns how many
// stored matches were updated.
func (m *Merger) MergeFile(ctx context.Context, path string, scores []match.LiveScore) (int, error) {
	lock := m.fileLock(path)
	lock.Lock()
	defer lock.Unlock()

	original, err := os.ReadFile(path)
	if err != nil {
		return 0, crerr.Wrapf(err, "read target %s", path)
	}

	backupPath, err := m.writeBackup(path, original)
	if err != nil {
		return 0, err
	}

	target, err := decodeTarget(original)
	if err != nil {
		return 0, crerr.Wrapf(err, "decode target %s", path)
	}

	merged := 0
	for _, score := range scores {
		if m.applyScore(target.matches, score) {
			merged++
		}
	}
	if merged == 0 {
		m.log.DebugContext(ctx, "no live scores matched", "file", path, "scores", len(scores))
		return 0, nil
	}

	if err := m.validateMatches(target.matches); err != nil {
		if rbErr := os.WriteFile(path, original, 0o644); rbErr != nil {
			return 0, crerr.Wrapf(rbErr, "rollback %s after validation failure: %v", path, err)
		}
		m.log.WarnContext(ctx, "merge rolled back", "file", path, "backup", backupPath, "error", err)
		return 0, crerr.Wrapf(err, "validate merged matches in %s", path)
	}

	encoded, err := target.encode(m.now())
	if err != nil {
		return 0, crerr.Wrapf(err, "encode target %s", path)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, encoded, 0o644); err != nil {
		return 0, crerr.Wrapf(err, "write target %s", path)
	}
	if err := os.Rename(tmp, path); err != nil {
		return 0, crerr.Wrapf(err, "replace target %s", path)
	}

	m.log.InfoContext(ctx, "live scores merged", "file", path, "merged", merged)
	return merged, nil
}

func (m *Merger) fileLock(path string) *sync.Mutex {
	key := filepath.Clean(path)
	actual, _ := m.locks.LoadOrStore(key, &sync.Mutex{})
	return actual.(*sync.Mutex)
}

func (m *Merger) writeBackup(path string, data []byte) (string, error) {
	dir := m.cfg.BackupDir
	if dir == "" {
		dir = filepath.Dir(path)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", crerr.Wrap(err, "create backup directory")
	}
	name := fmt.Sprintf("%s.%s.backup", filepath.Base(path), m.now().Format(backupTimeLayout))
	backupPath := filepath.Join(dir, name)
	if err := os.WriteFile(backupPath, data, 0o644); err != nil {
		return "", crerr.Wrapf(err, "write backup %s", backupPath)
	}
	return backupPath, nil
}

// applyScore finds the best stored match for a live score, considering
// both orientations, and applies the score when the confidence clears
// the threshold. Pairing confidence is the weaker of the two team-name
// confidences.
func (m *Merger) applyScore(matches []match.Match, score match.LiveScore) bool {
	bestIdx := -1
	bestConfidence := 0.0
	bestSwapped := false

	for i := range matches {
		home := matches[i].HomeName()
		away := matches[i].AwayName()
		if home == "" || away == "" {
			continue
		}

		direct := minConfidence(m.matcher.Confidence(score.Home, home), m.matcher.Confidence(score.Away, away))
		swapped := minConfidence(m.matcher.Confidence(score.Home, away), m.matcher.Confidence(score.Away, home))

		confidence, orientationSwapped := direct, false
		if swapped > confidence {
			confidence, orientationSwapped = swapped, true
		}
		if confidence > bestConfidence {
			bestIdx, bestConfidence, bestSwapped = i, confidence, orientationSwapped
		}
	}

	if bestIdx < 0 || bestConfidence < m.cfg.MinConfidence {
		return false
	}

	applyLiveScore(&matches[bestIdx], score, bestSwapped, bestConfidence)
	return true
}

func applyLiveScore(target *match.Match, score match.LiveScore, swapped bool, confidence float64) {
	homeGoals, awayGoals := score.HomeGoals, score.AwayGoals
	if swapped {
		homeGoals, awayGoals = awayGoals, homeGoals
	}
	target.HomeGoals = &homeGoals
	target.AwayGoals = &awayGoals

	switch normalizeStatus(score.Status) {
	case "ft", "fulltime":
		target.Status = match.DisplayFinished
		target.Result = match.FormatResult(homeGoals, awayGoals)
	case "ht", "halftime":
		target.Status = match.DisplayHalfTime
	default:
		target.Status = match.DisplayLive
	}
	if homeGoals > 0 || awayGoals > 0 {
		target.Result = match.FormatResult(homeGoals, awayGoals)
	}

	target.Minute = score.Minute
	target.IsLive = target.Status == match.DisplayLive || target.Status == match.DisplayHalfTime
	target.LastUpdate = score.LastUpdate
	target.LiveSource = score.Source
	target.MatchConfidence = confidence
}

func normalizeStatus(status string) string {
	return strings.ToLower(strings.TrimSpace(status))
}

// mergedMatch is the validation view of a stored match after a merge.
type mergedMatch struct {
	Home      string `validate:"required"`
	Away      string `validate:"required"`
	HomeGoals int    `validate:"min=0,max=20"`
	AwayGoals int    `validate:"min=0,max=20"`
	Minute    int    `validate:"min=0,max=120"`
}

func (m *Merger) validateMatches(matches []match.Match) error {
	for i := range matches {
		mm := &matches[i]
		if mm.LiveSource == "" && mm.MatchConfidence == 0 {
			continue
		}

		homeGoals, hasHome := mm.HomeScore()
		awayGoals, hasAway := mm.AwayScore()
		if !hasHome || !hasAway {
			return crerr.Newf("merged match %q vs %q is missing a score", mm.HomeName(), mm.AwayName())
		}

		view := mergedMatch{
			Home:      mm.HomeName(),
			Away:      mm.AwayName(),
			HomeGoals: homeGoals,
			AwayGoals: awayGoals,
			Minute:    numericMinute(mm.Minute, mm.Status),
		}
		if err := m.validate.Struct(view); err != nil {
			return crerr.Wrapf(err, "merged match %q vs %q", view.Home, view.Away)
		}
	}
	return nil
}

// numericMinute extracts the minute for range validation. Non-numeric
// minutes (and the half-time and full-time markers) are exempt.
func numericMinute(minute, status string) int {
	if status == match.DisplayHalfTime || status == match.DisplayFinished {
		return 0
	}
	digits := strings.TrimRight(strings.TrimSpace(minute), "'+")
	if digits == "" {
		return 0
	}
	n := 0
	for _, r := range digits {
		if r < '0' || r > '9' {
			return 0
		}
		n = n*10 + int(r-'0')
	}
	return n
}

func minConfidence(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

// target file shapes

type targetShape int

const (
	shapeFlat targetShape = iota
	shapeMatchesKey
	shapeFeaturedUpcoming
)

type targetFile struct {
	shape   targetShape
	matches []match.Match

	doc   map[string]json.RawMessage
	inner map[string]json.RawMessage
}

// decodeTarget recognizes the three persisted shapes: a flat match
// list, a dashboard document with featured_team_matches.upcoming, and
// an object with a "matches" key. The featured shape takes precedence
// when a document carries both keys. Unrelated keys survive a merge
// untouched.
func decodeTarget(raw []byte) (*targetFile, error) {
	trimmed := strings.TrimSpace(string(raw))
	if strings.HasPrefix(trimmed, "[") {
		var matches []match.Match
		if err := sonic.Unmarshal(raw, &matches); err != nil {
			return nil, crerr.Wrap(err, "flat match list")
		}
		return &targetFile{shape: shapeFlat, matches: matches}, nil
	}

	var doc map[string]json.RawMessage
	if err := sonic.Unmarshal(raw, &doc); err != nil {
		return nil, crerr.Wrap(err, "target document")
	}

	if rawFeatured, ok := doc["featured_team_matches"]; ok {
		var inner map[string]json.RawMessage
		if err := sonic.Unmarshal(rawFeatured, &inner); err != nil {
			return nil, crerr.Wrap(err, "featured_team_matches object")
		}
		rawUpcoming, ok := inner["upcoming"]
		if !ok {
			return nil, crerr.New("featured_team_matches has no upcoming list")
		}
		var matches []match.Match
		if err := sonic.Unmarshal(rawUpcoming, &matches); err != nil {
			return nil, crerr.Wrap(err, "upcoming list")
		}
		return &targetFile{shape: shapeFeaturedUpcoming, matches: matches, doc: doc, inner: inner}, nil
	}

	if rawMatches, ok := doc["matches"]; ok {
		var matches []match.Match
		if err := sonic.Unmarshal(rawMatches, &matches); err != nil {
			return nil, crerr.Wrap(err, "matches key")
		}
		return &targetFile{shape: shapeMatchesKey, matches: matches, doc: doc}, nil
	}

	return nil, crerr.New("unrecognized target file shape")
}

// encode writes the merged list back into its original shape. Document
// shapes additionally record when live scores were last folded in.
func (t *targetFile) encode(now time.Time) ([]byte, error) {
	switch t.shape {
	case shapeFlat:
		return sonic.Marshal(t.matches)
	case shapeMatchesKey:
		rawMatches, err := sonic.Marshal(t.matches)
		if err != nil {
			return nil, err
		}
		t.doc["matches"] = rawMatches
		t.stampLiveUpdate(now)
		return sonic.Marshal(t.doc)
	case shapeFeaturedUpcoming:
		rawUpcoming, err := sonic.Marshal(t.matches)
		if err != nil {
			return nil, err
		}
		t.inner["upcoming"] = rawUpcoming
		rawFeatured, err := sonic.Marshal(t.inner)
		if err != nil {
			return nil, err
		}
		t.doc["featured_team_matches"] = rawFeatured
		t.stampLiveUpdate(now)
		return sonic.Marshal(t.doc)
	}
	return nil, crerr.New("unknown target shape")
}

func (t *targetFile) stampLiveUpdate(now time.Time) {
	stamp, err := sonic.Marshal(now.UTC().Format(time.RFC3339))
	if err != nil {
		return
	}
	t.doc["lastLiveUpdate"] = stamp
	t.doc["liveUpdatesActive"] = json.RawMessage("true")
}
