// Package teamname scores how likely two team name strings denote the
// same club. Amateur league sources abbreviate freely ("Victoria Boys"
// vs "V. Boys"), so matching runs a ladder of increasingly loose rules.
package teamname

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// DefaultFuzzyThreshold is the minimum edit-distance ratio accepted as a
// fuzzy match.
const DefaultFuzzyThreshold = 0.85

// Club-type affixes stripped from the start or end during normalization.
var clubAffixes = []string{"FC", "SV", "VV", "RKSV", "AVV", "CSV"}

var (
	whitespaceRe  = regexp.MustCompile(`\s+`)
	punctuationRe = regexp.MustCompile(`[^\w\s]`)
)

// Matcher compares team names with a configurable fuzzy threshold and a
// known-alias table. The zero value is not usable; construct with New.
type Matcher struct {
	threshold float64
	aliases   map[string][]string
}

// Option configures a Matcher.
type Option func(*Matcher)

// WithThreshold overrides the fuzzy-match threshold.
func WithThreshold(threshold float64) Option {
	return func(m *Matcher) {
		if threshold > 0 && threshold <= 1 {
			m.threshold = threshold
		}
	}
}

// WithAliases replaces the default alias table.
func WithAliases(aliases map[string][]string) Option {
	return func(m *Matcher) {
		m.aliases = aliases
	}
}

func New(opts ...Option) *Matcher {
	m := &Matcher{
		threshold: DefaultFuzzyThreshold,
		aliases:   defaultAliases,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Confidence scores two team names in [0, 1]. Rules are evaluated in
// order and the first applicable one wins:
//
//	exact 1.0, case-insensitive 0.95, normalized 0.9, known alias 1.0,
//	substring of normalized forms 0.8, fuzzy similarity >= threshold
//	max(0.6, similarity), otherwise 0.0.
//
// The function is deterministic and commutative.
func (m *Matcher) Confidence(a, b string) float64 {
	if a == "" || b == "" {
		return 0.0
	}

	if a == b {
		return 1.0
	}
	if strings.EqualFold(a, b) {
		return 0.95
	}

	normA := Normalize(a)
	normB := Normalize(b)
	if normA == normB {
		return 0.9
	}

	if m.aliasMatch(a, b) {
		return 1.0
	}

	if normA != "" && normB != "" &&
		(strings.Contains(normA, normB) || strings.Contains(normB, normA)) {
		return 0.8
	}

	similarity := Similarity(strings.ToLower(normA), strings.ToLower(normB))
	if similarity >= m.threshold {
		return max(0.6, similarity)
	}

	return 0.0
}

// Threshold returns the configured fuzzy-match threshold.
func (m *Matcher) Threshold() float64 {
	return m.threshold
}

// Aliases returns the team name plus every known alias for it. Canonical
// names are visited in sorted order so the output is deterministic.
func (m *Matcher) Aliases(name string) []string {
	out := []string{name}
	seen := map[string]bool{strings.ToLower(name): true}

	appendUnique := func(candidates ...string) {
		for _, candidate := range candidates {
			key := strings.ToLower(candidate)
			if seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, candidate)
		}
	}

	canonicals := make([]string, 0, len(m.aliases))
	for canonical := range m.aliases {
		canonicals = append(canonicals, canonical)
	}
	sort.Strings(canonicals)

	for _, canonical := range canonicals {
		list := m.aliases[canonical]
		if strings.EqualFold(name, canonical) {
			appendUnique(list...)
			continue
		}
		for _, alias := range list {
			if strings.EqualFold(name, alias) {
				appendUnique(canonical)
				appendUnique(list...)
				break
			}
		}
	}

	return out
}

func (m *Matcher) aliasMatch(a, b string) bool {
	for _, aliasA := range m.Aliases(a) {
		for _, aliasB := range m.Aliases(b) {
			if strings.EqualFold(aliasA, aliasB) {
				return true
			}
		}
	}
	return false
}

// Normalize collapses whitespace, strips club-type affixes from the start
// or end only, and removes punctuation.
func Normalize(name string) string {
	normalized := whitespaceRe.ReplaceAllString(strings.TrimSpace(name), " ")

	for _, affix := range clubAffixes {
		if rest, ok := strings.CutPrefix(normalized, affix+" "); ok {
			normalized = rest
		}
		if rest, ok := strings.CutSuffix(normalized, " "+affix); ok {
			normalized = rest
		}
	}

	normalized = punctuationRe.ReplaceAllString(normalized, "")

	return strings.TrimSpace(normalized)
}

// Similarity is an edit-distance ratio in [0, 1]: identical strings score
// 1, entirely different strings score 0.
func Similarity(a, b string) float64 {
	if a == b {
		return 1.0
	}
	longest := max(utf8.RuneCountInString(a), utf8.RuneCountInString(b))
	if longest == 0 {
		return 1.0
	}
	distance := levenshtein.ComputeDistance(a, b)
	return 1.0 - float64(distance)/float64(longest)
}

// ResolveInList maps a raw team name onto one of the known league-table
// names: exact case-insensitive match first, then substring containment
// either way. Returns "" when nothing resolves; unmatched real-world data
// is expected and not an error.
func ResolveInList(name string, teams []string) string {
	clean := strings.ToLower(strings.TrimSpace(name))
	if clean == "" {
		return ""
	}

	for _, team := range teams {
		if strings.ToLower(strings.TrimSpace(team)) == clean {
			return team
		}
	}
	for _, team := range teams {
		teamClean := strings.ToLower(strings.TrimSpace(team))
		if strings.Contains(teamClean, clean) || strings.Contains(clean, teamClean) {
			return team
		}
	}

	return ""
}
