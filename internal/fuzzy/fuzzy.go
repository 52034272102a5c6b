// Package fuzzy implements the approximate string-search engine used
// by contact matching and full-text search.
//
// Scoring is normalized Levenshtein distance between the query and the
// best-aligned window of each text: 0 is a perfect match, 1 the worst.
// Matches anywhere in the text count equally, and the engine reports
// the rune span of the winning window so callers can highlight it.
// There is no exact-match shortcut: identical strings go through the
// same windowed scoring and land at 0.
package fuzzy

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/rolohq/rolo-mcp/internal/core/ports/driven"
)

// Default engine tuning. The threshold is deliberately permissive:
// it admits near-matches, not just near-exact ones.
const (
	// DefaultThreshold is the worst normalized distance admitted.
	DefaultThreshold = 0.4

	// DefaultMinMatchLength is the minimum query length in runes.
	// Shorter queries would match almost everything.
	DefaultMinMatchLength = 2
)

// Ensure Engine implements the driven port.
var _ driven.FuzzyEngine = (*Engine)(nil)

// Engine scores queries against texts and builds searchable indexes.
type Engine struct {
	threshold float64
	minLength int
}

// NewEngine creates an engine with the default tuning.
func NewEngine() *Engine {
	return &Engine{
		threshold: DefaultThreshold,
		minLength: DefaultMinMatchLength,
	}
}

// NewEngineWithThreshold creates an engine with a custom admission
// threshold. Used by the matcher tests to tighten admission.
func NewEngineWithThreshold(threshold float64) *Engine {
	return &Engine{
		threshold: threshold,
		minLength: DefaultMinMatchLength,
	}
}

// Match scores query against a single text.
func (e *Engine) Match(query, text string) (driven.FuzzyScore, bool) {
	q := []rune(strings.ToLower(strings.TrimSpace(query)))
	if len(q) < e.minLength {
		return driven.FuzzyScore{}, false
	}
	tr := []rune(strings.ToLower(text))
	if len(tr) == 0 {
		return driven.FuzzyScore{}, false
	}

	best := driven.FuzzyScore{Distance: 1.1}

	// Windows one rune narrower and wider than the query absorb a
	// single insertion or deletion without misaligning the rest.
	for _, w := range windowSizes(len(q)) {
		if w >= len(tr) {
			d := normalizedDistance(q, tr)
			if d < best.Distance {
				best = driven.FuzzyScore{Distance: d, Start: 0, End: len(tr), HasSpan: true}
			}
			continue
		}
		for start := 0; start+w <= len(tr); start++ {
			d := normalizedDistance(q, tr[start:start+w])
			if d < best.Distance {
				best = driven.FuzzyScore{Distance: d, Start: start, End: start + w, HasSpan: true}
				if d == 0 {
					break
				}
			}
		}
		if best.Distance == 0 {
			break
		}
	}

	if best.Distance > e.threshold {
		return driven.FuzzyScore{}, false
	}
	return best, true
}

// BuildIndex builds an immutable index over the given texts.
func (e *Engine) BuildIndex(texts []string) driven.FuzzyIndex {
	return &index{engine: e, texts: texts}
}

// index is a built collection of texts.
type index struct {
	engine *Engine
	texts  []string
}

// Len returns the number of indexed texts.
func (ix *index) Len() int {
	return len(ix.texts)
}

// Search scores the query against every indexed text and returns the
// admissible hits best-first. Ties keep collection order.
func (ix *index) Search(query string) []driven.FuzzyHit {
	var hits []driven.FuzzyHit
	for i, text := range ix.texts {
		if score, ok := ix.engine.Match(query, text); ok {
			hits = append(hits, driven.FuzzyHit{Index: i, FuzzyScore: score})
		}
	}

	sort.SliceStable(hits, func(a, b int) bool {
		return hits[a].Distance < hits[b].Distance
	})
	return hits
}

// normalizedDistance is Levenshtein distance divided by the longer
// length, yielding 0..1.
func normalizedDistance(a, b []rune) float64 {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	if n == 0 {
		return 0
	}
	return float64(levenshtein.ComputeDistance(string(a), string(b))) / float64(n)
}

// windowSizes returns the candidate window widths for a query length.
func windowSizes(qlen int) []int {
	sizes := []int{qlen}
	if qlen > 1 {
		sizes = append(sizes, qlen-1)
	}
	return append(sizes, qlen+1)
}
