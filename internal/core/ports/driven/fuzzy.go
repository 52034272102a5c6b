package driven

// FuzzyScore is one approximate match against a single text.
type FuzzyScore struct {
	// Distance is the normalized match distance: 0 is a perfect
	// match, 1 the worst the engine will admit. Identical strings
	// score 0 through the same path as everything else.
	Distance float64

	// Start and End delimit the best-matching span of the text,
	// in runes. Only meaningful when HasSpan is true.
	Start int
	End   int

	// HasSpan reports whether a span was located.
	HasSpan bool
}

// FuzzyHit is an approximate match within an indexed collection.
type FuzzyHit struct {
	// Index is the matched document's position in the collection
	// the index was built from.
	Index int

	FuzzyScore
}

// FuzzyIndex is an immutable searchable collection of texts.
type FuzzyIndex interface {
	// Search returns admissible matches ordered best-first.
	Search(query string) []FuzzyHit

	// Len returns the number of indexed texts.
	Len() int
}

// FuzzyEngine builds indexes and scores individual strings. Scoring
// ignores match position within the text and requires queries of a
// minimum length, so single characters never produce noise matches.
type FuzzyEngine interface {
	// BuildIndex builds a searchable index over the given texts.
	BuildIndex(texts []string) FuzzyIndex

	// Match scores query against one text. ok is false when the
	// match falls outside the engine's admission threshold.
	Match(query, text string) (score FuzzyScore, ok bool)
}
