package domain

// SearchOptions configures a full-text search query.
type SearchOptions struct {
	// MaxResults is the maximum number of contacts returned.
	// Zero means the default of 10.
	MaxResults int

	// MinConfidence drops individual matches scoring below it.
	// Zero means the default of 50.
	MinConfidence int

	// Kinds filters matches to the given document kinds.
	// Empty means all kinds.
	Kinds []DocumentKind
}

// MatchContext describes where a search query matched.
type MatchContext struct {
	// Kind is the matched document's record type.
	Kind DocumentKind

	// Field is the contact field the match occurred in, if any.
	Field string

	// Snippet is a bounded excerpt with the matched substring
	// wrapped in ** emphasis markers.
	Snippet string

	// RawContent is the full unstripped content for note and
	// reminder matches.
	RawContent string

	// Confidence is this individual match's score, 0-100.
	Confidence int
}

// SearchResult is a ranked result of full-text search, aggregated
// per contact across all of that contact's matching documents.
type SearchResult struct {
	// Contact is the owning contact snapshot.
	Contact Contact

	// Confidence is the aggregated score: the strongest single match
	// plus a small bounded bonus for corroborating matches.
	Confidence int

	// Matches lists the individual match contexts, strongest first.
	Matches []MatchContext
}

// IndexStats reports rough memory usage of the in-memory index.
type IndexStats struct {
	// DocumentCount is the number of indexed documents.
	DocumentCount int

	// ContactCount is the number of contacts in the contact map.
	ContactCount int

	// EstimatedSizeMB is a rough in-memory size estimate.
	EstimatedSizeMB float64
}
