package services

import (
	"context"
	"math"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/rolohq/rolo-mcp/internal/core/domain"
	"github.com/rolohq/rolo-mcp/internal/core/ports/driven"
	"github.com/rolohq/rolo-mcp/internal/core/ports/driving"
	"github.com/rolohq/rolo-mcp/internal/extract"
	"github.com/rolohq/rolo-mcp/internal/logger"
)

// Ensure SearchIndex implements the interface.
var _ driving.SearchService = (*SearchIndex)(nil)

// Index tuning.
const (
	// DefaultCacheTTL is how long a built index is served without
	// refetching from the CRM.
	DefaultCacheTTL = 30 * time.Minute

	// DefaultMaxResults is the result cap when the caller passes zero.
	DefaultMaxResults = 10

	// DefaultMinConfidence drops matches below it when the caller
	// passes zero.
	DefaultMinConfidence = 50

	// contactPageSize is the page size used when draining the
	// contact list endpoint.
	contactPageSize = 100

	// maxCountBonus bounds the corroboration bonus: two points per
	// match, at most ten.
	maxCountBonus = 10

	// snippetMaxLen and snippetRadius bound snippet size, in runes.
	snippetMaxLen = 150
	snippetRadius = 60

	// Rough per-record memory estimates for stats, in bytes.
	docSizeEstimate     = 200
	contactSizeEstimate = 1000
)

const ellipsis = "..."

// SearchIndex is the in-memory full-text index over contacts, notes
// and reminders. Refresh drains the CRM and rebuilds the whole index
// behind a single mutex-guarded swap; a refresh inside the TTL window
// is a no-op.
type SearchIndex struct {
	crm    driven.CRMClient
	engine driven.FuzzyEngine
	ttl    time.Duration
	now    func() time.Time

	mu          sync.RWMutex
	docs        []domain.SearchableDocument
	contacts    map[string]domain.Contact
	contactList []domain.Contact
	index       driven.FuzzyIndex
	lastRefresh time.Time
}

// NewSearchIndex creates an index over the given CRM client and fuzzy
// engine. A non-positive ttl selects the default.
func NewSearchIndex(crm driven.CRMClient, engine driven.FuzzyEngine, ttl time.Duration) *SearchIndex {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &SearchIndex{
		crm:    crm,
		engine: engine,
		ttl:    ttl,
		now:    time.Now,
	}
}

// Refresh rebuilds the index unless the cached one is still fresh.
// Any fetch error propagates and leaves the previous index in place.
func (s *SearchIndex) Refresh(ctx context.Context) error {
	s.mu.RLock()
	fresh := !s.lastRefresh.IsZero() && s.now().Sub(s.lastRefresh) < s.ttl
	s.mu.RUnlock()
	if fresh {
		logger.Debug("Index within TTL, skipping refresh")
		return nil
	}

	contacts, err := s.fetchAllContacts(ctx)
	if err != nil {
		return err
	}
	notes, err := s.crm.ListNotes(ctx, "")
	if err != nil {
		return err
	}
	reminders, err := s.crm.ListReminders(ctx, "")
	if err != nil {
		return err
	}

	docs := make([]domain.SearchableDocument, 0, len(contacts)+len(notes)+len(reminders))
	byID := make(map[string]domain.Contact, len(contacts))
	for _, c := range contacts {
		byID[c.ID] = c
		docs = append(docs, extract.FromContact(c)...)
	}
	for _, n := range notes {
		docs = append(docs, extract.FromNote(n)...)
	}
	for _, r := range reminders {
		docs = append(docs, extract.FromReminder(r)...)
	}

	texts := make([]string, len(docs))
	for i, d := range docs {
		texts[i] = d.Text
	}
	built := s.engine.BuildIndex(texts)

	s.mu.Lock()
	s.docs = docs
	s.contacts = byID
	s.contactList = contacts
	s.index = built
	s.lastRefresh = s.now()
	s.mu.Unlock()

	logger.Debug("Index rebuilt: %d documents, %d contacts", len(docs), len(contacts))
	return nil
}

// fetchAllContacts drains the paginated contact endpoint. A short page
// signals end-of-data.
func (s *SearchIndex) fetchAllContacts(ctx context.Context) ([]domain.Contact, error) {
	var all []domain.Contact
	for offset := 0; ; offset += contactPageSize {
		page, err := s.crm.ListContacts(ctx, contactPageSize, offset)
		if err != nil {
			return nil, err
		}
		all = append(all, page...)
		if len(page) < contactPageSize {
			return all, nil
		}
	}
}

// Search runs a fuzzy query over the current snapshot and aggregates
// the hits per contact. It performs no I/O.
func (s *SearchIndex) Search(_ context.Context, query string, opts domain.SearchOptions) ([]domain.SearchResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, domain.ErrEmptyQuery
	}
	if opts.MaxResults <= 0 {
		opts.MaxResults = DefaultMaxResults
	}
	if opts.MinConfidence <= 0 {
		opts.MinConfidence = DefaultMinConfidence
	}

	s.mu.RLock()
	docs := s.docs
	contacts := s.contacts
	index := s.index
	s.mu.RUnlock()

	if index == nil {
		return []domain.SearchResult{}, nil
	}

	var wantKind map[domain.DocumentKind]bool
	if len(opts.Kinds) > 0 {
		wantKind = make(map[domain.DocumentKind]bool, len(opts.Kinds))
		for _, k := range opts.Kinds {
			wantKind[k] = true
		}
	}

	buckets := make(map[string]*resultBucket)
	var order []string

	for _, hit := range index.Search(query) {
		doc := docs[hit.Index]
		if wantKind != nil && !wantKind[doc.Kind] {
			continue
		}
		contact, ok := contacts[doc.ContactID]
		if !ok {
			// Document outlived its contact; skip rather than
			// surface an orphan.
			continue
		}

		confidence := int(math.Round((1 - hit.Distance) * 100))
		if confidence < opts.MinConfidence {
			continue
		}

		bucket, ok := buckets[doc.ContactID]
		if !ok {
			bucket = &resultBucket{contact: contact}
			buckets[doc.ContactID] = bucket
			order = append(order, doc.ContactID)
		}
		if confidence > bucket.maxConfidence {
			bucket.maxConfidence = confidence
		}
		bucket.matches = append(bucket.matches, domain.MatchContext{
			Kind:       doc.Kind,
			Field:      doc.Field,
			Snippet:    makeSnippet(doc.Text, hit.FuzzyScore),
			RawContent: doc.RawContent,
			Confidence: confidence,
		})
	}

	results := make([]domain.SearchResult, 0, len(buckets))
	for _, id := range order {
		bucket := buckets[id]
		sort.SliceStable(bucket.matches, func(a, b int) bool {
			return bucket.matches[a].Confidence > bucket.matches[b].Confidence
		})

		bonus := 2 * len(bucket.matches)
		if bonus > maxCountBonus {
			bonus = maxCountBonus
		}
		confidence := bucket.maxConfidence + bonus
		if confidence > 100 {
			confidence = 100
		}

		results = append(results, domain.SearchResult{
			Contact:    bucket.contact,
			Confidence: confidence,
			Matches:    bucket.matches,
		})
	}

	sort.SliceStable(results, func(a, b int) bool {
		return results[a].Confidence > results[b].Confidence
	})
	if len(results) > opts.MaxResults {
		results = results[:opts.MaxResults]
	}
	logger.Debug("Search %q: %d result(s)", query, len(results))
	return results, nil
}

// Stats reports the current index footprint.
func (s *SearchIndex) Stats() domain.IndexStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	docCount := len(s.docs)
	contactCount := len(s.contacts)
	sizeBytes := docCount*docSizeEstimate + contactCount*contactSizeEstimate
	return domain.IndexStats{
		DocumentCount:   docCount,
		ContactCount:    contactCount,
		EstimatedSizeMB: float64(sizeBytes) / (1024 * 1024),
	}
}

// Contacts returns the contact snapshots from the last refresh.
func (s *SearchIndex) Contacts() []domain.Contact {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.contactList
}

type resultBucket struct {
	contact       domain.Contact
	maxConfidence int
	matches       []domain.MatchContext
}

// makeSnippet excerpts the matched region of text. Without a span it
// truncates from the front; with one it keeps a fixed radius around
// the match and wraps the matched substring in ** emphasis markers.
func makeSnippet(text string, score driven.FuzzyScore) string {
	runes := []rune(text)

	if !score.HasSpan || score.End > len(runes) {
		if len(runes) <= snippetMaxLen {
			return text
		}
		return string(runes[:snippetMaxLen]) + ellipsis
	}

	start := score.Start - snippetRadius
	prefix := ellipsis
	if start <= 0 {
		start = 0
		prefix = ""
	}
	end := score.End + snippetRadius
	suffix := ellipsis
	if end >= len(runes) {
		end = len(runes)
		suffix = ""
	}

	var b strings.Builder
	b.WriteString(prefix)
	b.WriteString(string(runes[start:score.Start]))
	b.WriteString("**")
	b.WriteString(string(runes[score.Start:score.End]))
	b.WriteString("**")
	b.WriteString(string(runes[score.End:end]))
	b.WriteString(suffix)
	return b.String()
}
