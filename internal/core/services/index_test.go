package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rolohq/rolo-mcp/internal/core/domain"
	"github.com/rolohq/rolo-mcp/internal/fuzzy"
)

func fixtureCRM() *mockCRM {
	return &mockCRM{
		listContactsFunc: func(_ context.Context, _, _ int) ([]domain.Contact, error) {
			return []domain.Contact{
				{
					ID:        "c1",
					FirstName: "John",
					LastName:  "Smith",
					JobTitle:  "Recruiter at Anthropic",
					Emails:    []string{"john@example.com"},
				},
				{ID: "c2", FirstName: "Jane", LastName: "Doe"},
			}, nil
		},
		listNotesFunc: func(_ context.Context, contactID string) ([]domain.Note, error) {
			return []domain.Note{
				{
					ID:         "n1",
					Body:       "<p>Met with <b>John</b> about the Anthropic role</p>",
					EventTime:  "2026-01-05T10:00:00Z",
					ContactIDs: []string{"c1"},
				},
				{
					ID:         "n2",
					Body:       "Anthropic mentioned in passing",
					ContactIDs: []string{"ghost"},
				},
			}, nil
		},
		listRemindersFunc: func(_ context.Context, contactID string) ([]domain.Reminder, error) {
			return []domain.Reminder{
				{
					ID:         "r1",
					Body:       "Follow up about Anthropic offer",
					DueDate:    "2026-02-01",
					ContactIDs: []string{"c1"},
				},
			}, nil
		},
	}
}

func newTestIndex(t *testing.T, crm *mockCRM) (*SearchIndex, *time.Time) {
	t.Helper()
	idx := NewSearchIndex(crm, fuzzy.NewEngine(), 0)
	clock := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	idx.now = func() time.Time { return clock }
	return idx, &clock
}

func TestSearchIndex_Refresh(t *testing.T) {
	t.Run("refresh within TTL is a no-op", func(t *testing.T) {
		crm := fixtureCRM()
		idx, clock := newTestIndex(t, crm)

		require.NoError(t, idx.Refresh(context.Background()))
		require.NoError(t, idx.Refresh(context.Background()))
		assert.Equal(t, 1, crm.countCalls("ListContacts"))

		*clock = clock.Add(DefaultCacheTTL + time.Minute)
		require.NoError(t, idx.Refresh(context.Background()))
		assert.Equal(t, 2, crm.countCalls("ListContacts"))
	})

	t.Run("drains paginated contacts until a short page", func(t *testing.T) {
		crm := &mockCRM{
			listContactsFunc: func(_ context.Context, limit, offset int) ([]domain.Contact, error) {
				n := limit
				if offset >= limit {
					n = limit / 2
				}
				page := make([]domain.Contact, n)
				for i := range page {
					page[i] = domain.Contact{
						ID:        fmt.Sprintf("c%d", offset+i),
						FirstName: fmt.Sprintf("Person%d", offset+i),
					}
				}
				return page, nil
			},
		}
		idx, _ := newTestIndex(t, crm)

		require.NoError(t, idx.Refresh(context.Background()))
		assert.Equal(t, 2, crm.countCalls("ListContacts"))

		stats := idx.Stats()
		assert.Equal(t, contactPageSize+contactPageSize/2, stats.ContactCount)
	})

	t.Run("fetch errors propagate", func(t *testing.T) {
		boom := errors.New("api down")
		crm := &mockCRM{
			listContactsFunc: func(_ context.Context, _, _ int) ([]domain.Contact, error) {
				return nil, boom
			},
		}
		idx, _ := newTestIndex(t, crm)

		assert.ErrorIs(t, idx.Refresh(context.Background()), boom)
	})
}

func TestSearchIndex_Search(t *testing.T) {
	crm := fixtureCRM()
	idx, _ := newTestIndex(t, crm)
	require.NoError(t, idx.Refresh(context.Background()))

	t.Run("empty query is rejected", func(t *testing.T) {
		_, err := idx.Search(context.Background(), "   ", domain.SearchOptions{})
		assert.ErrorIs(t, err, domain.ErrEmptyQuery)
	})

	t.Run("aggregates matches per contact", func(t *testing.T) {
		results, err := idx.Search(context.Background(), "anthropic", domain.SearchOptions{})
		require.NoError(t, err)
		require.Len(t, results, 1)

		r := results[0]
		assert.Equal(t, "c1", r.Contact.ID)
		// Job title, note and reminder all matched.
		assert.Len(t, r.Matches, 3)
		assert.Equal(t, 100, r.Confidence)
	})

	t.Run("kind filter narrows matches", func(t *testing.T) {
		results, err := idx.Search(context.Background(), "anthropic", domain.SearchOptions{
			Kinds: []domain.DocumentKind{domain.KindNote},
		})
		require.NoError(t, err)
		require.Len(t, results, 1)
		require.Len(t, results[0].Matches, 1)

		match := results[0].Matches[0]
		assert.Equal(t, domain.KindNote, match.Kind)
		// Notes keep the unstripped body alongside the snippet.
		assert.Equal(t, "<p>Met with <b>John</b> about the Anthropic role</p>", match.RawContent)
	})

	t.Run("documents of unknown contacts are skipped", func(t *testing.T) {
		results, err := idx.Search(context.Background(), "mentioned in passing", domain.SearchOptions{})
		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("min confidence drops weak matches", func(t *testing.T) {
		// One deletion away, so each match lands below 95.
		results, err := idx.Search(context.Background(), "antropic", domain.SearchOptions{MinConfidence: 95})
		require.NoError(t, err)
		assert.Empty(t, results)

		results, err = idx.Search(context.Background(), "antropic", domain.SearchOptions{})
		require.NoError(t, err)
		assert.NotEmpty(t, results)
	})

	t.Run("max results truncates", func(t *testing.T) {
		crm := &mockCRM{
			listContactsFunc: func(_ context.Context, _, _ int) ([]domain.Contact, error) {
				var contacts []domain.Contact
				for i := 0; i < 5; i++ {
					contacts = append(contacts, domain.Contact{
						ID:        fmt.Sprintf("c%d", i),
						FirstName: "Taylor",
					})
				}
				return contacts, nil
			},
		}
		capped, _ := newTestIndex(t, crm)
		require.NoError(t, capped.Refresh(context.Background()))

		results, err := capped.Search(context.Background(), "taylor", domain.SearchOptions{MaxResults: 2})
		require.NoError(t, err)
		assert.Len(t, results, 2)
	})

	t.Run("search before any refresh finds nothing", func(t *testing.T) {
		fresh, _ := newTestIndex(t, fixtureCRM())
		results, err := fresh.Search(context.Background(), "anthropic", domain.SearchOptions{})
		require.NoError(t, err)
		assert.Empty(t, results)
	})
}

func TestSearchIndex_Snippets(t *testing.T) {
	long := strings.Repeat("lorem ipsum ", 20) + "Anthropic" + strings.Repeat(" dolor sit", 20)
	crm := &mockCRM{
		listContactsFunc: func(_ context.Context, _, _ int) ([]domain.Contact, error) {
			return []domain.Contact{{ID: "c1", FirstName: "John", Description: long}}, nil
		},
	}
	idx, _ := newTestIndex(t, crm)
	require.NoError(t, idx.Refresh(context.Background()))

	results, err := idx.Search(context.Background(), "anthropic", domain.SearchOptions{})
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.NotEmpty(t, results[0].Matches)

	snippet := results[0].Matches[0].Snippet
	assert.Contains(t, snippet, "**Anthropic**")
	assert.True(t, strings.HasPrefix(snippet, ellipsis))
	assert.True(t, strings.HasSuffix(snippet, ellipsis))
	assert.Less(t, len(snippet), len(long))
}

func TestSearchIndex_Stats(t *testing.T) {
	t.Run("empty index", func(t *testing.T) {
		idx, _ := newTestIndex(t, &mockCRM{})
		stats := idx.Stats()
		assert.Zero(t, stats.DocumentCount)
		assert.Zero(t, stats.ContactCount)
		assert.Zero(t, stats.EstimatedSizeMB)
	})

	t.Run("estimates size from record counts", func(t *testing.T) {
		idx, _ := newTestIndex(t, fixtureCRM())
		require.NoError(t, idx.Refresh(context.Background()))

		stats := idx.Stats()
		assert.Equal(t, 2, stats.ContactCount)
		assert.Positive(t, stats.DocumentCount)

		want := float64(stats.DocumentCount*docSizeEstimate+stats.ContactCount*contactSizeEstimate) / (1024 * 1024)
		assert.InDelta(t, want, stats.EstimatedSizeMB, 1e-9)
	})
}
