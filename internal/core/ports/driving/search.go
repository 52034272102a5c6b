package driving

import (
	"context"

	"github.com/rolohq/rolo-mcp/internal/core/domain"
)

// SearchService is the full-text index over contacts, notes and
// reminders, with a TTL-gated refresh.
type SearchService interface {
	// Refresh rebuilds the index from the remote CRM unless the
	// cached index is still within its TTL. Fetch failures
	// propagate; a stale cache is never served as error recovery.
	Refresh(ctx context.Context) error

	// Search runs a fuzzy full-text query over the current
	// in-memory snapshot. It performs no I/O.
	Search(ctx context.Context, query string, opts domain.SearchOptions) ([]domain.SearchResult, error)

	// Stats reports the in-memory footprint of the index.
	Stats() domain.IndexStats

	// Contacts returns the contact snapshots from the last refresh.
	Contacts() []domain.Contact
}
