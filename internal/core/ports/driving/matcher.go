package driving

import (
	"context"

	"github.com/rolohq/rolo-mcp/internal/core/domain"
)

// MatcherService resolves identity parameters to ranked contacts.
type MatcherService interface {
	// SetContacts replaces the contact set matched against.
	SetContacts(contacts []domain.Contact)

	// FindMatches resolves the given parameters to at most five
	// ranked matches. Calling it with an empty params struct is an
	// input-validation error (domain.ErrNoMatchParams).
	FindMatches(ctx context.Context, params domain.MatchParams) ([]domain.ContactMatch, error)
}
