package driven

import (
	"context"

	"github.com/rolohq/rolo-mcp/internal/core/domain"
)

// CRMClient is the remote CRM API collaborator.
//
// The core performs no retries: transport errors and API errors
// propagate to the caller unchanged. Absent optional fields on
// returned records mean "no match possible on this axis", never an
// error.
type CRMClient interface {
	// ListContacts returns one page of contacts. Callers loop,
	// advancing offset by limit, until a short page signals
	// end-of-data.
	ListContacts(ctx context.Context, limit, offset int) ([]domain.Contact, error)

	// ListNotes returns notes for one contact, or ALL notes
	// system-wide when contactID is empty.
	ListNotes(ctx context.Context, contactID string) ([]domain.Note, error)

	// ListReminders returns reminders for one contact, or ALL
	// reminders system-wide when contactID is empty.
	ListReminders(ctx context.Context, contactID string) ([]domain.Reminder, error)

	// GetContact returns a single contact. A missing id yields an
	// error satisfying errors.Is(err, domain.ErrNotFound).
	GetContact(ctx context.Context, id string) (*domain.Contact, error)

	// CreateNote stores a new note and returns it with its id set.
	CreateNote(ctx context.Context, note domain.Note) (*domain.Note, error)

	// CreateReminder stores a new reminder and returns it with its
	// id set.
	CreateReminder(ctx context.Context, reminder domain.Reminder) (*domain.Reminder, error)

	// UpdateContact applies an enrichment patch to a contact and
	// returns the updated record. List-valued fields merge by
	// union-with-dedup; scalar fields overwrite.
	UpdateContact(ctx context.Context, id string, patch domain.ContactPatch) (*domain.Contact, error)
}
