package driving

import (
	"context"

	"github.com/rolohq/rolo-mcp/internal/core/domain"
)

// ContactService is the thin tool-facing surface over the remote CRM:
// lookups and writes that forward validated input without local state.
type ContactService interface {
	// GetContact fetches one contact by id.
	GetContact(ctx context.Context, id string) (*domain.Contact, error)

	// GetContactNotes returns the notes associated with a contact.
	GetContactNotes(ctx context.Context, contactID string) ([]domain.Note, error)

	// GetContactReminders returns the reminders associated with a
	// contact. A reminder shared by several contacts appears in
	// each contact's results independently.
	GetContactReminders(ctx context.Context, contactID string) ([]domain.Reminder, error)

	// CreateNote stores a new note.
	CreateNote(ctx context.Context, note domain.Note) (*domain.Note, error)

	// CreateReminder stores a new reminder.
	CreateReminder(ctx context.Context, reminder domain.Reminder) (*domain.Reminder, error)

	// EnrichContact applies a merge-style update: list fields union
	// with what the contact already has, scalars overwrite.
	EnrichContact(ctx context.Context, id string, patch domain.ContactPatch) (*domain.Contact, error)
}
