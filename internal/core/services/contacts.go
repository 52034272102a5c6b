package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rolohq/rolo-mcp/internal/core/domain"
	"github.com/rolohq/rolo-mcp/internal/core/ports/driven"
	"github.com/rolohq/rolo-mcp/internal/core/ports/driving"
	"github.com/rolohq/rolo-mcp/internal/logger"
	"github.com/rolohq/rolo-mcp/internal/normalise"
)

// Ensure Contacts implements the interface.
var _ driving.ContactService = (*Contacts)(nil)

// Contacts is the thin read/write surface over the remote CRM. It
// validates input and, for enrichment, computes the merged patch
// locally before sending it upstream.
type Contacts struct {
	crm driven.CRMClient
}

// NewContacts creates a contact service over the given CRM client.
func NewContacts(crm driven.CRMClient) *Contacts {
	return &Contacts{crm: crm}
}

// GetContact fetches a single contact by id.
func (s *Contacts) GetContact(ctx context.Context, id string) (*domain.Contact, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: contact id is required", domain.ErrInvalidInput)
	}
	return s.crm.GetContact(ctx, id)
}

// GetContactNotes returns the notes attached to a contact.
func (s *Contacts) GetContactNotes(ctx context.Context, contactID string) ([]domain.Note, error) {
	if strings.TrimSpace(contactID) == "" {
		return nil, fmt.Errorf("%w: contact id is required", domain.ErrInvalidInput)
	}
	return s.crm.ListNotes(ctx, contactID)
}

// GetContactReminders returns the reminders attached to a contact.
func (s *Contacts) GetContactReminders(ctx context.Context, contactID string) ([]domain.Reminder, error) {
	if strings.TrimSpace(contactID) == "" {
		return nil, fmt.Errorf("%w: contact id is required", domain.ErrInvalidInput)
	}
	return s.crm.ListReminders(ctx, contactID)
}

// CreateNote validates and stores a new note.
func (s *Contacts) CreateNote(ctx context.Context, note domain.Note) (*domain.Note, error) {
	if strings.TrimSpace(note.Body) == "" {
		return nil, fmt.Errorf("%w: note body is required", domain.ErrInvalidInput)
	}
	if len(note.ContactIDs) == 0 {
		return nil, fmt.Errorf("%w: note needs at least one contact", domain.ErrInvalidInput)
	}
	logger.Debug("Creating note for %d contact(s)", len(note.ContactIDs))
	return s.crm.CreateNote(ctx, note)
}

// CreateReminder validates and stores a new reminder.
func (s *Contacts) CreateReminder(ctx context.Context, reminder domain.Reminder) (*domain.Reminder, error) {
	if strings.TrimSpace(reminder.Body) == "" {
		return nil, fmt.Errorf("%w: reminder body is required", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(reminder.DueDate) == "" {
		return nil, fmt.Errorf("%w: reminder due date is required", domain.ErrInvalidInput)
	}
	if len(reminder.ContactIDs) == 0 {
		return nil, fmt.Errorf("%w: reminder needs at least one contact", domain.ErrInvalidInput)
	}
	logger.Debug("Creating reminder due %s", reminder.DueDate)
	return s.crm.CreateReminder(ctx, reminder)
}

// EnrichContact applies a merge-style update. The current record is
// fetched first, list fields are unioned with the patch additions and
// the fully merged patch is sent upstream, so the update never drops
// data the CRM already holds.
func (s *Contacts) EnrichContact(ctx context.Context, id string, patch domain.ContactPatch) (*domain.Contact, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: contact id is required", domain.ErrInvalidInput)
	}
	if patch.IsZero() {
		return nil, fmt.Errorf("%w: patch changes nothing", domain.ErrInvalidInput)
	}

	current, err := s.crm.GetContact(ctx, id)
	if err != nil {
		return nil, err
	}

	merged := mergePatch(*current, patch)
	logger.Debug("Enriching contact %s", id)
	return s.crm.UpdateContact(ctx, id, merged)
}

// mergePatch resolves a partial patch against the current record into
// a complete one: unions for lists, overwrites for scalars, per-platform
// overwrites for socials.
func mergePatch(current domain.Contact, patch domain.ContactPatch) domain.ContactPatch {
	merged := domain.ContactPatch{
		FirstName:   patch.FirstName,
		LastName:    patch.LastName,
		JobTitle:    patch.JobTitle,
		Description: patch.Description,
		Website:     patch.Website,
	}

	if len(patch.Emails) > 0 {
		merged.Emails = unionEmails(current.Emails, patch.Emails)
	}
	if len(patch.Phones) > 0 {
		merged.Phones = unionPhones(current.Phones, patch.Phones)
	}
	if patch.Socials != nil {
		merged.Socials = mergeSocials(current.Socials, *patch.Socials)
	}
	if len(patch.Extra) > 0 {
		merged.Extra = make(map[string]string, len(current.Extra)+len(patch.Extra))
		for k, v := range current.Extra {
			merged.Extra[k] = v
		}
		for k, v := range patch.Extra {
			merged.Extra[k] = v
		}
	}

	return merged
}

// unionEmails keeps the current emails and appends additions whose
// normalised form is not already present.
func unionEmails(current, additions []string) []string {
	seen := make(map[string]bool, len(current))
	out := make([]string, 0, len(current)+len(additions))
	for _, e := range current {
		seen[normalise.Email(e)] = true
		out = append(out, e)
	}
	for _, e := range additions {
		key := normalise.Email(e)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, e)
	}
	return out
}

// unionPhones keeps the current phones and appends additions whose
// normalised number is not already present.
func unionPhones(current, additions []domain.Phone) []domain.Phone {
	seen := make(map[string]bool, len(current))
	out := make([]domain.Phone, 0, len(current)+len(additions))
	for _, p := range current {
		seen[normalise.Phone(p.Number)] = true
		out = append(out, p)
	}
	for _, p := range additions {
		key := normalise.Phone(p.Number)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, p)
	}
	return out
}

// mergeSocials overwrites per platform; empty patch fields keep the
// current value.
func mergeSocials(current, patch domain.SocialProfiles) *domain.SocialProfiles {
	merged := current
	if patch.LinkedIn != "" {
		merged.LinkedIn = patch.LinkedIn
	}
	if patch.Facebook != "" {
		merged.Facebook = patch.Facebook
	}
	if patch.Twitter != "" {
		merged.Twitter = patch.Twitter
	}
	if patch.Instagram != "" {
		merged.Instagram = patch.Instagram
	}
	if patch.Telegram != "" {
		merged.Telegram = patch.Telegram
	}
	return &merged
}
