package services

import (
	"context"

	"github.com/rolohq/rolo-mcp/internal/core/domain"
)

// mockCRM is a configurable fake CRM client. Each method records its
// name in calls and delegates to the matching function field when set.
type mockCRM struct {
	listContactsFunc   func(ctx context.Context, limit, offset int) ([]domain.Contact, error)
	listNotesFunc      func(ctx context.Context, contactID string) ([]domain.Note, error)
	listRemindersFunc  func(ctx context.Context, contactID string) ([]domain.Reminder, error)
	getContactFunc     func(ctx context.Context, id string) (*domain.Contact, error)
	createNoteFunc     func(ctx context.Context, note domain.Note) (*domain.Note, error)
	createReminderFunc func(ctx context.Context, reminder domain.Reminder) (*domain.Reminder, error)
	updateContactFunc  func(ctx context.Context, id string, patch domain.ContactPatch) (*domain.Contact, error)

	calls []string
}

func (m *mockCRM) ListContacts(ctx context.Context, limit, offset int) ([]domain.Contact, error) {
	m.calls = append(m.calls, "ListContacts")
	if m.listContactsFunc != nil {
		return m.listContactsFunc(ctx, limit, offset)
	}
	return nil, nil
}

func (m *mockCRM) ListNotes(ctx context.Context, contactID string) ([]domain.Note, error) {
	m.calls = append(m.calls, "ListNotes")
	if m.listNotesFunc != nil {
		return m.listNotesFunc(ctx, contactID)
	}
	return nil, nil
}

func (m *mockCRM) ListReminders(ctx context.Context, contactID string) ([]domain.Reminder, error) {
	m.calls = append(m.calls, "ListReminders")
	if m.listRemindersFunc != nil {
		return m.listRemindersFunc(ctx, contactID)
	}
	return nil, nil
}

func (m *mockCRM) GetContact(ctx context.Context, id string) (*domain.Contact, error) {
	m.calls = append(m.calls, "GetContact")
	if m.getContactFunc != nil {
		return m.getContactFunc(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *mockCRM) CreateNote(ctx context.Context, note domain.Note) (*domain.Note, error) {
	m.calls = append(m.calls, "CreateNote")
	if m.createNoteFunc != nil {
		return m.createNoteFunc(ctx, note)
	}
	return &note, nil
}

func (m *mockCRM) CreateReminder(ctx context.Context, reminder domain.Reminder) (*domain.Reminder, error) {
	m.calls = append(m.calls, "CreateReminder")
	if m.createReminderFunc != nil {
		return m.createReminderFunc(ctx, reminder)
	}
	return &reminder, nil
}

func (m *mockCRM) UpdateContact(ctx context.Context, id string, patch domain.ContactPatch) (*domain.Contact, error) {
	m.calls = append(m.calls, "UpdateContact")
	if m.updateContactFunc != nil {
		return m.updateContactFunc(ctx, id, patch)
	}
	return nil, domain.ErrNotFound
}

// countCalls returns how many times a method name was recorded.
func (m *mockCRM) countCalls(name string) int {
	n := 0
	for _, c := range m.calls {
		if c == name {
			n++
		}
	}
	return n
}
