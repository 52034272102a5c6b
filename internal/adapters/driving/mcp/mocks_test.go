package mcp

import (
	"context"

	"github.com/rolohq/rolo-mcp/internal/core/domain"
)

// mockMatcherService is a mock implementation of driving.MatcherService.
type mockMatcherService struct {
	matches     []domain.ContactMatch
	err         error
	setContacts []domain.Contact
	lastParams  domain.MatchParams
}

func (m *mockMatcherService) SetContacts(contacts []domain.Contact) {
	m.setContacts = contacts
}

func (m *mockMatcherService) FindMatches(
	_ context.Context,
	params domain.MatchParams,
) ([]domain.ContactMatch, error) {
	m.lastParams = params
	return m.matches, m.err
}

// mockSearchService is a mock implementation of driving.SearchService.
type mockSearchService struct {
	results      []domain.SearchResult
	stats        domain.IndexStats
	contacts     []domain.Contact
	searchErr    error
	refreshErr   error
	refreshCalls int
	lastQuery    string
	lastOpts     domain.SearchOptions
}

func (m *mockSearchService) Refresh(_ context.Context) error {
	m.refreshCalls++
	return m.refreshErr
}

func (m *mockSearchService) Search(
	_ context.Context,
	query string,
	opts domain.SearchOptions,
) ([]domain.SearchResult, error) {
	m.lastQuery = query
	m.lastOpts = opts
	return m.results, m.searchErr
}

func (m *mockSearchService) Stats() domain.IndexStats {
	return m.stats
}

func (m *mockSearchService) Contacts() []domain.Contact {
	return m.contacts
}

// mockContactService is a mock implementation of driving.ContactService.
type mockContactService struct {
	contact   *domain.Contact
	notes     []domain.Note
	reminders []domain.Reminder
	note      *domain.Note
	reminder  *domain.Reminder
	err       error
	lastID    string
	lastPatch domain.ContactPatch
}

func (m *mockContactService) GetContact(_ context.Context, id string) (*domain.Contact, error) {
	m.lastID = id
	return m.contact, m.err
}

func (m *mockContactService) GetContactNotes(_ context.Context, contactID string) ([]domain.Note, error) {
	m.lastID = contactID
	return m.notes, m.err
}

func (m *mockContactService) GetContactReminders(_ context.Context, contactID string) ([]domain.Reminder, error) {
	m.lastID = contactID
	return m.reminders, m.err
}

func (m *mockContactService) CreateNote(_ context.Context, note domain.Note) (*domain.Note, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.note != nil {
		return m.note, nil
	}
	note.ID = "n-new"
	return &note, nil
}

func (m *mockContactService) CreateReminder(_ context.Context, reminder domain.Reminder) (*domain.Reminder, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.reminder != nil {
		return m.reminder, nil
	}
	reminder.ID = "r-new"
	return &reminder, nil
}

func (m *mockContactService) EnrichContact(
	_ context.Context,
	id string,
	patch domain.ContactPatch,
) (*domain.Contact, error) {
	m.lastID = id
	m.lastPatch = patch
	return m.contact, m.err
}

func testPorts() (*Ports, *mockMatcherService, *mockSearchService, *mockContactService) {
	matcher := &mockMatcherService{}
	search := &mockSearchService{}
	contacts := &mockContactService{}
	return &Ports{Matcher: matcher, Search: search, Contacts: contacts}, matcher, search, contacts
}
