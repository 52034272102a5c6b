package cli

import (
	"context"

	"github.com/rolohq/rolo-mcp/internal/core/domain"
)

// stubMatcher is a canned driving.MatcherService for command tests.
type stubMatcher struct {
	matches  []domain.ContactMatch
	err      error
	contacts []domain.Contact
}

func (s *stubMatcher) SetContacts(contacts []domain.Contact) {
	s.contacts = contacts
}

func (s *stubMatcher) FindMatches(_ context.Context, _ domain.MatchParams) ([]domain.ContactMatch, error) {
	return s.matches, s.err
}

// stubSearch is a canned driving.SearchService for command tests.
type stubSearch struct {
	results    []domain.SearchResult
	stats      domain.IndexStats
	contacts   []domain.Contact
	searchErr  error
	refreshErr error
}

func (s *stubSearch) Refresh(_ context.Context) error {
	return s.refreshErr
}

func (s *stubSearch) Search(_ context.Context, _ string, _ domain.SearchOptions) ([]domain.SearchResult, error) {
	return s.results, s.searchErr
}

func (s *stubSearch) Stats() domain.IndexStats {
	return s.stats
}

func (s *stubSearch) Contacts() []domain.Contact {
	return s.contacts
}

// stubContacts is a canned driving.ContactService for command tests.
type stubContacts struct {
	contact *domain.Contact
	err     error
}

func (s *stubContacts) GetContact(_ context.Context, _ string) (*domain.Contact, error) {
	return s.contact, s.err
}

func (s *stubContacts) GetContactNotes(_ context.Context, _ string) ([]domain.Note, error) {
	return nil, s.err
}

func (s *stubContacts) GetContactReminders(_ context.Context, _ string) ([]domain.Reminder, error) {
	return nil, s.err
}

func (s *stubContacts) CreateNote(_ context.Context, note domain.Note) (*domain.Note, error) {
	return &note, s.err
}

func (s *stubContacts) CreateReminder(_ context.Context, reminder domain.Reminder) (*domain.Reminder, error) {
	return &reminder, s.err
}

func (s *stubContacts) EnrichContact(_ context.Context, _ string, _ domain.ContactPatch) (*domain.Contact, error) {
	return s.contact, s.err
}

// seedServices installs stubs so initServices becomes a no-op, and
// returns a restore function.
func seedServices(matcher *stubMatcher, search *stubSearch, contacts *stubContacts) func() {
	prevMatcher := matcherService
	prevSearch := searchService
	prevContacts := contactService

	matcherService = matcher
	searchService = search
	contactService = contacts

	return func() {
		matcherService = prevMatcher
		searchService = prevSearch
		contactService = prevContacts
	}
}
