package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/rolohq/rolo-mcp/internal/core/domain"
)

// SearchContactsInput is the input schema for the search_contacts tool.
type SearchContactsInput struct {
	Name      string `json:"name,omitempty" jsonschema:"full or partial name of the person to find"`
	Email     string `json:"email,omitempty" jsonschema:"email address to match exactly"`
	Phone     string `json:"phone,omitempty" jsonschema:"phone number to match exactly, any formatting"`
	SocialURL string `json:"social_url,omitempty" jsonschema:"social profile URL or handle to match exactly"`
	Company   string `json:"company,omitempty" jsonschema:"company name to boost name matches with"`
}

// SearchContactsOutput is the output schema for the search_contacts tool.
type SearchContactsOutput struct {
	Matches []ContactMatchOutput `json:"matches"`
	Count   int                  `json:"count"`
}

// ContactMatchOutput represents a single ranked contact match.
type ContactMatchOutput struct {
	Contact    ContactOutput `json:"contact"`
	Confidence int           `json:"confidence"`
	Reason     string        `json:"match_reason"`
}

// ContactOutput is the wire shape of a contact.
type ContactOutput struct {
	ID          string            `json:"id"`
	FirstName   string            `json:"first_name,omitempty"`
	LastName    string            `json:"last_name,omitempty"`
	FullName    string            `json:"full_name,omitempty"`
	JobTitle    string            `json:"job_title,omitempty"`
	Description string            `json:"description,omitempty"`
	Emails      []string          `json:"emails,omitempty"`
	Phones      []PhoneOutput     `json:"phones,omitempty"`
	Socials     *SocialsOutput    `json:"socials,omitempty"`
	Website     string            `json:"website,omitempty"`
	Extra       map[string]string `json:"extra,omitempty"`
}

// PhoneOutput is a phone number with its optional label.
type PhoneOutput struct {
	Number string `json:"number"`
	Label  string `json:"label,omitempty"`
}

// SocialsOutput holds per-platform profile URLs.
type SocialsOutput struct {
	LinkedIn  string `json:"linkedin,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	Telegram  string `json:"telegram,omitempty"`
}

// SearchAllInput is the input schema for the search_all tool.
type SearchAllInput struct {
	Query         string   `json:"query" jsonschema:"text to search for across contacts, notes and reminders"`
	MaxResults    int      `json:"max_results,omitempty" jsonschema:"maximum number of contacts to return (default 10)"`
	MinConfidence int      `json:"min_confidence,omitempty" jsonschema:"minimum per-match confidence 0-100 (default 50)"`
	Kinds         []string `json:"kinds,omitempty" jsonschema:"restrict matches to record kinds: contact, note, reminder"`
}

// SearchAllOutput is the output schema for the search_all tool.
type SearchAllOutput struct {
	Results []SearchResultOutput `json:"results"`
	Count   int                  `json:"count"`
}

// SearchResultOutput represents one contact's aggregated search result.
type SearchResultOutput struct {
	Contact    ContactOutput `json:"contact"`
	Confidence int           `json:"confidence"`
	Matches    []MatchOutput `json:"matches"`
}

// MatchOutput describes where the query matched.
type MatchOutput struct {
	Kind       string `json:"kind"`
	Field      string `json:"field,omitempty"`
	Snippet    string `json:"snippet"`
	RawContent string `json:"raw_content,omitempty"`
	Confidence int    `json:"confidence"`
}

// GetContactInput is the input schema for the get_contact tool.
type GetContactInput struct {
	ContactID string `json:"contact_id" jsonschema:"id of the contact to fetch"`
}

// GetContactOutput is the output schema for the get_contact tool.
type GetContactOutput struct {
	Contact ContactOutput `json:"contact"`
}

// ContactNotesInput is the input schema for the get_contact_notes tool.
type ContactNotesInput struct {
	ContactID string `json:"contact_id" jsonschema:"id of the contact whose notes to list"`
}

// ContactNotesOutput is the output schema for the get_contact_notes tool.
type ContactNotesOutput struct {
	Notes []NoteOutput `json:"notes"`
	Count int          `json:"count"`
}

// NoteOutput is the wire shape of a note.
type NoteOutput struct {
	ID         string   `json:"id"`
	Body       string   `json:"body"`
	EventTime  string   `json:"event_time,omitempty"`
	ContactIDs []string `json:"contact_ids"`
	Source     string   `json:"source,omitempty"`
}

// ContactRemindersInput is the input schema for the get_contact_reminders tool.
type ContactRemindersInput struct {
	ContactID string `json:"contact_id" jsonschema:"id of the contact whose reminders to list"`
}

// ContactRemindersOutput is the output schema for the get_contact_reminders tool.
type ContactRemindersOutput struct {
	Reminders []ReminderOutput `json:"reminders"`
	Count     int              `json:"count"`
}

// ReminderOutput is the wire shape of a reminder.
type ReminderOutput struct {
	ID         string   `json:"id"`
	Body       string   `json:"body"`
	Status     string   `json:"status"`
	DueDate    string   `json:"due_date"`
	DueTime    string   `json:"due_time,omitempty"`
	ContactIDs []string `json:"contact_ids"`
}

// CreateNoteInput is the input schema for the create_note tool.
type CreateNoteInput struct {
	Body       string   `json:"body" jsonschema:"note text, plain or lightly formatted"`
	ContactIDs []string `json:"contact_ids" jsonschema:"ids of the contacts this note is about"`
	EventTime  string   `json:"event_time,omitempty" jsonschema:"ISO-8601 time the noted event happened"`
}

// CreateNoteOutput is the output schema for the create_note tool.
type CreateNoteOutput struct {
	Note NoteOutput `json:"note"`
}

// CreateReminderInput is the input schema for the create_reminder tool.
type CreateReminderInput struct {
	Body       string   `json:"body" jsonschema:"what to be reminded about"`
	DueDate    string   `json:"due_date" jsonschema:"due date in YYYY-MM-DD form"`
	DueTime    string   `json:"due_time,omitempty" jsonschema:"optional due time in HH:MM form"`
	ContactIDs []string `json:"contact_ids" jsonschema:"ids of the contacts this reminder concerns"`
}

// CreateReminderOutput is the output schema for the create_reminder tool.
type CreateReminderOutput struct {
	Reminder ReminderOutput `json:"reminder"`
}

// UpdateContactInput is the input schema for the update_contact tool.
// Scalar fields overwrite only when present; list fields are additions
// merged into what the contact already has.
type UpdateContactInput struct {
	ContactID   string            `json:"contact_id" jsonschema:"id of the contact to enrich"`
	FirstName   *string           `json:"first_name,omitempty" jsonschema:"replacement given name"`
	LastName    *string           `json:"last_name,omitempty" jsonschema:"replacement family name"`
	JobTitle    *string           `json:"job_title,omitempty" jsonschema:"replacement job title"`
	Description *string           `json:"description,omitempty" jsonschema:"replacement free-text description"`
	Website     *string           `json:"website,omitempty" jsonschema:"replacement website URL"`
	AddEmails   []string          `json:"add_emails,omitempty" jsonschema:"email addresses to add"`
	AddPhones   []PhoneOutput     `json:"add_phones,omitempty" jsonschema:"phone numbers to add"`
	Socials     *SocialsOutput    `json:"socials,omitempty" jsonschema:"social profiles to set, one per platform"`
	Extra       map[string]string `json:"extra,omitempty" jsonschema:"custom attributes to set or overwrite"`
}

// UpdateContactOutput is the output schema for the update_contact tool.
type UpdateContactOutput struct {
	Contact ContactOutput `json:"contact"`
}

// IndexStatsInput is the input schema for the index_stats tool.
type IndexStatsInput struct{}

// IndexStatsOutput is the output schema for the index_stats tool.
type IndexStatsOutput struct {
	DocumentCount   int     `json:"document_count"`
	ContactCount    int     `json:"contact_count"`
	EstimatedSizeMB float64 `json:"estimated_size_mb"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_contacts",
		Description: "Find contacts by name, email, phone, social profile or company",
	}, s.handleSearchContacts)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_all",
		Description: "Full-text search across all contacts, notes and reminders",
	}, s.handleSearchAll)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_contact",
		Description: "Fetch a single contact by id",
	}, s.handleGetContact)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_contact_notes",
		Description: "List the notes attached to a contact",
	}, s.handleGetContactNotes)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_contact_reminders",
		Description: "List the reminders attached to a contact",
	}, s.handleGetContactReminders)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "create_note",
		Description: "Create a note attached to one or more contacts",
	}, s.handleCreateNote)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "create_reminder",
		Description: "Create a reminder attached to one or more contacts",
	}, s.handleCreateReminder)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "update_contact",
		Description: "Enrich a contact: scalars overwrite, list fields merge without dropping existing data",
	}, s.handleUpdateContact)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "index_stats",
		Description: "Report the size of the in-memory search index",
	}, s.handleIndexStats)
}

// handleSearchContacts handles the search_contacts tool invocation.
// The index is refreshed first so the matcher sees current contacts.
func (s *Server) handleSearchContacts(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchContactsInput,
) (*mcp.CallToolResult, SearchContactsOutput, error) {
	if err := s.ports.Search.Refresh(ctx); err != nil {
		return nil, SearchContactsOutput{}, err
	}
	s.ports.Matcher.SetContacts(s.ports.Search.Contacts())

	params := domain.MatchParams{
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		SocialURL: input.SocialURL,
		Company:   input.Company,
	}
	matches, err := s.ports.Matcher.FindMatches(ctx, params)
	if err != nil {
		return nil, SearchContactsOutput{}, err
	}

	output := SearchContactsOutput{
		Matches: make([]ContactMatchOutput, len(matches)),
		Count:   len(matches),
	}
	for i := range matches {
		output.Matches[i] = ContactMatchOutput{
			Contact:    contactToOutput(matches[i].Contact),
			Confidence: matches[i].Confidence,
			Reason:     matches[i].Reason,
		}
	}
	return nil, output, nil
}

// handleSearchAll handles the search_all tool invocation.
func (s *Server) handleSearchAll(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchAllInput,
) (*mcp.CallToolResult, SearchAllOutput, error) {
	if err := s.ports.Search.Refresh(ctx); err != nil {
		return nil, SearchAllOutput{}, err
	}

	kinds, err := parseKinds(input.Kinds)
	if err != nil {
		return nil, SearchAllOutput{}, err
	}

	opts := domain.SearchOptions{
		MaxResults:    input.MaxResults,
		MinConfidence: input.MinConfidence,
		Kinds:         kinds,
	}
	results, err := s.ports.Search.Search(ctx, input.Query, opts)
	if err != nil {
		return nil, SearchAllOutput{}, err
	}

	output := SearchAllOutput{
		Results: make([]SearchResultOutput, len(results)),
		Count:   len(results),
	}
	for i := range results {
		matches := make([]MatchOutput, len(results[i].Matches))
		for j, m := range results[i].Matches {
			matches[j] = MatchOutput{
				Kind:       string(m.Kind),
				Field:      m.Field,
				Snippet:    m.Snippet,
				RawContent: m.RawContent,
				Confidence: m.Confidence,
			}
		}
		output.Results[i] = SearchResultOutput{
			Contact:    contactToOutput(results[i].Contact),
			Confidence: results[i].Confidence,
			Matches:    matches,
		}
	}
	return nil, output, nil
}

// handleGetContact handles the get_contact tool invocation.
func (s *Server) handleGetContact(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetContactInput,
) (*mcp.CallToolResult, GetContactOutput, error) {
	contact, err := s.ports.Contacts.GetContact(ctx, input.ContactID)
	if err != nil {
		return nil, GetContactOutput{}, err
	}
	return nil, GetContactOutput{Contact: contactToOutput(*contact)}, nil
}

// handleGetContactNotes handles the get_contact_notes tool invocation.
func (s *Server) handleGetContactNotes(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ContactNotesInput,
) (*mcp.CallToolResult, ContactNotesOutput, error) {
	notes, err := s.ports.Contacts.GetContactNotes(ctx, input.ContactID)
	if err != nil {
		return nil, ContactNotesOutput{}, err
	}

	output := ContactNotesOutput{
		Notes: make([]NoteOutput, len(notes)),
		Count: len(notes),
	}
	for i := range notes {
		output.Notes[i] = noteToOutput(notes[i])
	}
	return nil, output, nil
}

// handleGetContactReminders handles the get_contact_reminders tool invocation.
func (s *Server) handleGetContactReminders(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ContactRemindersInput,
) (*mcp.CallToolResult, ContactRemindersOutput, error) {
	reminders, err := s.ports.Contacts.GetContactReminders(ctx, input.ContactID)
	if err != nil {
		return nil, ContactRemindersOutput{}, err
	}

	output := ContactRemindersOutput{
		Reminders: make([]ReminderOutput, len(reminders)),
		Count:     len(reminders),
	}
	for i := range reminders {
		output.Reminders[i] = reminderToOutput(reminders[i])
	}
	return nil, output, nil
}

// handleCreateNote handles the create_note tool invocation.
func (s *Server) handleCreateNote(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input CreateNoteInput,
) (*mcp.CallToolResult, CreateNoteOutput, error) {
	note, err := s.ports.Contacts.CreateNote(ctx, domain.Note{
		Body:       input.Body,
		EventTime:  input.EventTime,
		ContactIDs: input.ContactIDs,
	})
	if err != nil {
		return nil, CreateNoteOutput{}, err
	}
	return nil, CreateNoteOutput{Note: noteToOutput(*note)}, nil
}

// handleCreateReminder handles the create_reminder tool invocation.
func (s *Server) handleCreateReminder(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input CreateReminderInput,
) (*mcp.CallToolResult, CreateReminderOutput, error) {
	reminder, err := s.ports.Contacts.CreateReminder(ctx, domain.Reminder{
		Body:       input.Body,
		DueDate:    input.DueDate,
		DueTime:    input.DueTime,
		ContactIDs: input.ContactIDs,
	})
	if err != nil {
		return nil, CreateReminderOutput{}, err
	}
	return nil, CreateReminderOutput{Reminder: reminderToOutput(*reminder)}, nil
}

// handleUpdateContact handles the update_contact tool invocation.
func (s *Server) handleUpdateContact(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input UpdateContactInput,
) (*mcp.CallToolResult, UpdateContactOutput, error) {
	patch := domain.ContactPatch{
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		JobTitle:    input.JobTitle,
		Description: input.Description,
		Website:     input.Website,
		Emails:      input.AddEmails,
		Extra:       input.Extra,
	}
	for _, p := range input.AddPhones {
		patch.Phones = append(patch.Phones, domain.Phone{Number: p.Number, Label: p.Label})
	}
	if input.Socials != nil {
		patch.Socials = &domain.SocialProfiles{
			LinkedIn:  input.Socials.LinkedIn,
			Facebook:  input.Socials.Facebook,
			Twitter:   input.Socials.Twitter,
			Instagram: input.Socials.Instagram,
			Telegram:  input.Socials.Telegram,
		}
	}

	contact, err := s.ports.Contacts.EnrichContact(ctx, input.ContactID, patch)
	if err != nil {
		return nil, UpdateContactOutput{}, err
	}
	return nil, UpdateContactOutput{Contact: contactToOutput(*contact)}, nil
}

// handleIndexStats handles the index_stats tool invocation.
func (s *Server) handleIndexStats(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ IndexStatsInput,
) (*mcp.CallToolResult, IndexStatsOutput, error) {
	stats := s.ports.Search.Stats()
	return nil, IndexStatsOutput{
		DocumentCount:   stats.DocumentCount,
		ContactCount:    stats.ContactCount,
		EstimatedSizeMB: stats.EstimatedSizeMB,
	}, nil
}

// parseKinds maps kind names onto domain document kinds.
func parseKinds(names []string) ([]domain.DocumentKind, error) {
	if len(names) == 0 {
		return nil, nil
	}
	kinds := make([]domain.DocumentKind, 0, len(names))
	for _, name := range names {
		switch domain.DocumentKind(name) {
		case domain.KindContact, domain.KindNote, domain.KindReminder:
			kinds = append(kinds, domain.DocumentKind(name))
		default:
			return nil, fmt.Errorf("%w: unknown document kind %q", domain.ErrInvalidInput, name)
		}
	}
	return kinds, nil
}

func contactToOutput(c domain.Contact) ContactOutput {
	out := ContactOutput{
		ID:          c.ID,
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		FullName:    c.FullName(),
		JobTitle:    c.JobTitle,
		Description: c.Description,
		Emails:      c.Emails,
		Website:     c.Website,
		Extra:       c.Extra,
	}
	for _, p := range c.Phones {
		out.Phones = append(out.Phones, PhoneOutput{Number: p.Number, Label: p.Label})
	}
	if socials := c.Socials; socials != (domain.SocialProfiles{}) {
		out.Socials = &SocialsOutput{
			LinkedIn:  socials.LinkedIn,
			Facebook:  socials.Facebook,
			Twitter:   socials.Twitter,
			Instagram: socials.Instagram,
			Telegram:  socials.Telegram,
		}
	}
	return out
}

func noteToOutput(n domain.Note) NoteOutput {
	return NoteOutput{
		ID:         n.ID,
		Body:       n.Body,
		EventTime:  n.EventTime,
		ContactIDs: n.ContactIDs,
		Source:     n.Source,
	}
}

func reminderToOutput(r domain.Reminder) ReminderOutput {
	return ReminderOutput{
		ID:         r.ID,
		Body:       r.Body,
		Status:     r.Status(),
		DueDate:    r.DueDate,
		DueTime:    r.DueTime,
		ContactIDs: r.ContactIDs,
	}
}
