package domain

// Note is a timestamped free-text entry tied to one or more contacts.
// The body may contain HTML-style markup from the CRM's editor.
type Note struct {
	// ID is the unique identifier for the note.
	ID string

	// Body is the note text, possibly containing markup.
	Body string

	// EventTime is the ISO-8601 timestamp the note refers to.
	// Kept as the CRM's string form; the core never parses it.
	EventTime string

	// ContactIDs are the contacts this note is associated with.
	ContactIDs []string

	// Source is an optional tag describing where the note came from.
	Source string
}
