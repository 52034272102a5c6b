package domain

// DocumentKind identifies which record type a searchable document
// was extracted from.
type DocumentKind string

// Document kinds.
const (
	KindContact  DocumentKind = "contact"
	KindNote     DocumentKind = "note"
	KindReminder DocumentKind = "reminder"
)

// SearchableDocument is one unit of indexed text. A single contact,
// note or reminder may yield several documents: one per field for
// contacts, one per associated contact for shared notes and reminders.
// Documents are ephemeral and rebuilt wholesale on every index refresh.
type SearchableDocument struct {
	// ContactID is the single contact this document belongs to.
	ContactID string

	// Kind is the originating record type.
	Kind DocumentKind

	// SourceID is the id of the originating contact, note or reminder.
	SourceID string

	// Text is the extracted plain-text content that gets indexed.
	Text string

	// Field names the originating contact field ("name", "email",
	// "phone", "job_title", "description"). Empty for notes and
	// reminders.
	Field string

	// Date carries the note event time or reminder due date.
	Date string

	// RawContent is the original, unstripped body for notes and
	// reminders. Empty for contact documents.
	RawContent string
}
