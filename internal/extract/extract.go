// Package extract flattens CRM records into searchable documents.
//
// Each semantically distinct field becomes its own document so that a
// match can be attributed precisely ("matched on job_title", "matched
// in a note"). Notes and reminders associated with several contacts
// fan out into one document per contact, so a query matches every
// relevant contact rather than just the first.
package extract

import (
	"regexp"
	"strings"

	"github.com/rolohq/rolo-mcp/internal/core/domain"
)

// Contact field names carried in document metadata.
const (
	FieldName        = "name"
	FieldJobTitle    = "job_title"
	FieldDescription = "description"
	FieldEmail       = "email"
	FieldPhone       = "phone"
)

// Pre-compiled patterns for markup stripping.
var (
	lineBreakTags = regexp.MustCompile(`(?i)<br\s*/?>|</(p|div|li|h[1-6]|blockquote)>`)
	allTags       = regexp.MustCompile(`<[^>]+>`)
	multiSpace    = regexp.MustCompile(`[ \t]+`)
	multiNewline  = regexp.MustCompile(`\n{2,}`)
)

// FromContact emits one document per non-empty identity field.
// Empty or absent fields emit nothing.
func FromContact(c domain.Contact) []domain.SearchableDocument {
	var docs []domain.SearchableDocument

	add := func(field, text string) {
		docs = append(docs, domain.SearchableDocument{
			ContactID: c.ID,
			Kind:      domain.KindContact,
			SourceID:  c.ID,
			Text:      text,
			Field:     field,
		})
	}

	if name := c.FullName(); name != "" {
		add(FieldName, name)
	}
	if c.JobTitle != "" {
		add(FieldJobTitle, c.JobTitle)
	}
	if c.Description != "" {
		add(FieldDescription, c.Description)
	}
	for _, email := range c.Emails {
		if email != "" {
			add(FieldEmail, email)
		}
	}
	for _, phone := range c.Phones {
		if phone.Number == "" {
			continue
		}
		text := phone.Number
		if phone.Label != "" {
			text += " " + phone.Label
		}
		add(FieldPhone, text)
	}

	return docs
}

// FromNote strips markup from the note body and emits one document per
// associated contact, all sharing the plain text. The original event
// time and unstripped body travel along as metadata.
func FromNote(n domain.Note) []domain.SearchableDocument {
	text := StripMarkup(n.Body)

	docs := make([]domain.SearchableDocument, 0, len(n.ContactIDs))
	for _, contactID := range n.ContactIDs {
		docs = append(docs, domain.SearchableDocument{
			ContactID:  contactID,
			Kind:       domain.KindNote,
			SourceID:   n.ID,
			Text:       text,
			Date:       n.EventTime,
			RawContent: n.Body,
		})
	}
	return docs
}

// FromReminder emits one document per associated contact whose text is
// the reminder body followed by its status word, so "pending" and
// "completed" are themselves searchable.
func FromReminder(r domain.Reminder) []domain.SearchableDocument {
	text := strings.TrimSpace(r.Body + " " + r.Status())

	docs := make([]domain.SearchableDocument, 0, len(r.ContactIDs))
	for _, contactID := range r.ContactIDs {
		docs = append(docs, domain.SearchableDocument{
			ContactID:  contactID,
			Kind:       domain.KindReminder,
			SourceID:   r.ID,
			Text:       text,
			Date:       r.DueDate,
			RawContent: r.Body,
		})
	}
	return docs
}

// StripMarkup converts markup-formatted note text to plain text:
// line breaks and closing block tags become newlines, remaining tags
// are dropped, and whitespace is collapsed.
func StripMarkup(s string) string {
	s = lineBreakTags.ReplaceAllString(s, "\n")
	s = allTags.ReplaceAllString(s, "")
	s = multiSpace.ReplaceAllString(s, " ")
	s = multiNewline.ReplaceAllString(s, "\n")

	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}
