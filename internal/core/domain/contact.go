package domain

import "strings"

// Contact represents an identity + profile record from the CRM.
// Contacts are created and mutated only by the remote API; the core
// reads snapshots and never persists them beyond the index cache TTL.
type Contact struct {
	// ID is the unique, immutable identifier for the contact.
	ID string

	// FirstName is the contact's given name.
	FirstName string

	// LastName is the contact's family name.
	LastName string

	// JobTitle is the contact's role, often including the company
	// (e.g. "Recruiter at Anthropic").
	JobTitle string

	// Description is free-text context about the contact.
	Description string

	// Emails is the ordered list of the contact's email addresses.
	Emails []string

	// Phones is the ordered list of the contact's phone numbers.
	Phones []Phone

	// Socials holds one URL or handle per supported platform.
	Socials SocialProfiles

	// Website is the contact's personal or company site.
	Website string

	// Extra contains open-ended key/value attributes the CRM allows
	// users to attach (tags, custom fields).
	Extra map[string]string
}

// Phone is a phone number with an optional label ("mobile", "work").
type Phone struct {
	// Number is the raw phone number as stored in the CRM.
	Number string

	// Label is the optional kind of number.
	Label string
}

// SocialProfiles holds per-platform profile URLs or handles.
// Empty string means the contact has no profile on that platform.
type SocialProfiles struct {
	LinkedIn  string
	Facebook  string
	Twitter   string
	Instagram string
	Telegram  string
}

// FullName returns "First Last" with missing parts omitted.
func (c *Contact) FullName() string {
	return strings.TrimSpace(strings.TrimSpace(c.FirstName) + " " + strings.TrimSpace(c.LastName))
}

// All returns the non-empty profile values in a fixed platform order.
func (s SocialProfiles) All() []string {
	var out []string
	for _, v := range []string{s.LinkedIn, s.Facebook, s.Twitter, s.Instagram, s.Telegram} {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
