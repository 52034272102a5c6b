package domain

// ContactPatch is a partial enrichment update for a contact.
// Nil pointer fields are left untouched. List-valued fields carry
// additions that merge into the existing lists by union-with-dedup;
// scalar fields overwrite.
type ContactPatch struct {
	FirstName   *string
	LastName    *string
	JobTitle    *string
	Description *string
	Website     *string

	// Emails are appended to the contact's emails, deduplicated by
	// normalised form.
	Emails []string

	// Phones are appended to the contact's phones, deduplicated by
	// normalised number.
	Phones []Phone

	// Socials overwrite per platform; empty platform fields are
	// left untouched.
	Socials *SocialProfiles

	// Extra entries merge by key, overwriting existing values.
	Extra map[string]string
}

// IsZero reports whether the patch changes nothing.
func (p ContactPatch) IsZero() bool {
	return p.FirstName == nil && p.LastName == nil && p.JobTitle == nil &&
		p.Description == nil && p.Website == nil &&
		len(p.Emails) == 0 && len(p.Phones) == 0 &&
		p.Socials == nil && len(p.Extra) == 0
}
