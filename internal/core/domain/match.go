package domain

// MatchParams are the identity-search parameters for contact matching.
// At least one field must be set.
type MatchParams struct {
	// Name is a full or partial contact name, matched fuzzily.
	Name string

	// Email is matched exactly after normalisation.
	Email string

	// Phone is matched exactly after normalisation.
	Phone string

	// SocialURL is a profile URL or bare handle, matched exactly
	// after normalisation against all platforms.
	SocialURL string

	// Company refines name matches against the contact's job title.
	Company string
}

// Empty reports whether no identifying parameter was supplied.
func (p MatchParams) Empty() bool {
	return p.Name == "" && p.Email == "" && p.Phone == "" && p.SocialURL == "" && p.Company == ""
}

// ContactMatch is a ranked result of identity matching.
type ContactMatch struct {
	// Contact is the matched contact snapshot.
	Contact Contact

	// Confidence is the match certainty, 0-100. 100 is reserved for
	// exact-identifier matches.
	Confidence int

	// Reason is a human-readable explanation of the match.
	Reason string
}
