// Package normalise produces comparison keys for contact identifiers.
//
// Semantically-equal but syntactically-different inputs (a bare handle
// versus a full profile URL, a formatted phone number versus raw
// digits) normalise to identical keys, which is what makes exact
// identity matching possible. All functions are total: unparseable
// input degrades to best-effort string normalisation, never an error.
package normalise

import (
	"net/url"
	"regexp"
	"strings"
)

// Pre-compiled patterns for identifier parsing.
var (
	nonDigits   = regexp.MustCompile(`\D`)
	linkedinURL = regexp.MustCompile(`(?i)linkedin\.com/in/([^/?#]+)`)
	platformURL = regexp.MustCompile(`(?i)(?:facebook|twitter|instagram|telegram)\.com/([^/?#]+)`)
	schemePfx   = regexp.MustCompile(`(?i)^https?://`)
)

// Email canonicalises an email address. Two emails are the same
// contact key iff their normalised forms are identical.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Phone reduces a phone number to its digits. Numbers longer than ten
// digits keep only the last ten, treating the country code as
// ignorable. This inherits the source system's conflation of
// international numbers that share a trailing-10-digit suffix.
// Shorter strings pass through unchanged as their own key.
func Phone(s string) string {
	digits := nonDigits.ReplaceAllString(s, "")
	if len(digits) > 10 {
		return digits[len(digits)-10:]
	}
	return digits
}

// SocialURL canonicalises a social-profile URL or bare handle.
//
// LinkedIn URLs reduce to the /in/ username; Facebook, Twitter,
// Instagram and Telegram URLs reduce to the path username. Anything
// else that parses as a full URL reduces to hostname+path. The final
// fallback lowercases the raw string and strips scheme, one trailing
// slash and a leading @, which is what lets a bare handle
// ("@alicejohnson") match a stored full profile URL.
func SocialURL(s string) string {
	if m := linkedinURL.FindStringSubmatch(s); m != nil {
		return strings.ToLower(m[1])
	}
	if m := platformURL.FindStringSubmatch(s); m != nil {
		return strings.ToLower(m[1])
	}

	if u, err := url.Parse(strings.TrimSpace(s)); err == nil && u.Hostname() != "" {
		return strings.TrimSuffix(strings.ToLower(u.Hostname()+u.Path), "/")
	}

	out := strings.ToLower(strings.TrimSpace(s))
	out = strings.TrimSuffix(out, "/")
	out = schemePfx.ReplaceAllString(out, "")
	out = strings.TrimPrefix(out, "@")
	return out
}
