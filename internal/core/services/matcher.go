package services

import (
	"context"
	"math"
	"sort"
	"strings"
	"sync"

	"github.com/rolohq/rolo-mcp/internal/core/domain"
	"github.com/rolohq/rolo-mcp/internal/core/ports/driven"
	"github.com/rolohq/rolo-mcp/internal/core/ports/driving"
	"github.com/rolohq/rolo-mcp/internal/logger"
	"github.com/rolohq/rolo-mcp/internal/normalise"
)

// Ensure Matcher implements the interface.
var _ driving.MatcherService = (*Matcher)(nil)

// Matching constants. The company boost and its similarity floor are
// empirically chosen; they are kept here as tunables.
const (
	// ExactConfidence is assigned to exact-identifier matches.
	ExactConfidence = 100

	// MinNameConfidence is the floor below which fuzzy name matches
	// are discarded.
	MinNameConfidence = 60

	// MaxMatches caps the number of returned matches.
	MaxMatches = 5

	// CompanyBoost is added when the company parameter closely
	// matches the candidate's job title.
	CompanyBoost = 15

	// CompanySimilarityFloor is the word-set (Jaccard) similarity a
	// company/job-title pair must exceed to earn the boost.
	CompanySimilarityFloor = 0.8

	// fullNameWeight makes full-name matches count double against
	// first-name-only or last-name-only matches.
	fullNameWeight = 2.0
)

// Match reasons.
const (
	ReasonExactEmail     = "Exact email match"
	ReasonExactPhone     = "Exact phone match"
	ReasonExactSocial    = "Exact social profile match"
	ReasonNameFuzzy      = "Name fuzzy match"
	ReasonNameAndCompany = "Name and company match"
)

// Matcher resolves identity-search parameters against a loaded set of
// contacts. Exact identifier matches (email, phone, social profile)
// short-circuit fuzzy name matching entirely.
type Matcher struct {
	engine driven.FuzzyEngine

	mu       sync.RWMutex
	contacts []domain.Contact
}

// NewMatcher creates a matcher over the given fuzzy engine.
func NewMatcher(engine driven.FuzzyEngine) *Matcher {
	return &Matcher{engine: engine}
}

// SetContacts replaces the contact set matched against.
func (m *Matcher) SetContacts(contacts []domain.Contact) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.contacts = contacts
}

// FindMatches resolves params to ranked matches.
func (m *Matcher) FindMatches(_ context.Context, params domain.MatchParams) ([]domain.ContactMatch, error) {
	if params.Empty() {
		return nil, domain.ErrNoMatchParams
	}

	m.mu.RLock()
	contacts := m.contacts
	m.mu.RUnlock()

	logger.Debug("FindMatches over %d contacts", len(contacts))

	if exact := m.exactMatches(contacts, params); len(exact) > 0 {
		logger.Debug("Exact identifier match: %d contact(s)", len(exact))
		return dedupeByContact(exact), nil
	}

	if params.Name == "" {
		return []domain.ContactMatch{}, nil
	}

	matches := m.nameMatches(contacts, params)

	sort.SliceStable(matches, func(a, b int) bool {
		return matches[a].Confidence > matches[b].Confidence
	})
	if len(matches) > MaxMatches {
		matches = matches[:MaxMatches]
	}
	logger.Debug("Fuzzy name match: %d result(s)", len(matches))
	return matches, nil
}

// exactMatches collects identifier matches in email, phone, social
// priority order. Every hit carries full confidence.
func (m *Matcher) exactMatches(contacts []domain.Contact, params domain.MatchParams) []domain.ContactMatch {
	var matches []domain.ContactMatch

	if params.Email != "" {
		key := normalise.Email(params.Email)
		for _, c := range contacts {
			for _, email := range c.Emails {
				if normalise.Email(email) == key {
					matches = append(matches, exactMatch(c, ReasonExactEmail))
					break
				}
			}
		}
	}

	if params.Phone != "" {
		key := normalise.Phone(params.Phone)
		for _, c := range contacts {
			for _, phone := range c.Phones {
				if normalise.Phone(phone.Number) == key {
					matches = append(matches, exactMatch(c, ReasonExactPhone))
					break
				}
			}
		}
	}

	if params.SocialURL != "" {
		key := normalise.SocialURL(params.SocialURL)
		for _, c := range contacts {
			for _, profile := range c.Socials.All() {
				if normalise.SocialURL(profile) == key {
					matches = append(matches, exactMatch(c, ReasonExactSocial))
					break
				}
			}
		}
	}

	return matches
}

// nameMatches scores every contact's full, first and last name against
// the name parameter, full name weighted double.
func (m *Matcher) nameMatches(contacts []domain.Contact, params domain.MatchParams) []domain.ContactMatch {
	var matches []domain.ContactMatch

	for _, c := range contacts {
		distance, ok := m.bestNameDistance(params.Name, c)
		if !ok {
			continue
		}

		confidence := int(math.Round((1 - distance) * 100))
		if confidence < 0 {
			confidence = 0
		}

		reason := ReasonNameFuzzy
		if params.Company != "" && c.JobTitle != "" {
			if jaccard(params.Company, c.JobTitle) > CompanySimilarityFloor {
				confidence += CompanyBoost
				if confidence > ExactConfidence {
					confidence = ExactConfidence
				}
				reason = ReasonNameAndCompany
			}
		}

		if confidence < MinNameConfidence {
			continue
		}

		matches = append(matches, domain.ContactMatch{
			Contact:    c,
			Confidence: confidence,
			Reason:     reason,
		})
	}

	return matches
}

// bestNameDistance returns the weighted best distance across the
// contact's name fields.
func (m *Matcher) bestNameDistance(name string, c domain.Contact) (float64, bool) {
	best := math.Inf(1)

	if full := c.FullName(); full != "" {
		if score, ok := m.engine.Match(name, full); ok {
			best = score.Distance / fullNameWeight
		}
	}
	if c.FirstName != "" {
		if score, ok := m.engine.Match(name, c.FirstName); ok && score.Distance < best {
			best = score.Distance
		}
	}
	if c.LastName != "" {
		if score, ok := m.engine.Match(name, c.LastName); ok && score.Distance < best {
			best = score.Distance
		}
	}

	if math.IsInf(best, 1) {
		return 0, false
	}
	return best, true
}

func exactMatch(c domain.Contact, reason string) domain.ContactMatch {
	return domain.ContactMatch{Contact: c, Confidence: ExactConfidence, Reason: reason}
}

// dedupeByContact keeps the first occurrence per contact id, so a
// contact matching on two identifier axes appears exactly once.
func dedupeByContact(matches []domain.ContactMatch) []domain.ContactMatch {
	seen := make(map[string]bool, len(matches))
	out := matches[:0]
	for _, match := range matches {
		if seen[match.Contact.ID] {
			continue
		}
		seen[match.Contact.ID] = true
		out = append(out, match)
	}
	return out
}

// jaccard computes word-set similarity between two strings, lowercased.
func jaccard(a, b string) float64 {
	setA := wordSet(a)
	setB := wordSet(b)
	if len(setA) == 0 || len(setB) == 0 {
		return 0
	}

	intersection := 0
	for w := range setA {
		if setB[w] {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	return float64(intersection) / float64(union)
}

func wordSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, w := range strings.Fields(strings.ToLower(s)) {
		set[w] = true
	}
	return set
}
