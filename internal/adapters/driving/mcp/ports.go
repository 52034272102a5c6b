package mcp

import (
	"github.com/rolohq/rolo-mcp/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Matcher resolves identity parameters to contacts.
	Matcher driving.MatcherService

	// Search is the full-text index over contacts, notes and reminders.
	Search driving.SearchService

	// Contacts is the read/write surface over the remote CRM.
	Contacts driving.ContactService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Matcher == nil {
		return ErrMissingMatcherService
	}
	if p.Search == nil {
		return ErrMissingSearchService
	}
	if p.Contacts == nil {
		return ErrMissingContactService
	}
	return nil
}
