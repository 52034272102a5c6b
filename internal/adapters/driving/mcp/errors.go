// Package mcp provides an MCP (Model Context Protocol) server adapter for Rolo.
// It lets AI assistants look up, search and enrich the user's contacts,
// notes and reminders.
package mcp

import "errors"

// Errors returned when required ports are not provided.
var (
	// ErrMissingMatcherService is returned when the matcher service is not provided.
	ErrMissingMatcherService = errors.New("mcp: matcher service is required")

	// ErrMissingSearchService is returned when the search service is not provided.
	ErrMissingSearchService = errors.New("mcp: search service is required")

	// ErrMissingContactService is returned when the contact service is not provided.
	ErrMissingContactService = errors.New("mcp: contact service is required")
)
