// Package domain defines the core business entities for Rolo-MCP.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Contact: An identity + profile record from the CRM
//   - Note: A timestamped free-text entry tied to contacts
//   - Reminder: A scheduled follow-up tied to contacts
//   - SearchableDocument: One extracted unit of indexed text
//   - ContactMatch / SearchResult: Ranked, ephemeral match results
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
