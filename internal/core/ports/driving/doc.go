// Package driving defines the interfaces the adapters consume.
//
// These are the "driving" ports of the hexagonal architecture: the
// MCP server and CLI call into the core exclusively through them.
package driving
