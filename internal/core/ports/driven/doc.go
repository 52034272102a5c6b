// Package driven defines the interfaces the core consumes.
//
// These are the "driven" ports of the hexagonal architecture: the
// remote CRM API and the fuzzy string-search engine. Adapters under
// internal/adapters/driven and internal/fuzzy implement them; the
// core services depend only on these interfaces, which keeps the
// matching and indexing logic testable with in-memory fakes.
package driven
