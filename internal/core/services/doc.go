// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters): the contact matcher, the
// full-text search index and the thin contact read/write surface.
package services
