// Package file provides the TOML-backed configuration store and a
// filesystem watcher that picks up edits (e.g. API token rotation)
// without a restart.
package file
