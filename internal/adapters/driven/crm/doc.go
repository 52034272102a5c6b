// Package crm implements the driven CRM client port over the Rolo
// REST API: bearer-token auth, dual-strategy rate limiting and typed
// API errors. The client never retries; failures propagate to the
// caller unchanged.
package crm
