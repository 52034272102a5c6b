package crm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"github.com/rolohq/rolo-mcp/internal/core/domain"
	"github.com/rolohq/rolo-mcp/internal/core/ports/driven"
	"github.com/rolohq/rolo-mcp/internal/logger"
)

const (
	// DefaultBaseURL is the production Rolo API endpoint.
	DefaultBaseURL = "https://api.rolo.app/v1"

	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second
)

// Ensure Client implements the driven port.
var _ driven.CRMClient = (*Client)(nil)

// Client talks to the Rolo REST API.
type Client struct {
	baseURL     string
	httpClient  *http.Client
	rateLimiter *RateLimiter
}

// NewClient creates a client authenticated with a static bearer token.
func NewClient(ctx context.Context, baseURL, token string) *Client {
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(ctx, ts)
	tc.Timeout = DefaultTimeout

	return newClient(baseURL, tc)
}

// NewClientWithHTTPClient creates a client with a custom http.Client.
// Useful in tests and when the caller manages auth itself.
func NewClientWithHTTPClient(baseURL string, httpClient *http.Client) *Client {
	return newClient(baseURL, httpClient)
}

func newClient(baseURL string, httpClient *http.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		httpClient:  httpClient,
		rateLimiter: NewRateLimiter(),
	}
}

// RateLimiter returns the rate limiter for external access.
func (c *Client) RateLimiter() *RateLimiter {
	return c.rateLimiter
}

// ListContacts returns one page of contacts.
func (c *Client) ListContacts(ctx context.Context, limit, offset int) ([]domain.Contact, error) {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))
	query.Set("offset", strconv.Itoa(offset))

	var resp contactListResponse
	if err := c.do(ctx, http.MethodGet, "/contacts", query, nil, &resp); err != nil {
		return nil, err
	}

	contacts := make([]domain.Contact, 0, len(resp.Contacts))
	for _, dto := range resp.Contacts {
		contacts = append(contacts, dto.toDomain())
	}
	return contacts, nil
}

// ListNotes returns notes for one contact, or all notes when contactID
// is empty.
func (c *Client) ListNotes(ctx context.Context, contactID string) ([]domain.Note, error) {
	query := url.Values{}
	if contactID != "" {
		query.Set("contact_id", contactID)
	}

	var resp noteListResponse
	if err := c.do(ctx, http.MethodGet, "/notes", query, nil, &resp); err != nil {
		return nil, err
	}

	notes := make([]domain.Note, 0, len(resp.Notes))
	for _, dto := range resp.Notes {
		notes = append(notes, dto.toDomain())
	}
	return notes, nil
}

// ListReminders returns reminders for one contact, or all reminders
// when contactID is empty.
func (c *Client) ListReminders(ctx context.Context, contactID string) ([]domain.Reminder, error) {
	query := url.Values{}
	if contactID != "" {
		query.Set("contact_id", contactID)
	}

	var resp reminderListResponse
	if err := c.do(ctx, http.MethodGet, "/reminders", query, nil, &resp); err != nil {
		return nil, err
	}

	reminders := make([]domain.Reminder, 0, len(resp.Reminders))
	for _, dto := range resp.Reminders {
		reminders = append(reminders, dto.toDomain())
	}
	return reminders, nil
}

// GetContact fetches a single contact by id.
func (c *Client) GetContact(ctx context.Context, id string) (*domain.Contact, error) {
	var dto contactDTO
	if err := c.do(ctx, http.MethodGet, "/contacts/"+url.PathEscape(id), nil, nil, &dto); err != nil {
		return nil, err
	}
	contact := dto.toDomain()
	return &contact, nil
}

// CreateNote stores a new note.
func (c *Client) CreateNote(ctx context.Context, note domain.Note) (*domain.Note, error) {
	var dto noteDTO
	if err := c.do(ctx, http.MethodPost, "/notes", nil, noteToDTO(note), &dto); err != nil {
		return nil, err
	}
	created := dto.toDomain()
	return &created, nil
}

// CreateReminder stores a new reminder.
func (c *Client) CreateReminder(ctx context.Context, reminder domain.Reminder) (*domain.Reminder, error) {
	var dto reminderDTO
	if err := c.do(ctx, http.MethodPost, "/reminders", nil, reminderToDTO(reminder), &dto); err != nil {
		return nil, err
	}
	created := dto.toDomain()
	return &created, nil
}

// UpdateContact applies an enrichment patch to a contact.
func (c *Client) UpdateContact(ctx context.Context, id string, patch domain.ContactPatch) (*domain.Contact, error) {
	var dto contactDTO
	path := "/contacts/" + url.PathEscape(id)
	if err := c.do(ctx, http.MethodPatch, path, nil, patchToDTO(patch), &dto); err != nil {
		return nil, err
	}
	updated := dto.toDomain()
	return &updated, nil
}

// do performs one API request: rate limit wait, request id, JSON
// round-trip and error mapping.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	logger.Debug("CRM %s %s", method, path)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if err := c.rateLimiter.CheckRateLimit(resp); err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.apiError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// apiError builds a typed error from a non-2xx response.
func (c *Client) apiError(resp *http.Response) error {
	var parsed errorResponse
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	_ = json.Unmarshal(data, &parsed)

	message := parsed.Message
	if message == "" {
		message = http.StatusText(resp.StatusCode)
	}

	return &APIError{
		StatusCode: resp.StatusCode,
		Message:    message,
		URL:        resp.Request.URL.String(),
	}
}
