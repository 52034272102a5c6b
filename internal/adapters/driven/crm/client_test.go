package crm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rolohq/rolo-mcp/internal/core/domain"
)

func TestClient_Headers(t *testing.T) {
	var gotAuth, gotRequestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-Id")
		_ = json.NewEncoder(w).Encode(contactListResponse{})
	}))
	defer server.Close()

	client := NewClient(context.Background(), server.URL, "secret-token")
	_, err := client.ListContacts(context.Background(), 10, 0)
	require.NoError(t, err)

	assert.Equal(t, "Bearer secret-token", gotAuth)
	assert.NotEmpty(t, gotRequestID)
}

func TestClient_ListContacts(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/contacts", r.URL.Path)
		assert.Equal(t, "50", r.URL.Query().Get("limit"))
		assert.Equal(t, "100", r.URL.Query().Get("offset"))

		_ = json.NewEncoder(w).Encode(contactListResponse{Contacts: []contactDTO{
			{
				ID:        "c1",
				FirstName: "John",
				LastName:  "Smith",
				Emails:    []string{"john@example.com"},
				Phones:    []phoneDTO{{Number: "5551234567", Label: "mobile"}},
				Socials:   &socialsDTO{LinkedIn: "linkedin.com/in/johnsmith"},
			},
		}})
	}))
	defer server.Close()

	client := NewClientWithHTTPClient(server.URL, server.Client())
	contacts, err := client.ListContacts(context.Background(), 50, 100)
	require.NoError(t, err)
	require.Len(t, contacts, 1)

	c := contacts[0]
	assert.Equal(t, "John Smith", c.FullName())
	assert.Equal(t, "mobile", c.Phones[0].Label)
	assert.Equal(t, "linkedin.com/in/johnsmith", c.Socials.LinkedIn)
}

func TestClient_ListNotes_ContactFilter(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("contact_id")
		_ = json.NewEncoder(w).Encode(noteListResponse{})
	}))
	defer server.Close()

	client := NewClientWithHTTPClient(server.URL, server.Client())

	_, err := client.ListNotes(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, "c1", gotQuery)

	_, err = client.ListNotes(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, gotQuery)
}

func TestClient_GetContact_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(errorResponse{Message: "contact not found"})
	}))
	defer server.Close()

	client := NewClientWithHTTPClient(server.URL, server.Client())
	_, err := client.GetContact(context.Background(), "nope")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.True(t, IsNotFound(err))

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "contact not found", apiErr.Message)
}

func TestClient_Unauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewClientWithHTTPClient(server.URL, server.Client())
	_, err := client.GetContact(context.Background(), "c1")
	assert.True(t, IsUnauthorized(err))
}

func TestClient_RateLimited(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(HeaderRetryAfter, "30")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewClientWithHTTPClient(server.URL, server.Client())
	_, err := client.ListContacts(context.Background(), 10, 0)

	require.Error(t, err)
	assert.True(t, IsRateLimited(err))
	assert.ErrorIs(t, err, domain.ErrRateLimited)

	var rateLimitErr *RateLimitError
	require.ErrorAs(t, err, &rateLimitErr)
	assert.False(t, rateLimitErr.ResetAt.IsZero())
}

func TestClient_CreateNote(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/notes", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var dto noteDTO
		require.NoError(t, json.NewDecoder(r.Body).Decode(&dto))
		assert.Equal(t, []string{"c1", "c2"}, dto.ContactIDs)

		dto.ID = "n1"
		_ = json.NewEncoder(w).Encode(dto)
	}))
	defer server.Close()

	client := NewClientWithHTTPClient(server.URL, server.Client())
	note, err := client.CreateNote(context.Background(), domain.Note{
		Body:       "Met at the conference",
		ContactIDs: []string{"c1", "c2"},
	})
	require.NoError(t, err)
	assert.Equal(t, "n1", note.ID)
	assert.Equal(t, "Met at the conference", note.Body)
}

func TestClient_UpdateContact(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/contacts/c1", r.URL.Path)

		var dto contactPatchDTO
		require.NoError(t, json.NewDecoder(r.Body).Decode(&dto))
		require.NotNil(t, dto.JobTitle)
		assert.Equal(t, "Staff Engineer", *dto.JobTitle)
		assert.Nil(t, dto.FirstName)

		_ = json.NewEncoder(w).Encode(contactDTO{ID: "c1", FirstName: "John", JobTitle: "Staff Engineer"})
	}))
	defer server.Close()

	client := NewClientWithHTTPClient(server.URL, server.Client())
	title := "Staff Engineer"
	updated, err := client.UpdateContact(context.Background(), "c1", domain.ContactPatch{JobTitle: &title})
	require.NoError(t, err)
	assert.Equal(t, "Staff Engineer", updated.JobTitle)
}
