package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer_Validation(t *testing.T) {
	matcher := &mockMatcherService{}
	search := &mockSearchService{}
	contacts := &mockContactService{}

	t.Run("all ports present", func(t *testing.T) {
		server, err := NewServer(&Ports{Matcher: matcher, Search: search, Contacts: contacts})
		require.NoError(t, err)
		assert.NotNil(t, server)
	})

	t.Run("missing matcher", func(t *testing.T) {
		_, err := NewServer(&Ports{Search: search, Contacts: contacts})
		assert.ErrorIs(t, err, ErrMissingMatcherService)
	})

	t.Run("missing search", func(t *testing.T) {
		_, err := NewServer(&Ports{Matcher: matcher, Contacts: contacts})
		assert.ErrorIs(t, err, ErrMissingSearchService)
	})

	t.Run("missing contacts", func(t *testing.T) {
		_, err := NewServer(&Ports{Matcher: matcher, Search: search})
		assert.ErrorIs(t, err, ErrMissingContactService)
	})
}
