package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContact_FullName(t *testing.T) {
	tests := []struct {
		name    string
		contact Contact
		want    string
	}{
		{"both parts", Contact{FirstName: "Alice", LastName: "Johnson"}, "Alice Johnson"},
		{"first only", Contact{FirstName: "Alice"}, "Alice"},
		{"last only", Contact{LastName: "Johnson"}, "Johnson"},
		{"neither", Contact{}, ""},
		{"padded parts", Contact{FirstName: " Alice ", LastName: " Johnson "}, "Alice Johnson"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.contact.FullName())
		})
	}
}

func TestSocialProfiles_All(t *testing.T) {
	t.Run("returns only non-empty profiles", func(t *testing.T) {
		s := SocialProfiles{
			LinkedIn: "linkedin.com/in/alice",
			Twitter:  "twitter.com/alice",
		}
		assert.Equal(t, []string{"linkedin.com/in/alice", "twitter.com/alice"}, s.All())
	})

	t.Run("empty profiles yield nil", func(t *testing.T) {
		assert.Nil(t, SocialProfiles{}.All())
	})
}

func TestReminder_Status(t *testing.T) {
	assert.Equal(t, "completed", (&Reminder{Complete: true}).Status())
	assert.Equal(t, "pending", (&Reminder{}).Status())
}

func TestMatchParams_Empty(t *testing.T) {
	assert.True(t, MatchParams{}.Empty())
	assert.False(t, MatchParams{Name: "Alice"}.Empty())
	assert.False(t, MatchParams{Email: "a@b.com"}.Empty())
	assert.False(t, MatchParams{Phone: "5551234567"}.Empty())
	assert.False(t, MatchParams{SocialURL: "@alice"}.Empty())
	assert.False(t, MatchParams{Company: "Anthropic"}.Empty())
}
