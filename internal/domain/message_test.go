// File: internal/domain/message_test.go
package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChatMessage(t *testing.T) {
	before := time.Now().UTC()
	m, err := NewChatMessage("s1", RoleUser, "Hola, busco zapatos.")
	require.NoError(t, err)

	assert.Equal(t, "s1", m.SessionID)
	assert.Equal(t, RoleUser, m.Role)
	assert.True(t, m.IsFromUser())
	assert.False(t, m.IsFromAssistant())
	assert.False(t, m.Timestamp.Before(before), "timestamp defaults to creation time")
}

func TestNewChatMessage_Validation(t *testing.T) {
	tests := []struct {
		name      string
		sessionID string
		role      Role
		message   string
	}{
		{"empty session", "", RoleUser, "hola"},
		{"blank session", "  ", RoleUser, "hola"},
		{"empty message", "s1", RoleUser, ""},
		{"blank message", "s1", RoleAssistant, "   "},
		{"unknown role", "s1", Role("system"), "hola"},
		{"empty role", "s1", Role(""), "hola"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewChatMessage(tt.sessionID, tt.role, tt.message)
			require.Error(t, err)
		})
	}
}
