package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssue(t *testing.T) {
	tests := []struct {
		name        string
		service     *InviteService
		expectError error
	}{
		{
			name:    "Valid secret",
			service: NewInviteService("secret", time.Hour),
		},
		{
			name:        "Missing secret",
			service:     NewInviteService("", time.Hour),
			expectError: ErrNoSecret,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, exp, err := tt.service.Issue("SP-00000001", "NW-0A1B2C3D")
			if tt.expectError != nil {
				assert.ErrorIs(t, err, tt.expectError)
				assert.Empty(t, token)
				return
			}
			assert.NoError(t, err)
			assert.NotEmpty(t, token)
			assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)
		})
	}
}

func TestParse(t *testing.T) {
	service := NewInviteService("secret", time.Hour)

	tests := []struct {
		name        string
		setup       func() string
		expectError bool
	}{
		{
			name: "Valid token",
			setup: func() string {
				token, _, _ := service.Issue("SP-00000001", "NW-0A1B2C3D")
				return token
			},
		},
		{
			name:        "Garbage",
			setup:       func() string { return "invalid.token.string" },
			expectError: true,
		},
		{
			name: "Expired token",
			setup: func() string {
				token, _, _ := NewInviteService("secret", -time.Hour).Issue("SP-00000001", "NW-0A1B2C3D")
				return token
			},
			expectError: true,
		},
		{
			name: "Signed with another secret",
			setup: func() string {
				token, _, _ := NewInviteService("other", time.Hour).Issue("SP-00000001", "NW-0A1B2C3D")
				return token
			},
			expectError: true,
		},
		{
			name: "Missing invite claims",
			setup: func() string {
				token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.StandardClaims{
					ExpiresAt: time.Now().Add(time.Hour).Unix(),
					Issuer:    inviteIssuer,
				})
				signed, _ := token.SignedString([]byte("secret"))
				return signed
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := service.Parse(tt.setup())
			if tt.expectError {
				assert.ErrorIs(t, err, ErrInvalidToken)
				assert.Nil(t, claims)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "SP-00000001", claims.ScheduleID)
			assert.Equal(t, "NW-0A1B2C3D", claims.ReviewerID)
		})
	}
}
