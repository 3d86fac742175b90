package jwt

import (
	"testing"
	"time"

	"github.com/leavedesk/leave-backend-go/internal/domain/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-jwt"

func TestGenerateToken_EmployeeClaims(t *testing.T) {
	svc := NewJWTService(testSecret, "24h", "168h")

	tokenString, expiresAt, err := svc.GenerateToken("65f2a7b8c9d0e1f2a3b4c5d6", "john@example.com", auth.RoleEmployee)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	token, err := svc.JWTAuth().Decode(tokenString)
	require.NoError(t, err)

	assert.Equal(t, "65f2a7b8c9d0e1f2a3b4c5d6", token.Subject())

	role, ok := token.Get("role")
	require.True(t, ok)
	assert.Equal(t, "employee", role)

	email, ok := token.Get("email")
	require.True(t, ok)
	assert.Equal(t, "john@example.com", email)

	// Employee tokens last one day.
	expected := time.Now().Add(24 * time.Hour).Unix()
	assert.InDelta(t, expected, expiresAt, 5)
}

func TestGenerateToken_AdminExpiryIsLonger(t *testing.T) {
	svc := NewJWTService(testSecret, "24h", "168h")

	_, empExp, err := svc.GenerateToken("id-1", "e@example.com", auth.RoleEmployee)
	require.NoError(t, err)
	_, admExp, err := svc.GenerateToken("id-2", "a@example.com", auth.RoleAdmin)
	require.NoError(t, err)

	// Admin tokens last seven days.
	assert.InDelta(t, 6*24*time.Hour.Seconds(), float64(admExp-empExp), 10)
}

func TestGenerateToken_InvalidExpiration(t *testing.T) {
	svc := NewJWTService(testSecret, "not-a-duration", "168h")

	_, _, err := svc.GenerateToken("id-1", "e@example.com", auth.RoleEmployee)
	assert.Error(t, err)
}

func TestDecode_WrongSecretFails(t *testing.T) {
	svc := NewJWTService(testSecret, "24h", "168h")
	other := NewJWTService("a-different-secret", "24h", "168h")

	tokenString, _, err := svc.GenerateToken("id-1", "e@example.com", auth.RoleEmployee)
	require.NoError(t, err)

	_, err = other.JWTAuth().Decode(tokenString)
	assert.Error(t, err)
}
