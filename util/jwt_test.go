package util

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	userID := uuid.New()
	token, err := GenerateToken(userID, "jo@x.com", "user")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, "jo@x.com", claims.Email)
	assert.Equal(t, "user", claims.Role)
	assert.Equal(t, "luxmeet-backend", claims.Issuer)
}

func TestGenerateTokenRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := GenerateToken(uuid.New(), "jo@x.com", "user")
	assert.Error(t, err)
}

func TestValidateTokenRejectsTampering(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateToken(uuid.New(), "jo@x.com", "user")
	require.NoError(t, err)

	_, err = ValidateToken(token + "x")
	assert.Error(t, err)

	t.Setenv("JWT_SECRET", "different-secret")
	_, err = ValidateToken(token)
	assert.Error(t, err)
}
