//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"tutorhive/internal/domain/user"
	"tutorhive/internal/pkg/clock"
	"tutorhive/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-jwt-signing"

func newService(clk clock.Clock) *jwt.Service {
	return jwt.NewService(testSecret, 15*time.Minute, 24*time.Hour, clk)
}

func TestAccessTokenRoundTrip(t *testing.T) {
	sut := newService(clock.NewRealClock())
	userID := uuid.New()

	token, err := sut.GenerateAccessToken(userID, user.RoleStudent)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := sut.ValidateAccessToken(token)
	require.NoError(t, err)

	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "STUDENT", claims.Role)
}

func TestRefreshTokenCannotAuthenticate(t *testing.T) {
	sut := newService(clock.NewRealClock())

	refresh, err := sut.GenerateRefreshToken(uuid.New(), user.RoleTutor)
	require.NoError(t, err)

	_, err = sut.ValidateAccessToken(refresh)
	require.ErrorIs(t, err, jwt.ErrWrongPurpose)
}

func TestExpiredToken(t *testing.T) {
	// Issue the token from an hour in the past so its fifteen-minute
	// lifetime has already elapsed when validated.
	past := clock.NewMockClock(time.Now().Add(-time.Hour))
	sut := newService(past)

	token, err := sut.GenerateAccessToken(uuid.New(), user.RoleStudent)
	require.NoError(t, err)

	_, err = sut.ValidateAccessToken(token)
	require.ErrorIs(t, err, jwt.ErrExpiredToken)
}

func TestTamperedToken(t *testing.T) {
	sut := newService(clock.NewRealClock())

	token, err := sut.GenerateAccessToken(uuid.New(), user.RoleStudent)
	require.NoError(t, err)

	_, err = sut.ValidateAccessToken(token + "x")
	require.ErrorIs(t, err, jwt.ErrInvalidToken)
}

func TestTokenFromDifferentSecret(t *testing.T) {
	issuer := newService(clock.NewRealClock())
	verifier := jwt.NewService("a-different-secret-key", 15*time.Minute, 24*time.Hour, clock.NewRealClock())

	token, err := issuer.GenerateAccessToken(uuid.New(), user.RoleStudent)
	require.NoError(t, err)

	_, err = verifier.ValidateAccessToken(token)
	require.ErrorIs(t, err, jwt.ErrInvalidToken)
}
