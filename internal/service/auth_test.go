package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitatrack/backend/internal/testhelpers"
	"github.com/vitatrack/backend/internal/types"
)

const testSecret = "test-secret-key"

func TestRegisterAndLogin(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	svc := NewAuthService(db, testSecret)
	ctx := context.Background()

	user, token, err := svc.Register(ctx, "jamie@example.com", "hunter22", "Jamie", "Rivera")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "jamie@example.com", user.Email)
	assert.NotEqual(t, "hunter22", user.PasswordHash)

	// Duplicate registration is rejected.
	_, _, err = svc.Register(ctx, "jamie@example.com", "other", "J", "R")
	assert.Error(t, err)

	loggedIn, token, err := svc.Login(ctx, "jamie@example.com", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)
	assert.NotEmpty(t, token)

	_, _, err = svc.Login(ctx, "jamie@example.com", "wrong-password")
	assert.Error(t, err)
	_, _, err = svc.Login(ctx, "nobody@example.com", "hunter22")
	assert.Error(t, err)
}

func TestTokenRoundTrip(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	svc := NewAuthService(db, testSecret)

	user := testhelpers.CreateTestUser(t, db)
	token, err := svc.GenerateToken(user)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Email, claims.Email)

	expiry := claims.ExpiresAt.Time
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), expiry, time.Minute)
}

func TestValidateTokenRejectsBadTokens(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	svc := NewAuthService(db, testSecret)
	user := testhelpers.CreateTestUser(t, db)

	_, err := svc.ValidateToken("not-a-token")
	assert.Error(t, err)

	// Token signed with a different secret.
	other := NewAuthService(db, "different-secret")
	token, err := other.GenerateToken(user)
	require.NoError(t, err)
	_, err = svc.ValidateToken(token)
	assert.Error(t, err)

	// Expired token.
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, &types.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-48 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-24 * time.Hour)),
		},
		UserID: user.ID,
		Email:  user.Email,
	})
	signed, err := expired.SignedString([]byte(testSecret))
	require.NoError(t, err)
	_, err = svc.ValidateToken(signed)
	assert.Error(t, err)
}

func TestGetProfileAndAvatar(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	svc := NewAuthService(db, testSecret)
	ctx := context.Background()
	user := testhelpers.CreateTestUser(t, db)

	got, err := svc.GetProfile(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, got.Email)

	require.NoError(t, svc.SetAvatarURL(ctx, user.ID, "https://cdn.example.com/a.png"))
	got, err = svc.GetProfile(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/a.png", got.AvatarURL)

	_, err = svc.GetProfile(ctx, uuid.New())
	assert.Error(t, err)
}
