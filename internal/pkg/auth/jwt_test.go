package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eltecal/backend/internal/app/models"
)

func testJWTService(accessExp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  accessExp,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "eltecal.app",
	})
}

func TestGenerateAndValidateTokenPair(t *testing.T) {
	service := testJWTService(time.Minute)
	user := &models.User{ID: 42, Email: "student@inf.elte.hu"}

	accessToken, refreshToken, expiresIn, refreshExpiresIn, err := service.GenerateTokenPair(user)
	require.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)
	assert.NotEqual(t, accessToken, refreshToken)
	assert.Equal(t, 60, expiresIn)
	assert.Equal(t, int((24 * time.Hour).Seconds()), refreshExpiresIn)

	claims, err := service.ValidateToken(accessToken)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "student@inf.elte.hu", claims.Email)
	assert.Equal(t, "eltecal.app", claims.Issuer)
	assert.Equal(t, "42", claims.Subject)
}

func TestValidateTokenExpired(t *testing.T) {
	service := testJWTService(-time.Minute)
	user := &models.User{ID: 1, Email: "student@inf.elte.hu"}

	accessToken, _, _, _, err := service.GenerateTokenPair(user)
	require.NoError(t, err)

	_, err = service.ValidateToken(accessToken)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	service := testJWTService(time.Minute)
	user := &models.User{ID: 1, Email: "student@inf.elte.hu"}

	accessToken, _, _, _, err := service.GenerateTokenPair(user)
	require.NoError(t, err)

	other := NewJWTService(JWTConfig{
		SecretKey:       "different-secret",
		AccessTokenExp:  time.Minute,
		RefreshTokenExp: time.Hour,
		TokenIssuer:     "eltecal.app",
	})
	_, err = other.ValidateToken(accessToken)
	assert.Error(t, err)
}

func TestValidateTokenGarbage(t *testing.T) {
	service := testJWTService(time.Minute)

	_, err := service.ValidateToken("not.a.jwt")
	assert.Error(t, err)
}

func TestValidateAndExtractClaims(t *testing.T) {
	service := testJWTService(time.Minute)

	_, err := service.ValidateAndExtractClaims("")
	assert.ErrorIs(t, err, ErrInvalidToken)

	user := &models.User{ID: 7, Email: "student@inf.elte.hu"}
	accessToken, _, _, _, err := service.GenerateTokenPair(user)
	require.NoError(t, err)

	claims, err := service.ValidateAndExtractClaims(accessToken)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	token, err = ExtractBearerToken("abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	_, err = ExtractBearerToken("")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestGetRefreshTokenExpiry(t *testing.T) {
	service := testJWTService(time.Minute)

	expiry := service.GetRefreshTokenExpiry()
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), expiry, time.Minute)
}
