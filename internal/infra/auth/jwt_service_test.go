package auth

import (
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			JWTSecret: "test_secret_key_very_long_for_testing",
			TokenTTL:  time.Hour,
		},
	}
}

func TestJWTService_GenerateAndValidateToken(t *testing.T) {
	svc, err := NewJWTService(newTestTokenConfig())
	require.NoError(t, err)
	require.NotNil(t, svc)

	userID := uuid.New()

	token, err := svc.GenerateToken(userID, entity.RoleCustomer)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, entity.RoleCustomer, claims.Role)
}

func TestJWTService_AdminRoleRoundTrip(t *testing.T) {
	svc, err := NewJWTService(newTestTokenConfig())
	require.NoError(t, err)

	token, err := svc.GenerateToken(uuid.New(), entity.RoleAdmin)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, claims.Role)
}

func TestJWTService_InvalidToken(t *testing.T) {
	svc, err := NewJWTService(newTestTokenConfig())
	require.NoError(t, err)

	claims, err := svc.ValidateToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.Contains(t, err.Error(), "failed to parse token structure")
}

func TestJWTService_WrongSecretRejected(t *testing.T) {
	svc, err := NewJWTService(newTestTokenConfig())
	require.NoError(t, err)

	otherCfg := newTestTokenConfig()
	otherCfg.Auth.JWTSecret = "a_completely_different_secret_key"
	other, err := NewJWTService(otherCfg)
	require.NoError(t, err)

	token, err := other.GenerateToken(uuid.New(), entity.RoleCustomer)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_MissingSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{Auth: &config.AuthConfig{}})
	assert.Error(t, err)
}

func TestJWTService_TokenDuration(t *testing.T) {
	svc, err := NewJWTService(newTestTokenConfig())
	require.NoError(t, err)
	assert.Equal(t, time.Hour, svc.TokenDuration())
}
