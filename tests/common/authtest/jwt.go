//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"lending-ledger/internal/domain/user"
	"lending-ledger/internal/pkg/config"
	"lending-ledger/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) service(t *testing.T, accessTTL time.Duration) jwt.Service {
	t.Helper()
	refreshTTL, err := time.ParseDuration(h.cfg.RefreshTokenDuration)
	require.NoError(t, err)
	return jwt.NewService(h.cfg.Secret, accessTTL, refreshTTL)
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	accessTTL, err := time.ParseDuration(h.cfg.AccessTokenDuration)
	require.NoError(t, err)
	token, err := h.service(t, accessTTL).GenerateAccessToken(userID, role)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) GenerateRefreshToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	token, err := h.service(t, time.Hour).GenerateRefreshToken(userID, role)
	require.NoError(t, err)
	return token
}

// exp is a minute in the past, well outside any second-level rounding
func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	token, err := h.service(t, -time.Minute).GenerateAccessToken(userID, role)
	require.NoError(t, err)
	return token
}
