//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"salon-dashboard/internal/pkg/config"
	"salon-dashboard/internal/pkg/jwt"

	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID, userType string) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	token, err := jwt.NewService(h.cfg.Secret, duration).GenerateToken(userID, userType)
	require.NoError(t, err)
	return token
}

// CreateExpiredToken issues a token whose lifetime ended an hour ago.
func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID, userType string) string {
	t.Helper()
	issued := time.Now().Add(-2 * time.Hour)
	token, err := jwt.NewService(h.cfg.Secret, time.Hour).
		WithNow(func() time.Time { return issued }).
		GenerateToken(userID, userType)
	require.NoError(t, err)
	return token
}
