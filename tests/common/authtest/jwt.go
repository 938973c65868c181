//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"candidate-assistance/internal/domain/actor"
	"candidate-assistance/internal/pkg/config"
	"candidate-assistance/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, role actor.Role) (string, actor.Actor) {
	t.Helper()
	act := actor.Actor{ID: uuid.New(), Role: role}
	token, err := jwt.NewService(h.cfg.Secret, h.cfg.Issuer).GenerateToken(act, time.Hour)
	require.NoError(t, err)
	return token, act
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, role actor.Role) string {
	t.Helper()
	act := actor.Actor{ID: uuid.New(), Role: role}
	token, err := jwt.NewService(h.cfg.Secret, h.cfg.Issuer).GenerateToken(act, -time.Minute)
	require.NoError(t, err)
	return token
}
