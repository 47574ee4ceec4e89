package jwt

import (
	"context"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/transco/backoffice-go/internal/domain/access"
)

func TestGenerateAndParseClaims(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour)

	token, expiresAt, err := svc.GenerateAccessToken(Claims{
		UserName: "Ana Cruz",
		Role:     access.RoleViewer,
		Scope:    access.Named("Ben Reyes", "Carlo Santos"),
	})
	require.NoError(t, err)
	assert.Greater(t, expiresAt, time.Now().Unix())

	verified, err := jwtauth.VerifyToken(svc.JWTAuth(), token)
	require.NoError(t, err)
	raw, err := verified.AsMap(context.Background())
	require.NoError(t, err)

	claims, err := ParseClaims(raw)
	require.NoError(t, err)
	assert.Equal(t, "Ana Cruz", claims.UserName)
	assert.Equal(t, access.RoleViewer, claims.Role)
	assert.Equal(t, access.KindNamed, claims.Scope.Kind)
	assert.Equal(t, []string{"Ben Reyes", "Carlo Santos"}, claims.Scope.Names)
	assert.Equal(t, "access", raw["type"])
}

func TestParseClaims_DefaultsToUserOnly(t *testing.T) {
	claims, err := ParseClaims(map[string]interface{}{"user_name": "Ana Cruz"})
	require.NoError(t, err)
	assert.Equal(t, access.KindUserOnly, claims.Scope.Kind)
}

func TestParseClaims_MissingUser(t *testing.T) {
	_, err := ParseClaims(map[string]interface{}{"role": "hr"})
	assert.ErrorIs(t, err, access.ErrInvalidToken)
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	token, _, err := NewJWTService("secret-a", time.Hour).GenerateAccessToken(Claims{UserName: "x"})
	require.NoError(t, err)

	_, err = jwtauth.VerifyToken(NewJWTService("secret-b", time.Hour).JWTAuth(), token)
	assert.Error(t, err)
}
