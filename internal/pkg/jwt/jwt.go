package jwt

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"

	"github.com/transco/backoffice-go/internal/domain/access"
)

// Claims is what an access token says about its bearer.
type Claims struct {
	UserName string
	Role     access.Role
	Scope    access.Scope
}

type Service interface {
	GenerateAccessToken(claims Claims) (token string, expiresAt int64, err error)
	JWTAuth() *jwtauth.JWTAuth
}

type JWTService struct {
	accessTokenExpirationTime time.Duration
	tokenAuth                 *jwtauth.JWTAuth
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func NewJWTService(secretKey string, accessTokenExpirationTime time.Duration) Service {
	return &JWTService{
		accessTokenExpirationTime: accessTokenExpirationTime,
		tokenAuth:                 jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

// GenerateAccessToken signs a token for claims. Tokens are normally issued by
// the identity service sharing the secret; this is used by operators and tests.
func (j *JWTService) GenerateAccessToken(claims Claims) (token string, expiresAt int64, err error) {
	expiresAt = time.Now().Add(j.accessTokenExpirationTime).Unix()

	payload := map[string]interface{}{
		"user_name": claims.UserName,
		"role":      string(claims.Role),
		"scope":     string(claims.Scope.Kind),
		"type":      "access",
		"exp":       expiresAt,
	}
	if len(claims.Scope.Names) > 0 {
		payload["scope_names"] = claims.Scope.Names
	}

	_, tokenString, err := j.tokenAuth.Encode(payload)
	return tokenString, expiresAt, err
}

// ClaimsFromContext reads the verified token placed in ctx by jwtauth.Verifier.
func ClaimsFromContext(ctx context.Context) (Claims, error) {
	_, raw, err := jwtauth.FromContext(ctx)
	if err != nil {
		return Claims{}, fmt.Errorf("%w: %v", access.ErrInvalidToken, err)
	}
	return ParseClaims(raw)
}

// ParseClaims converts a raw claim map into Claims.
func ParseClaims(raw map[string]interface{}) (Claims, error) {
	userName, ok := raw["user_name"].(string)
	if !ok || userName == "" {
		return Claims{}, fmt.Errorf("%w: user_name claim is missing or invalid", access.ErrInvalidToken)
	}

	role, _ := raw["role"].(string)
	kind, _ := raw["scope"].(string)

	var names []string
	switch v := raw["scope_names"].(type) {
	case []string:
		names = v
	case []interface{}:
		for _, n := range v {
			if s, ok := n.(string); ok {
				names = append(names, s)
			}
		}
	}

	return Claims{
		UserName: userName,
		Role:     access.Role(role),
		Scope:    access.ParseScope(kind, names),
	}, nil
}
