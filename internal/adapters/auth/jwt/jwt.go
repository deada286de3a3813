package jwt

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pet-adoption-api/internal/ports/auth"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const issuer = "pet-adoption-api"

var (
	ErrInvalidToken = errors.New("invalid or expired token")
)

// Tokens firma y verifica JWT HS256. Implementa auth.TokenIssuer y
// auth.TokenVerifier.
type Tokens struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func New(secret string, ttl time.Duration) *Tokens {
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}
	return &Tokens{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

func (t *Tokens) Issue(claims auth.Claims) (string, error) {
	if len(t.secret) == 0 {
		return "", errors.New("jwt: secret not configured")
	}
	if strings.TrimSpace(claims.Subject) == "" {
		return "", errors.New("jwt: subject required")
	}

	now := t.now()
	mc := jwtlib.MapClaims{
		"sub":  claims.Subject,
		"role": claims.Role,
		"iss":  issuer,
		"exp":  now.Add(t.ttl).Unix(),
		"iat":  now.Unix(),
		"nbf":  now.Unix(),
		"jti":  newJTI(now),
	}
	if claims.Username != "" {
		mc["username"] = claims.Username
	}
	if claims.Email != "" {
		mc["email"] = claims.Email
	}

	tok := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, mc)
	return tok.SignedString(t.secret)
}

func (t *Tokens) Verify(ctx context.Context, token string) (auth.Claims, error) {
	parsed, err := jwtlib.Parse(token, func(tok *jwtlib.Token) (any, error) {
		if _, ok := tok.Method.(*jwtlib.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("jwt: unexpected signing method %q", tok.Method.Alg())
		}
		return t.secret, nil
	}, jwtlib.WithTimeFunc(t.now))
	if err != nil || !parsed.Valid {
		return auth.Claims{}, ErrInvalidToken
	}

	mc, ok := parsed.Claims.(jwtlib.MapClaims)
	if !ok {
		return auth.Claims{}, ErrInvalidToken
	}

	sub, _ := mc["sub"].(string)
	if strings.TrimSpace(sub) == "" {
		return auth.Claims{}, ErrInvalidToken
	}

	claims := auth.Claims{Subject: sub}
	claims.Role, _ = mc["role"].(string)
	claims.Username, _ = mc["username"].(string)
	claims.Email, _ = mc["email"].(string)
	return claims, nil
}

// jti único para poder rastrear/revocar tokens más adelante.
func newJTI(now time.Time) string {
	return fmt.Sprintf("%d-%s", now.Unix(), uuid.NewString()[:8])
}
