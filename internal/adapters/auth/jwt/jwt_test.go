package jwt

import (
	"context"
	"testing"
	"time"

	"pet-adoption-api/internal/ports/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueVerify_RoundTrip(t *testing.T) {
	tokens := New("unit-secret", time.Hour)

	raw, err := tokens.Issue(auth.Claims{
		Subject:  "7",
		Username: "admin",
		Role:     auth.RoleAdmin,
	})
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	claims, err := tokens.Verify(context.Background(), raw)
	require.NoError(t, err)
	assert.Equal(t, "7", claims.Subject)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, auth.RoleAdmin, claims.Role)
	assert.True(t, claims.IsAdmin())
}

func TestIssue_RequiresSubject(t *testing.T) {
	tokens := New("unit-secret", time.Hour)

	_, err := tokens.Issue(auth.Claims{Role: auth.RoleAdmin})
	assert.Error(t, err)
}

func TestVerify_RejectsWrongSecret(t *testing.T) {
	issuer := New("secret-a", time.Hour)
	verifier := New("secret-b", time.Hour)

	raw, err := issuer.Issue(auth.Claims{Subject: "1", Role: auth.RoleAdmin})
	require.NoError(t, err)

	_, err = verifier.Verify(context.Background(), raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_RejectsGarbage(t *testing.T) {
	tokens := New("unit-secret", time.Hour)

	_, err := tokens.Verify(context.Background(), "definitely.not.ajwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_RejectsExpired(t *testing.T) {
	tokens := New("unit-secret", time.Hour)

	issuedAt := time.Now()
	tokens.now = func() time.Time { return issuedAt }

	raw, err := tokens.Issue(auth.Claims{Subject: "1", Username: "admin", Role: auth.RoleAdmin})
	require.NoError(t, err)

	// dentro de la ventana: válido
	tokens.now = func() time.Time { return issuedAt.Add(30 * time.Minute) }
	_, err = tokens.Verify(context.Background(), raw)
	require.NoError(t, err)

	// pasada la ventana: expirado
	tokens.now = func() time.Time { return issuedAt.Add(2 * time.Hour) }
	_, err = tokens.Verify(context.Background(), raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestNew_DefaultsTTL(t *testing.T) {
	tokens := New("unit-secret", 0)
	assert.Equal(t, 7*24*time.Hour, tokens.ttl)
}
