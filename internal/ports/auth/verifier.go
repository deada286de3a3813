package auth

import "context"

// TokenVerifier verifica un token firmado y devuelve claims o error.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}

// TokenIssuer emite un token firmado con expiración para las claims dadas.
type TokenIssuer interface {
	Issue(claims Claims) (string, error)
}
