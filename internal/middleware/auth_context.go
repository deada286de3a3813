package middleware

import (
	"context"
	"net/http"
	"strings"

	"pet-adoption-api/internal/domain/admins"
	"pet-adoption-api/internal/platform/web"
	"pet-adoption-api/internal/ports/auth"
)

type ctxKey string

const (
	claimsKey ctxKey = "claims"
	adminKey  ctxKey = "admin"
)

// AdminAuth protege el subárbol /api/admin:
// - exige Authorization: Bearer <token> firmado y vigente,
// - exige rol admin/super_admin en las claims,
// - re-busca el admin por username; si ya no existe => 401
//   (un admin borrado pierde acceso aunque su token siga vigente).
func AdminAuth(verifier auth.TokenVerifier, adminsSvc *admins.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r.Header.Get("Authorization"))
			if token == "" {
				web.WriteError(w, http.StatusUnauthorized, "Authentication required")
				return
			}

			claims, err := verifier.Verify(r.Context(), token)
			if err != nil || !claims.IsAdmin() || strings.TrimSpace(claims.Username) == "" {
				web.WriteError(w, http.StatusUnauthorized, "Invalid or expired token")
				return
			}

			admin, err := adminsSvc.GetByUsername(r.Context(), claims.Username)
			if err != nil {
				web.WriteError(w, http.StatusUnauthorized, "Invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			ctx = context.WithValue(ctx, adminKey, admin)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetClaims devuelve las claims del request, si las hay.
func GetClaims(ctx context.Context) (auth.Claims, bool) {
	v := ctx.Value(claimsKey)
	if v == nil {
		return auth.Claims{}, false
	}
	c, ok := v.(auth.Claims)
	return c, ok
}

// GetAdmin devuelve el admin autenticado del request, si lo hay.
func GetAdmin(ctx context.Context) (admins.Admin, bool) {
	v := ctx.Value(adminKey)
	if v == nil {
		return admins.Admin{}, false
	}
	a, ok := v.(admins.Admin)
	return a, ok
}

func bearerToken(authHeader string) string {
	if strings.TrimSpace(authHeader) == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		return ""
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
