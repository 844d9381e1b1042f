package middleware

import (
	"net/http"
	"strings"

	"charterhub/skybroker/internal/auth"
	"charterhub/skybroker/internal/db/repositories"
)

// AuthMiddleware authenticates operator requests via a bearer JWT or a
// database-backed API key and stores the resulting claims in the request
// context.
func AuthMiddleware(keysRepo *repositories.KeysRepo) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

			authHeader := r.Header.Get("Authorization")
			apiKey := r.Header.Get("X-API-Key")

			var claims auth.OperatorClaims

			switch {
			case strings.HasPrefix(authHeader, "Bearer "):
				tokenClaims, err := auth.ParseToken(strings.TrimPrefix(authHeader, "Bearer "))
				if err != nil {
					http.Error(w, "Unauthorized. Invalid token", http.StatusUnauthorized)
					return
				}
				claims = tokenClaims

			case apiKey != "":
				keyRes, err := keysRepo.GetStatus(r.Context(), apiKey)
				if err != nil || keyRes == nil {
					http.Error(w, "Unauthorized. Invalid API Key", http.StatusUnauthorized)
					return
				}

				if !keyRes.Status {
					http.Error(w, "Unauthorized. Inactive API Key", http.StatusUnauthorized)
					return
				}

				claims = &auth.APIKeyClaims{
					CompanyUUID: keyRes.CompanyID,
					RoleValue:   auth.RoleOperator,
				}

			default:
				http.Error(w, "Unauthorized. Missing credentials", http.StatusUnauthorized)
				return
			}

			ctx := auth.SetOperatorClaims(r.Context(), claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
