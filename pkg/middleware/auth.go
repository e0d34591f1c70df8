package middleware

import (
	"net/http"
	"strings"

	"store-rating/pkg/utils"

	"go.uber.org/zap"
)

// Authenticate middleware validates the bearer JWT and puts the
// resolved user ID and role into the request context.
// Any authentication failure (missing, malformed, invalid or expired
// token) is a 401; 403 is reserved for role mismatches.
func Authenticate(secret string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Extract token
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Missing authorization token")
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
				return
			}

			token := parts[1]

			claims, err := utils.ValidateToken(token, secret)
			if err != nil {
				logger.Warn("Invalid or expired token",
					zap.String("path", r.URL.Path),
					zap.Error(err))
				utils.ResponseUnauthorized(w, "Invalid or expired token")
				return
			}

			// Set context with user info
			ctx := utils.SetUserContext(r.Context(), claims.UserID, claims.Role)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole middleware checks the role resolved by Authenticate
func RequireRole(role string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userRole, ok := utils.GetRoleFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			if userRole != role {
				logger.Warn("Insufficient privileges",
					zap.String("required_role", role),
					zap.String("user_role", userRole),
					zap.String("path", r.URL.Path))
				utils.ResponseForbidden(w, "Insufficient privileges")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
