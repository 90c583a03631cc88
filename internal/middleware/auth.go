package middleware

import (
	"context"
	"errors"
	"net/http"

	"portfolio-be/internal/auth"
	"portfolio-be/internal/logger"
	"portfolio-be/internal/utils"

	"go.uber.org/zap"
)

type contextKey string

const TokenClaimsKey contextKey = "jwtClaims"

// ClaimsFrom returns the admin claims stored by RequireAdmin.
func ClaimsFrom(ctx context.Context) (*auth.Claims, bool) {
	claims, ok := ctx.Value(TokenClaimsKey).(*auth.Claims)
	return claims, ok
}

// RequireAdmin lets a request through only with a valid admin token.
func RequireAdmin(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := logger.FromCtx(r.Context())

			tokenStr := auth.ExtractAccessToken(r)
			if tokenStr == "" {
				utils.WriteJSONError(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			claims, err := auth.ParseJWT(secret, tokenStr)
			if err != nil {
				if !errors.Is(err, auth.ErrInvalidToken) {
					log.Error("token verification unavailable", zap.Error(err))
				}
				utils.WriteJSONError(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			if claims.Role != auth.RoleAdmin {
				log.Warn("non-admin token on admin route", zap.String("subject", claims.Subject))
				utils.WriteJSONError(w, "forbidden: admin only", http.StatusForbidden)
				return
			}

			ctx := context.WithValue(r.Context(), TokenClaimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
