package middlewares

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/vibegame/pixey-backend/internal/jwt"
	"github.com/vibegame/pixey-backend/internal/logger"
)

// Tokener defines the minimal token interface needed by the middleware.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

type walletKey struct{}

// WalletFromContext returns the authenticated wallet address set by
// AuthMiddleware, or "" when the request is unauthenticated.
func WalletFromContext(ctx context.Context) string {
	wallet, _ := ctx.Value(walletKey{}).(string)
	return wallet
}

// AuthMiddleware validates the bearer token and stores the wallet address
// in the request context for downstream handlers.
func AuthMiddleware(tokener Tokener) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				writeUnauthorized(w)
				return
			}

			claims, err := tokener.GetClaims(ctx, tokenString)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				writeUnauthorized(w)
				return
			}

			ctx = context.WithValue(ctx, walletKey{}, claims.WalletAddress)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func writeUnauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]any{
		"success": false,
		"error":   "Unauthorized",
	})
}
