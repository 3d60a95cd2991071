package handlers

import (
	"context"
	"net/http"

	"github.com/vibegame/pixey-backend/internal/jwt"
	"github.com/vibegame/pixey-backend/internal/middlewares"
)

// stubTokener resolves every request to a fixed wallet, letting tests
// drive authenticated handlers through the real auth middleware.
type stubTokener struct {
	wallet string
	err    error
}

func (s stubTokener) GetTokenFromRequest(_ context.Context, _ *http.Request) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return "token", nil
}

func (s stubTokener) GetClaims(_ context.Context, _ string) (*jwt.Claims, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &jwt.Claims{WalletAddress: s.wallet}, nil
}

func asWallet(wallet string, next http.HandlerFunc) http.Handler {
	return middlewares.AuthMiddleware(stubTokener{wallet: wallet})(next)
}

func asFailingAuth(next http.HandlerFunc) http.Handler {
	return middlewares.AuthMiddleware(stubTokener{err: http.ErrNoCookie})(next)
}
