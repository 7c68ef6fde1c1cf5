package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/lmarchetti/storefront-backend/pkg/logger"
)

type contextKey string

const (
	ctxCartToken contextKey = "cart_token"

	// CartTokenHeader carries the shopper's cart identity. The server mints
	// one on first contact and echoes it back on every response.
	CartTokenHeader = "X-Cart-Token"

	cartTokenCookie = "cart_token"
)

// CartTokenFromContext returns the cart token injected by CartToken, or "".
func CartTokenFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(ctxCartToken).(string); ok {
		return v
	}
	return ""
}

// WithCartToken injects the cart token into the context.
func WithCartToken(ctx context.Context, token string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxCartToken, token)
}

// CartToken resolves the shopper's cart token from the request header or
// cookie, minting a fresh one when neither is present. The token is opaque to
// clients; anything that is not a UUID is replaced rather than rejected.
func CartToken(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get(CartTokenHeader)
			if token == "" {
				if cookie, err := r.Cookie(cartTokenCookie); err == nil {
					token = cookie.Value
				}
			}
			if _, err := uuid.Parse(token); err != nil {
				token = uuid.NewString()
			}

			w.Header().Set(CartTokenHeader, token)
			http.SetCookie(w, &http.Cookie{
				Name:     cartTokenCookie,
				Value:    token,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})

			ctx := WithCartToken(r.Context(), token)
			if logg != nil {
				ctx = logg.WithCartToken(ctx, token)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
