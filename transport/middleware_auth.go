package transport

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/hoardspace/application/account"
	"github.com/muhammadheryan/hoardspace/constant"
	utilsContext "github.com/muhammadheryan/hoardspace/utils/context"
	"github.com/muhammadheryan/hoardspace/utils/errors"
)

// AuthMiddleware attaches the caller to the context when the request carries
// a valid access token. Anonymous requests pass through; RequireAuth guards
// the routes that need a caller.
func AuthMiddleware(accountApp account.AccountApp) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := accessToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			payload, err := accountApp.ValidateToken(r.Context(), token)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			ctx := utilsContext.WithCaller(r.Context(), payload.AccountID, payload.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func RequireAuth() mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if utilsContext.GetCaller(r.Context()) == nil {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// accessToken reads the cookie first, then an Authorization bearer header.
func accessToken(r *http.Request) string {
	if v := cookieValue(r, accessTokenCookie); v != "" {
		return v
	}
	auth := r.Header.Get("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return ""
}
