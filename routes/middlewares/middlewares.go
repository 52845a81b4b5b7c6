package middlewares

import (
	"net/http"

	"github.com/go-chi/jwtauth"
	"github.com/lestrrat-go/jwx/jwt"
	"github.com/thomashuynhqn/Survey-API/httpx"
)

// Authenticator rejects requests whose bearer token is missing, invalid or
// expired. It sits behind jwtauth.Verifier, which parses the Authorization
// header into the request context.
func Authenticator(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, _, err := jwtauth.FromContext(r.Context())
		if err != nil {
			httpx.Unauthorized(w, r, "auth.token", "Access denied. No token provided.")
			return
		}
		if token == nil || jwt.Validate(token) != nil {
			httpx.Unauthorized(w, r, "auth.token.validate", "Invalid or expired token.")
			return
		}

		next.ServeHTTP(w, r)
	})
}
