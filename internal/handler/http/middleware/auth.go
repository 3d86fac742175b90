package middleware

import (
	"errors"
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/leavedesk/leave-backend-go/internal/domain/auth"
	"github.com/leavedesk/leave-backend-go/internal/handler/http/response"
)

// AuthRequired rejects requests whose bearer token did not verify. The
// failure reasons stay distinct: missing token, expired token, and
// malformed or badly signed token each report their own message.
func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())

			if err != nil {
				switch {
				case errors.Is(err, jwtauth.ErrNoTokenFound):
					response.HandleError(w, auth.ErrTokenMissing)
				case errors.Is(err, jwtauth.ErrExpired):
					response.HandleError(w, auth.ErrTokenExpired)
				default:
					response.Unauthorized(w, "Invalid token ("+err.Error()+")")
				}
				return
			}

			if token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			claims, err := token.AsMap(r.Context())
			if err != nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}
			if _, err := auth.FromClaims(claims); err != nil {
				response.HandleError(w, err)
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}
