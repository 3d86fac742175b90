package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/leavedesk/leave-backend-go/internal/domain/auth"
	"github.com/leavedesk/leave-backend-go/internal/handler/http/response"
)

// AdminOnly requires a verified admin principal. A verified token of the
// wrong kind is a 403, not a 401.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal, err := principalFromRequest(r)
		if err != nil {
			response.HandleError(w, err)
			return
		}

		if principal.Role != auth.RoleAdmin {
			response.HandleError(w, auth.ErrAdminAccessRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// EmployeeOnly requires a verified employee principal.
func EmployeeOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal, err := principalFromRequest(r)
		if err != nil {
			response.HandleError(w, err)
			return
		}

		if principal.Role != auth.RoleEmployee {
			response.HandleError(w, auth.ErrEmployeeAccessRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func principalFromRequest(r *http.Request) (auth.Principal, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return auth.Principal{}, auth.ErrInvalidToken
	}
	return auth.FromClaims(claims)
}
