package auth

import "context"

type AuthService interface {
	// AdminLogin verifies admin credentials and issues a 7-day admin token.
	AdminLogin(ctx context.Context, req LoginRequest) (TokenResponse, error)

	// EmployeeLogin verifies employee credentials and issues a 1-day
	// employee token along with the caller's profile fields.
	EmployeeLogin(ctx context.Context, req LoginRequest) (EmployeeTokenResponse, error)
}
