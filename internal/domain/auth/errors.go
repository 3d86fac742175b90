package auth

import "errors"

var (
	ErrInvalidCredentials     = errors.New("invalid email or password")
	ErrTokenMissing           = errors.New("authorization token not found")
	ErrInvalidToken           = errors.New("invalid token")
	ErrTokenExpired           = errors.New("token has expired")
	ErrAdminAccessRequired    = errors.New("admin access required")
	ErrEmployeeAccessRequired = errors.New("employee access required")
)
