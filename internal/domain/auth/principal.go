package auth

// Role is the principal kind embedded in every bearer token.
type Role string

const (
	RoleEmployee Role = "employee"
	RoleAdmin    Role = "admin"
)

// Principal is the verified actor behind a request, reconstructed from
// token claims. The ID always comes from the token, never from request
// input.
type Principal struct {
	ID    string
	Email string
	Role  Role
}

// FromClaims rebuilds a Principal from decoded token claims.
func FromClaims(claims map[string]interface{}) (Principal, error) {
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return Principal{}, ErrInvalidToken
	}
	roleStr, ok := claims["role"].(string)
	if !ok {
		return Principal{}, ErrInvalidToken
	}
	role := Role(roleStr)
	if role != RoleEmployee && role != RoleAdmin {
		return Principal{}, ErrInvalidToken
	}
	email, _ := claims["email"].(string)

	return Principal{ID: sub, Email: email, Role: role}, nil
}
