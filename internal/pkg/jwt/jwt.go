package jwt

import (
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/leavedesk/leave-backend-go/internal/domain/auth"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

type Service interface {
	// GenerateToken issues a signed bearer token embedding the principal
	// kind and identifier. The expiry depends on the role: employee tokens
	// are short-lived, admin tokens last a week.
	GenerateToken(principalID string, email string, role auth.Role) (token string, expiresAt int64, err error)
	JWTAuth() *jwtauth.JWTAuth
}

type JWTService struct {
	secretKey              string
	employeeExpirationTime string
	adminExpirationTime    string
	tokenAuth              *jwtauth.JWTAuth
}

func NewJWTService(secretKey string, employeeExpirationTime string, adminExpirationTime string) Service {
	return &JWTService{
		secretKey:              secretKey,
		employeeExpirationTime: employeeExpirationTime,
		adminExpirationTime:    adminExpirationTime,
		tokenAuth:              jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func (j *JWTService) GenerateToken(principalID string, email string, role auth.Role) (token string, expiresAt int64, err error) {
	expiration := j.employeeExpirationTime
	if role == auth.RoleAdmin {
		expiration = j.adminExpirationTime
	}

	expDuration, err := time.ParseDuration(expiration)
	if err != nil {
		return "", 0, err
	}
	expiresAt = time.Now().Add(expDuration).Unix()

	claims := map[string]interface{}{
		"sub":   principalID,
		"email": email,
		"role":  string(role),
		"exp":   expiresAt,
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}
