package auth

import (
	"context"
	"errors"
	"fmt"

	adminDomain "github.com/leavedesk/leave-backend-go/internal/domain/admin"
	"github.com/leavedesk/leave-backend-go/internal/domain/auth"
	"github.com/leavedesk/leave-backend-go/internal/domain/employee"
	"github.com/leavedesk/leave-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	adminRepo    adminDomain.AdminRepository
	employeeRepo employee.EmployeeRepository
	jwt.Service
}

func NewAuthService(adminRepo adminDomain.AdminRepository, employeeRepo employee.EmployeeRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		adminRepo:    adminRepo,
		employeeRepo: employeeRepo,
		Service:      jwtService,
	}
}

// AdminLogin implements auth.AuthService.
func (a *AuthServiceImpl) AdminLogin(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	adm, err := a.adminRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, adminDomain.ErrAdminNotFound) {
			// Unknown email and wrong password are indistinguishable to
			// the caller.
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get admin by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(adm.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	token, expiresAt, err := a.GenerateToken(adm.ID.Hex(), adm.Email, auth.RoleAdmin)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	return auth.TokenResponse{Token: token, ExpiresAt: expiresAt}, nil
}

// EmployeeLogin implements auth.AuthService.
func (a *AuthServiceImpl) EmployeeLogin(ctx context.Context, req auth.LoginRequest) (auth.EmployeeTokenResponse, error) {
	emp, err := a.employeeRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return auth.EmployeeTokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.EmployeeTokenResponse{}, fmt.Errorf("failed to get employee by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(emp.PasswordHash), []byte(req.Password)); err != nil {
		return auth.EmployeeTokenResponse{}, auth.ErrInvalidCredentials
	}

	token, expiresAt, err := a.GenerateToken(emp.ID.Hex(), emp.Email, auth.RoleEmployee)
	if err != nil {
		return auth.EmployeeTokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	return auth.EmployeeTokenResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Name:      emp.Name,
		Email:     emp.Email,
		Avatar:    emp.Avatar,
	}, nil
}
