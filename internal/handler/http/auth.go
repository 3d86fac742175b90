package http

import (
	"log/slog"
	"net/http"

	"github.com/leavedesk/leave-backend-go/internal/domain/auth"
	"github.com/leavedesk/leave-backend-go/internal/handler/http/response"
)

type AuthHandler interface {
	AdminLogin(w http.ResponseWriter, r *http.Request)
	EmployeeLogin(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	authService auth.AuthService
}

func NewAuthHandler(authService auth.AuthService) AuthHandler {
	return &AuthHandlerImpl{authService: authService}
}

// AdminLogin implements AuthHandler.
func (h *AuthHandlerImpl) AdminLogin(w http.ResponseWriter, r *http.Request) {
	var req auth.LoginRequest

	if err := decodeJSON(r, &req); err != nil {
		slog.Error("AdminLogin decode error", "error", err)
		response.BadRequest(w, err.Error(), nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	token, err := h.authService.AdminLogin(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, token)
}

// EmployeeLogin implements AuthHandler.
func (h *AuthHandlerImpl) EmployeeLogin(w http.ResponseWriter, r *http.Request) {
	var req auth.LoginRequest

	if err := decodeJSON(r, &req); err != nil {
		slog.Error("EmployeeLogin decode error", "error", err)
		response.BadRequest(w, err.Error(), nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	token, err := h.authService.EmployeeLogin(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, token)
}
