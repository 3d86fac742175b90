package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/leavedesk/leave-backend-go/internal/domain/employee"
	"github.com/leavedesk/leave-backend-go/internal/handler/http/response"
)

type EmployeeHandler interface {
	Signup(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	GetProfile(w http.ResponseWriter, r *http.Request)
	UpdateProfile(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type EmployeeHandlerImpl struct {
	employeeService employee.EmployeeService
}

func NewEmployeeHandler(employeeService employee.EmployeeService) EmployeeHandler {
	return &EmployeeHandlerImpl{employeeService: employeeService}
}

// Signup implements EmployeeHandler. Multipart form with name, email,
// password and an optional image field.
func (h *EmployeeHandlerImpl) Signup(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		slog.Error("Signup multipart parse error", "error", err)
		response.BadRequest(w, "Failed to parse form data", nil)
		return
	}

	req := employee.SignupRequest{
		Name:     r.FormValue("name"),
		Email:    r.FormValue("email"),
		Password: r.FormValue("password"),
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	image, file, err := imageFromRequest(r)
	if err != nil {
		response.BadRequest(w, "Failed to read image upload", nil)
		return
	}
	if file != nil {
		defer (*file).Close()
	}

	profile, err := h.employeeService.Signup(r.Context(), req, image)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Registration successful! Please login.", profile)
}

// List implements EmployeeHandler. Admin-only; password hashes never leave
// the service layer.
func (h *EmployeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.employeeService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, profiles)
}

// GetProfile implements EmployeeHandler. The record is looked up by the
// token's embedded identifier.
func (h *EmployeeHandlerImpl) GetProfile(w http.ResponseWriter, r *http.Request) {
	principal, err := principalFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	profile, err := h.employeeService.GetProfile(r.Context(), principal.ID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, profile)
}

// UpdateProfile implements EmployeeHandler. Multipart form with optional
// name and optional image; omitted fields keep their stored values.
func (h *EmployeeHandlerImpl) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	principal, err := principalFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		slog.Error("UpdateProfile multipart parse error", "error", err)
		response.BadRequest(w, "Failed to parse form data", nil)
		return
	}

	var req employee.UpdateProfileRequest
	if values, ok := r.MultipartForm.Value["name"]; ok && len(values) > 0 {
		req.Name = &values[0]
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	image, file, err := imageFromRequest(r)
	if err != nil {
		response.BadRequest(w, "Failed to read image upload", nil)
		return
	}
	if file != nil {
		defer (*file).Close()
	}

	profile, err := h.employeeService.UpdateProfile(r.Context(), principal.ID, req, image)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, profile)
}

// Delete implements EmployeeHandler. Admin-only; cascades the employee's
// leave history before confirming.
func (h *EmployeeHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	if err := h.employeeService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee and their leave history deleted successfully", nil)
}
