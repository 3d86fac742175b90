package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/leavedesk/leave-backend-go/internal/domain/leave"
	"github.com/leavedesk/leave-backend-go/internal/handler/http/response"
)

type LeaveHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	ListAll(w http.ResponseWriter, r *http.Request)
	ListOwn(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &LeaveHandlerImpl{leaveService: leaveService}
}

// Create implements LeaveHandler. The owner is always the verified caller;
// the payload has no owner field to supply.
func (h *LeaveHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	principal, err := principalFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req leave.CreateLeaveRequest
	if err := decodeJSON(r, &req); err != nil {
		slog.Error("Create leave decode error", "error", err)
		response.BadRequest(w, err.Error(), nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.leaveService.Create(r.Context(), principal.ID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request submitted", created.ToResponse())
}

// ListAll implements LeaveHandler. Admin read path: every leave with the
// owning employee joined in.
func (h *LeaveHandlerImpl) ListAll(w http.ResponseWriter, r *http.Request) {
	leaves, err := h.leaveService.ListAll(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	out := make([]leave.AdminLeaveResponse, 0, len(leaves))
	for _, lv := range leaves {
		out = append(out, lv.ToResponse())
	}
	response.Success(w, out)
}

// ListOwn implements LeaveHandler. The scope is the token's embedded owner
// id; the store query is filtered server-side.
func (h *LeaveHandlerImpl) ListOwn(w http.ResponseWriter, r *http.Request) {
	principal, err := principalFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	leaves, err := h.leaveService.ListOwn(r.Context(), principal.ID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	out := make([]leave.LeaveResponse, 0, len(leaves))
	for _, lv := range leaves {
		out = append(out, lv.ToResponse())
	}
	response.Success(w, out)
}

// UpdateStatus implements LeaveHandler. Admin-only transition; a status
// outside the domain is rejected before the store is touched.
func (h *LeaveHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Leave ID is required", nil)
		return
	}

	var req leave.UpdateStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		slog.Error("UpdateStatus decode error", "error", err)
		response.BadRequest(w, err.Error(), nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	updated, err := h.leaveService.UpdateStatus(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave status updated", updated.ToResponse())
}
