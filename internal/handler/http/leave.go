package http

import (
	"encoding/json"
	"net/http"

	"github.com/peoplecore/hr-backend-go/internal/domain/leave"
	"github.com/peoplecore/hr-backend-go/internal/handler/http/response"
)

type LeaveHandler interface {
	ListLeaves(w http.ResponseWriter, r *http.Request)
	GetLeave(w http.ResponseWriter, r *http.Request)
	CreateLeave(w http.ResponseWriter, r *http.Request)
	UpdateLeave(w http.ResponseWriter, r *http.Request)
	DeleteLeave(w http.ResponseWriter, r *http.Request)
	ApproveLeave(w http.ResponseWriter, r *http.Request)
	RejectLeave(w http.ResponseWriter, r *http.Request)
	ListPendingLeaves(w http.ResponseWriter, r *http.Request)
	LeaveStats(w http.ResponseWriter, r *http.Request)
}

type leaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &leaveHandlerImpl{leaveService: leaveService}
}

func (h *leaveHandlerImpl) ListLeaves(w http.ResponseWriter, r *http.Request) {
	filter := leave.LeaveFilter{
		Status: queryString(r, "status"),
	}
	if employeeID, ok := queryInt64(r, "employee_id"); ok {
		filter.EmployeeID = &employeeID
	}

	results, err := h.leaveService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

func (h *leaveHandlerImpl) GetLeave(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r, "id")
	if !ok {
		response.BadRequest(w, "Leave ID is required", nil)
		return
	}

	result, err := h.leaveService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *leaveHandlerImpl) CreateLeave(w http.ResponseWriter, r *http.Request) {
	var req leave.CreateLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.leaveService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request submitted", result)
}

func (h *leaveHandlerImpl) UpdateLeave(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r, "id")
	if !ok {
		response.BadRequest(w, "Leave ID is required", nil)
		return
	}

	var req leave.UpdateLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = id

	result, err := h.leaveService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *leaveHandlerImpl) DeleteLeave(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r, "id")
	if !ok {
		response.BadRequest(w, "Leave ID is required", nil)
		return
	}

	if err := h.leaveService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.NoContent(w)
}

func (h *leaveHandlerImpl) ApproveLeave(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r, "id")
	if !ok {
		response.BadRequest(w, "Leave ID is required", nil)
		return
	}

	result, err := h.leaveService.Approve(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request approved", result)
}

func (h *leaveHandlerImpl) RejectLeave(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r, "id")
	if !ok {
		response.BadRequest(w, "Leave ID is required", nil)
		return
	}

	result, err := h.leaveService.Reject(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request rejected", result)
}

func (h *leaveHandlerImpl) ListPendingLeaves(w http.ResponseWriter, r *http.Request) {
	results, err := h.leaveService.ListPending(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

func (h *leaveHandlerImpl) LeaveStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.leaveService.Stats(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}
