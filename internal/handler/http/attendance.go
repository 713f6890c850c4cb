package http

import (
	"encoding/json"
	"net/http"

	"github.com/peoplecore/hr-backend-go/internal/domain/attendance"
	"github.com/peoplecore/hr-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	ListAttendance(w http.ResponseWriter, r *http.Request)
	GetAttendance(w http.ResponseWriter, r *http.Request)
	CreateAttendance(w http.ResponseWriter, r *http.Request)
	UpdateAttendance(w http.ResponseWriter, r *http.Request)
	DeleteAttendance(w http.ResponseWriter, r *http.Request)
	Clock(w http.ResponseWriter, r *http.Request)
	TodayAttendance(w http.ResponseWriter, r *http.Request)
	AttendanceStats(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{attendanceService: attendanceService}
}

func (h *attendanceHandlerImpl) ListAttendance(w http.ResponseWriter, r *http.Request) {
	filter := attendance.AttendanceFilter{
		Date:      queryString(r, "date"),
		StartDate: queryString(r, "start_date"),
		EndDate:   queryString(r, "end_date"),
	}
	if employeeID, ok := queryInt64(r, "employee_id"); ok {
		filter.EmployeeID = &employeeID
	}

	results, err := h.attendanceService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

func (h *attendanceHandlerImpl) GetAttendance(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r, "id")
	if !ok {
		response.BadRequest(w, "Attendance ID is required", nil)
		return
	}

	result, err := h.attendanceService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *attendanceHandlerImpl) CreateAttendance(w http.ResponseWriter, r *http.Request) {
	var req attendance.CreateAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.attendanceService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Attendance record created", result)
}

func (h *attendanceHandlerImpl) UpdateAttendance(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r, "id")
	if !ok {
		response.BadRequest(w, "Attendance ID is required", nil)
		return
	}

	var req attendance.UpdateAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = id

	result, err := h.attendanceService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *attendanceHandlerImpl) DeleteAttendance(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r, "id")
	if !ok {
		response.BadRequest(w, "Attendance ID is required", nil)
		return
	}

	if err := h.attendanceService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.NoContent(w)
}

func (h *attendanceHandlerImpl) Clock(w http.ResponseWriter, r *http.Request) {
	var req attendance.ClockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.attendanceService.Clock(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *attendanceHandlerImpl) TodayAttendance(w http.ResponseWriter, r *http.Request) {
	results, err := h.attendanceService.Today(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

func (h *attendanceHandlerImpl) AttendanceStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.attendanceService.Stats(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}
