package http

import (
	"encoding/json"
	"net/http"

	"github.com/peoplecore/hr-backend-go/internal/domain/period"
	"github.com/peoplecore/hr-backend-go/internal/handler/http/response"
)

type ScheduleHandler interface {
	ListSchedules(w http.ResponseWriter, r *http.Request)
	GetSchedule(w http.ResponseWriter, r *http.Request)
	CreateSchedule(w http.ResponseWriter, r *http.Request)
	UpdateSchedule(w http.ResponseWriter, r *http.Request)
	DeleteSchedule(w http.ResponseWriter, r *http.Request)
}

type scheduleHandlerImpl struct {
	periodService period.PeriodService
}

func NewScheduleHandler(periodService period.PeriodService) ScheduleHandler {
	return &scheduleHandlerImpl{periodService: periodService}
}

func (h *scheduleHandlerImpl) ListSchedules(w http.ResponseWriter, r *http.Request) {
	var filter period.ScheduleFilter
	if employeeID, ok := queryInt64(r, "employee_id"); ok {
		filter.EmployeeID = &employeeID
	}
	if periodID, ok := queryInt64(r, "payroll_period"); ok {
		filter.PeriodID = &periodID
	}

	results, err := h.periodService.ListSchedules(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

func (h *scheduleHandlerImpl) GetSchedule(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r, "id")
	if !ok {
		response.BadRequest(w, "Schedule ID is required", nil)
		return
	}

	result, err := h.periodService.GetSchedule(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *scheduleHandlerImpl) CreateSchedule(w http.ResponseWriter, r *http.Request) {
	var req period.CreateScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.periodService.CreateSchedule(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Work schedule created", result)
}

func (h *scheduleHandlerImpl) UpdateSchedule(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r, "id")
	if !ok {
		response.BadRequest(w, "Schedule ID is required", nil)
		return
	}

	var req period.UpdateScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = id

	result, err := h.periodService.UpdateSchedule(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *scheduleHandlerImpl) DeleteSchedule(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r, "id")
	if !ok {
		response.BadRequest(w, "Schedule ID is required", nil)
		return
	}

	if err := h.periodService.DeleteSchedule(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.NoContent(w)
}
