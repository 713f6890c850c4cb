package http

import (
	"encoding/json"
	"net/http"

	"github.com/peoplecore/hr-backend-go/internal/domain/period"
	"github.com/peoplecore/hr-backend-go/internal/handler/http/response"
)

type PeriodHandler interface {
	ListPeriods(w http.ResponseWriter, r *http.Request)
	GetPeriod(w http.ResponseWriter, r *http.Request)
	CreatePeriod(w http.ResponseWriter, r *http.Request)
	UpdatePeriodStatus(w http.ResponseWriter, r *http.Request)
	DeletePeriod(w http.ResponseWriter, r *http.Request)
}

type periodHandlerImpl struct {
	periodService period.PeriodService
}

func NewPeriodHandler(periodService period.PeriodService) PeriodHandler {
	return &periodHandlerImpl{periodService: periodService}
}

func (h *periodHandlerImpl) ListPeriods(w http.ResponseWriter, r *http.Request) {
	filter := period.PeriodFilter{
		Status: queryString(r, "status"),
	}
	if month, ok := queryInt(r, "month"); ok {
		filter.Month = &month
	}
	if year, ok := queryInt(r, "year"); ok {
		filter.Year = &year
	}

	results, err := h.periodService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

func (h *periodHandlerImpl) GetPeriod(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r, "id")
	if !ok {
		response.BadRequest(w, "Period ID is required", nil)
		return
	}

	result, err := h.periodService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *periodHandlerImpl) CreatePeriod(w http.ResponseWriter, r *http.Request) {
	var req period.CreatePeriodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.periodService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payroll period created", result)
}

func (h *periodHandlerImpl) UpdatePeriodStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r, "id")
	if !ok {
		response.BadRequest(w, "Period ID is required", nil)
		return
	}

	var req period.UpdatePeriodStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = id

	result, err := h.periodService.UpdateStatus(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *periodHandlerImpl) DeletePeriod(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r, "id")
	if !ok {
		response.BadRequest(w, "Period ID is required", nil)
		return
	}

	if err := h.periodService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.NoContent(w)
}
