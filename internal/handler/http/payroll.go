package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/peoplecore/hr-backend-go/internal/domain/payroll"
	"github.com/peoplecore/hr-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	ProcessPayroll(w http.ResponseWriter, r *http.Request)
	ListPayroll(w http.ResponseWriter, r *http.Request)
	GetPayroll(w http.ResponseWriter, r *http.Request)
	UpdatePayroll(w http.ResponseWriter, r *http.Request)
	DeletePayroll(w http.ResponseWriter, r *http.Request)
	GetPayslip(w http.ResponseWriter, r *http.Request)
	GetPayslipPDF(w http.ResponseWriter, r *http.Request)
	PayrollStats(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{payrollService: payrollService}
}

func (h *payrollHandlerImpl) ProcessPayroll(w http.ResponseWriter, r *http.Request) {
	var req payroll.ProcessPayrollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.payrollService.Process(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, result.Message, result)
}

func (h *payrollHandlerImpl) ListPayroll(w http.ResponseWriter, r *http.Request) {
	var filter payroll.PayrollFilter
	if month, ok := queryInt(r, "month"); ok {
		filter.Month = &month
	}
	if year, ok := queryInt(r, "year"); ok {
		filter.Year = &year
	}
	if employeeID, ok := queryInt64(r, "employee_id"); ok {
		filter.EmployeeID = &employeeID
	}

	results, err := h.payrollService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

func (h *payrollHandlerImpl) GetPayroll(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r, "id")
	if !ok {
		response.BadRequest(w, "Payroll ID is required", nil)
		return
	}

	result, err := h.payrollService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) UpdatePayroll(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r, "id")
	if !ok {
		response.BadRequest(w, "Payroll ID is required", nil)
		return
	}

	var req payroll.UpdatePayrollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = id

	result, err := h.payrollService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) DeletePayroll(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r, "id")
	if !ok {
		response.BadRequest(w, "Payroll ID is required", nil)
		return
	}

	if err := h.payrollService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.NoContent(w)
}

func (h *payrollHandlerImpl) GetPayslip(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r, "id")
	if !ok {
		response.BadRequest(w, "Payroll ID is required", nil)
		return
	}

	result, err := h.payrollService.Payslip(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) GetPayslipPDF(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r, "id")
	if !ok {
		response.BadRequest(w, "Payroll ID is required", nil)
		return
	}

	data, err := h.payrollService.PayslipPDF(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.PDF(w, fmt.Sprintf("payslip-%d.pdf", id), data)
}

// PayrollStats defaults to the current month and year when the query does
// not pin them.
func (h *payrollHandlerImpl) PayrollStats(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	month := int(now.Month())
	year := now.Year()
	if m, ok := queryInt(r, "month"); ok {
		month = m
	}
	if y, ok := queryInt(r, "year"); ok {
		year = y
	}

	stats, err := h.payrollService.Stats(r.Context(), month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}
