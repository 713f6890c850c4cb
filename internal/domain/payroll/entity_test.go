package payroll

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestRecalculate(t *testing.T) {
	p := Payroll{
		BasicSalary: dec("8000"),
		Allowances:  dec("800"),
		Overtime:    dec("75"),
		Deductions:  dec("727.27"),
	}
	p.Recalculate()
	assert.True(t, p.NetSalary.Equal(dec("8147.73")), "got %s", p.NetSalary)
}

func TestRecalculateNegativeDeductions(t *testing.T) {
	// Overworked month: negative deductions add to net.
	p := Payroll{
		BasicSalary: dec("4400"),
		Allowances:  dec("440"),
		Overtime:    dec("0"),
		Deductions:  dec("-200"),
	}
	p.Recalculate()
	assert.True(t, p.NetSalary.Equal(dec("5040")), "got %s", p.NetSalary)
}

func TestGrossSalary(t *testing.T) {
	p := Payroll{
		BasicSalary: dec("8000"),
		Allowances:  dec("800"),
		Overtime:    dec("75"),
	}
	assert.True(t, p.GrossSalary().Equal(dec("8875")))
}

func TestMarkProcessedStampsDateOnce(t *testing.T) {
	first := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	second := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	p := Payroll{Status: StatusPending}
	p.MarkProcessed(first)
	require.NotNil(t, p.ProcessedDate)
	assert.Equal(t, StatusProcessed, p.Status)
	assert.Equal(t, first, *p.ProcessedDate)

	// Re-processing keeps the first stamp.
	p.MarkProcessed(second)
	assert.Equal(t, first, *p.ProcessedDate)
}

func TestProcessPayrollRequestValidate(t *testing.T) {
	req := ProcessPayrollRequest{}
	assert.Error(t, req.Validate(), "missing month and year")

	req = ProcessPayrollRequest{Month: 13, Year: 2026}
	assert.Error(t, req.Validate())

	req = ProcessPayrollRequest{Month: 1, Year: 1999}
	assert.Error(t, req.Validate())

	req = ProcessPayrollRequest{Month: 1, Year: 2026}
	assert.NoError(t, req.Validate())
}
