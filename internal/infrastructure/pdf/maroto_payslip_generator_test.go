package pdf

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/payslip-api/internal/application/payslip"
	"github.com/jhoicas/payslip-api/internal/domain/entity"
	"github.com/jhoicas/payslip-api/internal/domain/payroll"
)

func TestFormatAmount(t *testing.T) {
	cases := map[float64]string{
		0:         "0.00",
		12.5:      "12.50",
		999.999:   "1,000.00",
		50000:     "50,000.00",
		1234567.5: "1,234,567.50",
		-1234.56:  "-1,234.56",
	}
	for in, want := range cases {
		assert.Equal(t, want, FormatAmount(in), "monto %v", in)
	}
}

func TestVisibleLines_SoloMontosPositivos(t *testing.T) {
	slip := payroll.Payslip{"basic": 50000.0, "rent": 0.0, "nhis": -5.0}
	got := visibleLines(slip, earningLines)
	require.Len(t, got, 1)
	assert.Equal(t, "Basic Salary", got[0].Label)
}

func TestGeneratePayslipPDF(t *testing.T) {
	employee := &entity.EmployeePayroll{Fields: map[string]any{"name": "Jane Doe", "ippis_no": "A1"}}
	record := entity.MonthlyRecord{
		"year": 2019, "month": "August",
		"basic": 50000.0, "rent": 12000.0, "paye_tax": 3500.0, "nhf": 1250.0,
		"total_gross_earnings": 62000.0, "total_deductions": 4750.0, "net_payment": 57250.0,
	}
	slip := payroll.Normalize(employee, record, payroll.Query{ID: "A1", Year: "2019", Month: "August"})

	data, err := NewMarotoPayslipGenerator().GeneratePayslipPDF(context.Background(),
		payslip.PDFHeader{OrgName: "FEDERAL GOVERNMENT OF NIGERIA", OrgUnit: "NIGERIA IMMIGRATION SERVICE"}, slip)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")), "la salida debe ser un PDF")
}
