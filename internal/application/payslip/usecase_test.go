package payslip_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/payslip-api/internal/application/dto"
	"github.com/jhoicas/payslip-api/internal/application/payslip"
	"github.com/jhoicas/payslip-api/internal/domain"
	"github.com/jhoicas/payslip-api/internal/domain/entity"
	"github.com/jhoicas/payslip-api/internal/domain/payroll"
	"github.com/jhoicas/payslip-api/internal/domain/repository"
)

type stubPayrollRepo struct {
	docs []*entity.EmployeePayroll
	err  error
}

func (r *stubPayrollRepo) FindByIdentifier(_ context.Context, id string) (*entity.EmployeePayroll, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, d := range r.docs {
		if strings.EqualFold(payroll.Text(d.Get("ippis_no")), id) || payroll.Text(d.Get("service_no")) == id {
			return d, nil
		}
	}
	return nil, nil
}

func (r *stubPayrollRepo) BulkUpsert(context.Context, []repository.PayrollUpsert) (repository.BulkResult, error) {
	return repository.BulkResult{}, nil
}

type recordingGenerator struct {
	header payslip.PDFHeader
	slip   payroll.Payslip
}

func (g *recordingGenerator) GeneratePayslipPDF(_ context.Context, h payslip.PDFHeader, s payroll.Payslip) ([]byte, error) {
	g.header, g.slip = h, s
	return []byte("%PDF-1.3 fake"), nil
}

func janeDoe() *entity.EmployeePayroll {
	return &entity.EmployeePayroll{
		ID:     "doc-1",
		Fields: map[string]any{"name": "Jane Doe", "ippis_no": "A1", "service_no": "NIS/001"},
		Records: []entity.MonthlyRecord{
			{"year": 2019, "month": "August", "employee_name": "Jane Doe", "basic": float64(50000)},
			{"year": 2019, "month": "September", "basic": float64(51000)},
		},
	}
}

func TestGet_EjemploBasico(t *testing.T) {
	uc := payslip.NewUseCase(&stubPayrollRepo{docs: []*entity.EmployeePayroll{janeDoe()}}, nil, payslip.PDFHeader{})

	slip, err := uc.Get(context.Background(), dto.PayslipQuery{ID: "A1", Year: "2019", Month: "August"})
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", slip["name"])
	assert.Equal(t, float64(50000), slip["basic"])
	assert.Equal(t, 2019, slip["year"])
	assert.Equal(t, "August", slip["month"])
}

func TestGet_IdentificadorYMesSinMayusculas(t *testing.T) {
	uc := payslip.NewUseCase(&stubPayrollRepo{docs: []*entity.EmployeePayroll{janeDoe()}}, nil, payslip.PDFHeader{})

	slip, err := uc.Get(context.Background(), dto.PayslipQuery{ID: " a1 ", Year: "2019", Month: "september"})
	require.NoError(t, err)
	assert.Equal(t, float64(51000), slip["basic"])
}

func TestGet_Errores(t *testing.T) {
	repo := &stubPayrollRepo{docs: []*entity.EmployeePayroll{janeDoe()}}
	uc := payslip.NewUseCase(repo, nil, payslip.PDFHeader{})
	ctx := context.Background()

	_, err := uc.Get(ctx, dto.PayslipQuery{ID: "A1", Year: "2019"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Get(ctx, dto.PayslipQuery{ID: "Z9", Year: "2019", Month: "August"})
	assert.ErrorIs(t, err, domain.ErrEmployeeNotFound)

	_, err = uc.Get(ctx, dto.PayslipQuery{ID: "A1", Year: "2020", Month: "August"})
	assert.ErrorIs(t, err, domain.ErrPeriodNotFound, "el empleado existe pero no el periodo")

	boom := errors.New("conexión perdida")
	_, err = payslip.NewUseCase(&stubPayrollRepo{err: boom}, nil, payslip.PDFHeader{}).
		Get(ctx, dto.PayslipQuery{ID: "A1", Year: "2019", Month: "August"})
	assert.ErrorIs(t, err, boom)
}

func TestDownloadPDF_NombreDeArchivo(t *testing.T) {
	gen := &recordingGenerator{}
	header := payslip.PDFHeader{OrgName: "ORG", OrgUnit: "UNIT"}
	uc := payslip.NewUseCase(&stubPayrollRepo{docs: []*entity.EmployeePayroll{janeDoe()}}, gen, header)

	data, filename, err := uc.DownloadPDF(context.Background(), dto.PayslipQuery{ID: "NIS/001", Year: "2019", Month: "August"})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "%PDF"))
	assert.Equal(t, "payslip_NIS-001_August_2019.pdf", filename)
	assert.Equal(t, header, gen.header)
	assert.Equal(t, "Jane Doe", gen.slip["name"])
}

func TestDownloadPDF_PropagaNoEncontrado(t *testing.T) {
	uc := payslip.NewUseCase(&stubPayrollRepo{}, &recordingGenerator{}, payslip.PDFHeader{})
	_, _, err := uc.DownloadPDF(context.Background(), dto.PayslipQuery{ID: "A1", Year: "2019", Month: "August"})
	assert.ErrorIs(t, err, domain.ErrEmployeeNotFound)
}
