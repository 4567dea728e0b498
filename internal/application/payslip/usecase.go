package payslip

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/payslip-api/internal/application/dto"
	"github.com/jhoicas/payslip-api/internal/domain"
	"github.com/jhoicas/payslip-api/internal/domain/payroll"
	"github.com/jhoicas/payslip-api/internal/domain/repository"
)

// UseCase consulta de desprendibles: búsqueda del empleado, selección del periodo
// y mapeo al objeto canónico.
type UseCase struct {
	repo      repository.PayrollRepository
	generator PDFGenerator
	header    PDFHeader
}

// NewUseCase construye el caso de uso. generator puede ser nil si no se expone el PDF.
func NewUseCase(repo repository.PayrollRepository, generator PDFGenerator, header PDFHeader) *UseCase {
	return &UseCase{repo: repo, generator: generator, header: header}
}

// Get devuelve el desprendible canónico del periodo.
//
// Retorna:
//   - domain.ErrInvalidInput     si falta id, year o month.
//   - domain.ErrEmployeeNotFound si ningún documento coincide con el identificador.
//   - domain.ErrPeriodNotFound   si el empleado no tiene registro para (year, month).
func (uc *UseCase) Get(ctx context.Context, in dto.PayslipQuery) (payroll.Payslip, error) {
	q := payroll.Query{
		ID:    strings.TrimSpace(in.ID),
		Year:  strings.TrimSpace(in.Year),
		Month: strings.TrimSpace(in.Month),
	}
	if q.ID == "" || q.Year == "" || q.Month == "" {
		return nil, fmt.Errorf("%w: id, year y month son requeridos", domain.ErrInvalidInput)
	}

	employee, err := uc.repo.FindByIdentifier(ctx, q.ID)
	if err != nil {
		return nil, fmt.Errorf("payslip: buscar empleado: %w", err)
	}
	if employee == nil {
		return nil, domain.ErrEmployeeNotFound
	}

	record, ok := payroll.FindRecord(employee.Records, q.Year, q.Month)
	if !ok {
		return nil, domain.ErrPeriodNotFound
	}
	return payroll.Normalize(employee, record, q), nil
}

// DownloadPDF resuelve el desprendible y lo renderiza a PDF.
// Retorna los bytes y el nombre de archivo payslip_<id>_<month>_<year>.pdf.
func (uc *UseCase) DownloadPDF(ctx context.Context, in dto.PayslipQuery) (pdfBytes []byte, filename string, err error) {
	if uc.generator == nil {
		return nil, "", fmt.Errorf("payslip: generador de PDF no configurado")
	}
	slip, err := uc.Get(ctx, in)
	if err != nil {
		return nil, "", err
	}

	pdfBytes, err = uc.generator.GeneratePayslipPDF(ctx, uc.header, slip)
	if err != nil {
		return nil, "", fmt.Errorf("payslip: generación de PDF fallida: %w", err)
	}

	filename = fmt.Sprintf("payslip_%s_%s_%s.pdf",
		safeFilePart(strings.TrimSpace(in.ID)), safeFilePart(slip.Text("month")), safeFilePart(slip.Text("year")))
	return pdfBytes, filename, nil
}

func safeFilePart(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '-'
		}
	}, s)
}
