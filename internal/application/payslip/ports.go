package payslip

import (
	"context"

	"github.com/jhoicas/payslip-api/internal/domain/payroll"
)

// PDFHeader textos fijos de la cabecera del documento.
type PDFHeader struct {
	OrgName string
	OrgUnit string
}

// PDFGenerator puerto de salida para renderizar un desprendible canónico.
// La implementación vive en infrastructure/pdf.
type PDFGenerator interface {
	GeneratePayslipPDF(ctx context.Context, header PDFHeader, slip payroll.Payslip) ([]byte, error)
}
