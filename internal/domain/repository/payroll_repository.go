package repository

import (
	"context"

	"github.com/jhoicas/payslip-api/internal/domain/entity"
)

// PayrollUpsert una operación del lote de import: identidad del empleado y registros
// mensuales a fusionar en su historial (reemplazando los del mismo periodo).
type PayrollUpsert struct {
	IppisNo   string
	ServiceNo string
	Identity  entity.EmployeeIdentity
	Records   []entity.MonthlyRecord
}

// BulkResult conteos devueltos por la escritura del lote.
type BulkResult struct {
	Matched  int64
	Inserted int64
	Modified int64
}

// PayrollRepository puerto de persistencia para los documentos de nómina por empleado.
type PayrollRepository interface {
	// FindByIdentifier busca por IPPIS (sin distinguir mayúsculas) o por número de servicio
	// (exacto). Devuelve (nil, nil) si no existe.
	FindByIdentifier(ctx context.Context, id string) (*entity.EmployeePayroll, error)
	// BulkUpsert aplica todas las operaciones en un único lote ordenado.
	BulkUpsert(ctx context.Context, ops []PayrollUpsert) (BulkResult, error)
}
