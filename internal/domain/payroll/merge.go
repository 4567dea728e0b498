package payroll

import (
	"strings"

	"github.com/jhoicas/payslip-api/internal/domain/entity"
)

// SamePeriod compara dos registros por (year, month) tal como los guarda el import.
func SamePeriod(a, b entity.MonthlyRecord) bool {
	return Text(a.Get(ColYear)) == Text(b.Get(ColYear)) &&
		Text(a.Get(ColMonth)) == Text(b.Get(ColMonth))
}

// UpsertRecord elimina cualquier registro del mismo periodo y agrega rec al final.
// Garantiza como máximo un registro por (year, month); la última escritura gana.
func UpsertRecord(records []entity.MonthlyRecord, rec entity.MonthlyRecord) []entity.MonthlyRecord {
	out := make([]entity.MonthlyRecord, 0, len(records)+1)
	for _, r := range records {
		if SamePeriod(r, rec) {
			continue
		}
		out = append(out, r)
	}
	return append(out, rec)
}

// FindRecord busca el registro del periodo consultado. El año se compara en forma textual
// y el mes sin distinguir mayúsculas.
func FindRecord(records []entity.MonthlyRecord, year, month string) (entity.MonthlyRecord, bool) {
	year = strings.TrimSpace(year)
	month = strings.TrimSpace(month)
	for _, r := range records {
		if Text(r.Get(ColYear)) == year && strings.EqualFold(Text(r.Get(ColMonth)), month) {
			return r, true
		}
	}
	return nil, false
}
