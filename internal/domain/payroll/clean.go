package payroll

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/payslip-api/internal/domain/entity"
)

// groupedNumberRe números con separador de miles: 50,000 ó 1,250,000.75
var groupedNumberRe = regexp.MustCompile(`^[-+]?\d{1,3}(,\d{3})+(\.\d+)?$`)

// isNullToken marcadores que siempre significan "sin valor".
func isNullToken(s string) bool {
	return s == "" || s == "null" || s == "undefined"
}

// isNotApplicable marcadores N/A del export.
func isNotApplicable(s string) bool {
	return s == "NA" || strings.EqualFold(s, "n/a")
}

// CleanValue limpia un valor crudo según la clasificación de su columna.
// ok=false significa que el valor queda ausente del registro.
func CleanValue(kind FieldKind, raw string) (value any, ok bool) {
	s := strings.TrimSpace(raw)
	if isNullToken(s) {
		return nil, false
	}
	if isNotApplicable(s) {
		if kind == KindPreservedText {
			return s, true
		}
		return nil, false
	}
	switch kind {
	case KindNumeric:
		if n, isNum := ParseNumber(s); isNum {
			return n, true
		}
		return s, true
	case KindPeriodYear:
		y, err := ParseYear(s)
		if err != nil {
			return nil, false
		}
		return y, true
	default:
		return s, true
	}
}

// ParseNumber interpreta texto numérico (decimal simple o con separador de miles).
func ParseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	if groupedNumberRe.MatchString(s) {
		s = strings.ReplaceAll(s, ",", "")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, false
	}
	n, _ := d.Float64()
	if math.IsInf(n, 0) || math.IsNaN(n) {
		return 0, false
	}
	return n, true
}

// ParseYear interpreta el año del periodo; debe ser un entero positivo.
func ParseYear(s string) (int, error) {
	n, ok := ParseNumber(s)
	if !ok || n <= 0 || n != math.Trunc(n) {
		return 0, strconv.ErrSyntax
	}
	return int(n), nil
}

// CanonicalMonth devuelve el nombre del mes con la capitalización estándar ("August")
// cuando coincide con un mes del calendario; cualquier otro texto se devuelve recortado.
func CanonicalMonth(s string) string {
	s = strings.TrimSpace(s)
	for m := time.January; m <= time.December; m++ {
		if strings.EqualFold(s, m.String()) {
			return m.String()
		}
	}
	return s
}

// SkipReason motivo por el que una fila del export no se importa.
type SkipReason string

const (
	SkipNone         SkipReason = ""
	SkipMissingKey   SkipReason = "missing_identifier"
	SkipMissingYear  SkipReason = "missing_year"
	SkipMissingMonth SkipReason = "missing_month"
)

// ParsedRow fila aceptada: clave de fusión, periodo, identidad y registro limpio.
type ParsedRow struct {
	Key      string
	Year     int
	Month    string
	Identity entity.EmployeeIdentity
	Record   entity.MonthlyRecord
}

// PeriodKey identifica la fila dentro de una corrida: (clave, año, mes).
func (p ParsedRow) PeriodKey() string {
	return p.Key + "|" + strconv.Itoa(p.Year) + "|" + p.Month
}

// ParseRow limpia una fila del export (columnas ya en minúscula) y extrae la clave de fusión.
// La clave es el IPPIS si existe; si no, el número de servicio.
func ParseRow(row map[string]string) (ParsedRow, SkipReason) {
	identity := entity.EmployeeIdentity{
		Name:                   identityValue(row, ColEmployeeName),
		IppisNo:                identityValue(row, ColIppisNo),
		ServiceNo:              identityValue(row, ColServiceNo),
		Gender:                 identityValue(row, ColGender),
		TaxState:               identityValue(row, ColTaxState),
		DateOfFirstAppointment: identityValue(row, ColDateOfFirstAppointment),
		DateOfBirth:            identityValue(row, ColBirthdate),
		RetirementDate:         identityValue(row, ColRetirementDate),
	}

	var key string
	switch {
	case identity.IppisNo != nil:
		key = *identity.IppisNo
	case identity.ServiceNo != nil:
		key = *identity.ServiceNo
	default:
		return ParsedRow{}, SkipMissingKey
	}

	year, err := ParseYear(row[ColYear])
	if err != nil {
		return ParsedRow{}, SkipMissingYear
	}
	month := CanonicalMonth(row[ColMonth])
	if isNullToken(month) || isNotApplicable(month) {
		return ParsedRow{}, SkipMissingMonth
	}

	record := make(entity.MonthlyRecord, len(row)+2)
	for col, raw := range row {
		if col == "" {
			continue
		}
		if v, ok := CleanValue(KindOf(col), raw); ok {
			record[col] = v
		}
	}
	record[ColYear] = year
	record[ColMonth] = month

	return ParsedRow{
		Key:      key,
		Year:     year,
		Month:    month,
		Identity: identity,
		Record:   record,
	}, SkipNone
}

func identityValue(row map[string]string, col string) *string {
	v, ok := CleanValue(KindIdentity, row[col])
	if !ok {
		return nil
	}
	s := v.(string)
	return &s
}
