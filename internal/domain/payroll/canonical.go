package payroll

import (
	"math"
	"strings"

	"github.com/jhoicas/payslip-api/internal/domain/entity"
)

// NotAvailable marcador para campos de texto sin dato.
const NotAvailable = "N/A"

// Scope indica de dónde se lee una fuente del mapeo.
type Scope int

const (
	ScopeDocument Scope = iota // campo de nivel raíz del documento del empleado
	ScopeRecord                // campo del registro mensual
	ScopeQuery                 // parámetro de la consulta (year, month)
)

// Source una fuente candidata para un campo canónico.
type Source struct {
	Scope Scope
	Field string
}

func doc(field string) Source   { return Source{Scope: ScopeDocument, Field: field} }
func rec(field string) Source   { return Source{Scope: ScopeRecord, Field: field} }
func query(field string) Source { return Source{Scope: ScopeQuery, Field: field} }

// OutputKind tipo del campo en el desprendible y su valor por defecto.
type OutputKind int

const (
	OutputText         OutputKind = iota // default "N/A"
	OutputNullableText                   // default null
	OutputAmount                         // default 0
	OutputYear                           // entero si es posible
	OutputMonth                          // texto
)

// CanonicalField campo del esquema canónico con sus fuentes en orden de prioridad.
type CanonicalField struct {
	Key     string
	Kind    OutputKind
	Sources []Source
}

func text(key string, sources ...Source) CanonicalField {
	return CanonicalField{Key: key, Kind: OutputText, Sources: sources}
}

func amount(key string, sources ...Source) CanonicalField {
	return CanonicalField{Key: key, Kind: OutputAmount, Sources: sources}
}

// amountSame campo monetario cuyo nombre canónico coincide con la columna del export.
func amountSame(key string) CanonicalField {
	return amount(key, rec(key))
}

// CanonicalFields tabla declarativa campo canónico -> fuentes. El orden de la tabla es el
// orden de presentación.
var CanonicalFields = []CanonicalField{
	// Identidad
	text("name", doc("name"), doc("employee_name"), rec("employee_name")),
	text("ippis_no", doc("ippis_no"), rec("ippis_no")),
	text("service_no", doc("service_no"), rec("service_no")),
	text("gender", doc("gender"), rec("gender")),
	text("tax_state", doc("tax_state"), rec("tax_state")),
	text("date_of_first_appointment", doc("date_of_first_appointment"), rec("date_of_first_appointment")),
	text("date_of_birth", doc("date_of_birth"), rec("birthdate")),
	{Key: "retirement_date", Kind: OutputNullableText, Sources: []Source{doc("retirement_date"), rec("retirement_date")}},

	// Datos laborales y bancarios del periodo
	text("paygrade", rec("grade_name"), rec("paygrade")),
	text("grade", rec("grade_level"), rec("grade")),
	text("step", rec("step")),
	text("designation", rec("designation")),
	text("bank_name", rec("bank_name")),
	text("account_number", rec("account_number")),
	text("pfa_name", rec("pfa_name")),
	text("pension_pin", rec("com_id"), rec("pension_pin")),

	// Devengos
	amountSame("basic"),
	amountSame("rent"),
	amount("employer_pension", rec("employer_pencon"), rec("employer_pencon_2")),
	amount("peculiar_allowance", rec("hazard_allowance")),
	amountSame("shift_duty_allowance"),
	amount("nhis", rec("nhis"), rec("nhis_additional")),
	amountSame("professional_allowance"),
	amountSame("arrears"),
	amountSame("non_clinical_allowance"),
	amountSame("arrears_18_apr_to_30_nov"),

	// Deducciones
	amount("employee_pension", rec("employee_pencon")),
	amountSame("nhf"),
	amountSame("paye_tax"),
	amount("01_oagf_overpayment", rec("overpayment")),
	amount("d01_overpayment", rec("overpayment")),
	amount("d32_oagf_conpass_union_dues", rec("union_dues")),
	amount("d35_rock_consumer_credit", rec("rock_consumer_credit_1")),
	amount("d36_rock_consumer_credit_2", rec("rock_consumer_credit_2")),
	amount("d45_rock_consumer_credit_3", rec("rock_consumer_credit_3")),
	amount("d47_salary_refund", rec("salary_refund")),
	amount("l53_oagf_fed_mortgage_renovation", rec("federal_mortgage_renovation_1")),
	amount("l53_fed_mortgage_renovation", rec("federal_mortgage_renovation_2")),
	amount("l49_fed_housing_renovation", rec("federal_housing_renovation")),
	amount("l47_fed_gov_housing_loan_scheme", rec("fed_gov_housing_loan_scheme")),
	amount("l06_ashs", rec("ashs")),
	amount("l05_finance_car_scheme", rec("finance_car_scheme")),
	amount("l10_fghs", rec("fghs")),
	amount("l52_coop_electronic_commodities", rec("coop_electronic_commodities")),
	amount("d68_cooperative_soft_loan_deduction", rec("coop_soft_loan_deduction")),
	amount("d57_nis_cooperative_target_deduction", rec("coop_target_deduction")),
	amount("d56_cooperative_loan_deduction", rec("coop_loan_deduction")),
	amount("d52_nis_cooperative_commodities", rec("coop_commodities")),
	amount("d49_nis_coop_share_deduction", rec("coop_share_deduction")),
	amount("d48_nis_multipurpose_coop_savings", rec("multipurpose_coop_savings")),
	amount("other_deductions", rec("other_deductions"), rec("other_deduction")),
	amountSame("employer_pencon_axa_mansard"),
	amountSame("employer_pencon_aptpensions"),
	amountSame("employer_pencon_aiicopen"),
	amountSame("employer_pencon_leadpensure"),
	amountSame("employee_pencon_axa_mansard"),
	amountSame("employee_pencon_aptpensions"),
	amountSame("employee_pencon_aiicopen"),
	amountSame("employee_pencon_anchorpen"),
	amountSame("d77_keke_loan"),
	amountSame("jtf_refund"),
	amountSame("d54_coop_subscription"),
	amountSame("paye_refund"),
	amountSame("access_pay_day_loan"),
	amountSame("fidelity_bank_loan"),
	amountSame("paye_tax_ossg_ag"),
	amountSame("paye_tax_imsbir"),
	amountSame("paye_tax_bybir"),
	amountSame("fgshlb"),

	// Totales
	amount("total_earnings", rec("total_gross_earnings")),
	amount("total_deductions", rec("total_deductions")),
	amount("net_pay", rec("net_payment")),

	// Periodo
	{Key: "year", Kind: OutputYear, Sources: []Source{rec("year"), query("year")}},
	{Key: "month", Kind: OutputMonth, Sources: []Source{rec("month"), query("month")}},
}

// Payslip objeto canónico del desprendible: campo -> valor (string, float64, int o nil).
type Payslip map[string]any

// Text valor textual de un campo; los ausentes se muestran como "N/A".
func (p Payslip) Text(key string) string {
	v, ok := p[key]
	if !ok || v == nil {
		return NotAvailable
	}
	return Text(v)
}

// Amount valor numérico de un campo; 0 si no es numérico.
func (p Payslip) Amount(key string) float64 {
	n, _ := Number(p[key])
	return n
}

// Query parámetros de la consulta que sirven de respaldo para year/month.
type Query struct {
	ID    string
	Year  string
	Month string
}

// Normalize construye el desprendible canónico recorriendo CanonicalFields.
func Normalize(employee *entity.EmployeePayroll, record entity.MonthlyRecord, q Query) Payslip {
	out := make(Payslip, len(CanonicalFields))
	for _, f := range CanonicalFields {
		out[f.Key] = resolve(f, employee, record, q)
	}
	return out
}

func resolve(f CanonicalField, employee *entity.EmployeePayroll, record entity.MonthlyRecord, q Query) any {
	for _, s := range f.Sources {
		v := lookup(s, employee, record, q)
		if !Present(v) {
			continue
		}
		switch f.Kind {
		case OutputAmount:
			if n, ok := Number(v); ok {
				return n
			}
		case OutputYear:
			if n, ok := Number(v); ok && n == math.Trunc(n) {
				return int(n)
			}
			return strings.TrimSpace(Text(v))
		default:
			return strings.TrimSpace(Text(v))
		}
	}
	switch f.Kind {
	case OutputAmount:
		return float64(0)
	case OutputNullableText:
		return nil
	default:
		return NotAvailable
	}
}

func lookup(s Source, employee *entity.EmployeePayroll, record entity.MonthlyRecord, q Query) any {
	switch s.Scope {
	case ScopeDocument:
		return employee.Get(s.Field)
	case ScopeRecord:
		return record.Get(s.Field)
	case ScopeQuery:
		switch s.Field {
		case "year":
			return q.Year
		case "month":
			return q.Month
		case "id":
			return q.ID
		}
	}
	return nil
}
