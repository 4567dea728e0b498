// Package payroll contiene las reglas puras de la nómina: clasificación de columnas del
// export, limpieza de valores, fusión de registros mensuales y el mapeo al esquema canónico
// del desprendible de pago.
package payroll

// FieldKind clasifica una columna del export y decide cómo se limpia su valor.
type FieldKind int

const (
	// KindNumeric columnas de montos: se convierten a número si el texto es numérico.
	// Es el tipo por defecto para columnas desconocidas.
	KindNumeric FieldKind = iota
	// KindIdentity texto de identidad: nunca se convierte; los marcadores N/A quedan ausentes.
	KindIdentity
	// KindPreservedText texto mensual que conserva el literal "N/A" tal cual.
	KindPreservedText
	// KindLabel texto que nunca se convierte (mes).
	KindLabel
	// KindPeriodYear año del periodo, entero.
	KindPeriodYear
)

func (k FieldKind) String() string {
	switch k {
	case KindIdentity:
		return "identity"
	case KindPreservedText:
		return "preserved_text"
	case KindLabel:
		return "label"
	case KindPeriodYear:
		return "period_year"
	default:
		return "numeric"
	}
}

// Nombres de columna con significado propio en el import.
const (
	ColIppisNo                = "ippis_no"
	ColServiceNo              = "service_no"
	ColEmployeeName           = "employee_name"
	ColGender                 = "gender"
	ColTaxState               = "tax_state"
	ColDateOfFirstAppointment = "date_of_first_appointment"
	ColBirthdate              = "birthdate"
	ColRetirementDate         = "retirement_date"
	ColYear                   = "year"
	ColMonth                  = "month"
)

// fieldKinds tabla de clasificación explícita. Las columnas numéricas conocidas se listan
// para que la tabla documente el export completo; cualquier otra columna es KindNumeric.
var fieldKinds = map[string]FieldKind{
	ColIppisNo:                KindIdentity,
	ColServiceNo:              KindIdentity,
	ColEmployeeName:           KindIdentity,
	ColGender:                 KindIdentity,
	ColTaxState:               KindIdentity,
	ColDateOfFirstAppointment: KindIdentity,
	ColBirthdate:              KindIdentity,
	ColRetirementDate:         KindIdentity,

	"paygrade":       KindPreservedText,
	"grade_name":     KindPreservedText,
	"grade_level":    KindPreservedText,
	"step":           KindPreservedText,
	"designation":    KindPreservedText,
	"bank_name":      KindPreservedText,
	"account_number": KindPreservedText,
	"pfa_name":       KindPreservedText,
	"pension_pin":    KindPreservedText,
	"com_id":         KindPreservedText,

	ColMonth: KindLabel,
	ColYear:  KindPeriodYear,

	"basic":                         KindNumeric,
	"rent":                          KindNumeric,
	"arrears":                       KindNumeric,
	"non_clinical_allowance":        KindNumeric,
	"arrears_18_apr_to_30_nov":      KindNumeric,
	"employer_pencon":               KindNumeric,
	"hazard_allowance":              KindNumeric,
	"professional_allowance":        KindNumeric,
	"nhis":                          KindNumeric,
	"shift_duty_allowance":          KindNumeric,
	"call_duty_allowance":           KindNumeric,
	"paye_tax":                      KindNumeric,
	"employee_pencon":               KindNumeric,
	"employer_pencon_2":             KindNumeric,
	"nhf":                           KindNumeric,
	"nhis_additional":               KindNumeric,
	"overpayment":                   KindNumeric,
	"union_dues":                    KindNumeric,
	"rock_consumer_credit_1":        KindNumeric,
	"rock_consumer_credit_2":        KindNumeric,
	"rock_consumer_credit_3":        KindNumeric,
	"salary_refund":                 KindNumeric,
	"federal_mortgage_renovation_1": KindNumeric,
	"federal_mortgage_renovation_2": KindNumeric,
	"federal_housing_renovation":    KindNumeric,
	"fed_gov_housing_loan_scheme":   KindNumeric,
	"ashs":                          KindNumeric,
	"finance_car_scheme":            KindNumeric,
	"fghs":                          KindNumeric,
	"fgshlb":                        KindNumeric,
	"paye_refund":                   KindNumeric,
	"access_pay_day_loan":           KindNumeric,
	"fidelity_bank_loan":            KindNumeric,
	"paye_tax_ossg_ag":              KindNumeric,
	"paye_tax_imsbir":               KindNumeric,
	"paye_tax_bybir":                KindNumeric,
	"other_deduction":               KindNumeric,
	"other_deductions":              KindNumeric,
	"employer_pencon_axa_mansard":   KindNumeric,
	"employer_pencon_aptpensions":   KindNumeric,
	"employer_pencon_aiicopen":      KindNumeric,
	"employer_pencon_leadpensure":   KindNumeric,
	"employee_pencon_axa_mansard":   KindNumeric,
	"employee_pencon_aptpensions":   KindNumeric,
	"employee_pencon_aiicopen":      KindNumeric,
	"employee_pencon_anchorpen":     KindNumeric,
	"d77_keke_loan":                 KindNumeric,
	"jtf_refund":                    KindNumeric,
	"d54_coop_subscription":         KindNumeric,
	"coop_electronic_commodities":   KindNumeric,
	"coop_soft_loan_deduction":      KindNumeric,
	"coop_target_deduction":         KindNumeric,
	"coop_loan_deduction":           KindNumeric,
	"coop_commodities":              KindNumeric,
	"coop_share_deduction":          KindNumeric,
	"multipurpose_coop_savings":     KindNumeric,
	"total_gross_earnings":          KindNumeric,
	"total_deductions":              KindNumeric,
	"net_payment":                   KindNumeric,
}

// KindOf devuelve la clasificación de una columna (ya normalizada a minúscula).
func KindOf(column string) FieldKind {
	if k, ok := fieldKinds[column]; ok {
		return k
	}
	return KindNumeric
}
