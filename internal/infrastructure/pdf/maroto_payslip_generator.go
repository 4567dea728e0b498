// Package pdf implementa la representación impresa del desprendible de nómina.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Organización / Unidad / EMPLOYEE PAYSLIP / Periodo  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PERSONAL INFORMATION (dos columnas)                         │
//	│  BANK INFORMATION                                            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  EARNINGS             │  DEDUCTIONS                          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL EARNINGS       │  TOTAL DEDUCTIONS                    │
//	│  NET PAY                                                     │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/payslip-api/internal/application/payslip"
	"github.com/jhoicas/payslip-api/internal/domain/payroll"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 100, Blue: 60}
	colorAccent  = &props.Color{Red: 59, Green: 130, Blue: 246}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Líneas del desprendible ───────────────────────────────────────────────────

type payLine struct {
	Label string
	Key   string
}

var earningLines = []payLine{
	{"Basic Salary", "basic"},
	{"Rent Allowance", "rent"},
	{"Employer Pension", "employer_pension"},
	{"Peculiar Allowance", "peculiar_allowance"},
	{"Shift Duty Allowance", "shift_duty_allowance"},
	{"NHIS", "nhis"},
	{"Professional Allowance", "professional_allowance"},
	{"Arrears", "arrears"},
	{"Non Clinical Allowance", "non_clinical_allowance"},
	{"Arrears 18 Apr to 30 Nov", "arrears_18_apr_to_30_nov"},
}

var deductionLines = []payLine{
	{"Employee Pension", "employee_pension"},
	{"Employer Pension", "employer_pension"},
	{"NHF", "nhf"},
	{"NHIS", "nhis"},
	{"PAYE Tax", "paye_tax"},
	{"PAYE Tax OSSG AG", "paye_tax_ossg_ag"},
	{"PAYE Tax IMSBIR", "paye_tax_imsbir"},
	{"PAYE Tax BYBIR", "paye_tax_bybir"},
	{"OAGF Overpayment", "01_oagf_overpayment"},
	{"D01 Overpayment", "d01_overpayment"},
	{"Union Dues", "d32_oagf_conpass_union_dues"},
	{"Rock Consumer Credit", "d35_rock_consumer_credit"},
	{"Rock Consumer Credit 2", "d36_rock_consumer_credit_2"},
	{"Rock Consumer Credit 3", "d45_rock_consumer_credit_3"},
	{"Salary Refund", "d47_salary_refund"},
	{"OAGF Fed Mortgage", "l53_oagf_fed_mortgage_renovation"},
	{"Fed Mortgage Renovation", "l53_fed_mortgage_renovation"},
	{"Fed Housing Renovation", "l49_fed_housing_renovation"},
	{"Fed Housing Loan", "l47_fed_gov_housing_loan_scheme"},
	{"ASHS", "l06_ashs"},
	{"Finance Car Scheme", "l05_finance_car_scheme"},
	{"FGHS", "l10_fghs"},
	{"FGSHLB", "fgshlb"},
	{"Coop Electronics", "l52_coop_electronic_commodities"},
	{"Coop Soft Loan", "d68_cooperative_soft_loan_deduction"},
	{"NIS Coop Target", "d57_nis_cooperative_target_deduction"},
	{"Cooperative Loan", "d56_cooperative_loan_deduction"},
	{"NIS Coop Commodities", "d52_nis_cooperative_commodities"},
	{"NIS Coop Share", "d49_nis_coop_share_deduction"},
	{"NIS Multipurpose Coop", "d48_nis_multipurpose_coop_savings"},
	{"D54 Coop Subscription", "d54_coop_subscription"},
	{"Access Pay Day Loan", "access_pay_day_loan"},
	{"Fidelity Bank Loan", "fidelity_bank_loan"},
	{"D77 Keke Loan", "d77_keke_loan"},
	{"JTF Refund", "jtf_refund"},
	{"PAYE Refund", "paye_refund"},
	{"Other Deductions", "other_deductions"},
	{"Employer Pencon AXA Mansard", "employer_pencon_axa_mansard"},
	{"Employer Pencon APT Pensions", "employer_pencon_aptpensions"},
	{"Employer Pencon AIIC Open", "employer_pencon_aiicopen"},
	{"Employer Pencon Lead Pensure", "employer_pencon_leadpensure"},
	{"Employee Pencon AXA Mansard", "employee_pencon_axa_mansard"},
	{"Employee Pencon APT Pensions", "employee_pencon_aptpensions"},
	{"Employee Pencon AIIC Open", "employee_pencon_aiicopen"},
	{"Employee Pencon Anchor Pen", "employee_pencon_anchorpen"},
}

type amountLine struct {
	Label  string
	Amount float64
}

// visibleLines solo conserva las líneas con monto mayor que cero.
func visibleLines(slip payroll.Payslip, lines []payLine) []amountLine {
	out := make([]amountLine, 0, len(lines))
	for _, l := range lines {
		if v := slip.Amount(l.Key); v > 0 {
			out = append(out, amountLine{Label: l.Label, Amount: v})
		}
	}
	return out
}

// ── Generator ─────────────────────────────────────────────────────────────────

var _ payslip.PDFGenerator = (*MarotoPayslipGenerator)(nil)

// MarotoPayslipGenerator implementa payslip.PDFGenerator usando Maroto v2.
type MarotoPayslipGenerator struct{}

// NewMarotoPayslipGenerator construye el generador.
func NewMarotoPayslipGenerator() *MarotoPayslipGenerator { return &MarotoPayslipGenerator{} }

// GeneratePayslipPDF genera el PDF y devuelve sus bytes.
func (g *MarotoPayslipGenerator) GeneratePayslipPDF(
	_ context.Context,
	header payslip.PDFHeader,
	slip payroll.Payslip,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle("Employee Payslip", true).
		WithAuthor(header.OrgUnit, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(header, slip))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(sectionTitle("PERSONAL INFORMATION"))
	m.AddRows(infoRows([][2]string{
		{"Full Name:", slip.Text("name")},
		{"IPPIS Number:", slip.Text("ippis_no")},
		{"Service Number:", slip.Text("service_no")},
		{"Pay Grade:", slip.Text("paygrade")},
		{"Grade Level:", slip.Text("grade")},
		{"Step:", slip.Text("step")},
		{"Designation:", slip.Text("designation")},
		{"Gender:", slip.Text("gender")},
		{"Tax State:", slip.Text("tax_state")},
		{"First Appointment:", slip.Text("date_of_first_appointment")},
		{"Date of Birth:", slip.Text("date_of_birth")},
		{"Retirement Date:", slip.Text("retirement_date")},
	})...)

	m.AddRows(sectionTitle("BANK INFORMATION"))
	m.AddRows(infoRows([][2]string{
		{"Bank Name:", slip.Text("bank_name")},
		{"Account Number:", slip.Text("account_number")},
		{"PFA Name:", slip.Text("pfa_name")},
		{"Pension PIN:", slip.Text("pension_pin")},
	})...)

	m.AddRows(line.NewRow(2, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(amountHeaderRow())
	m.AddRows(amountRows(visibleLines(slip, earningLines), visibleLines(slip, deductionLines))...)
	m.AddRows(line.NewRow(2, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(totalsRow(slip))
	m.AddRows(netPayRow(slip))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(header payslip.PDFHeader, slip payroll.Payslip) core.Row {
	period := strings.ToUpper(slip.Text("month")) + " " + slip.Text("year")
	return row.New(28).Add(
		col.New(12).Add(
			text.New(header.OrgName, props.Text{
				Style: fontstyle.Bold, Size: 14, Align: align.Center, Color: colorPrimary, Top: 1,
			}),
			text.New(header.OrgUnit, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Center, Top: 8,
			}),
			text.New("EMPLOYEE PAYSLIP", props.Text{
				Size: 10, Align: align.Center, Top: 15, Color: colorGray,
			}),
			text.New(period, props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Center, Top: 21,
			}),
		),
	)
}

func sectionTitle(title string) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(title, props.Text{Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 2}),
	))
}

// infoRows reparte los pares etiqueta/valor en dos columnas.
func infoRows(pairs [][2]string) []core.Row {
	rows := make([]core.Row, 0, (len(pairs)+1)/2)
	for i := 0; i < len(pairs); i += 2 {
		cols := []core.Col{
			col.New(3).Add(text.New(pairs[i][0], props.Text{Style: fontstyle.Bold, Top: 1})),
			col.New(3).Add(text.New(pairs[i][1], props.Text{Top: 1})),
		}
		if i+1 < len(pairs) {
			cols = append(cols,
				col.New(3).Add(text.New(pairs[i+1][0], props.Text{Style: fontstyle.Bold, Top: 1})),
				col.New(3).Add(text.New(pairs[i+1][1], props.Text{Top: 1})),
			)
		} else {
			cols = append(cols, col.New(6))
		}
		rows = append(rows, row.New(5).Add(cols...))
	}
	return rows
}

func amountHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: a, Color: colorPrimary, Top: 1,
		}))
	}
	return row.New(7).Add(
		h("EARNINGS", 4, align.Left),
		h("Amount (N)", 2, align.Right),
		h("DEDUCTIONS", 4, align.Left),
		h("Amount (N)", 2, align.Right),
	)
}

// amountRows devengos a la izquierda y deducciones a la derecha, fila por fila.
func amountRows(earnings, deductions []amountLine) []core.Row {
	n := max(len(earnings), len(deductions))
	rows := make([]core.Row, 0, n)
	for i := 0; i < n; i++ {
		var cols []core.Col
		cols = append(cols, amountCols(earnings, i)...)
		cols = append(cols, amountCols(deductions, i)...)
		rows = append(rows, row.New(5).Add(cols...))
	}
	return rows
}

func amountCols(lines []amountLine, i int) []core.Col {
	if i >= len(lines) {
		return []core.Col{col.New(4), col.New(2)}
	}
	return []core.Col{
		col.New(4).Add(text.New(lines[i].Label, props.Text{Top: 1})),
		col.New(2).Add(text.New(FormatAmount(lines[i].Amount), props.Text{Align: align.Right, Top: 1, Right: 2})),
	}
}

func totalsRow(slip payroll.Payslip) core.Row {
	bold := props.Text{Style: fontstyle.Bold, Size: 9, Top: 1}
	boldRight := props.Text{Style: fontstyle.Bold, Size: 9, Top: 1, Align: align.Right, Right: 2}
	return row.New(8).Add(
		col.New(4).Add(text.New("TOTAL EARNINGS", bold)),
		col.New(2).Add(text.New(FormatAmount(slip.Amount("total_earnings")), boldRight)),
		col.New(4).Add(text.New("TOTAL DEDUCTIONS", bold)),
		col.New(2).Add(text.New(FormatAmount(slip.Amount("total_deductions")), boldRight)),
	)
}

func netPayRow(slip payroll.Payslip) core.Row {
	return row.New(14).Add(
		col.New(6).Add(text.New("NET PAY:", props.Text{
			Style: fontstyle.Bold, Size: 14, Align: align.Right, Color: colorAccent, Top: 4, Right: 4,
		})),
		col.New(6).Add(text.New("N"+FormatAmount(slip.Amount("net_pay")), props.Text{
			Style: fontstyle.Bold, Size: 16, Color: colorAccent, Top: 3,
		})),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

// FormatAmount dos decimales con comas de miles. Ej: 1234567.5 → "1,234,567.50"
func FormatAmount(v float64) string {
	s := decimal.NewFromFloat(v).StringFixed(2)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, _ := strings.Cut(s, ".")
	return sign + groupThousands(intPart) + "." + frac
}

// groupThousands inserta comas de miles en un string de dígitos.
func groupThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, c)
	}
	return string(buf)
}
