package payroll_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/payslip-api/internal/domain/payroll"
)

func TestCleanValue_TablaDeClasificacion(t *testing.T) {
	cases := []struct {
		name   string
		column string
		raw    string
		want   any
		ok     bool
	}{
		{"numérico simple", "basic", "50000", float64(50000), true},
		{"numérico con espacios", "rent", "  1200.50 ", 1200.5, true},
		{"numérico con miles", "basic", "1,250,000.75", 1250000.75, true},
		{"numérico no parseable queda como texto", "basic", "pending", "pending", true},
		{"vacío ausente", "basic", "", nil, false},
		{"null ausente", "basic", "null", nil, false},
		{"undefined ausente", "designation", "undefined", nil, false},
		{"N/A en monto ausente", "basic", "N/A", nil, false},
		{"NA en identidad ausente", "gender", "NA", nil, false},
		{"N/A preservado en texto mensual", "designation", "N/A", "N/A", true},
		{"n/a preservado en cuenta", "account_number", "n/a", "n/a", true},
		{"cuenta numérica no se convierte", "account_number", "0012345678", "0012345678", true},
		{"grado no se convierte", "grade_level", "08", "08", true},
		{"ippis numérico no se convierte", "ippis_no", " 123456 ", "123456", true},
		{"columna desconocida numérica", "bonus_x", "15", float64(15), true},
		{"monto fuera de rango queda como texto", "basic", "1e400", "1e400", true},
		{"año entero", "year", "2019", 2019, true},
		{"año inválido ausente", "year", "twenty", nil, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := payroll.CleanValue(payroll.KindOf(tc.column), tc.raw)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseNumber_RechazaFormasNoMonetarias(t *testing.T) {
	for _, s := range []string{"inf", "NaN", "0x1A", "1_000", "1,00", "--5", "1e400", "-1e400"} {
		_, ok := payroll.ParseNumber(s)
		assert.False(t, ok, "%q no debe interpretarse como monto", s)
	}
}

func TestKindOf_ColumnaDesconocidaEsNumerica(t *testing.T) {
	assert.Equal(t, payroll.KindNumeric, payroll.KindOf("some_new_allowance"))
	assert.Equal(t, payroll.KindPreservedText, payroll.KindOf("pfa_name"))
	assert.Equal(t, "preserved_text", payroll.KindOf("pfa_name").String())
}

func TestCanonicalMonth(t *testing.T) {
	assert.Equal(t, "August", payroll.CanonicalMonth(" august "))
	assert.Equal(t, "December", payroll.CanonicalMonth("DECEMBER"))
	assert.Equal(t, "Aug", payroll.CanonicalMonth("Aug"))
}

func TestParseRow_ClaveIdentidadYRegistro(t *testing.T) {
	row := map[string]string{
		"ippis_no":      " A1 ",
		"service_no":    "NIS/001",
		"year":          "2019",
		"month":         "august",
		"employee_name": "Jane Doe",
		"gender":        "N/A",
		"basic":         "50000",
		"designation":   "N/A",
		"paye_tax":      "",
	}

	got, reason := payroll.ParseRow(row)
	require.Equal(t, payroll.SkipNone, reason)

	assert.Equal(t, "A1", got.Key)
	assert.Equal(t, 2019, got.Year)
	assert.Equal(t, "August", got.Month)
	require.NotNil(t, got.Identity.Name)
	assert.Equal(t, "Jane Doe", *got.Identity.Name)
	assert.Nil(t, got.Identity.Gender, "N/A en identidad debe quedar ausente")

	assert.Equal(t, float64(50000), got.Record["basic"])
	assert.Equal(t, "N/A", got.Record["designation"])
	assert.Equal(t, 2019, got.Record["year"])
	assert.Equal(t, "August", got.Record["month"])
	assert.NotContains(t, got.Record, "paye_tax")
	assert.NotContains(t, got.Record, "gender")
	assert.Equal(t, "A1|2019|August", got.PeriodKey())
}

func TestParseRow_UsaNumeroDeServicioSinIppis(t *testing.T) {
	got, reason := payroll.ParseRow(map[string]string{
		"ippis_no":   "N/A",
		"service_no": "NIS/77",
		"year":       "2020",
		"month":      "May",
	})
	require.Equal(t, payroll.SkipNone, reason)
	assert.Equal(t, "NIS/77", got.Key)
	assert.Nil(t, got.Identity.IppisNo)
}

func TestParseRow_FilasInvalidas(t *testing.T) {
	cases := []struct {
		name string
		row  map[string]string
		want payroll.SkipReason
	}{
		{"sin identificador", map[string]string{"year": "2019", "month": "May"}, payroll.SkipMissingKey},
		{"sin año", map[string]string{"ippis_no": "A1", "month": "May"}, payroll.SkipMissingYear},
		{"año cero", map[string]string{"ippis_no": "A1", "year": "0", "month": "May"}, payroll.SkipMissingYear},
		{"sin mes", map[string]string{"ippis_no": "A1", "year": "2019", "month": " "}, payroll.SkipMissingMonth},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, reason := payroll.ParseRow(tc.row)
			assert.Equal(t, tc.want, reason)
		})
	}
}
