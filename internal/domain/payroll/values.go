package payroll

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Text forma textual comparable de un valor almacenado: los números enteros se escriben
// sin decimales (2019, no 2019.0) y nil es "".
func Text(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case int:
		return strconv.Itoa(t)
	case int32:
		return strconv.FormatInt(int64(t), 10)
	case int64:
		return strconv.FormatInt(t, 10)
	default:
		return fmt.Sprint(t)
	}
}

// Number convierte un valor almacenado a float64. Acepta texto numérico de documentos legacy.
func Number(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int32:
		return float64(t), true
	case int64:
		return float64(t), true
	case string:
		return ParseNumber(t)
	default:
		return 0, false
	}
}

// Present indica si un valor cuenta como dato para el mapeo canónico: no nil, texto no vacío,
// número distinto de cero.
func Present(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return strings.TrimSpace(t) != ""
	case bool:
		return t
	default:
		if n, ok := Number(v); ok {
			return n != 0 && !math.IsNaN(n)
		}
		return true
	}
}
