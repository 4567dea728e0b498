package dto

// PayslipQuery parámetros de búsqueda del desprendible (?id=&year=&month=).
type PayslipQuery struct {
	ID    string `query:"id"`
	Year  string `query:"year"`
	Month string `query:"month"`
}
