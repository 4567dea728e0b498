package entity

// MonthlyRecord es el registro plano de un periodo (year, month) de un empleado:
// montos de devengos/deducciones y campos de texto que cambian mes a mes.
// Las claves son los nombres de columna del export (en minúscula).
type MonthlyRecord map[string]any

// Get devuelve el valor de una columna o nil si no existe.
func (r MonthlyRecord) Get(key string) any {
	if r == nil {
		return nil
	}
	return r[key]
}

// EmployeeIdentity campos de identidad del empleado que el import escribe siempre a nivel raíz.
// Un nil significa "ausente" y se persiste como null.
type EmployeeIdentity struct {
	Name                   *string
	IppisNo                *string
	ServiceNo              *string
	Gender                 *string
	TaxState               *string
	DateOfFirstAppointment *string
	DateOfBirth            *string
	RetirementDate         *string
}

// Fields devuelve la identidad como mapa plano con los nombres de campo del documento.
func (i EmployeeIdentity) Fields() map[string]any {
	return map[string]any{
		"name":                      nullable(i.Name),
		"ippis_no":                  nullable(i.IppisNo),
		"service_no":                nullable(i.ServiceNo),
		"gender":                    nullable(i.Gender),
		"tax_state":                 nullable(i.TaxState),
		"date_of_first_appointment": nullable(i.DateOfFirstAppointment),
		"date_of_birth":             nullable(i.DateOfBirth),
		"retirement_date":           nullable(i.RetirementDate),
	}
}

func nullable(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

// EmployeePayroll documento por empleado (colección legacy "payrolls").
// Fields conserva todos los campos de nivel raíz, incluidos los heredados de imports antiguos
// (employee_name, birthdate, ...), para que el mapeo canónico pueda usarlos como respaldo.
type EmployeePayroll struct {
	ID      string
	Fields  map[string]any
	Records []MonthlyRecord
}

// Get devuelve un campo de nivel raíz o nil.
func (e *EmployeePayroll) Get(key string) any {
	if e == nil || e.Fields == nil {
		return nil
	}
	return e.Fields[key]
}
