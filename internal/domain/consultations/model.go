package consultations

// Consultation es una visita médica. PacienteID es una referencia
// blanda al id del paciente; la hoja nunca la valida. Valor viaja como
// string (la hoja no tiene tipo numérico confiable); el service lo
// valida como decimal cuando viene.
type Consultation struct {
	ID         string
	PacienteID string

	Fecha  string
	Motivo string

	Examen PhysicalExam

	Hallazgos             string
	DiagnosticoPresuntivo string
	DiagnosticoDefinitivo string
	Tratamiento           string
	IndicacionEvolucion   string

	Valor string
	Notas string
}

// PhysicalExam es el sub-registro del examen físico. Todo opcional,
// todo string: la veterinaria anota lo que midió y nada más.
type PhysicalExam struct {
	Temperatura            string
	Peso                   string
	CondicionCorporal      string
	FrecuenciaCardiaca     string
	FrecuenciaRespiratoria string
	Mucosas                string
	TiempoLlenadoCapilar   string
	Ganglios               string
	ReflejoDeglutorio      string
	ReflejoTusigeno        string
	EstadoHidratacion      string
}
