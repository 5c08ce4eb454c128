package prescriptions

// Prescription es una receta. Puede nacer ligada a una consulta o
// suelta (solo con paciente); ambas referencias son blandas.
type Prescription struct {
	ID         string
	ConsultaID string
	PacienteID string

	Receta         string
	Indicaciones   string
	ProximoControl string
}
