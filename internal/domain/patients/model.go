package patients

// Patient es la ficha del paciente tal como vive en la hoja: todos los
// campos viajan como string, la hoja no tiene más esquema que el
// encabezado. El id lo asigna la aplicación (uuid) al crear.
type Patient struct {
	ID string

	// Datos del paciente
	Nombre       string
	Edad         string
	Especie      string
	Raza         string
	Color        string
	Sexo         string
	Esterilizado string

	// Datos del propietario
	Propietario string
	Cedula      string
	Telefono    string
	Direccion   string
	Email       string

	Notas string
}
