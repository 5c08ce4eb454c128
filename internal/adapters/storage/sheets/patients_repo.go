package sheets

import (
	"context"

	"github.com/medpaw02-hue/PawMed/internal/domain/patients"
)

// patientSchema es el registro canónico de la hoja de pacientes. Los
// encabezados reales pueden venir con cualquier case; el schema los
// reconcilia.
var patientSchema = NewSchema(
	"id", "nombre", "edad", "especie", "raza", "color", "sexo",
	"esterilizado", "propietario", "cedula", "telefono", "direccion",
	"email", "notas",
)

type PatientsRepo struct {
	client *Client
	url    string

	// Algunos despliegues del script solo aceptan GET; el delete sale
	// como GET con id + action en query params.
	deleteViaGet bool
}

func NewPatientsRepo(client *Client, url string) *PatientsRepo {
	return &PatientsRepo{client: client, url: url}
}

// WithDeleteViaGet activa el delete por GET para este endpoint.
func (r *PatientsRepo) WithDeleteViaGet() *PatientsRepo {
	r.deleteViaGet = true
	return r
}

func (r *PatientsRepo) List(ctx context.Context) ([]patients.Patient, error) {
	out := make([]patients.Patient, 0)
	if err := validEndpoint(r.url); err != nil {
		return out, err
	}
	rows, err := r.client.FetchAll(ctx, r.url)
	if err != nil {
		return out, err
	}
	for _, raw := range rows {
		row := patientSchema.Normalize(raw)
		if row["id"] == "" {
			continue
		}
		out = append(out, patientFromRow(row))
	}
	return out, nil
}

func (r *PatientsRepo) Upsert(ctx context.Context, p patients.Patient) error {
	if err := validEndpoint(r.url); err != nil {
		return err
	}
	env, err := r.client.Submit(ctx, r.url, patientFields(p), ActionUpsert)
	if err != nil {
		return err
	}
	return envelopeError(env)
}

func (r *PatientsRepo) Delete(ctx context.Context, id string) error {
	if err := validEndpoint(r.url); err != nil {
		return err
	}
	var (
		env Envelope
		err error
	)
	if r.deleteViaGet {
		env, err = r.client.SubmitDeleteViaGet(ctx, r.url, id)
	} else {
		env, err = r.client.Submit(ctx, r.url, map[string]any{"id": id}, ActionDelete)
	}
	if err != nil {
		return err
	}
	return envelopeError(env)
}

func patientFromRow(row Row) patients.Patient {
	return patients.Patient{
		ID:           row["id"],
		Nombre:       row["nombre"],
		Edad:         row["edad"],
		Especie:      row["especie"],
		Raza:         row["raza"],
		Color:        row["color"],
		Sexo:         row["sexo"],
		Esterilizado: row["esterilizado"],
		Propietario:  row["propietario"],
		Cedula:       row["cedula"],
		Telefono:     row["telefono"],
		Direccion:    row["direccion"],
		Email:        row["email"],
		Notas:        row["notas"],
	}
}

// patientFields arma el payload completo de la fila. Siempre van todos
// los campos: el reemplazo es de fila entera, no hay patch parcial, y
// con la hoja vacía estas keys siembran el encabezado.
func patientFields(p patients.Patient) map[string]any {
	return map[string]any{
		"id":           p.ID,
		"nombre":       p.Nombre,
		"edad":         p.Edad,
		"especie":      p.Especie,
		"raza":         p.Raza,
		"color":        p.Color,
		"sexo":         p.Sexo,
		"esterilizado": p.Esterilizado,
		"propietario":  p.Propietario,
		"cedula":       p.Cedula,
		"telefono":     p.Telefono,
		"direccion":    p.Direccion,
		"email":        p.Email,
		"notas":        p.Notas,
	}
}
