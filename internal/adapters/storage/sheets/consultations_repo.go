package sheets

import (
	"context"

	"github.com/medpaw02-hue/PawMed/internal/domain/consultations"
)

var consultationSchema = NewSchema(
	"id", "pacienteId", "fecha", "motivo",
	"temperatura", "peso", "condicionCorporal", "frecuenciaCardiaca",
	"frecuenciaRespiratoria", "mucosas", "tiempoLlenadoCapilar",
	"ganglios", "reflejoDeglutorio", "reflejoTusigeno", "estadoHidratacion",
	"hallazgos", "diagnosticoPresuntivo", "diagnosticoDefinitivo",
	"tratamiento", "indicacionEvolucion", "valor", "notas",
)

type ConsultationsRepo struct {
	client       *Client
	url          string
	deleteViaGet bool
}

func NewConsultationsRepo(client *Client, url string) *ConsultationsRepo {
	return &ConsultationsRepo{client: client, url: url}
}

func (r *ConsultationsRepo) WithDeleteViaGet() *ConsultationsRepo {
	r.deleteViaGet = true
	return r
}

func (r *ConsultationsRepo) List(ctx context.Context) ([]consultations.Consultation, error) {
	out := make([]consultations.Consultation, 0)
	if err := validEndpoint(r.url); err != nil {
		return out, err
	}
	rows, err := r.client.FetchAll(ctx, r.url)
	if err != nil {
		return out, err
	}
	for _, raw := range rows {
		row := consultationSchema.Normalize(raw)
		if row["id"] == "" {
			continue
		}
		out = append(out, consultationFromRow(row))
	}
	return out, nil
}

func (r *ConsultationsRepo) Upsert(ctx context.Context, c consultations.Consultation) error {
	if err := validEndpoint(r.url); err != nil {
		return err
	}
	env, err := r.client.Submit(ctx, r.url, consultationFields(c), ActionUpsert)
	if err != nil {
		return err
	}
	return envelopeError(env)
}

func (r *ConsultationsRepo) Delete(ctx context.Context, id string) error {
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

func consultationFromRow(row Row) consultations.Consultation {
	return consultations.Consultation{
		ID:         row["id"],
		PacienteID: row["pacienteId"],
		Fecha:      row["fecha"],
		Motivo:     row["motivo"],
		Examen: consultations.PhysicalExam{
			Temperatura:            row["temperatura"],
			Peso:                   row["peso"],
			CondicionCorporal:      row["condicionCorporal"],
			FrecuenciaCardiaca:     row["frecuenciaCardiaca"],
			FrecuenciaRespiratoria: row["frecuenciaRespiratoria"],
			Mucosas:                row["mucosas"],
			TiempoLlenadoCapilar:   row["tiempoLlenadoCapilar"],
			Ganglios:               row["ganglios"],
			ReflejoDeglutorio:      row["reflejoDeglutorio"],
			ReflejoTusigeno:        row["reflejoTusigeno"],
			EstadoHidratacion:      row["estadoHidratacion"],
		},
		Hallazgos:             row["hallazgos"],
		DiagnosticoPresuntivo: row["diagnosticoPresuntivo"],
		DiagnosticoDefinitivo: row["diagnosticoDefinitivo"],
		Tratamiento:           row["tratamiento"],
		IndicacionEvolucion:   row["indicacionEvolucion"],
		Valor:                 row["valor"],
		Notas:                 row["notas"],
	}
}

func consultationFields(c consultations.Consultation) map[string]any {
	return map[string]any{
		"id":                     c.ID,
		"pacienteId":             c.PacienteID,
		"fecha":                  c.Fecha,
		"motivo":                 c.Motivo,
		"temperatura":            c.Examen.Temperatura,
		"peso":                   c.Examen.Peso,
		"condicionCorporal":      c.Examen.CondicionCorporal,
		"frecuenciaCardiaca":     c.Examen.FrecuenciaCardiaca,
		"frecuenciaRespiratoria": c.Examen.FrecuenciaRespiratoria,
		"mucosas":                c.Examen.Mucosas,
		"tiempoLlenadoCapilar":   c.Examen.TiempoLlenadoCapilar,
		"ganglios":               c.Examen.Ganglios,
		"reflejoDeglutorio":      c.Examen.ReflejoDeglutorio,
		"reflejoTusigeno":        c.Examen.ReflejoTusigeno,
		"estadoHidratacion":      c.Examen.EstadoHidratacion,
		"hallazgos":              c.Hallazgos,
		"diagnosticoPresuntivo":  c.DiagnosticoPresuntivo,
		"diagnosticoDefinitivo":  c.DiagnosticoDefinitivo,
		"tratamiento":            c.Tratamiento,
		"indicacionEvolucion":    c.IndicacionEvolucion,
		"valor":                  c.Valor,
		"notas":                  c.Notas,
	}
}
