package sheets

import (
	"context"

	"github.com/medpaw02-hue/PawMed/internal/domain/prescriptions"
)

var prescriptionSchema = NewSchema(
	"id", "consultaId", "pacienteId", "receta", "indicaciones",
	"proximoControl",
)

type PrescriptionsRepo struct {
	client       *Client
	url          string
	deleteViaGet bool
}

func NewPrescriptionsRepo(client *Client, url string) *PrescriptionsRepo {
	return &PrescriptionsRepo{client: client, url: url}
}

func (r *PrescriptionsRepo) WithDeleteViaGet() *PrescriptionsRepo {
	r.deleteViaGet = true
	return r
}

func (r *PrescriptionsRepo) List(ctx context.Context) ([]prescriptions.Prescription, error) {
	out := make([]prescriptions.Prescription, 0)
	if err := validEndpoint(r.url); err != nil {
		return out, err
	}
	rows, err := r.client.FetchAll(ctx, r.url)
	if err != nil {
		return out, err
	}
	for _, raw := range rows {
		row := prescriptionSchema.Normalize(raw)
		if row["id"] == "" {
			continue
		}
		out = append(out, prescriptions.Prescription{
			ID:             row["id"],
			ConsultaID:     row["consultaId"],
			PacienteID:     row["pacienteId"],
			Receta:         row["receta"],
			Indicaciones:   row["indicaciones"],
			ProximoControl: row["proximoControl"],
		})
	}
	return out, nil
}

func (r *PrescriptionsRepo) Upsert(ctx context.Context, p prescriptions.Prescription) error {
	if err := validEndpoint(r.url); err != nil {
		return err
	}
	fields := map[string]any{
		"id":             p.ID,
		"consultaId":     p.ConsultaID,
		"pacienteId":     p.PacienteID,
		"receta":         p.Receta,
		"indicaciones":   p.Indicaciones,
		"proximoControl": p.ProximoControl,
	}
	env, err := r.client.Submit(ctx, r.url, fields, ActionUpsert)
	if err != nil {
		return err
	}
	return envelopeError(env)
}

func (r *PrescriptionsRepo) Delete(ctx context.Context, id string) error {
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
