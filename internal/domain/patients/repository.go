package patients

import "context"

// Repository es el proxy tipado contra la hoja de pacientes.
// List devuelve siempre un slice (nunca nil), incluso ante fallo total.
// Upsert reemplaza la fila completa si el id existe, o agrega una nueva.
type Repository interface {
	List(ctx context.Context) ([]Patient, error)
	Upsert(ctx context.Context, p Patient) error
	Delete(ctx context.Context, id string) error
}
