package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/medpaw02-hue/PawMed/internal/domain/patients"
	"github.com/medpaw02-hue/PawMed/internal/ports/store"
)

// Repos en memoria para modo dev y tests. Respetan el mismo contrato
// de errores que el adapter de sheets (store.ErrNotFound, upsert de
// fila completa, delete de todas las filas con el id).
type patientRepo struct {
	mu   sync.RWMutex
	byID map[string]patients.Patient
}

func NewPatientRepo() patients.Repository {
	return &patientRepo{
		byID: make(map[string]patients.Patient),
	}
}

func (r *patientRepo) List(ctx context.Context) ([]patients.Patient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]patients.Patient, 0, len(r.byID))
	for _, p := range r.byID {
		out = append(out, p)
	}
	// Orden estable (solo para consistencia en dev)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *patientRepo) Upsert(ctx context.Context, p patients.Patient) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if p.ID == "" {
		return patients.ErrInvalidInput
	}
	r.byID[p.ID] = p
	return nil
}

func (r *patientRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return store.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}
