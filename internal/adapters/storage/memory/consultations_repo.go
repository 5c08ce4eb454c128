package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/medpaw02-hue/PawMed/internal/domain/consultations"
	"github.com/medpaw02-hue/PawMed/internal/ports/store"
)

type consultationRepo struct {
	mu   sync.RWMutex
	byID map[string]consultations.Consultation
}

func NewConsultationRepo() consultations.Repository {
	return &consultationRepo{
		byID: make(map[string]consultations.Consultation),
	}
}

func (r *consultationRepo) List(ctx context.Context) ([]consultations.Consultation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]consultations.Consultation, 0, len(r.byID))
	for _, c := range r.byID {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Fecha < out[j].Fecha })
	return out, nil
}

func (r *consultationRepo) Upsert(ctx context.Context, c consultations.Consultation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if c.ID == "" {
		return consultations.ErrInvalidInput
	}
	r.byID[c.ID] = c
	return nil
}

func (r *consultationRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return store.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}
