package prescriptions

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Prescription, error) {
	items, err := s.repo.List(ctx)
	if items == nil {
		items = []Prescription{}
	}
	return items, err
}

func (s *Service) ListByPaciente(ctx context.Context, pacienteID string) ([]Prescription, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return []Prescription{}, err
	}
	pacienteID = strings.TrimSpace(pacienteID)
	out := make([]Prescription, 0)
	for _, p := range all {
		if pacienteID != "" && strings.TrimSpace(p.PacienteID) == pacienteID {
			out = append(out, p)
		}
	}
	return out, nil
}

// IDsByPaciente alimenta la cascada de borrado de pacientes: las
// recetas caen junto con las consultas del paciente.
func (s *Service) IDsByPaciente(ctx context.Context, pacienteID string) ([]string, error) {
	items, err := s.ListByPaciente(ctx, pacienteID)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(items))
	for _, p := range items {
		ids = append(ids, p.ID)
	}
	return ids, nil
}

func (s *Service) Upsert(ctx context.Context, p Prescription) (Prescription, error) {
	p.PacienteID = strings.TrimSpace(p.PacienteID)
	p.Receta = strings.TrimSpace(p.Receta)
	if p.PacienteID == "" || p.Receta == "" {
		return Prescription{}, ErrInvalidInput
	}

	p.ID = strings.TrimSpace(p.ID)
	if p.ID == "" {
		p.ID = uuid.NewString()
	}

	if err := s.repo.Upsert(ctx, p); err != nil {
		return Prescription{}, err
	}
	return p, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidInput
	}
	return s.repo.Delete(ctx, id)
}
