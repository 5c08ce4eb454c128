package patients

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

// Dependents enumera y borra registros de otra hoja que referencian a un
// paciente (referencia blanda: la hoja no tiene claves foráneas).
type Dependents interface {
	IDsByPaciente(ctx context.Context, pacienteID string) ([]string, error)
	Delete(ctx context.Context, id string) error
}

type Service struct {
	repo Repository

	// Dependientes en orden de borrado: primero recetas, después
	// consultas, al final la fila del paciente.
	dependents []Dependents
}

func NewService(repo Repository, dependents ...Dependents) *Service {
	return &Service{
		repo:       repo,
		dependents: dependents,
	}
}

func (s *Service) List(ctx context.Context) ([]Patient, error) {
	items, err := s.repo.List(ctx)
	if items == nil {
		items = []Patient{}
	}
	return items, err
}

// Upsert guarda la ficha completa. Sin id => alta con uuid nuevo
// (crear es upsert-con-id-fresco, visible para el caller).
func (s *Service) Upsert(ctx context.Context, p Patient) (Patient, error) {
	p.Nombre = strings.TrimSpace(p.Nombre)
	if p.Nombre == "" {
		return Patient{}, ErrInvalidInput
	}

	p.ID = strings.TrimSpace(p.ID)
	if p.ID == "" {
		p.ID = uuid.NewString()
	}

	if err := s.repo.Upsert(ctx, p); err != nil {
		return Patient{}, err
	}
	return p, nil
}

// Delete borra solo la fila del paciente, sin tocar dependientes.
func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidInput
	}
	return s.repo.Delete(ctx, id)
}
