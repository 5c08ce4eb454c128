package consultations

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrInvalidValor = errors.New("valor must be a decimal amount")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

func (s *Service) List(ctx context.Context) ([]Consultation, error) {
	items, err := s.repo.List(ctx)
	if items == nil {
		items = []Consultation{}
	}
	return items, err
}

// ListByPaciente lista las consultas de un paciente. El filtro es del
// lado cliente contra la tabla completa (la hoja no sabe consultar);
// operación nombrada para que ese costo O(n) quede a la vista.
func (s *Service) ListByPaciente(ctx context.Context, pacienteID string) ([]Consultation, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return []Consultation{}, err
	}
	out := make([]Consultation, 0)
	for _, c := range all {
		if sameID(c.PacienteID, pacienteID) {
			out = append(out, c)
		}
	}
	return out, nil
}

// IDsByPaciente alimenta la cascada de borrado de pacientes.
func (s *Service) IDsByPaciente(ctx context.Context, pacienteID string) ([]string, error) {
	items, err := s.ListByPaciente(ctx, pacienteID)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(items))
	for _, c := range items {
		ids = append(ids, c.ID)
	}
	return ids, nil
}

func (s *Service) Upsert(ctx context.Context, c Consultation) (Consultation, error) {
	c.PacienteID = strings.TrimSpace(c.PacienteID)
	if c.PacienteID == "" {
		return Consultation{}, ErrInvalidInput
	}
	c.Motivo = strings.TrimSpace(c.Motivo)
	if c.Motivo == "" {
		return Consultation{}, ErrInvalidInput
	}

	if v := strings.TrimSpace(c.Valor); v != "" {
		if _, err := decimal.NewFromString(v); err != nil {
			return Consultation{}, fmt.Errorf("%w: %q", ErrInvalidValor, c.Valor)
		}
		c.Valor = v
	}

	c.ID = strings.TrimSpace(c.ID)
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if strings.TrimSpace(c.Fecha) == "" {
		c.Fecha = s.now().UTC().Format(time.RFC3339)
	}

	if err := s.repo.Upsert(ctx, c); err != nil {
		return Consultation{}, err
	}
	return c, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidInput
	}
	return s.repo.Delete(ctx, id)
}

// sameID compara ids coaccionando ambos lados a string recortado. La
// hoja devuelve ids numéricos como número o como string según el caso;
// "1" y 1 tienen que matchear.
func sameID(a, b string) bool {
	a = strings.TrimSpace(a)
	b = strings.TrimSpace(b)
	if a == "" || b == "" {
		return false
	}
	return a == b
}
