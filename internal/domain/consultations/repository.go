package consultations

import "context"

type Repository interface {
	List(ctx context.Context) ([]Consultation, error)
	Upsert(ctx context.Context, c Consultation) error
	Delete(ctx context.Context, id string) error
}
