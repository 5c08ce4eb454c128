package prescriptions

import "context"

type Repository interface {
	List(ctx context.Context) ([]Prescription, error)
	Upsert(ctx context.Context, p Prescription) error
	Delete(ctx context.Context, id string) error
}
