package tutors

import "context"

type Repository interface {
	Create(ctx context.Context, t Tutor) error
	GetByID(ctx context.Context, id string) (Tutor, error)
	// List devuelve todos los tutores; search filtra por nombre (contains, case-insensitive).
	List(ctx context.Context, search string) ([]Tutor, error)
	Update(ctx context.Context, t Tutor) error
	Delete(ctx context.Context, id string) error
}
