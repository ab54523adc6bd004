package pets

import "context"

type Repository interface {
	Create(ctx context.Context, p Pet) error
	GetByID(ctx context.Context, id string) (Pet, error)
	// List filtra por nombre de mascota O nombre del tutor (contains, case-insensitive).
	List(ctx context.Context, search string) ([]WithTutor, error)
	Update(ctx context.Context, p Pet) error
	Delete(ctx context.Context, id string) error
}
