package appointments

import "context"

type Repository interface {
	Create(ctx context.Context, a Appointment) error
	GetByID(ctx context.Context, id string) (Appointment, error)
	// List ordena por fecha ascendente; search filtra por nombre de mascota,
	// nombre del tutor O servicio (contains, case-insensitive).
	List(ctx context.Context, search string) ([]WithNames, error)
	Update(ctx context.Context, a Appointment) error
	Delete(ctx context.Context, id string) error
}
