package sales

import "context"

type Repository interface {
	Create(ctx context.Context, s Sale) error
	GetByID(ctx context.Context, id string) (Sale, error)
	// List ordena por fecha descendente; search filtra por nombre de producto
	// O nombre del tutor (contains, case-insensitive).
	List(ctx context.Context, search string) ([]WithDetails, error)
	Update(ctx context.Context, s Sale) error
	Delete(ctx context.Context, id string) error
}
