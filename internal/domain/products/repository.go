package products

import "context"

type Repository interface {
	// UpsertByName inserta el producto si el nombre no existe y devuelve la
	// fila resultante. Si ya existe un producto con ese nombre, gana la fila
	// existente (el precio enviado se ignora).
	UpsertByName(ctx context.Context, p Product) (Product, error)
	GetByID(ctx context.Context, id string) (Product, error)
	List(ctx context.Context) ([]Product, error)
}
