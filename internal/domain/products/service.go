package products

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// GetOrCreate resuelve un producto por nombre, creándolo con el precio dado
// si todavía no existe. El upsert vive en el repo para cerrar la ventana de
// carrera entre ventas concurrentes con el mismo nombre nuevo.
func (s *Service) GetOrCreate(ctx context.Context, name string, price float64) (Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Product{}, ErrInvalidInput
	}
	if price < 0 {
		return Product{}, ErrInvalidInput
	}

	return s.repo.UpsertByName(ctx, Product{
		ID:    uuid.NewString(),
		Name:  name,
		Price: price,
	})
}

func (s *Service) GetByID(ctx context.Context, id string) (Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Product, error) {
	return s.repo.List(ctx)
}
