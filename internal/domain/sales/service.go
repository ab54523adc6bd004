package sales

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
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

type RecordInput struct {
	ProductID string
	TutorID   string // vacío = anónima
	Total     float64
}

// Record registra una venta. Comportamiento heredado del flujo original:
// el precio enviado se guarda tal cual como Total y la cantidad es siempre 1
// (el formulario no pide cantidad).
func (s *Service) Record(ctx context.Context, in RecordInput) (Sale, error) {
	if strings.TrimSpace(in.ProductID) == "" {
		return Sale{}, ErrInvalidInput
	}
	if in.Total < 0 {
		return Sale{}, ErrInvalidInput
	}

	sale := Sale{
		ID:        uuid.NewString(),
		Date:      s.now(),
		Quantity:  1,
		Total:     in.Total,
		ProductID: strings.TrimSpace(in.ProductID),
		TutorID:   strings.TrimSpace(in.TutorID),
	}

	if err := s.repo.Create(ctx, sale); err != nil {
		return Sale{}, err
	}
	return sale, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Sale, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, search string) ([]WithDetails, error) {
	return s.repo.List(ctx, strings.TrimSpace(search))
}

type UpdateInput struct {
	Total   float64
	TutorID string
}

// Update solo permite cambiar total y tutor; el producto y la cantidad de una
// venta registrada no se tocan.
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Sale, error) {
	if in.Total < 0 {
		return Sale{}, ErrInvalidInput
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Sale{}, err
	}

	current.Total = in.Total
	current.TutorID = strings.TrimSpace(in.TutorID)

	if err := s.repo.Update(ctx, current); err != nil {
		return Sale{}, err
	}
	return current, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
