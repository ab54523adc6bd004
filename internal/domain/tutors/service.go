package tutors

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

	// ErrInUse indica que el tutor todavía tiene mascotas o ventas asociadas.
	ErrInUse = errors.New("tutor has dependent records")
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

type CreateInput struct {
	Name    string
	Phone   string
	Address string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Tutor, error) {
	if strings.TrimSpace(in.Name) == "" {
		return Tutor{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Phone) == "" {
		return Tutor{}, ErrInvalidInput
	}

	now := s.now()
	t := Tutor{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(in.Name),
		Phone:     strings.TrimSpace(in.Phone),
		Address:   strings.TrimSpace(in.Address),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, t); err != nil {
		return Tutor{}, err
	}
	return t, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Tutor, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, search string) ([]Tutor, error) {
	return s.repo.List(ctx, strings.TrimSpace(search))
}

type UpdateInput struct {
	Name    string
	Phone   string
	Address string
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Tutor, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Phone) == "" {
		return Tutor{}, ErrInvalidInput
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Tutor{}, err
	}

	current.Name = strings.TrimSpace(in.Name)
	current.Phone = strings.TrimSpace(in.Phone)
	current.Address = strings.TrimSpace(in.Address)
	current.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, current); err != nil {
		return Tutor{}, err
	}
	return current, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
