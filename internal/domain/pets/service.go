package pets

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

	// ErrInUse indica que la mascota todavía tiene citas asociadas.
	ErrInUse = errors.New("pet has dependent records")
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
	Breed   string
	Age     *int
	TutorID string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Pet, error) {
	if strings.TrimSpace(in.Name) == "" {
		return Pet{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.TutorID) == "" {
		return Pet{}, ErrInvalidInput
	}

	now := s.now()
	p := Pet{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(in.Name),
		Breed:     strings.TrimSpace(in.Breed),
		Age:       in.Age,
		TutorID:   strings.TrimSpace(in.TutorID),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Pet, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, search string) ([]WithTutor, error) {
	return s.repo.List(ctx, strings.TrimSpace(search))
}

type UpdateInput struct {
	Name    string
	Breed   string
	Age     *int
	TutorID string
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Pet, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.TutorID) == "" {
		return Pet{}, ErrInvalidInput
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Pet{}, err
	}

	current.Name = strings.TrimSpace(in.Name)
	current.Breed = strings.TrimSpace(in.Breed)
	current.Age = in.Age
	current.TutorID = strings.TrimSpace(in.TutorID)
	current.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, current); err != nil {
		return Pet{}, err
	}
	return current, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
