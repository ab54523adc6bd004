package appointments

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

type CreateInput struct {
	DateTime time.Time
	Service  string
	PetID    string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Appointment, error) {
	if in.DateTime.IsZero() {
		return Appointment{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Service) == "" {
		return Appointment{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.PetID) == "" {
		return Appointment{}, ErrInvalidInput
	}

	now := s.now()
	a := Appointment{
		ID:        uuid.NewString(),
		DateTime:  in.DateTime,
		Service:   strings.TrimSpace(in.Service),
		Status:    StatusScheduled,
		PetID:     strings.TrimSpace(in.PetID),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return Appointment{}, err
	}
	return a, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Appointment, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, search string) ([]WithNames, error) {
	return s.repo.List(ctx, strings.TrimSpace(search))
}

type UpdateInput struct {
	DateTime time.Time
	Service  string
	Status   Status
	PetID    string
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Appointment, error) {
	if in.DateTime.IsZero() || strings.TrimSpace(in.Service) == "" || strings.TrimSpace(in.PetID) == "" {
		return Appointment{}, ErrInvalidInput
	}
	if !ValidStatus(in.Status) {
		return Appointment{}, ErrInvalidInput
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Appointment{}, err
	}

	current.DateTime = in.DateTime
	current.Service = strings.TrimSpace(in.Service)
	current.Status = in.Status
	current.PetID = strings.TrimSpace(in.PetID)
	current.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, current); err != nil {
		return Appointment{}, err
	}
	return current, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
