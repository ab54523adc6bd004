package appointments

import (
	"context"
	"testing"
	"time"
)

type testRepo struct {
	byID map[string]Appointment
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Appointment{}}
}

func (r *testRepo) Create(ctx context.Context, a Appointment) error {
	r.byID[a.ID] = a
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Appointment, error) {
	a, ok := r.byID[id]
	if !ok {
		return Appointment{}, ErrNotFound
	}
	return a, nil
}

func (r *testRepo) List(ctx context.Context, search string) ([]WithNames, error) {
	out := make([]WithNames, 0, len(r.byID))
	for _, a := range r.byID {
		out = append(out, WithNames{Appointment: a})
	}
	return out, nil
}

func (r *testRepo) Update(ctx context.Context, a Appointment) error {
	if _, ok := r.byID[a.ID]; !ok {
		return ErrNotFound
	}
	r.byID[a.ID] = a
	return nil
}

func (r *testRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func TestService_Create_DefaultsStatusScheduled(t *testing.T) {
	svc := NewService(newTestRepo())

	now := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	created, err := svc.Create(context.Background(), CreateInput{
		DateTime: now.Add(2 * time.Hour),
		Service:  "Banho",
		PetID:    "pet-1",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if created.Status != StatusScheduled {
		t.Fatalf("expected status %q, got %q", StatusScheduled, created.Status)
	}
	if created.CreatedAt != now || created.UpdatedAt != now {
		t.Fatalf("expected timestamps pinned to now")
	}
}

func TestService_Create_RequiresFields(t *testing.T) {
	svc := NewService(newTestRepo())
	when := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		in   CreateInput
	}{
		{"sin fecha", CreateInput{Service: "Banho", PetID: "pet-1"}},
		{"sin servicio", CreateInput{DateTime: when, PetID: "pet-1"}},
		{"sin pet", CreateInput{DateTime: when, Service: "Banho"}},
	}

	for _, tc := range cases {
		if _, err := svc.Create(context.Background(), tc.in); err != ErrInvalidInput {
			t.Errorf("%s: expected ErrInvalidInput, got %v", tc.name, err)
		}
	}
}

func TestService_Update_RejectsUnknownStatus(t *testing.T) {
	svc := NewService(newTestRepo())

	now := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	created, err := svc.Create(context.Background(), CreateInput{
		DateTime: now,
		Service:  "Banho",
		PetID:    "pet-1",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	_, err = svc.Update(context.Background(), created.ID, UpdateInput{
		DateTime: now,
		Service:  "Banho",
		Status:   Status("pendiente"),
		PetID:    "pet-1",
	})
	if err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput for unknown status, got %v", err)
	}
}

func TestService_Update_ChangesStatus(t *testing.T) {
	svc := NewService(newTestRepo())

	now := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	created, err := svc.Create(context.Background(), CreateInput{
		DateTime: now,
		Service:  "Banho",
		PetID:    "pet-1",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	updated, err := svc.Update(context.Background(), created.ID, UpdateInput{
		DateTime: now,
		Service:  "Banho",
		Status:   StatusCompleted,
		PetID:    "pet-1",
	})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if updated.Status != StatusCompleted {
		t.Fatalf("expected status %q, got %q", StatusCompleted, updated.Status)
	}
	if updated.ID != created.ID {
		t.Fatalf("expected ID to stay %s", created.ID)
	}
}
