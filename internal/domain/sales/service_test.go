package sales

import (
	"context"
	"testing"
	"time"
)

type testRepo struct {
	byID map[string]Sale
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Sale{}}
}

func (r *testRepo) Create(ctx context.Context, s Sale) error {
	r.byID[s.ID] = s
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Sale, error) {
	s, ok := r.byID[id]
	if !ok {
		return Sale{}, ErrNotFound
	}
	return s, nil
}

func (r *testRepo) List(ctx context.Context, search string) ([]WithDetails, error) {
	out := make([]WithDetails, 0, len(r.byID))
	for _, s := range r.byID {
		out = append(out, WithDetails{Sale: s})
	}
	return out, nil
}

func (r *testRepo) Update(ctx context.Context, s Sale) error {
	if _, ok := r.byID[s.ID]; !ok {
		return ErrNotFound
	}
	r.byID[s.ID] = s
	return nil
}

func (r *testRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func TestService_Record_SetsQuantityOneAndDate(t *testing.T) {
	svc := NewService(newTestRepo())

	now := time.Date(2026, 8, 31, 14, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	sale, err := svc.Record(context.Background(), RecordInput{
		ProductID: "prod-1",
		Total:     49.90,
	})
	if err != nil {
		t.Fatalf("Record error: %v", err)
	}
	if sale.Quantity != 1 {
		t.Fatalf("expected quantity 1, got %d", sale.Quantity)
	}
	if sale.Date != now {
		t.Fatalf("expected date pinned to now, got %v", sale.Date)
	}
	if sale.Total != 49.90 {
		t.Fatalf("expected total 49.90, got %v", sale.Total)
	}
	if sale.TutorID != "" {
		t.Fatalf("expected anonymous sale, got tutor %q", sale.TutorID)
	}
}

func TestService_Record_Validation(t *testing.T) {
	svc := NewService(newTestRepo())

	if _, err := svc.Record(context.Background(), RecordInput{Total: 10}); err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput without product, got %v", err)
	}
	if _, err := svc.Record(context.Background(), RecordInput{ProductID: "prod-1", Total: -1}); err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput with negative total, got %v", err)
	}
}

func TestService_Update_OnlyTotalAndTutor(t *testing.T) {
	svc := NewService(newTestRepo())

	now := time.Date(2026, 8, 31, 14, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	sale, err := svc.Record(context.Background(), RecordInput{
		ProductID: "prod-1",
		Total:     50,
	})
	if err != nil {
		t.Fatalf("Record error: %v", err)
	}

	updated, err := svc.Update(context.Background(), sale.ID, UpdateInput{
		Total:   75,
		TutorID: "tutor-1",
	})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if updated.Total != 75 || updated.TutorID != "tutor-1" {
		t.Fatalf("expected total/tutor updated, got %#v", updated)
	}
	if updated.ProductID != sale.ProductID || updated.Quantity != sale.Quantity || updated.Date != sale.Date {
		t.Fatalf("expected product, quantity and date untouched, got %#v", updated)
	}
}
