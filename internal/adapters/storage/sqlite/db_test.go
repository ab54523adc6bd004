package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"petcare-crm/internal/domain/pets"
	"petcare-crm/internal/domain/products"
	"petcare-crm/internal/domain/tutors"
)

func TestOpen_MigrationsAreIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crm_test.db")

	db, err := Open(path)
	if err != nil {
		t.Fatalf("first Open: %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	// reabrir no debe volver a correr las migraciones
	db, err = Open(path)
	if err != nil {
		t.Fatalf("second Open: %v", err)
	}
	defer db.Close()

	var count int
	if err := db.QueryRow(
		"SELECT COUNT(*) FROM " + migrationTable,
	).Scan(&count); err != nil {
		t.Fatalf("count migrations: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 applied migration, got %d", count)
	}
}

func TestProductsRepo_UpsertByName_NoDuplicate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crm_test.db")
	db, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer db.Close()

	repo := NewProductsRepo(db)
	ctx := context.Background()

	first, err := repo.UpsertByName(ctx, products.Product{ID: "p1", Name: "Shampoo", Price: 30})
	if err != nil {
		t.Fatalf("first upsert: %v", err)
	}

	second, err := repo.UpsertByName(ctx, products.Product{ID: "p2", Name: "Shampoo", Price: 99})
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	if second.ID != first.ID {
		t.Fatalf("expected same row, got %s vs %s", second.ID, first.ID)
	}
	if second.Price != 30 {
		t.Fatalf("expected original price 30, got %v", second.Price)
	}

	list, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 product, got %d", len(list))
	}
}

func TestTutorsRepo_Delete_RejectedWhileInUse(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crm_test.db")
	db, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer db.Close()

	tutorsRepo := NewTutorsRepo(db)
	petsRepo := NewPetsRepo(db)
	ctx := context.Background()
	now := time.Now()

	tutor := tutors.Tutor{ID: "t1", Name: "Ana", Phone: "555", CreatedAt: now, UpdatedAt: now}
	if err := tutorsRepo.Create(ctx, tutor); err != nil {
		t.Fatalf("create tutor: %v", err)
	}

	pet := pets.Pet{ID: "m1", Name: "Rex", TutorID: "t1", CreatedAt: now, UpdatedAt: now}
	if err := petsRepo.Create(ctx, pet); err != nil {
		t.Fatalf("create pet: %v", err)
	}

	if err := tutorsRepo.Delete(ctx, "t1"); !errors.Is(err, tutors.ErrInUse) {
		t.Fatalf("expected ErrInUse with dependent pet, got %v", err)
	}

	if err := petsRepo.Delete(ctx, "m1"); err != nil {
		t.Fatalf("delete pet: %v", err)
	}
	if err := tutorsRepo.Delete(ctx, "t1"); err != nil {
		t.Fatalf("delete tutor after removing pet: %v", err)
	}
}

func TestTutorsRepo_GetByID_NotFound(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crm_test.db")
	db, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer db.Close()

	if _, err := NewTutorsRepo(db).GetByID(context.Background(), "missing"); !errors.Is(err, tutors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestTimestampRoundTrip(t *testing.T) {
	in := time.Date(2026, 8, 31, 15, 4, 5, 0, time.Local)
	out := fromMillis(toMillis(in))
	if !out.Equal(in) {
		t.Fatalf("expected %v, got %v", in, out)
	}
}
