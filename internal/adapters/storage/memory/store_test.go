package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"petcare-crm/internal/domain/appointments"
	"petcare-crm/internal/domain/pets"
	"petcare-crm/internal/domain/products"
	"petcare-crm/internal/domain/sales"
	"petcare-crm/internal/domain/tutors"
)

func TestProducts_UpsertByName_ExistingRowWins(t *testing.T) {
	repo := NewStore().Products()
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
		t.Fatalf("expected same product, got %s vs %s", second.ID, first.ID)
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

func TestTutors_Delete_RejectedWhileInUse(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	if err := store.Tutors().Create(ctx, tutors.Tutor{ID: "t1", Name: "Ana", Phone: "555"}); err != nil {
		t.Fatalf("create tutor: %v", err)
	}
	if err := store.Pets().Create(ctx, pets.Pet{ID: "m1", Name: "Rex", TutorID: "t1"}); err != nil {
		t.Fatalf("create pet: %v", err)
	}

	if err := store.Tutors().Delete(ctx, "t1"); !errors.Is(err, tutors.ErrInUse) {
		t.Fatalf("expected ErrInUse with dependent pet, got %v", err)
	}

	if err := store.Pets().Delete(ctx, "m1"); err != nil {
		t.Fatalf("delete pet: %v", err)
	}
	if err := store.Tutors().Delete(ctx, "t1"); err != nil {
		t.Fatalf("delete tutor after removing pet: %v", err)
	}
}

func TestTutors_Delete_NotFound(t *testing.T) {
	store := NewStore()

	if err := store.Tutors().Delete(context.Background(), "missing"); !errors.Is(err, tutors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestTutors_List_SearchIsCaseInsensitive(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	if err := store.Tutors().Create(ctx, tutors.Tutor{ID: "t1", Name: "Maria Silva", Phone: "555"}); err != nil {
		t.Fatalf("create tutor: %v", err)
	}

	for _, search := range []string{"maria", "SILVA", "ia si"} {
		got, err := store.Tutors().List(ctx, search)
		if err != nil {
			t.Fatalf("List(%q): %v", search, err)
		}
		if len(got) != 1 {
			t.Fatalf("List(%q): expected 1 match, got %d", search, len(got))
		}
	}

	got, err := store.Tutors().List(ctx, "xyz")
	if err != nil {
		t.Fatalf("List(xyz): %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no match for xyz, got %d", len(got))
	}
}

func TestReports_Aggregations(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	if _, err := store.Products().UpsertByName(ctx, products.Product{ID: "p1", Name: "Shampoo", Price: 25}); err != nil {
		t.Fatalf("upsert product: %v", err)
	}

	august := time.Date(2026, 8, 10, 12, 0, 0, 0, time.Local)
	july := time.Date(2026, 7, 10, 12, 0, 0, 0, time.Local)

	saleRows := []sales.Sale{
		{ID: "s1", Date: august, Quantity: 1, Total: 25, ProductID: "p1"},
		{ID: "s2", Date: august.Add(time.Hour), Quantity: 1, Total: 30, ProductID: "p1"},
		{ID: "s3", Date: july, Quantity: 1, Total: 10, ProductID: "p1"},
	}
	for _, s := range saleRows {
		if err := store.Sales().Create(ctx, s); err != nil {
			t.Fatalf("create sale %s: %v", s.ID, err)
		}
	}

	reportsRepo := store.Reports()

	total, err := reportsRepo.TotalSales(ctx)
	if err != nil {
		t.Fatalf("TotalSales: %v", err)
	}
	if total != 65 {
		t.Fatalf("expected total 65, got %v", total)
	}

	byProduct, err := reportsRepo.SalesByProduct(ctx)
	if err != nil {
		t.Fatalf("SalesByProduct: %v", err)
	}
	if len(byProduct) != 1 {
		t.Fatalf("expected 1 product line, got %d", len(byProduct))
	}
	if byProduct[0].ProductName != "Shampoo" || byProduct[0].Quantity != 3 || byProduct[0].Total != 65 {
		t.Fatalf("unexpected product line: %#v", byProduct[0])
	}

	monthFrom := time.Date(2026, 8, 1, 0, 0, 0, 0, time.Local)
	monthTo := monthFrom.AddDate(0, 1, 0)

	monthTotal, err := reportsRepo.SalesTotalBetween(ctx, monthFrom, monthTo)
	if err != nil {
		t.Fatalf("SalesTotalBetween: %v", err)
	}
	if monthTotal != 55 {
		t.Fatalf("expected July sale excluded from month total, got %v", monthTotal)
	}

	recent, err := reportsRepo.RecentSales(ctx, 2)
	if err != nil {
		t.Fatalf("RecentSales: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("expected 2 recent sales, got %d", len(recent))
	}
	if recent[0].ID != "s2" || recent[1].ID != "s1" {
		t.Fatalf("expected newest first (s2, s1), got %s, %s", recent[0].ID, recent[1].ID)
	}
	if recent[0].ProductName != "Shampoo" {
		t.Fatalf("expected product name joined, got %q", recent[0].ProductName)
	}
}

func TestReports_AppointmentWindows(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	if err := store.Tutors().Create(ctx, tutors.Tutor{ID: "t1", Name: "Ana", Phone: "555"}); err != nil {
		t.Fatalf("create tutor: %v", err)
	}
	if err := store.Pets().Create(ctx, pets.Pet{ID: "m1", Name: "Rex", TutorID: "t1"}); err != nil {
		t.Fatalf("create pet: %v", err)
	}

	day := time.Date(2026, 8, 31, 0, 0, 0, 0, time.Local)
	rows := []appointments.Appointment{
		{ID: "a1", DateTime: day.Add(9 * time.Hour), Service: "Banho", Status: appointments.StatusScheduled, PetID: "m1"},
		{ID: "a2", DateTime: day.Add(15 * time.Hour), Service: "Tosa", Status: appointments.StatusScheduled, PetID: "m1"},
		{ID: "a3", DateTime: day.AddDate(0, 0, 1), Service: "Banho", Status: appointments.StatusScheduled, PetID: "m1"},
	}
	for _, a := range rows {
		if err := store.Appointments().Create(ctx, a); err != nil {
			t.Fatalf("create appointment %s: %v", a.ID, err)
		}
	}

	got, err := store.Reports().AppointmentsBetween(ctx, day, day.AddDate(0, 0, 1))
	if err != nil {
		t.Fatalf("AppointmentsBetween: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 appointments in day window, got %d", len(got))
	}
	if got[0].ID != "a1" || got[1].ID != "a2" {
		t.Fatalf("expected chronological order (a1, a2), got %s, %s", got[0].ID, got[1].ID)
	}
	if got[0].PetName != "Rex" || got[0].TutorName != "Ana" {
		t.Fatalf("expected names joined, got %#v", got[0])
	}

	byService, err := store.Reports().AppointmentsByService(ctx)
	if err != nil {
		t.Fatalf("AppointmentsByService: %v", err)
	}
	if len(byService) != 2 {
		t.Fatalf("expected 2 service lines, got %d", len(byService))
	}
	if byService[0].Service != "Banho" || byService[0].Count != 2 {
		t.Fatalf("unexpected first line: %#v", byService[0])
	}
}
