package memory

import (
	"context"
	"sort"
	"strings"

	"petcare-crm/internal/domain/sales"
)

type salesRepo struct {
	s *Store
}

func (r *salesRepo) Create(ctx context.Context, sale sales.Sale) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if strings.TrimSpace(sale.ID) == "" {
		return errIDRequired
	}
	r.s.sales[sale.ID] = sale
	return nil
}

func (r *salesRepo) GetByID(ctx context.Context, id string) (sales.Sale, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	sale, ok := r.s.sales[id]
	if !ok {
		return sales.Sale{}, sales.ErrNotFound
	}
	return sale, nil
}

func (r *salesRepo) List(ctx context.Context, search string) ([]sales.WithDetails, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]sales.WithDetails, 0)
	for _, sale := range r.s.sales {
		productName := r.s.products[sale.ProductID].Name
		tutorName := ""
		if sale.TutorID != "" {
			tutorName = r.s.tutors[sale.TutorID].Name
		}

		if search != "" && !containsFold(productName, search) && !containsFold(tutorName, search) {
			continue
		}

		out = append(out, sales.WithDetails{
			Sale:        sale,
			ProductName: productName,
			TutorName:   tutorName,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].ID < out[j].ID
	})

	return out, nil
}

func (r *salesRepo) Update(ctx context.Context, sale sales.Sale) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.sales[sale.ID]; !ok {
		return sales.ErrNotFound
	}
	r.s.sales[sale.ID] = sale
	return nil
}

func (r *salesRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.sales[id]; !ok {
		return sales.ErrNotFound
	}
	delete(r.s.sales, id)
	return nil
}
