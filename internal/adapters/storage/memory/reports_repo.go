package memory

import (
	"context"
	"sort"
	"time"

	"petcare-crm/internal/domain/appointments"
	"petcare-crm/internal/domain/reports"
	"petcare-crm/internal/domain/sales"
)

func (s *Store) Reports() reports.Repository { return &reportsRepo{s} }

type reportsRepo struct {
	s *Store
}

func (r *reportsRepo) AppointmentsBetween(ctx context.Context, from, to time.Time) ([]appointments.WithNames, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]appointments.WithNames, 0)
	for _, a := range r.s.appointments {
		if a.DateTime.Before(from) || !a.DateTime.Before(to) {
			continue
		}
		pet := r.s.pets[a.PetID]
		out = append(out, appointments.WithNames{
			Appointment: a,
			PetName:     pet.Name,
			TutorName:   r.s.tutors[pet.TutorID].Name,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].DateTime.Equal(out[j].DateTime) {
			return out[i].DateTime.Before(out[j].DateTime)
		}
		return out[i].ID < out[j].ID
	})

	return out, nil
}

func (r *reportsRepo) RecentSales(ctx context.Context, limit int) ([]sales.WithDetails, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]sales.WithDetails, 0, len(r.s.sales))
	for _, sale := range r.s.sales {
		tutorName := ""
		if sale.TutorID != "" {
			tutorName = r.s.tutors[sale.TutorID].Name
		}
		out = append(out, sales.WithDetails{
			Sale:        sale,
			ProductName: r.s.products[sale.ProductID].Name,
			TutorName:   tutorName,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].ID < out[j].ID
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *reportsRepo) TotalSales(ctx context.Context) (float64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	total := 0.0
	for _, sale := range r.s.sales {
		total += sale.Total
	}
	return total, nil
}

func (r *reportsRepo) SalesByProduct(ctx context.Context) ([]reports.ProductSales, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	// agrupación por nombre de producto, no por id
	byName := map[string]*reports.ProductSales{}
	for _, sale := range r.s.sales {
		name := r.s.products[sale.ProductID].Name
		line, ok := byName[name]
		if !ok {
			line = &reports.ProductSales{ProductName: name}
			byName[name] = line
		}
		line.Quantity += sale.Quantity
		line.Total += sale.Total
	}

	out := make([]reports.ProductSales, 0, len(byName))
	for _, line := range byName {
		out = append(out, *line)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ProductName < out[j].ProductName })

	return out, nil
}

func (r *reportsRepo) AppointmentsByService(ctx context.Context) ([]reports.ServiceCount, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	byService := map[string]int{}
	for _, a := range r.s.appointments {
		byService[a.Service]++
	}

	out := make([]reports.ServiceCount, 0, len(byService))
	for service, count := range byService {
		out = append(out, reports.ServiceCount{Service: service, Count: count})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Service < out[j].Service })

	return out, nil
}

func (r *reportsRepo) SalesTotalBetween(ctx context.Context, from, to time.Time) (float64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	total := 0.0
	for _, sale := range r.s.sales {
		if sale.Date.Before(from) || !sale.Date.Before(to) {
			continue
		}
		total += sale.Total
	}
	return total, nil
}

func (r *reportsRepo) AppointmentCountBetween(ctx context.Context, from, to time.Time) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	count := 0
	for _, a := range r.s.appointments {
		if a.DateTime.Before(from) || !a.DateTime.Before(to) {
			continue
		}
		count++
	}
	return count, nil
}
