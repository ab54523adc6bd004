package sqlite

import (
	"context"
	"database/sql"
	"time"

	"petcare-crm/internal/domain/appointments"
	"petcare-crm/internal/domain/reports"
	"petcare-crm/internal/domain/sales"
)

type ReportsRepo struct {
	db *sql.DB
}

func NewReportsRepo(db *sql.DB) *ReportsRepo {
	return &ReportsRepo{db: db}
}

func (r *ReportsRepo) AppointmentsBetween(ctx context.Context, from, to time.Time) ([]appointments.WithNames, error) {
	rows, err := r.db.QueryContext(ctx,
		appointmentListQuery+` WHERE a.date_time >= ? AND a.date_time < ? ORDER BY a.date_time, a.id`,
		toMillis(from), toMillis(to),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanAppointmentRows(rows)
}

func (r *ReportsRepo) RecentSales(ctx context.Context, limit int) ([]sales.WithDetails, error) {
	rows, err := r.db.QueryContext(ctx,
		saleListQuery+` ORDER BY s.date DESC, s.id LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSaleRows(rows)
}

func (r *ReportsRepo) TotalSales(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(total), 0) FROM sales`,
	).Scan(&total)
	return total, err
}

// SalesByProduct agrupa por nombre de producto, no por id: dos productos con
// el mismo nombre caen en la misma línea del reporte.
func (r *ReportsRepo) SalesByProduct(ctx context.Context) ([]reports.ProductSales, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT p.name, COALESCE(SUM(s.quantity), 0), COALESCE(SUM(s.total), 0)
		FROM sales s
		JOIN products p ON p.id = s.product_id
		GROUP BY p.name
		ORDER BY p.name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]reports.ProductSales, 0)
	for rows.Next() {
		var line reports.ProductSales
		if err := rows.Scan(&line.ProductName, &line.Quantity, &line.Total); err != nil {
			return nil, err
		}
		out = append(out, line)
	}

	return out, rows.Err()
}

func (r *ReportsRepo) AppointmentsByService(ctx context.Context) ([]reports.ServiceCount, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT service, COUNT(*)
		FROM appointments
		GROUP BY service
		ORDER BY service
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]reports.ServiceCount, 0)
	for rows.Next() {
		var line reports.ServiceCount
		if err := rows.Scan(&line.Service, &line.Count); err != nil {
			return nil, err
		}
		out = append(out, line)
	}

	return out, rows.Err()
}

func (r *ReportsRepo) SalesTotalBetween(ctx context.Context, from, to time.Time) (float64, error) {
	var total float64
	err := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(total), 0) FROM sales WHERE date >= ? AND date < ?`,
		toMillis(from), toMillis(to),
	).Scan(&total)
	return total, err
}

func (r *ReportsRepo) AppointmentCountBetween(ctx context.Context, from, to time.Time) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM appointments WHERE date_time >= ? AND date_time < ?`,
		toMillis(from), toMillis(to),
	).Scan(&count)
	return count, err
}
