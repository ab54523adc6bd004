package reports

import (
	"context"
	"time"

	"petcare-crm/internal/domain/appointments"
	"petcare-crm/internal/domain/sales"
)

// Repository expone las lecturas agregadas. Las ventanas temporales llegan
// como rangos semiabiertos [from, to) ya calculados por el service; el
// storage no hace aritmética de calendario.
type Repository interface {
	AppointmentsBetween(ctx context.Context, from, to time.Time) ([]appointments.WithNames, error)
	RecentSales(ctx context.Context, limit int) ([]sales.WithDetails, error)

	TotalSales(ctx context.Context) (float64, error)
	SalesByProduct(ctx context.Context) ([]ProductSales, error)
	AppointmentsByService(ctx context.Context) ([]ServiceCount, error)

	SalesTotalBetween(ctx context.Context, from, to time.Time) (float64, error)
	AppointmentCountBetween(ctx context.Context, from, to time.Time) (int, error)
}
