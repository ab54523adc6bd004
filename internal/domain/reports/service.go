package reports

import (
	"context"
	"time"
)

const recentSalesLimit = 5

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

// Dashboard arma los datos de la página principal: citas de hoy (día local
// del servidor) y las últimas ventas.
func (s *Service) Dashboard(ctx context.Context) (Dashboard, error) {
	from, to := dayWindow(s.now())

	appts, err := s.repo.AppointmentsBetween(ctx, from, to)
	if err != nil {
		return Dashboard{}, err
	}

	recent, err := s.repo.RecentSales(ctx, recentSalesLimit)
	if err != nil {
		return Dashboard{}, err
	}

	return Dashboard{
		TodayAppointments: appts,
		RecentSales:       recent,
	}, nil
}

// Summary arma los agregados de la página de reportes. Todos devuelven
// cero/vacío cuando no hay filas.
func (s *Service) Summary(ctx context.Context) (Summary, error) {
	total, err := s.repo.TotalSales(ctx)
	if err != nil {
		return Summary{}, err
	}

	byProduct, err := s.repo.SalesByProduct(ctx)
	if err != nil {
		return Summary{}, err
	}

	byService, err := s.repo.AppointmentsByService(ctx)
	if err != nil {
		return Summary{}, err
	}

	from, to := monthWindow(s.now())

	monthSales, err := s.repo.SalesTotalBetween(ctx, from, to)
	if err != nil {
		return Summary{}, err
	}

	monthAppts, err := s.repo.AppointmentCountBetween(ctx, from, to)
	if err != nil {
		return Summary{}, err
	}

	return Summary{
		TotalSales:            total,
		SalesByProduct:        byProduct,
		AppointmentsByService: byService,
		MonthSales:            monthSales,
		MonthAppointments:     monthAppts,
	}, nil
}

func dayWindow(now time.Time) (time.Time, time.Time) {
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return from, from.AddDate(0, 0, 1)
}

func monthWindow(now time.Time) (time.Time, time.Time) {
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return from, from.AddDate(0, 1, 0)
}
