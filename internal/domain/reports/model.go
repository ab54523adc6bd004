package reports

import (
	"petcare-crm/internal/domain/appointments"
	"petcare-crm/internal/domain/sales"
)

// ProductSales es una línea del reporte de ventas por producto. La agrupación
// es por nombre, no por id: dos productos con el mismo nombre se funden en
// una sola línea.
type ProductSales struct {
	ProductName string
	Quantity    int
	Total       float64
}

// ServiceCount es una línea del reporte de citas por servicio.
type ServiceCount struct {
	Service string
	Count   int
}

// Dashboard agrupa los datos de la página principal.
type Dashboard struct {
	TodayAppointments []appointments.WithNames
	RecentSales       []sales.WithDetails
}

// Summary agrupa los agregados de la página de reportes.
type Summary struct {
	TotalSales            float64
	SalesByProduct        []ProductSales
	AppointmentsByService []ServiceCount
	MonthSales            float64
	MonthAppointments     int
}
