package sales

import "time"

// Sale representa una venta registrada. TutorID vacío = venta anónima.
type Sale struct {
	ID string

	Date     time.Time
	Quantity int
	Total    float64

	ProductID string
	TutorID   string
}

// WithDetails es la fila de listado: venta + nombre de producto y tutor (join).
type WithDetails struct {
	Sale
	ProductName string
	TutorName   string // vacío si la venta es anónima
}
