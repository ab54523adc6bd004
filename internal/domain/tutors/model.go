package tutors

import "time"

// Tutor representa al responsable de una o más mascotas (el cliente del negocio).
type Tutor struct {
	ID string

	Name    string
	Phone   string
	Address string // opcional

	CreatedAt time.Time
	UpdatedAt time.Time
}
