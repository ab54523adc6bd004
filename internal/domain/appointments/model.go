package appointments

import "time"

// Appointment representa una cita de servicio (baño, peluquería, consulta, etc.)
// para una mascota concreta.
type Appointment struct {
	ID string

	DateTime time.Time
	Service  string
	Status   Status
	PetID    string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// WithNames es la fila de listado: cita + nombres de mascota y tutor (join).
type WithNames struct {
	Appointment
	PetName   string
	TutorName string
}
