package pets

import "time"

// Pet representa una mascota registrada, siempre asociada a un tutor.
type Pet struct {
	ID string

	Name    string
	Breed   string // opcional
	Age     *int   // opcional
	TutorID string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// WithTutor es la fila de listado: mascota + nombre del tutor (join).
type WithTutor struct {
	Pet
	TutorName string
}
