package memory

import (
	"errors"
	"strings"
	"sync"

	"petcare-crm/internal/domain/appointments"
	"petcare-crm/internal/domain/pets"
	"petcare-crm/internal/domain/products"
	"petcare-crm/internal/domain/sales"
	"petcare-crm/internal/domain/tutors"
)

var errIDRequired = errors.New("id required")

// Store mantiene todas las entidades en maps bajo un solo mutex. Las
// búsquedas con join (pet+tutor, venta+producto) se resuelven a mano, por
// eso los maps viven juntos en lugar de un repo aislado por entidad.
// Se usa en tests y cuando no hay DB_PATH configurado.
type Store struct {
	mu sync.RWMutex

	tutors       map[string]tutors.Tutor
	pets         map[string]pets.Pet
	appointments map[string]appointments.Appointment
	products     map[string]products.Product
	sales        map[string]sales.Sale
}

func NewStore() *Store {
	return &Store{
		tutors:       make(map[string]tutors.Tutor),
		pets:         make(map[string]pets.Pet),
		appointments: make(map[string]appointments.Appointment),
		products:     make(map[string]products.Product),
		sales:        make(map[string]sales.Sale),
	}
}

func (s *Store) Tutors() tutors.Repository             { return &tutorsRepo{s} }
func (s *Store) Pets() pets.Repository                 { return &petsRepo{s} }
func (s *Store) Appointments() appointments.Repository { return &appointmentsRepo{s} }
func (s *Store) Products() products.Repository         { return &productsRepo{s} }
func (s *Store) Sales() sales.Repository               { return &salesRepo{s} }

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
