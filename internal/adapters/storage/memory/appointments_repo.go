package memory

import (
	"context"
	"sort"
	"strings"

	"petcare-crm/internal/domain/appointments"
)

type appointmentsRepo struct {
	s *Store
}

func (r *appointmentsRepo) Create(ctx context.Context, a appointments.Appointment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if strings.TrimSpace(a.ID) == "" {
		return errIDRequired
	}
	r.s.appointments[a.ID] = a
	return nil
}

func (r *appointmentsRepo) GetByID(ctx context.Context, id string) (appointments.Appointment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	a, ok := r.s.appointments[id]
	if !ok {
		return appointments.Appointment{}, appointments.ErrNotFound
	}
	return a, nil
}

func (r *appointmentsRepo) List(ctx context.Context, search string) ([]appointments.WithNames, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]appointments.WithNames, 0)
	for _, a := range r.s.appointments {
		pet := r.s.pets[a.PetID]
		tutorName := r.s.tutors[pet.TutorID].Name

		if search != "" &&
			!containsFold(pet.Name, search) &&
			!containsFold(tutorName, search) &&
			!containsFold(a.Service, search) {
			continue
		}

		out = append(out, appointments.WithNames{
			Appointment: a,
			PetName:     pet.Name,
			TutorName:   tutorName,
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

func (r *appointmentsRepo) Update(ctx context.Context, a appointments.Appointment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.appointments[a.ID]; !ok {
		return appointments.ErrNotFound
	}
	r.s.appointments[a.ID] = a
	return nil
}

func (r *appointmentsRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.appointments[id]; !ok {
		return appointments.ErrNotFound
	}
	delete(r.s.appointments, id)
	return nil
}
