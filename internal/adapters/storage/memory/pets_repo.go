package memory

import (
	"context"
	"sort"
	"strings"

	"petcare-crm/internal/domain/pets"
)

type petsRepo struct {
	s *Store
}

func (r *petsRepo) Create(ctx context.Context, p pets.Pet) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if strings.TrimSpace(p.ID) == "" {
		return errIDRequired
	}
	r.s.pets[p.ID] = p
	return nil
}

func (r *petsRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	p, ok := r.s.pets[id]
	if !ok {
		return pets.Pet{}, pets.ErrNotFound
	}
	return p, nil
}

func (r *petsRepo) List(ctx context.Context, search string) ([]pets.WithTutor, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]pets.WithTutor, 0)
	for _, p := range r.s.pets {
		tutorName := r.s.tutors[p.TutorID].Name
		if search != "" && !containsFold(p.Name, search) && !containsFold(tutorName, search) {
			continue
		}
		out = append(out, pets.WithTutor{Pet: p, TutorName: tutorName})
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})

	return out, nil
}

func (r *petsRepo) Update(ctx context.Context, p pets.Pet) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.pets[p.ID]; !ok {
		return pets.ErrNotFound
	}
	r.s.pets[p.ID] = p
	return nil
}

func (r *petsRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.pets[id]; !ok {
		return pets.ErrNotFound
	}

	for _, a := range r.s.appointments {
		if a.PetID == id {
			return pets.ErrInUse
		}
	}

	delete(r.s.pets, id)
	return nil
}
