package memory

import (
	"context"
	"sort"
	"strings"

	"petcare-crm/internal/domain/tutors"
)

type tutorsRepo struct {
	s *Store
}

func (r *tutorsRepo) Create(ctx context.Context, t tutors.Tutor) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if strings.TrimSpace(t.ID) == "" {
		return errIDRequired
	}
	r.s.tutors[t.ID] = t
	return nil
}

func (r *tutorsRepo) GetByID(ctx context.Context, id string) (tutors.Tutor, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	t, ok := r.s.tutors[id]
	if !ok {
		return tutors.Tutor{}, tutors.ErrNotFound
	}
	return t, nil
}

func (r *tutorsRepo) List(ctx context.Context, search string) ([]tutors.Tutor, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]tutors.Tutor, 0)
	for _, t := range r.s.tutors {
		if search != "" && !containsFold(t.Name, search) {
			continue
		}
		out = append(out, t)
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})

	return out, nil
}

func (r *tutorsRepo) Update(ctx context.Context, t tutors.Tutor) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.tutors[t.ID]; !ok {
		return tutors.ErrNotFound
	}
	r.s.tutors[t.ID] = t
	return nil
}

func (r *tutorsRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.tutors[id]; !ok {
		return tutors.ErrNotFound
	}

	// política elegida: rechazar mientras haya dependientes
	for _, p := range r.s.pets {
		if p.TutorID == id {
			return tutors.ErrInUse
		}
	}
	for _, sale := range r.s.sales {
		if sale.TutorID == id {
			return tutors.ErrInUse
		}
	}

	delete(r.s.tutors, id)
	return nil
}
