package memory

import (
	"context"
	"sort"

	"petcare-crm/internal/domain/products"
)

type productsRepo struct {
	s *Store
}

// UpsertByName busca por nombre exacto bajo el lock de escritura; la fila
// existente gana y el precio enviado se ignora (solo aplica al alta).
func (r *productsRepo) UpsertByName(ctx context.Context, p products.Product) (products.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.products {
		if existing.Name == p.Name {
			return existing, nil
		}
	}

	if p.ID == "" {
		return products.Product{}, errIDRequired
	}
	r.s.products[p.ID] = p
	return p, nil
}

func (r *productsRepo) GetByID(ctx context.Context, id string) (products.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	p, ok := r.s.products[id]
	if !ok {
		return products.Product{}, products.ErrNotFound
	}
	return p, nil
}

func (r *productsRepo) List(ctx context.Context) ([]products.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]products.Product, 0, len(r.s.products))
	for _, p := range r.s.products {
		out = append(out, p)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out, nil
}
