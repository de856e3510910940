package memory

import (
	"context"
	"fmt"
	"sort"

	"penlink/internal/models"
	"penlink/internal/repository"
)

type CategoryRepo struct{ s *Store }

func (r *CategoryRepo) List(_ context.Context) ([]*models.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]*models.Category, 0, len(r.s.categories))
	for _, c := range r.s.categories {
		cp := *c
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *CategoryRepo) GetByID(_ context.Context, id int64) (*models.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	c, ok := r.s.categories[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *CategoryRepo) GetBySlug(_ context.Context, slug string) (*models.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, c := range r.s.categories {
		if c.Slug == slug {
			cp := *c
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *CategoryRepo) Exists(_ context.Context, id int64) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	_, ok := r.s.categories[id]
	return ok, nil
}

// checkUnique: isim ve slug benzersiz indekslerinin karşılığı.
func (r *CategoryRepo) checkUnique(c *models.Category) error {
	for _, other := range r.s.categories {
		if other.ID == c.ID {
			continue
		}
		if other.Name == c.Name {
			return fmt.Errorf("%w: categories_name_key", repository.ErrDuplicate)
		}
		if other.Slug == c.Slug {
			return fmt.Errorf("%w: categories_slug_key", repository.ErrDuplicate)
		}
	}
	return nil
}

func (r *CategoryRepo) Create(_ context.Context, c *models.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.checkUnique(c); err != nil {
		return err
	}
	c.ID = r.s.nextID()
	c.CreatedAt = r.s.now()
	c.UpdatedAt = c.CreatedAt
	cp := *c
	r.s.categories[c.ID] = &cp
	return nil
}

func (r *CategoryRepo) Update(_ context.Context, c *models.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	cur, ok := r.s.categories[c.ID]
	if !ok {
		return repository.ErrNotFound
	}
	if err := r.checkUnique(c); err != nil {
		return err
	}
	c.CreatedAt = cur.CreatedAt
	c.UpdatedAt = r.s.now()
	cp := *c
	r.s.categories[c.ID] = &cp
	return nil
}

func (r *CategoryRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.categories[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.s.categories, id)
	return nil
}

func (r *CategoryRepo) CountPosts(_ context.Context, id int64) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	n := 0
	for _, p := range r.s.posts {
		if p.CategoryID == id {
			n++
		}
	}
	return n, nil
}
