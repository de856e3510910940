package memory

import (
	"context"
	"sort"

	"penlink/internal/models"
	"penlink/internal/repository"
)

type ContactRepo struct{ s *Store }

func (r *ContactRepo) Create(_ context.Context, m *models.ContactMessage) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	m.ID = r.s.nextID()
	m.SubmissionDate = r.s.now()
	cp := *m
	r.s.messages[m.ID] = &cp
	return nil
}

func (r *ContactRepo) List(_ context.Context) ([]*models.ContactMessage, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]*models.ContactMessage, 0, len(r.s.messages))
	for _, m := range r.s.messages {
		cp := *m
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].SubmissionDate.Equal(out[j].SubmissionDate) {
			return out[i].SubmissionDate.After(out[j].SubmissionDate)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (r *ContactRepo) GetByID(_ context.Context, id int64) (*models.ContactMessage, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	m, ok := r.s.messages[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *m
	return &cp, nil
}

func (r *ContactRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.messages[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.s.messages, id)
	return nil
}
