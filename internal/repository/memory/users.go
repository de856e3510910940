package memory

import (
	"context"
	"fmt"

	"penlink/internal/models"
	"penlink/internal/repository"
)

type UserRepo struct{ s *Store }

func (r *UserRepo) CreateUser(_ context.Context, user *models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, u := range r.s.users {
		if u.Username == user.Username {
			return fmt.Errorf("%w: users_username_key", repository.ErrDuplicate)
		}
		if u.Email == user.Email {
			return fmt.Errorf("%w: users_email_key", repository.ErrDuplicate)
		}
	}

	user.ID = r.s.nextID()
	user.CreatedAt = r.s.now()
	cp := *user
	r.s.users[user.ID] = &cp
	return nil
}

func (r *UserRepo) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, u := range r.s.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *UserRepo) GetUserByID(_ context.Context, id int64) (*models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	u, ok := r.s.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (s *Store) userRef(id *int64) *models.UserRef {
	if id == nil {
		return nil
	}
	u, ok := s.users[*id]
	if !ok {
		return nil
	}
	return &models.UserRef{ID: u.ID, Username: u.Username, Email: u.Email}
}
