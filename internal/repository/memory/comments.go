package memory

import (
	"context"
	"sort"

	"penlink/internal/models"
	"penlink/internal/repository"
)

type CommentRepo struct{ s *Store }

func (s *Store) commentView(c *models.Comment) *models.Comment {
	cp := *c
	cp.Author = s.userRef(c.AuthorID)
	cp.Likes = copyIDs(s.commentLikes[c.ID])
	return &cp
}

func (r *CommentRepo) ListByPost(_ context.Context, postID int64) ([]*models.Comment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := []*models.Comment{}
	for _, c := range r.s.comments {
		if c.PostID == postID {
			out = append(out, r.s.commentView(c))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].SubmissionDate.Equal(out[j].SubmissionDate) {
			return out[i].SubmissionDate.After(out[j].SubmissionDate)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (r *CommentRepo) GetByID(_ context.Context, id int64) (*models.Comment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	c, ok := r.s.comments[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return r.s.commentView(c), nil
}

func (r *CommentRepo) Create(_ context.Context, c *models.Comment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.posts[c.PostID]; !ok {
		return repository.ErrNotFound
	}
	c.ID = r.s.nextID()
	c.SubmissionDate = r.s.now()
	r.s.comments[c.ID] = &models.Comment{
		ID:             c.ID,
		PostID:         c.PostID,
		AuthorID:       c.AuthorID,
		AuthorName:     c.AuthorName,
		Text:           c.Text,
		SubmissionDate: c.SubmissionDate,
	}
	return nil
}

func (r *CommentRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.comments[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.s.comments, id)
	delete(r.s.commentLikes, id)
	return nil
}

func (r *CommentRepo) ToggleLike(_ context.Context, commentID, userID int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.comments[commentID]; !ok {
		return false, repository.ErrNotFound
	}
	likes, liked := toggle(r.s.commentLikes[commentID], userID)
	r.s.commentLikes[commentID] = likes
	return liked, nil
}

func (r *CommentRepo) CountByPosts(_ context.Context, postIDs []int64) (map[int64]int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	counts := make(map[int64]int, len(postIDs))
	for _, id := range postIDs {
		if n := r.s.commentCount(id); n > 0 {
			counts[id] = n
		}
	}
	return counts, nil
}
