package memory

import (
	"context"
	"sort"
	"strings"

	"penlink/internal/models"
	"penlink/internal/repository"
)

type PostRepo struct{ s *Store }

// view: saklanan kaydın yazar/kategori/beğeni alanları çözülmüş kopyası.
func (s *Store) postView(p *models.Post) *models.Post {
	cp := *p
	cp.Tags = append([]string{}, p.Tags...)
	if p.Image != nil {
		img := *p.Image
		cp.Image = &img
	}
	cp.Author = s.userRef(p.AuthorID)
	if c, ok := s.categories[p.CategoryID]; ok {
		cp.Category = &models.CategoryRef{ID: c.ID, Name: c.Name, Slug: c.Slug}
	}
	cp.Likes = copyIDs(s.postLikes[p.ID])
	cp.LikesCount = len(cp.Likes)
	return &cp
}

func (s *Store) commentCount(postID int64) int {
	n := 0
	for _, c := range s.comments {
		if c.PostID == postID {
			n++
		}
	}
	return n
}

func (r *PostRepo) List(_ context.Context, q models.PostListQuery) ([]*models.Post, int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	all := make([]*models.Post, 0, len(r.s.posts))
	for _, id := range sortedIDs(r.s.posts) {
		p := r.s.posts[id]
		if q.CategoryID != nil && p.CategoryID != *q.CategoryID {
			continue
		}
		all = append(all, r.s.postView(p))
	}

	less := r.lessFunc(q.SortBy)
	sort.SliceStable(all, func(i, j int) bool {
		a, b := all[i], all[j]
		if q.Desc {
			a, b = b, a
		}
		if c := less(a, b); c != 0 {
			return c < 0
		}
		return a.ID < b.ID
	})

	total := len(all)
	start := q.Offset()
	if start > total {
		start = total
	}
	end := start + q.Limit
	if end > total {
		end = total
	}
	return all[start:end], total, nil
}

func (r *PostRepo) lessFunc(sortBy string) func(a, b *models.Post) int {
	switch sortBy {
	case "title":
		return func(a, b *models.Post) int { return strings.Compare(a.Title, b.Title) }
	case "updatedAt":
		return func(a, b *models.Post) int { return a.UpdatedAt.Compare(b.UpdatedAt) }
	case "likes":
		return func(a, b *models.Post) int { return a.LikesCount - b.LikesCount }
	case "comments":
		return func(a, b *models.Post) int { return r.s.commentCount(a.ID) - r.s.commentCount(b.ID) }
	default:
		return func(a, b *models.Post) int { return a.CreatedAt.Compare(b.CreatedAt) }
	}
}

func (r *PostRepo) GetByID(_ context.Context, id int64) (*models.Post, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	p, ok := r.s.posts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return r.s.postView(p), nil
}

func (r *PostRepo) Exists(_ context.Context, id int64) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	_, ok := r.s.posts[id]
	return ok, nil
}

func (r *PostRepo) Create(_ context.Context, p *models.Post) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p.ID = r.s.nextID()
	p.CreatedAt = r.s.now()
	p.UpdatedAt = p.CreatedAt
	r.s.posts[p.ID] = r.stored(p)
	return nil
}

func (r *PostRepo) Update(_ context.Context, p *models.Post) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	cur, ok := r.s.posts[p.ID]
	if !ok {
		return repository.ErrNotFound
	}
	p.CreatedAt = cur.CreatedAt
	p.AuthorID = cur.AuthorID
	p.UpdatedAt = r.s.now()
	r.s.posts[p.ID] = r.stored(p)
	return nil
}

// stored: yalnızca kalıcı alanları tutan kopya.
func (r *PostRepo) stored(p *models.Post) *models.Post {
	return &models.Post{
		ID:         p.ID,
		Title:      p.Title,
		Content:    p.Content,
		Excerpt:    p.Excerpt,
		AuthorID:   p.AuthorID,
		CategoryID: p.CategoryID,
		Tags:       append([]string{}, p.Tags...),
		Image:      p.Image,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

func (r *PostRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.posts[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.s.posts, id)
	delete(r.s.postLikes, id)
	for cid, c := range r.s.comments {
		if c.PostID == id {
			delete(r.s.comments, cid)
			delete(r.s.commentLikes, cid)
		}
	}
	return nil
}

func (r *PostRepo) ToggleLike(_ context.Context, postID, userID int64) (bool, int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.posts[postID]; !ok {
		return false, 0, repository.ErrNotFound
	}
	likes, liked := toggle(r.s.postLikes[postID], userID)
	r.s.postLikes[postID] = likes
	return liked, len(likes), nil
}
