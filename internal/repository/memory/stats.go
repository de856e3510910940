package memory

import (
	"context"
	"sort"

	"penlink/internal/models"
)

type StatsRepo struct{ s *Store }

func (r *StatsRepo) PostsPerCategory(_ context.Context) ([]models.CategoryPostCount, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	counts := map[int64]int{}
	for _, p := range r.s.posts {
		counts[p.CategoryID]++
	}

	out := []models.CategoryPostCount{}
	for id, n := range counts {
		c, ok := r.s.categories[id]
		if !ok {
			continue
		}
		out = append(out, models.CategoryPostCount{CategoryID: id, CategoryName: c.Name, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].CategoryName < out[j].CategoryName
	})
	return out, nil
}

func (r *StatsRepo) Dashboard(_ context.Context) (*models.DashboardStats, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return &models.DashboardStats{
		TotalPosts:           len(r.s.posts),
		TotalCategories:      len(r.s.categories),
		TotalUsers:           len(r.s.users),
		TotalComments:        len(r.s.comments),
		TotalContactMessages: len(r.s.messages),
	}, nil
}
