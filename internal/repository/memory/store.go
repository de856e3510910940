// Package memory, PostgreSQL deposunun süreç içi karşılığıdır.
// STORAGE=memory ile yerel geliştirmede ve testlerde kullanılır; aynı
// benzersizlik kısıtlarını (kategori adı/slug, kullanıcı adı/e-posta) uygular.
package memory

import (
	"sort"
	"sync"
	"time"

	"penlink/internal/models"
)

type Store struct {
	mu sync.RWMutex

	seq        int64
	users      map[int64]*models.User
	categories map[int64]*models.Category
	posts      map[int64]*models.Post
	comments   map[int64]*models.Comment
	messages   map[int64]*models.ContactMessage

	postLikes    map[int64][]int64
	commentLikes map[int64][]int64

	now func() time.Time
}

func NewStore() *Store {
	return &Store{
		users:        map[int64]*models.User{},
		categories:   map[int64]*models.Category{},
		posts:        map[int64]*models.Post{},
		comments:     map[int64]*models.Comment{},
		messages:     map[int64]*models.ContactMessage{},
		postLikes:    map[int64][]int64{},
		commentLikes: map[int64][]int64{},
		now:          time.Now,
	}
}

func (s *Store) Users() *UserRepo          { return &UserRepo{s} }
func (s *Store) Categories() *CategoryRepo { return &CategoryRepo{s} }
func (s *Store) Posts() *PostRepo          { return &PostRepo{s} }
func (s *Store) Comments() *CommentRepo    { return &CommentRepo{s} }
func (s *Store) Contacts() *ContactRepo    { return &ContactRepo{s} }
func (s *Store) Stats() *StatsRepo         { return &StatsRepo{s} }

// Reset tüm verileri siler.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq = 0
	s.users = map[int64]*models.User{}
	s.categories = map[int64]*models.Category{}
	s.posts = map[int64]*models.Post{}
	s.comments = map[int64]*models.Comment{}
	s.messages = map[int64]*models.ContactMessage{}
	s.postLikes = map[int64][]int64{}
	s.commentLikes = map[int64][]int64{}
}

func (s *Store) nextID() int64 {
	s.seq++
	return s.seq
}

// toggle, id listede varsa çıkarır, yoksa ekler. Eklendiyse true döner.
func toggle(list []int64, id int64) ([]int64, bool) {
	for i, v := range list {
		if v == id {
			return append(list[:i:i], list[i+1:]...), false
		}
	}
	return append(list, id), true
}

func copyIDs(in []int64) []int64 {
	out := make([]int64, len(in))
	copy(out, in)
	return out
}

func sortedIDs[T any](m map[int64]T) []int64 {
	ids := make([]int64, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
