package repository

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"math"
	"os"
	"slices"
	"sync"

	"github.com/fadilmartias/sustainability-judge/internal/dto"
)

var (
	_ ListRepository    = (*FileStore)(nil)
	_ HistoryRepository = (*FileStore)(nil)
)

type historyEntry struct {
	Judgment  dto.FoodJudgment `json:"judgment"`
	Embedding []float32        `json:"embedding,omitempty"`
}

type userData struct {
	Cart      []dto.FoodJudgment `json:"cart"`
	Favorites []dto.FoodJudgment `json:"favorites"`
	History   []historyEntry     `json:"history"`
}

// FileStore keeps every user's lists and history in memory and mirrors them
// to a JSON file after each change. It implements both ListRepository and
// HistoryRepository and is used when no database is configured.
type FileStore struct {
	mu    sync.RWMutex
	path  string
	users map[string]*userData
}

// NewFileStore loads path if it exists. An empty path keeps everything in
// memory only.
func NewFileStore(path string) *FileStore {
	s := &FileStore{path: path, users: make(map[string]*userData)}
	s.load()
	return s
}

func (s *FileStore) load() {
	if s.path == "" {
		return
	}
	b, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return
	}
	if err == nil {
		err = json.Unmarshal(b, &s.users)
	}
	if err != nil {
		log.Printf("Could not load data from %s: %v", s.path, err)
		s.users = make(map[string]*userData)
	}
}

// save must be called with mu held.
func (s *FileStore) save() {
	if s.path == "" {
		return
	}
	b, err := json.MarshalIndent(s.users, "", "  ")
	if err == nil {
		err = os.WriteFile(s.path, b, 0o644)
	}
	if err != nil {
		log.Printf("Could not save data to %s: %v", s.path, err)
	}
}

// user must be called with mu held for writing.
func (s *FileStore) user(userID string) *userData {
	u, ok := s.users[userID]
	if !ok {
		u = &userData{Cart: []dto.FoodJudgment{}, Favorites: []dto.FoodJudgment{}, History: []historyEntry{}}
		s.users[userID] = u
	}
	return u
}

func (u *userData) list(name string) *[]dto.FoodJudgment {
	if name == ListFavorites {
		return &u.Favorites
	}
	return &u.Cart
}

func (s *FileStore) Upsert(_ context.Context, userID, list string, item dto.FoodJudgment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := s.user(userID).list(list)
	if i := indexOf(*items, item.FoodID); i >= 0 {
		(*items)[i] = item
	} else {
		*items = append(*items, item)
	}
	s.save()
	return nil
}

func (s *FileStore) AddIfAbsent(_ context.Context, userID, list string, item dto.FoodJudgment) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := s.user(userID).list(list)
	if indexOf(*items, item.FoodID) >= 0 {
		return false, nil
	}
	*items = append(*items, item)
	s.save()
	return true, nil
}

func (s *FileStore) Remove(_ context.Context, userID, list, foodID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := s.user(userID).list(list)
	*items = slices.DeleteFunc(*items, func(j dto.FoodJudgment) bool { return j.FoodID == foodID })
	s.save()
	return nil
}

func (s *FileStore) List(_ context.Context, userID, list string) ([]dto.FoodJudgment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[userID]
	if !ok {
		return []dto.FoodJudgment{}, nil
	}
	return append([]dto.FoodJudgment{}, *u.list(list)...), nil
}

func (s *FileStore) Clear(_ context.Context, userID, list string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	*s.user(userID).list(list) = []dto.FoodJudgment{}
	s.save()
	return nil
}

func (s *FileStore) Append(_ context.Context, userID string, item dto.FoodJudgment, embedding []float32) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := s.user(userID)
	u.History = append(u.History, historyEntry{Judgment: item, Embedding: embedding})
	if over := len(u.History) - HistoryLimit; over > 0 {
		u.History = slices.Delete(u.History, 0, over)
	}
	s.save()
	return nil
}

func (s *FileStore) Page(_ context.Context, userID string, page, pageSize int) ([]dto.FoodJudgment, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[userID]
	if !ok {
		return []dto.FoodJudgment{}, 0, nil
	}
	total := len(u.History)
	start := (page - 1) * pageSize
	if page < 1 || pageSize < 1 || start < 0 || start >= total {
		return []dto.FoodJudgment{}, int64(total), nil
	}
	items := make([]dto.FoodJudgment, 0, pageSize)
	// newest first
	for i := total - 1 - start; i >= 0 && len(items) < pageSize; i-- {
		items = append(items, u.History[i].Judgment)
	}
	return items, int64(total), nil
}

func (s *FileStore) Count(_ context.Context, userID string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if u, ok := s.users[userID]; ok {
		return int64(len(u.History)), nil
	}
	return 0, nil
}

func (s *FileStore) Nearest(_ context.Context, embedding []float32) (*dto.FoodJudgment, float64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var (
		best     *dto.FoodJudgment
		bestDist = math.Inf(1)
	)
	for _, u := range s.users {
		for i := range u.History {
			e := &u.History[i]
			if len(e.Embedding) != len(embedding) || len(embedding) == 0 {
				continue
			}
			if d := l2Distance(e.Embedding, embedding); d < bestDist {
				j := e.Judgment
				best, bestDist = &j, d
			}
		}
	}
	if best == nil {
		return nil, 0, nil
	}
	return best, bestDist, nil
}

func l2Distance(a, b []float32) float64 {
	var sum float64
	for i := range a {
		d := float64(a[i]) - float64(b[i])
		sum += d * d
	}
	return math.Sqrt(sum)
}

func indexOf(items []dto.FoodJudgment, foodID string) int {
	return slices.IndexFunc(items, func(j dto.FoodJudgment) bool { return j.FoodID == foodID })
}
