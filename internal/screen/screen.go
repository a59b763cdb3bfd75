// Package screen holds the state and actions of the four front-end screens
// (chat, cart, favorites, summary) independent of how they are drawn.
package screen

import (
	"context"
	"slices"
	"sync"

	"github.com/fadilmartias/sustainability-judge/internal/dto"
)

// Notifier shows a blocking message to the user.
type Notifier interface {
	Alert(title, message string)
	// Confirm asks a yes/no question; false means cancel.
	Confirm(title, message string) bool
}

// API is the part of the backend the screens use. *client.Client
// implements it.
type API interface {
	Judge(ctx context.Context, query string) (dto.FoodJudgment, error)
	Cart(ctx context.Context) ([]dto.FoodJudgment, error)
	AddToCart(ctx context.Context, item dto.FoodJudgment) (string, error)
	RemoveFromCart(ctx context.Context, foodID string) (string, error)
	Favorites(ctx context.Context) ([]dto.FoodJudgment, error)
	AddToFavorites(ctx context.Context, item dto.FoodJudgment) (string, error)
	RemoveFromFavorites(ctx context.Context, foodID string) (string, error)
	Summary(ctx context.Context) (dto.Summary, error)
}

type EmptyState struct {
	Title    string
	Subtitle string
}

// collection is the state shared by the cart and favorites screens.
type collection struct {
	mu         sync.RWMutex
	items      []dto.FoodJudgment
	expanded   map[string]bool
	refreshing bool
}

func newCollection() collection {
	return collection{items: []dto.FoodJudgment{}, expanded: map[string]bool{}}
}

func (c *collection) Items() []dto.FoodJudgment {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.items)
}

func (c *collection) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

func (c *collection) Find(foodID string) (dto.FoodJudgment, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	i := slices.IndexFunc(c.items, func(j dto.FoodJudgment) bool { return j.FoodID == foodID })
	if i < 0 {
		return dto.FoodJudgment{}, false
	}
	return c.items[i], true
}

func (c *collection) IsExpanded(foodID string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.expanded[foodID]
}

func (c *collection) ToggleExpanded(foodID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.expanded[foodID] = !c.expanded[foodID]
}

// ExpandAll marks every loaded item as expanded.
func (c *collection) ExpandAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, it := range c.items {
		c.expanded[it.FoodID] = true
	}
}

func (c *collection) Refreshing() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.refreshing
}

func (c *collection) setRefreshing(v bool) {
	c.mu.Lock()
	c.refreshing = v
	c.mu.Unlock()
}

func (c *collection) replace(items []dto.FoodJudgment) {
	if items == nil {
		items = []dto.FoodJudgment{}
	}
	c.mu.Lock()
	c.items = items
	c.mu.Unlock()
}

func (c *collection) drop(foodID string) {
	c.mu.Lock()
	c.items = slices.DeleteFunc(c.items, func(j dto.FoodJudgment) bool { return j.FoodID == foodID })
	delete(c.expanded, foodID)
	c.mu.Unlock()
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
