package screen

import (
	"context"
	"fmt"

	"github.com/fadilmartias/sustainability-judge/internal/dto"
)

type CartScreen struct {
	collection
	api    API
	notify Notifier
}

func NewCartScreen(api API, notify Notifier) *CartScreen {
	return &CartScreen{collection: newCollection(), api: api, notify: notify}
}

// Load replaces the local items with the backend's cart. On failure the
// previous items are kept.
func (s *CartScreen) Load(ctx context.Context) error {
	items, err := s.api.Cart(ctx)
	if err != nil {
		s.notify.Alert("Error", fmt.Sprintf("Failed to load cart: %v", err))
		return err
	}
	s.replace(items)
	return nil
}

func (s *CartScreen) Refresh(ctx context.Context) error {
	s.setRefreshing(true)
	defer s.setRefreshing(false)
	return s.Load(ctx)
}

func (s *CartScreen) Remove(ctx context.Context, foodID string) error {
	if _, err := s.api.RemoveFromCart(ctx, foodID); err != nil {
		s.notify.Alert("Error", fmt.Sprintf("Failed to remove item: %v", err))
		return err
	}
	s.drop(foodID)
	s.notify.Alert("Removed", "Item removed from cart")
	return nil
}

func (s *CartScreen) AddToFavorites(ctx context.Context, item dto.FoodJudgment) error {
	if _, err := s.api.AddToFavorites(ctx, item); err != nil {
		s.notify.Alert("Error", fmt.Sprintf("Failed to add to favorites: %v", err))
		return err
	}
	s.notify.Alert("Added to Favorites", fmt.Sprintf("%s has been added to your favorites!", item.FoodName))
	return nil
}

func (s *CartScreen) EmptyState() (EmptyState, bool) {
	if s.Len() > 0 {
		return EmptyState{}, false
	}
	return EmptyState{
		Title:    "Your cart is empty",
		Subtitle: "Use the chat screen to evaluate foods and add them to your cart!",
	}, true
}

func (s *CartScreen) HeaderText() string {
	n := s.Len()
	return fmt.Sprintf("%d %s in cart", n, plural(n, "item"))
}
