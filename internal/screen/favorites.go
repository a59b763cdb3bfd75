package screen

import (
	"context"
	"fmt"

	"github.com/fadilmartias/sustainability-judge/internal/dto"
)

type FavoritesScreen struct {
	collection
	api    API
	notify Notifier
}

func NewFavoritesScreen(api API, notify Notifier) *FavoritesScreen {
	return &FavoritesScreen{collection: newCollection(), api: api, notify: notify}
}

func (s *FavoritesScreen) Load(ctx context.Context) error {
	items, err := s.api.Favorites(ctx)
	if err != nil {
		s.notify.Alert("Error", fmt.Sprintf("Failed to load favorites: %v", err))
		return err
	}
	s.replace(items)
	return nil
}

func (s *FavoritesScreen) Refresh(ctx context.Context) error {
	s.setRefreshing(true)
	defer s.setRefreshing(false)
	return s.Load(ctx)
}

// Remove asks for confirmation first. It reports whether the item was
// removed; a cancelled confirmation is not an error.
func (s *FavoritesScreen) Remove(ctx context.Context, foodID, foodName string) (bool, error) {
	if !s.notify.Confirm("Remove Favorite", fmt.Sprintf("Remove %s from your favorites?", foodName)) {
		return false, nil
	}
	if _, err := s.api.RemoveFromFavorites(ctx, foodID); err != nil {
		s.notify.Alert("Error", fmt.Sprintf("Failed to remove item: %v", err))
		return false, err
	}
	s.drop(foodID)
	s.notify.Alert("Removed", "Item removed from favorites")
	return true, nil
}

func (s *FavoritesScreen) AddToCart(ctx context.Context, item dto.FoodJudgment) error {
	if _, err := s.api.AddToCart(ctx, item); err != nil {
		s.notify.Alert("Error", fmt.Sprintf("Failed to add to cart: %v", err))
		return err
	}
	s.notify.Alert("Added to Cart", fmt.Sprintf("%s has been added to your cart!", item.FoodName))
	return nil
}

func (s *FavoritesScreen) EmptyState() (EmptyState, bool) {
	if s.Len() > 0 {
		return EmptyState{}, false
	}
	return EmptyState{
		Title:    "No favorites yet",
		Subtitle: "Save items from your cart to find them here!",
	}, true
}

func (s *FavoritesScreen) HeaderText() string {
	n := s.Len()
	return fmt.Sprintf("%d %s", n, plural(n, "favorite"))
}
