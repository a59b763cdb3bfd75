package screen

import (
	"context"
	"testing"

	"github.com/fadilmartias/sustainability-judge/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadedFavorites(t *testing.T, confirm bool) (*FavoritesScreen, *fakeAPI, *recordingNotifier) {
	t.Helper()
	api := &fakeAPI{favorites: []dto.FoodJudgment{
		judgment("a", "Apple", 90, dto.RatingGreat),
		judgment("b", "Bread", 55, dto.RatingGood),
	}}
	n := &recordingNotifier{confirm: confirm}
	s := NewFavoritesScreen(api, n)
	require.NoError(t, s.Load(context.Background()))
	return s, api, n
}

func TestFavoritesScreen_Load(t *testing.T) {
	s, api, _ := loadedFavorites(t, true)
	assert.Equal(t, api.favorites, s.Items())
	assert.Equal(t, "2 favorites", s.HeaderText())
}

func TestFavoritesScreen_RemoveAsksFirst(t *testing.T) {
	s, api, n := loadedFavorites(t, true)

	removed, err := s.Remove(context.Background(), "a", "Apple")
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Equal(t, []alert{{"Remove Favorite", "Remove Apple from your favorites?"}}, n.asked)
	assert.Equal(t, alert{"Removed", "Item removed from favorites"}, n.last())
	require.Len(t, s.Items(), 1)
	assert.Equal(t, "b", s.Items()[0].FoodID)
	assert.Contains(t, api.calls, "favorites/remove")
}

func TestFavoritesScreen_RemoveCancelled(t *testing.T) {
	s, api, n := loadedFavorites(t, false)

	removed, err := s.Remove(context.Background(), "a", "Apple")
	require.NoError(t, err)
	assert.False(t, removed)
	assert.Len(t, s.Items(), 2)
	assert.NotContains(t, api.calls, "favorites/remove")
	assert.Empty(t, n.alerts)
}

func TestFavoritesScreen_AddToCart(t *testing.T) {
	s, api, n := loadedFavorites(t, true)
	bread := s.Items()[1]

	require.NoError(t, s.AddToCart(context.Background(), bread))
	assert.Equal(t, alert{"Added to Cart", "Bread has been added to your cart!"}, n.last())
	assert.Len(t, s.Items(), 2)
	assert.Len(t, api.cart, 1)

	api.fail = true
	assert.Error(t, s.AddToCart(context.Background(), bread))
	assert.Equal(t, alert{"Error", "Failed to add to cart: backend down"}, n.last())
}

func TestFavoritesScreen_EmptyState(t *testing.T) {
	s := NewFavoritesScreen(&fakeAPI{}, &recordingNotifier{})
	require.NoError(t, s.Load(context.Background()))
	e, empty := s.EmptyState()
	assert.True(t, empty)
	assert.Equal(t, "No favorites yet", e.Title)
	assert.Equal(t, "0 favorites", s.HeaderText())
}
