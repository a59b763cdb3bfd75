package screen

import (
	"context"
	"testing"

	"github.com/fadilmartias/sustainability-judge/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartScreen_LoadPopulatesExactly(t *testing.T) {
	api := &fakeAPI{cart: []dto.FoodJudgment{
		judgment("a", "Apple", 90, dto.RatingGreat),
		judgment("b", "Beef", 5, dto.RatingPoor),
	}}
	s := NewCartScreen(api, &recordingNotifier{})

	require.NoError(t, s.Load(context.Background()))
	assert.Equal(t, api.cart, s.Items())
	assert.Equal(t, "2 items in cart", s.HeaderText())
	_, empty := s.EmptyState()
	assert.False(t, empty)
}

func TestCartScreen_LoadFailureKeepsState(t *testing.T) {
	ctx := context.Background()
	api := &fakeAPI{cart: []dto.FoodJudgment{judgment("a", "Apple", 90, dto.RatingGreat)}}
	n := &recordingNotifier{}
	s := NewCartScreen(api, n)
	require.NoError(t, s.Load(ctx))

	api.fail = true
	assert.Error(t, s.Refresh(ctx))
	assert.Len(t, s.Items(), 1)
	assert.False(t, s.Refreshing())
	assert.Equal(t, alert{"Error", "Failed to load cart: backend down"}, n.last())
}

func TestCartScreen_RemoveDropsOnlyMatchingItem(t *testing.T) {
	ctx := context.Background()
	api := &fakeAPI{cart: []dto.FoodJudgment{
		judgment("a", "Apple", 90, dto.RatingGreat),
		judgment("b", "Beef", 5, dto.RatingPoor),
		judgment("c", "Corn", 60, dto.RatingGood),
	}}
	n := &recordingNotifier{}
	s := NewCartScreen(api, n)
	require.NoError(t, s.Load(ctx))
	s.ToggleExpanded("b")

	require.NoError(t, s.Remove(ctx, "b"))
	items := s.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "a", items[0].FoodID)
	assert.Equal(t, "c", items[1].FoodID)
	assert.False(t, s.IsExpanded("b"))
	assert.Equal(t, alert{"Removed", "Item removed from cart"}, n.last())
}

func TestCartScreen_RemoveFailureLeavesItems(t *testing.T) {
	ctx := context.Background()
	api := &fakeAPI{cart: []dto.FoodJudgment{judgment("a", "Apple", 90, dto.RatingGreat)}}
	n := &recordingNotifier{}
	s := NewCartScreen(api, n)
	require.NoError(t, s.Load(ctx))

	api.fail = true
	assert.ErrorIs(t, s.Remove(ctx, "a"), errBackend)
	assert.Len(t, s.Items(), 1)
	assert.Equal(t, alert{"Error", "Failed to remove item: backend down"}, n.last())
}

func TestCartScreen_AddToFavoritesConfirmsWithoutMutating(t *testing.T) {
	ctx := context.Background()
	apple := judgment("a", "Apple", 90, dto.RatingGreat)
	api := &fakeAPI{cart: []dto.FoodJudgment{apple}}
	n := &recordingNotifier{}
	s := NewCartScreen(api, n)
	require.NoError(t, s.Load(ctx))

	require.NoError(t, s.AddToFavorites(ctx, apple))
	assert.Equal(t, alert{"Added to Favorites", "Apple has been added to your favorites!"}, n.last())
	assert.Equal(t, []dto.FoodJudgment{apple}, s.Items())
	assert.Len(t, api.favorites, 1)
}

func TestCartScreen_EmptyState(t *testing.T) {
	s := NewCartScreen(&fakeAPI{}, &recordingNotifier{})
	require.NoError(t, s.Load(context.Background()))

	e, empty := s.EmptyState()
	assert.True(t, empty)
	assert.Equal(t, "Your cart is empty", e.Title)
	assert.Equal(t, "0 items in cart", s.HeaderText())
	assert.Contains(t, s.Render(), "Use the chat screen")
}

func TestCartScreen_ToggleExpanded(t *testing.T) {
	s := NewCartScreen(&fakeAPI{}, &recordingNotifier{})
	s.ToggleExpanded("a")
	assert.True(t, s.IsExpanded("a"))
	s.ToggleExpanded("a")
	assert.False(t, s.IsExpanded("a"))
}
