package repository

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/fadilmartias/sustainability-judge/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func judgment(id, name string, score float64) dto.FoodJudgment {
	return dto.FoodJudgment{FoodID: id, FoodName: name, OverallScore: score, OverallRating: dto.RatingForScore(score)}
}

func foodIDs(items []dto.FoodJudgment) []string {
	ids := make([]string, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.FoodID)
	}
	return ids
}

func TestFileStore_UpsertKeepsPosition(t *testing.T) {
	ctx := context.Background()
	s := NewFileStore("")

	require.NoError(t, s.Upsert(ctx, "u1", ListCart, judgment("a", "Apple", 90)))
	require.NoError(t, s.Upsert(ctx, "u1", ListCart, judgment("b", "Beef", 5)))
	require.NoError(t, s.Upsert(ctx, "u1", ListCart, judgment("a", "Apple (organic)", 95)))

	items, err := s.List(ctx, "u1", ListCart)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, foodIDs(items))
	assert.Equal(t, "Apple (organic)", items[0].FoodName)
}

func TestFileStore_AddIfAbsent(t *testing.T) {
	ctx := context.Background()
	s := NewFileStore("")

	added, err := s.AddIfAbsent(ctx, "u1", ListFavorites, judgment("a", "Apple", 90))
	require.NoError(t, err)
	assert.True(t, added)

	added, err = s.AddIfAbsent(ctx, "u1", ListFavorites, judgment("a", "Changed", 10))
	require.NoError(t, err)
	assert.False(t, added)

	items, _ := s.List(ctx, "u1", ListFavorites)
	require.Len(t, items, 1)
	assert.Equal(t, "Apple", items[0].FoodName)

	cart, _ := s.List(ctx, "u1", ListCart)
	assert.Empty(t, cart)
}

func TestFileStore_RemoveAndClear(t *testing.T) {
	ctx := context.Background()
	s := NewFileStore("")
	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, s.Upsert(ctx, "u1", ListCart, judgment(id, id, 50)))
	}

	require.NoError(t, s.Remove(ctx, "u1", ListCart, "b"))
	require.NoError(t, s.Remove(ctx, "u1", ListCart, "missing"))
	items, _ := s.List(ctx, "u1", ListCart)
	assert.Equal(t, []string{"a", "c"}, foodIDs(items))

	require.NoError(t, s.Clear(ctx, "u1", ListCart))
	items, _ = s.List(ctx, "u1", ListCart)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestFileStore_ListUnknownUser(t *testing.T) {
	items, err := NewFileStore("").List(context.Background(), "nobody", ListCart)
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestFileStore_HistoryCapAndPaging(t *testing.T) {
	ctx := context.Background()
	s := NewFileStore("")
	for i := 1; i <= HistoryLimit+5; i++ {
		require.NoError(t, s.Append(ctx, "u1", judgment(fmt.Sprintf("food_%d", i), "x", 50), nil))
	}

	total, err := s.Count(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(HistoryLimit), total)

	page, total, err := s.Page(ctx, "u1", 1, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(HistoryLimit), total)
	assert.Equal(t, []string{"food_55", "food_54", "food_53"}, foodIDs(page))

	last, _, err := s.Page(ctx, "u1", 17, 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"food_7", "food_6"}, foodIDs(last))

	beyond, _, err := s.Page(ctx, "u1", 40, 3)
	require.NoError(t, err)
	assert.Empty(t, beyond)

	// (page-1)*pageSize wraps negative
	wrapped, total, err := s.Page(ctx, "u1", 6148914691236517206, 3)
	require.NoError(t, err)
	assert.Empty(t, wrapped)
	assert.Equal(t, int64(HistoryLimit), total)
}

func TestFileStore_Nearest(t *testing.T) {
	ctx := context.Background()
	s := NewFileStore("")

	got, _, err := s.Nearest(ctx, []float32{1, 0})
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, s.Append(ctx, "u1", judgment("oat", "Oat milk", 80), []float32{1, 0}))
	require.NoError(t, s.Append(ctx, "u2", judgment("beef", "Beef", 5), []float32{0, 1}))
	require.NoError(t, s.Append(ctx, "u2", judgment("plain", "No embedding", 5), nil))

	got, dist, err := s.Nearest(ctx, []float32{0.9, 0.1})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "oat", got.FoodID)
	assert.InDelta(t, 0.1414, dist, 1e-3)
}

func TestFileStore_PersistsToFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "user_data.json")

	s := NewFileStore(path)
	require.NoError(t, s.Upsert(ctx, "default_user", ListCart, judgment("a", "Apple", 90)))
	_, err := s.AddIfAbsent(ctx, "default_user", ListFavorites, judgment("b", "Bean", 85))
	require.NoError(t, err)

	reloaded := NewFileStore(path)
	cart, _ := reloaded.List(ctx, "default_user", ListCart)
	favs, _ := reloaded.List(ctx, "default_user", ListFavorites)
	assert.Equal(t, []string{"a"}, foodIDs(cart))
	assert.Equal(t, []string{"b"}, foodIDs(favs))
}

func TestFileStore_PersistsHistoryEmbeddings(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "user_data.json")

	s := NewFileStore(path)
	require.NoError(t, s.Append(ctx, "u1", judgment("oat", "Oat milk", 80), []float32{1, 0}))

	reloaded := NewFileStore(path)
	got, dist, err := reloaded.Nearest(ctx, []float32{1, 0})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "oat", got.FoodID)
	assert.InDelta(t, 0, dist, 1e-9)
}

func TestFileStore_CorruptFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "user_data.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	s := NewFileStore(path)
	items, err := s.List(context.Background(), "default_user", ListCart)
	require.NoError(t, err)
	assert.Empty(t, items)
}
