package repository

import (
	"context"

	"github.com/fadilmartias/sustainability-judge/internal/dto"
)

// Names of the per-user lists.
const (
	ListCart      = "cart"
	ListFavorites = "favorites"
)

// HistoryLimit is how many evaluations are kept per user.
const HistoryLimit = 50

// ListRepository stores the cart and favorites of each user. Items keep
// their insertion order and are keyed by FoodID within a list.
type ListRepository interface {
	// Upsert replaces the item with the same FoodID in place, or appends it.
	Upsert(ctx context.Context, userID, list string, item dto.FoodJudgment) error
	// AddIfAbsent appends the item unless its FoodID is already present.
	AddIfAbsent(ctx context.Context, userID, list string, item dto.FoodJudgment) (bool, error)
	Remove(ctx context.Context, userID, list, foodID string) error
	List(ctx context.Context, userID, list string) ([]dto.FoodJudgment, error)
	Clear(ctx context.Context, userID, list string) error
}

// HistoryRepository keeps the evaluations a user asked for, newest first.
type HistoryRepository interface {
	Append(ctx context.Context, userID string, item dto.FoodJudgment, embedding []float32) error
	// Page returns one page of history (1-based) and the total count.
	Page(ctx context.Context, userID string, page, pageSize int) ([]dto.FoodJudgment, int64, error)
	Count(ctx context.Context, userID string) (int64, error)
	// Nearest returns the stored judgment whose embedding is closest (L2) to
	// the given one, across all users. It returns nil when nothing is stored.
	Nearest(ctx context.Context, embedding []float32) (*dto.FoodJudgment, float64, error)
}
