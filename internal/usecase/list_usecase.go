package usecase

import (
	"context"
	"strings"

	"github.com/fadilmartias/sustainability-judge/internal/dto"
	"github.com/fadilmartias/sustainability-judge/internal/repository"
	"github.com/fadilmartias/sustainability-judge/internal/response"
)

type ListUsecase struct {
	lists   repository.ListRepository
	history repository.HistoryRepository
}

func NewListUsecase(lists repository.ListRepository, history repository.HistoryRepository) *ListUsecase {
	return &ListUsecase{lists: lists, history: history}
}

func validateItem(item *dto.FoodJudgment) error {
	if item == nil {
		return ErrFoodItemRequired
	}
	if strings.TrimSpace(item.FoodID) == "" {
		return ErrFoodIDRequired
	}
	return nil
}

// AddToCart stores item, replacing an entry with the same food_id in place.
func (uc *ListUsecase) AddToCart(ctx context.Context, userID string, item *dto.FoodJudgment) error {
	if err := validateItem(item); err != nil {
		return err
	}
	return uc.lists.Upsert(ctx, userID, repository.ListCart, *item)
}

func (uc *ListUsecase) GetCart(ctx context.Context, userID string) ([]dto.FoodJudgment, error) {
	return uc.lists.List(ctx, userID, repository.ListCart)
}

func (uc *ListUsecase) RemoveFromCart(ctx context.Context, userID, foodID string) error {
	if strings.TrimSpace(foodID) == "" {
		return ErrFoodIDRequired
	}
	return uc.lists.Remove(ctx, userID, repository.ListCart, foodID)
}

func (uc *ListUsecase) ClearCart(ctx context.Context, userID string) error {
	return uc.lists.Clear(ctx, userID, repository.ListCart)
}

// AddToFavorites keeps the first copy of a food_id; it reports whether the
// item was newly added.
func (uc *ListUsecase) AddToFavorites(ctx context.Context, userID string, item *dto.FoodJudgment) (bool, error) {
	if err := validateItem(item); err != nil {
		return false, err
	}
	return uc.lists.AddIfAbsent(ctx, userID, repository.ListFavorites, *item)
}

func (uc *ListUsecase) GetFavorites(ctx context.Context, userID string) ([]dto.FoodJudgment, error) {
	return uc.lists.List(ctx, userID, repository.ListFavorites)
}

func (uc *ListUsecase) RemoveFromFavorites(ctx context.Context, userID, foodID string) error {
	if strings.TrimSpace(foodID) == "" {
		return ErrFoodIDRequired
	}
	return uc.lists.Remove(ctx, userID, repository.ListFavorites, foodID)
}

func (uc *ListUsecase) History(ctx context.Context, userID string, page, pageSize int) ([]dto.FoodJudgment, *response.Pagination, error) {
	page, pageSize = response.NormalizePage(page, pageSize)
	items, total, err := uc.history.Page(ctx, userID, page, pageSize)
	if err != nil {
		return nil, nil, err
	}
	return items, response.NewPagination(page, pageSize, len(items), total), nil
}

func (uc *ListUsecase) Stats(ctx context.Context, userID string) (dto.UserStats, error) {
	cart, err := uc.lists.List(ctx, userID, repository.ListCart)
	if err != nil {
		return dto.UserStats{}, err
	}
	favorites, err := uc.lists.List(ctx, userID, repository.ListFavorites)
	if err != nil {
		return dto.UserStats{}, err
	}
	evaluations, err := uc.history.Count(ctx, userID)
	if err != nil {
		return dto.UserStats{}, err
	}

	stats := dto.UserStats{
		CartItems:        len(cart),
		FavoriteItems:    len(favorites),
		TotalEvaluations: evaluations,
	}
	if len(cart) > 0 {
		var total float64
		for _, it := range cart {
			total += it.OverallScore
		}
		stats.AverageCartScore = total / float64(len(cart))
	}
	return stats, nil
}
