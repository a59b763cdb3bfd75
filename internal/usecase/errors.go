package usecase

import "errors"

var (
	ErrFoodQueryRequired = errors.New("food_query is required")
	ErrFoodItemRequired  = errors.New("food_item is required")
	ErrFoodIDRequired    = errors.New("food_id is required")
)
