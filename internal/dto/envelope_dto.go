package dto

import "github.com/fadilmartias/sustainability-judge/internal/response"

const (
	StatusSuccess = "success"
	StatusError   = "error"
	StatusHealthy = "healthy"
)

type JudgeRequest struct {
	FoodQuery string `json:"food_query"`
	UserID    string `json:"user_id"`
}

type ListAddRequest struct {
	UserID   string        `json:"user_id"`
	FoodItem *FoodJudgment `json:"food_item"`
}

type ListRemoveRequest struct {
	UserID string `json:"user_id"`
	FoodID string `json:"food_id"`
}

type UserRequest struct {
	UserID string `json:"user_id"`
}

// StatusResponse is the common part of every reply body.
type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

type JudgeResponse struct {
	StatusResponse
	Judgment FoodJudgment `json:"judgment"`
}

type CartResponse struct {
	StatusResponse
	CartItems []FoodJudgment `json:"cart_items"`
}

type FavoritesResponse struct {
	StatusResponse
	Favorites []FoodJudgment `json:"favorites"`
}

type SummaryResponse struct {
	StatusResponse
	Summary Summary `json:"summary"`
}

type HistoryResponse struct {
	StatusResponse
	History    []FoodJudgment       `json:"history"`
	Pagination *response.Pagination `json:"pagination,omitempty"`
}

type StatsResponse struct {
	StatusResponse
	Stats UserStats `json:"stats"`
}
