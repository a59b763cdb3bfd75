package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/fadilmartias/sustainability-judge/internal/config"
	"github.com/fadilmartias/sustainability-judge/internal/dto"
	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

// StatusError is returned when the backend answers with anything other than
// a success status. Message is what the backend said went wrong.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	return e.Message
}

// Client talks to the sustainability backend on behalf of a single user.
type Client struct {
	http   *resty.Client
	userID string
}

func New(cfg *config.ClientConfig) *Client {
	userID := cfg.UserID
	if userID == "" {
		userID = config.DefaultUserID
	}
	return &Client{
		http: resty.New().
			SetBaseURL(cfg.APIBaseURL).
			SetTimeout(cfg.Timeout).
			SetHeader("Accept", "application/json"),
		userID: userID,
	}
}

func (c *Client) UserID() string {
	return c.userID
}

func (c *Client) Health(ctx context.Context) (dto.StatusResponse, error) {
	var out dto.StatusResponse
	err := c.do(ctx, "health", http.MethodGet, "/health", nil, nil, &out)
	return out, err
}

func (c *Client) Judge(ctx context.Context, query string) (dto.FoodJudgment, error) {
	var out dto.JudgeResponse
	err := c.do(ctx, "judge", http.MethodPost, "/judge", nil,
		dto.JudgeRequest{FoodQuery: query, UserID: c.userID}, &out)
	return out.Judgment, err
}

func (c *Client) Cart(ctx context.Context) ([]dto.FoodJudgment, error) {
	var out dto.CartResponse
	err := c.do(ctx, "get cart", http.MethodGet, "/cart", c.userQuery(), nil, &out)
	return out.CartItems, err
}

func (c *Client) AddToCart(ctx context.Context, item dto.FoodJudgment) (string, error) {
	return c.message(ctx, "add to cart", http.MethodPost, "/cart/add",
		dto.ListAddRequest{UserID: c.userID, FoodItem: &item})
}

func (c *Client) RemoveFromCart(ctx context.Context, foodID string) (string, error) {
	return c.message(ctx, "remove from cart", http.MethodDelete, "/cart/remove",
		dto.ListRemoveRequest{UserID: c.userID, FoodID: foodID})
}

func (c *Client) ClearCart(ctx context.Context) (string, error) {
	return c.message(ctx, "clear cart", http.MethodDelete, "/cart/clear",
		dto.UserRequest{UserID: c.userID})
}

func (c *Client) Favorites(ctx context.Context) ([]dto.FoodJudgment, error) {
	var out dto.FavoritesResponse
	err := c.do(ctx, "get favorites", http.MethodGet, "/favorites", c.userQuery(), nil, &out)
	return out.Favorites, err
}

func (c *Client) AddToFavorites(ctx context.Context, item dto.FoodJudgment) (string, error) {
	return c.message(ctx, "add to favorites", http.MethodPost, "/favorites/add",
		dto.ListAddRequest{UserID: c.userID, FoodItem: &item})
}

func (c *Client) RemoveFromFavorites(ctx context.Context, foodID string) (string, error) {
	return c.message(ctx, "remove from favorites", http.MethodDelete, "/favorites/remove",
		dto.ListRemoveRequest{UserID: c.userID, FoodID: foodID})
}

func (c *Client) Summary(ctx context.Context) (dto.Summary, error) {
	var out dto.SummaryResponse
	err := c.do(ctx, "get summary", http.MethodGet, "/summary", c.userQuery(), nil, &out)
	return out.Summary, err
}

func (c *Client) History(ctx context.Context, page, pageSize int) (dto.HistoryResponse, error) {
	query := c.userQuery()
	if page > 0 {
		query["page"] = strconv.Itoa(page)
	}
	if pageSize > 0 {
		query["page_size"] = strconv.Itoa(pageSize)
	}
	var out dto.HistoryResponse
	err := c.do(ctx, "get history", http.MethodGet, "/history", query, nil, &out)
	return out, err
}

func (c *Client) Stats(ctx context.Context) (dto.UserStats, error) {
	var out dto.StatsResponse
	err := c.do(ctx, "get stats", http.MethodGet, "/stats", c.userQuery(), nil, &out)
	return out.Stats, err
}

func (c *Client) userQuery() map[string]string {
	return map[string]string{"user_id": c.userID}
}

func (c *Client) message(ctx context.Context, op, method, path string, body any) (string, error) {
	var out dto.StatusResponse
	err := c.do(ctx, op, method, path, nil, body, &out)
	return out.Message, err
}

func (c *Client) do(ctx context.Context, op, method, path string, query map[string]string, body, out any) error {
	req := c.http.R().SetContext(ctx).SetQueryParams(query)
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}
	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	raw := resp.Body()
	status := gjson.GetBytes(raw, "status").String()
	if status != dto.StatusSuccess && status != dto.StatusHealthy {
		return &StatusError{StatusCode: resp.StatusCode(), Message: failureMessage(resp)}
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%s: decode response: %w", op, err)
	}
	return nil
}

func failureMessage(resp *resty.Response) string {
	raw := resp.Body()
	for _, key := range []string{"message", "error"} {
		if msg := gjson.GetBytes(raw, key).String(); msg != "" {
			return msg
		}
	}
	if resp.Status() != "" {
		return resp.Status()
	}
	return "unexpected response from server"
}
