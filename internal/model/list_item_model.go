package model

import (
	"encoding/json"
	"time"

	"github.com/fadilmartias/sustainability-judge/internal/dto"
	"github.com/google/uuid"
)

// ListItem is one judgment kept in a user's cart or favorites.
type ListItem struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    string    `gorm:"type:varchar(100);uniqueIndex:idx_list_items_owner_food" json:"user_id"`
	List      string    `gorm:"type:varchar(20);uniqueIndex:idx_list_items_owner_food" json:"list"` // "cart" or "favorites"
	FoodID    string    `gorm:"type:varchar(100);uniqueIndex:idx_list_items_owner_food" json:"food_id"`
	Payload   string    `gorm:"type:jsonb" json:"payload"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (i *ListItem) TableName() string {
	return "list_items"
}

func (i *ListItem) Judgment() (dto.FoodJudgment, error) {
	var j dto.FoodJudgment
	err := json.Unmarshal([]byte(i.Payload), &j)
	return j, err
}

func (i *ListItem) SetJudgment(j dto.FoodJudgment) error {
	b, err := json.Marshal(j)
	if err != nil {
		return err
	}
	i.FoodID = j.FoodID
	i.Payload = string(b)
	return nil
}
