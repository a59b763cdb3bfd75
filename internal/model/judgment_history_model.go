package model

import (
	"encoding/json"
	"time"

	"github.com/fadilmartias/sustainability-judge/internal/dto"
	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
)

// JudgmentHistory records every evaluation a user asked for. Embedding is
// empty when no embedding service is configured.
type JudgmentHistory struct {
	ID        uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    string           `gorm:"type:varchar(100);index" json:"user_id"`
	Query     string           `gorm:"type:text" json:"query"`
	Payload   string           `gorm:"type:jsonb" json:"payload"`
	Embedding *pgvector.Vector `gorm:"type:vector(3072)" json:"embedding,omitempty"`
	CreatedAt time.Time        `gorm:"index" json:"created_at"`
}

func (h *JudgmentHistory) TableName() string {
	return "judgment_histories"
}

func (h *JudgmentHistory) Judgment() (dto.FoodJudgment, error) {
	var j dto.FoodJudgment
	err := json.Unmarshal([]byte(h.Payload), &j)
	return j, err
}
