package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/fadilmartias/sustainability-judge/internal/dto"
	"github.com/fadilmartias/sustainability-judge/internal/model"
	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

var _ HistoryRepository = (*GormHistoryRepository)(nil)

type GormHistoryRepository struct {
	db *gorm.DB
}

func NewGormHistoryRepository(db *gorm.DB) *GormHistoryRepository {
	return &GormHistoryRepository{db}
}

func (r *GormHistoryRepository) Append(ctx context.Context, userID string, item dto.FoodJudgment, embedding []float32) error {
	payload, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("encode history item: %w", err)
	}
	row := model.JudgmentHistory{
		ID:        uuid.New(),
		UserID:    userID,
		Query:     item.Query,
		Payload:   string(payload),
		CreatedAt: time.Now(),
	}
	if len(embedding) > 0 {
		v := pgvector.NewVector(embedding)
		row.Embedding = &v
	}

	db := r.db.WithContext(ctx)
	if err := db.Create(&row).Error; err != nil {
		return err
	}

	// keep only the newest HistoryLimit rows of this user
	return db.Exec(`
        DELETE FROM judgment_histories
        WHERE user_id = ? AND id NOT IN (
            SELECT id FROM judgment_histories
            WHERE user_id = ?
            ORDER BY created_at DESC
            LIMIT ?
        )
    `, userID, userID, HistoryLimit).Error
}

func (r *GormHistoryRepository) Page(ctx context.Context, userID string, page, pageSize int) ([]dto.FoodJudgment, int64, error) {
	total, err := r.Count(ctx, userID)
	if err != nil {
		return nil, 0, err
	}

	var rows []model.JudgmentHistory
	err = r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	items := make([]dto.FoodJudgment, 0, len(rows))
	for i := range rows {
		j, err := rows[i].Judgment()
		if err != nil {
			return nil, 0, fmt.Errorf("decode history item %s: %w", rows[i].ID, err)
		}
		items = append(items, j)
	}
	return items, total, nil
}

func (r *GormHistoryRepository) Count(ctx context.Context, userID string) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&model.JudgmentHistory{}).
		Where("user_id = ?", userID).
		Count(&total).Error
	return total, err
}

func (r *GormHistoryRepository) Nearest(ctx context.Context, embedding []float32) (*dto.FoodJudgment, float64, error) {
	var row struct {
		Payload  string
		Distance float64
	}
	vec := pgvector.NewVector(embedding)

	// pgvector <-> operator (Euclidean distance)
	err := r.db.WithContext(ctx).Raw(`
        SELECT payload, embedding <-> ? AS distance
        FROM judgment_histories
        WHERE embedding IS NOT NULL
        ORDER BY embedding <-> ?
        LIMIT 1
    `, vec, vec).Scan(&row).Error
	if err != nil {
		return nil, 0, err
	}
	if row.Payload == "" {
		return nil, 0, nil
	}

	var j dto.FoodJudgment
	if err := json.Unmarshal([]byte(row.Payload), &j); err != nil {
		return nil, 0, fmt.Errorf("decode nearest history item: %w", err)
	}
	return &j, row.Distance, nil
}
