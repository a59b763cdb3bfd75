package repository

import (
	"context"
	"fmt"

	"github.com/fadilmartias/sustainability-judge/internal/dto"
	"github.com/fadilmartias/sustainability-judge/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var _ ListRepository = (*GormListRepository)(nil)

type GormListRepository struct {
	db *gorm.DB
}

func NewGormListRepository(db *gorm.DB) *GormListRepository {
	return &GormListRepository{db}
}

func newListRow(userID, list string, item dto.FoodJudgment) (*model.ListItem, error) {
	row := &model.ListItem{ID: uuid.New(), UserID: userID, List: list}
	if err := row.SetJudgment(item); err != nil {
		return nil, fmt.Errorf("encode %s item: %w", list, err)
	}
	return row, nil
}

var listItemKey = []clause.Column{{Name: "user_id"}, {Name: "list"}, {Name: "food_id"}}

// Upsert relies on the unique (user_id, list, food_id) index so concurrent
// writers for the same food leave exactly one row.
func (r *GormListRepository) Upsert(ctx context.Context, userID, list string, item dto.FoodJudgment) error {
	row, err := newListRow(userID, list, item)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   listItemKey,
			DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
		}).
		Create(row).Error
}

func (r *GormListRepository) AddIfAbsent(ctx context.Context, userID, list string, item dto.FoodJudgment) (bool, error) {
	row, err := newListRow(userID, list, item)
	if err != nil {
		return false, err
	}
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: listItemKey, DoNothing: true}).
		Create(row)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *GormListRepository) Remove(ctx context.Context, userID, list, foodID string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND list = ? AND food_id = ?", userID, list, foodID).
		Delete(&model.ListItem{}).Error
}

func (r *GormListRepository) List(ctx context.Context, userID, list string) ([]dto.FoodJudgment, error) {
	var rows []model.ListItem
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND list = ?", userID, list).
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	items := make([]dto.FoodJudgment, 0, len(rows))
	for i := range rows {
		j, err := rows[i].Judgment()
		if err != nil {
			return nil, fmt.Errorf("decode %s item %s: %w", list, rows[i].FoodID, err)
		}
		items = append(items, j)
	}
	return items, nil
}

func (r *GormListRepository) Clear(ctx context.Context, userID, list string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND list = ?", userID, list).
		Delete(&model.ListItem{}).Error
}
