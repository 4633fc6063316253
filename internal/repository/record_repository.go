package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"daily-tasks/internal/model"
)

// RecordRepository stores serialized collections as rows keyed by name.
type RecordRepository struct {
	db *gorm.DB
}

func NewRecordRepository(db *gorm.DB) *RecordRepository {
	return &RecordRepository{db: db}
}

// Load returns the blob stored under key. A missing row is reported as
// ok == false with a nil error.
func (r *RecordRepository) Load(ctx context.Context, key string) ([]byte, bool, error) {
	var record model.Record
	err := r.db.WithContext(ctx).Where("record_key = ?", key).First(&record).Error
	switch {
	case err == nil:
		return record.Value, true, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, false, nil
	default:
		return nil, false, fmt.Errorf("find record %q: %w", key, err)
	}
}

// Save overwrites the blob stored under key.
func (r *RecordRepository) Save(ctx context.Context, key string, value []byte) error {
	record := model.Record{Key: key, Value: value}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "record_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&record).Error
	if err != nil {
		return fmt.Errorf("save record %q: %w", key, err)
	}
	return nil
}

// Erase removes the row for key; erasing a missing key is not an error.
func (r *RecordRepository) Erase(ctx context.Context, key string) error {
	if err := r.db.WithContext(ctx).Where("record_key = ?", key).
		Delete(&model.Record{}).Error; err != nil {
		return fmt.Errorf("erase record %q: %w", key, err)
	}
	return nil
}
