package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/ledgertrack/backend/internal/application/adapter"
	"github.com/ledgertrack/backend/internal/domain/entity"
	"github.com/ledgertrack/backend/internal/integration/persistence/model"
)

// dateDimensionRepository implements the adapter.DateDimensionRepository interface.
type dateDimensionRepository struct {
	db *gorm.DB
}

// NewDateDimensionRepository creates a new date dimension repository instance.
func NewDateDimensionRepository(db *gorm.DB) adapter.DateDimensionRepository {
	return &dateDimensionRepository{
		db: db,
	}
}

// GetOrCreate resolves a calendar date to its dimension row, inserting on
// first reference. Concurrent callers for the same date race on the unique
// full_date index; the loser re-reads the winner's row, so the unique
// constraint is the arbiter and no row is ever duplicated.
func (r *dateDimensionRepository) GetOrCreate(ctx context.Context, date time.Time) (*entity.DateDimension, error) {
	day := entity.TruncateToDate(date)

	var dimensionModel model.DateDimensionModel
	result := r.db.WithContext(ctx).Where("full_date = ?", day).First(&dimensionModel)
	if result.Error == nil {
		return dimensionModel.ToEntity(), nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, result.Error
	}

	dimension := entity.NewDateDimension(day)
	if err := r.db.WithContext(ctx).Create(model.DateDimensionFromEntity(dimension)).Error; err != nil {
		// Lost the insert race; the winner's row must exist now.
		var existing model.DateDimensionModel
		reread := r.db.WithContext(ctx).Where("full_date = ?", day).First(&existing)
		if reread.Error != nil {
			return nil, fmt.Errorf("failed to create date dimension: %w", err)
		}
		return existing.ToEntity(), nil
	}

	return dimension, nil
}
