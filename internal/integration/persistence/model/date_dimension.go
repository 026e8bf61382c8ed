package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/ledgertrack/backend/internal/domain/entity"
)

// DateDimensionModel represents the date_dimensions table in the database.
// One row per calendar date, shared by all users.
type DateDimensionModel struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullDate time.Time `gorm:"type:date;uniqueIndex;not null"`
	Year     int       `gorm:"not null;index:idx_date_dimensions_year_month"`
	Month    int       `gorm:"not null;index:idx_date_dimensions_year_month"`
	Day      int       `gorm:"not null"`
	Weekday  string    `gorm:"type:varchar(10);not null"`
	Quarter  int       `gorm:"not null"`
}

// TableName returns the table name for the DateDimensionModel.
func (DateDimensionModel) TableName() string {
	return "date_dimensions"
}

// ToEntity converts a DateDimensionModel to a domain DateDimension entity.
func (m *DateDimensionModel) ToEntity() *entity.DateDimension {
	return &entity.DateDimension{
		ID:       m.ID,
		FullDate: m.FullDate,
		Year:     m.Year,
		Month:    m.Month,
		Day:      m.Day,
		Weekday:  m.Weekday,
		Quarter:  m.Quarter,
	}
}

// DateDimensionFromEntity creates a DateDimensionModel from a domain DateDimension entity.
func DateDimensionFromEntity(dimension *entity.DateDimension) *DateDimensionModel {
	return &DateDimensionModel{
		ID:       dimension.ID,
		FullDate: dimension.FullDate,
		Year:     dimension.Year,
		Month:    dimension.Month,
		Day:      dimension.Day,
		Weekday:  dimension.Weekday,
		Quarter:  dimension.Quarter,
	}
}
