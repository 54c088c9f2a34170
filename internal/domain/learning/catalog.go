package learning

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type TrainingProgram struct {
	ID          uuid.UUID                   `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string                      `gorm:"not null;column:title" json:"title"`
	Description string                      `gorm:"type:text;column:description" json:"description"`
	Provider    string                      `gorm:"column:provider" json:"provider"`
	Duration    string                      `gorm:"column:duration" json:"duration"`
	Format      string                      `gorm:"column:format" json:"format"`
	URL         string                      `gorm:"column:url" json:"url"`
	Skills      datatypes.JSONSlice[string] `gorm:"column:skills" json:"skills"`
	StartDate   *time.Time                  `gorm:"column:start_date" json:"startDate"`
	IsActive    bool                        `gorm:"not null;index;column:is_active" json:"isActive"`

	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null" json:"updatedAt"`
}

func (TrainingProgram) TableName() string { return "training_programs" }

func (t *TrainingProgram) BeforeCreate(*gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// Resource is a downloadable guide, template or link.
type Resource struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title         string    `gorm:"not null;column:title" json:"title"`
	Description   string    `gorm:"type:text;column:description" json:"description"`
	Category      string    `gorm:"column:category" json:"category"`
	Type          string    `gorm:"column:type" json:"type"`
	URL           string    `gorm:"column:url" json:"url"`
	DownloadCount int       `gorm:"not null;column:download_count" json:"downloadCount"`

	CreatedAt time.Time `gorm:"not null;index" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null" json:"updatedAt"`
}

func (Resource) TableName() string { return "resources" }

func (r *Resource) BeforeCreate(*gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
