package career

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Career struct {
	ID             uuid.UUID                   `gorm:"type:uuid;primaryKey" json:"id"`
	Title          string                      `gorm:"not null;column:title" json:"title"`
	Description    string                      `gorm:"type:text;column:description" json:"description"`
	Industry       string                      `gorm:"column:industry" json:"industry"`
	RequiredSkills datatypes.JSONSlice[string] `gorm:"column:required_skills" json:"requiredSkills"`
	SalaryRange    string                      `gorm:"column:salary_range" json:"salaryRange"`
	GrowthOutlook  string                      `gorm:"column:growth_outlook" json:"growthOutlook"`

	CreatedAt time.Time `gorm:"not null;index" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null" json:"updatedAt"`
}

func (Career) TableName() string { return "careers" }

func (c *Career) BeforeCreate(*gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
