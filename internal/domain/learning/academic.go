package learning

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AcademicModule is a course a student tracks for a semester.
type AcademicModule struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID   uuid.UUID `gorm:"type:uuid;not null;index;column:user_id" json:"userId"`
	Code     string    `gorm:"column:code" json:"code"`
	Name     string    `gorm:"not null;column:name" json:"name"`
	Semester string    `gorm:"column:semester" json:"semester"`
	Credits  int       `gorm:"column:credits" json:"credits"`
	Grade    string    `gorm:"column:grade" json:"grade"`
	Status   string    `gorm:"column:status" json:"status"`

	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null" json:"updatedAt"`
}

func (AcademicModule) TableName() string { return "academic_modules" }

func (m *AcademicModule) BeforeCreate(*gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
