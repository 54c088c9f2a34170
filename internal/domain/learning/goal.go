package learning

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	GoalNotStarted = "not-started"
	GoalInProgress = "in-progress"
	GoalCompleted  = "completed"
)

type Goal struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID  `gorm:"type:uuid;not null;index;column:user_id" json:"userId"`
	Title       string     `gorm:"not null;column:title" json:"title"`
	Description string     `gorm:"type:text;column:description" json:"description"`
	Category    string     `gorm:"column:category" json:"category"`
	Status      string     `gorm:"not null;index;column:status" json:"status"`
	Progress    int        `gorm:"not null;column:progress" json:"progress"`
	TargetDate  *time.Time `gorm:"column:target_date" json:"targetDate"`

	CreatedAt time.Time `gorm:"not null;index" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null" json:"updatedAt"`
}

func (Goal) TableName() string { return "goals" }

func (g *Goal) BeforeCreate(*gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}

func ValidGoalStatus(s string) bool {
	switch s {
	case GoalNotStarted, GoalInProgress, GoalCompleted:
		return true
	}
	return false
}

// ClampProgress bounds a goal percentage to 0..100.
func ClampProgress(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
