package user

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Profile is the one-per-user career profile.
type Profile struct {
	ID           uuid.UUID                   `gorm:"type:uuid;primaryKey" json:"id"`
	UserID       uuid.UUID                   `gorm:"type:uuid;not null;uniqueIndex;column:user_id" json:"userId"`
	Bio          string                      `gorm:"type:text;column:bio" json:"bio"`
	Skills       datatypes.JSONSlice[string] `gorm:"column:skills" json:"skills"`
	Interests    datatypes.JSONSlice[string] `gorm:"column:interests" json:"interests"`
	GPA          *float64                    `gorm:"column:gpa" json:"gpa"`
	LinkedinURL  string                      `gorm:"column:linkedin_url" json:"linkedinUrl"`
	GithubURL    string                      `gorm:"column:github_url" json:"githubUrl"`
	PortfolioURL string                      `gorm:"column:portfolio_url" json:"portfolioUrl"`

	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null" json:"updatedAt"`
}

func (Profile) TableName() string { return "profiles" }

func (p *Profile) BeforeCreate(*gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
