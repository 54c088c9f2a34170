package opportunity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	TypeInternship = "internship"
	TypeJob        = "job"

	ApplicationStatusPending = "pending"
)

// Opportunity is a job or internship posting.
type Opportunity struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Title          string     `gorm:"not null;column:title" json:"title"`
	Company        string     `gorm:"not null;column:company" json:"company"`
	Description    string     `gorm:"type:text;column:description" json:"description"`
	Type           string     `gorm:"not null;column:type" json:"type"`
	Location       string     `gorm:"column:location" json:"location"`
	Industry       string     `gorm:"column:industry" json:"industry"`
	ApplicationURL string     `gorm:"column:application_url" json:"applicationUrl"`
	Deadline       *time.Time `gorm:"column:deadline" json:"deadline"`
	IsActive       bool       `gorm:"not null;index;column:is_active" json:"isActive"`

	CreatedAt time.Time `gorm:"not null;index" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null" json:"updatedAt"`
}

func (Opportunity) TableName() string { return "opportunities" }

func (o *Opportunity) BeforeCreate(*gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

func ValidType(t string) bool { return t == TypeInternship || t == TypeJob }

// SavedOpportunity is a student's bookmark.
type SavedOpportunity struct {
	ID            uuid.UUID    `gorm:"type:uuid;primaryKey" json:"id"`
	UserID        uuid.UUID    `gorm:"type:uuid;not null;uniqueIndex:idx_saved_user_opportunity;column:user_id" json:"userId"`
	OpportunityID uuid.UUID    `gorm:"type:uuid;not null;uniqueIndex:idx_saved_user_opportunity;index;column:opportunity_id" json:"opportunityId"`
	Opportunity   *Opportunity `gorm:"foreignKey:OpportunityID" json:"opportunity,omitempty"`

	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
}

func (SavedOpportunity) TableName() string { return "saved_opportunities" }

func (s *SavedOpportunity) BeforeCreate(*gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// Application is a student's submission against an opportunity.
type Application struct {
	ID                uuid.UUID    `gorm:"type:uuid;primaryKey" json:"id"`
	UserID            uuid.UUID    `gorm:"type:uuid;not null;uniqueIndex:idx_application_user_opportunity;column:user_id" json:"userId"`
	OpportunityID     uuid.UUID    `gorm:"type:uuid;not null;uniqueIndex:idx_application_user_opportunity;index;column:opportunity_id" json:"opportunityId"`
	Opportunity       *Opportunity `gorm:"foreignKey:OpportunityID" json:"opportunity,omitempty"`
	ProfilePictureURL string       `gorm:"type:text;column:profile_picture_url" json:"profilePictureUrl"`
	ResumeURL         string       `gorm:"not null;column:resume_url" json:"resumeUrl"`
	CoverLetter       string       `gorm:"type:text;column:cover_letter" json:"coverLetter"`
	Status            string       `gorm:"not null;column:status" json:"status"`

	AppliedAt time.Time `gorm:"not null;index;column:applied_at" json:"appliedAt"`
	UpdatedAt time.Time `gorm:"not null" json:"updatedAt"`
}

func (Application) TableName() string { return "opportunity_applications" }

func (a *Application) BeforeCreate(*gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.AppliedAt.IsZero() {
		a.AppliedAt = time.Now().UTC()
	}
	return nil
}
