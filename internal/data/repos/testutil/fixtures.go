package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/yungbote/careerhub-backend/internal/domain"
)

func SeedUser(tb testing.TB, ctx context.Context, tx *gorm.DB, email, role string) *types.User {
	tb.Helper()
	u := &types.User{
		ID:        uuid.New(),
		Email:     email,
		Password:  "pw",
		Name:      "Test Student",
		Role:      role,
		YearLevel: 3,
		Course:    types.DefaultCourse,
	}
	if err := tx.WithContext(ctx).Create(u).Error; err != nil {
		tb.Fatalf("seed user: %v", err)
	}
	return u
}

func SeedProfile(tb testing.TB, ctx context.Context, tx *gorm.DB, userID uuid.UUID, gpa *float64, skills ...string) *types.Profile {
	tb.Helper()
	p := &types.Profile{
		UserID: userID,
		Skills: skills,
		GPA:    gpa,
	}
	if err := tx.WithContext(ctx).Create(p).Error; err != nil {
		tb.Fatalf("seed profile: %v", err)
	}
	return p
}

func SeedCareer(tb testing.TB, ctx context.Context, tx *gorm.DB, title string, createdAt time.Time) *types.Career {
	tb.Helper()
	c := &types.Career{
		Title:          title,
		Industry:       "Technology",
		RequiredSkills: []string{"go"},
		CreatedAt:      createdAt,
		UpdatedAt:      createdAt,
	}
	if err := tx.WithContext(ctx).Create(c).Error; err != nil {
		tb.Fatalf("seed career: %v", err)
	}
	return c
}

// SeedOpportunity inserts an opportunity created at the given time so
// ordering assertions are deterministic.
func SeedOpportunity(tb testing.TB, ctx context.Context, tx *gorm.DB, title string, active bool, createdAt time.Time) *types.Opportunity {
	tb.Helper()
	o := &types.Opportunity{
		Title:     title,
		Company:   "Acme",
		Type:      types.OpportunityTypeInternship,
		IsActive:  active,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
	if err := tx.WithContext(ctx).Create(o).Error; err != nil {
		tb.Fatalf("seed opportunity: %v", err)
	}
	return o
}

func SeedResource(tb testing.TB, ctx context.Context, tx *gorm.DB, title string, createdAt time.Time) *types.Resource {
	tb.Helper()
	r := &types.Resource{Title: title, Category: "guide", Type: "pdf", CreatedAt: createdAt, UpdatedAt: createdAt}
	if err := tx.WithContext(ctx).Create(r).Error; err != nil {
		tb.Fatalf("seed resource: %v", err)
	}
	return r
}

func SeedTrainingProgram(tb testing.TB, ctx context.Context, tx *gorm.DB, title string, active bool) *types.TrainingProgram {
	tb.Helper()
	p := &types.TrainingProgram{Title: title, Provider: "Coursera", IsActive: active}
	if err := tx.WithContext(ctx).Create(p).Error; err != nil {
		tb.Fatalf("seed training program: %v", err)
	}
	return p
}

func SeedGoal(tb testing.TB, ctx context.Context, tx *gorm.DB, userID uuid.UUID, title, status string, createdAt time.Time) *types.Goal {
	tb.Helper()
	g := &types.Goal{
		UserID:    userID,
		Title:     title,
		Status:    status,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
	if err := tx.WithContext(ctx).Create(g).Error; err != nil {
		tb.Fatalf("seed goal: %v", err)
	}
	return g
}

func SeedProgress(tb testing.TB, ctx context.Context, tx *gorm.DB, userID uuid.UUID, skill string, level int, at time.Time) *types.ProgressRecord {
	tb.Helper()
	r := &types.ProgressRecord{UserID: userID, SkillName: skill, Level: level, RecordedAt: at}
	if err := tx.WithContext(ctx).Create(r).Error; err != nil {
		tb.Fatalf("seed progress: %v", err)
	}
	return r
}

func Float(v float64) *float64 { return &v }
