package db

import (
	"fmt"

	types "github.com/yungbote/careerhub-backend/internal/domain"
	"gorm.io/gorm"
)

func AutoMigrateAll(db *gorm.DB) error {
	if err := db.AutoMigrate(
		// identity
		&types.User{},
		&types.Profile{},

		// catalog
		&types.Career{},
		&types.Opportunity{},
		&types.Resource{},
		&types.TrainingProgram{},

		// student-owned
		&types.SavedOpportunity{},
		&types.Application{},
		&types.Goal{},
		&types.ProgressRecord{},
		&types.AcademicModule{},
	); err != nil {
		return err
	}
	return EnsureIndexes(db)
}

// EnsureIndexes creates indexes the struct tags cannot express portably.
func EnsureIndexes(db *gorm.DB) error {
	stmts := []struct {
		name string
		sql  string
	}{
		{"idx_goal_user_created_at", `CREATE INDEX IF NOT EXISTS idx_goal_user_created_at ON goals(user_id, created_at);`},
		{"idx_opportunity_active_created_at", `CREATE INDEX IF NOT EXISTS idx_opportunity_active_created_at ON opportunities(is_active, created_at);`},
		{"idx_academic_module_user_created_at", `CREATE INDEX IF NOT EXISTS idx_academic_module_user_created_at ON academic_modules(user_id, created_at);`},
	}
	for _, s := range stmts {
		if err := db.Exec(s.sql).Error; err != nil {
			return fmt.Errorf("create %s: %w", s.name, err)
		}
	}
	return nil
}
