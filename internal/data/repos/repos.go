package repos

import (
	"gorm.io/gorm"

	"github.com/yungbote/careerhub-backend/internal/data/repos/careers"
	"github.com/yungbote/careerhub-backend/internal/data/repos/learning"
	"github.com/yungbote/careerhub-backend/internal/data/repos/opportunities"
	"github.com/yungbote/careerhub-backend/internal/data/repos/user"
	"github.com/yungbote/careerhub-backend/internal/platform/logger"
)

type UserRepo = user.UserRepo
type ProfileRepo = user.ProfileRepo
type StudentGPA = user.StudentGPA

type CareerRepo = careers.CareerRepo

type OpportunityRepo = opportunities.OpportunityRepo
type SavedOpportunityRepo = opportunities.SavedOpportunityRepo
type ApplicationRepo = opportunities.ApplicationRepo

type GoalRepo = learning.GoalRepo
type GoalCounts = learning.GoalCounts
type ProgressRecordRepo = learning.ProgressRecordRepo
type AcademicModuleRepo = learning.AcademicModuleRepo
type TrainingProgramRepo = learning.TrainingProgramRepo
type ResourceRepo = learning.ResourceRepo

func NewUserRepo(db *gorm.DB, baseLog *logger.Logger) UserRepo { return user.NewUserRepo(db, baseLog) }
func NewProfileRepo(db *gorm.DB, baseLog *logger.Logger) ProfileRepo {
	return user.NewProfileRepo(db, baseLog)
}

func NewCareerRepo(db *gorm.DB, baseLog *logger.Logger) CareerRepo {
	return careers.NewCareerRepo(db, baseLog)
}

func NewOpportunityRepo(db *gorm.DB, baseLog *logger.Logger) OpportunityRepo {
	return opportunities.NewOpportunityRepo(db, baseLog)
}
func NewSavedOpportunityRepo(db *gorm.DB, baseLog *logger.Logger) SavedOpportunityRepo {
	return opportunities.NewSavedOpportunityRepo(db, baseLog)
}
func NewApplicationRepo(db *gorm.DB, baseLog *logger.Logger) ApplicationRepo {
	return opportunities.NewApplicationRepo(db, baseLog)
}

func NewGoalRepo(db *gorm.DB, baseLog *logger.Logger) GoalRepo {
	return learning.NewGoalRepo(db, baseLog)
}
func NewProgressRecordRepo(db *gorm.DB, baseLog *logger.Logger) ProgressRecordRepo {
	return learning.NewProgressRecordRepo(db, baseLog)
}
func NewAcademicModuleRepo(db *gorm.DB, baseLog *logger.Logger) AcademicModuleRepo {
	return learning.NewAcademicModuleRepo(db, baseLog)
}
func NewTrainingProgramRepo(db *gorm.DB, baseLog *logger.Logger) TrainingProgramRepo {
	return learning.NewTrainingProgramRepo(db, baseLog)
}
func NewResourceRepo(db *gorm.DB, baseLog *logger.Logger) ResourceRepo {
	return learning.NewResourceRepo(db, baseLog)
}
