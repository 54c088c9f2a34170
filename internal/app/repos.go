package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/careerhub-backend/internal/data/repos"
	"github.com/yungbote/careerhub-backend/internal/platform/logger"
)

type Repos struct {
	User            repos.UserRepo
	Profile         repos.ProfileRepo
	Career          repos.CareerRepo
	Opportunity     repos.OpportunityRepo
	Saved           repos.SavedOpportunityRepo
	Application     repos.ApplicationRepo
	Goal            repos.GoalRepo
	Progress        repos.ProgressRecordRepo
	AcademicModule  repos.AcademicModuleRepo
	TrainingProgram repos.TrainingProgramRepo
	Resource        repos.ResourceRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		User:            repos.NewUserRepo(db, log),
		Profile:         repos.NewProfileRepo(db, log),
		Career:          repos.NewCareerRepo(db, log),
		Opportunity:     repos.NewOpportunityRepo(db, log),
		Saved:           repos.NewSavedOpportunityRepo(db, log),
		Application:     repos.NewApplicationRepo(db, log),
		Goal:            repos.NewGoalRepo(db, log),
		Progress:        repos.NewProgressRecordRepo(db, log),
		AcademicModule:  repos.NewAcademicModuleRepo(db, log),
		TrainingProgram: repos.NewTrainingProgramRepo(db, log),
		Resource:        repos.NewResourceRepo(db, log),
	}
}
