package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/careerhub-backend/internal/platform/logger"
	"github.com/yungbote/careerhub-backend/internal/services"
)

type Services struct {
	Auth            services.AuthService
	Career          services.CareerService
	Opportunity     services.OpportunityService
	Bookmark        services.BookmarkService
	Application     services.ApplicationService
	Resource        services.ResourceService
	TrainingProgram services.TrainingProgramService
	AcademicModule  services.AcademicModuleService
	Goal            services.GoalService
	Profile         services.ProfileService
	Progress        services.ProgressService
	Dashboard       services.DashboardService
	Admin           services.AdminService
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, r Repos) Services {
	log.Info("Wiring services...")
	return Services{
		Auth:            services.NewAuthService(db, log, r.User, cfg.BcryptCost),
		Career:          services.NewCareerService(db, log, r.Career),
		Opportunity:     services.NewOpportunityService(db, log, r.Opportunity, r.Saved, r.Application),
		Bookmark:        services.NewBookmarkService(db, log, r.Opportunity, r.Saved),
		Application:     services.NewApplicationService(db, log, r.Opportunity, r.Application),
		Resource:        services.NewResourceService(db, log, r.Resource),
		TrainingProgram: services.NewTrainingProgramService(db, log, r.TrainingProgram),
		AcademicModule:  services.NewAcademicModuleService(db, log, r.AcademicModule),
		Goal:            services.NewGoalService(db, log, r.Goal),
		Profile:         services.NewProfileService(db, log, r.User, r.Profile, r.Progress),
		Progress:        services.NewProgressService(db, log, r.Progress),
		Dashboard: services.NewDashboardService(db, log, services.DashboardDeps{
			UserRepo:     r.User,
			CareerRepo:   r.Career,
			OppRepo:      r.Opportunity,
			ResourceRepo: r.Resource,
			GoalRepo:     r.Goal,
			SavedRepo:    r.Saved,
			AppRepo:      r.Application,
			ProgressRepo: r.Progress,
			ModuleRepo:   r.AcademicModule,
		}),
		Admin: services.NewAdminService(db, log, services.AdminDeps{
			UserRepo:     r.User,
			ProfileRepo:  r.Profile,
			GoalRepo:     r.Goal,
			ProgressRepo: r.Progress,
			ModuleRepo:   r.AcademicModule,
			SavedRepo:    r.Saved,
			AppRepo:      r.Application,
		}),
	}
}
