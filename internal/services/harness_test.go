package services

import (
	"context"
	"testing"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/yungbote/careerhub-backend/internal/data/repos"
	"github.com/yungbote/careerhub-backend/internal/data/repos/testutil"
	"github.com/yungbote/careerhub-backend/internal/platform/logger"
)

type harness struct {
	ctx context.Context
	db  *gorm.DB
	log *logger.Logger

	users    repos.UserRepo
	profiles repos.ProfileRepo
	careers  repos.CareerRepo
	opps     repos.OpportunityRepo
	saved    repos.SavedOpportunityRepo
	apps     repos.ApplicationRepo
	goals    repos.GoalRepo
	progress repos.ProgressRecordRepo
	modules  repos.AcademicModuleRepo
	programs repos.TrainingProgramRepo
	res      repos.ResourceRepo
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	db := testutil.SQLite(t)
	log := testutil.Logger(t)
	return &harness{
		ctx:      context.Background(),
		db:       db,
		log:      log,
		users:    repos.NewUserRepo(db, log),
		profiles: repos.NewProfileRepo(db, log),
		careers:  repos.NewCareerRepo(db, log),
		opps:     repos.NewOpportunityRepo(db, log),
		saved:    repos.NewSavedOpportunityRepo(db, log),
		apps:     repos.NewApplicationRepo(db, log),
		goals:    repos.NewGoalRepo(db, log),
		progress: repos.NewProgressRecordRepo(db, log),
		modules:  repos.NewAcademicModuleRepo(db, log),
		programs: repos.NewTrainingProgramRepo(db, log),
		res:      repos.NewResourceRepo(db, log),
	}
}

func (h *harness) auth() AuthService {
	return NewAuthService(h.db, h.log, h.users, bcrypt.MinCost)
}

func (h *harness) opportunities() OpportunityService {
	return NewOpportunityService(h.db, h.log, h.opps, h.saved, h.apps)
}

func (h *harness) bookmarks() BookmarkService {
	return NewBookmarkService(h.db, h.log, h.opps, h.saved)
}

func (h *harness) applications() ApplicationService {
	return NewApplicationService(h.db, h.log, h.opps, h.apps)
}

func (h *harness) profile() ProfileService {
	return NewProfileService(h.db, h.log, h.users, h.profiles, h.progress)
}

func (h *harness) dashboard() DashboardService {
	return NewDashboardService(h.db, h.log, DashboardDeps{
		UserRepo:     h.users,
		CareerRepo:   h.careers,
		OppRepo:      h.opps,
		ResourceRepo: h.res,
		GoalRepo:     h.goals,
		SavedRepo:    h.saved,
		AppRepo:      h.apps,
		ProgressRepo: h.progress,
		ModuleRepo:   h.modules,
	})
}

func (h *harness) admin() AdminService {
	return NewAdminService(h.db, h.log, AdminDeps{
		UserRepo:     h.users,
		ProfileRepo:  h.profiles,
		GoalRepo:     h.goals,
		ProgressRepo: h.progress,
		ModuleRepo:   h.modules,
		SavedRepo:    h.saved,
		AppRepo:      h.apps,
	})
}

func ptr[T any](v T) *T { return &v }
