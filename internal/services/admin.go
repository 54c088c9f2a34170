package services

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/careerhub-backend/internal/data/repos"
	types "github.com/yungbote/careerhub-backend/internal/domain"
	"github.com/yungbote/careerhub-backend/internal/platform/logger"
)

type StudentSummary struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	YearLevel int    `json:"yearLevel"`
	Course    string `json:"course"`
	AvatarURL string `json:"avatarUrl"`
}

// StudentProfileView flattens the profile fields next to a user summary. The
// profile is nil for students who never filled one in.
type StudentProfileView struct {
	*types.Profile
	User StudentSummary `json:"user"`
}

type StudentAnalyticsStats struct {
	TotalGoals        int     `json:"totalGoals"`
	CompletedGoals    int     `json:"completedGoals"`
	InProgressGoals   int     `json:"inProgressGoals"`
	TotalSkills       int     `json:"totalSkills"`
	AverageSkillLevel float64 `json:"averageSkillLevel"`
}

type StudentAnalytics struct {
	User            *types.User             `json:"user"`
	Profile         *types.Profile          `json:"profile"`
	Goals           []*types.Goal           `json:"goals"`
	ProgressRecords []*types.ProgressRecord `json:"progressRecords"`
	Stats           StudentAnalyticsStats   `json:"stats"`
}

type AdminService interface {
	ListStudents(ctx context.Context) ([]*types.User, error)
	// DeleteStudent removes the student and everything they own.
	DeleteStudent(ctx context.Context, studentID uuid.UUID) error
	StudentProfile(ctx context.Context, studentID uuid.UUID) (*StudentProfileView, error)
	StudentAnalytics(ctx context.Context, studentID uuid.UUID) (*StudentAnalytics, error)
}

type adminService struct {
	db           *gorm.DB
	log          *logger.Logger
	userRepo     repos.UserRepo
	profileRepo  repos.ProfileRepo
	goalRepo     repos.GoalRepo
	progressRepo repos.ProgressRecordRepo
	moduleRepo   repos.AcademicModuleRepo
	savedRepo    repos.SavedOpportunityRepo
	appRepo      repos.ApplicationRepo
}

type AdminDeps struct {
	UserRepo     repos.UserRepo
	ProfileRepo  repos.ProfileRepo
	GoalRepo     repos.GoalRepo
	ProgressRepo repos.ProgressRecordRepo
	ModuleRepo   repos.AcademicModuleRepo
	SavedRepo    repos.SavedOpportunityRepo
	AppRepo      repos.ApplicationRepo
}

func NewAdminService(db *gorm.DB, log *logger.Logger, deps AdminDeps) AdminService {
	return &adminService{
		db:           db,
		log:          log.With("service", "AdminService"),
		userRepo:     deps.UserRepo,
		profileRepo:  deps.ProfileRepo,
		goalRepo:     deps.GoalRepo,
		progressRepo: deps.ProgressRepo,
		moduleRepo:   deps.ModuleRepo,
		savedRepo:    deps.SavedRepo,
		appRepo:      deps.AppRepo,
	}
}

func (as *adminService) ListStudents(ctx context.Context) ([]*types.User, error) {
	return as.userRepo.ListByRole(ctx, nil, types.RoleStudent)
}

func (as *adminService) student(ctx context.Context, tx *gorm.DB, studentID uuid.UUID) (*types.User, error) {
	u, err := as.userRepo.GetByID(ctx, tx, studentID)
	if err != nil {
		return nil, err
	}
	if u == nil || u.Role != types.RoleStudent {
		return nil, errStudentNotFound
	}
	return u, nil
}

func (as *adminService) DeleteStudent(ctx context.Context, studentID uuid.UUID) error {
	err := as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := as.student(ctx, tx, studentID); err != nil {
			return err
		}
		steps := []func(context.Context, *gorm.DB, uuid.UUID) error{
			as.appRepo.DeleteByUser,
			as.savedRepo.DeleteByUser,
			as.progressRepo.DeleteByUser,
			as.moduleRepo.DeleteByUser,
			as.goalRepo.DeleteByUser,
			as.profileRepo.DeleteByUserID,
			as.userRepo.Delete,
		}
		for _, step := range steps {
			if err := step(ctx, tx, studentID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	as.log.Info("Deleted student", "student_id", studentID.String())
	return nil
}

func (as *adminService) StudentProfile(ctx context.Context, studentID uuid.UUID) (*StudentProfileView, error) {
	u, err := as.student(ctx, nil, studentID)
	if err != nil {
		return nil, err
	}
	p, err := as.profileRepo.GetByUserID(ctx, nil, studentID)
	if err != nil {
		return nil, err
	}
	return &StudentProfileView{
		Profile: p,
		User: StudentSummary{
			Name:      u.Name,
			Email:     u.Email,
			YearLevel: u.YearLevel,
			Course:    u.Course,
			AvatarURL: u.AvatarURL,
		},
	}, nil
}

func (as *adminService) StudentAnalytics(ctx context.Context, studentID uuid.UUID) (*StudentAnalytics, error) {
	u, err := as.student(ctx, nil, studentID)
	if err != nil {
		return nil, err
	}
	p, err := as.profileRepo.GetByUserID(ctx, nil, studentID)
	if err != nil {
		return nil, err
	}
	goals, err := as.goalRepo.ListByUser(ctx, nil, studentID, 0)
	if err != nil {
		return nil, err
	}
	records, err := as.progressRepo.ListByUser(ctx, nil, studentID)
	if err != nil {
		return nil, err
	}
	latest := types.LatestPerSkill(records)

	stats := StudentAnalyticsStats{
		TotalGoals:        len(goals),
		AverageSkillLevel: types.AverageLevel(latest),
	}
	for _, g := range goals {
		switch g.Status {
		case types.GoalCompleted:
			stats.CompletedGoals++
		case types.GoalInProgress:
			stats.InProgressGoals++
		}
	}
	if p != nil {
		stats.TotalSkills = len(p.Skills)
	}

	return &StudentAnalytics{
		User:            u,
		Profile:         p,
		Goals:           goals,
		ProgressRecords: latest,
		Stats:           stats,
	}, nil
}
