package services

import (
	"context"
	"math"
	"sort"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/yungbote/careerhub-backend/internal/data/repos"
	types "github.com/yungbote/careerhub-backend/internal/domain"
	"github.com/yungbote/careerhub-backend/internal/platform/logger"
)

type AdminStats struct {
	TotalStudents      int64 `json:"totalStudents"`
	TotalCareers       int64 `json:"totalCareers"`
	TotalOpportunities int64 `json:"totalOpportunities"`
	TotalResources     int64 `json:"totalResources"`
}

type StudentStats struct {
	TotalGoals         int64 `json:"totalGoals"`
	CompletedGoals     int64 `json:"completedGoals"`
	InProgressGoals    int64 `json:"inProgressGoals"`
	SavedOpportunities int64 `json:"savedOpportunities"`
	Applications       int64 `json:"applications"`
	SkillsTracked      int   `json:"skillsTracked"`
	AverageSkillLevel  int   `json:"averageSkillLevel"`
	AcademicModules    int64 `json:"academicModules"`
}

// Ranking places a student among all students by GPA. Rank and Percentile are
// zero when the student has no GPA.
type Ranking struct {
	Rank          int      `json:"rank"`
	TotalStudents int      `json:"totalStudents"`
	Percentile    int      `json:"percentile"`
	GPA           *float64 `json:"gpa"`
}

type DashboardService interface {
	// Stats returns AdminStats for admins and StudentStats for everyone else.
	Stats(ctx context.Context, userID uuid.UUID) (any, error)
	AdminStats(ctx context.Context) (*AdminStats, error)
	StudentStats(ctx context.Context, userID uuid.UUID) (*StudentStats, error)
	Ranking(ctx context.Context, userID uuid.UUID) (*Ranking, error)
}

type dashboardService struct {
	db           *gorm.DB
	log          *logger.Logger
	userRepo     repos.UserRepo
	careerRepo   repos.CareerRepo
	oppRepo      repos.OpportunityRepo
	resourceRepo repos.ResourceRepo
	goalRepo     repos.GoalRepo
	savedRepo    repos.SavedOpportunityRepo
	appRepo      repos.ApplicationRepo
	progressRepo repos.ProgressRecordRepo
	moduleRepo   repos.AcademicModuleRepo
}

type DashboardDeps struct {
	UserRepo     repos.UserRepo
	CareerRepo   repos.CareerRepo
	OppRepo      repos.OpportunityRepo
	ResourceRepo repos.ResourceRepo
	GoalRepo     repos.GoalRepo
	SavedRepo    repos.SavedOpportunityRepo
	AppRepo      repos.ApplicationRepo
	ProgressRepo repos.ProgressRecordRepo
	ModuleRepo   repos.AcademicModuleRepo
}

func NewDashboardService(db *gorm.DB, log *logger.Logger, deps DashboardDeps) DashboardService {
	return &dashboardService{
		db:           db,
		log:          log.With("service", "DashboardService"),
		userRepo:     deps.UserRepo,
		careerRepo:   deps.CareerRepo,
		oppRepo:      deps.OppRepo,
		resourceRepo: deps.ResourceRepo,
		goalRepo:     deps.GoalRepo,
		savedRepo:    deps.SavedRepo,
		appRepo:      deps.AppRepo,
		progressRepo: deps.ProgressRepo,
		moduleRepo:   deps.ModuleRepo,
	}
}

func (ds *dashboardService) Stats(ctx context.Context, userID uuid.UUID) (any, error) {
	user, err := ds.userRepo.GetByID(ctx, nil, userID)
	if err != nil {
		return nil, err
	}
	if user != nil && user.IsAdmin() {
		return ds.AdminStats(ctx)
	}
	return ds.StudentStats(ctx, userID)
}

func (ds *dashboardService) AdminStats(ctx context.Context) (*AdminStats, error) {
	var out AdminStats
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		out.TotalStudents, err = ds.userRepo.CountByRole(gctx, nil, types.RoleStudent)
		return err
	})
	g.Go(func() (err error) {
		out.TotalCareers, err = ds.careerRepo.Count(gctx, nil)
		return err
	})
	g.Go(func() (err error) {
		out.TotalOpportunities, err = ds.oppRepo.Count(gctx, nil)
		return err
	})
	g.Go(func() (err error) {
		out.TotalResources, err = ds.resourceRepo.Count(gctx, nil)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &out, nil
}

func (ds *dashboardService) StudentStats(ctx context.Context, userID uuid.UUID) (*StudentStats, error) {
	var (
		out    StudentStats
		counts repos.GoalCounts
		latest []*types.ProgressRecord
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		counts, err = ds.goalRepo.CountsByUser(gctx, nil, userID)
		return err
	})
	g.Go(func() (err error) {
		out.SavedOpportunities, err = ds.savedRepo.CountByUser(gctx, nil, userID)
		return err
	})
	g.Go(func() (err error) {
		out.Applications, err = ds.appRepo.CountByUser(gctx, nil, userID)
		return err
	})
	g.Go(func() error {
		rows, err := ds.progressRepo.ListByUser(gctx, nil, userID)
		if err != nil {
			return err
		}
		latest = types.LatestPerSkill(rows)
		return nil
	})
	g.Go(func() (err error) {
		out.AcademicModules, err = ds.moduleRepo.CountByUser(gctx, nil, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out.TotalGoals = counts.Total
	out.CompletedGoals = counts.Completed
	out.InProgressGoals = counts.InProgress
	out.SkillsTracked = len(latest)
	out.AverageSkillLevel = int(math.Round(types.AverageLevel(latest)))
	return &out, nil
}

func (ds *dashboardService) Ranking(ctx context.Context, userID uuid.UUID) (*Ranking, error) {
	rows, err := ds.userRepo.ListStudentGPAs(ctx, nil)
	if err != nil {
		return nil, err
	}
	return rankByGPA(rows, userID), nil
}

// rankByGPA orders graded students by GPA descending. Equal GPAs share the
// better rank; students without a GPA are not ranked.
func rankByGPA(rows []repos.StudentGPA, userID uuid.UUID) *Ranking {
	out := &Ranking{TotalStudents: len(rows)}

	var mine *float64
	gpas := make([]float64, 0, len(rows))
	for _, r := range rows {
		if r.UserID == userID {
			mine = r.GPA
		}
		if r.GPA != nil {
			gpas = append(gpas, *r.GPA)
		}
	}
	out.GPA = mine
	if mine == nil || out.TotalStudents == 0 {
		return out
	}

	sort.Sort(sort.Reverse(sort.Float64Slice(gpas)))
	above := sort.Search(len(gpas), func(i int) bool { return gpas[i] <= *mine })
	out.Rank = above + 1
	out.Percentile = int(math.Round(float64(out.TotalStudents-out.Rank+1) / float64(out.TotalStudents) * 100))
	return out
}
