package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/careerhub-backend/internal/data/repos"
	types "github.com/yungbote/careerhub-backend/internal/domain"
	"github.com/yungbote/careerhub-backend/internal/platform/logger"
)

type ApplicationInput struct {
	ProfilePictureURL *string `json:"profilePictureUrl"`
	ResumeURL         *string `json:"resumeUrl"`
	CoverLetter       *string `json:"coverLetter"`
}

func (in ApplicationInput) updates() map[string]any {
	u := map[string]any{}
	if in.ProfilePictureURL != nil {
		u["profile_picture_url"] = strings.TrimSpace(*in.ProfilePictureURL)
	}
	if in.ResumeURL != nil {
		u["resume_url"] = strings.TrimSpace(*in.ResumeURL)
	}
	if in.CoverLetter != nil {
		u["cover_letter"] = *in.CoverLetter
	}
	return u
}

type ApplicationService interface {
	Apply(ctx context.Context, userID, opportunityID uuid.UUID, in ApplicationInput) (*types.Application, error)
	ListMine(ctx context.Context, userID uuid.UUID) ([]*types.Application, error)
	Update(ctx context.Context, userID, id uuid.UUID, in ApplicationInput) (*types.Application, error)
	Withdraw(ctx context.Context, userID, id uuid.UUID) error
}

type applicationService struct {
	db      *gorm.DB
	log     *logger.Logger
	oppRepo repos.OpportunityRepo
	appRepo repos.ApplicationRepo
}

func NewApplicationService(db *gorm.DB, log *logger.Logger, oppRepo repos.OpportunityRepo, appRepo repos.ApplicationRepo) ApplicationService {
	return &applicationService{
		db:      db,
		log:     log.With("service", "ApplicationService"),
		oppRepo: oppRepo,
		appRepo: appRepo,
	}
}

func (as *applicationService) Apply(ctx context.Context, userID, opportunityID uuid.UUID, in ApplicationInput) (*types.Application, error) {
	resume := trimPtr(in.ResumeURL)
	if resume == "" {
		return nil, errInvalidRequest
	}

	var app *types.Application
	err := as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		opp, err := as.oppRepo.GetByID(ctx, tx, opportunityID)
		if err != nil {
			return err
		}
		if opp == nil {
			return errOpportunityNotFound
		}
		exists, err := as.appRepo.Exists(ctx, tx, userID, opportunityID)
		if err != nil {
			return err
		}
		if exists {
			return errAlreadyApplied
		}
		app, err = as.appRepo.Create(ctx, tx, &types.Application{
			UserID:            userID,
			OpportunityID:     opportunityID,
			ProfilePictureURL: trimPtr(in.ProfilePictureURL),
			ResumeURL:         resume,
			CoverLetter:       trimPtr(in.CoverLetter),
			Status:            types.ApplicationStatusPending,
		})
		if isDuplicate(err) {
			return errAlreadyApplied
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	as.log.Info("Application submitted", "user_id", userID.String(), "opportunity_id", opportunityID.String())
	return app, nil
}

func (as *applicationService) ListMine(ctx context.Context, userID uuid.UUID) ([]*types.Application, error) {
	return as.appRepo.ListByUser(ctx, nil, userID)
}

func (as *applicationService) Update(ctx context.Context, userID, id uuid.UUID, in ApplicationInput) (*types.Application, error) {
	if in.ResumeURL != nil && strings.TrimSpace(*in.ResumeURL) == "" {
		return nil, errInvalidRequest
	}
	app, err := as.appRepo.UpdateForUser(ctx, nil, userID, id, in.updates())
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, errApplicationNotFound
	}
	return app, nil
}

func (as *applicationService) Withdraw(ctx context.Context, userID, id uuid.UUID) error {
	removed, err := as.appRepo.DeleteForUser(ctx, nil, userID, id)
	if err != nil {
		return err
	}
	if !removed {
		return errApplicationNotFound
	}
	return nil
}
