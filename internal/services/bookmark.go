package services

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/careerhub-backend/internal/data/repos"
	types "github.com/yungbote/careerhub-backend/internal/domain"
	"github.com/yungbote/careerhub-backend/internal/platform/logger"
)

type BookmarkService interface {
	ListSaved(ctx context.Context, userID uuid.UUID) ([]*types.Opportunity, error)
	Save(ctx context.Context, userID, opportunityID uuid.UUID) (*types.SavedOpportunity, error)
	// Unsave succeeds whether or not the bookmark exists.
	Unsave(ctx context.Context, userID, opportunityID uuid.UUID) error
}

type bookmarkService struct {
	db        *gorm.DB
	log       *logger.Logger
	oppRepo   repos.OpportunityRepo
	savedRepo repos.SavedOpportunityRepo
}

func NewBookmarkService(db *gorm.DB, log *logger.Logger, oppRepo repos.OpportunityRepo, savedRepo repos.SavedOpportunityRepo) BookmarkService {
	return &bookmarkService{
		db:        db,
		log:       log.With("service", "BookmarkService"),
		oppRepo:   oppRepo,
		savedRepo: savedRepo,
	}
}

func (bs *bookmarkService) ListSaved(ctx context.Context, userID uuid.UUID) ([]*types.Opportunity, error) {
	rows, err := bs.savedRepo.ListByUser(ctx, nil, userID)
	if err != nil {
		return nil, err
	}
	out := make([]*types.Opportunity, 0, len(rows))
	for _, row := range rows {
		if row.Opportunity != nil {
			out = append(out, row.Opportunity)
		}
	}
	return out, nil
}

func (bs *bookmarkService) Save(ctx context.Context, userID, opportunityID uuid.UUID) (*types.SavedOpportunity, error) {
	var saved *types.SavedOpportunity
	err := bs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		opp, err := bs.oppRepo.GetByID(ctx, tx, opportunityID)
		if err != nil {
			return err
		}
		if opp == nil {
			return errOpportunityNotFound
		}
		exists, err := bs.savedRepo.Exists(ctx, tx, userID, opportunityID)
		if err != nil {
			return err
		}
		if exists {
			return errAlreadySaved
		}
		saved, err = bs.savedRepo.Create(ctx, tx, &types.SavedOpportunity{
			UserID:        userID,
			OpportunityID: opportunityID,
		})
		if isDuplicate(err) {
			return errAlreadySaved
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}

func (bs *bookmarkService) Unsave(ctx context.Context, userID, opportunityID uuid.UUID) error {
	return bs.savedRepo.Delete(ctx, nil, userID, opportunityID)
}
