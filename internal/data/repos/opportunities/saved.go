package opportunities

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/yungbote/careerhub-backend/internal/domain"
	"github.com/yungbote/careerhub-backend/internal/platform/logger"
)

type SavedOpportunityRepo interface {
	Create(ctx context.Context, tx *gorm.DB, row *types.SavedOpportunity) (*types.SavedOpportunity, error)
	Exists(ctx context.Context, tx *gorm.DB, userID, opportunityID uuid.UUID) (bool, error)
	ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.SavedOpportunity, error)
	CountByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (int64, error)
	Delete(ctx context.Context, tx *gorm.DB, userID, opportunityID uuid.UUID) error
	DeleteByOpportunity(ctx context.Context, tx *gorm.DB, opportunityID uuid.UUID) error
	DeleteByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) error
}

type savedOpportunityRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSavedOpportunityRepo(db *gorm.DB, baseLog *logger.Logger) SavedOpportunityRepo {
	return &savedOpportunityRepo{db: db, log: baseLog.With("repo", "SavedOpportunityRepo")}
}

func (r *savedOpportunityRepo) Create(ctx context.Context, tx *gorm.DB, row *types.SavedOpportunity) (*types.SavedOpportunity, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if err := t.WithContext(ctx).Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

func (r *savedOpportunityRepo) Exists(ctx context.Context, tx *gorm.DB, userID, opportunityID uuid.UUID) (bool, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var count int64
	if err := t.WithContext(ctx).
		Model(&types.SavedOpportunity{}).
		Where("user_id = ? AND opportunity_id = ?", userID, opportunityID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListByUser preloads the bookmarked opportunity, newest bookmark first.
func (r *savedOpportunityRepo) ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.SavedOpportunity, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var rows []*types.SavedOpportunity
	if err := t.WithContext(ctx).
		Preload("Opportunity").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *savedOpportunityRepo) CountByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (int64, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var count int64
	if err := t.WithContext(ctx).
		Model(&types.SavedOpportunity{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *savedOpportunityRepo) Delete(ctx context.Context, tx *gorm.DB, userID, opportunityID uuid.UUID) error {
	t := tx
	if t == nil {
		t = r.db
	}
	return t.WithContext(ctx).
		Where("user_id = ? AND opportunity_id = ?", userID, opportunityID).
		Delete(&types.SavedOpportunity{}).Error
}

func (r *savedOpportunityRepo) DeleteByOpportunity(ctx context.Context, tx *gorm.DB, opportunityID uuid.UUID) error {
	t := tx
	if t == nil {
		t = r.db
	}
	return t.WithContext(ctx).Where("opportunity_id = ?", opportunityID).Delete(&types.SavedOpportunity{}).Error
}

func (r *savedOpportunityRepo) DeleteByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) error {
	t := tx
	if t == nil {
		t = r.db
	}
	return t.WithContext(ctx).Where("user_id = ?", userID).Delete(&types.SavedOpportunity{}).Error
}
