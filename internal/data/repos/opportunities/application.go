package opportunities

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/yungbote/careerhub-backend/internal/domain"
	"github.com/yungbote/careerhub-backend/internal/platform/logger"
)

type ApplicationRepo interface {
	Create(ctx context.Context, tx *gorm.DB, row *types.Application) (*types.Application, error)
	Exists(ctx context.Context, tx *gorm.DB, userID, opportunityID uuid.UUID) (bool, error)
	GetForUser(ctx context.Context, tx *gorm.DB, userID, id uuid.UUID) (*types.Application, error)
	ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Application, error)
	CountByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (int64, error)
	UpdateForUser(ctx context.Context, tx *gorm.DB, userID, id uuid.UUID, updates map[string]any) (*types.Application, error)
	DeleteForUser(ctx context.Context, tx *gorm.DB, userID, id uuid.UUID) (bool, error)
	DeleteByOpportunity(ctx context.Context, tx *gorm.DB, opportunityID uuid.UUID) error
	DeleteByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) error
}

type applicationRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewApplicationRepo(db *gorm.DB, baseLog *logger.Logger) ApplicationRepo {
	return &applicationRepo{db: db, log: baseLog.With("repo", "ApplicationRepo")}
}

func (r *applicationRepo) Create(ctx context.Context, tx *gorm.DB, row *types.Application) (*types.Application, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if err := t.WithContext(ctx).Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

func (r *applicationRepo) Exists(ctx context.Context, tx *gorm.DB, userID, opportunityID uuid.UUID) (bool, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var count int64
	if err := t.WithContext(ctx).
		Model(&types.Application{}).
		Where("user_id = ? AND opportunity_id = ?", userID, opportunityID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *applicationRepo) GetForUser(ctx context.Context, tx *gorm.DB, userID, id uuid.UUID) (*types.Application, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if userID == uuid.Nil || id == uuid.Nil {
		return nil, nil
	}
	var row types.Application
	if err := t.WithContext(ctx).
		Preload("Opportunity").
		Where("id = ? AND user_id = ?", id, userID).
		Limit(1).
		Find(&row).Error; err != nil {
		return nil, err
	}
	if row.ID == uuid.Nil {
		return nil, nil
	}
	return &row, nil
}

func (r *applicationRepo) ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Application, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var rows []*types.Application
	if err := t.WithContext(ctx).
		Preload("Opportunity").
		Where("user_id = ?", userID).
		Order("applied_at DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *applicationRepo) CountByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (int64, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var count int64
	if err := t.WithContext(ctx).
		Model(&types.Application{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *applicationRepo) UpdateForUser(ctx context.Context, tx *gorm.DB, userID, id uuid.UUID, updates map[string]any) (*types.Application, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if len(updates) > 0 {
		if err := t.WithContext(ctx).
			Model(&types.Application{}).
			Where("id = ? AND user_id = ?", id, userID).
			Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return r.GetForUser(ctx, t, userID, id)
}

func (r *applicationRepo) DeleteForUser(ctx context.Context, tx *gorm.DB, userID, id uuid.UUID) (bool, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	res := t.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&types.Application{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *applicationRepo) DeleteByOpportunity(ctx context.Context, tx *gorm.DB, opportunityID uuid.UUID) error {
	t := tx
	if t == nil {
		t = r.db
	}
	return t.WithContext(ctx).Where("opportunity_id = ?", opportunityID).Delete(&types.Application{}).Error
}

func (r *applicationRepo) DeleteByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) error {
	t := tx
	if t == nil {
		t = r.db
	}
	return t.WithContext(ctx).Where("user_id = ?", userID).Delete(&types.Application{}).Error
}
