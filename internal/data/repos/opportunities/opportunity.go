package opportunities

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/yungbote/careerhub-backend/internal/domain"
	"github.com/yungbote/careerhub-backend/internal/platform/logger"
)

type OpportunityRepo interface {
	Create(ctx context.Context, tx *gorm.DB, opp *types.Opportunity) (*types.Opportunity, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Opportunity, error)
	GetByTitle(ctx context.Context, tx *gorm.DB, title, company string) (*types.Opportunity, error)
	ListActive(ctx context.Context, tx *gorm.DB, limit int) ([]*types.Opportunity, error)
	Update(ctx context.Context, tx *gorm.DB, id uuid.UUID, updates map[string]any) (*types.Opportunity, error)
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
	Count(ctx context.Context, tx *gorm.DB) (int64, error)
}

type opportunityRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewOpportunityRepo(db *gorm.DB, baseLog *logger.Logger) OpportunityRepo {
	return &opportunityRepo{db: db, log: baseLog.With("repo", "OpportunityRepo")}
}

func (r *opportunityRepo) Create(ctx context.Context, tx *gorm.DB, opp *types.Opportunity) (*types.Opportunity, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Create(opp).Error; err != nil {
		return nil, err
	}
	return opp, nil
}

func (r *opportunityRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Opportunity, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if id == uuid.Nil {
		return nil, nil
	}
	var row types.Opportunity
	if err := transaction.WithContext(ctx).Where("id = ?", id).Limit(1).Find(&row).Error; err != nil {
		return nil, err
	}
	if row.ID == uuid.Nil {
		return nil, nil
	}
	return &row, nil
}

func (r *opportunityRepo) GetByTitle(ctx context.Context, tx *gorm.DB, title, company string) (*types.Opportunity, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var row types.Opportunity
	if err := transaction.WithContext(ctx).
		Where("title = ? AND company = ?", title, company).
		Limit(1).
		Find(&row).Error; err != nil {
		return nil, err
	}
	if row.ID == uuid.Nil {
		return nil, nil
	}
	return &row, nil
}

// ListActive returns active opportunities newest first. limit <= 0 means no limit.
func (r *opportunityRepo) ListActive(ctx context.Context, tx *gorm.DB, limit int) ([]*types.Opportunity, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	q := transaction.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	var results []*types.Opportunity
	if err := q.Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *opportunityRepo) Update(ctx context.Context, tx *gorm.DB, id uuid.UUID, updates map[string]any) (*types.Opportunity, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if len(updates) > 0 {
		if err := transaction.WithContext(ctx).
			Model(&types.Opportunity{}).
			Where("id = ?", id).
			Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return r.GetByID(ctx, transaction, id)
}

func (r *opportunityRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).Where("id = ?", id).Delete(&types.Opportunity{}).Error
}

func (r *opportunityRepo) Count(ctx context.Context, tx *gorm.DB) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var count int64
	if err := transaction.WithContext(ctx).Model(&types.Opportunity{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
