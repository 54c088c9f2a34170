package careers

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/yungbote/careerhub-backend/internal/domain"
	"github.com/yungbote/careerhub-backend/internal/platform/logger"
)

type CareerRepo interface {
	Create(ctx context.Context, tx *gorm.DB, career *types.Career) (*types.Career, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Career, error)
	GetByTitle(ctx context.Context, tx *gorm.DB, title string) (*types.Career, error)
	List(ctx context.Context, tx *gorm.DB, limit int) ([]*types.Career, error)
	Update(ctx context.Context, tx *gorm.DB, id uuid.UUID, updates map[string]any) (*types.Career, error)
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
	Count(ctx context.Context, tx *gorm.DB) (int64, error)
}

type careerRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCareerRepo(db *gorm.DB, baseLog *logger.Logger) CareerRepo {
	return &careerRepo{db: db, log: baseLog.With("repo", "CareerRepo")}
}

func (r *careerRepo) Create(ctx context.Context, tx *gorm.DB, career *types.Career) (*types.Career, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Create(career).Error; err != nil {
		return nil, err
	}
	return career, nil
}

func (r *careerRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Career, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if id == uuid.Nil {
		return nil, nil
	}
	var row types.Career
	if err := transaction.WithContext(ctx).Where("id = ?", id).Limit(1).Find(&row).Error; err != nil {
		return nil, err
	}
	if row.ID == uuid.Nil {
		return nil, nil
	}
	return &row, nil
}

func (r *careerRepo) GetByTitle(ctx context.Context, tx *gorm.DB, title string) (*types.Career, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var row types.Career
	if err := transaction.WithContext(ctx).Where("title = ?", title).Limit(1).Find(&row).Error; err != nil {
		return nil, err
	}
	if row.ID == uuid.Nil {
		return nil, nil
	}
	return &row, nil
}

// List returns careers in insertion order. limit <= 0 means no limit.
func (r *careerRepo) List(ctx context.Context, tx *gorm.DB, limit int) ([]*types.Career, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	q := transaction.WithContext(ctx).Order("created_at ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	var results []*types.Career
	if err := q.Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *careerRepo) Update(ctx context.Context, tx *gorm.DB, id uuid.UUID, updates map[string]any) (*types.Career, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if len(updates) > 0 {
		if err := transaction.WithContext(ctx).
			Model(&types.Career{}).
			Where("id = ?", id).
			Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return r.GetByID(ctx, transaction, id)
}

func (r *careerRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).Where("id = ?", id).Delete(&types.Career{}).Error
}

func (r *careerRepo) Count(ctx context.Context, tx *gorm.DB) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var count int64
	if err := transaction.WithContext(ctx).Model(&types.Career{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
