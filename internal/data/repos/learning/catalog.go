package learning

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/yungbote/careerhub-backend/internal/domain"
	"github.com/yungbote/careerhub-backend/internal/platform/logger"
)

type TrainingProgramRepo interface {
	Create(ctx context.Context, tx *gorm.DB, p *types.TrainingProgram) (*types.TrainingProgram, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.TrainingProgram, error)
	GetByTitle(ctx context.Context, tx *gorm.DB, title string) (*types.TrainingProgram, error)
	ListActive(ctx context.Context, tx *gorm.DB) ([]*types.TrainingProgram, error)
	Update(ctx context.Context, tx *gorm.DB, id uuid.UUID, updates map[string]any) (*types.TrainingProgram, error)
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type trainingProgramRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewTrainingProgramRepo(db *gorm.DB, baseLog *logger.Logger) TrainingProgramRepo {
	return &trainingProgramRepo{db: db, log: baseLog.With("repo", "TrainingProgramRepo")}
}

func (r *trainingProgramRepo) Create(ctx context.Context, tx *gorm.DB, p *types.TrainingProgram) (*types.TrainingProgram, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if err := t.WithContext(ctx).Create(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

func (r *trainingProgramRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.TrainingProgram, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if id == uuid.Nil {
		return nil, nil
	}
	var row types.TrainingProgram
	if err := t.WithContext(ctx).Where("id = ?", id).Limit(1).Find(&row).Error; err != nil {
		return nil, err
	}
	if row.ID == uuid.Nil {
		return nil, nil
	}
	return &row, nil
}

func (r *trainingProgramRepo) GetByTitle(ctx context.Context, tx *gorm.DB, title string) (*types.TrainingProgram, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var row types.TrainingProgram
	if err := t.WithContext(ctx).Where("title = ?", title).Limit(1).Find(&row).Error; err != nil {
		return nil, err
	}
	if row.ID == uuid.Nil {
		return nil, nil
	}
	return &row, nil
}

func (r *trainingProgramRepo) ListActive(ctx context.Context, tx *gorm.DB) ([]*types.TrainingProgram, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var rows []*types.TrainingProgram
	if err := t.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *trainingProgramRepo) Update(ctx context.Context, tx *gorm.DB, id uuid.UUID, updates map[string]any) (*types.TrainingProgram, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if len(updates) > 0 {
		if err := t.WithContext(ctx).
			Model(&types.TrainingProgram{}).
			Where("id = ?", id).
			Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return r.GetByID(ctx, t, id)
}

func (r *trainingProgramRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	t := tx
	if t == nil {
		t = r.db
	}
	return t.WithContext(ctx).Where("id = ?", id).Delete(&types.TrainingProgram{}).Error
}

type ResourceRepo interface {
	Create(ctx context.Context, tx *gorm.DB, res *types.Resource) (*types.Resource, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Resource, error)
	GetByTitle(ctx context.Context, tx *gorm.DB, title string) (*types.Resource, error)
	List(ctx context.Context, tx *gorm.DB) ([]*types.Resource, error)
	Update(ctx context.Context, tx *gorm.DB, id uuid.UUID, updates map[string]any) (*types.Resource, error)
	IncrementDownloads(ctx context.Context, tx *gorm.DB, id uuid.UUID) (bool, error)
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
	Count(ctx context.Context, tx *gorm.DB) (int64, error)
}

type resourceRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewResourceRepo(db *gorm.DB, baseLog *logger.Logger) ResourceRepo {
	return &resourceRepo{db: db, log: baseLog.With("repo", "ResourceRepo")}
}

func (r *resourceRepo) Create(ctx context.Context, tx *gorm.DB, res *types.Resource) (*types.Resource, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if err := t.WithContext(ctx).Create(res).Error; err != nil {
		return nil, err
	}
	return res, nil
}

func (r *resourceRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Resource, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if id == uuid.Nil {
		return nil, nil
	}
	var row types.Resource
	if err := t.WithContext(ctx).Where("id = ?", id).Limit(1).Find(&row).Error; err != nil {
		return nil, err
	}
	if row.ID == uuid.Nil {
		return nil, nil
	}
	return &row, nil
}

func (r *resourceRepo) GetByTitle(ctx context.Context, tx *gorm.DB, title string) (*types.Resource, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var row types.Resource
	if err := t.WithContext(ctx).Where("title = ?", title).Limit(1).Find(&row).Error; err != nil {
		return nil, err
	}
	if row.ID == uuid.Nil {
		return nil, nil
	}
	return &row, nil
}

func (r *resourceRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.Resource, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var rows []*types.Resource
	if err := t.WithContext(ctx).Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *resourceRepo) Update(ctx context.Context, tx *gorm.DB, id uuid.UUID, updates map[string]any) (*types.Resource, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if len(updates) > 0 {
		if err := t.WithContext(ctx).
			Model(&types.Resource{}).
			Where("id = ?", id).
			Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return r.GetByID(ctx, t, id)
}

// IncrementDownloads bumps download_count in a single statement and reports
// whether the resource exists.
func (r *resourceRepo) IncrementDownloads(ctx context.Context, tx *gorm.DB, id uuid.UUID) (bool, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	res := t.WithContext(ctx).
		Model(&types.Resource{}).
		Where("id = ?", id).
		UpdateColumn("download_count", gorm.Expr("download_count + ?", 1))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *resourceRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	t := tx
	if t == nil {
		t = r.db
	}
	return t.WithContext(ctx).Where("id = ?", id).Delete(&types.Resource{}).Error
}

func (r *resourceRepo) Count(ctx context.Context, tx *gorm.DB) (int64, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var count int64
	if err := t.WithContext(ctx).Model(&types.Resource{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
