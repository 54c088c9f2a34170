package learning

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/yungbote/careerhub-backend/internal/domain"
	"github.com/yungbote/careerhub-backend/internal/platform/logger"
)

type AcademicModuleRepo interface {
	Create(ctx context.Context, tx *gorm.DB, m *types.AcademicModule) (*types.AcademicModule, error)
	GetForUser(ctx context.Context, tx *gorm.DB, userID, id uuid.UUID) (*types.AcademicModule, error)
	ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.AcademicModule, error)
	CountByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (int64, error)
	UpdateForUser(ctx context.Context, tx *gorm.DB, userID, id uuid.UUID, updates map[string]any) (*types.AcademicModule, error)
	DeleteForUser(ctx context.Context, tx *gorm.DB, userID, id uuid.UUID) error
	DeleteByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) error
}

type academicModuleRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewAcademicModuleRepo(db *gorm.DB, baseLog *logger.Logger) AcademicModuleRepo {
	return &academicModuleRepo{db: db, log: baseLog.With("repo", "AcademicModuleRepo")}
}

func (r *academicModuleRepo) Create(ctx context.Context, tx *gorm.DB, m *types.AcademicModule) (*types.AcademicModule, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if err := t.WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return m, nil
}

func (r *academicModuleRepo) GetForUser(ctx context.Context, tx *gorm.DB, userID, id uuid.UUID) (*types.AcademicModule, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if userID == uuid.Nil || id == uuid.Nil {
		return nil, nil
	}
	var row types.AcademicModule
	if err := t.WithContext(ctx).
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

func (r *academicModuleRepo) ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.AcademicModule, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var rows []*types.AcademicModule
	if err := t.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *academicModuleRepo) CountByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (int64, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var count int64
	if err := t.WithContext(ctx).
		Model(&types.AcademicModule{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *academicModuleRepo) UpdateForUser(ctx context.Context, tx *gorm.DB, userID, id uuid.UUID, updates map[string]any) (*types.AcademicModule, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if len(updates) > 0 {
		if err := t.WithContext(ctx).
			Model(&types.AcademicModule{}).
			Where("id = ? AND user_id = ?", id, userID).
			Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return r.GetForUser(ctx, t, userID, id)
}

func (r *academicModuleRepo) DeleteForUser(ctx context.Context, tx *gorm.DB, userID, id uuid.UUID) error {
	t := tx
	if t == nil {
		t = r.db
	}
	return t.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&types.AcademicModule{}).Error
}

func (r *academicModuleRepo) DeleteByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) error {
	t := tx
	if t == nil {
		t = r.db
	}
	return t.WithContext(ctx).Where("user_id = ?", userID).Delete(&types.AcademicModule{}).Error
}
