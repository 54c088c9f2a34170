package learning

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/yungbote/careerhub-backend/internal/domain"
	"github.com/yungbote/careerhub-backend/internal/platform/logger"
)

type ProgressRecordRepo interface {
	Create(ctx context.Context, tx *gorm.DB, rows []*types.ProgressRecord) ([]*types.ProgressRecord, error)
	ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.ProgressRecord, error)
	DeleteByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) error
}

type progressRecordRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewProgressRecordRepo(db *gorm.DB, baseLog *logger.Logger) ProgressRecordRepo {
	return &progressRecordRepo{db: db, log: baseLog.With("repo", "ProgressRecordRepo")}
}

func (r *progressRecordRepo) Create(ctx context.Context, tx *gorm.DB, rows []*types.ProgressRecord) ([]*types.ProgressRecord, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if len(rows) == 0 {
		return []*types.ProgressRecord{}, nil
	}
	if err := t.WithContext(ctx).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// ListByUser returns every record for the user, newest first.
func (r *progressRecordRepo) ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.ProgressRecord, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var rows []*types.ProgressRecord
	if err := t.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("recorded_at DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *progressRecordRepo) DeleteByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) error {
	t := tx
	if t == nil {
		t = r.db
	}
	return t.WithContext(ctx).Where("user_id = ?", userID).Delete(&types.ProgressRecord{}).Error
}
