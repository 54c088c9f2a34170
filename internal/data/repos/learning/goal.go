package learning

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/yungbote/careerhub-backend/internal/domain"
	"github.com/yungbote/careerhub-backend/internal/platform/logger"
)

// GoalCounts is the per-status breakdown used by the dashboards.
type GoalCounts struct {
	Total      int64
	Completed  int64
	InProgress int64
}

type GoalRepo interface {
	Create(ctx context.Context, tx *gorm.DB, goal *types.Goal) (*types.Goal, error)
	GetForUser(ctx context.Context, tx *gorm.DB, userID, id uuid.UUID) (*types.Goal, error)
	ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID, limit int) ([]*types.Goal, error)
	CountsByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (GoalCounts, error)
	UpdateForUser(ctx context.Context, tx *gorm.DB, userID, id uuid.UUID, updates map[string]any) (*types.Goal, error)
	DeleteForUser(ctx context.Context, tx *gorm.DB, userID, id uuid.UUID) error
	DeleteByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) error
}

type goalRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewGoalRepo(db *gorm.DB, baseLog *logger.Logger) GoalRepo {
	return &goalRepo{db: db, log: baseLog.With("repo", "GoalRepo")}
}

func (r *goalRepo) Create(ctx context.Context, tx *gorm.DB, goal *types.Goal) (*types.Goal, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if err := t.WithContext(ctx).Create(goal).Error; err != nil {
		return nil, err
	}
	return goal, nil
}

func (r *goalRepo) GetForUser(ctx context.Context, tx *gorm.DB, userID, id uuid.UUID) (*types.Goal, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if userID == uuid.Nil || id == uuid.Nil {
		return nil, nil
	}
	var row types.Goal
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

// ListByUser returns the user's goals newest first. limit <= 0 means no limit.
func (r *goalRepo) ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID, limit int) ([]*types.Goal, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	q := t.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	var rows []*types.Goal
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *goalRepo) CountsByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (GoalCounts, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var rows []struct {
		Status string
		N      int64
	}
	if err := t.WithContext(ctx).
		Model(&types.Goal{}).
		Select("status, COUNT(*) AS n").
		Where("user_id = ?", userID).
		Group("status").
		Scan(&rows).Error; err != nil {
		return GoalCounts{}, err
	}
	var out GoalCounts
	for _, row := range rows {
		out.Total += row.N
		switch row.Status {
		case types.GoalCompleted:
			out.Completed += row.N
		case types.GoalInProgress:
			out.InProgress += row.N
		}
	}
	return out, nil
}

func (r *goalRepo) UpdateForUser(ctx context.Context, tx *gorm.DB, userID, id uuid.UUID, updates map[string]any) (*types.Goal, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if len(updates) > 0 {
		if err := t.WithContext(ctx).
			Model(&types.Goal{}).
			Where("id = ? AND user_id = ?", id, userID).
			Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return r.GetForUser(ctx, t, userID, id)
}

func (r *goalRepo) DeleteForUser(ctx context.Context, tx *gorm.DB, userID, id uuid.UUID) error {
	t := tx
	if t == nil {
		t = r.db
	}
	return t.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&types.Goal{}).Error
}

func (r *goalRepo) DeleteByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) error {
	t := tx
	if t == nil {
		t = r.db
	}
	return t.WithContext(ctx).Where("user_id = ?", userID).Delete(&types.Goal{}).Error
}
