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

const recentGoalLimit = 3

type GoalInput struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	Status      *string `json:"status"`
	Progress    Number  `json:"progress"`
	TargetDate  *string `json:"targetDate"`
}

func (in GoalInput) validate() error {
	if in.Status != nil && !types.ValidGoalStatus(strings.TrimSpace(*in.Status)) {
		return errInvalidGoalStatus
	}
	return nil
}

func (in GoalInput) updates() (map[string]any, error) {
	u := map[string]any{}
	if in.Title != nil {
		u["title"] = strings.TrimSpace(*in.Title)
	}
	if in.Description != nil {
		u["description"] = *in.Description
	}
	if in.Category != nil {
		u["category"] = strings.TrimSpace(*in.Category)
	}
	if in.Status != nil {
		u["status"] = strings.TrimSpace(*in.Status)
	}
	if in.Progress.Valid {
		u["progress"] = types.ClampProgress(in.Progress.Int())
	}
	if in.TargetDate != nil {
		d, err := parseDate(*in.TargetDate)
		if err != nil {
			return nil, err
		}
		u["target_date"] = d
	}
	return u, nil
}

type GoalService interface {
	List(ctx context.Context, userID uuid.UUID) ([]*types.Goal, error)
	Recent(ctx context.Context, userID uuid.UUID) ([]*types.Goal, error)
	Create(ctx context.Context, userID uuid.UUID, in GoalInput) (*types.Goal, error)
	Update(ctx context.Context, userID, id uuid.UUID, in GoalInput) (*types.Goal, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type goalService struct {
	db       *gorm.DB
	log      *logger.Logger
	goalRepo repos.GoalRepo
}

func NewGoalService(db *gorm.DB, log *logger.Logger, goalRepo repos.GoalRepo) GoalService {
	return &goalService{db: db, log: log.With("service", "GoalService"), goalRepo: goalRepo}
}

func (gs *goalService) List(ctx context.Context, userID uuid.UUID) ([]*types.Goal, error) {
	return gs.goalRepo.ListByUser(ctx, nil, userID, 0)
}

func (gs *goalService) Recent(ctx context.Context, userID uuid.UUID) ([]*types.Goal, error) {
	return gs.goalRepo.ListByUser(ctx, nil, userID, recentGoalLimit)
}

func (gs *goalService) Create(ctx context.Context, userID uuid.UUID, in GoalInput) (*types.Goal, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	title := trimPtr(in.Title)
	if title == "" {
		return nil, errInvalidRequest
	}
	g := &types.Goal{
		UserID:      userID,
		Title:       title,
		Description: trimPtr(in.Description),
		Category:    trimPtr(in.Category),
		Status:      types.GoalNotStarted,
	}
	if s := trimPtr(in.Status); s != "" {
		g.Status = s
	}
	if in.Progress.Valid {
		g.Progress = types.ClampProgress(in.Progress.Int())
	}
	if in.TargetDate != nil {
		d, err := parseDate(*in.TargetDate)
		if err != nil {
			return nil, err
		}
		g.TargetDate = d
	}
	return gs.goalRepo.Create(ctx, nil, g)
}

func (gs *goalService) Update(ctx context.Context, userID, id uuid.UUID, in GoalInput) (*types.Goal, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	if in.Title != nil && strings.TrimSpace(*in.Title) == "" {
		return nil, errInvalidRequest
	}
	updates, err := in.updates()
	if err != nil {
		return nil, err
	}
	g, err := gs.goalRepo.UpdateForUser(ctx, nil, userID, id, updates)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, errGoalNotFound
	}
	return g, nil
}

func (gs *goalService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return gs.goalRepo.DeleteForUser(ctx, nil, userID, id)
}
