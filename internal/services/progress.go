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

type ProgressService interface {
	// SkillLevels returns the latest level for each skill the user tracks.
	SkillLevels(ctx context.Context, userID uuid.UUID) ([]types.SkillLevel, error)
	RecordLevel(ctx context.Context, userID uuid.UUID, skillName string, level Number) error
}

type progressService struct {
	db           *gorm.DB
	log          *logger.Logger
	progressRepo repos.ProgressRecordRepo
}

func NewProgressService(db *gorm.DB, log *logger.Logger, progressRepo repos.ProgressRecordRepo) ProgressService {
	return &progressService{db: db, log: log.With("service", "ProgressService"), progressRepo: progressRepo}
}

func (ps *progressService) SkillLevels(ctx context.Context, userID uuid.UUID) ([]types.SkillLevel, error) {
	rows, err := ps.progressRepo.ListByUser(ctx, nil, userID)
	if err != nil {
		return nil, err
	}
	latest := types.LatestPerSkill(rows)
	out := make([]types.SkillLevel, 0, len(latest))
	for _, r := range latest {
		out = append(out, types.SkillLevel{SkillName: r.SkillName, Level: r.Level})
	}
	return out, nil
}

func (ps *progressService) RecordLevel(ctx context.Context, userID uuid.UUID, skillName string, level Number) error {
	skillName = strings.TrimSpace(skillName)
	if skillName == "" {
		return errInvalidRequest
	}
	if !level.Valid || level.Int() < 0 || level.Int() > 100 {
		return errInvalidLevel
	}
	_, err := ps.progressRepo.Create(ctx, nil, []*types.ProgressRecord{{
		UserID:    userID,
		SkillName: skillName,
		Level:     level.Int(),
	}})
	return err
}
