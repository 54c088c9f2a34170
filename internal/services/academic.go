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

type AcademicModuleInput struct {
	Code     *string `json:"code"`
	Name     *string `json:"name"`
	Semester *string `json:"semester"`
	Credits  Number  `json:"credits"`
	Grade    *string `json:"grade"`
	Status   *string `json:"status"`
}

func (in AcademicModuleInput) updates() map[string]any {
	u := map[string]any{}
	if in.Code != nil {
		u["code"] = strings.TrimSpace(*in.Code)
	}
	if in.Name != nil {
		u["name"] = strings.TrimSpace(*in.Name)
	}
	if in.Semester != nil {
		u["semester"] = strings.TrimSpace(*in.Semester)
	}
	if in.Credits.Valid {
		u["credits"] = in.Credits.Int()
	}
	if in.Grade != nil {
		u["grade"] = strings.TrimSpace(*in.Grade)
	}
	if in.Status != nil {
		u["status"] = strings.TrimSpace(*in.Status)
	}
	return u
}

type AcademicModuleService interface {
	List(ctx context.Context, userID uuid.UUID) ([]*types.AcademicModule, error)
	Create(ctx context.Context, userID uuid.UUID, in AcademicModuleInput) (*types.AcademicModule, error)
	Update(ctx context.Context, userID, id uuid.UUID, in AcademicModuleInput) (*types.AcademicModule, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type academicModuleService struct {
	db         *gorm.DB
	log        *logger.Logger
	moduleRepo repos.AcademicModuleRepo
}

func NewAcademicModuleService(db *gorm.DB, log *logger.Logger, moduleRepo repos.AcademicModuleRepo) AcademicModuleService {
	return &academicModuleService{db: db, log: log.With("service", "AcademicModuleService"), moduleRepo: moduleRepo}
}

func (ms *academicModuleService) List(ctx context.Context, userID uuid.UUID) ([]*types.AcademicModule, error) {
	return ms.moduleRepo.ListByUser(ctx, nil, userID)
}

func (ms *academicModuleService) Create(ctx context.Context, userID uuid.UUID, in AcademicModuleInput) (*types.AcademicModule, error) {
	name := trimPtr(in.Name)
	if name == "" {
		return nil, errInvalidRequest
	}
	m := &types.AcademicModule{
		UserID:   userID,
		Code:     trimPtr(in.Code),
		Name:     name,
		Semester: trimPtr(in.Semester),
		Grade:    trimPtr(in.Grade),
		Status:   trimPtr(in.Status),
	}
	if in.Credits.Valid {
		m.Credits = in.Credits.Int()
	}
	return ms.moduleRepo.Create(ctx, nil, m)
}

func (ms *academicModuleService) Update(ctx context.Context, userID, id uuid.UUID, in AcademicModuleInput) (*types.AcademicModule, error) {
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		return nil, errInvalidRequest
	}
	m, err := ms.moduleRepo.UpdateForUser(ctx, nil, userID, id, in.updates())
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, errModuleNotFound
	}
	return m, nil
}

func (ms *academicModuleService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return ms.moduleRepo.DeleteForUser(ctx, nil, userID, id)
}
