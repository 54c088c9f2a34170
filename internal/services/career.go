package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/yungbote/careerhub-backend/internal/data/repos"
	types "github.com/yungbote/careerhub-backend/internal/domain"
	"github.com/yungbote/careerhub-backend/internal/platform/logger"
)

const recommendedCareerLimit = 3

// CareerInput is shared by create and partial update. Nil fields are left
// untouched on update.
type CareerInput struct {
	Title          *string   `json:"title"`
	Description    *string   `json:"description"`
	Industry       *string   `json:"industry"`
	RequiredSkills *[]string `json:"requiredSkills"`
	SalaryRange    *string   `json:"salaryRange"`
	GrowthOutlook  *string   `json:"growthOutlook"`
}

func (in CareerInput) updates() map[string]any {
	u := map[string]any{}
	if in.Title != nil {
		u["title"] = strings.TrimSpace(*in.Title)
	}
	if in.Description != nil {
		u["description"] = *in.Description
	}
	if in.Industry != nil {
		u["industry"] = strings.TrimSpace(*in.Industry)
	}
	if in.RequiredSkills != nil {
		u["required_skills"] = datatypes.JSONSlice[string](cleanList(*in.RequiredSkills))
	}
	if in.SalaryRange != nil {
		u["salary_range"] = *in.SalaryRange
	}
	if in.GrowthOutlook != nil {
		u["growth_outlook"] = *in.GrowthOutlook
	}
	return u
}

type CareerService interface {
	List(ctx context.Context) ([]*types.Career, error)
	Recommended(ctx context.Context) ([]*types.Career, error)
	Get(ctx context.Context, id uuid.UUID) (*types.Career, error)
	Create(ctx context.Context, in CareerInput) (*types.Career, error)
	Update(ctx context.Context, id uuid.UUID, in CareerInput) (*types.Career, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type careerService struct {
	db         *gorm.DB
	log        *logger.Logger
	careerRepo repos.CareerRepo
}

func NewCareerService(db *gorm.DB, log *logger.Logger, careerRepo repos.CareerRepo) CareerService {
	return &careerService{db: db, log: log.With("service", "CareerService"), careerRepo: careerRepo}
}

func (cs *careerService) List(ctx context.Context) ([]*types.Career, error) {
	return cs.careerRepo.List(ctx, nil, 0)
}

// Recommended returns the first careers in catalog order.
func (cs *careerService) Recommended(ctx context.Context) ([]*types.Career, error) {
	return cs.careerRepo.List(ctx, nil, recommendedCareerLimit)
}

func (cs *careerService) Get(ctx context.Context, id uuid.UUID) (*types.Career, error) {
	c, err := cs.careerRepo.GetByID(ctx, nil, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, errCareerNotFound
	}
	return c, nil
}

func (cs *careerService) Create(ctx context.Context, in CareerInput) (*types.Career, error) {
	title := trimPtr(in.Title)
	if title == "" {
		return nil, errInvalidRequest
	}
	c := &types.Career{
		Title:         title,
		Description:   trimPtr(in.Description),
		Industry:      trimPtr(in.Industry),
		SalaryRange:   trimPtr(in.SalaryRange),
		GrowthOutlook: trimPtr(in.GrowthOutlook),
	}
	if in.RequiredSkills != nil {
		c.RequiredSkills = cleanList(*in.RequiredSkills)
	}
	return cs.careerRepo.Create(ctx, nil, c)
}

func (cs *careerService) Update(ctx context.Context, id uuid.UUID, in CareerInput) (*types.Career, error) {
	if in.Title != nil && strings.TrimSpace(*in.Title) == "" {
		return nil, errInvalidRequest
	}
	c, err := cs.careerRepo.Update(ctx, nil, id, in.updates())
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, errCareerNotFound
	}
	return c, nil
}

func (cs *careerService) Delete(ctx context.Context, id uuid.UUID) error {
	return cs.careerRepo.Delete(ctx, nil, id)
}
