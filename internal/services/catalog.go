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

type ResourceInput struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	Type        *string `json:"type"`
	URL         *string `json:"url"`
}

func (in ResourceInput) updates() map[string]any {
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
	if in.Type != nil {
		u["type"] = strings.TrimSpace(*in.Type)
	}
	if in.URL != nil {
		u["url"] = strings.TrimSpace(*in.URL)
	}
	return u
}

type ResourceService interface {
	List(ctx context.Context) ([]*types.Resource, error)
	Get(ctx context.Context, id uuid.UUID) (*types.Resource, error)
	Create(ctx context.Context, in ResourceInput) (*types.Resource, error)
	Update(ctx context.Context, id uuid.UUID, in ResourceInput) (*types.Resource, error)
	Delete(ctx context.Context, id uuid.UUID) error
	TrackDownload(ctx context.Context, id uuid.UUID) error
}

type resourceService struct {
	db           *gorm.DB
	log          *logger.Logger
	resourceRepo repos.ResourceRepo
}

func NewResourceService(db *gorm.DB, log *logger.Logger, resourceRepo repos.ResourceRepo) ResourceService {
	return &resourceService{db: db, log: log.With("service", "ResourceService"), resourceRepo: resourceRepo}
}

func (rs *resourceService) List(ctx context.Context) ([]*types.Resource, error) {
	return rs.resourceRepo.List(ctx, nil)
}

func (rs *resourceService) Get(ctx context.Context, id uuid.UUID) (*types.Resource, error) {
	r, err := rs.resourceRepo.GetByID(ctx, nil, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, errResourceNotFound
	}
	return r, nil
}

func (rs *resourceService) Create(ctx context.Context, in ResourceInput) (*types.Resource, error) {
	title := trimPtr(in.Title)
	if title == "" {
		return nil, errInvalidRequest
	}
	return rs.resourceRepo.Create(ctx, nil, &types.Resource{
		Title:       title,
		Description: trimPtr(in.Description),
		Category:    trimPtr(in.Category),
		Type:        trimPtr(in.Type),
		URL:         trimPtr(in.URL),
	})
}

func (rs *resourceService) Update(ctx context.Context, id uuid.UUID, in ResourceInput) (*types.Resource, error) {
	if in.Title != nil && strings.TrimSpace(*in.Title) == "" {
		return nil, errInvalidRequest
	}
	r, err := rs.resourceRepo.Update(ctx, nil, id, in.updates())
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, errResourceNotFound
	}
	return r, nil
}

func (rs *resourceService) Delete(ctx context.Context, id uuid.UUID) error {
	return rs.resourceRepo.Delete(ctx, nil, id)
}

func (rs *resourceService) TrackDownload(ctx context.Context, id uuid.UUID) error {
	ok, err := rs.resourceRepo.IncrementDownloads(ctx, nil, id)
	if err != nil {
		return err
	}
	if !ok {
		return errResourceNotFound
	}
	return nil
}

type TrainingProgramInput struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Provider    *string   `json:"provider"`
	Duration    *string   `json:"duration"`
	Format      *string   `json:"format"`
	URL         *string   `json:"url"`
	Skills      *[]string `json:"skills"`
	StartDate   *string   `json:"startDate"`
	IsActive    *bool     `json:"isActive"`
}

func (in TrainingProgramInput) updates() (map[string]any, error) {
	u := map[string]any{}
	if in.Title != nil {
		u["title"] = strings.TrimSpace(*in.Title)
	}
	if in.Description != nil {
		u["description"] = *in.Description
	}
	if in.Provider != nil {
		u["provider"] = strings.TrimSpace(*in.Provider)
	}
	if in.Duration != nil {
		u["duration"] = strings.TrimSpace(*in.Duration)
	}
	if in.Format != nil {
		u["format"] = strings.TrimSpace(*in.Format)
	}
	if in.URL != nil {
		u["url"] = strings.TrimSpace(*in.URL)
	}
	if in.Skills != nil {
		u["skills"] = datatypes.JSONSlice[string](cleanList(*in.Skills))
	}
	if in.StartDate != nil {
		d, err := parseDate(*in.StartDate)
		if err != nil {
			return nil, err
		}
		u["start_date"] = d
	}
	if in.IsActive != nil {
		u["is_active"] = *in.IsActive
	}
	return u, nil
}

type TrainingProgramService interface {
	ListActive(ctx context.Context) ([]*types.TrainingProgram, error)
	Get(ctx context.Context, id uuid.UUID) (*types.TrainingProgram, error)
	Create(ctx context.Context, in TrainingProgramInput) (*types.TrainingProgram, error)
	Update(ctx context.Context, id uuid.UUID, in TrainingProgramInput) (*types.TrainingProgram, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type trainingProgramService struct {
	db          *gorm.DB
	log         *logger.Logger
	programRepo repos.TrainingProgramRepo
}

func NewTrainingProgramService(db *gorm.DB, log *logger.Logger, programRepo repos.TrainingProgramRepo) TrainingProgramService {
	return &trainingProgramService{db: db, log: log.With("service", "TrainingProgramService"), programRepo: programRepo}
}

func (ts *trainingProgramService) ListActive(ctx context.Context) ([]*types.TrainingProgram, error) {
	return ts.programRepo.ListActive(ctx, nil)
}

func (ts *trainingProgramService) Get(ctx context.Context, id uuid.UUID) (*types.TrainingProgram, error) {
	p, err := ts.programRepo.GetByID(ctx, nil, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, errProgramNotFound
	}
	return p, nil
}

func (ts *trainingProgramService) Create(ctx context.Context, in TrainingProgramInput) (*types.TrainingProgram, error) {
	title := trimPtr(in.Title)
	if title == "" {
		return nil, errInvalidRequest
	}
	p := &types.TrainingProgram{
		Title:       title,
		Description: trimPtr(in.Description),
		Provider:    trimPtr(in.Provider),
		Duration:    trimPtr(in.Duration),
		Format:      trimPtr(in.Format),
		URL:         trimPtr(in.URL),
		IsActive:    true,
	}
	if in.Skills != nil {
		p.Skills = cleanList(*in.Skills)
	}
	if in.StartDate != nil {
		d, err := parseDate(*in.StartDate)
		if err != nil {
			return nil, err
		}
		p.StartDate = d
	}
	if in.IsActive != nil {
		p.IsActive = *in.IsActive
	}
	return ts.programRepo.Create(ctx, nil, p)
}

func (ts *trainingProgramService) Update(ctx context.Context, id uuid.UUID, in TrainingProgramInput) (*types.TrainingProgram, error) {
	if in.Title != nil && strings.TrimSpace(*in.Title) == "" {
		return nil, errInvalidRequest
	}
	updates, err := in.updates()
	if err != nil {
		return nil, err
	}
	p, err := ts.programRepo.Update(ctx, nil, id, updates)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, errProgramNotFound
	}
	return p, nil
}

func (ts *trainingProgramService) Delete(ctx context.Context, id uuid.UUID) error {
	return ts.programRepo.Delete(ctx, nil, id)
}
