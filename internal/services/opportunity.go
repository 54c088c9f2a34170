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

const latestOpportunityLimit = 3

type OpportunityInput struct {
	Title          *string `json:"title"`
	Company        *string `json:"company"`
	Description    *string `json:"description"`
	Type           *string `json:"type"`
	Location       *string `json:"location"`
	Industry       *string `json:"industry"`
	ApplicationURL *string `json:"applicationUrl"`
	Deadline       *string `json:"deadline"`
	IsActive       *bool   `json:"isActive"`
}

func (in OpportunityInput) validate() error {
	if in.Type != nil && !types.ValidOpportunityType(strings.TrimSpace(*in.Type)) {
		return errInvalidOpportunityType
	}
	return nil
}

func (in OpportunityInput) updates() (map[string]any, error) {
	u := map[string]any{}
	if in.Title != nil {
		u["title"] = strings.TrimSpace(*in.Title)
	}
	if in.Company != nil {
		u["company"] = strings.TrimSpace(*in.Company)
	}
	if in.Description != nil {
		u["description"] = *in.Description
	}
	if in.Type != nil {
		u["type"] = strings.TrimSpace(*in.Type)
	}
	if in.Location != nil {
		u["location"] = strings.TrimSpace(*in.Location)
	}
	if in.Industry != nil {
		u["industry"] = strings.TrimSpace(*in.Industry)
	}
	if in.ApplicationURL != nil {
		u["application_url"] = strings.TrimSpace(*in.ApplicationURL)
	}
	if in.Deadline != nil {
		d, err := parseDate(*in.Deadline)
		if err != nil {
			return nil, err
		}
		u["deadline"] = d
	}
	if in.IsActive != nil {
		u["is_active"] = *in.IsActive
	}
	return u, nil
}

type OpportunityService interface {
	ListActive(ctx context.Context) ([]*types.Opportunity, error)
	Latest(ctx context.Context) ([]*types.Opportunity, error)
	Get(ctx context.Context, id uuid.UUID) (*types.Opportunity, error)
	Create(ctx context.Context, in OpportunityInput) (*types.Opportunity, error)
	Update(ctx context.Context, id uuid.UUID, in OpportunityInput) (*types.Opportunity, error)
	// Delete removes the opportunity together with its bookmarks and
	// applications.
	Delete(ctx context.Context, id uuid.UUID) error
}

type opportunityService struct {
	db        *gorm.DB
	log       *logger.Logger
	oppRepo   repos.OpportunityRepo
	savedRepo repos.SavedOpportunityRepo
	appRepo   repos.ApplicationRepo
}

func NewOpportunityService(
	db *gorm.DB,
	log *logger.Logger,
	oppRepo repos.OpportunityRepo,
	savedRepo repos.SavedOpportunityRepo,
	appRepo repos.ApplicationRepo,
) OpportunityService {
	return &opportunityService{
		db:        db,
		log:       log.With("service", "OpportunityService"),
		oppRepo:   oppRepo,
		savedRepo: savedRepo,
		appRepo:   appRepo,
	}
}

func (ops *opportunityService) ListActive(ctx context.Context) ([]*types.Opportunity, error) {
	return ops.oppRepo.ListActive(ctx, nil, 0)
}

func (ops *opportunityService) Latest(ctx context.Context) ([]*types.Opportunity, error) {
	return ops.oppRepo.ListActive(ctx, nil, latestOpportunityLimit)
}

func (ops *opportunityService) Get(ctx context.Context, id uuid.UUID) (*types.Opportunity, error) {
	o, err := ops.oppRepo.GetByID(ctx, nil, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, errOpportunityNotFound
	}
	return o, nil
}

func (ops *opportunityService) Create(ctx context.Context, in OpportunityInput) (*types.Opportunity, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	title, company, typ := trimPtr(in.Title), trimPtr(in.Company), trimPtr(in.Type)
	if title == "" || company == "" || typ == "" {
		return nil, errInvalidRequest
	}
	o := &types.Opportunity{
		Title:          title,
		Company:        company,
		Description:    trimPtr(in.Description),
		Type:           typ,
		Location:       trimPtr(in.Location),
		Industry:       trimPtr(in.Industry),
		ApplicationURL: trimPtr(in.ApplicationURL),
		IsActive:       true,
	}
	if in.IsActive != nil {
		o.IsActive = *in.IsActive
	}
	if in.Deadline != nil {
		d, err := parseDate(*in.Deadline)
		if err != nil {
			return nil, err
		}
		o.Deadline = d
	}
	return ops.oppRepo.Create(ctx, nil, o)
}

func (ops *opportunityService) Update(ctx context.Context, id uuid.UUID, in OpportunityInput) (*types.Opportunity, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	if (in.Title != nil && strings.TrimSpace(*in.Title) == "") || (in.Company != nil && strings.TrimSpace(*in.Company) == "") {
		return nil, errInvalidRequest
	}
	updates, err := in.updates()
	if err != nil {
		return nil, err
	}
	o, err := ops.oppRepo.Update(ctx, nil, id, updates)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, errOpportunityNotFound
	}
	return o, nil
}

func (ops *opportunityService) Delete(ctx context.Context, id uuid.UUID) error {
	return ops.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ops.savedRepo.DeleteByOpportunity(ctx, tx, id); err != nil {
			return err
		}
		if err := ops.appRepo.DeleteByOpportunity(ctx, tx, id); err != nil {
			return err
		}
		return ops.oppRepo.Delete(ctx, tx, id)
	})
}
