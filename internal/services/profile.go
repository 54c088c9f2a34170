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

type ProfileInput struct {
	Name         *string   `json:"name"`
	Bio          *string   `json:"bio"`
	Skills       *[]string `json:"skills"`
	Interests    *[]string `json:"interests"`
	GPA          Number    `json:"gpa"`
	LinkedinURL  *string   `json:"linkedinUrl"`
	GithubURL    *string   `json:"githubUrl"`
	PortfolioURL *string   `json:"portfolioUrl"`
}

func (in ProfileInput) updates() map[string]any {
	u := map[string]any{}
	if in.Bio != nil {
		u["bio"] = *in.Bio
	}
	if in.Skills != nil {
		u["skills"] = datatypes.JSONSlice[string](cleanList(*in.Skills))
	}
	if in.Interests != nil {
		u["interests"] = datatypes.JSONSlice[string](cleanList(*in.Interests))
	}
	if in.GPA.Valid {
		u["gpa"] = in.GPA.Value
	}
	if in.LinkedinURL != nil {
		u["linkedin_url"] = strings.TrimSpace(*in.LinkedinURL)
	}
	if in.GithubURL != nil {
		u["github_url"] = strings.TrimSpace(*in.GithubURL)
	}
	if in.PortfolioURL != nil {
		u["portfolio_url"] = strings.TrimSpace(*in.PortfolioURL)
	}
	return u
}

type ProfileService interface {
	// Get returns nil when the user has not created a profile yet.
	Get(ctx context.Context, userID uuid.UUID) (*types.Profile, error)
	// Upsert writes the profile, renames the user when a name is given and
	// starts progress tracking for skills that were not on the profile before.
	Upsert(ctx context.Context, userID uuid.UUID, in ProfileInput) (*types.Profile, error)
}

type profileService struct {
	db           *gorm.DB
	log          *logger.Logger
	userRepo     repos.UserRepo
	profileRepo  repos.ProfileRepo
	progressRepo repos.ProgressRecordRepo
}

func NewProfileService(
	db *gorm.DB,
	log *logger.Logger,
	userRepo repos.UserRepo,
	profileRepo repos.ProfileRepo,
	progressRepo repos.ProgressRecordRepo,
) ProfileService {
	return &profileService{
		db:           db,
		log:          log.With("service", "ProfileService"),
		userRepo:     userRepo,
		profileRepo:  profileRepo,
		progressRepo: progressRepo,
	}
}

func (ps *profileService) Get(ctx context.Context, userID uuid.UUID) (*types.Profile, error) {
	return ps.profileRepo.GetByUserID(ctx, nil, userID)
}

func (ps *profileService) Upsert(ctx context.Context, userID uuid.UUID, in ProfileInput) (*types.Profile, error) {
	if userID == uuid.Nil {
		return nil, errNotAuthenticated
	}

	var out *types.Profile
	var added []string
	err := ps.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if name := trimPtr(in.Name); name != "" {
			if err := ps.userRepo.UpdateName(ctx, tx, userID, name); err != nil {
				return err
			}
		}

		existing, err := ps.profileRepo.GetByUserID(ctx, tx, userID)
		if err != nil {
			return err
		}

		if existing != nil {
			out, err = ps.profileRepo.UpdateByUserID(ctx, tx, userID, in.updates())
		} else {
			out, err = ps.profileRepo.Create(ctx, tx, newProfile(userID, in))
		}
		if err != nil {
			return err
		}

		if in.Skills == nil {
			return nil
		}
		var before []string
		if existing != nil {
			before = existing.Skills
		}
		added = newSkills(before, cleanList(*in.Skills))
		if len(added) == 0 {
			return nil
		}
		records := make([]*types.ProgressRecord, 0, len(added))
		for _, skill := range added {
			records = append(records, &types.ProgressRecord{
				UserID:    userID,
				SkillName: skill,
				Level:     types.InitialSkillLevel,
			})
		}
		_, err = ps.progressRepo.Create(ctx, tx, records)
		return err
	})
	if err != nil {
		return nil, err
	}
	if len(added) > 0 {
		ps.log.Debug("Tracking new skills", "user_id", userID.String(), "count", len(added))
	}
	return out, nil
}

func newProfile(userID uuid.UUID, in ProfileInput) *types.Profile {
	p := &types.Profile{
		UserID:       userID,
		Bio:          trimPtr(in.Bio),
		LinkedinURL:  trimPtr(in.LinkedinURL),
		GithubURL:    trimPtr(in.GithubURL),
		PortfolioURL: trimPtr(in.PortfolioURL),
		Skills:       datatypes.JSONSlice[string]{},
		Interests:    datatypes.JSONSlice[string]{},
	}
	if in.Skills != nil {
		p.Skills = cleanList(*in.Skills)
	}
	if in.Interests != nil {
		p.Interests = cleanList(*in.Interests)
	}
	if in.GPA.Valid {
		gpa := in.GPA.Value
		p.GPA = &gpa
	}
	return p
}

// newSkills returns the entries of after that are not in before, in order.
func newSkills(before, after []string) []string {
	prev := make(map[string]struct{}, len(before))
	for _, s := range before {
		prev[s] = struct{}{}
	}
	var out []string
	for _, s := range after {
		if _, ok := prev[s]; !ok {
			out = append(out, s)
		}
	}
	return out
}
