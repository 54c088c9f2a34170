// Package seed loads catalog fixtures from YAML and inserts the rows that are
// not already present.
package seed

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/yungbote/careerhub-backend/internal/data/repos"
	types "github.com/yungbote/careerhub-backend/internal/domain"
	"github.com/yungbote/careerhub-backend/internal/platform/logger"
	"github.com/yungbote/careerhub-backend/internal/services"
)

type File struct {
	Admin            *Admin            `yaml:"admin"`
	Careers          []Career          `yaml:"careers"`
	Opportunities    []Opportunity     `yaml:"opportunities"`
	Resources        []Resource        `yaml:"resources"`
	TrainingPrograms []TrainingProgram `yaml:"training_programs"`
}

type Admin struct {
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
}

type Career struct {
	Title          string   `yaml:"title"`
	Description    string   `yaml:"description"`
	Industry       string   `yaml:"industry"`
	RequiredSkills []string `yaml:"required_skills"`
	SalaryRange    string   `yaml:"salary_range"`
	GrowthOutlook  string   `yaml:"growth_outlook"`
}

type Opportunity struct {
	Title          string `yaml:"title"`
	Company        string `yaml:"company"`
	Description    string `yaml:"description"`
	Type           string `yaml:"type"`
	Location       string `yaml:"location"`
	Industry       string `yaml:"industry"`
	ApplicationURL string `yaml:"application_url"`
	Deadline       string `yaml:"deadline"`
	Inactive       bool   `yaml:"inactive"`
}

type Resource struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Category    string `yaml:"category"`
	Type        string `yaml:"type"`
	URL         string `yaml:"url"`
}

type TrainingProgram struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Provider    string   `yaml:"provider"`
	Duration    string   `yaml:"duration"`
	Format      string   `yaml:"format"`
	URL         string   `yaml:"url"`
	Skills      []string `yaml:"skills"`
	StartDate   string   `yaml:"start_date"`
	Inactive    bool     `yaml:"inactive"`
}

func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	if err := validate(&f); err != nil {
		return nil, err
	}
	return &f, nil
}

func validate(f *File) error {
	if f.Admin != nil && (strings.TrimSpace(f.Admin.Email) == "" || f.Admin.Password == "") {
		return fmt.Errorf("admin requires email and password")
	}
	for i, c := range f.Careers {
		if strings.TrimSpace(c.Title) == "" {
			return fmt.Errorf("careers[%d]: missing title", i)
		}
	}
	for i, o := range f.Opportunities {
		if strings.TrimSpace(o.Title) == "" || strings.TrimSpace(o.Company) == "" {
			return fmt.Errorf("opportunities[%d]: missing title or company", i)
		}
		if !types.ValidOpportunityType(o.Type) {
			return fmt.Errorf("opportunities[%d]: type must be internship or job", i)
		}
		if _, err := date(o.Deadline); err != nil {
			return fmt.Errorf("opportunities[%d]: %w", i, err)
		}
	}
	for i, r := range f.Resources {
		if strings.TrimSpace(r.Title) == "" {
			return fmt.Errorf("resources[%d]: missing title", i)
		}
	}
	for i, p := range f.TrainingPrograms {
		if strings.TrimSpace(p.Title) == "" {
			return fmt.Errorf("training_programs[%d]: missing title", i)
		}
		if _, err := date(p.StartDate); err != nil {
			return fmt.Errorf("training_programs[%d]: %w", i, err)
		}
	}
	return nil
}

func date(raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q", raw)
	}
	return &t, nil
}

type Deps struct {
	UserRepo     repos.UserRepo
	CareerRepo   repos.CareerRepo
	OppRepo      repos.OpportunityRepo
	ResourceRepo repos.ResourceRepo
	ProgramRepo  repos.TrainingProgramRepo
}

// Result counts inserted rows per table. Existing rows are skipped.
type Result struct {
	Admin            bool
	Careers          int
	Opportunities    int
	Resources        int
	TrainingPrograms int
	Skipped          int
}

type Seeder struct {
	db   *gorm.DB
	log  *logger.Logger
	deps Deps
}

func NewSeeder(db *gorm.DB, log *logger.Logger, deps Deps) *Seeder {
	return &Seeder{db: db, log: log.With("service", "Seeder"), deps: deps}
}

// Apply inserts everything in one transaction.
func (s *Seeder) Apply(ctx context.Context, f *File) (Result, error) {
	var res Result
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res = Result{}
		if err := s.admin(ctx, tx, f.Admin, &res); err != nil {
			return err
		}
		if err := s.careers(ctx, tx, f.Careers, &res); err != nil {
			return err
		}
		if err := s.opportunities(ctx, tx, f.Opportunities, &res); err != nil {
			return err
		}
		if err := s.resources(ctx, tx, f.Resources, &res); err != nil {
			return err
		}
		return s.programs(ctx, tx, f.TrainingPrograms, &res)
	})
	if err != nil {
		return Result{}, err
	}
	s.log.Info("seed applied",
		"admin", res.Admin,
		"careers", res.Careers,
		"opportunities", res.Opportunities,
		"resources", res.Resources,
		"training_programs", res.TrainingPrograms,
		"skipped", res.Skipped,
	)
	return res, nil
}

func (s *Seeder) admin(ctx context.Context, tx *gorm.DB, a *Admin, res *Result) error {
	if a == nil {
		return nil
	}
	email := strings.ToLower(strings.TrimSpace(a.Email))
	existing, err := s.deps.UserRepo.GetByEmail(ctx, tx, email)
	if err != nil {
		return err
	}
	if existing != nil {
		res.Skipped++
		return nil
	}
	hash, err := services.HashPassword(a.Password)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}
	name := strings.TrimSpace(a.Name)
	if name == "" {
		name = "Administrator"
	}
	if _, err := s.deps.UserRepo.Create(ctx, tx, &types.User{
		Email:    email,
		Password: hash,
		Name:     name,
		Role:     types.RoleAdmin,
		Course:   types.DefaultCourse,
	}); err != nil {
		return fmt.Errorf("create admin: %w", err)
	}
	res.Admin = true
	return nil
}

func (s *Seeder) careers(ctx context.Context, tx *gorm.DB, rows []Career, res *Result) error {
	for _, c := range rows {
		title := strings.TrimSpace(c.Title)
		existing, err := s.deps.CareerRepo.GetByTitle(ctx, tx, title)
		if err != nil {
			return err
		}
		if existing != nil {
			res.Skipped++
			continue
		}
		if _, err := s.deps.CareerRepo.Create(ctx, tx, &types.Career{
			Title:          title,
			Description:    c.Description,
			Industry:       c.Industry,
			RequiredSkills: datatypes.JSONSlice[string](nonNil(c.RequiredSkills)),
			SalaryRange:    c.SalaryRange,
			GrowthOutlook:  c.GrowthOutlook,
		}); err != nil {
			return fmt.Errorf("create career %q: %w", title, err)
		}
		res.Careers++
	}
	return nil
}

func (s *Seeder) opportunities(ctx context.Context, tx *gorm.DB, rows []Opportunity, res *Result) error {
	for _, o := range rows {
		title, company := strings.TrimSpace(o.Title), strings.TrimSpace(o.Company)
		existing, err := s.deps.OppRepo.GetByTitle(ctx, tx, title, company)
		if err != nil {
			return err
		}
		if existing != nil {
			res.Skipped++
			continue
		}
		deadline, _ := date(o.Deadline)
		if _, err := s.deps.OppRepo.Create(ctx, tx, &types.Opportunity{
			Title:          title,
			Company:        company,
			Description:    o.Description,
			Type:           o.Type,
			Location:       o.Location,
			Industry:       o.Industry,
			ApplicationURL: o.ApplicationURL,
			Deadline:       deadline,
			IsActive:       !o.Inactive,
		}); err != nil {
			return fmt.Errorf("create opportunity %q: %w", title, err)
		}
		res.Opportunities++
	}
	return nil
}

func (s *Seeder) resources(ctx context.Context, tx *gorm.DB, rows []Resource, res *Result) error {
	for _, r := range rows {
		title := strings.TrimSpace(r.Title)
		existing, err := s.deps.ResourceRepo.GetByTitle(ctx, tx, title)
		if err != nil {
			return err
		}
		if existing != nil {
			res.Skipped++
			continue
		}
		if _, err := s.deps.ResourceRepo.Create(ctx, tx, &types.Resource{
			Title:       title,
			Description: r.Description,
			Category:    r.Category,
			Type:        r.Type,
			URL:         r.URL,
		}); err != nil {
			return fmt.Errorf("create resource %q: %w", title, err)
		}
		res.Resources++
	}
	return nil
}

func (s *Seeder) programs(ctx context.Context, tx *gorm.DB, rows []TrainingProgram, res *Result) error {
	for _, p := range rows {
		title := strings.TrimSpace(p.Title)
		existing, err := s.deps.ProgramRepo.GetByTitle(ctx, tx, title)
		if err != nil {
			return err
		}
		if existing != nil {
			res.Skipped++
			continue
		}
		start, _ := date(p.StartDate)
		if _, err := s.deps.ProgramRepo.Create(ctx, tx, &types.TrainingProgram{
			Title:       title,
			Description: p.Description,
			Provider:    p.Provider,
			Duration:    p.Duration,
			Format:      p.Format,
			URL:         p.URL,
			Skills:      datatypes.JSONSlice[string](nonNil(p.Skills)),
			StartDate:   start,
			IsActive:    !p.Inactive,
		}); err != nil {
			return fmt.Errorf("create training program %q: %w", title, err)
		}
		res.TrainingPrograms++
	}
	return nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
