package app

import (
	"github.com/yungbote/careerhub-backend/internal/data/db"
	"github.com/yungbote/careerhub-backend/internal/http"
	httpH "github.com/yungbote/careerhub-backend/internal/http/handlers"
	httpMW "github.com/yungbote/careerhub-backend/internal/http/middleware"
	"github.com/yungbote/careerhub-backend/internal/observability"
	"github.com/yungbote/careerhub-backend/internal/platform/logger"
)

type Middleware struct {
	Auth        *httpMW.AuthMiddleware
	AuthLimiter *httpMW.RateLimiter
}

type Handlers struct {
	Health          *httpH.HealthHandler
	Auth            *httpH.AuthHandler
	Career          *httpH.CareerHandler
	Opportunity     *httpH.OpportunityHandler
	Application     *httpH.ApplicationHandler
	Resource        *httpH.ResourceHandler
	TrainingProgram *httpH.TrainingProgramHandler
	AcademicModule  *httpH.AcademicModuleHandler
	Goal            *httpH.GoalHandler
	Dashboard       *httpH.DashboardHandler
	Profile         *httpH.ProfileHandler
	Admin           *httpH.AdminHandler
}

func wireHandlers(log *logger.Logger, store *db.Service, clients Clients, services Services, m *observability.Metrics) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:          httpH.NewHealthHandler(log, store),
		Auth:            httpH.NewAuthHandler(log, services.Auth, clients.Sessions, m),
		Career:          httpH.NewCareerHandler(log, services.Career),
		Opportunity:     httpH.NewOpportunityHandler(log, services.Opportunity, services.Bookmark),
		Application:     httpH.NewApplicationHandler(log, services.Application),
		Resource:        httpH.NewResourceHandler(log, services.Resource),
		TrainingProgram: httpH.NewTrainingProgramHandler(log, services.TrainingProgram),
		AcademicModule:  httpH.NewAcademicModuleHandler(log, services.AcademicModule),
		Goal:            httpH.NewGoalHandler(log, services.Goal),
		Dashboard:       httpH.NewDashboardHandler(log, services.Dashboard),
		Profile:         httpH.NewProfileHandler(log, services.Profile, services.Progress),
		Admin:           httpH.NewAdminHandler(log, services.Admin),
	}
}

func wireMiddleware(log *logger.Logger, cfg Config, clients Clients, services Services, m *observability.Metrics) Middleware {
	log.Info("Wiring middleware...")
	return Middleware{
		Auth:        httpMW.NewAuthMiddleware(log, clients.Sessions, services.Auth),
		AuthLimiter: httpMW.NewRateLimiter(log, m, cfg.AuthRateRPS, cfg.AuthRateBurst),
	}
}

func wireServer(log *logger.Logger, cfg Config, m *observability.Metrics, handlers Handlers, middleware Middleware) *http.Server {
	return http.NewServer(http.RouterConfig{
		Log:            log,
		Metrics:        m,
		ServiceName:    cfg.ServiceName,
		CORSOrigins:    cfg.CORSOrigins,
		TrustedProxies: cfg.TrustedProxies,

		AuthMiddleware: middleware.Auth,
		AuthLimiter:    middleware.AuthLimiter,

		HealthHandler:          handlers.Health,
		AuthHandler:            handlers.Auth,
		CareerHandler:          handlers.Career,
		OpportunityHandler:     handlers.Opportunity,
		ApplicationHandler:     handlers.Application,
		ResourceHandler:        handlers.Resource,
		TrainingProgramHandler: handlers.TrainingProgram,
		AcademicModuleHandler:  handlers.AcademicModule,
		GoalHandler:            handlers.Goal,
		DashboardHandler:       handlers.Dashboard,
		ProfileHandler:         handlers.Profile,
		AdminHandler:           handlers.Admin,
	})
}
