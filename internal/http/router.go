package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/yungbote/careerhub-backend/internal/http/handlers"
	httpMW "github.com/yungbote/careerhub-backend/internal/http/middleware"
	"github.com/yungbote/careerhub-backend/internal/observability"
	"github.com/yungbote/careerhub-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log         *logger.Logger
	Metrics     *observability.Metrics
	ServiceName string
	CORSOrigins []string
	// TrustedProxies lists proxy IPs/CIDRs whose forwarding headers are
	// honoured. Empty means the socket address is the client IP.
	TrustedProxies []string

	AuthMiddleware *httpMW.AuthMiddleware
	AuthLimiter    *httpMW.RateLimiter

	HealthHandler          *httpH.HealthHandler
	AuthHandler            *httpH.AuthHandler
	CareerHandler          *httpH.CareerHandler
	OpportunityHandler     *httpH.OpportunityHandler
	ApplicationHandler     *httpH.ApplicationHandler
	ResourceHandler        *httpH.ResourceHandler
	TrainingProgramHandler *httpH.TrainingProgramHandler
	AcademicModuleHandler  *httpH.AcademicModuleHandler
	GoalHandler            *httpH.GoalHandler
	DashboardHandler       *httpH.DashboardHandler
	ProfileHandler         *httpH.ProfileHandler
	AdminHandler           *httpH.AdminHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		if cfg.Log != nil {
			cfg.Log.Warn("Invalid trusted proxies, ignoring forwarding headers", "error", err)
		}
		_ = r.SetTrustedProxies(nil)
	}
	r.Use(gin.Recovery())
	if cfg.ServiceName != "" {
		r.Use(otelgin.Middleware(cfg.ServiceName))
	}
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.Metrics(cfg.Metrics))
	r.Use(httpMW.CORS(cfg.CORSOrigins))

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}
	if cfg.Metrics != nil {
		r.GET("/metrics", gin.WrapH(cfg.Metrics.Handler()))
	}

	requireAuth := passthrough
	requireAdmin := passthrough
	if cfg.AuthMiddleware != nil {
		requireAuth = cfg.AuthMiddleware.RequireAuth()
		requireAdmin = cfg.AuthMiddleware.RequireAdmin()
	}
	limitAuth := passthrough
	if cfg.AuthLimiter != nil {
		limitAuth = cfg.AuthLimiter.Handler()
	}

	api := r.Group("/api")

	// Auth
	if h := cfg.AuthHandler; h != nil {
		api.POST("/auth/register", limitAuth, h.Register)
		api.POST("/auth/login", limitAuth, h.Login)
		api.POST("/auth/logout", h.Logout)
		api.GET("/auth/me", requireAuth, h.Me)
	}

	// Careers
	if h := cfg.CareerHandler; h != nil {
		api.GET("/careers", h.List)
		api.GET("/careers/recommended", requireAuth, h.Recommended)
		api.GET("/careers/:id", h.Get)
		api.POST("/careers", requireAdmin, h.Create)
		api.PUT("/careers/:id", requireAdmin, h.Update)
		api.PATCH("/careers/:id", requireAdmin, h.Update)
		api.DELETE("/careers/:id", requireAdmin, h.Delete)
	}

	// Opportunities and bookmarks
	if h := cfg.OpportunityHandler; h != nil {
		api.GET("/opportunities", h.List)
		api.GET("/opportunities/latest", h.Latest)
		api.GET("/opportunities/saved", requireAuth, h.ListSaved)
		api.GET("/opportunities/:id", h.Get)
		api.POST("/opportunities", requireAdmin, h.Create)
		api.PUT("/opportunities/:id", requireAdmin, h.Update)
		api.PATCH("/opportunities/:id", requireAdmin, h.Update)
		api.DELETE("/opportunities/:id", requireAdmin, h.Delete)
		api.POST("/opportunities/:id/save", requireAuth, h.Save)
		api.DELETE("/opportunities/:id/save", requireAuth, h.Unsave)
	}

	// Applications
	if h := cfg.ApplicationHandler; h != nil {
		api.POST("/opportunities/:id/apply", requireAuth, h.Apply)
		api.GET("/opportunity-applications/mine", requireAuth, h.Mine)
		api.PATCH("/opportunity-applications/:id", requireAuth, h.Update)
		api.DELETE("/opportunity-applications/:id", requireAuth, h.Withdraw)
	}

	// Resources
	if h := cfg.ResourceHandler; h != nil {
		api.GET("/resources", h.List)
		api.GET("/resources/:id", h.Get)
		api.POST("/resources", requireAdmin, h.Create)
		api.PUT("/resources/:id", requireAdmin, h.Update)
		api.DELETE("/resources/:id", requireAdmin, h.Delete)
		api.POST("/resources/:id/download", requireAuth, h.TrackDownload)
	}

	// Training programs
	if h := cfg.TrainingProgramHandler; h != nil {
		api.GET("/training-programs", h.List)
		api.GET("/training-programs/:id", h.Get)
		api.POST("/training-programs", requireAdmin, h.Create)
		api.PUT("/training-programs/:id", requireAdmin, h.Update)
		api.DELETE("/training-programs/:id", requireAdmin, h.Delete)
	}

	protected := api.Group("/")
	protected.Use(requireAuth)

	// Academic modules
	if h := cfg.AcademicModuleHandler; h != nil {
		protected.GET("/academic-modules", h.List)
		protected.POST("/academic-modules", h.Create)
		protected.PUT("/academic-modules/:id", h.Update)
		protected.DELETE("/academic-modules/:id", h.Delete)
	}

	// Goals
	if h := cfg.GoalHandler; h != nil {
		protected.GET("/goals", h.List)
		protected.GET("/goals/recent", h.Recent)
		protected.POST("/goals", h.Create)
		protected.PUT("/goals/:id", h.Update)
		protected.DELETE("/goals/:id", h.Delete)
	}

	// Dashboard
	if h := cfg.DashboardHandler; h != nil {
		protected.GET("/dashboard/stats", h.Stats)
		protected.GET("/students/ranking", h.Ranking)
	}

	// Profile and skill progress
	if h := cfg.ProfileHandler; h != nil {
		protected.GET("/profile", h.Get)
		protected.POST("/profile", h.Upsert)
		protected.GET("/progress/skills", h.SkillLevels)
		protected.POST("/progress/skills/:skillName", h.RecordSkillLevel)
	}

	// Admin
	if h := cfg.AdminHandler; h != nil {
		admin := api.Group("/admin")
		admin.Use(requireAdmin)
		admin.GET("/students", h.ListStudents)
		admin.DELETE("/students/:id", h.DeleteStudent)
		admin.GET("/students/:id/profile", h.StudentProfile)
		admin.GET("/students/:id/analytics", h.StudentAnalytics)
	}

	return r
}

func passthrough(c *gin.Context) { c.Next() }
