package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/careerhub-backend/internal/http/response"
	"github.com/yungbote/careerhub-backend/internal/observability"
	"github.com/yungbote/careerhub-backend/internal/platform/logger"
	"github.com/yungbote/careerhub-backend/internal/platform/session"
	"github.com/yungbote/careerhub-backend/internal/services"
)

type AuthHandler struct {
	log         *logger.Logger
	authService services.AuthService
	sessions    *session.Manager
	metrics     *observability.Metrics
}

func NewAuthHandler(log *logger.Logger, authService services.AuthService, sessions *session.Manager, m *observability.Metrics) *AuthHandler {
	return &AuthHandler{
		log:         log.With("handler", "AuthHandler"),
		authService: authService,
		sessions:    sessions,
		metrics:     m,
	}
}

// POST /api/auth/register
func (ah *AuthHandler) Register(c *gin.Context) {
	var req services.RegisterInput
	if !bindJSON(c, &req) {
		return
	}
	user, err := ah.authService.Register(c.Request.Context(), req)
	if err != nil {
		response.RespondServiceError(c, ah.log, err, "Registration failed")
		return
	}
	if err := ah.sessions.Login(c.Writer, c.Request, user.ID); err != nil {
		response.RespondServiceError(c, ah.log, err, "Registration failed")
		return
	}
	ah.metrics.IncAuthEvent("register")
	response.RespondOK(c, gin.H{"user": user})
}

// POST /api/auth/login
func (ah *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if !bindJSON(c, &req) {
		return
	}
	user, err := ah.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		ah.metrics.IncAuthEvent("login_failed")
		response.RespondServiceError(c, ah.log, err, "Login failed")
		return
	}
	if err := ah.sessions.Login(c.Writer, c.Request, user.ID); err != nil {
		response.RespondServiceError(c, ah.log, err, "Login failed")
		return
	}
	ah.metrics.IncAuthEvent("login")
	response.RespondOK(c, gin.H{"user": user})
}

// POST /api/auth/logout
func (ah *AuthHandler) Logout(c *gin.Context) {
	if err := ah.sessions.Destroy(c.Writer, c.Request); err != nil {
		response.RespondServiceError(c, ah.log, err, "Logout failed")
		return
	}
	ah.metrics.IncAuthEvent("logout")
	response.RespondMessage(c, "Logged out successfully")
}

// GET /api/auth/me
func (ah *AuthHandler) Me(c *gin.Context) {
	user, err := ah.authService.CurrentUser(c.Request.Context(), currentUserID(c))
	if err != nil {
		response.RespondServiceError(c, ah.log, err, "Not authenticated")
		return
	}
	response.RespondOK(c, gin.H{"user": user})
}
