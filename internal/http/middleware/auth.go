package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/careerhub-backend/internal/http/response"
	"github.com/yungbote/careerhub-backend/internal/platform/ctxutil"
	"github.com/yungbote/careerhub-backend/internal/platform/logger"
	"github.com/yungbote/careerhub-backend/internal/platform/session"
	"github.com/yungbote/careerhub-backend/internal/services"
)

type AuthMiddleware struct {
	log         *logger.Logger
	sessions    *session.Manager
	authService services.AuthService
}

func NewAuthMiddleware(log *logger.Logger, sessions *session.Manager, authService services.AuthService) *AuthMiddleware {
	middlewareLogger := log.With("Middleware", "AuthMiddleware")
	return &AuthMiddleware{log: middlewareLogger, sessions: sessions, authService: authService}
}

// attach resolves the session user once per request and stores it on the
// request context.
func (am *AuthMiddleware) attach(c *gin.Context) *ctxutil.RequestData {
	if rd := ctxutil.GetRequestData(c.Request.Context()); rd != nil {
		return rd
	}
	userID, sessionID, err := am.sessions.UserID(c.Request)
	if err != nil {
		am.log.Warn("Session lookup failed", "error", err)
		return nil
	}
	if userID == uuid.Nil {
		return nil
	}
	rd := &ctxutil.RequestData{UserID: userID, SessionID: sessionID}
	c.Request = c.Request.WithContext(ctxutil.WithRequestData(c.Request.Context(), rd))
	return rd
}

func (am *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if rd := am.attach(c); rd == nil {
			response.AbortError(c, http.StatusUnauthorized, "unauthorized", "Not authenticated")
			return
		}
		c.Next()
	}
}

// RequireAdmin re-reads the user so a demoted or deleted account loses access
// immediately.
func (am *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		rd := am.attach(c)
		if rd == nil {
			response.AbortError(c, http.StatusUnauthorized, "unauthorized", "Not authenticated")
			return
		}
		user, err := am.authService.CurrentUser(c.Request.Context(), rd.UserID)
		if err != nil || user == nil || !user.IsAdmin() {
			response.AbortError(c, http.StatusForbidden, "forbidden", "Admin access required")
			return
		}
		rd.Role = user.Role
		c.Next()
	}
}
