package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/careerhub-backend/internal/http/response"
	"github.com/yungbote/careerhub-backend/internal/platform/ctxutil"
)

// idParam parses a uuid path parameter. Malformed ids map to uuid.Nil, which
// never matches a row, so callers answer with their usual 404.
func idParam(c *gin.Context, name string) uuid.UUID {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil
	}
	return id
}

func currentUserID(c *gin.Context) uuid.UUID {
	return ctxutil.UserID(c.Request.Context())
}

// bindJSON decodes the body into dst and answers 400 on failure.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		response.AbortError(c, http.StatusBadRequest, "invalid_request", "Invalid request")
		return false
	}
	return true
}
