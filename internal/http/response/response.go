package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/careerhub-backend/internal/platform/apierr"
	"github.com/yungbote/careerhub-backend/internal/platform/ctxutil"
	"github.com/yungbote/careerhub-backend/internal/platform/logger"
)

// ErrorCodeKey holds the machine-readable code of the last error response
// for the request logger.
const ErrorCodeKey = "error_code"

type ErrorEnvelope struct {
	Error string `json:"error"`
}

type MessageEnvelope struct {
	Message string `json:"message"`
}

func RespondError(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	if code != "" {
		c.Set(ErrorCodeKey, code)
	}
	c.JSON(status, ErrorEnvelope{Error: msg})
}

// AbortError writes the error envelope and stops the handler chain.
func AbortError(c *gin.Context, status int, code, msg string) {
	if code != "" {
		c.Set(ErrorCodeKey, code)
	}
	c.AbortWithStatusJSON(status, ErrorEnvelope{Error: msg})
}

// RespondServiceError sends client-facing service errors as-is. Anything else
// is logged and answered with a 500 carrying fallback.
func RespondServiceError(c *gin.Context, log *logger.Logger, err error, fallback string) {
	if apiErr, ok := apierr.As(err); ok {
		status := apiErr.Status
		if status == 0 {
			status = http.StatusInternalServerError
		}
		RespondError(c, status, apiErr.Code, apiErr.Err)
		return
	}
	if log != nil {
		fields := []interface{}{
			"error", err,
			"method", c.Request.Method,
			"path", c.FullPath(),
		}
		log.Error(fallback, append(fields, ctxutil.LogFields(c.Request.Context())...)...)
	}
	c.Set(ErrorCodeKey, "internal")
	c.JSON(http.StatusInternalServerError, ErrorEnvelope{Error: fallback})
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

func RespondMessage(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, MessageEnvelope{Message: msg})
}
