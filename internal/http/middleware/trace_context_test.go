package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yungbote/careerhub-backend/internal/platform/ctxutil"
)

func tracedRouter(seen **ctxutil.TraceData) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(AttachTraceContext())
	r.GET("/api/careers/:id", func(c *gin.Context) {
		*seen = ctxutil.GetTraceData(c.Request.Context())
		c.Status(http.StatusOK)
	})
	return r
}

func TestAttachTraceContextEchoesValidRequestID(t *testing.T) {
	var td *ctxutil.TraceData
	r := tracedRouter(&td)
	req := httptest.NewRequest(http.MethodGet, "/api/careers/abc", nil)
	req.Header.Set(headerRequestID, "req-123.A_b")
	req.Header.Set(headerTraceID, "trace-9")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.NotNil(t, td)
	assert.Equal(t, "req-123.A_b", td.RequestID)
	assert.Equal(t, "trace-9", td.TraceID)
	assert.Equal(t, "/api/careers/:id", td.Route)
	assert.Equal(t, "req-123.A_b", rec.Header().Get(headerRequestID))
	assert.Equal(t, "trace-9", rec.Header().Get(headerTraceID))
}

func TestAttachTraceContextReplacesUnsafeIDs(t *testing.T) {
	var td *ctxutil.TraceData
	r := tracedRouter(&td)
	req := httptest.NewRequest(http.MethodGet, "/api/careers/abc", nil)
	req.Header.Set(headerRequestID, "evil\"id with spaces")
	req.Header.Set(headerTraceID, strings.Repeat("x", 200))
	r.ServeHTTP(httptest.NewRecorder(), req)

	require.NotNil(t, td)
	assert.Len(t, td.RequestID, 36)
	assert.Len(t, td.TraceID, 36)
	assert.NotEqual(t, td.RequestID, td.TraceID)
}
