package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/careerhub-backend/internal/http/response"
	"github.com/yungbote/careerhub-backend/internal/platform/logger"
	"github.com/yungbote/careerhub-backend/internal/services"
)

type DashboardHandler struct {
	log              *logger.Logger
	dashboardService services.DashboardService
}

func NewDashboardHandler(log *logger.Logger, dashboardService services.DashboardService) *DashboardHandler {
	return &DashboardHandler{log: log.With("handler", "DashboardHandler"), dashboardService: dashboardService}
}

// GET /api/dashboard/stats
func (dh *DashboardHandler) Stats(c *gin.Context) {
	out, err := dh.dashboardService.Stats(c.Request.Context(), currentUserID(c))
	if err != nil {
		response.RespondServiceError(c, dh.log, err, "Failed to fetch dashboard stats")
		return
	}
	response.RespondOK(c, out)
}

// GET /api/students/ranking
func (dh *DashboardHandler) Ranking(c *gin.Context) {
	out, err := dh.dashboardService.Ranking(c.Request.Context(), currentUserID(c))
	if err != nil {
		response.RespondServiceError(c, dh.log, err, "Failed to fetch student ranking")
		return
	}
	response.RespondOK(c, out)
}
