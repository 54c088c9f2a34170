package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/careerhub-backend/internal/http/response"
	"github.com/yungbote/careerhub-backend/internal/platform/logger"
	"github.com/yungbote/careerhub-backend/internal/services"
)

type ApplicationHandler struct {
	log                *logger.Logger
	applicationService services.ApplicationService
}

func NewApplicationHandler(log *logger.Logger, applicationService services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{log: log.With("handler", "ApplicationHandler"), applicationService: applicationService}
}

// POST /api/opportunities/:id/apply
func (ah *ApplicationHandler) Apply(c *gin.Context) {
	var req services.ApplicationInput
	if !bindJSON(c, &req) {
		return
	}
	out, err := ah.applicationService.Apply(c.Request.Context(), currentUserID(c), idParam(c, "id"), req)
	if err != nil {
		response.RespondServiceError(c, ah.log, err, "Failed to submit application")
		return
	}
	response.RespondOK(c, out)
}

// GET /api/opportunity-applications/mine
func (ah *ApplicationHandler) Mine(c *gin.Context) {
	out, err := ah.applicationService.ListMine(c.Request.Context(), currentUserID(c))
	if err != nil {
		response.RespondServiceError(c, ah.log, err, "Failed to fetch applications")
		return
	}
	response.RespondOK(c, out)
}

// PATCH /api/opportunity-applications/:id
func (ah *ApplicationHandler) Update(c *gin.Context) {
	var req services.ApplicationInput
	if !bindJSON(c, &req) {
		return
	}
	out, err := ah.applicationService.Update(c.Request.Context(), currentUserID(c), idParam(c, "id"), req)
	if err != nil {
		response.RespondServiceError(c, ah.log, err, "Failed to update application")
		return
	}
	response.RespondOK(c, out)
}

// DELETE /api/opportunity-applications/:id
func (ah *ApplicationHandler) Withdraw(c *gin.Context) {
	if err := ah.applicationService.Withdraw(c.Request.Context(), currentUserID(c), idParam(c, "id")); err != nil {
		response.RespondServiceError(c, ah.log, err, "Failed to withdraw application")
		return
	}
	response.RespondMessage(c, "Application withdrawn")
}
