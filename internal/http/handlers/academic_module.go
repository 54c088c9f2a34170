package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/careerhub-backend/internal/http/response"
	"github.com/yungbote/careerhub-backend/internal/platform/logger"
	"github.com/yungbote/careerhub-backend/internal/services"
)

type AcademicModuleHandler struct {
	log           *logger.Logger
	moduleService services.AcademicModuleService
}

func NewAcademicModuleHandler(log *logger.Logger, moduleService services.AcademicModuleService) *AcademicModuleHandler {
	return &AcademicModuleHandler{log: log.With("handler", "AcademicModuleHandler"), moduleService: moduleService}
}

// GET /api/academic-modules
func (mh *AcademicModuleHandler) List(c *gin.Context) {
	out, err := mh.moduleService.List(c.Request.Context(), currentUserID(c))
	if err != nil {
		response.RespondServiceError(c, mh.log, err, "Failed to fetch academic modules")
		return
	}
	response.RespondOK(c, out)
}

// POST /api/academic-modules
func (mh *AcademicModuleHandler) Create(c *gin.Context) {
	var req services.AcademicModuleInput
	if !bindJSON(c, &req) {
		return
	}
	out, err := mh.moduleService.Create(c.Request.Context(), currentUserID(c), req)
	if err != nil {
		response.RespondServiceError(c, mh.log, err, "Failed to create academic module")
		return
	}
	response.RespondOK(c, out)
}

// PUT /api/academic-modules/:id
func (mh *AcademicModuleHandler) Update(c *gin.Context) {
	var req services.AcademicModuleInput
	if !bindJSON(c, &req) {
		return
	}
	out, err := mh.moduleService.Update(c.Request.Context(), currentUserID(c), idParam(c, "id"), req)
	if err != nil {
		response.RespondServiceError(c, mh.log, err, "Failed to update academic module")
		return
	}
	response.RespondOK(c, out)
}

// DELETE /api/academic-modules/:id
func (mh *AcademicModuleHandler) Delete(c *gin.Context) {
	if err := mh.moduleService.Delete(c.Request.Context(), currentUserID(c), idParam(c, "id")); err != nil {
		response.RespondServiceError(c, mh.log, err, "Failed to delete academic module")
		return
	}
	response.RespondMessage(c, "Academic module deleted")
}
