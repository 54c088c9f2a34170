package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/careerhub-backend/internal/http/response"
	"github.com/yungbote/careerhub-backend/internal/platform/logger"
	"github.com/yungbote/careerhub-backend/internal/services"
)

type ResourceHandler struct {
	log             *logger.Logger
	resourceService services.ResourceService
}

func NewResourceHandler(log *logger.Logger, resourceService services.ResourceService) *ResourceHandler {
	return &ResourceHandler{log: log.With("handler", "ResourceHandler"), resourceService: resourceService}
}

// GET /api/resources
func (rh *ResourceHandler) List(c *gin.Context) {
	out, err := rh.resourceService.List(c.Request.Context())
	if err != nil {
		response.RespondServiceError(c, rh.log, err, "Failed to fetch resources")
		return
	}
	response.RespondOK(c, out)
}

// GET /api/resources/:id
func (rh *ResourceHandler) Get(c *gin.Context) {
	out, err := rh.resourceService.Get(c.Request.Context(), idParam(c, "id"))
	if err != nil {
		response.RespondServiceError(c, rh.log, err, "Failed to fetch resource")
		return
	}
	response.RespondOK(c, out)
}

// POST /api/resources
func (rh *ResourceHandler) Create(c *gin.Context) {
	var req services.ResourceInput
	if !bindJSON(c, &req) {
		return
	}
	out, err := rh.resourceService.Create(c.Request.Context(), req)
	if err != nil {
		response.RespondServiceError(c, rh.log, err, "Failed to create resource")
		return
	}
	response.RespondOK(c, out)
}

// PUT /api/resources/:id
func (rh *ResourceHandler) Update(c *gin.Context) {
	var req services.ResourceInput
	if !bindJSON(c, &req) {
		return
	}
	out, err := rh.resourceService.Update(c.Request.Context(), idParam(c, "id"), req)
	if err != nil {
		response.RespondServiceError(c, rh.log, err, "Failed to update resource")
		return
	}
	response.RespondOK(c, out)
}

// DELETE /api/resources/:id
func (rh *ResourceHandler) Delete(c *gin.Context) {
	if err := rh.resourceService.Delete(c.Request.Context(), idParam(c, "id")); err != nil {
		response.RespondServiceError(c, rh.log, err, "Failed to delete resource")
		return
	}
	response.RespondMessage(c, "Resource deleted")
}

// POST /api/resources/:id/download
func (rh *ResourceHandler) TrackDownload(c *gin.Context) {
	if err := rh.resourceService.TrackDownload(c.Request.Context(), idParam(c, "id")); err != nil {
		response.RespondServiceError(c, rh.log, err, "Failed to track download")
		return
	}
	response.RespondOK(c, gin.H{"success": true})
}
