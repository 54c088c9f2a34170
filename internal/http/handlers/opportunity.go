package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/careerhub-backend/internal/http/response"
	"github.com/yungbote/careerhub-backend/internal/platform/logger"
	"github.com/yungbote/careerhub-backend/internal/services"
)

type OpportunityHandler struct {
	log                *logger.Logger
	opportunityService services.OpportunityService
	bookmarkService    services.BookmarkService
}

func NewOpportunityHandler(log *logger.Logger, opportunityService services.OpportunityService, bookmarkService services.BookmarkService) *OpportunityHandler {
	return &OpportunityHandler{
		log:                log.With("handler", "OpportunityHandler"),
		opportunityService: opportunityService,
		bookmarkService:    bookmarkService,
	}
}

// GET /api/opportunities
func (oh *OpportunityHandler) List(c *gin.Context) {
	out, err := oh.opportunityService.ListActive(c.Request.Context())
	if err != nil {
		response.RespondServiceError(c, oh.log, err, "Failed to fetch opportunities")
		return
	}
	response.RespondOK(c, out)
}

// GET /api/opportunities/latest
func (oh *OpportunityHandler) Latest(c *gin.Context) {
	out, err := oh.opportunityService.Latest(c.Request.Context())
	if err != nil {
		response.RespondServiceError(c, oh.log, err, "Failed to fetch opportunities")
		return
	}
	response.RespondOK(c, out)
}

// GET /api/opportunities/:id
func (oh *OpportunityHandler) Get(c *gin.Context) {
	out, err := oh.opportunityService.Get(c.Request.Context(), idParam(c, "id"))
	if err != nil {
		response.RespondServiceError(c, oh.log, err, "Failed to fetch opportunity")
		return
	}
	response.RespondOK(c, out)
}

// POST /api/opportunities
func (oh *OpportunityHandler) Create(c *gin.Context) {
	var req services.OpportunityInput
	if !bindJSON(c, &req) {
		return
	}
	out, err := oh.opportunityService.Create(c.Request.Context(), req)
	if err != nil {
		response.RespondServiceError(c, oh.log, err, "Failed to create opportunity")
		return
	}
	response.RespondOK(c, out)
}

// PUT|PATCH /api/opportunities/:id
func (oh *OpportunityHandler) Update(c *gin.Context) {
	var req services.OpportunityInput
	if !bindJSON(c, &req) {
		return
	}
	out, err := oh.opportunityService.Update(c.Request.Context(), idParam(c, "id"), req)
	if err != nil {
		response.RespondServiceError(c, oh.log, err, "Failed to update opportunity")
		return
	}
	response.RespondOK(c, out)
}

// DELETE /api/opportunities/:id
func (oh *OpportunityHandler) Delete(c *gin.Context) {
	if err := oh.opportunityService.Delete(c.Request.Context(), idParam(c, "id")); err != nil {
		response.RespondServiceError(c, oh.log, err, "Failed to delete opportunity")
		return
	}
	response.RespondMessage(c, "Opportunity deleted")
}

// GET /api/opportunities/saved
func (oh *OpportunityHandler) ListSaved(c *gin.Context) {
	out, err := oh.bookmarkService.ListSaved(c.Request.Context(), currentUserID(c))
	if err != nil {
		response.RespondServiceError(c, oh.log, err, "Failed to fetch saved opportunities")
		return
	}
	response.RespondOK(c, out)
}

// POST /api/opportunities/:id/save
func (oh *OpportunityHandler) Save(c *gin.Context) {
	out, err := oh.bookmarkService.Save(c.Request.Context(), currentUserID(c), idParam(c, "id"))
	if err != nil {
		response.RespondServiceError(c, oh.log, err, "Failed to save opportunity")
		return
	}
	response.RespondOK(c, out)
}

// DELETE /api/opportunities/:id/save
func (oh *OpportunityHandler) Unsave(c *gin.Context) {
	if err := oh.bookmarkService.Unsave(c.Request.Context(), currentUserID(c), idParam(c, "id")); err != nil {
		response.RespondServiceError(c, oh.log, err, "Failed to remove from saved")
		return
	}
	response.RespondMessage(c, "Removed from saved")
}
