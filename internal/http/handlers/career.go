package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/careerhub-backend/internal/http/response"
	"github.com/yungbote/careerhub-backend/internal/platform/logger"
	"github.com/yungbote/careerhub-backend/internal/services"
)

type CareerHandler struct {
	log           *logger.Logger
	careerService services.CareerService
}

func NewCareerHandler(log *logger.Logger, careerService services.CareerService) *CareerHandler {
	return &CareerHandler{log: log.With("handler", "CareerHandler"), careerService: careerService}
}

// GET /api/careers
func (ch *CareerHandler) List(c *gin.Context) {
	out, err := ch.careerService.List(c.Request.Context())
	if err != nil {
		response.RespondServiceError(c, ch.log, err, "Failed to fetch careers")
		return
	}
	response.RespondOK(c, out)
}

// GET /api/careers/recommended
func (ch *CareerHandler) Recommended(c *gin.Context) {
	out, err := ch.careerService.Recommended(c.Request.Context())
	if err != nil {
		response.RespondServiceError(c, ch.log, err, "Failed to fetch recommended careers")
		return
	}
	response.RespondOK(c, out)
}

// GET /api/careers/:id
func (ch *CareerHandler) Get(c *gin.Context) {
	out, err := ch.careerService.Get(c.Request.Context(), idParam(c, "id"))
	if err != nil {
		response.RespondServiceError(c, ch.log, err, "Failed to fetch career")
		return
	}
	response.RespondOK(c, out)
}

// POST /api/careers
func (ch *CareerHandler) Create(c *gin.Context) {
	var req services.CareerInput
	if !bindJSON(c, &req) {
		return
	}
	out, err := ch.careerService.Create(c.Request.Context(), req)
	if err != nil {
		response.RespondServiceError(c, ch.log, err, "Failed to create career")
		return
	}
	response.RespondOK(c, out)
}

// PUT|PATCH /api/careers/:id
func (ch *CareerHandler) Update(c *gin.Context) {
	var req services.CareerInput
	if !bindJSON(c, &req) {
		return
	}
	out, err := ch.careerService.Update(c.Request.Context(), idParam(c, "id"), req)
	if err != nil {
		response.RespondServiceError(c, ch.log, err, "Failed to update career")
		return
	}
	response.RespondOK(c, out)
}

// DELETE /api/careers/:id
func (ch *CareerHandler) Delete(c *gin.Context) {
	if err := ch.careerService.Delete(c.Request.Context(), idParam(c, "id")); err != nil {
		response.RespondServiceError(c, ch.log, err, "Failed to delete career")
		return
	}
	response.RespondMessage(c, "Career deleted")
}
