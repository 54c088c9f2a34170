package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/careerhub-backend/internal/http/response"
	"github.com/yungbote/careerhub-backend/internal/platform/logger"
	"github.com/yungbote/careerhub-backend/internal/services"
)

type TrainingProgramHandler struct {
	log            *logger.Logger
	programService services.TrainingProgramService
}

func NewTrainingProgramHandler(log *logger.Logger, programService services.TrainingProgramService) *TrainingProgramHandler {
	return &TrainingProgramHandler{log: log.With("handler", "TrainingProgramHandler"), programService: programService}
}

// GET /api/training-programs
func (th *TrainingProgramHandler) List(c *gin.Context) {
	out, err := th.programService.ListActive(c.Request.Context())
	if err != nil {
		response.RespondServiceError(c, th.log, err, "Failed to fetch training programs")
		return
	}
	response.RespondOK(c, out)
}

// GET /api/training-programs/:id
func (th *TrainingProgramHandler) Get(c *gin.Context) {
	out, err := th.programService.Get(c.Request.Context(), idParam(c, "id"))
	if err != nil {
		response.RespondServiceError(c, th.log, err, "Failed to fetch training program")
		return
	}
	response.RespondOK(c, out)
}

// POST /api/training-programs
func (th *TrainingProgramHandler) Create(c *gin.Context) {
	var req services.TrainingProgramInput
	if !bindJSON(c, &req) {
		return
	}
	out, err := th.programService.Create(c.Request.Context(), req)
	if err != nil {
		response.RespondServiceError(c, th.log, err, "Failed to create training program")
		return
	}
	response.RespondOK(c, out)
}

// PUT /api/training-programs/:id
func (th *TrainingProgramHandler) Update(c *gin.Context) {
	var req services.TrainingProgramInput
	if !bindJSON(c, &req) {
		return
	}
	out, err := th.programService.Update(c.Request.Context(), idParam(c, "id"), req)
	if err != nil {
		response.RespondServiceError(c, th.log, err, "Failed to update training program")
		return
	}
	response.RespondOK(c, out)
}

// DELETE /api/training-programs/:id
func (th *TrainingProgramHandler) Delete(c *gin.Context) {
	if err := th.programService.Delete(c.Request.Context(), idParam(c, "id")); err != nil {
		response.RespondServiceError(c, th.log, err, "Failed to delete training program")
		return
	}
	response.RespondMessage(c, "Training program deleted")
}
