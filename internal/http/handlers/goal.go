package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/careerhub-backend/internal/http/response"
	"github.com/yungbote/careerhub-backend/internal/platform/logger"
	"github.com/yungbote/careerhub-backend/internal/services"
)

type GoalHandler struct {
	log         *logger.Logger
	goalService services.GoalService
}

func NewGoalHandler(log *logger.Logger, goalService services.GoalService) *GoalHandler {
	return &GoalHandler{log: log.With("handler", "GoalHandler"), goalService: goalService}
}

// GET /api/goals
func (gh *GoalHandler) List(c *gin.Context) {
	out, err := gh.goalService.List(c.Request.Context(), currentUserID(c))
	if err != nil {
		response.RespondServiceError(c, gh.log, err, "Failed to fetch goals")
		return
	}
	response.RespondOK(c, out)
}

// GET /api/goals/recent
func (gh *GoalHandler) Recent(c *gin.Context) {
	out, err := gh.goalService.Recent(c.Request.Context(), currentUserID(c))
	if err != nil {
		response.RespondServiceError(c, gh.log, err, "Failed to fetch goals")
		return
	}
	response.RespondOK(c, out)
}

// POST /api/goals
func (gh *GoalHandler) Create(c *gin.Context) {
	var req services.GoalInput
	if !bindJSON(c, &req) {
		return
	}
	out, err := gh.goalService.Create(c.Request.Context(), currentUserID(c), req)
	if err != nil {
		response.RespondServiceError(c, gh.log, err, "Failed to create goal")
		return
	}
	response.RespondOK(c, out)
}

// PUT /api/goals/:id
func (gh *GoalHandler) Update(c *gin.Context) {
	var req services.GoalInput
	if !bindJSON(c, &req) {
		return
	}
	out, err := gh.goalService.Update(c.Request.Context(), currentUserID(c), idParam(c, "id"), req)
	if err != nil {
		response.RespondServiceError(c, gh.log, err, "Failed to update goal")
		return
	}
	response.RespondOK(c, out)
}

// DELETE /api/goals/:id
func (gh *GoalHandler) Delete(c *gin.Context) {
	if err := gh.goalService.Delete(c.Request.Context(), currentUserID(c), idParam(c, "id")); err != nil {
		response.RespondServiceError(c, gh.log, err, "Failed to delete goal")
		return
	}
	response.RespondMessage(c, "Goal deleted")
}
