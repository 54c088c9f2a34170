package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/careerhub-backend/internal/http/response"
	"github.com/yungbote/careerhub-backend/internal/platform/logger"
	"github.com/yungbote/careerhub-backend/internal/services"
)

type ProfileHandler struct {
	log             *logger.Logger
	profileService  services.ProfileService
	progressService services.ProgressService
}

func NewProfileHandler(log *logger.Logger, profileService services.ProfileService, progressService services.ProgressService) *ProfileHandler {
	return &ProfileHandler{
		log:             log.With("handler", "ProfileHandler"),
		profileService:  profileService,
		progressService: progressService,
	}
}

// GET /api/profile
func (ph *ProfileHandler) Get(c *gin.Context) {
	out, err := ph.profileService.Get(c.Request.Context(), currentUserID(c))
	if err != nil {
		response.RespondServiceError(c, ph.log, err, "Failed to fetch profile")
		return
	}
	if out == nil {
		response.RespondOK(c, gin.H{})
		return
	}
	response.RespondOK(c, out)
}

// POST /api/profile
func (ph *ProfileHandler) Upsert(c *gin.Context) {
	var req services.ProfileInput
	if !bindJSON(c, &req) {
		return
	}
	out, err := ph.profileService.Upsert(c.Request.Context(), currentUserID(c), req)
	if err != nil {
		response.RespondServiceError(c, ph.log, err, "Failed to update profile")
		return
	}
	response.RespondOK(c, out)
}

// GET /api/progress/skills
func (ph *ProfileHandler) SkillLevels(c *gin.Context) {
	out, err := ph.progressService.SkillLevels(c.Request.Context(), currentUserID(c))
	if err != nil {
		response.RespondServiceError(c, ph.log, err, "Failed to fetch skill progress")
		return
	}
	response.RespondOK(c, out)
}

// POST /api/progress/skills/:skillName
func (ph *ProfileHandler) RecordSkillLevel(c *gin.Context) {
	var req struct {
		Level services.Number `json:"level"`
	}
	if !bindJSON(c, &req) {
		return
	}
	err := ph.progressService.RecordLevel(c.Request.Context(), currentUserID(c), c.Param("skillName"), req.Level)
	if err != nil {
		response.RespondServiceError(c, ph.log, err, "Failed to update skill level")
		return
	}
	response.RespondOK(c, gin.H{"success": true})
}
