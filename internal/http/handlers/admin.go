package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/careerhub-backend/internal/http/response"
	"github.com/yungbote/careerhub-backend/internal/platform/logger"
	"github.com/yungbote/careerhub-backend/internal/services"
)

type AdminHandler struct {
	log          *logger.Logger
	adminService services.AdminService
}

func NewAdminHandler(log *logger.Logger, adminService services.AdminService) *AdminHandler {
	return &AdminHandler{log: log.With("handler", "AdminHandler"), adminService: adminService}
}

// GET /api/admin/students
func (ah *AdminHandler) ListStudents(c *gin.Context) {
	out, err := ah.adminService.ListStudents(c.Request.Context())
	if err != nil {
		response.RespondServiceError(c, ah.log, err, "Failed to fetch students")
		return
	}
	response.RespondOK(c, out)
}

// DELETE /api/admin/students/:id
func (ah *AdminHandler) DeleteStudent(c *gin.Context) {
	if err := ah.adminService.DeleteStudent(c.Request.Context(), idParam(c, "id")); err != nil {
		response.RespondServiceError(c, ah.log, err, "Failed to delete student")
		return
	}
	response.RespondMessage(c, "Student deleted successfully")
}

// GET /api/admin/students/:id/profile
func (ah *AdminHandler) StudentProfile(c *gin.Context) {
	out, err := ah.adminService.StudentProfile(c.Request.Context(), idParam(c, "id"))
	if err != nil {
		response.RespondServiceError(c, ah.log, err, "Failed to fetch student profile")
		return
	}
	response.RespondOK(c, out)
}

// GET /api/admin/students/:id/analytics
func (ah *AdminHandler) StudentAnalytics(c *gin.Context) {
	out, err := ah.adminService.StudentAnalytics(c.Request.Context(), idParam(c, "id"))
	if err != nil {
		response.RespondServiceError(c, ah.log, err, "Failed to fetch student analytics")
		return
	}
	response.RespondOK(c, out)
}
