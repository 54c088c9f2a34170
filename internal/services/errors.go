package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/yungbote/careerhub-backend/internal/platform/apierr"
)

var (
	errInvalidRequest = apierr.BadRequest("invalid_request", "Invalid request")

	errEmailTaken         = apierr.BadRequest("email_taken", "Email already registered")
	errInvalidCredentials = apierr.Unauthorized("Invalid email or password")
	errNotAuthenticated   = apierr.Unauthorized("Not authenticated")

	errCareerNotFound      = apierr.NotFound("Career not found")
	errOpportunityNotFound = apierr.NotFound("Opportunity not found")
	errApplicationNotFound = apierr.NotFound("Application not found")
	errResourceNotFound    = apierr.NotFound("Resource not found")
	errProgramNotFound     = apierr.NotFound("Training program not found")
	errModuleNotFound      = apierr.NotFound("Academic module not found")
	errGoalNotFound        = apierr.NotFound("Goal not found")
	errStudentNotFound     = apierr.NotFound("Student not found")

	errAlreadySaved   = apierr.BadRequest("already_saved", "Already saved")
	errAlreadyApplied = apierr.BadRequest("already_applied", "You have already applied to this opportunity")

	errInvalidOpportunityType = apierr.BadRequest("invalid_type", "Type must be internship or job")
	errInvalidGoalStatus      = apierr.BadRequest("invalid_status", "Status must be not-started, in-progress or completed")
	errInvalidLevel           = apierr.BadRequest("invalid_level", "Level must be between 0 and 100")
	errInvalidDate            = apierr.BadRequest("invalid_date", "Invalid date")
)

func isDuplicate(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
