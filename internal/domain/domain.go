package domain

import (
	"github.com/yungbote/careerhub-backend/internal/domain/career"
	"github.com/yungbote/careerhub-backend/internal/domain/learning"
	"github.com/yungbote/careerhub-backend/internal/domain/opportunity"
	"github.com/yungbote/careerhub-backend/internal/domain/user"
)

const (
	RoleStudent = user.RoleStudent
	RoleAdmin   = user.RoleAdmin

	DefaultCourse = user.DefaultCourse

	OpportunityTypeInternship = opportunity.TypeInternship
	OpportunityTypeJob        = opportunity.TypeJob
	ApplicationStatusPending  = opportunity.ApplicationStatusPending

	GoalNotStarted = learning.GoalNotStarted
	GoalInProgress = learning.GoalInProgress
	GoalCompleted  = learning.GoalCompleted

	InitialSkillLevel = learning.InitialSkillLevel
)

type (
	User    = user.User
	Profile = user.Profile

	Career = career.Career

	Opportunity      = opportunity.Opportunity
	SavedOpportunity = opportunity.SavedOpportunity
	Application      = opportunity.Application

	Goal            = learning.Goal
	ProgressRecord  = learning.ProgressRecord
	SkillLevel      = learning.SkillLevel
	AcademicModule  = learning.AcademicModule
	TrainingProgram = learning.TrainingProgram
	Resource        = learning.Resource
)

var (
	LatestPerSkill = learning.LatestPerSkill
	AverageLevel   = learning.AverageLevel
	ClampProgress  = learning.ClampProgress

	ValidGoalStatus      = learning.ValidGoalStatus
	ValidOpportunityType = opportunity.ValidType
)
