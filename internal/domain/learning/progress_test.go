package learning

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLatestPerSkill(t *testing.T) {
	now := time.Now()
	records := []*ProgressRecord{
		{SkillName: "go", Level: 80, RecordedAt: now},
		{SkillName: "sql", Level: 40, RecordedAt: now.Add(-time.Minute)},
		{SkillName: "go", Level: 25, RecordedAt: now.Add(-time.Hour)},
		nil,
	}
	latest := LatestPerSkill(records)
	assert.Len(t, latest, 2)
	assert.Equal(t, 80, latest[0].Level)
	assert.Equal(t, "sql", latest[1].SkillName)
	assert.InDelta(t, 60.0, AverageLevel(latest), 0.0001)
	assert.Zero(t, AverageLevel(nil))
}

func TestClampProgress(t *testing.T) {
	assert.Equal(t, 0, ClampProgress(-5))
	assert.Equal(t, 55, ClampProgress(55))
	assert.Equal(t, 100, ClampProgress(140))
	assert.True(t, ValidGoalStatus(GoalInProgress))
	assert.False(t, ValidGoalStatus("done"))
}
