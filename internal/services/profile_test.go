package services

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yungbote/careerhub-backend/internal/data/repos/testutil"
	types "github.com/yungbote/careerhub-backend/internal/domain"
	"github.com/yungbote/careerhub-backend/internal/platform/apierr"
)

func TestProfileUpsertTracksNewSkills(t *testing.T) {
	h := newHarness(t)
	user := testutil.SeedUser(t, h.ctx, h.db, "s@example.com", types.RoleStudent)
	svc := h.profile()

	p, err := svc.Get(h.ctx, user.ID)
	require.NoError(t, err)
	assert.Nil(t, p)

	p, err = svc.Upsert(h.ctx, user.ID, ProfileInput{
		Name:   ptr("Renamed"),
		Skills: &[]string{"Go", " SQL ", "Go"},
		GPA:    NumberOf(1.75),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Go", "SQL"}, []string(p.Skills))
	require.NotNil(t, p.GPA)
	assert.InDelta(t, 1.75, *p.GPA, 0.0001)

	u, err := h.users.GetByID(h.ctx, nil, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", u.Name)

	records, err := h.progress.ListByUser(h.ctx, nil, user.ID)
	require.NoError(t, err)
	require.Len(t, records, 2)
	for _, r := range records {
		assert.Equal(t, types.InitialSkillLevel, r.Level)
	}

	p, err = svc.Upsert(h.ctx, user.ID, ProfileInput{Skills: &[]string{"Go", "Docker"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"Go", "Docker"}, []string(p.Skills))
	require.NotNil(t, p.GPA, "omitted gpa keeps the stored value")

	records, err = h.progress.ListByUser(h.ctx, nil, user.ID)
	require.NoError(t, err)
	assert.Len(t, records, 3)

	_, err = svc.Upsert(h.ctx, user.ID, ProfileInput{Bio: ptr("hello")})
	require.NoError(t, err)
	records, err = h.progress.ListByUser(h.ctx, nil, user.ID)
	require.NoError(t, err)
	assert.Len(t, records, 3)
}

func TestProgressRecordLevel(t *testing.T) {
	h := newHarness(t)
	user := testutil.SeedUser(t, h.ctx, h.db, "s@example.com", types.RoleStudent)
	svc := NewProgressService(h.db, h.log, h.progress)

	assert.Equal(t, http.StatusBadRequest, apierr.StatusOf(svc.RecordLevel(h.ctx, user.ID, "Go", NumberOf(101))))
	assert.Equal(t, http.StatusBadRequest, apierr.StatusOf(svc.RecordLevel(h.ctx, user.ID, "Go", Number{})))
	assert.Equal(t, http.StatusBadRequest, apierr.StatusOf(svc.RecordLevel(h.ctx, user.ID, " ", NumberOf(10))))

	require.NoError(t, svc.RecordLevel(h.ctx, user.ID, "Go", NumberOf(40)))
	levels, err := svc.SkillLevels(h.ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, levels, 1)
	assert.Equal(t, types.SkillLevel{SkillName: "Go", Level: 40}, levels[0])
}

func TestGoalServiceDefaultsAndOwnership(t *testing.T) {
	h := newHarness(t)
	user := testutil.SeedUser(t, h.ctx, h.db, "s@example.com", types.RoleStudent)
	other := testutil.SeedUser(t, h.ctx, h.db, "o@example.com", types.RoleStudent)
	svc := NewGoalService(h.db, h.log, h.goals)

	_, err := svc.Create(h.ctx, user.ID, GoalInput{Title: ptr("Learn Go"), Status: ptr("someday")})
	assert.Equal(t, http.StatusBadRequest, apierr.StatusOf(err))

	g, err := svc.Create(h.ctx, user.ID, GoalInput{Title: ptr("Learn Go"), Progress: NumberOf(140)})
	require.NoError(t, err)
	assert.Equal(t, types.GoalNotStarted, g.Status)
	assert.Equal(t, 100, g.Progress)

	_, err = svc.Update(h.ctx, other.ID, g.ID, GoalInput{Status: ptr(types.GoalCompleted)})
	assert.Equal(t, http.StatusNotFound, apierr.StatusOf(err))

	g, err = svc.Update(h.ctx, user.ID, g.ID, GoalInput{Status: ptr(types.GoalCompleted)})
	require.NoError(t, err)
	assert.Equal(t, types.GoalCompleted, g.Status)

	require.NoError(t, svc.Delete(h.ctx, other.ID, g.ID))
	list, err := svc.List(h.ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, svc.Delete(h.ctx, user.ID, g.ID))
	list, err = svc.List(h.ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, list)
}
