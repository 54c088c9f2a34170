package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yungbote/careerhub-backend/internal/data/repos"
	"github.com/yungbote/careerhub-backend/internal/data/repos/testutil"
	types "github.com/yungbote/careerhub-backend/internal/domain"
)

func TestRankByGPA(t *testing.T) {
	a, b, c, d := uuid.New(), uuid.New(), uuid.New(), uuid.New()
	rows := []repos.StudentGPA{
		{UserID: a, GPA: ptr(3.5)},
		{UserID: b, GPA: ptr(3.9)},
		{UserID: c, GPA: ptr(3.5)},
		{UserID: d},
	}

	cases := []struct {
		name           string
		user           uuid.UUID
		wantRank       int
		wantPercentile int
	}{
		{name: "top", user: b, wantRank: 1, wantPercentile: 100},
		{name: "tie_shares_rank", user: a, wantRank: 2, wantPercentile: 75},
		{name: "tie_other", user: c, wantRank: 2, wantPercentile: 75},
		{name: "no_gpa", user: d, wantRank: 0, wantPercentile: 0},
		{name: "unknown_user", user: uuid.New(), wantRank: 0, wantPercentile: 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := rankByGPA(rows, tc.user)
			if got.TotalStudents != 4 {
				t.Fatalf("total: want=4 got=%d", got.TotalStudents)
			}
			if got.Rank != tc.wantRank {
				t.Fatalf("rank: want=%d got=%d", tc.wantRank, got.Rank)
			}
			if got.Percentile != tc.wantPercentile {
				t.Fatalf("percentile: want=%d got=%d", tc.wantPercentile, got.Percentile)
			}
		})
	}
}

func TestDashboardStudentStats(t *testing.T) {
	h := newHarness(t)
	user := testutil.SeedUser(t, h.ctx, h.db, "s@example.com", types.RoleStudent)
	now := time.Now()
	testutil.SeedGoal(t, h.ctx, h.db, user.ID, "a", types.GoalCompleted, now)
	testutil.SeedGoal(t, h.ctx, h.db, user.ID, "b", types.GoalInProgress, now)
	testutil.SeedGoal(t, h.ctx, h.db, user.ID, "c", types.GoalNotStarted, now)
	testutil.SeedProgress(t, h.ctx, h.db, user.ID, "Go", 10, now.Add(-time.Hour))
	testutil.SeedProgress(t, h.ctx, h.db, user.ID, "Go", 60, now)
	testutil.SeedProgress(t, h.ctx, h.db, user.ID, "SQL", 35, now)
	opp := testutil.SeedOpportunity(t, h.ctx, h.db, "Intern", true, now)
	_, err := h.bookmarks().Save(h.ctx, user.ID, opp.ID)
	require.NoError(t, err)

	out, err := h.dashboard().Stats(h.ctx, user.ID)
	require.NoError(t, err)
	stats, ok := out.(*StudentStats)
	require.True(t, ok, "student gets student stats, got %T", out)

	assert.Equal(t, int64(3), stats.TotalGoals)
	assert.Equal(t, int64(1), stats.CompletedGoals)
	assert.Equal(t, int64(1), stats.InProgressGoals)
	assert.Equal(t, int64(1), stats.SavedOpportunities)
	assert.Equal(t, int64(0), stats.Applications)
	assert.Equal(t, 2, stats.SkillsTracked)
	assert.Equal(t, 48, stats.AverageSkillLevel)
}

func TestDashboardAdminStats(t *testing.T) {
	h := newHarness(t)
	admin := testutil.SeedUser(t, h.ctx, h.db, "admin@example.com", types.RoleAdmin)
	testutil.SeedUser(t, h.ctx, h.db, "s1@example.com", types.RoleStudent)
	testutil.SeedUser(t, h.ctx, h.db, "s2@example.com", types.RoleStudent)
	testutil.SeedCareer(t, h.ctx, h.db, "SRE", time.Now())
	testutil.SeedResource(t, h.ctx, h.db, "Guide", time.Now())

	out, err := h.dashboard().Stats(h.ctx, admin.ID)
	require.NoError(t, err)
	stats, ok := out.(*AdminStats)
	require.True(t, ok, "admin gets admin stats, got %T", out)
	assert.Equal(t, AdminStats{TotalStudents: 2, TotalCareers: 1, TotalOpportunities: 0, TotalResources: 1}, *stats)
}

func TestDashboardRanking(t *testing.T) {
	h := newHarness(t)
	lower := testutil.SeedUser(t, h.ctx, h.db, "lower@example.com", types.RoleStudent)
	higher := testutil.SeedUser(t, h.ctx, h.db, "higher@example.com", types.RoleStudent)
	testutil.SeedUser(t, h.ctx, h.db, "none@example.com", types.RoleStudent)
	testutil.SeedProfile(t, h.ctx, h.db, lower.ID, testutil.Float(1.25))
	testutil.SeedProfile(t, h.ctx, h.db, higher.ID, testutil.Float(2.0))

	r, err := h.dashboard().Ranking(h.ctx, lower.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, r.TotalStudents)
	assert.Equal(t, 2, r.Rank)
	assert.Equal(t, 67, r.Percentile)
}
