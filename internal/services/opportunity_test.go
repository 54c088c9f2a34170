package services

import (
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yungbote/careerhub-backend/internal/data/repos/testutil"
	types "github.com/yungbote/careerhub-backend/internal/domain"
	"github.com/yungbote/careerhub-backend/internal/platform/apierr"
)

func TestOpportunityCreateValidation(t *testing.T) {
	h := newHarness(t)
	svc := h.opportunities()

	_, err := svc.Create(h.ctx, OpportunityInput{Title: ptr("Intern"), Company: ptr("Acme")})
	assert.Equal(t, http.StatusBadRequest, apierr.StatusOf(err))

	_, err = svc.Create(h.ctx, OpportunityInput{Title: ptr("Intern"), Company: ptr("Acme"), Type: ptr("gig")})
	assert.Equal(t, http.StatusBadRequest, apierr.StatusOf(err))

	opp, err := svc.Create(h.ctx, OpportunityInput{
		Title:    ptr("Intern"),
		Company:  ptr("Acme"),
		Type:     ptr(types.OpportunityTypeInternship),
		Deadline: ptr("2026-12-01"),
	})
	require.NoError(t, err)
	assert.True(t, opp.IsActive)
	require.NotNil(t, opp.Deadline)
	assert.Equal(t, 2026, opp.Deadline.Year())

	_, err = svc.Update(h.ctx, opp.ID, OpportunityInput{Deadline: ptr("not a date")})
	assert.Equal(t, http.StatusBadRequest, apierr.StatusOf(err))
}

func TestOpportunityLatestAndInactive(t *testing.T) {
	h := newHarness(t)
	base := time.Now().Add(-time.Hour)
	for i, title := range []string{"a", "b", "c", "d"} {
		testutil.SeedOpportunity(t, h.ctx, h.db, title, true, base.Add(time.Duration(i)*time.Minute))
	}
	testutil.SeedOpportunity(t, h.ctx, h.db, "hidden", false, base.Add(time.Hour))

	svc := h.opportunities()
	all, err := svc.ListActive(h.ctx)
	require.NoError(t, err)
	assert.Len(t, all, 4)

	latest, err := svc.Latest(h.ctx)
	require.NoError(t, err)
	require.Len(t, latest, 3)
	assert.Equal(t, "d", latest[0].Title)
	assert.Equal(t, "b", latest[2].Title)
}

func TestOpportunityUpdateMissing(t *testing.T) {
	h := newHarness(t)
	_, err := h.opportunities().Update(h.ctx, uuid.New(), OpportunityInput{Title: ptr("x")})
	assert.Equal(t, http.StatusNotFound, apierr.StatusOf(err))
	assert.Equal(t, "Opportunity not found", err.Error())
}

func TestBookmarkSaveListUnsave(t *testing.T) {
	h := newHarness(t)
	user := testutil.SeedUser(t, h.ctx, h.db, "s@example.com", types.RoleStudent)
	opp := testutil.SeedOpportunity(t, h.ctx, h.db, "Backend intern", true, time.Now())
	svc := h.bookmarks()

	_, err := svc.Save(h.ctx, user.ID, uuid.New())
	assert.Equal(t, http.StatusNotFound, apierr.StatusOf(err))

	_, err = svc.Save(h.ctx, user.ID, opp.ID)
	require.NoError(t, err)

	_, err = svc.Save(h.ctx, user.ID, opp.ID)
	assert.Equal(t, "Already saved", err.Error())

	list, err := svc.ListSaved(h.ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, opp.ID, list[0].ID)

	require.NoError(t, svc.Unsave(h.ctx, user.ID, opp.ID))
	require.NoError(t, svc.Unsave(h.ctx, user.ID, opp.ID))

	list, err = svc.ListSaved(h.ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestApplicationLifecycle(t *testing.T) {
	h := newHarness(t)
	user := testutil.SeedUser(t, h.ctx, h.db, "s@example.com", types.RoleStudent)
	other := testutil.SeedUser(t, h.ctx, h.db, "o@example.com", types.RoleStudent)
	opp := testutil.SeedOpportunity(t, h.ctx, h.db, "Junior dev", true, time.Now())
	svc := h.applications()

	_, err := svc.Apply(h.ctx, user.ID, opp.ID, ApplicationInput{})
	assert.Equal(t, http.StatusBadRequest, apierr.StatusOf(err))

	app, err := svc.Apply(h.ctx, user.ID, opp.ID, ApplicationInput{ResumeURL: ptr("https://cdn/resume.pdf")})
	require.NoError(t, err)
	assert.Equal(t, types.ApplicationStatusPending, app.Status)

	_, err = svc.Apply(h.ctx, user.ID, opp.ID, ApplicationInput{ResumeURL: ptr("https://cdn/resume.pdf")})
	assert.Equal(t, "You have already applied to this opportunity", err.Error())

	_, err = svc.Update(h.ctx, other.ID, app.ID, ApplicationInput{CoverLetter: ptr("hi")})
	assert.Equal(t, http.StatusNotFound, apierr.StatusOf(err))

	updated, err := svc.Update(h.ctx, user.ID, app.ID, ApplicationInput{CoverLetter: ptr("hello")})
	require.NoError(t, err)
	assert.Equal(t, "hello", updated.CoverLetter)

	mine, err := svc.ListMine(h.ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	require.NotNil(t, mine[0].Opportunity)
	assert.Equal(t, "Junior dev", mine[0].Opportunity.Title)

	assert.Equal(t, http.StatusNotFound, apierr.StatusOf(svc.Withdraw(h.ctx, other.ID, app.ID)))
	require.NoError(t, svc.Withdraw(h.ctx, user.ID, app.ID))
	assert.Equal(t, http.StatusNotFound, apierr.StatusOf(svc.Withdraw(h.ctx, user.ID, app.ID)))
}

func TestOpportunityDeleteCascades(t *testing.T) {
	h := newHarness(t)
	user := testutil.SeedUser(t, h.ctx, h.db, "s@example.com", types.RoleStudent)
	opp := testutil.SeedOpportunity(t, h.ctx, h.db, "Data intern", true, time.Now())

	_, err := h.bookmarks().Save(h.ctx, user.ID, opp.ID)
	require.NoError(t, err)
	_, err = h.applications().Apply(h.ctx, user.ID, opp.ID, ApplicationInput{ResumeURL: ptr("r.pdf")})
	require.NoError(t, err)

	require.NoError(t, h.opportunities().Delete(h.ctx, opp.ID))

	saved, err := h.saved.CountByUser(h.ctx, nil, user.ID)
	require.NoError(t, err)
	assert.Zero(t, saved)
	apps, err := h.apps.CountByUser(h.ctx, nil, user.ID)
	require.NoError(t, err)
	assert.Zero(t, apps)
}
