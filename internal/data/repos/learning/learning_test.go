package learning

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/yungbote/careerhub-backend/internal/data/repos/testutil"
	types "github.com/yungbote/careerhub-backend/internal/domain"
)

func TestGoalRepoCountsAndOwnership(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()

	repo := NewGoalRepo(db, testutil.Logger(t))
	u := testutil.SeedUser(t, ctx, tx, "goals@example.com", types.RoleStudent)
	other := testutil.SeedUser(t, ctx, tx, "goals-other@example.com", types.RoleStudent)

	base := time.Now().UTC().Add(-time.Hour)
	testutil.SeedGoal(t, ctx, tx, u.ID, "one", types.GoalCompleted, base)
	testutil.SeedGoal(t, ctx, tx, u.ID, "two", types.GoalInProgress, base.Add(time.Minute))
	testutil.SeedGoal(t, ctx, tx, u.ID, "three", types.GoalInProgress, base.Add(2*time.Minute))
	g4 := testutil.SeedGoal(t, ctx, tx, u.ID, "four", types.GoalNotStarted, base.Add(3*time.Minute))

	counts, err := repo.CountsByUser(ctx, tx, u.ID)
	if err != nil {
		t.Fatalf("CountsByUser: %v", err)
	}
	if counts.Total != 4 || counts.Completed != 1 || counts.InProgress != 2 {
		t.Fatalf("CountsByUser: unexpected %+v", counts)
	}

	recent, err := repo.ListByUser(ctx, tx, u.ID, 3)
	if err != nil || len(recent) != 3 || recent[0].ID != g4.ID {
		t.Fatalf("ListByUser(3): %v", err)
	}

	stolen, err := repo.UpdateForUser(ctx, tx, other.ID, g4.ID, map[string]any{"title": "mine"})
	if err != nil || stolen != nil {
		t.Fatalf("UpdateForUser (other user): %+v, %v", stolen, err)
	}
	if err := repo.DeleteForUser(ctx, tx, other.ID, g4.ID); err != nil {
		t.Fatalf("DeleteForUser (other user): %v", err)
	}
	still, _ := repo.GetForUser(ctx, tx, u.ID, g4.ID)
	if still == nil {
		t.Fatalf("DeleteForUser by another user removed the goal")
	}
}

func TestProgressRecordRepoOrder(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()

	repo := NewProgressRecordRepo(db, testutil.Logger(t))
	u := testutil.SeedUser(t, ctx, tx, "progress@example.com", types.RoleStudent)

	now := time.Now().UTC()
	testutil.SeedProgress(t, ctx, tx, u.ID, "go", 25, now.Add(-time.Hour))
	testutil.SeedProgress(t, ctx, tx, u.ID, "go", 70, now)
	testutil.SeedProgress(t, ctx, tx, u.ID, "sql", 40, now.Add(-time.Minute))

	rows, err := repo.ListByUser(ctx, tx, u.ID)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	latest := types.LatestPerSkill(rows)
	if len(latest) != 2 || latest[0].SkillName != "go" || latest[0].Level != 70 {
		t.Fatalf("LatestPerSkill: unexpected %+v", latest)
	}
}

func TestResourceRepoIncrementDownloads(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()

	repo := NewResourceRepo(db, testutil.Logger(t))
	r := testutil.SeedResource(t, ctx, tx, "resume template", time.Now().UTC())

	for i := 0; i < 3; i++ {
		ok, err := repo.IncrementDownloads(ctx, tx, r.ID)
		if err != nil || !ok {
			t.Fatalf("IncrementDownloads: %v, %v", ok, err)
		}
	}
	got, err := repo.GetByID(ctx, tx, r.ID)
	if err != nil || got.DownloadCount != 3 {
		t.Fatalf("GetByID: %+v, %v", got, err)
	}

	ok, err := repo.IncrementDownloads(ctx, tx, uuid.New())
	if err != nil || ok {
		t.Fatalf("IncrementDownloads (missing): %v, %v", ok, err)
	}
}

func TestTrainingProgramRepoListActive(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()

	repo := NewTrainingProgramRepo(db, testutil.Logger(t))
	active := testutil.SeedTrainingProgram(t, ctx, tx, "cloud bootcamp", true)
	testutil.SeedTrainingProgram(t, ctx, tx, "retired course", false)

	rows, err := repo.ListActive(ctx, tx)
	if err != nil {
		t.Fatalf("ListActive: %v", err)
	}
	found := false
	for _, p := range rows {
		if !p.IsActive {
			t.Fatalf("ListActive: returned inactive %q", p.Title)
		}
		if p.ID == active.ID {
			found = true
		}
	}
	if !found {
		t.Fatalf("ListActive: missing active program")
	}
}
