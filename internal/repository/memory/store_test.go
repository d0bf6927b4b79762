package memory

import (
	"context"
	"testing"

	"pollbase/internal/model"
)

func TestSequenceIsMonotonicPerName(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	for want := int64(1); want <= 3; want++ {
		got, err := store.Next(ctx, "surveys")
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		if got != want {
			t.Errorf("Next(surveys) = %d, want %d", got, want)
		}
	}

	// Independent counters per name.
	got, err := store.Next(ctx, "questions")
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if got != 1 {
		t.Errorf("Next(questions) = %d, want 1", got)
	}
}

func TestRepoReturnsCopies(t *testing.T) {
	store := NewStore()
	repo := NewSurveyRepo(store)
	ctx := context.Background()

	survey := &model.Survey{Title: "original"}
	if err := repo.Create(ctx, survey); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByID(ctx, survey.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	got.Title = "mutated"

	again, _ := repo.GetByID(ctx, survey.ID)
	if again.Title != "original" {
		t.Errorf("stored title = %q, caller mutation leaked into the store", again.Title)
	}
}

func TestGetByIDMissingReturnsNil(t *testing.T) {
	store := NewStore()
	repo := NewSurveyRepo(store)

	survey, err := repo.GetByID(context.Background(), 42)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if survey != nil {
		t.Errorf("got %+v, want nil", survey)
	}
}

func TestTxCommitKeepsWrites(t *testing.T) {
	store := NewStore()
	surveys := NewSurveyRepo(store)
	ctx := context.Background()

	tx, err := store.Begin(ctx)
	if err != nil {
		t.Fatalf("Begin: %v", err)
	}
	if err := surveys.Create(tx.Context(), &model.Survey{Title: "kept"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := tx.Commit(); err != nil {
		t.Fatalf("Commit: %v", err)
	}
	// Rollback after commit is a no-op; deferred rollbacks rely on this.
	if err := tx.Rollback(); err != nil {
		t.Fatalf("Rollback after commit: %v", err)
	}

	all, _ := surveys.GetAll(ctx)
	if len(all) != 1 {
		t.Fatalf("got %d surveys, want 1", len(all))
	}
}

func TestTxRollbackDiscardsWrites(t *testing.T) {
	store := NewStore()
	surveys := NewSurveyRepo(store)
	answers := NewAnswerRepo(store)
	ctx := context.Background()

	if err := surveys.Create(ctx, &model.Survey{Title: "pre-existing"}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	tx, err := store.Begin(ctx)
	if err != nil {
		t.Fatalf("Begin: %v", err)
	}
	tctx := tx.Context()
	if err := surveys.Create(tctx, &model.Survey{Title: "discarded"}); err != nil {
		t.Fatalf("Create in tx: %v", err)
	}
	if err := answers.CreateMany(tctx, []*model.Answer{
		{QuestionID: 1, SelectedOptionIDs: []int64{1}},
	}); err != nil {
		t.Fatalf("CreateMany in tx: %v", err)
	}
	if err := tx.Rollback(); err != nil {
		t.Fatalf("Rollback: %v", err)
	}

	all, _ := surveys.GetAll(ctx)
	if len(all) != 1 || all[0].Title != "pre-existing" {
		t.Errorf("surveys after rollback = %v", all)
	}
	stored, _ := answers.GetAll(ctx)
	if len(stored) != 0 {
		t.Errorf("got %d answers after rollback, want 0", len(stored))
	}
}

func TestGetByIDsSkipsDuplicateIDs(t *testing.T) {
	store := NewStore()
	repo := NewSurveyRepo(store)
	ctx := context.Background()

	survey := &model.Survey{Title: "once"}
	if err := repo.Create(ctx, survey); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByIDs(ctx, []int64{survey.ID, survey.ID, survey.ID})
	if err != nil {
		t.Fatalf("GetByIDs: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("got %d surveys for a duplicated id, want 1", len(got))
	}
}

func TestGetBySurveyIDZeroMatchesNothing(t *testing.T) {
	store := NewStore()
	answers := NewAnswerRepo(store)
	ctx := context.Background()

	// A standalone answer, not attached to any survey.
	if err := answers.Create(ctx, &model.Answer{
		QuestionID:        1,
		SelectedOptionIDs: []int64{1},
	}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := answers.GetBySurveyID(ctx, 0)
	if err != nil {
		t.Fatalf("GetBySurveyID: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("GetBySurveyID(0) returned %d standalone answers, want 0", len(got))
	}
}

func TestTxRollbackLeavesOtherWrites(t *testing.T) {
	store := NewStore()
	surveys := NewSurveyRepo(store)
	ctx := context.Background()

	tx, err := store.Begin(ctx)
	if err != nil {
		t.Fatalf("Begin: %v", err)
	}
	if err := surveys.Create(tx.Context(), &model.Survey{Title: "in tx"}); err != nil {
		t.Fatalf("Create in tx: %v", err)
	}

	// A write outside the transaction, while the transaction is open, must
	// survive the rollback.
	outside := &model.Survey{Title: "outside"}
	if err := surveys.Create(ctx, outside); err != nil {
		t.Fatalf("Create outside tx: %v", err)
	}

	if err := tx.Rollback(); err != nil {
		t.Fatalf("Rollback: %v", err)
	}

	all, _ := surveys.GetAll(ctx)
	if len(all) != 1 {
		t.Fatalf("got %d surveys after rollback, want 1", len(all))
	}
	if all[0].ID != outside.ID || all[0].Title != "outside" {
		t.Errorf("surviving survey = %+v, want the one created outside the transaction", all[0])
	}
}

func TestTxRollbackRestoresUpdates(t *testing.T) {
	store := NewStore()
	surveys := NewSurveyRepo(store)
	ctx := context.Background()

	survey := &model.Survey{Title: "stable"}
	if err := surveys.Create(ctx, survey); err != nil {
		t.Fatalf("Create: %v", err)
	}

	tx, err := store.Begin(ctx)
	if err != nil {
		t.Fatalf("Begin: %v", err)
	}
	survey.IsCompleted = true
	if err := surveys.Update(tx.Context(), survey); err != nil {
		t.Fatalf("Update in tx: %v", err)
	}
	if err := tx.Rollback(); err != nil {
		t.Fatalf("Rollback: %v", err)
	}

	got, _ := surveys.GetByID(ctx, survey.ID)
	if got.IsCompleted {
		t.Error("update survived rollback")
	}
}
