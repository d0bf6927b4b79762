package service

import (
	"context"
	"testing"
)

func TestTotalScoreEmptySurvey(t *testing.T) {
	env := newTestEnv(PolicyReject)
	survey := env.mustSurvey(t, "Empty")

	score, err := env.surveys.TotalScore(context.Background(), survey.ID)
	if err != nil {
		t.Fatalf("TotalScore: %v", err)
	}
	if score != 0 {
		t.Errorf("score = %d, want 0", score)
	}
}

func TestTotalScoreNonexistentSurvey(t *testing.T) {
	env := newTestEnv(PolicyReject)

	// Absent surveys behave like surveys with no answers.
	score, err := env.surveys.TotalScore(context.Background(), 999)
	if err != nil {
		t.Fatalf("TotalScore: %v", err)
	}
	if score != 0 {
		t.Errorf("score = %d, want 0", score)
	}
}

func TestTotalScoreIgnoresStandaloneAnswers(t *testing.T) {
	env := newTestEnv(PolicyReject)
	ctx := context.Background()

	question := env.mustQuestion(t, "Q")
	option := env.mustOption(t, question.ID, "A", 9)

	// A standalone answer is not attached to any survey; asking for the
	// score of survey id 0 must not aggregate it.
	if _, err := env.answers.Create(ctx, CreateAnswerInput{
		QuestionID:        question.ID,
		SelectedOptionIDs: []int64{option.ID},
	}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	score, err := env.surveys.TotalScore(ctx, 0)
	if err != nil {
		t.Fatalf("TotalScore: %v", err)
	}
	if score != 0 {
		t.Errorf("TotalScore(0) = %d, want 0", score)
	}
}

func TestTotalScoreSumsSelectedOptions(t *testing.T) {
	env := newTestEnv(PolicyReject)
	ctx := context.Background()

	survey := env.mustSurvey(t, "Scored")
	q1 := env.mustQuestion(t, "Q1", survey.ID)
	q2 := env.mustQuestion(t, "Q2", survey.ID)
	o1 := env.mustOption(t, q1.ID, "A", 5)
	o2 := env.mustOption(t, q1.ID, "B", 10)
	o3 := env.mustOption(t, q2.ID, "C", 3)

	if _, err := env.surveys.CompleteSurvey(ctx, survey.ID, []AnswerSubmission{
		{QuestionID: q1.ID, SelectedOptionIDs: []int64{o1.ID, o2.ID}},
		{QuestionID: q2.ID, SelectedOptionIDs: []int64{o3.ID}},
	}); err != nil {
		t.Fatalf("CompleteSurvey: %v", err)
	}

	score, err := env.surveys.TotalScore(ctx, survey.ID)
	if err != nil {
		t.Fatalf("TotalScore: %v", err)
	}
	if score != 18 {
		t.Errorf("score = %d, want 18", score)
	}
}

func TestTotalScoreIsolatedPerSurvey(t *testing.T) {
	env := newTestEnv(PolicyReject)
	ctx := context.Background()

	surveyA := env.mustSurvey(t, "A")
	surveyB := env.mustSurvey(t, "B")
	qa := env.mustQuestion(t, "QA", surveyA.ID)
	qb := env.mustQuestion(t, "QB", surveyB.ID)
	oa := env.mustOption(t, qa.ID, "A", 7)
	ob := env.mustOption(t, qb.ID, "B", 11)

	env.surveys.CompleteSurvey(ctx, surveyA.ID, []AnswerSubmission{
		{QuestionID: qa.ID, SelectedOptionIDs: []int64{oa.ID}},
	})
	env.surveys.CompleteSurvey(ctx, surveyB.ID, []AnswerSubmission{
		{QuestionID: qb.ID, SelectedOptionIDs: []int64{ob.ID}},
	})

	if score, _ := env.surveys.TotalScore(ctx, surveyA.ID); score != 7 {
		t.Errorf("survey A score = %d, want 7", score)
	}
	if score, _ := env.surveys.TotalScore(ctx, surveyB.ID); score != 11 {
		t.Errorf("survey B score = %d, want 11", score)
	}
}

func TestTotalScoreSkipsMissingOptions(t *testing.T) {
	env := newTestEnv(PolicyReject)
	ctx := context.Background()

	survey := env.mustSurvey(t, "Stale")
	question := env.mustQuestion(t, "Q1", survey.ID)
	option := env.mustOption(t, question.ID, "A", 10)

	env.surveys.CompleteSurvey(ctx, survey.ID, []AnswerSubmission{
		{QuestionID: question.ID, SelectedOptionIDs: []int64{option.ID}},
	})

	// Deleting the option leaves a dangling reference in the stored answer;
	// the score treats it as zero rather than erroring.
	if _, err := env.options.Delete(ctx, option.ID); err != nil {
		t.Fatalf("delete option: %v", err)
	}

	score, err := env.surveys.TotalScore(ctx, survey.ID)
	if err != nil {
		t.Fatalf("TotalScore: %v", err)
	}
	if score != 0 {
		t.Errorf("score = %d, want 0", score)
	}
}

func TestTotalScoreUsesCache(t *testing.T) {
	env := newTestEnv(PolicyReject)
	ctx := context.Background()

	survey := env.mustSurvey(t, "Cached")
	question := env.mustQuestion(t, "Q1", survey.ID)
	option := env.mustOption(t, question.ID, "A", 10)

	env.surveys.CompleteSurvey(ctx, survey.ID, []AnswerSubmission{
		{QuestionID: question.ID, SelectedOptionIDs: []int64{option.ID}},
	})

	if _, err := env.surveys.TotalScore(ctx, survey.ID); err != nil {
		t.Fatalf("TotalScore: %v", err)
	}
	before := env.scores.hits
	if score, _ := env.surveys.TotalScore(ctx, survey.ID); score != 10 {
		t.Errorf("score = %d, want 10", score)
	}
	if env.scores.hits != before+1 {
		t.Errorf("second read did not hit the cache (hits %d -> %d)", before, env.scores.hits)
	}
}
