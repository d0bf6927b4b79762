package service

import (
	"context"
	"sync"
	"testing"

	"pollbase/internal/model"
	"pollbase/internal/repository/memory"
)

// recordingScoreCache is an in-memory ScoreCache that also counts hits and
// invalidations so tests can observe cache interactions.
type recordingScoreCache struct {
	mu            sync.Mutex
	entries       map[int64]int
	hits          int
	invalidations []int64
}

func newRecordingScoreCache() *recordingScoreCache {
	return &recordingScoreCache{entries: make(map[int64]int)}
}

func (c *recordingScoreCache) Get(ctx context.Context, surveyID int64) (int, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	score, ok := c.entries[surveyID]
	if ok {
		c.hits++
	}
	return score, ok, nil
}

func (c *recordingScoreCache) Set(ctx context.Context, surveyID int64, score int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[surveyID] = score
	return nil
}

func (c *recordingScoreCache) Invalidate(ctx context.Context, surveyID int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, surveyID)
	c.invalidations = append(c.invalidations, surveyID)
	return nil
}

type testEnv struct {
	store     *memory.Store
	scores    *recordingScoreCache
	surveys   *SurveyService
	questions *QuestionService
	options   *OptionService
	answers   *AnswerService
}

func newTestEnv(policy CompletionPolicy) *testEnv {
	store := memory.NewStore()
	scores := newRecordingScoreCache()

	surveyRepo := memory.NewSurveyRepo(store)
	questionRepo := memory.NewQuestionRepo(store)
	optionRepo := memory.NewOptionRepo(store)
	answerRepo := memory.NewAnswerRepo(store)
	surveyQuestionRepo := memory.NewSurveyQuestionRepo(store)

	return &testEnv{
		store:  store,
		scores: scores,
		surveys: NewSurveyService(
			surveyRepo, questionRepo, optionRepo, answerRepo, surveyQuestionRepo,
			store, scores, policy,
		),
		questions: NewQuestionService(questionRepo, surveyRepo, surveyQuestionRepo),
		options:   NewOptionService(optionRepo, questionRepo),
		answers:   NewAnswerService(answerRepo, questionRepo, optionRepo, scores),
	}
}

func (e *testEnv) mustSurvey(t *testing.T, title string) *model.Survey {
	t.Helper()
	survey, err := e.surveys.Create(context.Background(), CreateSurveyInput{Title: title})
	if err != nil {
		t.Fatalf("create survey: %v", err)
	}
	return survey
}

func (e *testEnv) mustQuestion(t *testing.T, content string, surveyIDs ...int64) *model.Question {
	t.Helper()
	question, err := e.questions.Create(context.Background(), CreateQuestionInput{
		Content:   content,
		SurveyIDs: surveyIDs,
	})
	if err != nil {
		t.Fatalf("create question: %v", err)
	}
	return question
}

func (e *testEnv) mustOption(t *testing.T, questionID int64, content string, score int) *model.Option {
	t.Helper()
	option, err := e.options.Create(context.Background(), CreateOptionInput{
		Content:    content,
		Score:      &score,
		QuestionID: questionID,
	})
	if err != nil {
		t.Fatalf("create option: %v", err)
	}
	return option
}
