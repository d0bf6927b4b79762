package gql

import (
	"context"
	"fmt"
	"testing"

	"github.com/graphql-go/graphql"

	"pollbase/internal/cache"
	"pollbase/internal/repository/memory"
	"pollbase/internal/service"
)

func newTestSchema(t *testing.T) graphql.Schema {
	t.Helper()

	store := memory.NewStore()
	scores := cache.NewNoopScoreCache()

	surveyRepo := memory.NewSurveyRepo(store)
	questionRepo := memory.NewQuestionRepo(store)
	optionRepo := memory.NewOptionRepo(store)
	answerRepo := memory.NewAnswerRepo(store)
	surveyQuestionRepo := memory.NewSurveyQuestionRepo(store)

	schema, err := NewSchema(&Resolver{
		Surveys: service.NewSurveyService(
			surveyRepo, questionRepo, optionRepo, answerRepo, surveyQuestionRepo,
			store, scores, service.PolicyReject,
		),
		Questions: service.NewQuestionService(questionRepo, surveyRepo, surveyQuestionRepo),
		Options:   service.NewOptionService(optionRepo, questionRepo),
		Answers:   service.NewAnswerService(answerRepo, questionRepo, optionRepo, scores),
	})
	if err != nil {
		t.Fatalf("NewSchema: %v", err)
	}
	return schema
}

func exec(t *testing.T, schema graphql.Schema, query string) map[string]interface{} {
	t.Helper()
	result := graphql.Do(graphql.Params{
		Schema:        schema,
		RequestString: query,
		Context:       context.Background(),
	})
	if len(result.Errors) > 0 {
		t.Fatalf("query %s failed: %v", query, result.Errors)
	}
	return result.Data.(map[string]interface{})
}

func asInt(t *testing.T, v interface{}) int {
	t.Helper()
	n, ok := v.(int)
	if !ok {
		t.Fatalf("value %v (%T) is not an int", v, v)
	}
	return n
}

func TestSurveyLifecycle(t *testing.T) {
	schema := newTestSchema(t)

	data := exec(t, schema, `mutation {
		createSurvey(createSurveyInput: {title: "Feedback", description: "post-launch"}) {
			id title isCompleted
		}
	}`)
	survey := data["createSurvey"].(map[string]interface{})
	surveyID := asInt(t, survey["id"])
	if survey["title"] != "Feedback" {
		t.Errorf("title = %v", survey["title"])
	}
	if survey["isCompleted"] != false {
		t.Errorf("isCompleted = %v, want false", survey["isCompleted"])
	}

	data = exec(t, schema, fmt.Sprintf(`mutation {
		createQuestion(createQuestionInput: {content: "How satisfied?", surveyIds: [%d]}) { id }
	}`, surveyID))
	questionID := asInt(t, data["createQuestion"].(map[string]interface{})["id"])

	data = exec(t, schema, fmt.Sprintf(`mutation {
		createOption(createOptionInput: {content: "Very", score: 10, questionId: %d}) { id score }
	}`, questionID))
	optionID := asInt(t, data["createOption"].(map[string]interface{})["id"])

	// No completed surveys yet.
	data = exec(t, schema, `{ getCompletedSurveys { id } }`)
	if completed := data["getCompletedSurveys"].([]interface{}); len(completed) != 0 {
		t.Fatalf("got %d completed surveys, want 0", len(completed))
	}

	data = exec(t, schema, fmt.Sprintf(`mutation {
		completeSurvey(id: %d, completeSurveyInput: {
			answers: [{questionId: %d, selectedOptionIds: [%d]}]
		})
	}`, surveyID, questionID, optionID))
	if data["completeSurvey"] != true {
		t.Fatalf("completeSurvey = %v", data["completeSurvey"])
	}

	data = exec(t, schema, `{ getCompletedSurveys { id isCompleted } }`)
	completed := data["getCompletedSurveys"].([]interface{})
	if len(completed) != 1 {
		t.Fatalf("got %d completed surveys, want 1", len(completed))
	}
	if got := asInt(t, completed[0].(map[string]interface{})["id"]); got != surveyID {
		t.Errorf("completed survey id = %d, want %d", got, surveyID)
	}

	data = exec(t, schema, fmt.Sprintf(`{ getSurveyTotalScore(id: %d) }`, surveyID))
	if score := asInt(t, data["getSurveyTotalScore"]); score != 10 {
		t.Errorf("getSurveyTotalScore = %d, want 10", score)
	}

	// Nested resolution from the survey down to the scored options.
	data = exec(t, schema, fmt.Sprintf(`{
		getSurvey(id: %d) {
			answers {
				question { id content }
				selectedOptions { id score }
			}
		}
	}`, surveyID))
	answers := data["getSurvey"].(map[string]interface{})["answers"].([]interface{})
	if len(answers) != 1 {
		t.Fatalf("got %d answers, want 1", len(answers))
	}
	answer := answers[0].(map[string]interface{})
	if got := asInt(t, answer["question"].(map[string]interface{})["id"]); got != questionID {
		t.Errorf("answer question id = %d, want %d", got, questionID)
	}
	selected := answer["selectedOptions"].([]interface{})
	if len(selected) != 1 {
		t.Fatalf("got %d selected options, want 1", len(selected))
	}
	if got := asInt(t, selected[0].(map[string]interface{})["score"]); got != 10 {
		t.Errorf("selected option score = %d, want 10", got)
	}
}

func TestCompleteSurveyErrorExtensions(t *testing.T) {
	schema := newTestSchema(t)

	data := exec(t, schema, `mutation {
		createSurvey(createSurveyInput: {title: "Feedback"}) { id }
	}`)
	surveyID := asInt(t, data["createSurvey"].(map[string]interface{})["id"])

	result := graphql.Do(graphql.Params{
		Schema: schema,
		RequestString: fmt.Sprintf(`mutation {
			completeSurvey(id: %d, completeSurveyInput: {
				answers: [{questionId: 999, selectedOptionIds: [1]}]
			})
		}`, surveyID),
		Context: context.Background(),
	})
	if len(result.Errors) != 1 {
		t.Fatalf("got %d errors, want 1: %v", len(result.Errors), result.Errors)
	}
	gqlErr := result.Errors[0]
	if want := "Question with ID 999 not found"; gqlErr.Message != want {
		t.Errorf("message = %q, want %q", gqlErr.Message, want)
	}
	if gqlErr.Extensions["code"] != "NOT_FOUND" {
		t.Errorf("code = %v, want NOT_FOUND", gqlErr.Extensions["code"])
	}
	if gqlErr.Extensions["httpStatusCode"] != 404 {
		t.Errorf("httpStatusCode = %v, want 404", gqlErr.Extensions["httpStatusCode"])
	}

	// The failed completion must leave the survey untouched.
	data = exec(t, schema, fmt.Sprintf(`{ getSurvey(id: %d) { isCompleted answers { id } } }`, surveyID))
	survey := data["getSurvey"].(map[string]interface{})
	if survey["isCompleted"] != false {
		t.Error("survey marked completed after failed completion")
	}
	if answers := survey["answers"].([]interface{}); len(answers) != 0 {
		t.Errorf("got %d answers after failed completion, want 0", len(answers))
	}
}

func TestGetSurveyNotFound(t *testing.T) {
	schema := newTestSchema(t)

	result := graphql.Do(graphql.Params{
		Schema:        schema,
		RequestString: `{ getSurvey(id: 42) { id } }`,
		Context:       context.Background(),
	})
	if len(result.Errors) != 1 {
		t.Fatalf("got %d errors, want 1: %v", len(result.Errors), result.Errors)
	}
	if want := "Survey with ID 42 not found"; result.Errors[0].Message != want {
		t.Errorf("message = %q, want %q", result.Errors[0].Message, want)
	}
	if result.Errors[0].Extensions["code"] != "NOT_FOUND" {
		t.Errorf("code = %v, want NOT_FOUND", result.Errors[0].Extensions["code"])
	}
}

func TestStandaloneAnswerMutations(t *testing.T) {
	schema := newTestSchema(t)

	data := exec(t, schema, `mutation {
		createQuestion(createQuestionInput: {content: "Q"}) { id }
	}`)
	questionID := asInt(t, data["createQuestion"].(map[string]interface{})["id"])

	data = exec(t, schema, fmt.Sprintf(`mutation {
		createOption(createOptionInput: {content: "A", score: 2, questionId: %d}) { id }
	}`, questionID))
	optionID := asInt(t, data["createOption"].(map[string]interface{})["id"])

	data = exec(t, schema, fmt.Sprintf(`mutation {
		createAnswer(createAnswerInput: {questionId: %d, selectedOptionIds: [%d]}) {
			id
			survey { id }
			selectedOptions { id }
		}
	}`, questionID, optionID))
	answer := data["createAnswer"].(map[string]interface{})
	answerID := asInt(t, answer["id"])
	if answer["survey"] != nil {
		t.Errorf("standalone answer has survey %v", answer["survey"])
	}
	if selected := answer["selectedOptions"].([]interface{}); len(selected) != 1 {
		t.Errorf("got %d selected options, want 1", len(selected))
	}

	data = exec(t, schema, fmt.Sprintf(`mutation { deleteAnswer(id: %d) }`, answerID))
	if data["deleteAnswer"] != true {
		t.Errorf("deleteAnswer = %v", data["deleteAnswer"])
	}
}
