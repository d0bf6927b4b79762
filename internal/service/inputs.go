package service

import (
	"github.com/go-playground/validator/v10"

	"pollbase/internal/apperr"
)

var validate = validator.New()

func validateInput(input interface{}) error {
	if err := validate.Struct(input); err != nil {
		return apperr.Invalidf("invalid input: %v", err)
	}
	return nil
}

// CreateSurveyInput creates a survey. IsCompleted may be preset, mirroring
// the update shape; the completion workflow is the normal way to set it.
type CreateSurveyInput struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	IsCompleted *bool  `json:"isCompleted"`
}

type UpdateSurveyInput struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	IsCompleted *bool   `json:"isCompleted"`
}

// AnswerSubmission is one entry of a completeSurvey call: the answered
// question and the option(s) the respondent selected. Single-select is a
// one-element list.
type AnswerSubmission struct {
	QuestionID        int64   `json:"questionId" validate:"required,gt=0"`
	SelectedOptionIDs []int64 `json:"selectedOptionIds" validate:"required,min=1,dive,gt=0"`
}

type CreateQuestionInput struct {
	Content   string  `json:"content" validate:"required"`
	SurveyIDs []int64 `json:"surveyIds" validate:"omitempty,dive,gt=0"`
}

type UpdateQuestionInput struct {
	Content *string `json:"content"`
}

type CreateOptionInput struct {
	Content    string `json:"content" validate:"required"`
	Score      *int   `json:"score" validate:"required"`
	QuestionID int64  `json:"questionId" validate:"required,gt=0"`
}

type UpdateOptionInput struct {
	Content *string `json:"content"`
	Score   *int    `json:"score"`
}

type CreateAnswerInput struct {
	QuestionID        int64   `json:"questionId" validate:"required,gt=0"`
	SelectedOptionIDs []int64 `json:"selectedOptionIds" validate:"required,min=1,dive,gt=0"`
}

type UpdateAnswerInput struct {
	QuestionID        *int64  `json:"questionId"`
	SelectedOptionIDs []int64 `json:"selectedOptionIds"`
}
