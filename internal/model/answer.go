package model

import "time"

// Answer records a respondent's selected option(s) for one question.
// SurveyID is set only when the answer was created through the survey
// completion workflow; it stays zero for answers created standalone.
type Answer struct {
	ID                int64     `json:"id" bson:"_id"`
	QuestionID        int64     `json:"questionId" bson:"questionId"`
	SelectedOptionIDs []int64   `json:"selectedOptionIds" bson:"selectedOptionIds"`
	SurveyID          int64     `json:"surveyId,omitempty" bson:"surveyId,omitempty"`
	CreatedAt         time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt" bson:"updatedAt"`
}
