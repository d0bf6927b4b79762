package model

import "time"

// Survey is a container of questions answered once by a respondent.
// IsCompleted flips to true through the completion workflow and never reverts.
type Survey struct {
	ID          int64     `json:"id" bson:"_id"`
	Title       string    `json:"title" bson:"title"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	IsCompleted bool      `json:"isCompleted" bson:"isCompleted"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updatedAt"`
}

// SurveyQuestion links a question into a survey's question set. It is the
// authoritative record for "does question Q belong to survey S" and is what
// the completion workflow checks before accepting an answer.
type SurveyQuestion struct {
	ID         int64     `json:"id" bson:"_id"`
	SurveyID   int64     `json:"surveyId" bson:"surveyId"`
	QuestionID int64     `json:"questionId" bson:"questionId"`
	CreatedAt  time.Time `json:"createdAt" bson:"createdAt"`
}
