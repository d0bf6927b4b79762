package model

import "time"

// Option is a selectable choice for a question. Score is what the option
// contributes to a survey's total when a respondent selects it.
type Option struct {
	ID         int64     `json:"id" bson:"_id"`
	Content    string    `json:"content" bson:"content"`
	Score      int       `json:"score" bson:"score"`
	QuestionID int64     `json:"questionId" bson:"questionId"`
	CreatedAt  time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt" bson:"updatedAt"`
}
