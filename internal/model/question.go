package model

import "time"

// Question is a prompt offered to respondents. It may belong to any number of
// surveys via SurveyQuestion links and owns a set of scored options.
type Question struct {
	ID        int64     `json:"id" bson:"_id"`
	Content   string    `json:"content" bson:"content"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}
