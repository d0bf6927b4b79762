package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"pollbase/internal/model"
)

// SurveyQuestionRepo handles MongoDB operations for survey-question links
type SurveyQuestionRepo interface {
	CreateMany(ctx context.Context, links []*model.SurveyQuestion) error
	GetBySurveyID(ctx context.Context, surveyID int64) ([]*model.SurveyQuestion, error)
	GetBySurveyAndQuestionIDs(ctx context.Context, surveyID int64, questionIDs []int64) ([]*model.SurveyQuestion, error)
	DeleteBySurveyID(ctx context.Context, surveyID int64) error
	DeleteByQuestionID(ctx context.Context, questionID int64) error
}

type surveyQuestionRepo struct {
	collection *mongo.Collection
	seq        Sequence
}

// NewSurveyQuestionRepo creates a new survey-question link repository
func NewSurveyQuestionRepo(db *mongo.Database, seq Sequence) SurveyQuestionRepo {
	return &surveyQuestionRepo{
		collection: db.Collection("survey_questions"),
		seq:        seq,
	}
}

func (r *surveyQuestionRepo) CreateMany(ctx context.Context, links []*model.SurveyQuestion) error {
	if len(links) == 0 {
		return nil
	}
	docs := make([]interface{}, 0, len(links))
	for _, link := range links {
		id, err := r.seq.Next(ctx, "survey_questions")
		if err != nil {
			return err
		}
		link.ID = id
		link.CreatedAt = time.Now()
		docs = append(docs, link)
	}
	_, err := r.collection.InsertMany(ctx, docs)
	return err
}

func (r *surveyQuestionRepo) GetBySurveyID(ctx context.Context, surveyID int64) ([]*model.SurveyQuestion, error) {
	return r.find(ctx, bson.M{"surveyId": surveyID})
}

func (r *surveyQuestionRepo) GetBySurveyAndQuestionIDs(ctx context.Context, surveyID int64, questionIDs []int64) ([]*model.SurveyQuestion, error) {
	return r.find(ctx, bson.M{
		"surveyId":   surveyID,
		"questionId": bson.M{"$in": questionIDs},
	})
}

func (r *surveyQuestionRepo) find(ctx context.Context, filter bson.M) ([]*model.SurveyQuestion, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var links []*model.SurveyQuestion
	if err := cursor.All(ctx, &links); err != nil {
		return nil, err
	}
	return links, nil
}

func (r *surveyQuestionRepo) DeleteBySurveyID(ctx context.Context, surveyID int64) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"surveyId": surveyID})
	return err
}

func (r *surveyQuestionRepo) DeleteByQuestionID(ctx context.Context, questionID int64) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"questionId": questionID})
	return err
}
