package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"pollbase/internal/model"
)

// SurveyRepo handles MongoDB operations for surveys
type SurveyRepo interface {
	Create(ctx context.Context, survey *model.Survey) error
	GetByID(ctx context.Context, id int64) (*model.Survey, error)
	GetByIDs(ctx context.Context, ids []int64) ([]*model.Survey, error)
	GetAll(ctx context.Context) ([]*model.Survey, error)
	GetCompleted(ctx context.Context) ([]*model.Survey, error)
	Update(ctx context.Context, survey *model.Survey) error
	Delete(ctx context.Context, id int64) error
}

type surveyRepo struct {
	collection *mongo.Collection
	seq        Sequence
}

// NewSurveyRepo creates a new survey repository
func NewSurveyRepo(db *mongo.Database, seq Sequence) SurveyRepo {
	return &surveyRepo{
		collection: db.Collection("surveys"),
		seq:        seq,
	}
}

func (r *surveyRepo) Create(ctx context.Context, survey *model.Survey) error {
	id, err := r.seq.Next(ctx, "surveys")
	if err != nil {
		return err
	}
	survey.ID = id
	survey.CreatedAt = time.Now()
	survey.UpdatedAt = time.Now()

	_, err = r.collection.InsertOne(ctx, survey)
	return err
}

func (r *surveyRepo) GetByID(ctx context.Context, id int64) (*model.Survey, error) {
	var survey model.Survey
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&survey)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &survey, nil
}

func (r *surveyRepo) GetByIDs(ctx context.Context, ids []int64) ([]*model.Survey, error) {
	return r.find(ctx, bson.M{"_id": bson.M{"$in": ids}})
}

func (r *surveyRepo) GetAll(ctx context.Context) ([]*model.Survey, error) {
	return r.find(ctx, bson.M{})
}

func (r *surveyRepo) GetCompleted(ctx context.Context) ([]*model.Survey, error) {
	return r.find(ctx, bson.M{"isCompleted": true})
}

func (r *surveyRepo) find(ctx context.Context, filter bson.M) ([]*model.Survey, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var surveys []*model.Survey
	if err := cursor.All(ctx, &surveys); err != nil {
		return nil, err
	}
	return surveys, nil
}

func (r *surveyRepo) Update(ctx context.Context, survey *model.Survey) error {
	survey.UpdatedAt = time.Now()
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": survey.ID}, survey)
	return err
}

func (r *surveyRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
