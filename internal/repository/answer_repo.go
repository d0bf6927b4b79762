package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"pollbase/internal/model"
)

// AnswerRepo handles MongoDB operations for answers
type AnswerRepo interface {
	Create(ctx context.Context, answer *model.Answer) error
	CreateMany(ctx context.Context, answers []*model.Answer) error
	GetByID(ctx context.Context, id int64) (*model.Answer, error)
	GetBySurveyID(ctx context.Context, surveyID int64) ([]*model.Answer, error)
	GetAll(ctx context.Context) ([]*model.Answer, error)
	Update(ctx context.Context, answer *model.Answer) error
	Delete(ctx context.Context, id int64) error
}

type answerRepo struct {
	collection *mongo.Collection
	seq        Sequence
}

// NewAnswerRepo creates a new answer repository
func NewAnswerRepo(db *mongo.Database, seq Sequence) AnswerRepo {
	return &answerRepo{
		collection: db.Collection("answers"),
		seq:        seq,
	}
}

func (r *answerRepo) Create(ctx context.Context, answer *model.Answer) error {
	id, err := r.seq.Next(ctx, "answers")
	if err != nil {
		return err
	}
	answer.ID = id
	answer.CreatedAt = time.Now()
	answer.UpdatedAt = time.Now()

	_, err = r.collection.InsertOne(ctx, answer)
	return err
}

func (r *answerRepo) CreateMany(ctx context.Context, answers []*model.Answer) error {
	if len(answers) == 0 {
		return nil
	}
	docs := make([]interface{}, 0, len(answers))
	for _, answer := range answers {
		id, err := r.seq.Next(ctx, "answers")
		if err != nil {
			return err
		}
		answer.ID = id
		answer.CreatedAt = time.Now()
		answer.UpdatedAt = time.Now()
		docs = append(docs, answer)
	}
	_, err := r.collection.InsertMany(ctx, docs)
	return err
}

func (r *answerRepo) GetByID(ctx context.Context, id int64) (*model.Answer, error) {
	var answer model.Answer
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&answer)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &answer, nil
}

func (r *answerRepo) GetBySurveyID(ctx context.Context, surveyID int64) ([]*model.Answer, error) {
	return r.find(ctx, bson.M{"surveyId": surveyID})
}

func (r *answerRepo) GetAll(ctx context.Context) ([]*model.Answer, error) {
	return r.find(ctx, bson.M{})
}

func (r *answerRepo) find(ctx context.Context, filter bson.M) ([]*model.Answer, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var answers []*model.Answer
	if err := cursor.All(ctx, &answers); err != nil {
		return nil, err
	}
	return answers, nil
}

func (r *answerRepo) Update(ctx context.Context, answer *model.Answer) error {
	answer.UpdatedAt = time.Now()
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": answer.ID}, answer)
	return err
}

func (r *answerRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
