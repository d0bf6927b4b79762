package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"pollbase/internal/model"
)

// OptionRepo handles MongoDB operations for options
type OptionRepo interface {
	Create(ctx context.Context, option *model.Option) error
	GetByID(ctx context.Context, id int64) (*model.Option, error)
	GetByIDs(ctx context.Context, ids []int64) ([]*model.Option, error)
	GetByQuestionID(ctx context.Context, questionID int64) ([]*model.Option, error)
	GetAll(ctx context.Context) ([]*model.Option, error)
	Update(ctx context.Context, option *model.Option) error
	Delete(ctx context.Context, id int64) error
}

type optionRepo struct {
	collection *mongo.Collection
	seq        Sequence
}

// NewOptionRepo creates a new option repository
func NewOptionRepo(db *mongo.Database, seq Sequence) OptionRepo {
	return &optionRepo{
		collection: db.Collection("options"),
		seq:        seq,
	}
}

func (r *optionRepo) Create(ctx context.Context, option *model.Option) error {
	id, err := r.seq.Next(ctx, "options")
	if err != nil {
		return err
	}
	option.ID = id
	option.CreatedAt = time.Now()
	option.UpdatedAt = time.Now()

	_, err = r.collection.InsertOne(ctx, option)
	return err
}

func (r *optionRepo) GetByID(ctx context.Context, id int64) (*model.Option, error) {
	var option model.Option
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&option)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &option, nil
}

func (r *optionRepo) GetByIDs(ctx context.Context, ids []int64) ([]*model.Option, error) {
	return r.find(ctx, bson.M{"_id": bson.M{"$in": ids}})
}

func (r *optionRepo) GetByQuestionID(ctx context.Context, questionID int64) ([]*model.Option, error) {
	return r.find(ctx, bson.M{"questionId": questionID})
}

func (r *optionRepo) GetAll(ctx context.Context) ([]*model.Option, error) {
	return r.find(ctx, bson.M{})
}

func (r *optionRepo) find(ctx context.Context, filter bson.M) ([]*model.Option, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var options []*model.Option
	if err := cursor.All(ctx, &options); err != nil {
		return nil, err
	}
	return options, nil
}

func (r *optionRepo) Update(ctx context.Context, option *model.Option) error {
	option.UpdatedAt = time.Now()
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": option.ID}, option)
	return err
}

func (r *optionRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
