package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"pollbase/config"
	"pollbase/internal/model"
	"pollbase/internal/repository"
)

func main() {
	cfg := config.Load()
	if cfg.MongoURI == "" {
		cfg.MongoURI = "mongodb://localhost:27017"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	db := client.Database(cfg.MongoDatabase)
	seq := repository.NewSequence(db)
	surveyRepo := repository.NewSurveyRepo(db, seq)
	questionRepo := repository.NewQuestionRepo(db, seq)
	optionRepo := repository.NewOptionRepo(db, seq)
	surveyQuestionRepo := repository.NewSurveyQuestionRepo(db, seq)

	survey := &model.Survey{
		Title:       "Smartphone Launch Feedback",
		Description: "User perception, satisfaction, and improvement areas for the new device.",
	}
	if err := surveyRepo.Create(ctx, survey); err != nil {
		log.Fatalf("Failed to seed survey: %v", err)
	}

	questions := []struct {
		content string
		options []model.Option
	}{
		{
			content: "How satisfied are you with this smartphone overall?",
			options: []model.Option{
				{Content: "Very dissatisfied", Score: 0},
				{Content: "Neutral", Score: 5},
				{Content: "Very satisfied", Score: 10},
			},
		},
		{
			content: "Would you recommend the device to a friend?",
			options: []model.Option{
				{Content: "No", Score: 0},
				{Content: "Maybe", Score: 3},
				{Content: "Yes", Score: 7},
			},
		},
	}

	for _, q := range questions {
		question := &model.Question{Content: q.content}
		if err := questionRepo.Create(ctx, question); err != nil {
			log.Fatalf("Failed to seed question: %v", err)
		}
		links := []*model.SurveyQuestion{{SurveyID: survey.ID, QuestionID: question.ID}}
		if err := surveyQuestionRepo.CreateMany(ctx, links); err != nil {
			log.Fatalf("Failed to seed survey-question link: %v", err)
		}
		for i := range q.options {
			option := q.options[i]
			option.QuestionID = question.ID
			if err := optionRepo.Create(ctx, &option); err != nil {
				log.Fatalf("Failed to seed option: %v", err)
			}
		}
	}

	fmt.Printf("Seeded survey %d with %d questions\n", survey.ID, len(questions))
}
