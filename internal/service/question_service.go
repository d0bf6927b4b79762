package service

import (
	"context"

	"pollbase/internal/apperr"
	"pollbase/internal/model"
	"pollbase/internal/repository"
)

// QuestionService handles question CRUD and survey linking
type QuestionService struct {
	questionRepo       repository.QuestionRepo
	surveyRepo         repository.SurveyRepo
	surveyQuestionRepo repository.SurveyQuestionRepo
}

// NewQuestionService creates a new question service
func NewQuestionService(
	questionRepo repository.QuestionRepo,
	surveyRepo repository.SurveyRepo,
	surveyQuestionRepo repository.SurveyQuestionRepo,
) *QuestionService {
	return &QuestionService{
		questionRepo:       questionRepo,
		surveyRepo:         surveyRepo,
		surveyQuestionRepo: surveyQuestionRepo,
	}
}

// Create creates a question and links it to the given surveys. All listed
// surveys must exist; otherwise nothing is created.
func (s *QuestionService) Create(ctx context.Context, input CreateQuestionInput) (*model.Question, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	surveyIDs := distinct(input.SurveyIDs)
	if len(surveyIDs) > 0 {
		surveys, err := s.surveyRepo.GetByIDs(ctx, surveyIDs)
		if err != nil {
			return nil, err
		}
		if len(surveys) != len(surveyIDs) {
			return nil, apperr.NotFoundf("One or more surveys not found")
		}
	}

	question := &model.Question{Content: input.Content}
	if err := s.questionRepo.Create(ctx, question); err != nil {
		return nil, err
	}

	if len(surveyIDs) > 0 {
		links := make([]*model.SurveyQuestion, 0, len(surveyIDs))
		for _, surveyID := range surveyIDs {
			links = append(links, &model.SurveyQuestion{
				SurveyID:   surveyID,
				QuestionID: question.ID,
			})
		}
		if err := s.surveyQuestionRepo.CreateMany(ctx, links); err != nil {
			return nil, err
		}
	}

	return question, nil
}

// GetByID retrieves a question by ID
func (s *QuestionService) GetByID(ctx context.Context, id int64) (*model.Question, error) {
	question, err := s.questionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if question == nil {
		return nil, apperr.NotFoundf("Question with ID %d not found", id)
	}
	return question, nil
}

// GetAll retrieves all questions
func (s *QuestionService) GetAll(ctx context.Context) ([]*model.Question, error) {
	return s.questionRepo.GetAll(ctx)
}

// Update applies the non-nil fields of input to an existing question
func (s *QuestionService) Update(ctx context.Context, id int64, input UpdateQuestionInput) (*model.Question, error) {
	question, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Content != nil {
		question.Content = *input.Content
	}

	if err := s.questionRepo.Update(ctx, question); err != nil {
		return nil, err
	}
	return question, nil
}

// Delete removes a question and its survey-question links
func (s *QuestionService) Delete(ctx context.Context, id int64) (bool, error) {
	if _, err := s.GetByID(ctx, id); err != nil {
		return false, err
	}
	if err := s.surveyQuestionRepo.DeleteByQuestionID(ctx, id); err != nil {
		return false, err
	}
	if err := s.questionRepo.Delete(ctx, id); err != nil {
		return false, err
	}
	return true, nil
}

func distinct(ids []int64) []int64 {
	seen := make(map[int64]bool, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
