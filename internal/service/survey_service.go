package service

import (
	"context"

	"pollbase/internal/apperr"
	"pollbase/internal/cache"
	"pollbase/internal/model"
	"pollbase/internal/repository"
)

// SurveyService handles survey CRUD plus the completion workflow and total
// score aggregation (completion.go, score.go).
type SurveyService struct {
	surveyRepo         repository.SurveyRepo
	questionRepo       repository.QuestionRepo
	optionRepo         repository.OptionRepo
	answerRepo         repository.AnswerRepo
	surveyQuestionRepo repository.SurveyQuestionRepo
	uow                repository.UnitOfWork
	scores             cache.ScoreCache
	policy             CompletionPolicy
}

// NewSurveyService creates a new survey service
func NewSurveyService(
	surveyRepo repository.SurveyRepo,
	questionRepo repository.QuestionRepo,
	optionRepo repository.OptionRepo,
	answerRepo repository.AnswerRepo,
	surveyQuestionRepo repository.SurveyQuestionRepo,
	uow repository.UnitOfWork,
	scores cache.ScoreCache,
	policy CompletionPolicy,
) *SurveyService {
	return &SurveyService{
		surveyRepo:         surveyRepo,
		questionRepo:       questionRepo,
		optionRepo:         optionRepo,
		answerRepo:         answerRepo,
		surveyQuestionRepo: surveyQuestionRepo,
		uow:                uow,
		scores:             scores,
		policy:             policy,
	}
}

// Create creates a new survey
func (s *SurveyService) Create(ctx context.Context, input CreateSurveyInput) (*model.Survey, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	survey := &model.Survey{
		Title:       input.Title,
		Description: input.Description,
	}
	if input.IsCompleted != nil {
		survey.IsCompleted = *input.IsCompleted
	}

	if err := s.surveyRepo.Create(ctx, survey); err != nil {
		return nil, err
	}
	return survey, nil
}

// GetByID retrieves a survey by ID
func (s *SurveyService) GetByID(ctx context.Context, id int64) (*model.Survey, error) {
	survey, err := s.surveyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if survey == nil {
		return nil, apperr.NotFoundf("Survey with ID %d not found", id)
	}
	return survey, nil
}

// GetAll retrieves all surveys
func (s *SurveyService) GetAll(ctx context.Context) ([]*model.Survey, error) {
	return s.surveyRepo.GetAll(ctx)
}

// GetCompleted retrieves all completed surveys
func (s *SurveyService) GetCompleted(ctx context.Context) ([]*model.Survey, error) {
	return s.surveyRepo.GetCompleted(ctx)
}

// GetAnswers retrieves the answers submitted for a survey
func (s *SurveyService) GetAnswers(ctx context.Context, surveyID int64) ([]*model.Answer, error) {
	return s.answerRepo.GetBySurveyID(ctx, surveyID)
}

// Update applies the non-nil fields of input to an existing survey
func (s *SurveyService) Update(ctx context.Context, id int64, input UpdateSurveyInput) (*model.Survey, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	survey, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		survey.Title = *input.Title
	}
	if input.Description != nil {
		survey.Description = *input.Description
	}
	if input.IsCompleted != nil {
		survey.IsCompleted = *input.IsCompleted
	}

	if err := s.surveyRepo.Update(ctx, survey); err != nil {
		return nil, err
	}
	return survey, nil
}

// Delete removes a survey and its survey-question links
func (s *SurveyService) Delete(ctx context.Context, id int64) (bool, error) {
	if _, err := s.GetByID(ctx, id); err != nil {
		return false, err
	}
	if err := s.surveyQuestionRepo.DeleteBySurveyID(ctx, id); err != nil {
		return false, err
	}
	if err := s.surveyRepo.Delete(ctx, id); err != nil {
		return false, err
	}
	return true, nil
}
