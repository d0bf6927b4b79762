package service

import (
	"context"

	"pollbase/internal/apperr"
	"pollbase/internal/model"
	"pollbase/internal/repository"
)

// OptionService handles option CRUD
type OptionService struct {
	optionRepo   repository.OptionRepo
	questionRepo repository.QuestionRepo
}

// NewOptionService creates a new option service
func NewOptionService(optionRepo repository.OptionRepo, questionRepo repository.QuestionRepo) *OptionService {
	return &OptionService{
		optionRepo:   optionRepo,
		questionRepo: questionRepo,
	}
}

// Create creates an option for an existing question
func (s *OptionService) Create(ctx context.Context, input CreateOptionInput) (*model.Option, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	question, err := s.questionRepo.GetByID(ctx, input.QuestionID)
	if err != nil {
		return nil, err
	}
	if question == nil {
		return nil, apperr.NotFoundf("Question with ID %d not found", input.QuestionID)
	}

	option := &model.Option{
		Content:    input.Content,
		Score:      *input.Score,
		QuestionID: question.ID,
	}
	if err := s.optionRepo.Create(ctx, option); err != nil {
		return nil, err
	}
	return option, nil
}

// GetByID retrieves an option by ID
func (s *OptionService) GetByID(ctx context.Context, id int64) (*model.Option, error) {
	option, err := s.optionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if option == nil {
		return nil, apperr.NotFoundf("Option with ID %d not found", id)
	}
	return option, nil
}

// GetByIDs retrieves the options matching the given ids; missing ids are
// silently skipped.
func (s *OptionService) GetByIDs(ctx context.Context, ids []int64) ([]*model.Option, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return s.optionRepo.GetByIDs(ctx, ids)
}

// GetByQuestionID retrieves the options belonging to a question
func (s *OptionService) GetByQuestionID(ctx context.Context, questionID int64) ([]*model.Option, error) {
	return s.optionRepo.GetByQuestionID(ctx, questionID)
}

// GetAll retrieves all options
func (s *OptionService) GetAll(ctx context.Context) ([]*model.Option, error) {
	return s.optionRepo.GetAll(ctx)
}

// Update applies the non-nil fields of input to an existing option
func (s *OptionService) Update(ctx context.Context, id int64, input UpdateOptionInput) (*model.Option, error) {
	option, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Content != nil {
		option.Content = *input.Content
	}
	if input.Score != nil {
		option.Score = *input.Score
	}

	if err := s.optionRepo.Update(ctx, option); err != nil {
		return nil, err
	}
	return option, nil
}

// Delete removes an option
func (s *OptionService) Delete(ctx context.Context, id int64) (bool, error) {
	if _, err := s.GetByID(ctx, id); err != nil {
		return false, err
	}
	if err := s.optionRepo.Delete(ctx, id); err != nil {
		return false, err
	}
	return true, nil
}
