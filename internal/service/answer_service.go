package service

import (
	"context"
	"log"

	"pollbase/internal/apperr"
	"pollbase/internal/cache"
	"pollbase/internal/model"
	"pollbase/internal/repository"
)

// AnswerService handles standalone answer CRUD. Answers created here carry
// no survey reference; the completion workflow is what attaches answers to a
// survey.
type AnswerService struct {
	answerRepo   repository.AnswerRepo
	questionRepo repository.QuestionRepo
	optionRepo   repository.OptionRepo
	scores       cache.ScoreCache
}

// NewAnswerService creates a new answer service
func NewAnswerService(
	answerRepo repository.AnswerRepo,
	questionRepo repository.QuestionRepo,
	optionRepo repository.OptionRepo,
	scores cache.ScoreCache,
) *AnswerService {
	return &AnswerService{
		answerRepo:   answerRepo,
		questionRepo: questionRepo,
		optionRepo:   optionRepo,
		scores:       scores,
	}
}

// Create records an answer for an existing question and options
func (s *AnswerService) Create(ctx context.Context, input CreateAnswerInput) (*model.Answer, error) {
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

	if err := s.checkOptions(ctx, input.SelectedOptionIDs); err != nil {
		return nil, err
	}

	answer := &model.Answer{
		QuestionID:        question.ID,
		SelectedOptionIDs: append([]int64(nil), input.SelectedOptionIDs...),
	}
	if err := s.answerRepo.Create(ctx, answer); err != nil {
		return nil, err
	}
	return answer, nil
}

// GetByID retrieves an answer by ID
func (s *AnswerService) GetByID(ctx context.Context, id int64) (*model.Answer, error) {
	answer, err := s.answerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if answer == nil {
		return nil, apperr.NotFoundf("Answer with ID %d not found", id)
	}
	return answer, nil
}

// GetAll retrieves all answers
func (s *AnswerService) GetAll(ctx context.Context) ([]*model.Answer, error) {
	return s.answerRepo.GetAll(ctx)
}

// Update applies the non-empty fields of input to an existing answer
func (s *AnswerService) Update(ctx context.Context, id int64, input UpdateAnswerInput) (*model.Answer, error) {
	answer, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.QuestionID != nil {
		question, err := s.questionRepo.GetByID(ctx, *input.QuestionID)
		if err != nil {
			return nil, err
		}
		if question == nil {
			return nil, apperr.NotFoundf("Question with ID %d not found", *input.QuestionID)
		}
		answer.QuestionID = question.ID
	}

	if len(input.SelectedOptionIDs) > 0 {
		if err := s.checkOptions(ctx, input.SelectedOptionIDs); err != nil {
			return nil, err
		}
		answer.SelectedOptionIDs = append([]int64(nil), input.SelectedOptionIDs...)
	}

	if err := s.answerRepo.Update(ctx, answer); err != nil {
		return nil, err
	}
	s.invalidateScore(ctx, answer)
	return answer, nil
}

// Delete removes an answer
func (s *AnswerService) Delete(ctx context.Context, id int64) (bool, error) {
	answer, err := s.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	if err := s.answerRepo.Delete(ctx, id); err != nil {
		return false, err
	}
	s.invalidateScore(ctx, answer)
	return true, nil
}

// checkOptions verifies every referenced option exists.
func (s *AnswerService) checkOptions(ctx context.Context, ids []int64) error {
	options, err := s.optionRepo.GetByIDs(ctx, ids)
	if err != nil {
		return err
	}
	found := make(map[int64]bool, len(options))
	for _, option := range options {
		found[option.ID] = true
	}
	for _, id := range ids {
		if !found[id] {
			return apperr.NotFoundf("Option with ID %d not found", id)
		}
	}
	return nil
}

func (s *AnswerService) invalidateScore(ctx context.Context, answer *model.Answer) {
	if answer.SurveyID == 0 {
		return
	}
	if err := s.scores.Invalidate(ctx, answer.SurveyID); err != nil {
		log.Printf("score cache invalidate failed for survey %d: %v", answer.SurveyID, err)
	}
}
