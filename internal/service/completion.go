package service

import (
	"context"
	"log"

	"pollbase/internal/apperr"
	"pollbase/internal/model"
)

// CompletionPolicy decides what CompleteSurvey does when the survey is
// already marked completed.
type CompletionPolicy int

const (
	// PolicyReject fails a second completion with a conflict error. Default.
	PolicyReject CompletionPolicy = iota
	// PolicyAppend accepts the call and appends the new answers.
	PolicyAppend
	// PolicyIgnore accepts the call without changing anything.
	PolicyIgnore
)

// ParseCompletionPolicy maps a config string to a policy, defaulting to
// PolicyReject for unknown values.
func ParseCompletionPolicy(s string) CompletionPolicy {
	switch s {
	case "append":
		return PolicyAppend
	case "ignore":
		return PolicyIgnore
	default:
		return PolicyReject
	}
}

// CompleteSurvey validates a batch of answers against the survey's question
// set and persists them atomically, marking the survey completed.
//
// The whole operation runs in one transaction: the survey is loaded first,
// the referenced questions and options are bulk-loaded in two queries (one
// more for the survey-question links) regardless of how many answers were
// submitted, and each answer is then resolved in input order. Any missing
// question, option, or survey-question link aborts the transaction; nothing
// is persisted on failure. Returns true once the transaction commits.
func (s *SurveyService) CompleteSurvey(ctx context.Context, id int64, answers []AnswerSubmission) (bool, error) {
	for _, answer := range answers {
		if err := validateInput(answer); err != nil {
			return false, err
		}
	}

	tx, err := s.uow.Begin(ctx)
	if err != nil {
		return false, err
	}
	defer tx.Rollback()
	tctx := tx.Context()

	survey, err := s.surveyRepo.GetByID(tctx, id)
	if err != nil {
		return false, err
	}
	if survey == nil {
		return false, apperr.NotFoundf("Survey with ID %d not found", id)
	}

	if survey.IsCompleted {
		switch s.policy {
		case PolicyReject:
			return false, apperr.Conflictf("Survey with ID %d is already completed", id)
		case PolicyIgnore:
			return true, nil
		}
	}

	questions, options, linked, err := s.loadReferences(tctx, id, answers)
	if err != nil {
		return false, err
	}

	newAnswers := make([]*model.Answer, 0, len(answers))
	for _, answer := range answers {
		question, ok := questions[answer.QuestionID]
		if !ok {
			return false, apperr.NotFoundf("Question with ID %d not found", answer.QuestionID)
		}
		for _, optionID := range answer.SelectedOptionIDs {
			if _, ok := options[optionID]; !ok {
				return false, apperr.NotFoundf("Option with ID %d not found", optionID)
			}
		}
		if !linked[question.ID] {
			return false, apperr.NotFoundf(
				"Question with ID %d does not belong to Survey with ID %d", question.ID, id)
		}

		newAnswers = append(newAnswers, &model.Answer{
			QuestionID:        question.ID,
			SelectedOptionIDs: append([]int64(nil), answer.SelectedOptionIDs...),
			SurveyID:          id,
		})
	}

	survey.IsCompleted = true
	if err := s.answerRepo.CreateMany(tctx, newAnswers); err != nil {
		return false, err
	}
	if err := s.surveyRepo.Update(tctx, survey); err != nil {
		return false, err
	}

	if err := tx.Commit(); err != nil {
		return false, err
	}

	if err := s.scores.Invalidate(ctx, id); err != nil {
		log.Printf("score cache invalidate failed for survey %d: %v", id, err)
	}
	log.Printf("completed survey %d with %d answers", id, len(newAnswers))
	return true, nil
}

// loadReferences bulk-loads everything the answer batch refers to: the
// distinct questions, the distinct (flattened) options, and the set of
// question ids linked to the survey.
func (s *SurveyService) loadReferences(ctx context.Context, surveyID int64, answers []AnswerSubmission) (map[int64]*model.Question, map[int64]*model.Option, map[int64]bool, error) {
	questionIDs := make([]int64, 0, len(answers))
	optionIDs := make([]int64, 0, len(answers))
	seenQuestion := make(map[int64]bool)
	seenOption := make(map[int64]bool)
	for _, answer := range answers {
		if !seenQuestion[answer.QuestionID] {
			seenQuestion[answer.QuestionID] = true
			questionIDs = append(questionIDs, answer.QuestionID)
		}
		for _, optionID := range answer.SelectedOptionIDs {
			if !seenOption[optionID] {
				seenOption[optionID] = true
				optionIDs = append(optionIDs, optionID)
			}
		}
	}

	questions := make(map[int64]*model.Question, len(questionIDs))
	options := make(map[int64]*model.Option, len(optionIDs))
	linked := make(map[int64]bool, len(questionIDs))
	if len(questionIDs) == 0 {
		return questions, options, linked, nil
	}

	loadedQuestions, err := s.questionRepo.GetByIDs(ctx, questionIDs)
	if err != nil {
		return nil, nil, nil, err
	}
	for _, question := range loadedQuestions {
		questions[question.ID] = question
	}

	if len(optionIDs) > 0 {
		loadedOptions, err := s.optionRepo.GetByIDs(ctx, optionIDs)
		if err != nil {
			return nil, nil, nil, err
		}
		for _, option := range loadedOptions {
			options[option.ID] = option
		}
	}

	links, err := s.surveyQuestionRepo.GetBySurveyAndQuestionIDs(ctx, surveyID, questionIDs)
	if err != nil {
		return nil, nil, nil, err
	}
	for _, link := range links {
		linked[link.QuestionID] = true
	}

	return questions, options, linked, nil
}
