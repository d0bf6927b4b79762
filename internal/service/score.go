package service

import (
	"context"
	"log"
)

// TotalScore sums the scores of every option selected across the survey's
// answers. Absence is absorbed to zero: a survey with no answers, a survey
// that does not exist, and a selected option that no longer resolves all
// contribute 0 rather than an error.
func (s *SurveyService) TotalScore(ctx context.Context, surveyID int64) (int, error) {
	// Zero is the no-survey sentinel on standalone answers; it must never
	// aggregate them.
	if surveyID <= 0 {
		return 0, nil
	}

	if score, ok, err := s.scores.Get(ctx, surveyID); err == nil && ok {
		return score, nil
	} else if err != nil {
		log.Printf("score cache get failed for survey %d: %v", surveyID, err)
	}

	answers, err := s.answerRepo.GetBySurveyID(ctx, surveyID)
	if err != nil {
		return 0, err
	}

	optionIDs := make([]int64, 0, len(answers))
	seen := make(map[int64]bool)
	for _, answer := range answers {
		for _, optionID := range answer.SelectedOptionIDs {
			if !seen[optionID] {
				seen[optionID] = true
				optionIDs = append(optionIDs, optionID)
			}
		}
	}

	scores := make(map[int64]int, len(optionIDs))
	if len(optionIDs) > 0 {
		options, err := s.optionRepo.GetByIDs(ctx, optionIDs)
		if err != nil {
			return 0, err
		}
		for _, option := range options {
			scores[option.ID] = option.Score
		}
	}

	total := 0
	for _, answer := range answers {
		for _, optionID := range answer.SelectedOptionIDs {
			total += scores[optionID]
		}
	}

	if err := s.scores.Set(ctx, surveyID, total); err != nil {
		log.Printf("score cache set failed for survey %d: %v", surveyID, err)
	}
	return total, nil
}
