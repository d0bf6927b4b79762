package memory

import (
	"context"
	"sort"
	"time"

	"pollbase/internal/model"
	"pollbase/internal/repository"
)

type surveyRepo struct{ store *Store }

// NewSurveyRepo returns an in-memory survey repository.
func NewSurveyRepo(s *Store) repository.SurveyRepo { return &surveyRepo{store: s} }

func (r *surveyRepo) Create(ctx context.Context, survey *model.Survey) error {
	id, _ := r.store.Next(ctx, "surveys")
	survey.ID = id
	survey.CreatedAt = time.Now()
	survey.UpdatedAt = time.Now()

	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.surveys[id] = copySurvey(survey)
	r.store.record(ctx, func() { delete(r.store.surveys, id) })
	return nil
}

func (r *surveyRepo) GetByID(ctx context.Context, id int64) (*model.Survey, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	survey, ok := r.store.surveys[id]
	if !ok {
		return nil, nil
	}
	return copySurvey(survey), nil
}

func (r *surveyRepo) GetByIDs(ctx context.Context, ids []int64) ([]*model.Survey, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	var surveys []*model.Survey
	seen := make(map[int64]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		if survey, ok := r.store.surveys[id]; ok {
			surveys = append(surveys, copySurvey(survey))
		}
	}
	return surveys, nil
}

func (r *surveyRepo) GetAll(ctx context.Context) ([]*model.Survey, error) {
	return r.list(func(*model.Survey) bool { return true }), nil
}

func (r *surveyRepo) GetCompleted(ctx context.Context) ([]*model.Survey, error) {
	return r.list(func(s *model.Survey) bool { return s.IsCompleted }), nil
}

func (r *surveyRepo) list(keep func(*model.Survey) bool) []*model.Survey {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	var surveys []*model.Survey
	for _, survey := range r.store.surveys {
		if keep(survey) {
			surveys = append(surveys, copySurvey(survey))
		}
	}
	sort.Slice(surveys, func(i, j int) bool { return surveys[i].ID < surveys[j].ID })
	return surveys
}

func (r *surveyRepo) Update(ctx context.Context, survey *model.Survey) error {
	survey.UpdatedAt = time.Now()
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if prev, ok := r.store.surveys[survey.ID]; ok {
		r.store.surveys[survey.ID] = copySurvey(survey)
		r.store.record(ctx, func() { r.store.surveys[survey.ID] = prev })
	}
	return nil
}

func (r *surveyRepo) Delete(ctx context.Context, id int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if prev, ok := r.store.surveys[id]; ok {
		delete(r.store.surveys, id)
		r.store.record(ctx, func() { r.store.surveys[id] = prev })
	}
	return nil
}

type questionRepo struct{ store *Store }

// NewQuestionRepo returns an in-memory question repository.
func NewQuestionRepo(s *Store) repository.QuestionRepo { return &questionRepo{store: s} }

func (r *questionRepo) Create(ctx context.Context, question *model.Question) error {
	id, _ := r.store.Next(ctx, "questions")
	question.ID = id
	question.CreatedAt = time.Now()
	question.UpdatedAt = time.Now()

	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.questions[id] = copyQuestion(question)
	r.store.record(ctx, func() { delete(r.store.questions, id) })
	return nil
}

func (r *questionRepo) GetByID(ctx context.Context, id int64) (*model.Question, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	question, ok := r.store.questions[id]
	if !ok {
		return nil, nil
	}
	return copyQuestion(question), nil
}

func (r *questionRepo) GetByIDs(ctx context.Context, ids []int64) ([]*model.Question, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	var questions []*model.Question
	seen := make(map[int64]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		if question, ok := r.store.questions[id]; ok {
			questions = append(questions, copyQuestion(question))
		}
	}
	return questions, nil
}

func (r *questionRepo) GetAll(ctx context.Context) ([]*model.Question, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	var questions []*model.Question
	for _, question := range r.store.questions {
		questions = append(questions, copyQuestion(question))
	}
	sort.Slice(questions, func(i, j int) bool { return questions[i].ID < questions[j].ID })
	return questions, nil
}

func (r *questionRepo) Update(ctx context.Context, question *model.Question) error {
	question.UpdatedAt = time.Now()
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if prev, ok := r.store.questions[question.ID]; ok {
		r.store.questions[question.ID] = copyQuestion(question)
		r.store.record(ctx, func() { r.store.questions[question.ID] = prev })
	}
	return nil
}

func (r *questionRepo) Delete(ctx context.Context, id int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if prev, ok := r.store.questions[id]; ok {
		delete(r.store.questions, id)
		r.store.record(ctx, func() { r.store.questions[id] = prev })
	}
	return nil
}

type optionRepo struct{ store *Store }

// NewOptionRepo returns an in-memory option repository.
func NewOptionRepo(s *Store) repository.OptionRepo { return &optionRepo{store: s} }

func (r *optionRepo) Create(ctx context.Context, option *model.Option) error {
	id, _ := r.store.Next(ctx, "options")
	option.ID = id
	option.CreatedAt = time.Now()
	option.UpdatedAt = time.Now()

	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.options[id] = copyOption(option)
	r.store.record(ctx, func() { delete(r.store.options, id) })
	return nil
}

func (r *optionRepo) GetByID(ctx context.Context, id int64) (*model.Option, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	option, ok := r.store.options[id]
	if !ok {
		return nil, nil
	}
	return copyOption(option), nil
}

func (r *optionRepo) GetByIDs(ctx context.Context, ids []int64) ([]*model.Option, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	var options []*model.Option
	seen := make(map[int64]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		if option, ok := r.store.options[id]; ok {
			options = append(options, copyOption(option))
		}
	}
	return options, nil
}

func (r *optionRepo) GetByQuestionID(ctx context.Context, questionID int64) ([]*model.Option, error) {
	return r.list(func(o *model.Option) bool { return o.QuestionID == questionID }), nil
}

func (r *optionRepo) GetAll(ctx context.Context) ([]*model.Option, error) {
	return r.list(func(*model.Option) bool { return true }), nil
}

func (r *optionRepo) list(keep func(*model.Option) bool) []*model.Option {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	var options []*model.Option
	for _, option := range r.store.options {
		if keep(option) {
			options = append(options, copyOption(option))
		}
	}
	sort.Slice(options, func(i, j int) bool { return options[i].ID < options[j].ID })
	return options
}

func (r *optionRepo) Update(ctx context.Context, option *model.Option) error {
	option.UpdatedAt = time.Now()
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if prev, ok := r.store.options[option.ID]; ok {
		r.store.options[option.ID] = copyOption(option)
		r.store.record(ctx, func() { r.store.options[option.ID] = prev })
	}
	return nil
}

func (r *optionRepo) Delete(ctx context.Context, id int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if prev, ok := r.store.options[id]; ok {
		delete(r.store.options, id)
		r.store.record(ctx, func() { r.store.options[id] = prev })
	}
	return nil
}

type answerRepo struct{ store *Store }

// NewAnswerRepo returns an in-memory answer repository.
func NewAnswerRepo(s *Store) repository.AnswerRepo { return &answerRepo{store: s} }

func (r *answerRepo) Create(ctx context.Context, answer *model.Answer) error {
	id, _ := r.store.Next(ctx, "answers")
	answer.ID = id
	answer.CreatedAt = time.Now()
	answer.UpdatedAt = time.Now()

	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.answers[id] = copyAnswer(answer)
	r.store.record(ctx, func() { delete(r.store.answers, id) })
	return nil
}

func (r *answerRepo) CreateMany(ctx context.Context, answers []*model.Answer) error {
	for _, answer := range answers {
		if err := r.Create(ctx, answer); err != nil {
			return err
		}
	}
	return nil
}

func (r *answerRepo) GetByID(ctx context.Context, id int64) (*model.Answer, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	answer, ok := r.store.answers[id]
	if !ok {
		return nil, nil
	}
	return copyAnswer(answer), nil
}

func (r *answerRepo) GetBySurveyID(ctx context.Context, surveyID int64) ([]*model.Answer, error) {
	// Standalone answers carry SurveyID 0; they belong to no survey.
	if surveyID <= 0 {
		return nil, nil
	}
	return r.list(func(a *model.Answer) bool { return a.SurveyID == surveyID }), nil
}

func (r *answerRepo) GetAll(ctx context.Context) ([]*model.Answer, error) {
	return r.list(func(*model.Answer) bool { return true }), nil
}

func (r *answerRepo) list(keep func(*model.Answer) bool) []*model.Answer {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	var answers []*model.Answer
	for _, answer := range r.store.answers {
		if keep(answer) {
			answers = append(answers, copyAnswer(answer))
		}
	}
	sort.Slice(answers, func(i, j int) bool { return answers[i].ID < answers[j].ID })
	return answers
}

func (r *answerRepo) Update(ctx context.Context, answer *model.Answer) error {
	answer.UpdatedAt = time.Now()
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if prev, ok := r.store.answers[answer.ID]; ok {
		r.store.answers[answer.ID] = copyAnswer(answer)
		r.store.record(ctx, func() { r.store.answers[answer.ID] = prev })
	}
	return nil
}

func (r *answerRepo) Delete(ctx context.Context, id int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if prev, ok := r.store.answers[id]; ok {
		delete(r.store.answers, id)
		r.store.record(ctx, func() { r.store.answers[id] = prev })
	}
	return nil
}

type surveyQuestionRepo struct{ store *Store }

// NewSurveyQuestionRepo returns an in-memory survey-question link repository.
func NewSurveyQuestionRepo(s *Store) repository.SurveyQuestionRepo {
	return &surveyQuestionRepo{store: s}
}

func (r *surveyQuestionRepo) CreateMany(ctx context.Context, links []*model.SurveyQuestion) error {
	for _, link := range links {
		id, _ := r.store.Next(ctx, "survey_questions")
		link.ID = id
		link.CreatedAt = time.Now()

		r.store.mu.Lock()
		r.store.links[id] = copyLink(link)
		r.store.record(ctx, func() { delete(r.store.links, id) })
		r.store.mu.Unlock()
	}
	return nil
}

func (r *surveyQuestionRepo) GetBySurveyID(ctx context.Context, surveyID int64) ([]*model.SurveyQuestion, error) {
	return r.list(func(l *model.SurveyQuestion) bool { return l.SurveyID == surveyID }), nil
}

func (r *surveyQuestionRepo) GetBySurveyAndQuestionIDs(ctx context.Context, surveyID int64, questionIDs []int64) ([]*model.SurveyQuestion, error) {
	wanted := make(map[int64]bool, len(questionIDs))
	for _, id := range questionIDs {
		wanted[id] = true
	}
	return r.list(func(l *model.SurveyQuestion) bool {
		return l.SurveyID == surveyID && wanted[l.QuestionID]
	}), nil
}

func (r *surveyQuestionRepo) list(keep func(*model.SurveyQuestion) bool) []*model.SurveyQuestion {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	var links []*model.SurveyQuestion
	for _, link := range r.store.links {
		if keep(link) {
			links = append(links, copyLink(link))
		}
	}
	sort.Slice(links, func(i, j int) bool { return links[i].ID < links[j].ID })
	return links
}

func (r *surveyQuestionRepo) DeleteBySurveyID(ctx context.Context, surveyID int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for id, link := range r.store.links {
		if link.SurveyID == surveyID {
			id, prev := id, link
			delete(r.store.links, id)
			r.store.record(ctx, func() { r.store.links[id] = prev })
		}
	}
	return nil
}

func (r *surveyQuestionRepo) DeleteByQuestionID(ctx context.Context, questionID int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for id, link := range r.store.links {
		if link.QuestionID == questionID {
			id, prev := id, link
			delete(r.store.links, id)
			r.store.record(ctx, func() { r.store.links[id] = prev })
		}
	}
	return nil
}
