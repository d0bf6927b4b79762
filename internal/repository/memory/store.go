// Package memory provides an in-memory implementation of the repository
// interfaces. It backs the server when no MongoDB is configured and the
// service-layer tests, which need observable transaction rollback without a
// running database.
package memory

import (
	"context"
	"sync"

	"pollbase/internal/model"
	"pollbase/internal/repository"
)

// Store holds every entity collection behind one lock. Transactions are
// journal based: writes made through a transaction's context record an undo
// entry, and Rollback replays the journal in reverse. Writes from outside
// the transaction are untouched by a rollback. Only one transaction may be
// open at a time; plain operations remain concurrent-safe through the state
// lock. Sequence counters are never rolled back, as with database counters.
type Store struct {
	mu   sync.RWMutex
	txMu sync.Mutex

	surveys   map[int64]*model.Survey
	questions map[int64]*model.Question
	options   map[int64]*model.Option
	answers   map[int64]*model.Answer
	links     map[int64]*model.SurveyQuestion
	counters  map[string]int64
}

func NewStore() *Store {
	return &Store{
		surveys:   make(map[int64]*model.Survey),
		questions: make(map[int64]*model.Question),
		options:   make(map[int64]*model.Option),
		answers:   make(map[int64]*model.Answer),
		links:     make(map[int64]*model.SurveyQuestion),
		counters:  make(map[string]int64),
	}
}

// Next implements repository.Sequence.
func (s *Store) Next(ctx context.Context, name string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counters[name]++
	return s.counters[name], nil
}

type txKey struct{}

// record appends an undo entry to the journal of the transaction carried by
// ctx, if any. Callers must hold s.mu; undo funcs run under s.mu too.
func (s *Store) record(ctx context.Context, undo func()) {
	tx, ok := ctx.Value(txKey{}).(*memTx)
	if !ok || tx.store != s || tx.done {
		return
	}
	tx.journal = append(tx.journal, undo)
}

// Begin implements repository.UnitOfWork.
func (s *Store) Begin(ctx context.Context) (repository.Tx, error) {
	s.txMu.Lock()
	tx := &memTx{store: s}
	tx.ctx = context.WithValue(ctx, txKey{}, tx)
	return tx, nil
}

type memTx struct {
	store   *Store
	ctx     context.Context
	journal []func()
	done    bool
}

func (t *memTx) Context() context.Context {
	return t.ctx
}

func (t *memTx) Commit() error {
	if t.done {
		return nil
	}
	t.done = true
	t.journal = nil
	t.store.txMu.Unlock()
	return nil
}

func (t *memTx) Rollback() error {
	if t.done {
		return nil
	}
	t.done = true
	t.store.mu.Lock()
	for i := len(t.journal) - 1; i >= 0; i-- {
		t.journal[i]()
	}
	t.store.mu.Unlock()
	t.journal = nil
	t.store.txMu.Unlock()
	return nil
}

func copySurvey(s *model.Survey) *model.Survey {
	c := *s
	return &c
}

func copyQuestion(q *model.Question) *model.Question {
	c := *q
	return &c
}

func copyOption(o *model.Option) *model.Option {
	c := *o
	return &c
}

func copyAnswer(a *model.Answer) *model.Answer {
	c := *a
	c.SelectedOptionIDs = append([]int64(nil), a.SelectedOptionIDs...)
	return &c
}

func copyLink(l *model.SurveyQuestion) *model.SurveyQuestion {
	c := *l
	return &c
}
