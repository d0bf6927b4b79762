package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
)

// Tx is one open transaction. Every repository call that should be part of
// the transaction must use the context returned by Context; calls made with
// any other context run outside the transaction.
//
// Rollback after Commit (or after a previous Rollback) is a no-op, so callers
// can unconditionally `defer tx.Rollback()`.
type Tx interface {
	Context() context.Context
	Commit() error
	Rollback() error
}

// UnitOfWork opens transactions against the entity store.
type UnitOfWork interface {
	Begin(ctx context.Context) (Tx, error)
}

type mongoUnitOfWork struct {
	client *mongo.Client
}

// NewUnitOfWork returns a UnitOfWork backed by MongoDB client sessions.
// Multi-document transactions require the server to run as a replica set.
func NewUnitOfWork(client *mongo.Client) UnitOfWork {
	return &mongoUnitOfWork{client: client}
}

func (u *mongoUnitOfWork) Begin(ctx context.Context) (Tx, error) {
	sess, err := u.client.StartSession()
	if err != nil {
		return nil, err
	}
	if err := sess.StartTransaction(); err != nil {
		sess.EndSession(ctx)
		return nil, err
	}
	return &mongoTx{sess: sess, ctx: mongo.NewSessionContext(ctx, sess)}, nil
}

type mongoTx struct {
	sess mongo.Session
	ctx  mongo.SessionContext
	done bool
}

func (t *mongoTx) Context() context.Context {
	return t.ctx
}

func (t *mongoTx) Commit() error {
	if t.done {
		return nil
	}
	t.done = true
	defer t.sess.EndSession(context.Background())
	return t.sess.CommitTransaction(t.ctx)
}

func (t *mongoTx) Rollback() error {
	if t.done {
		return nil
	}
	t.done = true
	defer t.sess.EndSession(context.Background())
	return t.sess.AbortTransaction(t.ctx)
}
