package worker

import (
	"context"
	"sync"
)

type Job func(context.Context) error

type Group interface {
	Do(Job)
	Wait() error
}

type group struct {
	ctx       context.Context
	ctxCancel context.CancelFunc

	pool      Pool
	errOnce   *sync.Once
	errResult error
}

// NewGroup returns a fail-fast group: the first failed job cancels the returned context.
func NewGroup(ctx context.Context) (context.Context, Group) {
	return WithinGroup(ctx, NewPool(MaxWorkersCountUnlimited))
}

func WithinGroup(ctx context.Context, pool Pool) (context.Context, Group) {
	ctx, ctxCancel := context.WithCancel(ctx)
	return ctx, &group{
		ctx:       ctx,
		ctxCancel: ctxCancel,
		pool:      pool,
		errOnce:   &sync.Once{},
	}
}

func (g *group) Do(job Job) {
	g.pool.Do(func() {
		err := job(g.ctx)
		if err == nil {
			return
		}

		g.errOnce.Do(func() {
			g.errResult = err
			g.ctxCancel()
		})
	})
}

func (g *group) Wait() error {
	g.pool.Wait()
	g.ctxCancel()

	return g.errResult
}
