package stub

import (
	"context"

	"github.com/klwxsrx/media-service/pkg/persistence"
)

type transaction struct{}

func NewTransaction() persistence.Transaction {
	return transaction{}
}

func (s transaction) WithinContext(ctx context.Context, fn func(ctx context.Context) error, _ ...string) error {
	return fn(ctx)
}

func (s transaction) WithLock(ctx context.Context) context.Context {
	return ctx
}
