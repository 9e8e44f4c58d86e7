//go:generate ${TOOLS_BIN}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "Transaction=Transaction"
package persistence

import "context"

type Transaction interface {
	WithinContext(ctx context.Context, fn func(ctx context.Context) error, lockNames ...string) error
	WithLock(ctx context.Context) context.Context
}

func WithinTransactionWithResult[T any](
	ctx context.Context,
	transaction Transaction,
	fn func(ctx context.Context) (T, error),
	lockNames ...string,
) (T, error) {
	var result T
	err := transaction.WithinContext(ctx, func(ctx context.Context) error {
		var err error
		result, err = fn(ctx)
		return err
	}, lockNames...)

	return result, err
}
