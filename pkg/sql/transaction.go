package sql

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/klwxsrx/media-service/pkg/persistence"
)

type instanceID string

type txData struct {
	ClientTx
	instanceID instanceID
}

type transaction struct {
	id       instanceID
	db       Database
	onCommit func()
}

func NewTransaction(db Database, instanceName string, onCommit func()) persistence.Transaction {
	return &transaction{id: instanceID(instanceName), db: db, onCommit: onCommit}
}

func (t *transaction) WithinContext(
	ctx context.Context,
	fn func(ctx context.Context) error,
	lockNames ...string,
) (err error) {
	storedTx, ok := ctx.Value(dbTransactionContextKey).(txData)
	hasParentTx := ok && storedTx.instanceID == t.id
	if !hasParentTx {
		var tx ClientTx
		tx, err = t.db.Begin(ctx)
		if err != nil {
			return fmt.Errorf("start db transaction: %w", err)
		}
		defer func() {
			if err != nil {
				_ = tx.Rollback()
			}
		}()

		storedTx = txData{ClientTx: tx, instanceID: t.id}
		ctx = context.WithValue(ctx, dbTransactionContextKey, storedTx)
	}

	for _, lockName := range lockNames {
		err = withTransactionLevelLock(ctx, lockName, storedTx.ClientTx)
		if err != nil {
			return err
		}
	}

	err = fn(ctx)
	if err != nil {
		return err
	}

	if hasParentTx {
		return nil
	}

	err = storedTx.ClientTx.Commit()
	if err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	if t.onCommit != nil {
		t.onCommit()
	}

	return nil
}

func (t *transaction) WithLock(ctx context.Context) context.Context {
	return context.WithValue(ctx, dbTransactionLockContextKey, true)
}

// ForUpdate locks selected rows when the caller asked for it with Transaction.WithLock.
func ForUpdate(ctx context.Context, query sq.SelectBuilder) sq.SelectBuilder {
	locked, _ := ctx.Value(dbTransactionLockContextKey).(bool)
	if !locked {
		return query
	}

	if _, inTx := ctx.Value(dbTransactionContextKey).(txData); !inTx {
		return query
	}

	return query.Suffix("FOR UPDATE")
}
