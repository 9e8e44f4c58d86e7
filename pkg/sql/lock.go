package sql

import (
	"context"
	"fmt"
	"hash/fnv"
)

func withTransactionLevelLock(ctx context.Context, name string, tx Client) error {
	lockID, err := getLockIDByName(name)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, "select pg_advisory_xact_lock($1)", lockID)
	if err != nil {
		return fmt.Errorf("get lock for %s: %w", name, err)
	}

	return nil
}

func getLockIDByName(name string) (int64, error) {
	hash := fnv.New64a()
	_, err := hash.Write([]byte(name))
	if err != nil {
		return 0, fmt.Errorf("create hash for lock with name %s: %w", name, err)
	}

	return int64(hash.Sum64()), nil //nolint:gosec
}
