package db

import (
	"context"
	"database/sql"
	"time"

	"go.uber.org/zap"
)

// StartHistoryPruner deletes history entries older than retention every interval
// until ctx is cancelled. The returned channel is closed once the goroutine exits.
func StartHistoryPruner(
	ctx context.Context,
	db *sql.DB,
	interval time.Duration,
	retention time.Duration,
	log *zap.Logger,
) <-chan struct{} {
	done := make(chan struct{})
	ticker := time.NewTicker(interval)
	go func() {
		defer close(done)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				cutoff := time.Now().Add(-retention)
				res, err := db.ExecContext(ctx, `
                    DELETE FROM history
                     WHERE created_at < $1
                `, cutoff)
				if err != nil {
					log.Error("failed to prune history", zap.Error(err))
					continue
				}
				if rows, _ := res.RowsAffected(); rows > 0 {
					log.Info("pruned history", zap.Int64("removed", rows))
				}
			}
		}
	}()
	return done
}
