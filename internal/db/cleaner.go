package db

import (
	"context"
	"database/sql"
	"time"

	"go.uber.org/zap"
)

// StartLikeCleaner prunes like ids of deleted users with interval
func StartLikeCleaner(
	ctx context.Context,
	db *sql.DB,
	interval time.Duration,
	log *zap.Logger,
) {
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				res, err := db.ExecContext(ctx, `
                    UPDATE cards
                       SET likes = ARRAY(
                           SELECT l FROM unnest(likes) AS l
                            WHERE l IN (SELECT id FROM users))
                     WHERE EXISTS (
                           SELECT 1 FROM unnest(likes) AS l
                            WHERE l NOT IN (SELECT id FROM users))
                `)
				if err != nil {
					log.Error("failed to prune stale likes", zap.Error(err))
					continue
				}
				if rows, _ := res.RowsAffected(); rows > 0 {
					log.Info("pruned stale likes", zap.Int64("cards", rows))
				}
			}
		}
	}()
}
