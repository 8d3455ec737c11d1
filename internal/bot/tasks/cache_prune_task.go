package tasks

import (
	"context"
)

// newCachePruneTask creates the scheduled task function for evicting expired
// entries from the in-process message cache.
func newCachePruneTask(deps TaskDeps) ScheduledTaskFunc {
	log := deps.Logger.With("task", "cache_prune")

	return func(ctx context.Context) error {
		removed := deps.Cache.Prune()
		log.InfoContext(ctx, "Pruned expired cache entries", "removed", removed, "remaining", deps.Cache.Len())
		return nil
	}
}
