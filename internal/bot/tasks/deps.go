// Package tasks implements scheduled maintenance tasks for the message
// archiver service. It includes task definitions, dependencies, and
// registration mechanisms.
package tasks

import (
	"log/slog"

	"github.com/sanpater/pyrogram/internal/cache"
	"github.com/sanpater/pyrogram/internal/config"
	"github.com/sanpater/pyrogram/internal/database"
)

// TaskDeps contains all dependencies required by scheduled tasks.
type TaskDeps struct {
	Logger *slog.Logger
	Store  database.Store
	Cache  *cache.Messages
	Config *config.Config
}
