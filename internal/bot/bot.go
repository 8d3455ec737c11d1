// Package bot implements lifecycle management and component orchestration
// for the message archiver service.
package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"golang.org/x/sync/errgroup"

	"github.com/sanpater/pyrogram/internal/config"
	"github.com/sanpater/pyrogram/internal/database"
	"github.com/sanpater/pyrogram/internal/telegram"
)

// Bot represents the main application and manages its components' lifecycle.
type Bot struct {
	logger    *slog.Logger
	cfg       *config.Config
	db        *sqlx.DB
	store     database.Store
	client    *telegram.Client
	scheduler *Scheduler
}

// NewBot creates a new instance of the application with all required
// dependencies.
func NewBot(
	logger *slog.Logger,
	cfg *config.Config,
	db *sqlx.DB,
	store database.Store,
	client *telegram.Client,
	scheduler *Scheduler,
) *Bot {
	return &Bot{
		logger:    logger.With("component", "orchestrator"),
		cfg:       cfg,
		db:        db,
		store:     store,
		client:    client,
		scheduler: scheduler,
	}
}

// Run starts all components, handling graceful shutdown on context
// cancellation. It returns an error if any component fails during startup or
// execution.
func (b *Bot) Run(ctx context.Context) error {
	b.logger.Info("Starting orchestrator...")

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		b.logger.Info("Starting Telegram session...")

		err := b.client.Run(gCtx)
		b.logger.Info("Telegram session stopped.")

		if err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("telegram session failed: %w", err)
		}
		if gCtx.Err() == nil {
			b.logger.Warn("Telegram session stopped unexpectedly without context cancellation.")
			return fmt.Errorf("telegram session stopped unexpectedly")
		}
		return nil
	})

	g.Go(func() error {
		b.logger.Info("Starting scheduler...")
		if err := b.scheduler.Start(); err != nil {
			b.logger.Error("Failed to start scheduler", "error", err)
			return fmt.Errorf("failed to start scheduler: %w", err)
		}

		<-gCtx.Done()
		b.logger.Info("Shutdown signal received, stopping scheduler...")

		if err := b.scheduler.Stop(); err != nil {
			b.logger.Error("Error stopping scheduler", "error", err)
		}

		return nil
	})

	b.logger.Info("Orchestrator running. Waiting for shutdown signal or error...")
	err := g.Wait()

	if err != nil && !errors.Is(err, context.Canceled) {
		b.logger.Error("Orchestrator stopped due to error", "error", err)
		return err
	}

	b.logger.Info("Orchestrator stopped gracefully.")
	return nil
}
