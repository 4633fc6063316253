package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"daily-tasks/internal/config"
	"daily-tasks/internal/logger"
	"daily-tasks/internal/repository"
	"daily-tasks/internal/service"
)

// app holds everything a command needs. It is filled in once per process
// before any subcommand runs.
type app struct {
	cfg     config.Config
	log     zerolog.Logger
	store   *service.TaskStore
	closers []func() error
}

func (a *app) open(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	log, err := logger.New(cfg.Env)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}

	storage, err := a.openStorage(cfg, log)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.log = log
	a.store = service.NewTaskStore(ctx, storage, service.WithLogger(log))
	log.Debug().
		Str("storage", cfg.Storage).
		Msg("opened task store")
	return nil
}

func (a *app) openStorage(cfg config.Config, log zerolog.Logger) (service.Storage, error) {
	switch cfg.Storage {
	case config.StorageSQLite:
		db, err := repository.NewDB(cfg.DatabaseURL, log)
		if err != nil {
			return nil, fmt.Errorf("db: %w", err)
		}
		if sqlDB, err := db.DB(); err == nil {
			a.closers = append(a.closers, sqlDB.Close)
		}
		return repository.NewRecordRepository(db), nil
	case config.StorageFile:
		repo, err := repository.NewFileRepository(cfg.DataDir)
		if err != nil {
			return nil, fmt.Errorf("file storage: %w", err)
		}
		return repo, nil
	default:
		return repository.NewMemoryStorage(), nil
	}
}

func (a *app) close() {
	for _, fn := range a.closers {
		if err := fn(); err != nil {
			a.log.Warn().Err(err).Msg("failed to close storage")
		}
	}
	a.closers = nil
}
