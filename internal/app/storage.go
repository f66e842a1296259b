package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"aurora-app-go/internal/config"
	"aurora-app-go/internal/db"
	"aurora-app-go/internal/domain/records"
	userdomain "aurora-app-go/internal/domain/user"
	"aurora-app-go/internal/identity/supabase"
	"aurora-app-go/internal/repository/inmemory"
	recordsrepo "aurora-app-go/internal/repository/postgres/records"
	userrepo "aurora-app-go/internal/repository/postgres/user"
	redisrepo "aurora-app-go/internal/repository/redis"
	sqliterepo "aurora-app-go/internal/repository/sqlite"
	"aurora-app-go/pkg/logger"
	"gorm.io/gorm"
)

// Storage owns every open connection behind the record repository and the
// remote profile store.
type Storage struct {
	Driver   string
	Records  *records.Repository
	Profiles userdomain.Repository
	Postgres *gorm.DB

	closers []func() error
}

// OpenStorage connects the configured record store. Profiles stay nil in
// local mode, where no remote profile exists.
func OpenStorage(ctx context.Context, cfg config.Config, client *supabase.Client, log logger.Logger) (*Storage, error) {
	s := &Storage{Driver: cfg.Storage.Driver}

	store, err := s.openRecordStore(ctx, cfg, log)
	if err != nil {
		_ = s.Close()
		return nil, err
	}
	s.Records = records.NewRepository(store)

	if !cfg.LocalMode() {
		profiles, err := s.openProfileStore(cfg, client, log)
		if err != nil {
			_ = s.Close()
			return nil, err
		}
		s.Profiles = profiles
	}

	return s, nil
}

func (s *Storage) openRecordStore(ctx context.Context, cfg config.Config, log logger.Logger) (records.Store, error) {
	switch cfg.Storage.Driver {
	case config.StorageMemory:
		log.Warn("storage: using in-memory store, data is lost on restart")
		return inmemory.NewRecordStore(), nil

	case config.StorageSQLite:
		sqlDB, err := db.OpenSQLite(cfg.Storage.SQLitePath, log)
		if err != nil {
			return nil, err
		}
		s.closers = append(s.closers, sqlDB.Close)
		return sqliterepo.NewRecordStore(sqlDB)

	case config.StoragePostgres:
		gormDB, err := s.postgres(cfg, log)
		if err != nil {
			return nil, err
		}
		return recordsrepo.NewPostgres(gormDB), nil

	case config.StorageRedis:
		client, err := db.NewRedis(ctx, cfg.Redis, log)
		if err != nil {
			return nil, err
		}
		s.closers = append(s.closers, client.Close)
		return redisrepo.NewRecordStore(client), nil
	}
	return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
}

func (s *Storage) openProfileStore(cfg config.Config, client *supabase.Client, log logger.Logger) (userdomain.Repository, error) {
	switch cfg.Profile.Store {
	case config.ProfileStorePostgres:
		gormDB, err := s.postgres(cfg, log)
		if err != nil {
			return nil, err
		}
		return userrepo.NewPostgres(gormDB), nil

	default:
		if client == nil || !client.Configured() {
			log.Warn("profiles: supabase not configured, profiles will be synthesized")
			return nil, nil
		}
		return supabase.NewProfileStore(client), nil
	}
}

// postgres opens and migrates the database once for every component that
// needs it.
func (s *Storage) postgres(cfg config.Config, log logger.Logger) (*gorm.DB, error) {
	if s.Postgres != nil {
		return s.Postgres, nil
	}

	gormDB, err := db.NewPostgres(cfg.DB, log)
	if err != nil {
		return nil, err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("db handle: %w", err)
	}
	s.closers = append(s.closers, sqlDB.Close)

	if _, err := db.Migrate(gormDB, log); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	s.Postgres = gormDB
	return gormDB, nil
}

func (s *Storage) Close() error {
	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](); err != nil && !errors.Is(err, sql.ErrConnDone) {
			errs = append(errs, err)
		}
	}
	s.closers = nil
	return errors.Join(errs...)
}
