package main

import (
	"context"
	"fmt"
	"strings"

	"aurora-app-go/internal/app"
	"aurora-app-go/internal/config"
	userdomain "aurora-app-go/internal/domain/user"
	"aurora-app-go/internal/identity/supabase"
	"github.com/spf13/cobra"
)

var (
	userID    string
	userEmail string
)

func loadConfig() (config.Config, error) {
	cfg, err := config.Load(newLogger())
	if err != nil {
		return config.Config{}, err
	}
	if storageDriver != "" {
		cfg.Storage.Driver = strings.ToLower(storageDriver)
	}
	if sqlitePath != "" {
		cfg.Storage.SQLitePath = sqlitePath
	}
	return cfg, nil
}

func withServices(ctx context.Context, run func(storage *app.Storage, services *app.Services) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := newLogger()

	storage, err := app.OpenStorage(ctx, cfg, supabase.New(cfg.Supabase), log)
	if err != nil {
		return err
	}
	defer storage.Close()

	return run(storage, app.NewServices(cfg, storage, log))
}

// identity builds the caller from --user-id/--email. Without both flags the
// device-local user is addressed.
func identity() (userdomain.Identity, error) {
	id := strings.TrimSpace(userID)
	email := strings.TrimSpace(userEmail)
	if id == "" && email == "" {
		return userdomain.Identity{}, nil
	}
	if id == "" {
		return userdomain.Identity{}, fmt.Errorf("--user-id is required when --email is set")
	}
	return userdomain.Identity{ID: id, Email: email}, nil
}

func addUserFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&userID, "user-id", "", "Account id (omit for the local user)")
	cmd.Flags().StringVar(&userEmail, "email", "", "Account e-mail; owns the record namespace")
}
