package main

import (
	"encoding/json"
	"fmt"

	"aurora-app-go/internal/app"
	"aurora-app-go/internal/db"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Print every record of a user as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		who, err := identity()
		if err != nil {
			return err
		}
		return withServices(cmd.Context(), func(storage *app.Storage, services *app.Services) error {
			ns := services.Users.Namespace(who)
			data, err := storage.Records.Export(cmd.Context(), ns)
			if err != nil {
				return err
			}
			resolved, err := services.Users.Resolve(cmd.Context(), who)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(map[string]any{
				"namespace": ns.Prefix(),
				"profile":   resolved.Profile,
				"records":   data,
			})
		})
	},
}

var resetConfirm bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete every record of a user",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !resetConfirm {
			return fmt.Errorf("refusing to reset without --yes")
		}
		who, err := identity()
		if err != nil {
			return err
		}
		return withServices(cmd.Context(), func(_ *app.Storage, services *app.Services) error {
			deleted, err := services.Users.ResetData(cmd.Context(), who)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d record collections from %s\n", deleted, services.Users.Namespace(who).Prefix())
			return nil
		})
	},
}

var upgradeCmd = &cobra.Command{
	Use:   "upgrade",
	Short: "Move a user to the pro plan",
	RunE: func(cmd *cobra.Command, args []string) error {
		who, err := identity()
		if err != nil {
			return err
		}
		return withServices(cmd.Context(), func(_ *app.Storage, services *app.Services) error {
			resolved, err := services.Users.Upgrade(cmd.Context(), who)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s is on the %s plan\n", resolved.Profile.Name, resolved.Profile.Subscription)
			return nil
		})
	},
}

var migrationsDir string

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending Postgres migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		log := newLogger()

		gormDB, err := db.NewPostgres(cfg.DB, log)
		if err != nil {
			return err
		}
		sqlDB, err := gormDB.DB()
		if err != nil {
			return err
		}
		defer sqlDB.Close()

		var applied []string
		if migrationsDir != "" {
			applied, err = db.MigrateDir(gormDB, migrationsDir, log)
		} else {
			applied, err = db.Migrate(gormDB, log)
		}
		if err != nil {
			return err
		}

		if len(applied) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "Schema is up to date")
			return nil
		}
		for _, name := range applied {
			fmt.Fprintf(cmd.OutOrStdout(), "Applied %s\n", name)
		}
		return nil
	},
}

func init() {
	addUserFlags(exportCmd)
	addUserFlags(resetCmd)
	addUserFlags(upgradeCmd)
	resetCmd.Flags().BoolVar(&resetConfirm, "yes", false, "Confirm the reset")
	migrateCmd.Flags().StringVar(&migrationsDir, "dir", "", "Migrations directory; searched upwards from the working directory by default")

	rootCmd.AddCommand(exportCmd, resetCmd, upgradeCmd, migrateCmd)
}
