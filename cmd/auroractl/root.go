package main

import (
	"fmt"
	"log/slog"
	"os"

	"aurora-app-go/pkg/logger"
	"github.com/spf13/cobra"
)

var (
	storageDriver string
	sqlitePath    string
	verbose       bool
)

var rootCmd = &cobra.Command{
	Use:   "auroractl",
	Short: "auroractl inspects and maintains Aurora data",
	Long: "auroractl runs the Aurora calculators offline and maintains stored records " +
		"(export, reset, upgrade and database migrations) using the same configuration as the server.",
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&storageDriver, "driver", "", "Record store driver (memory, sqlite, postgres, redis); defaults to STORAGE_DRIVER")
	rootCmd.PersistentFlags().StringVar(&sqlitePath, "sqlite", "", "Path to the SQLite database; defaults to SQLITE_PATH")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log to stderr")
}

func newLogger() logger.Logger {
	if !verbose {
		return logger.Nop()
	}
	return logger.New(os.Stderr, slog.LevelDebug, "text")
}
