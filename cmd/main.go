package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"khoj.dev/citybus/config"
	"khoj.dev/citybus/storage"
)

var rootCmd = &cobra.Command{
	Use:          "citybus",
	Short:        "Khoj city bus tool",
	Long:         "Imports and queries Vadodara city bus route data",
	SilenceUsage: true,
}

var sqlitePath string

func init() {
	rootCmd.PersistentFlags().StringVarP(
		&sqlitePath,
		"sqlite",
		"",
		"",
		"use a local SQLite database at this path instead of Supabase",
	)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(examineCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(routesCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(fareCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// openStorage connects to the configured store. With --sqlite a local
// database file is used; otherwise Supabase credentials are required and
// the Postgres backend is used. Credentials are checked before any other
// work happens.
func openStorage(cfg *config.Config) (storage.Storage, error) {
	if sqlitePath != "" {
		return storage.NewSQLiteStorage(storage.SQLiteConfig{OnDisk: true, Path: sqlitePath})
	}

	if err := cfg.ValidateCredentials(); err != nil {
		return nil, err
	}

	return storage.NewPSQLStorage(cfg.PostgresDSN(), false)
}
