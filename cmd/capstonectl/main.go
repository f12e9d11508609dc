// capstonectl is the operator tool for the capstone projects site.
//
// Usage:
//
//	capstonectl migrate
//	capstonectl admin add --email root@example.com --password secret
//	capstonectl admin list
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var dbPath string

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "capstonectl",
		Short:         "Manage the capstone projects database",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	defaultPath := os.Getenv("DATABASE_PATH")
	if defaultPath == "" {
		defaultPath = "./capstone.db"
	}
	root.PersistentFlags().StringVar(&dbPath, "db", defaultPath, "SQLite database path")

	root.AddCommand(migrateCmd())
	root.AddCommand(adminCmd())
	return root
}
