package main

import (
	"os"

	"github.com/spf13/cobra"

	"rolehub/internal/interfaces/cli/migrate"
	"rolehub/internal/interfaces/cli/server"
)

//	@title			RoleHub API
//	@version		1.0
//	@description	HR access governance: org structure, employees, accesses and criteria-driven role models.
//	@BasePath		/

func main() {
	rootCmd := &cobra.Command{
		Use:   "rolehub",
		Short: "RoleHub - HR access governance service",
		Long:  `RoleHub manages the org structure, employees and application accesses, and reconciles access grants from criteria-based role models.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
