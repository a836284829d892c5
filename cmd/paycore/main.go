// @title						Paycore API
// @version					1.0
// @description				Payment orchestration for the storefront: checkout, VNPAY, bank transfer claims and VietQR.
// @BasePath					/
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vnstore/paycore/internal/interfaces/cli/migrate"
	"github.com/vnstore/paycore/internal/interfaces/cli/seed"
	"github.com/vnstore/paycore/internal/interfaces/cli/server"
	"github.com/vnstore/paycore/internal/interfaces/cli/sweep"
	"github.com/vnstore/paycore/internal/interfaces/cli/token"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "paycore",
		Short:        "Paycore - payment orchestration service",
		Long:         `Paycore runs the payment API and ships migration, seeding, claim sweep and staff token tools.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		seed.NewCommand(),
		sweep.NewCommand(),
		token.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
