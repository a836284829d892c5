package seed

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vnstore/paycore/internal/infrastructure/database"
	"github.com/vnstore/paycore/internal/infrastructure/persistence/seeds"
	"github.com/vnstore/paycore/internal/infrastructure/repository"
	"github.com/vnstore/paycore/internal/interfaces/cli/bootstrap"
)

var (
	opts     bootstrap.Options
	seedFile string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load reference data",
		Long:  `Insert bank accounts, payment methods and discount codes from a YAML seed file. Existing rows are left untouched.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&opts.Env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")
	cmd.Flags().StringVarP(&seedFile, "file", "f", "configs/seeds/seeds.yaml", "Path to the seed file")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	f, err := seeds.Load(seedFile)
	if err != nil {
		return err
	}

	_, log, err := bootstrap.InitWithDatabase(opts)
	if err != nil {
		return err
	}
	defer database.Close()

	db := database.Get()
	seeder := seeds.NewSeeder(
		repository.NewBankAccountRepository(db),
		repository.NewPaymentMethodRepository(db),
		repository.NewDiscountRepository(db),
		log,
	)

	res, err := seeder.Run(context.Background(), f)
	if err != nil {
		log.Errorw("seed failed", "file", seedFile, "error", err)
		return err
	}

	fmt.Printf("✅ Seeded %d bank accounts, %d payment methods, %d discount codes (%d skipped)\n",
		res.BankAccountsCreated, res.MethodsCreated, res.DiscountsCreated, res.Skipped)
	return nil
}
