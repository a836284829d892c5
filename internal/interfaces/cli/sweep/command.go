package sweep

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vnstore/paycore/internal/application/payment/usecases"
	"github.com/vnstore/paycore/internal/infrastructure/database"
	"github.com/vnstore/paycore/internal/infrastructure/repository"
	"github.com/vnstore/paycore/internal/interfaces/cli/bootstrap"
	shareddb "github.com/vnstore/paycore/internal/shared/db"
	"github.com/vnstore/paycore/internal/shared/logger"
)

var (
	opts  bootstrap.Options
	watch bool
)

// batchJob is satisfied by SweepStaleClaimsUseCase.
type batchJob interface {
	Execute(ctx context.Context) (int, error)
}

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sweep-claims",
		Short: "Close stale bank transfer claims",
		Long: `Mark pending bank transfer claims older than bank_transfer.claim_ttl_hours as FAILED.
Orders stay PENDING so customers can submit a new claim. With --watch the sweep repeats
every bank_transfer.sweep_interval_minutes until interrupted.`,
		RunE: run,
	}

	cmd.Flags().StringVarP(&opts.Env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Keep running and sweep on every interval")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, log, err := bootstrap.InitWithDatabase(opts)
	if err != nil {
		return err
	}
	defer database.Close()

	db := database.Get()
	sweeper := usecases.NewSweepStaleClaimsUseCase(
		repository.NewBankTransferClaimRepository(db),
		shareddb.NewTransactionManager(db),
		cfg.BankTransfer.ClaimTTL(),
		log,
	)
	if !sweeper.Enabled() {
		log.Warnw("claim sweep disabled, bank_transfer.claim_ttl_hours is 0")
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	closed, err := drain(ctx, sweeper, log)
	if err != nil {
		return err
	}
	if !watch {
		fmt.Printf("✅ Closed %d stale claims\n", closed)
		return nil
	}

	interval := cfg.BankTransfer.SweepInterval()
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log.Infow("claim sweep worker started", "interval", interval.String())

	for {
		select {
		case <-ticker.C:
			if _, err := drain(ctx, sweeper, log); err != nil {
				log.Errorw("claim sweep failed", "error", err)
			}
		case sig := <-sigChan:
			log.Infow("received signal, shutting down", "signal", sig)
			return nil
		}
	}
}

// drain runs batches until one closes nothing.
func drain(ctx context.Context, job batchJob, log logger.Interface) (int, error) {
	total := 0
	for {
		n, err := job.Execute(ctx)
		total += n
		if err != nil {
			return total, err
		}
		if n == 0 {
			break
		}
	}
	if total > 0 {
		log.Infow("stale claims closed", "count", total)
	}
	return total, nil
}
