package token

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vnstore/paycore/internal/infrastructure/auth"
	"github.com/vnstore/paycore/internal/interfaces/cli/bootstrap"
	"github.com/vnstore/paycore/internal/shared/authorization"
)

var (
	opts    bootstrap.Options
	staffID uint
	role    string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a staff access token",
		Long:  `Sign a JWT for the staff API. Staff accounts live in the back office; this command only mints the bearer token for a known staff id.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&opts.Env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")
	cmd.Flags().UintVar(&staffID, "staff-id", 0, "Staff id to embed in the token (required)")
	cmd.Flags().StringVar(&role, "role", authorization.RoleStaff.String(), "Role: staff or admin")
	cmd.MarkFlagRequired("staff-id")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, log, err := bootstrap.Init(opts)
	if err != nil {
		return err
	}

	r := authorization.ParseStaffRole(role)
	if r == "" {
		return fmt.Errorf("unknown role %q, expected staff or admin", role)
	}
	if staffID == 0 {
		return fmt.Errorf("--staff-id must be positive")
	}

	jwtSvc, err := auth.NewJWTService(cfg.Auth.JWT)
	if err != nil {
		return err
	}

	signed, expiresAt, err := jwtSvc.Generate(staffID, r)
	if err != nil {
		return fmt.Errorf("failed to sign token: %w", err)
	}

	log.Infow("staff token issued", "staff_id", staffID, "role", r.String(), "expires_at", expiresAt)

	fmt.Fprintln(cmd.OutOrStdout(), signed)
	return nil
}
