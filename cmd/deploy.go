package main

import (
	"context"
	"taxtoken/internal/config"
	"taxtoken/internal/token"
	"taxtoken/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// deployCommand constructs the 'deploy' subcommand that creates the token
// described by the config's token section, registers its main pair and
// mints the supply to the owner.
func deployCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Deploys the configured token",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			params, err := token.NewDeployParams(cfg)
			if err != nil {
				logger.Fatal(ctx, "invalid token config", zap.Error(err))
			}

			pgsql, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			tkn := getToken(ctx, cfg, pgsql, token.NewOptions(cfg))
			state, err := tkn.Deploy(ctx, params)
			if err != nil {
				logger.Fatal(ctx, "could not deploy token", zap.Error(err))
			}

			logger.Info(ctx, "token deployed",
				zap.String("symbol", state.Symbol),
				zap.String("variant", string(state.Variant)),
				zap.Stringer("address", state.Address),
				zap.Stringer("main_pair", state.MainPair),
				zap.String("total_supply", state.TotalSupply.FormatUnits(state.Decimals)))
		},
	}

	return cmd
}
