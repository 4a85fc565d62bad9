package main

import (
	"context"
	"fmt"
	"os"
	"wealthtrack/cmd"
	"wealthtrack/internal/logger"
	"wealthtrack/internal/repository"
	"wealthtrack/internal/util"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "wealthtrack",
		Short:         "Portfolio analytics over a user's ledger",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newAnalyzeCmd(), newSnapshotCmd())
	return root
}

func newContext() context.Context {
	return logger.NewContext(context.Background(), logger.New())
}

func parseUser(s string) (uuid.UUID, error) {
	userID, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to parse --user %q: %w", s, err)
	}
	return userID, nil
}

// loadDependencies reads the ledger from ledgerDir when set, otherwise from
// postgres. The file ledger has no history store.
func loadDependencies(ledgerDir string) (*cmd.Dependencies, error) {
	cfg, err := util.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if ledgerDir != "" {
		marketData, alpacaRepository, fxRepository := cmd.NewMarketDependencies(util.Secrets{})
		return &cmd.Dependencies{
			Config:               cfg,
			LedgerRepository:     repository.NewCsvLedgerRepository(ledgerDir),
			MarketDataRepository: marketData,
			AlpacaRepository:     alpacaRepository,
			FxRateRepository:     fxRepository,
		}, nil
	}

	secrets, err := util.LoadSecrets()
	if err != nil {
		return nil, fmt.Errorf("failed to load secrets: %w", err)
	}
	return cmd.NewDbDependencies(cfg, *secrets)
}

func closeDependencies(deps *cmd.Dependencies) {
	if deps.Db != nil {
		deps.Db.Close()
	}
}
