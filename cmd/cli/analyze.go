package main

import (
	"encoding/json"
	"fmt"
	"wealthtrack/cmd"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

func newAnalyzeCmd() *cobra.Command {
	var (
		user       string
		rangeFlag  string
		ledgerDir  string
		outputJson bool
	)

	c := &cobra.Command{
		Use:   "analyze",
		Short: "Value the portfolio over a range and print its metrics",
		RunE: func(c *cobra.Command, args []string) error {
			userID, err := parseUser(user)
			if err != nil {
				return err
			}
			deps, err := loadDependencies(ledgerDir)
			if err != nil {
				return err
			}
			defer closeDependencies(deps)

			analysis, err := cmd.NewServices(*deps).PortfolioAnalysisService.GeneratePortfolioAnalysis(newContext(), userID, rangeFlag)
			if err != nil {
				return fmt.Errorf("failed to analyze portfolio: %w", err)
			}

			if outputJson {
				out, err := json.MarshalIndent(analysis, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to encode analysis: %w", err)
				}
				fmt.Fprintln(c.OutOrStdout(), string(out))
				return nil
			}

			md, err := RenderAnalysis(analysis)
			if err != nil {
				return err
			}
			rendered, err := glamour.Render(md, "dark")
			if err != nil {
				return fmt.Errorf("failed to render report: %w", err)
			}
			fmt.Fprint(c.OutOrStdout(), rendered)
			return nil
		},
	}

	c.Flags().StringVar(&user, "user", "", "user id whose ledger is analyzed")
	c.Flags().StringVar(&rangeFlag, "range", "30D", "24H, 7D, 1W, 30D, 1M, 3M, YTD, 1Y or ALL")
	c.Flags().StringVar(&ledgerDir, "ledger", "", "directory holding assets.csv and transactions.csv")
	c.Flags().BoolVar(&outputJson, "json", false, "print the raw analysis as json")
	c.MarkFlagRequired("user")

	return c
}
