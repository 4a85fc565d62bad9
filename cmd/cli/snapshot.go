package main

import (
	"fmt"
	"wealthtrack/cmd"
	"wealthtrack/internal/domain"

	"github.com/spf13/cobra"
)

func newSnapshotCmd() *cobra.Command {
	var user string

	c := &cobra.Command{
		Use:   "snapshot",
		Short: "Record today's total portfolio value in the history ledger",
		RunE: func(c *cobra.Command, args []string) error {
			userID, err := parseUser(user)
			if err != nil {
				return err
			}
			deps, err := loadDependencies("")
			if err != nil {
				return err
			}
			defer closeDependencies(deps)

			point, err := cmd.NewServices(*deps).HistoryService.RecordSnapshot(newContext(), userID)
			if err != nil {
				return err
			}
			fmt.Fprintf(c.OutOrStdout(), "%s %s\n",
				point.Date.Format("2006-01-02"),
				domain.NewMoneyFromFloat(point.TotalValue, domain.USD).String(),
			)
			return nil
		},
	}

	c.Flags().StringVar(&user, "user", "", "user id to snapshot")
	c.MarkFlagRequired("user")

	return c
}
