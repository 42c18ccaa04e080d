package main

import (
	"fmt"

	"github.com/spf13/cobra"

	scheduler "github.com/TudorHulban/dayscheduler"
)

var policiesCmd = &cobra.Command{
	Use:   "policies",
	Short: "List the scheduling policies",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		for _, policy := range scheduler.Policies() {
			fmt.Fprintln(cmd.OutOrStdout(), policy)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(policiesCmd)
}
