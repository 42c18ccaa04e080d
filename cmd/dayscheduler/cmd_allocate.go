package main

import (
	"fmt"

	"github.com/spf13/cobra"

	scheduler "github.com/TudorHulban/dayscheduler"
)

var allocateCmd = &cobra.Command{
	Use:   "allocate",
	Short: "Place the tasks of a request into its free time",
	Long:  "Read a request file (YAML or JSON), run the scheduling policy and print placements, completeness and dropped tasks.",
	Args:  cobra.NoArgs,
	RunE:  runAllocate,
}

var (
	allocateRequestPath   string
	allocatePolicy        string
	allocateOutput        string
	allocateChronological bool
)

func init() {
	rootCmd.AddCommand(allocateCmd)

	allocateCmd.Flags().StringVar(&allocateRequestPath, "request", "", "Path to the request file (required)")
	allocateCmd.Flags().StringVar(&allocatePolicy, "policy", "", "Scheduling policy, overrides the request file and DAYSCHEDULER_POLICY")
	allocateCmd.Flags().StringVarP(&allocateOutput, "output", "o", outputText, "Output format: text, yaml, json")
	allocateCmd.Flags().BoolVar(&allocateChronological, "chronological", false, "Print placements by start time instead of processing order")
	allocateCmd.MarkFlagRequired("request")
}

func runAllocate(cmd *cobra.Command, _ []string) error {
	if err := validateOutput(allocateOutput); err != nil {
		return err
	}

	request, errRequest := readRequestFile(allocateRequestPath, cfg.Policy)
	if errRequest != nil {
		return errRequest
	}

	if len(allocatePolicy) > 0 {
		policy, errPolicy := scheduler.ParsePolicyType(allocatePolicy)
		if errPolicy != nil {
			return fmt.Errorf("policy flag: %w", errPolicy)
		}

		request.Policy = policy
	}

	logger.Debug().
		Str("request", allocateRequestPath).
		Int("events", len(request.Events)).
		Int("tasks", len(request.Tasks)).
		Stringer("policy", request.Policy).
		Msg("scheduling")

	placements, errSchedule := request.Schedule(&logger)
	if errSchedule != nil {
		return fmt.Errorf("schedule: %w", errSchedule)
	}

	report := scheduler.NewCompletenessReport(request.Tasks, placements)

	for _, task := range report.Dropped() {
		logger.Warn().
			Str("task", task.Name).
			Dur("duration", task.EstimatedDuration).
			Msg("task could not be scheduled")
	}

	if allocateChronological {
		placements = placements.Chronological()
	}

	view := newAllocationView(request.Policy, placements, report)

	if allocateOutput == outputText {
		writeAllocationText(cmd.OutOrStdout(), view)

		return nil
	}

	return encode(cmd.OutOrStdout(), allocateOutput, view)
}
