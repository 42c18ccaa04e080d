package main

import (
	"github.com/spf13/cobra"
)

var freeCmd = &cobra.Command{
	Use:   "free",
	Short: "Print the free time left by the events of a request",
	Args:  cobra.NoArgs,
	RunE:  runFree,
}

var (
	freeRequestPath string
	freeOutput      string
)

func init() {
	rootCmd.AddCommand(freeCmd)

	freeCmd.Flags().StringVar(&freeRequestPath, "request", "", "Path to the request file (required)")
	freeCmd.Flags().StringVarP(&freeOutput, "output", "o", outputText, "Output format: text, yaml, json")
	freeCmd.MarkFlagRequired("request")
}

func runFree(cmd *cobra.Command, _ []string) error {
	if err := validateOutput(freeOutput); err != nil {
		return err
	}

	request, errRequest := readRequestFile(freeRequestPath, cfg.Policy)
	if errRequest != nil {
		return errRequest
	}

	free, errFree := request.FreeTime()
	if errFree != nil {
		return errFree
	}

	views := newFreeTimeView(free)

	if freeOutput == outputText {
		writeFreeTimeText(cmd.OutOrStdout(), views)

		return nil
	}

	return encode(cmd.OutOrStdout(), freeOutput, views)
}
