package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"

	scheduler "github.com/TudorHulban/dayscheduler"
)

const (
	outputText = "text"
	outputYAML = "yaml"
	outputJSON = "json"
)

type placementView struct {
	Task     string `json:"task" yaml:"task"`
	Start    string `json:"start" yaml:"start"`
	End      string `json:"end" yaml:"end"`
	Duration string `json:"duration" yaml:"duration"`
}

type completenessView struct {
	Task      string `json:"task" yaml:"task"`
	Requested string `json:"requested" yaml:"requested"`
	Scheduled string `json:"scheduled" yaml:"scheduled"`
	Fragments int    `json:"fragments" yaml:"fragments"`
	Percent   int    `json:"percent" yaml:"percent"`
}

type allocationView struct {
	Policy       string             `json:"policy" yaml:"policy"`
	Placements   []placementView    `json:"placements" yaml:"placements"`
	Completeness []completenessView `json:"completeness" yaml:"completeness"`
	Dropped      []string           `json:"dropped" yaml:"dropped"`
}

type freeTimeView struct {
	Start    string `json:"start" yaml:"start"`
	End      string `json:"end" yaml:"end"`
	Duration string `json:"duration" yaml:"duration"`
}

func newAllocationView(policy scheduler.PolicyType, placements scheduler.ScheduledTasks, report *scheduler.CompletenessReport) allocationView {
	result := allocationView{
		Policy:       policy.String(),
		Placements:   make([]placementView, 0, len(placements)),
		Completeness: make([]completenessView, 0, len(report.Entries())),
		Dropped:      make([]string, 0),
	}

	for _, placement := range placements {
		result.Placements = append(
			result.Placements,
			placementView{
				Task:     placement.Task.Name,
				Start:    placement.TimeStart.Format(time.RFC3339),
				End:      placement.TimeEnd().Format(time.RFC3339),
				Duration: placement.Duration.String(),
			},
		)
	}

	for _, entry := range report.Entries() {
		result.Completeness = append(
			result.Completeness,
			completenessView{
				Task:      entry.Task.Name,
				Requested: entry.Requested.String(),
				Scheduled: entry.Scheduled.String(),
				Fragments: entry.Fragments,
				Percent:   entry.Percent,
			},
		)
	}

	for _, task := range report.Dropped() {
		result.Dropped = append(result.Dropped, task.Name)
	}

	return result
}

func newFreeTimeView(ranges []scheduler.TimeRange) []freeTimeView {
	result := make([]freeTimeView, 0, len(ranges))

	for _, tr := range ranges {
		result = append(
			result,
			freeTimeView{
				Start:    tr.TimeStart.Format(time.RFC3339),
				End:      tr.TimeEnd.Format(time.RFC3339),
				Duration: tr.Duration().String(),
			},
		)
	}

	return result
}

func validateOutput(format string) error {
	switch format {
	case outputText, outputYAML, outputJSON:
		return nil
	}

	return fmt.Errorf("unsupported output %q, use one of %s, %s, %s", format, outputText, outputYAML, outputJSON)
}

// encode writes v as YAML or JSON. Text rendering is handled by each command.
func encode(w io.Writer, format string, v any) error {
	switch format {
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)

		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}

		return enc.Close()

	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}

		return nil
	}

	return validateOutput(format)
}

func writeAllocationText(w io.Writer, view allocationView) {
	fmt.Fprintf(w, "Policy: %s\n", view.Policy)

	if len(view.Placements) == 0 {
		fmt.Fprintln(w, "Placements: (none)")
	} else {
		fmt.Fprintln(w, "Placements:")

		for _, placement := range view.Placements {
			fmt.Fprintf(w, "- %s  %s -> %s (%s)\n", placement.Task, placement.Start, placement.End, placement.Duration)
		}
	}

	fmt.Fprintln(w, "Completeness:")

	for _, entry := range view.Completeness {
		fmt.Fprintf(w, "- %s  %d%% (%s of %s, %d fragments)\n", entry.Task, entry.Percent, entry.Scheduled, entry.Requested, entry.Fragments)
	}

	for _, name := range view.Dropped {
		fmt.Fprintf(w, "Dropped: %s\n", name)
	}
}

func writeFreeTimeText(w io.Writer, views []freeTimeView) {
	if len(views) == 0 {
		fmt.Fprintln(w, "Free time: (none)")

		return
	}

	fmt.Fprintln(w, "Free time:")

	for _, view := range views {
		fmt.Fprintf(w, "- %s -> %s (%s)\n", view.Start, view.End, view.Duration)
	}
}
