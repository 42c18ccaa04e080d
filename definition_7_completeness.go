package scheduler

import (
	"time"
)

// TaskCompleteness tells how much of a task made it into the schedule.
type TaskCompleteness struct {
	Task *Task

	Requested time.Duration
	Scheduled time.Duration

	Fragments int

	// Percent is in [0, 100], rounded down.
	Percent int
}

func (tc TaskCompleteness) IsDropped() bool {
	return tc.Fragments == 0
}

func (tc TaskCompleteness) IsComplete() bool {
	return tc.Scheduled >= tc.Requested
}

func (tc TaskCompleteness) IsSplit() bool {
	return tc.Fragments > 1
}

// CompletenessReport is computed after allocation, keyed by task identity.
// Placements are never modified.
type CompletenessReport struct {
	entries []TaskCompleteness
	byTask  map[*Task]int
}

func NewCompletenessReport(tasks []*Task, placements ScheduledTasks) *CompletenessReport {
	result := CompletenessReport{
		entries: make([]TaskCompleteness, 0, len(tasks)),
		byTask:  make(map[*Task]int, len(tasks)),
	}

	for _, task := range tasks {
		if task == nil {
			continue
		}

		if _, seen := result.byTask[task]; seen {
			continue
		}

		fragments := placements.ForTask(task)
		scheduled := fragments.TotalDuration()

		var percent int

		if task.EstimatedDuration > 0 {
			percent = int(min(scheduled, task.EstimatedDuration) * 100 / task.EstimatedDuration)
		}

		result.byTask[task] = len(result.entries)
		result.entries = append(
			result.entries,
			TaskCompleteness{
				Task:      task,
				Requested: task.EstimatedDuration,
				Scheduled: scheduled,
				Fragments: len(fragments),
				Percent:   percent,
			},
		)
	}

	return &result
}

func (r *CompletenessReport) For(task *Task) (TaskCompleteness, bool) {
	ix, exists := r.byTask[task]
	if !exists {
		return TaskCompleteness{},
			false
	}

	return r.entries[ix],
		true
}

// Entries follows the order of the tasks the report was built from.
func (r *CompletenessReport) Entries() []TaskCompleteness {
	return r.entries
}

func (r *CompletenessReport) Dropped() []*Task {
	var result []*Task

	for _, entry := range r.entries {
		if entry.IsDropped() {
			result = append(result, entry.Task)
		}
	}

	return result
}
