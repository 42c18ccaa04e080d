package scheduler

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// ScheduledTask places a task, or one fragment of a split task, at TimeStart.
type ScheduledTask struct {
	Task      *Task
	TimeStart time.Time

	// Duration is the part of the task covered by this placement.
	Duration time.Duration
}

func (st ScheduledTask) TimeEnd() time.Time {
	return st.TimeStart.Add(st.Duration)
}

func (st ScheduledTask) TimeRange() TimeRange {
	return TimeRange{
		TimeStart: st.TimeStart,
		TimeEnd:   st.TimeEnd(),
	}
}

// Equal compares task identity and start.
func (st ScheduledTask) Equal(other ScheduledTask) bool {
	return st.Task == other.Task && st.TimeStart.Equal(other.TimeStart)
}

func (st ScheduledTask) String() string {
	return fmt.Sprintf(
		"%s at %s for %s",

		st.Task.Name,
		st.TimeStart.Format(_LayoutTimeRange),
		st.Duration,
	)
}

type ScheduledTasks []ScheduledTask

func (sts ScheduledTasks) String() string {
	var sb strings.Builder

	sb.WriteString("[\n")

	for i, st := range sts {
		sb.WriteString(
			fmt.Sprintf(
				"  %d: %s",

				i,
				st.String(),
			),
		)

		if i < len(sts)-1 {
			sb.WriteString(",\n")
		}
	}

	sb.WriteString("\n]")

	return sb.String()
}

// ForTask keeps the placements of task, in order.
func (sts ScheduledTasks) ForTask(task *Task) ScheduledTasks {
	var result ScheduledTasks

	for _, st := range sts {
		if st.Task == task {
			result = append(result, st)
		}
	}

	return result
}

func (sts ScheduledTasks) TotalDuration() time.Duration {
	var result time.Duration

	for _, st := range sts {
		result = result + st.Duration
	}

	return result
}

// Chronological returns a copy sorted by start.
func (sts ScheduledTasks) Chronological() ScheduledTasks {
	return slices.SortedStableFunc(
		slices.Values(sts),
		func(a, b ScheduledTask) int {
			return a.TimeStart.Compare(b.TimeStart)
		},
	)
}
