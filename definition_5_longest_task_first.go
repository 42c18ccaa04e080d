package scheduler

import (
	"fmt"
	"slices"

	"github.com/rs/zerolog"
)

// LongestTaskFirst places the longest tasks first, each into the smallest free range
// that holds it whole. A task no single range can hold is split across the shortest
// ranges, provided the total free time is strictly longer than the task.
// Otherwise the task is dropped.
type LongestTaskFirst struct {
	logger zerolog.Logger
}

var _ SchedulingPolicy = &LongestTaskFirst{}

func NewLongestTaskFirst(logger zerolog.Logger) *LongestTaskFirst {
	return &LongestTaskFirst{
		logger: logger.With().
			Str("policy", PolicyLongestTaskFirst.String()).
			Logger(),
	}
}

func (*LongestTaskFirst) Type() PolicyType {
	return PolicyLongestTaskFirst
}

// Schedule returns the placements in processing order, not chronological order.
func (ltf *LongestTaskFirst) Schedule(params *ParamsSchedule) (ScheduledTasks, error) {
	if errValidation := params.IsValid("LongestTaskFirst.Schedule"); errValidation != nil {
		return nil,
			errValidation
	}

	tasks := slices.Clone(params.Tasks)
	slices.SortStableFunc(tasks, compareLongestFirst)

	freeRanges, errFree := FreeTime(params.Events, params.WorkStart, params.WorkEnd)
	if errFree != nil {
		return nil,
			errFree
	}

	available, errSet := NewTimeRangeSet(freeRanges...)
	if errSet != nil {
		return nil,
			fmt.Errorf("load free time: %w", errSet)
	}

	result := make(ScheduledTasks, 0, len(tasks))

	for _, task := range tasks {
		if placement, fits := bestFit(available.SortedByDurationThenStart(), task); fits {
			if errRemove := available.Remove(placement.TimeRange()); errRemove != nil {
				return nil,
					fmt.Errorf("place task %q: %w", task.Name, errRemove)
			}

			ltf.logger.Debug().
				Str("task", task.Name).
				Time("start", placement.TimeStart).
				Dur("duration", placement.Duration).
				Msg("task placed")

			result = append(result, placement)

			continue
		}

		if free := available.TotalDuration(); free <= task.EstimatedDuration {
			ltf.logger.Debug().
				Str("task", task.Name).
				Dur("duration", task.EstimatedDuration).
				Dur("free", free).
				Msg("task dropped, not enough free time")

			continue
		}

		fragments, errSplit := splitAcross(available, task)
		if errSplit != nil {
			return nil,
				fmt.Errorf("split task %q: %w", task.Name, errSplit)
		}

		ltf.logger.Debug().
			Str("task", task.Name).
			Int("fragments", len(fragments)).
			Msg("task split")

		result = append(result, fragments...)
	}

	return result,
		nil
}

// bestFit expects ranges sorted shortest first,
// so the first range long enough is the smallest that fits.
func bestFit(ranges []TimeRange, task *Task) (ScheduledTask, bool) {
	for _, candidate := range ranges {
		if candidate.Duration() >= task.EstimatedDuration {
			return ScheduledTask{
					Task:      task,
					TimeStart: candidate.TimeStart,
					Duration:  task.EstimatedDuration,
				},
				true
		}
	}

	return ScheduledTask{},
		false
}

// splitAcross fills the shortest free ranges first until the task is covered
// or free time runs out.
func splitAcross(available *TimeRangeSet, task *Task) (ScheduledTasks, error) {
	var result ScheduledTasks

	remaining := task.EstimatedDuration

	for ranges := available.SortedByDurationThenStart(); remaining > 0 && len(ranges) > 0; ranges = available.SortedByDurationThenStart() {
		shortest := ranges[0]

		fragment := ScheduledTask{
			Task:      task,
			TimeStart: shortest.TimeStart,
			Duration:  min(remaining, shortest.Duration()),
		}

		if errRemove := available.Remove(fragment.TimeRange()); errRemove != nil {
			return nil,
				errRemove
		}

		result = append(result, fragment)

		remaining = remaining - fragment.Duration
	}

	return result,
		nil
}
