package scheduler

import (
	"fmt"
	"slices"
	"time"
)

// FreeTime returns the gaps the events leave inside [workStart, workEnd), in chronological order.
// Events are clipped to the window, overlapping or touching events merge into one busy block.
func FreeTime(events []*Event, workStart, workEnd time.Time) ([]TimeRange, error) {
	workHours, errWindow := NewTimeRange(workStart, workEnd)
	if errWindow != nil {
		return nil,
			fmt.Errorf("work hours: %w", errWindow)
	}

	if errEvents := validateEvents("FreeTime", events); errEvents != nil {
		return nil,
			errEvents
	}

	return freeTimeWithin(workHours, busyWithin(workHours, events)),
		nil
}

// busyWithin clips the events to the window, sorted by start.
// Events outside the window or without duration are dropped.
func busyWithin(window TimeRange, events []*Event) []TimeRange {
	result := make([]TimeRange, 0, len(events))

	for _, event := range events {
		clipped := TimeRange{
			TimeStart: laterOf(event.TimeStart, window.TimeStart),
			TimeEnd:   earlierOf(event.TimeEnd, window.TimeEnd),
		}

		if clipped.IsEmpty() {
			continue
		}

		result = append(result, clipped)
	}

	slices.SortFunc(result, compareByStart)

	return result
}

// freeTimeWithin expects busy sorted by start.
func freeTimeWithin(window TimeRange, busy []TimeRange) []TimeRange {
	var result []TimeRange

	currentStart := window.TimeStart

	for _, block := range busy {
		if block.TimeStart.After(currentStart) {
			result = append(
				result,
				TimeRange{
					TimeStart: currentStart,
					TimeEnd:   block.TimeStart,
				},
			)
		}

		currentStart = laterOf(currentStart, block.TimeEnd)
	}

	if currentStart.Before(window.TimeEnd) {
		result = append(
			result,
			TimeRange{
				TimeStart: currentStart,
				TimeEnd:   window.TimeEnd,
			},
		)
	}

	return result
}
