package scheduler

import (
	"fmt"
	"time"
)

const _LayoutTimeRange = "15:04:05"

// TimeRange is the half open interval [TimeStart, TimeEnd).
type TimeRange struct {
	TimeStart time.Time
	TimeEnd   time.Time
}

// NewTimeRange fails with ErrInvalidRange if timeEnd is before timeStart.
func NewTimeRange(timeStart, timeEnd time.Time) (TimeRange, error) {
	if timeEnd.Before(timeStart) {
		return TimeRange{},
			fmt.Errorf(
				"%w: end %s before start %s",

				ErrInvalidRange,
				timeEnd.Format(time.RFC3339),
				timeStart.Format(time.RFC3339),
			)
	}

	return TimeRange{
			TimeStart: timeStart,
			TimeEnd:   timeEnd,
		},
		nil
}

func (tr TimeRange) Duration() time.Duration {
	return tr.TimeEnd.Sub(tr.TimeStart)
}

func (tr TimeRange) IsEmpty() bool {
	return !tr.TimeEnd.After(tr.TimeStart)
}

// Contains reports whether instant falls inside the range, end excluded.
func (tr TimeRange) Contains(instant time.Time) bool {
	return !instant.Before(tr.TimeStart) && instant.Before(tr.TimeEnd)
}

// ContainsRange reports whether other lies entirely within the range.
func (tr TimeRange) ContainsRange(other TimeRange) bool {
	return !other.TimeStart.Before(tr.TimeStart) && !other.TimeEnd.After(tr.TimeEnd)
}

// Overlaps is false for ranges that only touch.
func (tr TimeRange) Overlaps(other TimeRange) bool {
	return tr.TimeStart.Before(other.TimeEnd) && other.TimeStart.Before(tr.TimeEnd)
}

func (tr TimeRange) Equal(other TimeRange) bool {
	return tr.TimeStart.Equal(other.TimeStart) && tr.TimeEnd.Equal(other.TimeEnd)
}

func (tr TimeRange) String() string {
	return fmt.Sprintf(
		"[%s-%s) %s",

		tr.TimeStart.Format(_LayoutTimeRange),
		tr.TimeEnd.Format(_LayoutTimeRange),
		tr.Duration(),
	)
}

// compareByDurationThenStart orders ranges by duration ascending,
// ties broken by earlier start.
func compareByDurationThenStart(a, b TimeRange) int {
	if a.Duration() != b.Duration() {
		return ternary(a.Duration() < b.Duration(), -1, 1)
	}

	return a.TimeStart.Compare(b.TimeStart)
}

func compareByStart(a, b TimeRange) int {
	if c := a.TimeStart.Compare(b.TimeStart); c != 0 {
		return c
	}

	return a.TimeEnd.Compare(b.TimeEnd)
}
