package scheduler

import (
	"fmt"
	"iter"
	"slices"
	"strings"
	"time"
)

// TimeRangeSet holds disjoint free time ranges.
// Stored order is unspecified, callers sort what they read.
// Not safe for concurrent use, every allocation run owns its own set.
type TimeRangeSet struct {
	ranges []TimeRange
}

func NewTimeRangeSet(ranges ...TimeRange) (*TimeRangeSet, error) {
	result := TimeRangeSet{
		ranges: make([]TimeRange, 0, len(ranges)),
	}

	for _, tr := range ranges {
		if errInsert := result.Insert(tr); errInsert != nil {
			return nil,
				errInsert
		}
	}

	return &result,
		nil
}

// Insert adds a range disjoint from every stored one.
// Empty ranges carry no free time and are ignored.
func (s *TimeRangeSet) Insert(tr TimeRange) error {
	if tr.TimeEnd.Before(tr.TimeStart) {
		return fmt.Errorf("insert %s: %w", tr, ErrInvalidRange)
	}

	if tr.IsEmpty() {
		return nil
	}

	for _, stored := range s.ranges {
		if stored.Overlaps(tr) {
			return fmt.Errorf(
				"insert %s: %w %s",

				tr,
				ErrRangeOverlap,
				stored,
			)
		}
	}

	s.ranges = append(s.ranges, tr)

	return nil
}

// Remove subtracts subRange from the stored range containing it.
// The stored range is dropped, shrunk, or split in two around subRange.
func (s *TimeRangeSet) Remove(subRange TimeRange) error {
	ix := slices.IndexFunc(
		s.ranges,
		func(stored TimeRange) bool {
			return stored.ContainsRange(subRange)
		},
	)
	if ix == -1 {
		return fmt.Errorf("remove %s: %w", subRange, ErrRangeNotFound)
	}

	if subRange.IsEmpty() {
		return nil
	}

	stored := s.ranges[ix]

	fragments := make([]TimeRange, 0, 2)

	if stored.TimeStart.Before(subRange.TimeStart) {
		fragments = append(
			fragments,
			TimeRange{
				TimeStart: stored.TimeStart,
				TimeEnd:   subRange.TimeStart,
			},
		)
	}

	if subRange.TimeEnd.Before(stored.TimeEnd) {
		fragments = append(
			fragments,
			TimeRange{
				TimeStart: subRange.TimeEnd,
				TimeEnd:   stored.TimeEnd,
			},
		)
	}

	s.ranges = slices.Replace(s.ranges, ix, ix+1, fragments...)

	return nil
}

func (s *TimeRangeSet) TotalDuration() time.Duration {
	var result time.Duration

	for _, tr := range s.ranges {
		result = result + tr.Duration()
	}

	return result
}

func (s *TimeRangeSet) Len() int {
	return len(s.ranges)
}

// All iterates the stored ranges in no particular order.
func (s *TimeRangeSet) All() iter.Seq[TimeRange] {
	return slices.Values(s.ranges)
}

// SortedByDurationThenStart returns a copy of the stored ranges,
// shortest first, ties broken by earlier start.
func (s *TimeRangeSet) SortedByDurationThenStart() []TimeRange {
	return slices.SortedFunc(s.All(), compareByDurationThenStart)
}

func (s *TimeRangeSet) String() string {
	if len(s.ranges) == 0 {
		return "TimeRangeSet: (empty)"
	}

	var sb strings.Builder

	sb.WriteString("TimeRangeSet:\n")

	for _, tr := range slices.SortedFunc(s.All(), compareByStart) {
		sb.WriteString(
			fmt.Sprintf("- %s\n", tr),
		)
	}

	return sb.String()
}
