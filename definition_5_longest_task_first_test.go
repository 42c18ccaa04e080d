package scheduler

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type expectedPlacement struct {
	task     string
	start    time.Time
	duration time.Duration
}

func requirePlacements(t *testing.T, expected []expectedPlacement, actual ScheduledTasks) {
	t.Helper()

	require.Len(t, actual, len(expected), actual.String())

	for ix, placement := range actual {
		require.Equal(t, expected[ix].task, placement.Task.Name, "placement %d", ix)
		require.True(t,
			expected[ix].start.Equal(placement.TimeStart),
			"placement %d: expected start %s, got %s",
			ix,
			expected[ix].start,
			placement.TimeStart,
		)
		require.Equal(t, expected[ix].duration, placement.Duration, "placement %d", ix)
	}
}

func TestLongestTaskFirst(t *testing.T) {
	tests := []struct {
		name     string
		events   map[string]TimeRange
		tasks    map[string]time.Duration
		expected []expectedPlacement
	}{
		{
			name:  "A. no events, one task at work start",
			tasks: map[string]time.Duration{"write": 2 * oneHour},
			expected: []expectedPlacement{
				{"write", at(9, 0), 2 * oneHour},
			},
		},
		{
			name:   "B. best fit skips the too short morning gap",
			events: map[string]TimeRange{"meeting": span(10, 0, 11, 0)},
			tasks:  map[string]time.Duration{"focus": 3 * oneHour},
			expected: []expectedPlacement{
				{"focus", at(11, 0), 3 * oneHour},
			},
		},
		{
			name: "C. not enough free time, task dropped",
			events: map[string]TimeRange{
				"a": span(9, 0, 12, 0),
				"b": span(13, 0, 17, 0),
			},
			tasks:    map[string]time.Duration{"t": 2 * oneHour},
			expected: []expectedPlacement{},
		},
		{
			name:   "D. split across two equal gaps, earlier first",
			events: map[string]TimeRange{"offsite": span(10, 0, 16, 0)},
			tasks:  map[string]time.Duration{"t": oneHour + halfHour},
			expected: []expectedPlacement{
				{"t", at(9, 0), oneHour},
				{"t", at(16, 0), halfHour},
			},
		},
		{
			name: "E. equal durations ordered by name",
			tasks: map[string]time.Duration{
				"Zebra": oneHour,
				"Apple": oneHour,
			},
			expected: []expectedPlacement{
				{"Apple", at(9, 0), oneHour},
				{"Zebra", at(10, 0), oneHour},
			},
		},
		{
			name: "F. total free time equal to task duration is not split",
			events: map[string]TimeRange{
				"offsite": span(10, 0, 16, 0),
			},
			tasks:    map[string]time.Duration{"t": 2 * oneHour},
			expected: []expectedPlacement{},
		},
		{
			name: "G. smallest fitting gap wins",
			events: map[string]TimeRange{
				"standup": span(10, 0, 11, 0),
				"lunch":   span(12, 30, 13, 0),
			},
			tasks: map[string]time.Duration{"review": oneHour + 15*time.Minute},
			expected: []expectedPlacement{
				{"review", at(11, 0), oneHour + 15*time.Minute},
			},
		},
		{
			name: "H. split fills shortest gaps first, leaves trailing fragment",
			events: map[string]TimeRange{
				"a": span(9, 30, 10, 0),
				"b": span(11, 0, 12, 0),
				"c": span(13, 0, 17, 0),
			},
			tasks: map[string]time.Duration{"t": 2 * oneHour},
			expected: []expectedPlacement{
				{"t", at(9, 0), halfHour},
				{"t", at(10, 0), oneHour},
				{"t", at(12, 0), halfHour},
			},
		},
		{
			name:   "I. longest first, later tasks use what is left",
			events: map[string]TimeRange{"meeting": span(10, 0, 11, 0)},
			tasks: map[string]time.Duration{
				"focus": 3 * oneHour,
				"mail":  halfHour,
				"call":  oneHour,
			},
			expected: []expectedPlacement{
				{"focus", at(11, 0), 3 * oneHour},
				{"call", at(9, 0), oneHour},
				{"mail", at(14, 0), halfHour},
			},
		},
		{
			name:   "J. fragment left by split reused by shorter task",
			events: map[string]TimeRange{"offsite": span(10, 0, 16, 0)},
			tasks: map[string]time.Duration{
				"t":     oneHour + halfHour,
				"short": 20 * time.Minute,
			},
			expected: []expectedPlacement{
				{"t", at(9, 0), oneHour},
				{"t", at(16, 0), halfHour},
				{"short", at(16, 30), 20 * time.Minute},
			},
		},
	}

	for _, tt := range tests {
		t.Run(
			tt.name,
			func(t *testing.T) {
				events := make([]*Event, 0, len(tt.events))
				for name, busy := range tt.events {
					events = append(events, newTestEvent(t, name, busy))
				}

				tasks := make([]*Task, 0, len(tt.tasks))
				for name, duration := range tt.tasks {
					tasks = append(tasks, newTestTask(t, name, duration))
				}

				placements, errAllocate := Allocate(events, tasks, at(9, 0), at(17, 0))
				require.NoError(t, errAllocate)

				requirePlacements(t, tt.expected, placements)
			},
		)
	}
}

func TestLongestTaskFirstDoesNotReorderInput(t *testing.T) {
	tasks := []*Task{
		newTestTask(t, "b", oneHour),
		newTestTask(t, "a", 2*oneHour),
	}

	_, errAllocate := Allocate(nil, tasks, at(9, 0), at(17, 0))
	require.NoError(t, errAllocate)

	require.Equal(t, "b", tasks[0].Name)
	require.Equal(t, "a", tasks[1].Name)
}

func TestErrorsLongestTaskFirst(t *testing.T) {
	policy := NewLongestTaskFirst(zerolog.Nop())

	t.Run(
		"1. inverted work hours",
		func(t *testing.T) {
			placements, errSchedule := policy.Schedule(
				&ParamsSchedule{
					WorkStart: at(17, 0),
					WorkEnd:   at(9, 0),
				},
			)
			require.Error(t, errSchedule)
			require.Nil(t, placements)
		},
	)

	t.Run(
		"2. task without duration",
		func(t *testing.T) {
			placements, errSchedule := policy.Schedule(
				&ParamsSchedule{
					Tasks: []*Task{
						{Name: "empty"},
					},
					WorkStart: at(9, 0),
					WorkEnd:   at(17, 0),
				},
			)
			require.Error(t, errSchedule)
			require.Nil(t, placements)
		},
	)

	t.Run(
		"3. nil task",
		func(t *testing.T) {
			placements, errSchedule := policy.Schedule(
				&ParamsSchedule{
					Tasks:     []*Task{nil},
					WorkStart: at(9, 0),
					WorkEnd:   at(17, 0),
				},
			)
			require.Error(t, errSchedule)
			require.Nil(t, placements)
		},
	)

	t.Run(
		"4. empty window drops everything",
		func(t *testing.T) {
			placements, errSchedule := policy.Schedule(
				&ParamsSchedule{
					Tasks:     []*Task{newTestTask(t, "t", oneHour)},
					WorkStart: at(9, 0),
					WorkEnd:   at(9, 0),
				},
			)
			require.NoError(t, errSchedule)
			require.Empty(t, placements)
		},
	)
}

func randomInput(t *testing.T, rnd *rand.Rand) ([]*Event, []*Task) {
	t.Helper()

	noEvents := rnd.IntN(8)
	events := make([]*Event, 0, noEvents)

	for range noEvents {
		start := at(7, 0).Add(time.Duration(rnd.IntN(12*4)) * 15 * time.Minute)

		events = append(
			events,
			newTestEvent(t,
				"event",
				TimeRange{
					TimeStart: start,
					TimeEnd:   start.Add(time.Duration(1+rnd.IntN(12)) * 15 * time.Minute),
				},
			),
		)
	}

	noTasks := 1 + rnd.IntN(8)
	tasks := make([]*Task, 0, noTasks)

	for ix := range noTasks {
		tasks = append(
			tasks,
			newTestTask(t,
				string(rune('a'+ix)),
				time.Duration(1+rnd.IntN(16))*15*time.Minute,
			),
		)
	}

	return events, tasks
}

func TestLongestTaskFirstProperties(t *testing.T) {
	rnd := rand.New(rand.NewPCG(7, 42))
	window := span(9, 0, 17, 0)

	for run := range 200 {
		events, tasks := randomInput(t, rnd)

		placements, errAllocate := Allocate(events, tasks, window.TimeStart, window.TimeEnd)
		require.NoError(t, errAllocate, "run %d", run)

		again, errAgain := Allocate(events, tasks, window.TimeStart, window.TimeEnd)
		require.NoError(t, errAgain)
		require.Equal(t, placements, again, "run %d: deterministic", run)

		for _, task := range tasks {
			scheduled := placements.ForTask(task).TotalDuration()

			require.True(t,
				scheduled == 0 || scheduled == task.EstimatedDuration,
				"run %d: task %s scheduled %s", run, task, scheduled,
			)
		}

		for ix, placement := range placements {
			require.Positive(t, placement.Duration)
			require.True(t,
				window.ContainsRange(placement.TimeRange()),
				"run %d: %s outside work hours", run, placement,
			)

			for _, event := range events {
				require.False(t,
					placement.TimeRange().Overlaps(event.TimeRange),
					"run %d: %s overlaps %s", run, placement, event,
				)
			}

			for _, other := range placements[ix+1:] {
				require.False(t,
					placement.TimeRange().Overlaps(other.TimeRange()),
					"run %d: %s overlaps %s", run, placement, other,
				)
			}
		}
	}
}
