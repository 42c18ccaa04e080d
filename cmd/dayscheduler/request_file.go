package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	scheduler "github.com/TudorHulban/dayscheduler"
)

// requestFile is the on disk request. YAML or JSON, JSON being valid YAML.
//
//	policy: longest-task-first
//	workHours:
//	  start: 2020-07-20T09:00:00Z
//	  end: 2020-07-20T17:00:00Z
//	events:
//	  - name: standup
//	    start: 2020-07-20T09:00:00Z
//	    end: 2020-07-20T09:15:00Z
//	tasks:
//	  - name: write
//	    duration: 2h
type requestFile struct {
	Policy    string        `yaml:"policy"`
	WorkHours workHoursFile `yaml:"workHours"`
	Events    []eventFile   `yaml:"events"`
	Tasks     []taskFile    `yaml:"tasks"`
}

type workHoursFile struct {
	Start string `yaml:"start"`
	End   string `yaml:"end"`
}

type eventFile struct {
	Name  string `yaml:"name"`
	Start string `yaml:"start"`
	End   string `yaml:"end"`
}

type taskFile struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`

	// Duration takes Go duration syntax, as in 1h30m.
	// Minutes is the alternative when Duration is empty.
	Duration string `yaml:"duration"`
	Minutes  int    `yaml:"minutes"`

	Priority *int `yaml:"priority"`
}

func readRequestFile(path, policyFallback string) (*scheduler.ScheduleRequest, error) {
	f, errOpen := os.Open(path)
	if errOpen != nil {
		return nil, fmt.Errorf("open request: %w", errOpen)
	}
	defer f.Close()

	return decodeRequest(f, policyFallback)
}

func decodeRequest(r io.Reader, policyFallback string) (*scheduler.ScheduleRequest, error) {
	var raw requestFile

	if errDecode := yaml.NewDecoder(r).Decode(&raw); errDecode != nil {
		return nil, fmt.Errorf("decode request: %w", errDecode)
	}

	return raw.toScheduleRequest(policyFallback)
}

// toScheduleRequest uses policyFallback when the file names no policy.
func (raw *requestFile) toScheduleRequest(policyFallback string) (*scheduler.ScheduleRequest, error) {
	events := make([]*scheduler.Event, 0, len(raw.Events))

	for ix, ev := range raw.Events {
		event, errEvent := ev.toEvent()
		if errEvent != nil {
			return nil, fmt.Errorf("event %d: %w", ix, errEvent)
		}

		events = append(events, event)
	}

	tasks := make([]*scheduler.Task, 0, len(raw.Tasks))
	policy := raw.Policy

	if len(policy) == 0 {
		policy = policyFallback
	}

	for ix, tf := range raw.Tasks {
		task, errTask := tf.toTask()
		if errTask != nil {
			return nil, fmt.Errorf("task %d: %w", ix, errTask)
		}

		tasks = append(tasks, task)
	}

	return scheduler.NewScheduleRequest(
		&scheduler.ParamsNewScheduleRequest{
			Events:         events,
			Tasks:          tasks,
			WorkHoursStart: raw.WorkHours.Start,
			WorkHoursEnd:   raw.WorkHours.End,
			Policy:         policy,
		},
	)
}

func (ev eventFile) toEvent() (*scheduler.Event, error) {
	start, errStart := time.Parse(time.RFC3339, ev.Start)
	if errStart != nil {
		return nil, fmt.Errorf("start of %q: %w", ev.Name, errStart)
	}

	end, errEnd := time.Parse(time.RFC3339, ev.End)
	if errEnd != nil {
		return nil, fmt.Errorf("end of %q: %w", ev.Name, errEnd)
	}

	return scheduler.NewEvent(
		&scheduler.ParamsNewEvent{
			Name:      ev.Name,
			TimeStart: start,
			TimeEnd:   end,
		},
	)
}

func (tf taskFile) toTask() (*scheduler.Task, error) {
	duration := time.Duration(tf.Minutes) * time.Minute

	if len(tf.Duration) > 0 {
		parsed, errParse := time.ParseDuration(tf.Duration)
		if errParse != nil {
			return nil, fmt.Errorf("duration of %q: %w", tf.Name, errParse)
		}

		duration = parsed
	}

	return scheduler.NewTask(
		&scheduler.ParamsNewTask{
			Name:              tf.Name,
			Description:       tf.Description,
			EstimatedDuration: duration,
			Priority:          tf.Priority,
		},
	)
}
