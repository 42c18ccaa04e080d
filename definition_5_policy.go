package scheduler

import (
	"fmt"
	"strings"
	"time"

	goerrors "github.com/TudorHulban/go-errors"
	"github.com/rs/zerolog"
)

type PolicyType uint8

const (
	PolicyUnknown PolicyType = iota
	PolicyLongestTaskFirst
)

var _PolicyNames = map[PolicyType]string{
	PolicyLongestTaskFirst: "longest-task-first",
}

func (p PolicyType) String() string {
	if name, exists := _PolicyNames[p]; exists {
		return name
	}

	return fmt.Sprintf("unknown(%d)", uint8(p))
}

// ParsePolicyType accepts both "longest-task-first" and "LONGEST_TASK_FIRST".
// Empty input selects the default policy.
func ParsePolicyType(name string) (PolicyType, error) {
	normalized := strings.ToLower(
		strings.ReplaceAll(strings.TrimSpace(name), "_", "-"),
	)

	if len(normalized) == 0 {
		return PolicyLongestTaskFirst,
			nil
	}

	for policy, policyName := range _PolicyNames {
		if policyName == normalized {
			return policy,
				nil
		}
	}

	return PolicyUnknown,
		fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
}

// Policies lists the known policy types.
func Policies() []PolicyType {
	return []PolicyType{
		PolicyLongestTaskFirst,
	}
}

type ParamsSchedule struct {
	Events []*Event
	Tasks  []*Task

	WorkStart time.Time
	WorkEnd   time.Time
}

func (param *ParamsSchedule) IsValid(caller string) error {
	if param.WorkEnd.Before(param.WorkStart) {
		return goerrors.ErrValidation{
			Caller: caller,
			Issue: goerrors.ErrInvalidInput{
				InputName:  "WorkEnd",
				InputValue: param.WorkEnd,
				Issue:      ErrInvalidRange,
			},
		}
	}

	if errEvents := validateEvents(caller, param.Events); errEvents != nil {
		return errEvents
	}

	return validateTasks(caller, param.Tasks)
}

// SchedulingPolicy places tasks into the free time of a single day.
// Tasks absent from the result could not be placed.
type SchedulingPolicy interface {
	Schedule(params *ParamsSchedule) (ScheduledTasks, error)
	Type() PolicyType
}

type ParamsNewSchedulingPolicy struct {
	Logger *zerolog.Logger

	Type PolicyType
}

func NewSchedulingPolicy(params *ParamsNewSchedulingPolicy) (SchedulingPolicy, error) {
	logger := zerolog.Nop()
	if params.Logger != nil {
		logger = *params.Logger
	}

	switch params.Type {
	case PolicyLongestTaskFirst:
		return NewLongestTaskFirst(logger),
			nil
	}

	return nil,
		fmt.Errorf("%w: %s", ErrUnknownPolicy, params.Type)
}

// Allocate runs the longest task first policy without logging.
func Allocate(events []*Event, tasks []*Task, workStart, workEnd time.Time) (ScheduledTasks, error) {
	return NewLongestTaskFirst(zerolog.Nop()).
		Schedule(
			&ParamsSchedule{
				Events:    events,
				Tasks:     tasks,
				WorkStart: workStart,
				WorkEnd:   workEnd,
			},
		)
}
