package scheduler

import (
	"errors"
	"fmt"
	"time"

	goerrors "github.com/TudorHulban/go-errors"
)

// Task is a unit of work waiting for a slot.
// Only EstimatedDuration drives allocation, Priority is carried along.
type Task struct {
	Name              string
	Description       string
	EstimatedDuration time.Duration

	Priority *int
}

type ParamsNewTask struct {
	Name              string
	Description       string
	EstimatedDuration time.Duration

	Priority *int
}

func (param *ParamsNewTask) IsValid() error {
	if param.EstimatedDuration == 0 {
		return goerrors.ErrValidation{
			Caller: "IsValid - ParamsNewTask",
			Issue: goerrors.ErrNilInput{
				InputName: "EstimatedDuration",
			},
		}
	}

	if param.EstimatedDuration < 0 {
		return goerrors.ErrValidation{
			Caller: "IsValid - ParamsNewTask",
			Issue: goerrors.ErrNegativeInput{
				InputName: "EstimatedDuration",
			},
		}
	}

	return nil
}

func NewTask(params *ParamsNewTask) (*Task, error) {
	if errValidation := params.IsValid(); errValidation != nil {
		return nil,
			errValidation
	}

	return &Task{
			Name:              params.Name,
			Description:       params.Description,
			EstimatedDuration: params.EstimatedDuration,

			Priority: params.Priority,
		},
		nil
}

func (t *Task) String() string {
	return fmt.Sprintf("%q (%s)", t.Name, t.EstimatedDuration)
}

// compareLongestFirst orders tasks by duration descending, ties broken by name.
func compareLongestFirst(a, b *Task) int {
	if a.EstimatedDuration != b.EstimatedDuration {
		return ternary(a.EstimatedDuration > b.EstimatedDuration, -1, 1)
	}

	switch {
	case a.Name < b.Name:
		return -1
	case a.Name > b.Name:
		return 1
	}

	return 0
}

func validateTasks(caller string, tasks []*Task) error {
	for ix, task := range tasks {
		if task == nil {
			return goerrors.ErrInvalidInput{
				Caller:     caller,
				InputName:  "Tasks",
				InputValue: ix,
				Issue: goerrors.ErrNilInput{
					InputName: "Task",
				},
			}
		}

		if task.EstimatedDuration <= 0 {
			return goerrors.ErrInvalidInput{
				Caller:     caller,
				InputName:  "EstimatedDuration",
				InputValue: task.EstimatedDuration,
				Issue: errors.New(
					"task duration must be positive",
				),
			}
		}
	}

	return nil
}
