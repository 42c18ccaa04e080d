package scheduler

import (
	"errors"
	"fmt"
	"time"

	goerrors "github.com/TudorHulban/go-errors"
	"github.com/asaskevich/govalidator"
)

// Event is a fixed calendar entry, busy time the scheduler works around.
type Event struct {
	Name string

	TimeRange
}

type ParamsNewEvent struct {
	Name string `valid:"required"`

	TimeStart time.Time
	TimeEnd   time.Time
}

func NewEvent(params *ParamsNewEvent) (*Event, error) {
	if _, errValidation := govalidator.ValidateStruct(params); errValidation != nil {
		return nil,
			goerrors.ErrValidation{
				Caller: "NewEvent",
				Issue:  errValidation,
			}
	}

	if params.TimeStart.IsZero() || params.TimeEnd.IsZero() {
		return nil,
			goerrors.ErrValidation{
				Caller: "NewEvent",
				Issue: goerrors.ErrNilInput{
					InputName: ternary(params.TimeStart.IsZero(), "TimeStart", "TimeEnd"),
				},
			}
	}

	timeRange, errRange := NewTimeRange(params.TimeStart, params.TimeEnd)
	if errRange != nil {
		return nil,
			goerrors.ErrInvalidInput{
				Caller:     "NewEvent",
				InputName:  "TimeEnd",
				InputValue: params.TimeEnd,
				Issue:      errRange,
			}
	}

	return &Event{
			Name:      params.Name,
			TimeRange: timeRange,
		},
		nil
}

func (e *Event) String() string {
	return fmt.Sprintf("%q %s", e.Name, e.TimeRange)
}

func validateEvents(caller string, events []*Event) error {
	for ix, event := range events {
		if event == nil {
			return goerrors.ErrInvalidInput{
				Caller:     caller,
				InputName:  "Events",
				InputValue: ix,
				Issue: goerrors.ErrNilInput{
					InputName: "Event",
				},
			}
		}

		if event.TimeEnd.Before(event.TimeStart) {
			return goerrors.ErrInvalidInput{
				Caller:     caller,
				InputName:  "Events",
				InputValue: event.Name,
				Issue: errors.Join(
					ErrInvalidRange,
					fmt.Errorf("event %q ends before it starts", event.Name),
				),
			}
		}
	}

	return nil
}
