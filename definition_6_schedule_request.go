package scheduler

import (
	"time"

	goerrors "github.com/TudorHulban/go-errors"
	"github.com/asaskevich/govalidator"
	"github.com/rs/zerolog"
)

// ScheduleRequest bundles what one scheduling run needs.
// Events and Tasks may be empty but never nil.
type ScheduleRequest struct {
	Events []*Event
	Tasks  []*Task

	WorkHours TimeRange
	Policy    PolicyType
}

type ParamsNewScheduleRequest struct {
	Events []*Event `valid:"-"`
	Tasks  []*Task  `valid:"-"`

	// RFC 3339 instants, as in 2020-07-20T09:00:00Z.
	WorkHoursStart string `valid:"required,rfc3339"`
	WorkHoursEnd   string `valid:"required,rfc3339"`

	// Empty selects longest task first.
	Policy string
}

func NewScheduleRequest(params *ParamsNewScheduleRequest) (*ScheduleRequest, error) {
	if _, errValidation := govalidator.ValidateStruct(params); errValidation != nil {
		return nil,
			goerrors.ErrServiceValidation{
				ServiceName: "ScheduleRequest",
				Caller:      "NewScheduleRequest",
				Issue:       errValidation,
			}
	}

	if params.Events == nil {
		return nil,
			goerrors.ErrValidation{
				Caller: "NewScheduleRequest",
				Issue: goerrors.ErrNilInput{
					InputName: "Events",
				},
			}
	}

	if params.Tasks == nil {
		return nil,
			goerrors.ErrValidation{
				Caller: "NewScheduleRequest",
				Issue: goerrors.ErrNilInput{
					InputName: "Tasks",
				},
			}
	}

	workStart, errStart := time.Parse(time.RFC3339, params.WorkHoursStart)
	if errStart != nil {
		return nil,
			goerrors.ErrInvalidInput{
				Caller:     "NewScheduleRequest",
				InputName:  "WorkHoursStart",
				InputValue: params.WorkHoursStart,
				Issue:      errStart,
			}
	}

	workEnd, errEnd := time.Parse(time.RFC3339, params.WorkHoursEnd)
	if errEnd != nil {
		return nil,
			goerrors.ErrInvalidInput{
				Caller:     "NewScheduleRequest",
				InputName:  "WorkHoursEnd",
				InputValue: params.WorkHoursEnd,
				Issue:      errEnd,
			}
	}

	workHours, errRange := NewTimeRange(workStart, workEnd)
	if errRange != nil {
		return nil,
			goerrors.ErrInvalidInput{
				Caller:     "NewScheduleRequest",
				InputName:  "WorkHoursEnd",
				InputValue: params.WorkHoursEnd,
				Issue:      errRange,
			}
	}

	policy, errPolicy := ParsePolicyType(params.Policy)
	if errPolicy != nil {
		return nil,
			goerrors.ErrInvalidInput{
				Caller:     "NewScheduleRequest",
				InputName:  "Policy",
				InputValue: params.Policy,
				Issue:      errPolicy,
			}
	}

	if errEvents := validateEvents("NewScheduleRequest", params.Events); errEvents != nil {
		return nil,
			errEvents
	}

	if errTasks := validateTasks("NewScheduleRequest", params.Tasks); errTasks != nil {
		return nil,
			errTasks
	}

	return &ScheduleRequest{
			Events:    params.Events,
			Tasks:     params.Tasks,
			WorkHours: workHours,
			Policy:    policy,
		},
		nil
}

// Schedule runs the request's policy. A nil logger disables logging.
func (r *ScheduleRequest) Schedule(logger *zerolog.Logger) (ScheduledTasks, error) {
	policy, errPolicy := NewSchedulingPolicy(
		&ParamsNewSchedulingPolicy{
			Type:   r.Policy,
			Logger: logger,
		},
	)
	if errPolicy != nil {
		return nil,
			errPolicy
	}

	return policy.Schedule(
		&ParamsSchedule{
			Events:    r.Events,
			Tasks:     r.Tasks,
			WorkStart: r.WorkHours.TimeStart,
			WorkEnd:   r.WorkHours.TimeEnd,
		},
	)
}

// FreeTime returns the request's free ranges in chronological order.
func (r *ScheduleRequest) FreeTime() ([]TimeRange, error) {
	return FreeTime(r.Events, r.WorkHours.TimeStart, r.WorkHours.TimeEnd)
}
