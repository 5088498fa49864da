package availability

import (
	"glamping-booking/internal/pkg/errs"
)

type Status string

const (
	StatusAvailable Status = "available"
	StatusBlocked   Status = "blocked"
	StatusRejected  Status = "rejected"
)

// Constraints describe what a date can still take. They are filled for
// every status so that callers can render guidance next to a rejection.
type Constraints struct {
	LockedLocation string   `json:"lockedLocation,omitempty"`
	RemainingUnits int      `json:"remainingUnits"`
	BookingsLeft   int      `json:"bookingsLeft"`
	TakenSlots     []string `json:"takenSlots"`
	FreeSlots      []string `json:"freeSlots"`
	MinimumUnits   int      `json:"minimumUnits,omitempty"`
}

type Result struct {
	Status      Status      `json:"status"`
	Reason      string      `json:"reason,omitempty"`
	Constraints Constraints `json:"constraints"`
}

func (r Result) OK() bool {
	return r.Status == StatusAvailable
}

// Err maps the result onto the error taxonomy; nil when available.
func (r Result) Err() error {
	switch r.Status {
	case StatusBlocked:
		return errs.Mark(errs.New(r.Reason), errs.ErrBlockedDate)
	case StatusRejected:
		return errs.Mark(errs.New(r.Reason), errs.ErrAvailabilityConflict)
	default:
		return nil
	}
}

func available(c Constraints) Result {
	return Result{Status: StatusAvailable, Constraints: c}
}

func blocked(reason string, c Constraints) Result {
	return Result{Status: StatusBlocked, Reason: reason, Constraints: c}
}

func rejected(reason string, c Constraints) Result {
	return Result{Status: StatusRejected, Reason: reason, Constraints: c}
}
