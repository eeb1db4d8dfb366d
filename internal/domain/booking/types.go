package booking

import "errors"

var (
	ErrInvalidStatus      = errors.New("invalid booking status")
	ErrInvalidCancelledBy = errors.New("invalid cancelling party")
	ErrAlreadyCompleted   = errors.New("completed bookings cannot be cancelled")
	ErrAlreadyCancelled   = errors.New("cancelled bookings cannot be completed")
	ErrReasonTooLong      = errors.New("cancel reason exceeds maximum length")
)

type Status string

const (
	StatusConfirmed Status = "CONFIRMED"
	StatusCancelled Status = "CANCELLED"
	StatusCompleted Status = "COMPLETED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition is permitted.
func (s Status) IsTerminal() bool {
	return s == StatusCancelled || s == StatusCompleted
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

type CancelledBy string

const (
	CancelledByStudent CancelledBy = "STUDENT"
	CancelledByTutor   CancelledBy = "TUTOR"
)

func (c CancelledBy) String() string {
	return string(c)
}

func (c CancelledBy) IsValid() bool {
	switch c {
	case CancelledByStudent, CancelledByTutor:
		return true
	default:
		return false
	}
}
