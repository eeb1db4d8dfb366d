package commands

import "tutorhive/internal/pkg/errs"

// Sentinel errors grouped by how the boundary layer reports them:
// not-found (404), conflict (409), invalid state / validation (400).
var (
	ErrTutorProfileNotFound = errs.New("tutor profile not found")
	ErrSlotNotFound         = errs.New("availability slot not found")
	ErrBookingNotFound      = errs.New("booking not found")

	ErrSlotUnavailable   = errs.New("slot no longer available")
	ErrDuplicateReview   = errs.New("booking already reviewed")
	ErrDuplicateCategory = errs.New("category already exists")

	ErrSlotBooked              = errs.New("booked slots cannot be modified")
	ErrBookingAlreadyCompleted = errs.New("completed bookings cannot be cancelled")
	ErrBookingAlreadyCancelled = errs.New("cancelled bookings cannot be completed")

	ErrInvalidTimeWindow = errs.New("invalid time window")
	ErrInvalidRating     = errs.New("invalid rating")
	ErrDomainValidation  = errs.New("domain validation error")
)
