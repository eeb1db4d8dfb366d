package booking

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const MaxCancelReasonLength = 500

// Booking is a student's reservation of one slot. It is created
// CONFIRMED atomically with the slot's OPEN→BOOKED transition and ends
// in exactly one of the terminal states CANCELLED or COMPLETED.
type Booking struct {
	id             uuid.UUID
	studentID      uuid.UUID
	tutorProfileID uuid.UUID
	slotID         uuid.UUID
	status         Status
	cancelledBy    *CancelledBy
	cancelReason   *string
	createdAt      time.Time
	updatedAt      time.Time
}

func NewBooking(studentID, tutorProfileID, slotID uuid.UUID) *Booking {
	return &Booking{
		id:             uuid.New(),
		studentID:      studentID,
		tutorProfileID: tutorProfileID,
		slotID:         slotID,
		status:         StatusConfirmed,
	}
}

func ReconstructBooking(
	id, studentID, tutorProfileID, slotID uuid.UUID,
	status Status,
	cancelledBy *CancelledBy,
	cancelReason *string,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:             id,
		studentID:      studentID,
		tutorProfileID: tutorProfileID,
		slotID:         slotID,
		status:         status,
		cancelledBy:    cancelledBy,
		cancelReason:   cancelReason,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

// Cancel moves the booking to CANCELLED. The second call is a no-op,
// reported through the changed flag so callers can skip the write and
// the slot release. A COMPLETED booking cannot be cancelled.
func (b *Booking) Cancel(by CancelledBy, reason *string) (changed bool, err error) {
	if b.status == StatusCancelled {
		return false, nil
	}
	if b.status == StatusCompleted {
		return false, ErrAlreadyCompleted
	}
	if !by.IsValid() {
		return false, ErrInvalidCancelledBy
	}
	if reason != nil {
		r := strings.TrimSpace(*reason)
		if len(r) > MaxCancelReasonLength {
			return false, ErrReasonTooLong
		}
		if r != "" {
			b.cancelReason = &r
		}
	}
	b.status = StatusCancelled
	b.cancelledBy = &by
	return true, nil
}

// Complete moves the booking to COMPLETED. Idempotent on a booking that
// is already COMPLETED; a CANCELLED booking cannot be completed.
func (b *Booking) Complete() (changed bool, err error) {
	if b.status == StatusCompleted {
		return false, nil
	}
	if b.status == StatusCancelled {
		return false, ErrAlreadyCancelled
	}
	b.status = StatusCompleted
	return true, nil
}

func (b *Booking) IsActive() bool {
	return b.status == StatusConfirmed
}

func (b *Booking) ID() uuid.UUID             { return b.id }
func (b *Booking) StudentID() uuid.UUID      { return b.studentID }
func (b *Booking) TutorProfileID() uuid.UUID { return b.tutorProfileID }
func (b *Booking) SlotID() uuid.UUID         { return b.slotID }
func (b *Booking) Status() Status            { return b.status }
func (b *Booking) CancelledBy() *CancelledBy { return b.cancelledBy }
func (b *Booking) CancelReason() *string     { return b.cancelReason }
func (b *Booking) CreatedAt() time.Time      { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time      { return b.updatedAt }
