package commands

import (
	"context"
	"errors"

	dombooking "tutorhive/internal/domain/booking"
	domslot "tutorhive/internal/domain/slot"
	"tutorhive/internal/infra"
	"tutorhive/internal/pkg/errs"
	"tutorhive/internal/usecase/shared"

	"github.com/google/uuid"
)

type CancelBookingRequest struct {
	Reason *string
}

type BookingResult struct {
	BookingID uuid.UUID
}

// BookingCommands drives the booking state machine. Every operation
// runs inside exactly one unit of work; a failure anywhere rolls back
// every write of that operation.
type BookingCommands interface {
	Create(ctx context.Context, slotID uuid.UUID, studentID uuid.UUID) (*BookingResult, error)
	Cancel(ctx context.Context, bookingID uuid.UUID, req CancelBookingRequest, studentID uuid.UUID) (*BookingResult, error)
	Complete(ctx context.Context, bookingID uuid.UUID, tutorUserID uuid.UUID) (*BookingResult, error)
}

type bookingCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewBookingCommands(uow shared.UnitOfWork) BookingCommands {
	return &bookingCommandsImpl{uow: uow}
}

// Create reserves an OPEN slot for the student. The read establishes
// intent; the conditional OPEN→BOOKED transition decides the race. A
// zero affected-row count means another transaction won since the read,
// so the whole unit of work aborts and no booking row is left behind.
func (c *bookingCommandsImpl) Create(ctx context.Context, slotID uuid.UUID, studentID uuid.UUID) (*BookingResult, error) {
	var createdID uuid.UUID
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().SlotByID(ctx, slotID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrSlotNotFound
			}
			return derr
		}

		if snap.Status != domslot.StatusOpen {
			return ErrSlotUnavailable
		}

		affected, derr := tx.Slots().ConditionalTransition(ctx, tx.DB(), slotID, domslot.StatusOpen, domslot.StatusBooked)
		if derr != nil {
			return derr
		}
		if affected == 0 {
			return ErrSlotUnavailable
		}

		id, derr := tx.Bookings().Create(ctx, tx.DB(), dombooking.NewBooking(studentID, snap.TutorProfileID, slotID))
		if derr != nil {
			return derr
		}
		createdID = id
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &BookingResult{BookingID: createdID}, nil
}

// Cancel is idempotent: a second call on a CANCELLED booking returns it
// unchanged and does not touch the slot again. The slot release is
// unconditional because only this booking could have set it BOOKED.
func (c *bookingCommandsImpl) Cancel(ctx context.Context, bookingID uuid.UUID, req CancelBookingRequest, studentID uuid.UUID) (*BookingResult, error) {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().BookingByIDForStudent(ctx, bookingID, studentID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return derr
		}

		entity := snap.ToDomain()
		changed, derr := entity.Cancel(dombooking.CancelledByStudent, req.Reason)
		if derr != nil {
			if errors.Is(derr, dombooking.ErrAlreadyCompleted) {
				return ErrBookingAlreadyCompleted
			}
			return errs.Mark(derr, ErrDomainValidation)
		}
		if !changed {
			return nil
		}

		if derr := tx.Bookings().Update(ctx, tx.DB(), entity); derr != nil {
			return derr
		}
		return tx.Slots().SetStatus(ctx, tx.DB(), entity.SlotID(), domslot.StatusOpen)
	})
	if err != nil {
		return nil, err
	}
	return &BookingResult{BookingID: bookingID}, nil
}

// Complete marks a CONFIRMED booking COMPLETED. The slot stays BOOKED;
// completed slots are not recycled. Idempotent on a COMPLETED booking.
func (c *bookingCommandsImpl) Complete(ctx context.Context, bookingID uuid.UUID, tutorUserID uuid.UUID) (*BookingResult, error) {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		profile, derr := tx.Reads().TutorProfileByUserID(ctx, tutorUserID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrTutorProfileNotFound
			}
			return derr
		}

		snap, derr := tx.Reads().BookingByIDForTutor(ctx, bookingID, profile.ID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return derr
		}

		entity := snap.ToDomain()
		changed, derr := entity.Complete()
		if derr != nil {
			return ErrBookingAlreadyCancelled
		}
		if !changed {
			return nil
		}

		return tx.Bookings().Update(ctx, tx.DB(), entity)
	})
	if err != nil {
		return nil, err
	}
	return &BookingResult{BookingID: bookingID}, nil
}
