package commands

import (
	"context"
	"time"

	domslot "tutorhive/internal/domain/slot"
	"tutorhive/internal/infra"
	"tutorhive/internal/pkg/errs"
	"tutorhive/internal/pkg/patch"
	"tutorhive/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateSlotRequest struct {
	StartAt time.Time
	EndAt   time.Time
}

// UpdateSlotRequest is a partial patch; nil fields keep current values.
type UpdateSlotRequest struct {
	StartAt *time.Time
	EndAt   *time.Time
	Status  *string
}

type CreateSlotResult struct {
	SlotID uuid.UUID
}

type SlotCommands interface {
	Create(ctx context.Context, req CreateSlotRequest, tutorUserID uuid.UUID) (*CreateSlotResult, error)
	Update(ctx context.Context, slotID uuid.UUID, req UpdateSlotRequest, tutorUserID uuid.UUID) error
	Delete(ctx context.Context, slotID uuid.UUID, tutorUserID uuid.UUID) error
}

type slotCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewSlotCommands(uow shared.UnitOfWork) SlotCommands {
	return &slotCommandsImpl{uow: uow}
}

func (c *slotCommandsImpl) Create(ctx context.Context, req CreateSlotRequest, tutorUserID uuid.UUID) (*CreateSlotResult, error) {
	window, err := domslot.NewTimeWindow(req.StartAt, req.EndAt)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidTimeWindow)
	}

	var createdID uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		profile, derr := tx.Reads().TutorProfileByUserID(ctx, tutorUserID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrTutorProfileNotFound
			}
			return derr
		}

		id, derr := tx.Slots().Create(ctx, tx.DB(), domslot.NewAvailabilitySlot(profile.ID, window))
		if derr != nil {
			return derr
		}
		createdID = id
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &CreateSlotResult{SlotID: createdID}, nil
}

func (c *slotCommandsImpl) Update(ctx context.Context, slotID uuid.UUID, req UpdateSlotRequest, tutorUserID uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		profile, err := tx.Reads().TutorProfileByUserID(ctx, tutorUserID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrTutorProfileNotFound
			}
			return err
		}

		// Ownership is folded into the lookup: a foreign slot is
		// indistinguishable from a missing one.
		snap, err := tx.Reads().SlotByIDForTutor(ctx, slotID, profile.ID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrSlotNotFound
			}
			return err
		}

		if snap.Status == domslot.StatusBooked {
			return ErrSlotBooked
		}

		window, err := domslot.NewTimeWindow(
			patch.Coalesce(req.StartAt, snap.StartAt),
			patch.Coalesce(req.EndAt, snap.EndAt),
		)
		if err != nil {
			return errs.Mark(err, ErrInvalidTimeWindow)
		}

		status := snap.Status
		if req.Status != nil {
			status, err = domslot.NewStatus(*req.Status)
			if err != nil {
				return errs.Mark(err, ErrDomainValidation)
			}
		}

		entity := domslot.ReconstructAvailabilitySlot(snap.ID, snap.TutorProfileID, window, snap.Status, snap.CreatedAt, snap.UpdatedAt)
		if err := entity.Reschedule(window, status); err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}

		return tx.Slots().Update(ctx, tx.DB(), entity)
	})
}

func (c *slotCommandsImpl) Delete(ctx context.Context, slotID uuid.UUID, tutorUserID uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		profile, err := tx.Reads().TutorProfileByUserID(ctx, tutorUserID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrTutorProfileNotFound
			}
			return err
		}

		snap, err := tx.Reads().SlotByIDForTutor(ctx, slotID, profile.ID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrSlotNotFound
			}
			return err
		}

		if snap.Status == domslot.StatusBooked {
			return ErrSlotBooked
		}

		return tx.Slots().Delete(ctx, tx.DB(), slotID)
	})
}
