package repository

import (
	"context"

	"tutorhive/internal/domain/slot"
	"tutorhive/internal/infra"
	"tutorhive/internal/infra/db"

	"github.com/google/uuid"
)

type SlotRepository struct{}

func NewSlotRepository() *SlotRepository {
	return &SlotRepository{}
}

func (r *SlotRepository) Create(ctx context.Context, tx db.DBTX, s *slot.AvailabilitySlot) (uuid.UUID, error) {
	const query = `
		INSERT INTO availability_slots (id, tutor_profile_id, start_at, end_at, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	var id uuid.UUID
	err := tx.QueryRow(ctx, query,
		s.ID(),
		s.TutorProfileID(),
		s.Window().Start(),
		s.Window().End(),
		s.Status().String(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create availability slot", err)
	}

	return id, nil
}

func (r *SlotRepository) Update(ctx context.Context, tx db.DBTX, s *slot.AvailabilitySlot) error {
	const query = `
		UPDATE availability_slots
		SET start_at = $2, end_at = $3, status = $4, updated_at = now()
		WHERE id = $1
	`

	tag, err := tx.Exec(ctx, query, s.ID(), s.Window().Start(), s.Window().End(), s.Status().String())
	if err != nil {
		return infra.WrapRepoErr("failed to update availability slot", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "availability slot not found")
	}
	return nil
}

func (r *SlotRepository) Delete(ctx context.Context, tx db.DBTX, slotID uuid.UUID) error {
	const query = `DELETE FROM availability_slots WHERE id = $1`

	tag, err := tx.Exec(ctx, query, slotID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete availability slot", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "availability slot not found")
	}
	return nil
}

// ConditionalTransition applies the status change only if the row still
// holds the expected status, and reports how many rows were affected.
// Under concurrent attempts exactly one transaction observes 1 here;
// every other one observes 0 and must abort its unit of work.
func (r *SlotRepository) ConditionalTransition(ctx context.Context, tx db.DBTX, slotID uuid.UUID, expected, next slot.Status) (int64, error) {
	const query = `
		UPDATE availability_slots
		SET status = $3, updated_at = now()
		WHERE id = $1 AND status = $2
	`

	tag, err := tx.Exec(ctx, query, slotID, expected.String(), next.String())
	if err != nil {
		return 0, infra.WrapRepoErr("failed to transition slot status", err)
	}
	return tag.RowsAffected(), nil
}

func (r *SlotRepository) SetStatus(ctx context.Context, tx db.DBTX, slotID uuid.UUID, status slot.Status) error {
	const query = `
		UPDATE availability_slots
		SET status = $2, updated_at = now()
		WHERE id = $1
	`

	tag, err := tx.Exec(ctx, query, slotID, status.String())
	if err != nil {
		return infra.WrapRepoErr("failed to set slot status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "availability slot not found")
	}
	return nil
}
