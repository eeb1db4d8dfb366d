package repository

import (
	"context"

	"tutorhive/internal/domain/booking"
	"tutorhive/internal/infra"
	"tutorhive/internal/infra/db"
	"tutorhive/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type BookingRepository struct{}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

func (r *BookingRepository) Create(ctx context.Context, tx db.DBTX, b *booking.Booking) (uuid.UUID, error) {
	const query = `
		INSERT INTO bookings (id, student_id, tutor_profile_id, slot_id, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	var id uuid.UUID
	err := tx.QueryRow(ctx, query,
		b.ID(),
		b.StudentID(),
		b.TutorProfileID(),
		b.SlotID(),
		b.Status().String(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err)
	}

	return id, nil
}

func (r *BookingRepository) Update(ctx context.Context, tx db.DBTX, b *booking.Booking) error {
	const query = `
		UPDATE bookings
		SET status = $2, cancelled_by = $3, cancel_reason = $4, updated_at = now()
		WHERE id = $1
	`

	var cancelledBy *string
	if by := b.CancelledBy(); by != nil {
		s := by.String()
		cancelledBy = &s
	}

	tag, err := tx.Exec(ctx, query,
		b.ID(),
		b.Status().String(),
		pgconv.StringPtrToPgtype(cancelledBy),
		pgconv.StringPtrToPgtype(b.CancelReason()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "booking not found")
	}
	return nil
}
