package readstore

import (
	"context"

	"tutorhive/internal/domain/booking"
	"tutorhive/internal/domain/slot"
	"tutorhive/internal/infra"
	"tutorhive/internal/infra/db"
	"tutorhive/internal/pkg/pgconv"
	"tutorhive/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// CommandReads serves the write side's validation reads. Constructed
// over a transaction it observes that transaction's snapshot, which is
// what the booking state machine relies on.
type CommandReads struct {
	db db.DBTX
}

func NewCommandReads(db db.DBTX) *CommandReads {
	return &CommandReads{db: db}
}

var _ shared.CommandReads = (*CommandReads)(nil)

func (r *CommandReads) TutorProfileByUserID(ctx context.Context, userID uuid.UUID) (*shared.TutorProfileSnapshot, error) {
	const query = `SELECT id, user_id FROM tutor_profiles WHERE user_id = $1`

	var snap shared.TutorProfileSnapshot
	if err := r.db.QueryRow(ctx, query, userID).Scan(&snap.ID, &snap.UserID); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("tutor profile not found", err)
		}
		return nil, infra.WrapRepoErr("failed to read tutor profile", err)
	}
	return &snap, nil
}

func (r *CommandReads) SlotByID(ctx context.Context, id uuid.UUID) (*shared.SlotSnapshot, error) {
	const query = `
		SELECT id, tutor_profile_id, start_at, end_at, status, created_at, updated_at
		FROM availability_slots
		WHERE id = $1
	`
	return r.scanSlot(r.db.QueryRow(ctx, query, id))
}

func (r *CommandReads) SlotByIDForTutor(ctx context.Context, slotID, tutorProfileID uuid.UUID) (*shared.SlotSnapshot, error) {
	const query = `
		SELECT id, tutor_profile_id, start_at, end_at, status, created_at, updated_at
		FROM availability_slots
		WHERE id = $1 AND tutor_profile_id = $2
	`
	return r.scanSlot(r.db.QueryRow(ctx, query, slotID, tutorProfileID))
}

func (r *CommandReads) scanSlot(row rowScanner) (*shared.SlotSnapshot, error) {
	var snap shared.SlotSnapshot
	var status string
	err := row.Scan(
		&snap.ID, &snap.TutorProfileID, &snap.StartAt, &snap.EndAt,
		&status, &snap.CreatedAt, &snap.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("slot not found", err)
		}
		return nil, infra.WrapRepoErr("failed to read slot", err)
	}
	snap.Status = slot.Status(status)
	return &snap, nil
}

func (r *CommandReads) BookingByIDForStudent(ctx context.Context, bookingID, studentID uuid.UUID) (*shared.BookingSnapshot, error) {
	const query = `
		SELECT id, student_id, tutor_profile_id, slot_id, status,
		       cancelled_by, cancel_reason, created_at, updated_at
		FROM bookings
		WHERE id = $1 AND student_id = $2
	`
	return r.scanBooking(r.db.QueryRow(ctx, query, bookingID, studentID))
}

func (r *CommandReads) BookingByIDForTutor(ctx context.Context, bookingID, tutorProfileID uuid.UUID) (*shared.BookingSnapshot, error) {
	const query = `
		SELECT id, student_id, tutor_profile_id, slot_id, status,
		       cancelled_by, cancel_reason, created_at, updated_at
		FROM bookings
		WHERE id = $1 AND tutor_profile_id = $2
	`
	return r.scanBooking(r.db.QueryRow(ctx, query, bookingID, tutorProfileID))
}

func (r *CommandReads) scanBooking(row rowScanner) (*shared.BookingSnapshot, error) {
	var snap shared.BookingSnapshot
	var status string
	var cancelledBy, cancelReason pgtype.Text

	err := row.Scan(
		&snap.ID, &snap.StudentID, &snap.TutorProfileID, &snap.SlotID, &status,
		&cancelledBy, &cancelReason, &snap.CreatedAt, &snap.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err)
		}
		return nil, infra.WrapRepoErr("failed to read booking", err)
	}

	snap.Status = booking.Status(status)
	if cancelledBy.Valid {
		by := booking.CancelledBy(cancelledBy.String)
		snap.CancelledBy = &by
	}
	snap.CancelReason = pgconv.StringPtrFromPgtype(cancelReason)
	return &snap, nil
}

func (r *CommandReads) ReviewExistsForBooking(ctx context.Context, bookingID uuid.UUID) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM reviews WHERE booking_id = $1)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, bookingID).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check review existence", err)
	}
	return exists, nil
}
