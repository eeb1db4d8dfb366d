package readstore

import (
	"context"
	"fmt"
	"strings"

	"tutorhive/internal/infra"
	"tutorhive/internal/infra/db"
	"tutorhive/internal/pkg/pgconv"
	"tutorhive/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const bookingSelectColumns = `
	b.id, b.student_id, su.name, b.tutor_profile_id, tu.name,
	b.slot_id, s.start_at, s.end_at,
	b.status, b.cancelled_by, b.cancel_reason, r.id,
	b.created_at, b.updated_at
`

const bookingFromClause = `
	FROM bookings b
	JOIN users su ON su.id = b.student_id
	JOIN tutor_profiles tp ON tp.id = b.tutor_profile_id
	JOIN users tu ON tu.id = tp.user_id
	JOIN availability_slots s ON s.id = b.slot_id
	LEFT JOIN reviews r ON r.booking_id = b.id
`

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(db db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: db}
}

func (r *BookingReadStore) ListByStudent(ctx context.Context, studentID uuid.UUID, filter queries.BookingFilter, orderBy string, limit, offset int) ([]*queries.BookingView, int64, error) {
	return r.list(ctx, "b.student_id", studentID, filter, orderBy, limit, offset)
}

func (r *BookingReadStore) ListByTutor(ctx context.Context, tutorProfileID uuid.UUID, filter queries.BookingFilter, orderBy string, limit, offset int) ([]*queries.BookingView, int64, error) {
	return r.list(ctx, "b.tutor_profile_id", tutorProfileID, filter, orderBy, limit, offset)
}

func (r *BookingReadStore) list(ctx context.Context, scopeColumn string, scopeID uuid.UUID, filter queries.BookingFilter, orderBy string, limit, offset int) ([]*queries.BookingView, int64, error) {
	conds := []string{scopeColumn + " = $1"}
	args := []any{scopeID}
	if filter.Status != nil {
		args = append(args, filter.Status.String())
		conds = append(conds, fmt.Sprintf("b.status = $%d", len(args)))
	}
	where := " WHERE " + strings.Join(conds, " AND ")

	countQuery := "SELECT COUNT(*) FROM bookings b" + where
	var total int64
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to count bookings", err)
	}

	query := fmt.Sprintf(
		"SELECT %s %s %s ORDER BY %s LIMIT $%d OFFSET $%d",
		bookingSelectColumns, bookingFromClause, where, orderBy, len(args)+1, len(args)+2,
	)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	var result []*queries.BookingView
	for rows.Next() {
		view, err := scanBookingView(rows)
		if err != nil {
			return nil, 0, infra.WrapRepoErr("failed to scan booking row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to iterate booking rows", err)
	}

	return result, total, nil
}

func (r *BookingReadStore) FindByIDForStudent(ctx context.Context, bookingID, studentID uuid.UUID) (*queries.BookingView, error) {
	query := "SELECT " + bookingSelectColumns + bookingFromClause + " WHERE b.id = $1 AND b.student_id = $2"

	view, err := scanBookingView(r.db.QueryRow(ctx, query, bookingID, studentID))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err)
		}
		return nil, infra.WrapRepoErr("failed to find booking for student", err)
	}
	return view, nil
}

func (r *BookingReadStore) FindByIDForTutor(ctx context.Context, bookingID, tutorProfileID uuid.UUID) (*queries.BookingView, error) {
	query := "SELECT " + bookingSelectColumns + bookingFromClause + " WHERE b.id = $1 AND b.tutor_profile_id = $2"

	view, err := scanBookingView(r.db.QueryRow(ctx, query, bookingID, tutorProfileID))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err)
		}
		return nil, infra.WrapRepoErr("failed to find booking for tutor", err)
	}
	return view, nil
}

func scanBookingView(row rowScanner) (*queries.BookingView, error) {
	var v queries.BookingView
	var cancelledBy, cancelReason pgtype.Text
	var reviewID pgtype.UUID

	err := row.Scan(
		&v.ID, &v.StudentID, &v.StudentName, &v.TutorProfileID, &v.TutorName,
		&v.SlotID, &v.SlotStartAt, &v.SlotEndAt,
		&v.Status, &cancelledBy, &cancelReason, &reviewID,
		&v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	v.CancelledBy = pgconv.StringPtrFromPgtype(cancelledBy)
	v.CancelReason = pgconv.StringPtrFromPgtype(cancelReason)
	v.ReviewID = pgconv.UUIDPtrFromPgtype(reviewID)
	return &v, nil
}
