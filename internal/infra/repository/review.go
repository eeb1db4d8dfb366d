package repository

import (
	"context"

	"tutorhive/internal/domain/review"
	"tutorhive/internal/infra"
	"tutorhive/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReviewRepository struct{}

func NewReviewRepository() *ReviewRepository {
	return &ReviewRepository{}
}

// Create relies on the reviews_booking_id_key unique constraint: a
// concurrent duplicate submission that slips past the existence check
// surfaces here as KindDuplicateKey.
func (r *ReviewRepository) Create(ctx context.Context, tx db.DBTX, rev *review.Review) (uuid.UUID, error) {
	const query = `
		INSERT INTO reviews (id, booking_id, student_id, tutor_profile_id, rating, comment)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	comment := pgtype.Text{}
	if !rev.Comment().IsEmpty() {
		comment = pgtype.Text{String: rev.Comment().String(), Valid: true}
	}

	var id uuid.UUID
	err := tx.QueryRow(ctx, query,
		rev.ID(),
		rev.BookingID(),
		rev.StudentID(),
		rev.TutorProfileID(),
		rev.Rating().Value(),
		comment,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create review", err)
	}

	return id, nil
}
