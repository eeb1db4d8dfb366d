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

const reviewSelectColumns = `
	r.id, r.booking_id, r.student_id, u.name, r.tutor_profile_id,
	r.rating, r.comment, r.created_at
`

const reviewFromClause = `
	FROM reviews r
	JOIN users u ON u.id = r.student_id
`

type ReviewReadStore struct {
	db db.DBTX
}

func NewReviewReadStore(db db.DBTX) *ReviewReadStore {
	return &ReviewReadStore{db: db}
}

func (r *ReviewReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReviewView, error) {
	query := "SELECT " + reviewSelectColumns + reviewFromClause + " WHERE r.id = $1"

	view, err := scanReviewView(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("review not found", err)
		}
		return nil, infra.WrapRepoErr("failed to find review by id", err)
	}
	return view, nil
}

func (r *ReviewReadStore) ListByTutor(ctx context.Context, tutorProfileID uuid.UUID, filter queries.ReviewFilter, orderBy string, limit, offset int) ([]*queries.ReviewView, int64, error) {
	conds := []string{"r.tutor_profile_id = $1"}
	args := []any{tutorProfileID}
	if filter.MinRating != nil {
		args = append(args, *filter.MinRating)
		conds = append(conds, fmt.Sprintf("r.rating >= $%d", len(args)))
	}
	where := " WHERE " + strings.Join(conds, " AND ")

	countQuery := "SELECT COUNT(*) FROM reviews r" + where
	var total int64
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to count reviews", err)
	}

	query := fmt.Sprintf(
		"SELECT %s %s %s ORDER BY %s LIMIT $%d OFFSET $%d",
		reviewSelectColumns, reviewFromClause, where, orderBy, len(args)+1, len(args)+2,
	)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to list reviews", err)
	}
	defer rows.Close()

	var result []*queries.ReviewView
	for rows.Next() {
		view, err := scanReviewView(rows)
		if err != nil {
			return nil, 0, infra.WrapRepoErr("failed to scan review row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to iterate review rows", err)
	}

	return result, total, nil
}

// RatingSummary averages to two decimals; a tutor without reviews gets
// a zero average rather than a not-found.
func (r *ReviewReadStore) RatingSummary(ctx context.Context, tutorProfileID uuid.UUID) (*queries.TutorRatingSummary, error) {
	const query = `
		SELECT COALESCE(ROUND(AVG(rating)::numeric, 2), 0), COUNT(*)
		FROM reviews
		WHERE tutor_profile_id = $1
	`

	summary := &queries.TutorRatingSummary{TutorProfileID: tutorProfileID}
	err := r.db.QueryRow(ctx, query, tutorProfileID).Scan(&summary.AverageRating, &summary.TotalReviews)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to summarize tutor ratings", err)
	}
	return summary, nil
}

func scanReviewView(row rowScanner) (*queries.ReviewView, error) {
	var v queries.ReviewView
	var comment pgtype.Text

	err := row.Scan(
		&v.ID, &v.BookingID, &v.StudentID, &v.StudentName, &v.TutorProfileID,
		&v.Rating, &comment, &v.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	v.Comment = pgconv.StringPtrFromPgtype(comment)
	return &v, nil
}
