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

const tutorSelectColumns = `
	tp.id, tp.user_id, u.name, u.email, tp.bio,
	COALESCE(array_agg(c.name ORDER BY c.name) FILTER (WHERE c.name IS NOT NULL), '{}'),
	tp.created_at
`

const tutorFromClause = `
	FROM tutor_profiles tp
	JOIN users u ON u.id = tp.user_id
	LEFT JOIN tutor_profile_categories tpc ON tpc.tutor_profile_id = tp.id
	LEFT JOIN categories c ON c.id = tpc.category_id
`

const tutorGroupClause = ` GROUP BY tp.id, tp.user_id, u.name, u.email, tp.bio, tp.created_at`

type TutorReadStore struct {
	db db.DBTX
}

func NewTutorReadStore(db db.DBTX) *TutorReadStore {
	return &TutorReadStore{db: db}
}

func (r *TutorReadStore) Search(ctx context.Context, filter queries.TutorFilter, orderBy string, limit, offset int) ([]*queries.TutorProfileView, int64, error) {
	var conds []string
	var args []any

	conds = append(conds, "u.is_active")
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		conds = append(conds, fmt.Sprintf("(u.name ILIKE $%d OR tp.bio ILIKE $%d)", len(args), len(args)))
	}
	if filter.CategoryID != nil {
		args = append(args, *filter.CategoryID)
		conds = append(conds, fmt.Sprintf(
			"EXISTS (SELECT 1 FROM tutor_profile_categories f WHERE f.tutor_profile_id = tp.id AND f.category_id = $%d)",
			len(args),
		))
	}
	where := " WHERE " + strings.Join(conds, " AND ")

	countQuery := `
		SELECT COUNT(*)
		FROM tutor_profiles tp
		JOIN users u ON u.id = tp.user_id` + where
	var total int64
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to count tutors", err)
	}

	query := fmt.Sprintf(
		"SELECT %s %s %s %s ORDER BY %s LIMIT $%d OFFSET $%d",
		tutorSelectColumns, tutorFromClause, where, tutorGroupClause, orderBy, len(args)+1, len(args)+2,
	)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to search tutors", err)
	}
	defer rows.Close()

	var result []*queries.TutorProfileView
	for rows.Next() {
		view, err := scanTutorView(rows)
		if err != nil {
			return nil, 0, infra.WrapRepoErr("failed to scan tutor row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to iterate tutor rows", err)
	}

	return result, total, nil
}

func (r *TutorReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.TutorProfileView, error) {
	query := "SELECT " + tutorSelectColumns + tutorFromClause + " WHERE tp.id = $1" + tutorGroupClause

	view, err := scanTutorView(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("tutor profile not found", err)
		}
		return nil, infra.WrapRepoErr("failed to find tutor by id", err)
	}
	return view, nil
}

// ProfileIDByUserID satisfies the tutor profile resolver used by
// booking queries and tutor-scoped commands.
func (r *TutorReadStore) ProfileIDByUserID(ctx context.Context, userID uuid.UUID) (uuid.UUID, error) {
	const query = `SELECT id FROM tutor_profiles WHERE user_id = $1`

	var id uuid.UUID
	if err := r.db.QueryRow(ctx, query, userID).Scan(&id); err != nil {
		if pgconv.IsNoRows(err) {
			return uuid.Nil, infra.WrapRepoErr("tutor profile not found", err)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to resolve tutor profile", err)
	}
	return id, nil
}

func scanTutorView(row rowScanner) (*queries.TutorProfileView, error) {
	var v queries.TutorProfileView
	var bio pgtype.Text

	err := row.Scan(&v.ID, &v.UserID, &v.Name, &v.Email, &bio, &v.Categories, &v.CreatedAt)
	if err != nil {
		return nil, err
	}

	v.Bio = pgconv.StringPtrFromPgtype(bio)
	return &v, nil
}
