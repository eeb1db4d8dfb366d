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
)

const slotSelectColumns = `
	s.id, s.tutor_profile_id, u.name, u.email,
	s.start_at, s.end_at, s.status, s.created_at, s.updated_at
`

const slotFromClause = `
	FROM availability_slots s
	JOIN tutor_profiles tp ON tp.id = s.tutor_profile_id
	JOIN users u ON u.id = tp.user_id
`

type SlotReadStore struct {
	db db.DBTX
}

func NewSlotReadStore(db db.DBTX) *SlotReadStore {
	return &SlotReadStore{db: db}
}

// Search filters by owner, status, tutor name/email substring, and time
// overlap. The overlap predicate treats [from, to) as a half-open range
// matching the slot window convention.
func (r *SlotReadStore) Search(ctx context.Context, filter queries.SlotFilter, orderBy string, limit, offset int) ([]*queries.SlotView, int64, error) {
	where, args := buildSlotWhere(filter)

	countQuery := "SELECT COUNT(*)" + slotFromClause + where
	var total int64
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to count slots", err)
	}

	query := fmt.Sprintf(
		"SELECT %s %s %s ORDER BY %s LIMIT $%d OFFSET $%d",
		slotSelectColumns, slotFromClause, where, orderBy, len(args)+1, len(args)+2,
	)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to search slots", err)
	}
	defer rows.Close()

	var result []*queries.SlotView
	for rows.Next() {
		view, err := scanSlotView(rows)
		if err != nil {
			return nil, 0, infra.WrapRepoErr("failed to scan slot row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to iterate slot rows", err)
	}

	return result, total, nil
}

func (r *SlotReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.SlotView, error) {
	query := "SELECT " + slotSelectColumns + slotFromClause + " WHERE s.id = $1"

	view, err := scanSlotView(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("slot not found", err)
		}
		return nil, infra.WrapRepoErr("failed to find slot by id", err)
	}
	return view, nil
}

func (r *SlotReadStore) FindByIDForTutor(ctx context.Context, slotID, tutorProfileID uuid.UUID) (*queries.SlotView, error) {
	query := "SELECT " + slotSelectColumns + slotFromClause + " WHERE s.id = $1 AND s.tutor_profile_id = $2"

	view, err := scanSlotView(r.db.QueryRow(ctx, query, slotID, tutorProfileID))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("slot not found", err)
		}
		return nil, infra.WrapRepoErr("failed to find slot for tutor", err)
	}
	return view, nil
}

func buildSlotWhere(filter queries.SlotFilter) (string, []any) {
	var conds []string
	var args []any

	if filter.TutorProfileID != nil {
		args = append(args, *filter.TutorProfileID)
		conds = append(conds, fmt.Sprintf("s.tutor_profile_id = $%d", len(args)))
	}
	if filter.Status != nil {
		args = append(args, filter.Status.String())
		conds = append(conds, fmt.Sprintf("s.status = $%d", len(args)))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		conds = append(conds, fmt.Sprintf("(u.name ILIKE $%d OR u.email ILIKE $%d)", len(args), len(args)))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		conds = append(conds, fmt.Sprintf("s.start_at < $%d", len(args)))
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		conds = append(conds, fmt.Sprintf("s.end_at > $%d", len(args)))
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSlotView(row rowScanner) (*queries.SlotView, error) {
	var v queries.SlotView
	err := row.Scan(
		&v.ID, &v.TutorProfileID, &v.TutorName, &v.TutorEmail,
		&v.StartAt, &v.EndAt, &v.Status, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
