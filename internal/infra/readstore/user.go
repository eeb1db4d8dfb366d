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

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(db db.DBTX) *UserReadStore {
	return &UserReadStore{db: db}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	const query = `
		SELECT id, name, email, role, is_active
		FROM users
		WHERE id = $1
	`

	var v queries.AuthorizedUserView
	err := r.db.QueryRow(ctx, query, id).Scan(&v.ID, &v.Name, &v.Email, &v.Role, &v.IsActive)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err)
		}
		return nil, infra.WrapRepoErr("failed to find user by id", err)
	}
	return &v, nil
}

func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	const query = `
		SELECT id, name, email, role, is_active, password_hash
		FROM users
		WHERE email = $1
	`

	var v queries.AuthorizedUserView
	var hash string
	err := r.db.QueryRow(ctx, query, email).Scan(&v.ID, &v.Name, &v.Email, &v.Role, &v.IsActive, &hash)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}
	return &v, hash, nil
}

func (r *UserReadStore) List(ctx context.Context, filter queries.UserFilter, orderBy string, limit, offset int) ([]*queries.UserView, int64, error) {
	where, args := buildUserWhere(filter)

	countQuery := "SELECT COUNT(*) FROM users u" + where
	var total int64
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to count users", err)
	}

	query := fmt.Sprintf(
		"SELECT u.id, u.name, u.email, u.role, u.is_active, u.last_login, u.created_at, u.updated_at FROM users u %s ORDER BY %s LIMIT $%d OFFSET $%d",
		where, orderBy, len(args)+1, len(args)+2,
	)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to list users", err)
	}
	defer rows.Close()

	var result []*queries.UserView
	for rows.Next() {
		var v queries.UserView
		var lastLogin pgtype.Timestamptz
		if err := rows.Scan(&v.ID, &v.Name, &v.Email, &v.Role, &v.IsActive, &lastLogin, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, 0, infra.WrapRepoErr("failed to scan user row", err)
		}
		v.LastLogin = pgconv.TimePtrFromPgtype(lastLogin)
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to iterate user rows", err)
	}

	return result, total, nil
}

func buildUserWhere(filter queries.UserFilter) (string, []any) {
	var conds []string
	var args []any

	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		conds = append(conds, fmt.Sprintf("(u.name ILIKE $%d OR u.email ILIKE $%d)", len(args), len(args)))
	}
	if filter.Role != nil {
		args = append(args, filter.Role.String())
		conds = append(conds, fmt.Sprintf("u.role = $%d", len(args)))
	}
	if filter.IsActive != nil {
		args = append(args, *filter.IsActive)
		conds = append(conds, fmt.Sprintf("u.is_active = $%d", len(args)))
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}
