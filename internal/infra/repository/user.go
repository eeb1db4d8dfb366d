package repository

import (
	"context"

	"tutorhive/internal/domain/user"
	"tutorhive/internal/infra"
	"tutorhive/internal/infra/db"

	"github.com/google/uuid"
)

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func (r *UserRepository) Create(ctx context.Context, tx db.DBTX, u *user.User) (uuid.UUID, error) {
	const query = `
		INSERT INTO users (id, name, email, password_hash, role, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	var id uuid.UUID
	err := tx.QueryRow(ctx, query,
		u.ID(),
		u.Name().Value(),
		u.Email().Value(),
		u.PasswordHash(),
		u.Role().String(),
		u.IsActive(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create user", err)
	}

	return id, nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, tx db.DBTX, userID uuid.UUID) error {
	const query = `UPDATE users SET last_login = now(), updated_at = now() WHERE id = $1`

	if _, err := tx.Exec(ctx, query, userID); err != nil {
		return infra.WrapRepoErr("failed to update last login", err)
	}
	return nil
}

func (r *UserRepository) SetActive(ctx context.Context, tx db.DBTX, userID uuid.UUID, isActive bool) (int64, error) {
	const query = `UPDATE users SET is_active = $2, updated_at = now() WHERE id = $1`

	tag, err := tx.Exec(ctx, query, userID, isActive)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to update user status", err)
	}
	return tag.RowsAffected(), nil
}
