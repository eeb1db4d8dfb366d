package repository

import (
	"context"

	"tutorhive/internal/infra"
	"tutorhive/internal/infra/db"

	"github.com/google/uuid"
)

type CategoryRepository struct{}

func NewCategoryRepository() *CategoryRepository {
	return &CategoryRepository{}
}

func (r *CategoryRepository) Create(ctx context.Context, tx db.DBTX, name string) (uuid.UUID, error) {
	const query = `
		INSERT INTO categories (id, name)
		VALUES ($1, $2)
		RETURNING id
	`

	var id uuid.UUID
	if err := tx.QueryRow(ctx, query, uuid.New(), name).Scan(&id); err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create category", err)
	}

	return id, nil
}
