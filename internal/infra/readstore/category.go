package readstore

import (
	"context"

	"tutorhive/internal/infra"
	"tutorhive/internal/infra/db"
	"tutorhive/internal/usecase/queries"
)

type CategoryReadStore struct {
	db db.DBTX
}

func NewCategoryReadStore(db db.DBTX) *CategoryReadStore {
	return &CategoryReadStore{db: db}
}

func (r *CategoryReadStore) List(ctx context.Context) ([]*queries.CategoryView, error) {
	const query = `
		SELECT id, name, created_at
		FROM categories
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list categories", err)
	}
	defer rows.Close()

	var result []*queries.CategoryView
	for rows.Next() {
		var v queries.CategoryView
		if err := rows.Scan(&v.ID, &v.Name, &v.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan category row", err)
		}
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate category rows", err)
	}

	return result, nil
}
