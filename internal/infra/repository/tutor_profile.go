package repository

import (
	"context"

	"tutorhive/internal/infra"
	"tutorhive/internal/infra/db"
	"tutorhive/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type TutorProfileRepository struct{}

func NewTutorProfileRepository() *TutorProfileRepository {
	return &TutorProfileRepository{}
}

func (r *TutorProfileRepository) Create(ctx context.Context, tx db.DBTX, userID uuid.UUID, bio *string) (uuid.UUID, error) {
	const query = `
		INSERT INTO tutor_profiles (id, user_id, bio)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	var id uuid.UUID
	err := tx.QueryRow(ctx, query, uuid.New(), userID, pgconv.StringPtrToPgtype(bio)).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create tutor profile", err)
	}

	return id, nil
}
