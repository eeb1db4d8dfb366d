package queries

import (
	"context"

	"tutorhive/internal/infra"

	"github.com/google/uuid"
)

var tutorSortColumns = map[string]string{
	"name":      "u.name",
	"createdAt": "tp.created_at",
}

type TutorFilter struct {
	Search     string
	CategoryID *uuid.UUID
}

type TutorReadStore interface {
	Search(ctx context.Context, filter TutorFilter, orderBy string, limit, offset int) ([]*TutorProfileView, int64, error)
	FindByID(ctx context.Context, id uuid.UUID) (*TutorProfileView, error)
}

type TutorQueries interface {
	List(ctx context.Context, filter TutorFilter, page PageRequest) ([]*TutorProfileView, PageInfo, error)
	GetByID(ctx context.Context, id uuid.UUID) (*TutorProfileView, error)
}

type tutorQueriesImpl struct {
	store TutorReadStore
}

func NewTutorQueries(store TutorReadStore) TutorQueries {
	return &tutorQueriesImpl{store: store}
}

func (q *tutorQueriesImpl) List(ctx context.Context, filter TutorFilter, page PageRequest) ([]*TutorProfileView, PageInfo, error) {
	orderBy, err := page.OrderClause(tutorSortColumns, "createdAt")
	if err != nil {
		return nil, PageInfo{}, err
	}

	rows, total, err := q.store.Search(ctx, filter, orderBy, page.NormalizedLimit(), page.Offset())
	if err != nil {
		return nil, PageInfo{}, err
	}
	return rows, NewPageInfo(page, total), nil
}

func (q *tutorQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*TutorProfileView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrTutorProfileNotFound
		}
		return nil, err
	}
	return view, nil
}
