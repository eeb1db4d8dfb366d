package queries

import (
	"context"

	"tutorhive/internal/infra"
	"tutorhive/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrReviewNotFound = errs.New("review not found")

var reviewSortColumns = map[string]string{
	"rating":    "r.rating",
	"createdAt": "r.created_at",
}

type ReviewFilter struct {
	MinRating *int
}

type ReviewReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReviewView, error)
	ListByTutor(ctx context.Context, tutorProfileID uuid.UUID, filter ReviewFilter, orderBy string, limit, offset int) ([]*ReviewView, int64, error)
	RatingSummary(ctx context.Context, tutorProfileID uuid.UUID) (*TutorRatingSummary, error)
}

type ReviewQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReviewView, error)
	ListTutorReviews(ctx context.Context, tutorProfileID uuid.UUID, filter ReviewFilter, page PageRequest) ([]*ReviewView, PageInfo, error)
	GetTutorRatingSummary(ctx context.Context, tutorProfileID uuid.UUID) (*TutorRatingSummary, error)
}

type reviewQueriesImpl struct {
	store ReviewReadStore
}

func NewReviewQueries(store ReviewReadStore) ReviewQueries {
	return &reviewQueriesImpl{store: store}
}

func (q *reviewQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReviewView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *reviewQueriesImpl) ListTutorReviews(ctx context.Context, tutorProfileID uuid.UUID, filter ReviewFilter, page PageRequest) ([]*ReviewView, PageInfo, error) {
	orderBy, err := page.OrderClause(reviewSortColumns, "createdAt")
	if err != nil {
		return nil, PageInfo{}, err
	}

	rows, total, err := q.store.ListByTutor(ctx, tutorProfileID, filter, orderBy, page.NormalizedLimit(), page.Offset())
	if err != nil {
		return nil, PageInfo{}, err
	}
	return rows, NewPageInfo(page, total), nil
}

func (q *reviewQueriesImpl) GetTutorRatingSummary(ctx context.Context, tutorProfileID uuid.UUID) (*TutorRatingSummary, error) {
	return q.store.RatingSummary(ctx, tutorProfileID)
}
