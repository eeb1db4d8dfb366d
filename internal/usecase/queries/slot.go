package queries

import (
	"context"
	"time"

	"tutorhive/internal/domain/slot"
	"tutorhive/internal/infra"
	"tutorhive/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrSlotNotFound = errs.New("availability slot not found")

var slotSortColumns = map[string]string{
	"startAt":   "s.start_at",
	"endAt":     "s.end_at",
	"status":    "s.status",
	"createdAt": "s.created_at",
}

// SlotFilter narrows the slot listing. From/To express the overlap
// predicate: a slot matches [from, to) when startAt < to AND endAt > from.
type SlotFilter struct {
	TutorProfileID *uuid.UUID
	Status         *slot.Status
	Search         string
	From           *time.Time
	To             *time.Time
}

type SlotReadStore interface {
	Search(ctx context.Context, filter SlotFilter, orderBy string, limit, offset int) ([]*SlotView, int64, error)
	FindByID(ctx context.Context, id uuid.UUID) (*SlotView, error)
	FindByIDForTutor(ctx context.Context, slotID, tutorProfileID uuid.UUID) (*SlotView, error)
}

type SlotQueries interface {
	List(ctx context.Context, filter SlotFilter, page PageRequest) ([]*SlotView, PageInfo, error)
	GetByID(ctx context.Context, id uuid.UUID) (*SlotView, error)
}

type slotQueriesImpl struct {
	store SlotReadStore
}

func NewSlotQueries(store SlotReadStore) SlotQueries {
	return &slotQueriesImpl{store: store}
}

func (q *slotQueriesImpl) List(ctx context.Context, filter SlotFilter, page PageRequest) ([]*SlotView, PageInfo, error) {
	orderBy, err := page.OrderClause(slotSortColumns, "createdAt")
	if err != nil {
		return nil, PageInfo{}, err
	}

	rows, total, err := q.store.Search(ctx, filter, orderBy, page.NormalizedLimit(), page.Offset())
	if err != nil {
		return nil, PageInfo{}, err
	}
	return rows, NewPageInfo(page, total), nil
}

func (q *slotQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*SlotView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSlotNotFound
		}
		return nil, err
	}
	return view, nil
}
