package queries

import "context"

type CategoryReadStore interface {
	List(ctx context.Context) ([]*CategoryView, error)
}

type CategoryQueries interface {
	List(ctx context.Context) ([]*CategoryView, error)
}

type categoryQueriesImpl struct {
	store CategoryReadStore
}

func NewCategoryQueries(store CategoryReadStore) CategoryQueries {
	return &categoryQueriesImpl{store: store}
}

func (q *categoryQueriesImpl) List(ctx context.Context) ([]*CategoryView, error) {
	return q.store.List(ctx)
}
