package queries

import (
	"context"

	"tutorhive/internal/domain/user"
	"tutorhive/internal/infra"
	"tutorhive/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrUserNotFound = errs.New("user not found")

var userSortColumns = map[string]string{
	"name":      "u.name",
	"email":     "u.email",
	"createdAt": "u.created_at",
	"updatedAt": "u.updated_at",
}

// UserFilter narrows the admin user listing. Search matches name or
// email case-insensitively.
type UserFilter struct {
	Search   string
	Role     *user.Role
	IsActive *bool
}

type UserReadStore interface {
	// FindByEmail also returns the password hash for credential checks.
	FindByEmail(ctx context.Context, email string) (*AuthorizedUserView, string, error)
	FindByID(ctx context.Context, id uuid.UUID) (*AuthorizedUserView, error)
	List(ctx context.Context, filter UserFilter, orderBy string, limit, offset int) ([]*UserView, int64, error)
}

type UserQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*AuthorizedUserView, error)
	List(ctx context.Context, filter UserFilter, page PageRequest) ([]*UserView, PageInfo, error)
}

type userQueriesImpl struct {
	store UserReadStore
}

func NewUserQueries(store UserReadStore) UserQueries {
	return &userQueriesImpl{store: store}
}

func (q *userQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*AuthorizedUserView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *userQueriesImpl) List(ctx context.Context, filter UserFilter, page PageRequest) ([]*UserView, PageInfo, error) {
	orderBy, err := page.OrderClause(userSortColumns, "createdAt")
	if err != nil {
		return nil, PageInfo{}, err
	}

	rows, total, err := q.store.List(ctx, filter, orderBy, page.NormalizedLimit(), page.Offset())
	if err != nil {
		return nil, PageInfo{}, err
	}
	return rows, NewPageInfo(page, total), nil
}
