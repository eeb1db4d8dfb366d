package queries

import (
	"context"

	"tutorhive/internal/domain/booking"
	"tutorhive/internal/infra"
	"tutorhive/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound      = errs.New("booking not found")
	ErrTutorProfileNotFound = errs.New("tutor profile not found")
)

var bookingSortColumns = map[string]string{
	"status":    "b.status",
	"createdAt": "b.created_at",
	"updatedAt": "b.updated_at",
}

type BookingFilter struct {
	Status *booking.Status
}

type BookingReadStore interface {
	ListByStudent(ctx context.Context, studentID uuid.UUID, filter BookingFilter, orderBy string, limit, offset int) ([]*BookingView, int64, error)
	ListByTutor(ctx context.Context, tutorProfileID uuid.UUID, filter BookingFilter, orderBy string, limit, offset int) ([]*BookingView, int64, error)
	FindByIDForStudent(ctx context.Context, bookingID, studentID uuid.UUID) (*BookingView, error)
	FindByIDForTutor(ctx context.Context, bookingID, tutorProfileID uuid.UUID) (*BookingView, error)
}

// TutorProfileResolver resolves the tutor profile owned by a user id.
type TutorProfileResolver interface {
	ProfileIDByUserID(ctx context.Context, userID uuid.UUID) (uuid.UUID, error)
}

type BookingQueries interface {
	ListMyBookings(ctx context.Context, studentID uuid.UUID, filter BookingFilter, page PageRequest) ([]*BookingView, PageInfo, error)
	ListTutorBookings(ctx context.Context, tutorUserID uuid.UUID, filter BookingFilter, page PageRequest) ([]*BookingView, PageInfo, error)
	GetMyBooking(ctx context.Context, bookingID, studentID uuid.UUID) (*BookingView, error)
	// GetTutorBooking resolves the caller's tutor profile before reading,
	// so a tutor can only ever see bookings against their own slots.
	GetTutorBooking(ctx context.Context, bookingID, tutorUserID uuid.UUID) (*BookingView, error)
}

type bookingQueriesImpl struct {
	store    BookingReadStore
	resolver TutorProfileResolver
}

func NewBookingQueries(store BookingReadStore, resolver TutorProfileResolver) BookingQueries {
	return &bookingQueriesImpl{store: store, resolver: resolver}
}

func (q *bookingQueriesImpl) ListMyBookings(ctx context.Context, studentID uuid.UUID, filter BookingFilter, page PageRequest) ([]*BookingView, PageInfo, error) {
	orderBy, err := page.OrderClause(bookingSortColumns, "createdAt")
	if err != nil {
		return nil, PageInfo{}, err
	}

	rows, total, err := q.store.ListByStudent(ctx, studentID, filter, orderBy, page.NormalizedLimit(), page.Offset())
	if err != nil {
		return nil, PageInfo{}, err
	}
	return rows, NewPageInfo(page, total), nil
}

func (q *bookingQueriesImpl) ListTutorBookings(ctx context.Context, tutorUserID uuid.UUID, filter BookingFilter, page PageRequest) ([]*BookingView, PageInfo, error) {
	profileID, err := q.resolver.ProfileIDByUserID(ctx, tutorUserID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, PageInfo{}, ErrTutorProfileNotFound
		}
		return nil, PageInfo{}, err
	}

	orderBy, err := page.OrderClause(bookingSortColumns, "createdAt")
	if err != nil {
		return nil, PageInfo{}, err
	}

	rows, total, err := q.store.ListByTutor(ctx, profileID, filter, orderBy, page.NormalizedLimit(), page.Offset())
	if err != nil {
		return nil, PageInfo{}, err
	}
	return rows, NewPageInfo(page, total), nil
}

func (q *bookingQueriesImpl) GetMyBooking(ctx context.Context, bookingID, studentID uuid.UUID) (*BookingView, error) {
	view, err := q.store.FindByIDForStudent(ctx, bookingID, studentID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *bookingQueriesImpl) GetTutorBooking(ctx context.Context, bookingID, tutorUserID uuid.UUID) (*BookingView, error) {
	profileID, err := q.resolver.ProfileIDByUserID(ctx, tutorUserID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrTutorProfileNotFound
		}
		return nil, err
	}

	view, err := q.store.FindByIDForTutor(ctx, bookingID, profileID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return view, nil
}
