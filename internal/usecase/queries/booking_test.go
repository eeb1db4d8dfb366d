//go:build unit

package queries_test

import (
	"context"
	"testing"

	"tutorhive/internal/infra"
	"tutorhive/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBookingStore struct {
	views map[uuid.UUID]*queries.BookingView // booking id -> view
}

func (s *fakeBookingStore) ListByStudent(ctx context.Context, studentID uuid.UUID, filter queries.BookingFilter, orderBy string, limit, offset int) ([]*queries.BookingView, int64, error) {
	var out []*queries.BookingView
	for _, v := range s.views {
		if v.StudentID == studentID {
			out = append(out, v)
		}
	}
	return out, int64(len(out)), nil
}

func (s *fakeBookingStore) ListByTutor(ctx context.Context, tutorProfileID uuid.UUID, filter queries.BookingFilter, orderBy string, limit, offset int) ([]*queries.BookingView, int64, error) {
	var out []*queries.BookingView
	for _, v := range s.views {
		if v.TutorProfileID == tutorProfileID {
			out = append(out, v)
		}
	}
	return out, int64(len(out)), nil
}

func (s *fakeBookingStore) FindByIDForStudent(ctx context.Context, bookingID, studentID uuid.UUID) (*queries.BookingView, error) {
	v, ok := s.views[bookingID]
	if !ok || v.StudentID != studentID {
		return nil, infra.NewRepoErr(infra.KindNotFound, "booking not found")
	}
	return v, nil
}

func (s *fakeBookingStore) FindByIDForTutor(ctx context.Context, bookingID, tutorProfileID uuid.UUID) (*queries.BookingView, error) {
	v, ok := s.views[bookingID]
	if !ok || v.TutorProfileID != tutorProfileID {
		return nil, infra.NewRepoErr(infra.KindNotFound, "booking not found")
	}
	return v, nil
}

type fakeProfileResolver struct {
	profiles map[uuid.UUID]uuid.UUID // user id -> tutor profile id
}

func (r *fakeProfileResolver) ProfileIDByUserID(ctx context.Context, userID uuid.UUID) (uuid.UUID, error) {
	id, ok := r.profiles[userID]
	if !ok {
		return uuid.Nil, infra.NewRepoErr(infra.KindNotFound, "tutor profile not found")
	}
	return id, nil
}

func TestBookingQueriesGetTutorBooking(t *testing.T) {
	ownerUserID := uuid.New()
	ownerProfileID := uuid.New()
	otherUserID := uuid.New()
	otherProfileID := uuid.New()

	view := &queries.BookingView{
		ID:             uuid.New(),
		StudentID:      uuid.New(),
		TutorProfileID: ownerProfileID,
		Status:         "CONFIRMED",
	}

	store := &fakeBookingStore{views: map[uuid.UUID]*queries.BookingView{view.ID: view}}
	resolver := &fakeProfileResolver{profiles: map[uuid.UUID]uuid.UUID{
		ownerUserID: ownerProfileID,
		otherUserID: otherProfileID,
	}}
	q := queries.NewBookingQueries(store, resolver)

	t.Run("owning tutor reads the booking", func(t *testing.T) {
		got, err := q.GetTutorBooking(context.Background(), view.ID, ownerUserID)
		require.NoError(t, err)
		assert.Equal(t, view.ID, got.ID)
	})

	t.Run("another tutor cannot see the booking", func(t *testing.T) {
		got, err := q.GetTutorBooking(context.Background(), view.ID, otherUserID)
		assert.Nil(t, got)
		assert.ErrorIs(t, err, queries.ErrBookingNotFound)
	})

	t.Run("caller without a tutor profile", func(t *testing.T) {
		got, err := q.GetTutorBooking(context.Background(), view.ID, uuid.New())
		assert.Nil(t, got)
		assert.ErrorIs(t, err, queries.ErrTutorProfileNotFound)
	})
}

func TestBookingQueriesGetMyBooking(t *testing.T) {
	studentID := uuid.New()
	view := &queries.BookingView{
		ID:             uuid.New(),
		StudentID:      studentID,
		TutorProfileID: uuid.New(),
		Status:         "CONFIRMED",
	}

	store := &fakeBookingStore{views: map[uuid.UUID]*queries.BookingView{view.ID: view}}
	q := queries.NewBookingQueries(store, &fakeProfileResolver{})

	t.Run("owning student reads the booking", func(t *testing.T) {
		got, err := q.GetMyBooking(context.Background(), view.ID, studentID)
		require.NoError(t, err)
		assert.Equal(t, view.ID, got.ID)
	})

	t.Run("another student cannot see the booking", func(t *testing.T) {
		got, err := q.GetMyBooking(context.Background(), view.ID, uuid.New())
		assert.Nil(t, got)
		assert.ErrorIs(t, err, queries.ErrBookingNotFound)
	})
}
