//go:build unit

package booking_test

import (
	"strings"
	"testing"

	"tutorhive/internal/domain/booking"
	"tutorhive/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBooking(t *testing.T) {
	studentID := uuid.New()
	tutorProfileID := uuid.New()
	slotID := uuid.New()

	b := booking.NewBooking(studentID, tutorProfileID, slotID)
	require.NotNil(t, b)

	assert.NotEqual(t, uuid.Nil, b.ID())
	assert.Equal(t, studentID, b.StudentID())
	assert.Equal(t, tutorProfileID, b.TutorProfileID())
	assert.Equal(t, slotID, b.SlotID())
	assert.Equal(t, booking.StatusConfirmed, b.Status())
	assert.True(t, b.IsActive())
	assert.Nil(t, b.CancelledBy())
	assert.Nil(t, b.CancelReason())
}

func TestBookingCancel(t *testing.T) {
	t.Run("confirmed booking cancels with reason", func(t *testing.T) {
		b := builder.NewBookingBuilder().BuildDomain()
		reason := "schedule conflict"

		changed, err := b.Cancel(booking.CancelledByStudent, &reason)
		require.NoError(t, err)

		assert.True(t, changed)
		assert.Equal(t, booking.StatusCancelled, b.Status())
		require.NotNil(t, b.CancelledBy())
		assert.Equal(t, booking.CancelledByStudent, *b.CancelledBy())
		require.NotNil(t, b.CancelReason())
		assert.Equal(t, "schedule conflict", *b.CancelReason())
	})

	t.Run("reason is trimmed", func(t *testing.T) {
		b := builder.NewBookingBuilder().BuildDomain()
		reason := "  too late  "

		_, err := b.Cancel(booking.CancelledByTutor, &reason)
		require.NoError(t, err)

		require.NotNil(t, b.CancelReason())
		assert.Equal(t, "too late", *b.CancelReason())
	})

	t.Run("whitespace-only reason is dropped", func(t *testing.T) {
		b := builder.NewBookingBuilder().BuildDomain()
		reason := "   "

		changed, err := b.Cancel(booking.CancelledByStudent, &reason)
		require.NoError(t, err)

		assert.True(t, changed)
		assert.Nil(t, b.CancelReason())
	})

	t.Run("reason at maximum length is accepted", func(t *testing.T) {
		b := builder.NewBookingBuilder().BuildDomain()
		reason := strings.Repeat("a", booking.MaxCancelReasonLength)

		_, err := b.Cancel(booking.CancelledByStudent, &reason)
		require.NoError(t, err)
	})

	t.Run("reason over maximum length is rejected", func(t *testing.T) {
		b := builder.NewBookingBuilder().BuildDomain()
		reason := strings.Repeat("a", booking.MaxCancelReasonLength+1)

		changed, err := b.Cancel(booking.CancelledByStudent, &reason)
		require.ErrorIs(t, err, booking.ErrReasonTooLong)

		assert.False(t, changed)
		assert.Equal(t, booking.StatusConfirmed, b.Status())
	})

	t.Run("second cancel is a no-op", func(t *testing.T) {
		b := builder.NewBookingBuilder().AsCancelled(booking.CancelledByStudent).BuildDomain()

		changed, err := b.Cancel(booking.CancelledByTutor, nil)
		require.NoError(t, err)

		assert.False(t, changed)
		assert.Equal(t, booking.StatusCancelled, b.Status())
		require.NotNil(t, b.CancelledBy())
		assert.Equal(t, booking.CancelledByStudent, *b.CancelledBy())
	})

	t.Run("completed booking cannot be cancelled", func(t *testing.T) {
		b := builder.NewBookingBuilder().AsCompleted().BuildDomain()

		changed, err := b.Cancel(booking.CancelledByStudent, nil)
		require.ErrorIs(t, err, booking.ErrAlreadyCompleted)

		assert.False(t, changed)
		assert.Equal(t, booking.StatusCompleted, b.Status())
	})

	t.Run("invalid cancelling party is rejected", func(t *testing.T) {
		b := builder.NewBookingBuilder().BuildDomain()

		changed, err := b.Cancel(booking.CancelledBy("ADMIN"), nil)
		require.ErrorIs(t, err, booking.ErrInvalidCancelledBy)

		assert.False(t, changed)
	})
}

func TestBookingComplete(t *testing.T) {
	t.Run("confirmed booking completes", func(t *testing.T) {
		b := builder.NewBookingBuilder().BuildDomain()

		changed, err := b.Complete()
		require.NoError(t, err)

		assert.True(t, changed)
		assert.Equal(t, booking.StatusCompleted, b.Status())
		assert.False(t, b.IsActive())
	})

	t.Run("second complete is a no-op", func(t *testing.T) {
		b := builder.NewBookingBuilder().AsCompleted().BuildDomain()

		changed, err := b.Complete()
		require.NoError(t, err)

		assert.False(t, changed)
		assert.Equal(t, booking.StatusCompleted, b.Status())
	})

	t.Run("cancelled booking cannot be completed", func(t *testing.T) {
		b := builder.NewBookingBuilder().AsCancelled(booking.CancelledByStudent).BuildDomain()

		changed, err := b.Complete()
		require.ErrorIs(t, err, booking.ErrAlreadyCancelled)

		assert.False(t, changed)
		assert.Equal(t, booking.StatusCancelled, b.Status())
	})
}

func TestBookingStatus(t *testing.T) {
	t.Run("valid statuses", func(t *testing.T) {
		for _, s := range []string{"CONFIRMED", "CANCELLED", "COMPLETED"} {
			status, err := booking.NewStatus(s)
			require.NoError(t, err)
			assert.Equal(t, s, status.String())
		}
	})

	t.Run("invalid status", func(t *testing.T) {
		_, err := booking.NewStatus("PENDING")
		require.ErrorIs(t, err, booking.ErrInvalidStatus)
	})

	t.Run("terminal statuses", func(t *testing.T) {
		assert.False(t, booking.StatusConfirmed.IsTerminal())
		assert.True(t, booking.StatusCancelled.IsTerminal())
		assert.True(t, booking.StatusCompleted.IsTerminal())
	})
}
