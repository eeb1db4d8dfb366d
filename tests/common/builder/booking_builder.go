//go:build unit || integration

package builder

import (
	"time"

	dombooking "tutorhive/internal/domain/booking"
	"tutorhive/internal/usecase/queries"
	"tutorhive/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID             uuid.UUID
	StudentID      uuid.UUID
	StudentName    string
	TutorProfileID uuid.UUID
	TutorName      string
	SlotID         uuid.UUID
	SlotStartAt    time.Time
	SlotEndAt      time.Time
	Status         dombooking.Status
	CancelledBy    *dombooking.CancelledBy
	CancelReason   *string
	ReviewID       *uuid.UUID
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Now().Truncate(time.Second)
	start := now.Add(24 * time.Hour)
	return &BookingBuilder{
		ID:             uuid.New(),
		StudentID:      uuid.New(),
		StudentName:    "Test Student",
		TutorProfileID: uuid.New(),
		TutorName:      "Test Tutor",
		SlotID:         uuid.New(),
		SlotStartAt:    start,
		SlotEndAt:      start.Add(time.Hour),
		Status:         dombooking.StatusConfirmed,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildDomain() *dombooking.Booking {
	return dombooking.ReconstructBooking(
		b.ID, b.StudentID, b.TutorProfileID, b.SlotID,
		b.Status, b.CancelledBy, b.CancelReason,
		b.CreatedAt, b.UpdatedAt,
	)
}

func (b *BookingBuilder) BuildSnapshot() *shared.BookingSnapshot {
	return &shared.BookingSnapshot{
		ID:             b.ID,
		StudentID:      b.StudentID,
		TutorProfileID: b.TutorProfileID,
		SlotID:         b.SlotID,
		Status:         b.Status,
		CancelledBy:    b.CancelledBy,
		CancelReason:   b.CancelReason,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	var cancelledBy *string
	if b.CancelledBy != nil {
		s := b.CancelledBy.String()
		cancelledBy = &s
	}
	return &queries.BookingView{
		ID:             b.ID,
		StudentID:      b.StudentID,
		StudentName:    b.StudentName,
		TutorProfileID: b.TutorProfileID,
		TutorName:      b.TutorName,
		SlotID:         b.SlotID,
		SlotStartAt:    b.SlotStartAt,
		SlotEndAt:      b.SlotEndAt,
		Status:         b.Status.String(),
		CancelledBy:    cancelledBy,
		CancelReason:   b.CancelReason,
		ReviewID:       b.ReviewID,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}

func (b *BookingBuilder) WithStatus(status dombooking.Status) *BookingBuilder {
	b.Status = status
	return b
}

func (b *BookingBuilder) WithStudentID(id uuid.UUID) *BookingBuilder {
	b.StudentID = id
	return b
}

func (b *BookingBuilder) AsCancelled(by dombooking.CancelledBy) *BookingBuilder {
	b.Status = dombooking.StatusCancelled
	b.CancelledBy = &by
	return b
}

func (b *BookingBuilder) AsCompleted() *BookingBuilder {
	b.Status = dombooking.StatusCompleted
	return b
}
