package shared

import (
	"time"

	"tutorhive/internal/domain/booking"
	"tutorhive/internal/domain/slot"

	"github.com/google/uuid"
)

// Minimal snapshots for command read operations. Write-side code builds
// domain aggregates from these instead of depending on read-side views.

type TutorProfileSnapshot struct {
	ID     uuid.UUID
	UserID uuid.UUID
}

type SlotSnapshot struct {
	ID             uuid.UUID
	TutorProfileID uuid.UUID
	StartAt        time.Time
	EndAt          time.Time
	Status         slot.Status
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type BookingSnapshot struct {
	ID             uuid.UUID
	StudentID      uuid.UUID
	TutorProfileID uuid.UUID
	SlotID         uuid.UUID
	Status         booking.Status
	CancelledBy    *booking.CancelledBy
	CancelReason   *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (s *BookingSnapshot) ToDomain() *booking.Booking {
	return booking.ReconstructBooking(
		s.ID, s.StudentID, s.TutorProfileID, s.SlotID,
		s.Status, s.CancelledBy, s.CancelReason,
		s.CreatedAt, s.UpdatedAt,
	)
}
