package slot

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrSlotBooked = errors.New("booked slots cannot be modified")

// AvailabilitySlot is a tutor-published bookable time window. It is
// created OPEN, moves to BOOKED only through a successful booking and
// back to OPEN only through a cancellation.
type AvailabilitySlot struct {
	id             uuid.UUID
	tutorProfileID uuid.UUID
	window         TimeWindow
	status         Status
	createdAt      time.Time
	updatedAt      time.Time
}

func NewAvailabilitySlot(tutorProfileID uuid.UUID, window TimeWindow) *AvailabilitySlot {
	return &AvailabilitySlot{
		id:             uuid.New(),
		tutorProfileID: tutorProfileID,
		window:         window,
		status:         StatusOpen,
	}
}

func ReconstructAvailabilitySlot(
	id, tutorProfileID uuid.UUID,
	window TimeWindow,
	status Status,
	createdAt, updatedAt time.Time,
) *AvailabilitySlot {
	return &AvailabilitySlot{
		id:             id,
		tutorProfileID: tutorProfileID,
		window:         window,
		status:         status,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

// Reschedule applies a new window and optional status to an unbooked slot.
func (s *AvailabilitySlot) Reschedule(window TimeWindow, status Status) error {
	if s.status == StatusBooked {
		return ErrSlotBooked
	}
	if !status.IsValid() {
		return ErrInvalidStatus
	}
	s.window = window
	s.status = status
	return nil
}

func (s *AvailabilitySlot) IsOpen() bool {
	return s.status == StatusOpen
}

func (s *AvailabilitySlot) ID() uuid.UUID             { return s.id }
func (s *AvailabilitySlot) TutorProfileID() uuid.UUID { return s.tutorProfileID }
func (s *AvailabilitySlot) Window() TimeWindow        { return s.window }
func (s *AvailabilitySlot) Status() Status            { return s.status }
func (s *AvailabilitySlot) CreatedAt() time.Time      { return s.createdAt }
func (s *AvailabilitySlot) UpdatedAt() time.Time      { return s.updatedAt }
