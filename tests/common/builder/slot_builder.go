//go:build unit || integration

package builder

import (
	"time"

	domslot "tutorhive/internal/domain/slot"
	"tutorhive/internal/usecase/queries"
	"tutorhive/internal/usecase/shared"

	"github.com/google/uuid"
)

type SlotBuilder struct {
	ID             uuid.UUID
	TutorProfileID uuid.UUID
	TutorName      string
	TutorEmail     string
	StartAt        time.Time
	EndAt          time.Time
	Status         domslot.Status
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func NewSlotBuilder() *SlotBuilder {
	now := time.Now().Truncate(time.Second)
	start := now.Add(24 * time.Hour)
	return &SlotBuilder{
		ID:             uuid.New(),
		TutorProfileID: uuid.New(),
		TutorName:      "Test Tutor",
		TutorEmail:     "tutor@example.com",
		StartAt:        start,
		EndAt:          start.Add(time.Hour),
		Status:         domslot.StatusOpen,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func (s *SlotBuilder) With(mutate func(*SlotBuilder)) *SlotBuilder {
	mutate(s)
	return s
}

func (s *SlotBuilder) BuildWindow() (domslot.TimeWindow, error) {
	return domslot.NewTimeWindow(s.StartAt, s.EndAt)
}

func (s *SlotBuilder) BuildDomain() (*domslot.AvailabilitySlot, error) {
	window, err := domslot.NewTimeWindow(s.StartAt, s.EndAt)
	if err != nil {
		return nil, err
	}
	return domslot.ReconstructAvailabilitySlot(
		s.ID, s.TutorProfileID, window, s.Status, s.CreatedAt, s.UpdatedAt,
	), nil
}

func (s *SlotBuilder) BuildSnapshot() *shared.SlotSnapshot {
	return &shared.SlotSnapshot{
		ID:             s.ID,
		TutorProfileID: s.TutorProfileID,
		StartAt:        s.StartAt,
		EndAt:          s.EndAt,
		Status:         s.Status,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}

func (s *SlotBuilder) BuildView() *queries.SlotView {
	return &queries.SlotView{
		ID:             s.ID,
		TutorProfileID: s.TutorProfileID,
		TutorName:      s.TutorName,
		TutorEmail:     s.TutorEmail,
		StartAt:        s.StartAt,
		EndAt:          s.EndAt,
		Status:         s.Status.String(),
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}

func (s *SlotBuilder) WithStartAt(start time.Time) *SlotBuilder {
	s.StartAt = start
	return s
}

func (s *SlotBuilder) WithEndAt(end time.Time) *SlotBuilder {
	s.EndAt = end
	return s
}

func (s *SlotBuilder) WithStatus(status domslot.Status) *SlotBuilder {
	s.Status = status
	return s
}

func (s *SlotBuilder) AsBooked() *SlotBuilder {
	s.Status = domslot.StatusBooked
	return s
}
