package queries

import (
	"time"

	"github.com/google/uuid"
)

// SlotView represents read-optimized availability slot data joined with
// the owning tutor.
type SlotView struct {
	ID             uuid.UUID `json:"id"`
	TutorProfileID uuid.UUID `json:"tutor_profile_id"`
	TutorName      string    `json:"tutor_name"`
	TutorEmail     string    `json:"tutor_email"`
	StartAt        time.Time `json:"start_at"`
	EndAt          time.Time `json:"end_at"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// BookingView represents read-optimized booking data with slot and
// counterparty context.
type BookingView struct {
	ID             uuid.UUID  `json:"id"`
	StudentID      uuid.UUID  `json:"student_id"`
	StudentName    string     `json:"student_name"`
	TutorProfileID uuid.UUID  `json:"tutor_profile_id"`
	TutorName      string     `json:"tutor_name"`
	SlotID         uuid.UUID  `json:"slot_id"`
	SlotStartAt    time.Time  `json:"slot_start_at"`
	SlotEndAt      time.Time  `json:"slot_end_at"`
	Status         string     `json:"status"`
	CancelledBy    *string    `json:"cancelled_by,omitempty"`
	CancelReason   *string    `json:"cancel_reason,omitempty"`
	ReviewID       *uuid.UUID `json:"review_id,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

type ReviewView struct {
	ID             uuid.UUID `json:"id"`
	BookingID      uuid.UUID `json:"booking_id"`
	StudentID      uuid.UUID `json:"student_id"`
	StudentName    string    `json:"student_name"`
	TutorProfileID uuid.UUID `json:"tutor_profile_id"`
	Rating         int32     `json:"rating"`
	Comment        *string   `json:"comment,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

type TutorRatingSummary struct {
	TutorProfileID uuid.UUID `json:"tutor_profile_id"`
	AverageRating  float64   `json:"average_rating"`
	TotalReviews   int64     `json:"total_reviews"`
}

type TutorProfileView struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Bio        *string   `json:"bio,omitempty"`
	Categories []string  `json:"categories"`
	CreatedAt  time.Time `json:"created_at"`
}

type CategoryView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}

// UserView is the admin-facing user row with account timestamps.
type UserView struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	IsActive  bool       `json:"is_active"`
	LastLogin *time.Time `json:"last_login,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
