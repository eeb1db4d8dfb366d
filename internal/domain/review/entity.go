package review

import (
	"time"

	"github.com/google/uuid"
)

// Review is uniquely keyed to its booking: at most one review may ever
// exist per booking, enforced both here (check before insert) and by a
// uniqueness constraint at the storage layer.
type Review struct {
	id             uuid.UUID
	bookingID      uuid.UUID
	studentID      uuid.UUID
	tutorProfileID uuid.UUID
	rating         Rating
	comment        Comment
	createdAt      time.Time
	updatedAt      time.Time
}

func NewReview(bookingID, studentID, tutorProfileID uuid.UUID, rating Rating, comment Comment) *Review {
	return &Review{
		id:             uuid.New(),
		bookingID:      bookingID,
		studentID:      studentID,
		tutorProfileID: tutorProfileID,
		rating:         rating,
		comment:        comment,
	}
}

func ReconstructReview(
	id, bookingID, studentID, tutorProfileID uuid.UUID,
	rating Rating,
	comment Comment,
	createdAt, updatedAt time.Time,
) *Review {
	return &Review{
		id:             id,
		bookingID:      bookingID,
		studentID:      studentID,
		tutorProfileID: tutorProfileID,
		rating:         rating,
		comment:        comment,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

func (r *Review) ID() uuid.UUID             { return r.id }
func (r *Review) BookingID() uuid.UUID      { return r.bookingID }
func (r *Review) StudentID() uuid.UUID      { return r.studentID }
func (r *Review) TutorProfileID() uuid.UUID { return r.tutorProfileID }
func (r *Review) Rating() Rating            { return r.rating }
func (r *Review) Comment() Comment          { return r.comment }
func (r *Review) CreatedAt() time.Time      { return r.createdAt }
func (r *Review) UpdatedAt() time.Time      { return r.updatedAt }
