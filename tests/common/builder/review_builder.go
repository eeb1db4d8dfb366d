//go:build unit || integration

package builder

import (
	"time"

	domreview "tutorhive/internal/domain/review"
	reqdto "tutorhive/internal/handler/dto/request"
	"tutorhive/internal/usecase/commands"
	"tutorhive/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReviewBuilder struct {
	BookingID      uuid.UUID
	StudentID      uuid.UUID
	StudentName    string
	TutorProfileID uuid.UUID
	Rating         int
	Comment        string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func NewReviewBuilder() *ReviewBuilder {
	now := time.Now().Truncate(time.Second)
	return &ReviewBuilder{
		BookingID:      uuid.New(),
		StudentID:      uuid.New(),
		StudentName:    "Test Student",
		TutorProfileID: uuid.New(),
		Rating:         5,
		Comment:        "Excellent lesson!",
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func (r *ReviewBuilder) With(mutate func(*ReviewBuilder)) *ReviewBuilder {
	mutate(r)
	return r
}

func (r *ReviewBuilder) BuildDomain() (*domreview.Review, error) {
	rating, err := domreview.NewRating(r.Rating)
	if err != nil {
		return nil, err
	}
	comment, err := domreview.NewComment(r.Comment)
	if err != nil {
		return nil, err
	}
	return domreview.NewReview(r.BookingID, r.StudentID, r.TutorProfileID, rating, comment), nil
}

func (r *ReviewBuilder) BuildCreateRequestDTO() reqdto.CreateReviewRequest {
	return reqdto.CreateReviewRequest{
		BookingID: r.BookingID,
		Rating:    r.Rating,
		Comment:   r.Comment,
	}
}

func (r *ReviewBuilder) BuildCommandRequest() commands.CreateReviewRequest {
	return commands.CreateReviewRequest{
		BookingID: r.BookingID,
		Rating:    r.Rating,
		Comment:   r.Comment,
	}
}

func (r *ReviewBuilder) BuildView() *queries.ReviewView {
	var comment *string
	if r.Comment != "" {
		c := r.Comment
		comment = &c
	}
	return &queries.ReviewView{
		ID:             uuid.New(),
		BookingID:      r.BookingID,
		StudentID:      r.StudentID,
		StudentName:    r.StudentName,
		TutorProfileID: r.TutorProfileID,
		Rating:         int32(r.Rating),
		Comment:        comment,
		CreatedAt:      r.CreatedAt,
	}
}

func (r *ReviewBuilder) WithRating(rating int) *ReviewBuilder {
	r.Rating = rating
	return r
}

func (r *ReviewBuilder) WithComment(comment string) *ReviewBuilder {
	r.Comment = comment
	return r
}

func (r *ReviewBuilder) WithBookingID(id uuid.UUID) *ReviewBuilder {
	r.BookingID = id
	return r
}

func (r *ReviewBuilder) AsPoorRating() *ReviewBuilder {
	r.Rating = 1
	r.Comment = "Poor lesson"
	return r
}
