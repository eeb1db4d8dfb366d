package commands

import (
	"context"

	"tutorhive/internal/domain/review"
	"tutorhive/internal/infra"
	"tutorhive/internal/pkg/errs"
	"tutorhive/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateReviewRequest struct {
	BookingID uuid.UUID
	Rating    int
	Comment   string
}

type ReviewResult struct {
	ReviewID uuid.UUID
}

type ReviewCommands interface {
	CreateReview(ctx context.Context, req CreateReviewRequest, studentID uuid.UUID) (*ReviewResult, error)
}

type reviewCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewReviewCommands(uow shared.UnitOfWork) ReviewCommands {
	return &reviewCommandsImpl{uow: uow}
}

// CreateReview inserts the single review a booking may ever have. The
// existence check inside the transaction covers the common path; the
// unique constraint on booking_id covers the race where two requests
// pass the check concurrently, and both paths surface the same
// conflict error.
func (c *reviewCommandsImpl) CreateReview(ctx context.Context, req CreateReviewRequest, studentID uuid.UUID) (*ReviewResult, error) {
	rating, err := review.NewRating(req.Rating)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidRating)
	}
	comment, err := review.NewComment(req.Comment)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	var createdID uuid.UUID
	uerr := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().BookingByIDForStudent(ctx, req.BookingID, studentID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return derr
		}

		exists, derr := tx.Reads().ReviewExistsForBooking(ctx, req.BookingID)
		if derr != nil {
			return derr
		}
		if exists {
			return ErrDuplicateReview
		}

		rev := review.NewReview(req.BookingID, studentID, snap.TutorProfileID, rating, comment)
		id, derr := tx.Reviews().Create(ctx, tx.DB(), rev)
		if derr != nil {
			if infra.IsKind(derr, infra.KindDuplicateKey) {
				return ErrDuplicateReview
			}
			return derr
		}
		createdID = id
		return nil
	})
	if uerr != nil {
		return nil, uerr
	}
	return &ReviewResult{ReviewID: createdID}, nil
}
