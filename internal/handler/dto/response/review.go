package response

import (
	"tutorhive/internal/usecase/queries"
)

type ReviewResponse struct {
	ID             string  `json:"id"`
	BookingID      string  `json:"booking_id"`
	StudentID      string  `json:"student_id"`
	StudentName    string  `json:"student_name"`
	TutorProfileID string  `json:"tutor_profile_id"`
	Rating         int32   `json:"rating"`
	Comment        *string `json:"comment,omitempty"`
	CreatedAt      int64   `json:"created_at"`
}

func FromReviewView(v *queries.ReviewView) *ReviewResponse {
	return &ReviewResponse{
		ID:             v.ID.String(),
		BookingID:      v.BookingID.String(),
		StudentID:      v.StudentID.String(),
		StudentName:    v.StudentName,
		TutorProfileID: v.TutorProfileID.String(),
		Rating:         v.Rating,
		Comment:        v.Comment,
		CreatedAt:      v.CreatedAt.Unix(),
	}
}

type ReviewListResponse struct {
	Reviews []*ReviewResponse `json:"reviews"`
	Meta    PageMeta          `json:"meta"`
}

func FromReviewList(items []*queries.ReviewView, info queries.PageInfo) *ReviewListResponse {
	res := make([]*ReviewResponse, len(items))
	for i, it := range items {
		res[i] = FromReviewView(it)
	}
	return &ReviewListResponse{Reviews: res, Meta: FromPageInfo(info)}
}

type TutorRatingSummaryResponse struct {
	TutorProfileID string  `json:"tutor_profile_id"`
	AverageRating  float64 `json:"average_rating"`
	TotalReviews   int64   `json:"total_reviews"`
}

func FromRatingSummary(s *queries.TutorRatingSummary) *TutorRatingSummaryResponse {
	return &TutorRatingSummaryResponse{
		TutorProfileID: s.TutorProfileID.String(),
		AverageRating:  s.AverageRating,
		TotalReviews:   s.TotalReviews,
	}
}
