package response

import (
	"time"

	"tutorhive/internal/usecase/queries"
)

type BookingResponse struct {
	ID             string    `json:"id"`
	StudentID      string    `json:"student_id"`
	StudentName    string    `json:"student_name"`
	TutorProfileID string    `json:"tutor_profile_id"`
	TutorName      string    `json:"tutor_name"`
	SlotID         string    `json:"slot_id"`
	SlotStartAt    time.Time `json:"slot_start_at"`
	SlotEndAt      time.Time `json:"slot_end_at"`
	Status         string    `json:"status"`
	CancelledBy    *string   `json:"cancelled_by,omitempty"`
	CancelReason   *string   `json:"cancel_reason,omitempty"`
	ReviewID       *string   `json:"review_id,omitempty"`
	CreatedAt      int64     `json:"created_at"`
	UpdatedAt      int64     `json:"updated_at"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	resp := &BookingResponse{
		ID:             v.ID.String(),
		StudentID:      v.StudentID.String(),
		StudentName:    v.StudentName,
		TutorProfileID: v.TutorProfileID.String(),
		TutorName:      v.TutorName,
		SlotID:         v.SlotID.String(),
		SlotStartAt:    v.SlotStartAt,
		SlotEndAt:      v.SlotEndAt,
		Status:         v.Status,
		CancelledBy:    v.CancelledBy,
		CancelReason:   v.CancelReason,
		CreatedAt:      v.CreatedAt.Unix(),
		UpdatedAt:      v.UpdatedAt.Unix(),
	}
	if v.ReviewID != nil {
		id := v.ReviewID.String()
		resp.ReviewID = &id
	}
	return resp
}

type BookingListResponse struct {
	Bookings []*BookingResponse `json:"bookings"`
	Meta     PageMeta           `json:"meta"`
}

func FromBookingList(items []*queries.BookingView, info queries.PageInfo) *BookingListResponse {
	res := make([]*BookingResponse, len(items))
	for i, it := range items {
		res[i] = FromBookingView(it)
	}
	return &BookingListResponse{Bookings: res, Meta: FromPageInfo(info)}
}
