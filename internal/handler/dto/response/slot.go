package response

import (
	"time"

	"tutorhive/internal/usecase/queries"
)

type SlotResponse struct {
	ID             string    `json:"id"`
	TutorProfileID string    `json:"tutor_profile_id"`
	TutorName      string    `json:"tutor_name"`
	TutorEmail     string    `json:"tutor_email"`
	StartAt        time.Time `json:"start_at"`
	EndAt          time.Time `json:"end_at"`
	Status         string    `json:"status"`
	CreatedAt      int64     `json:"created_at"`
	UpdatedAt      int64     `json:"updated_at"`
}

func FromSlotView(v *queries.SlotView) *SlotResponse {
	return &SlotResponse{
		ID:             v.ID.String(),
		TutorProfileID: v.TutorProfileID.String(),
		TutorName:      v.TutorName,
		TutorEmail:     v.TutorEmail,
		StartAt:        v.StartAt,
		EndAt:          v.EndAt,
		Status:         v.Status,
		CreatedAt:      v.CreatedAt.Unix(),
		UpdatedAt:      v.UpdatedAt.Unix(),
	}
}

type SlotListResponse struct {
	Slots []*SlotResponse `json:"slots"`
	Meta  PageMeta        `json:"meta"`
}

func FromSlotList(items []*queries.SlotView, info queries.PageInfo) *SlotListResponse {
	res := make([]*SlotResponse, len(items))
	for i, it := range items {
		res[i] = FromSlotView(it)
	}
	return &SlotListResponse{Slots: res, Meta: FromPageInfo(info)}
}

type CreatedResponse struct {
	ID string `json:"id"`
}

type PageMeta struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int64 `json:"total_pages"`
}

func FromPageInfo(info queries.PageInfo) PageMeta {
	return PageMeta{
		Total:      info.Total,
		Page:       info.Page,
		Limit:      info.Limit,
		TotalPages: info.TotalPages,
	}
}
