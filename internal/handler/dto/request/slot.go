package request

import (
	"time"
)

type CreateSlotRequest struct {
	StartAt time.Time `json:"start_at" binding:"required"`
	EndAt   time.Time `json:"end_at" binding:"required"`
}

type UpdateSlotRequest struct {
	StartAt *time.Time `json:"start_at" binding:"omitempty"`
	EndAt   *time.Time `json:"end_at" binding:"omitempty"`
	Status  *string    `json:"status" binding:"omitempty,oneof=OPEN BOOKED"`
}

// ListSlotsQuery binds the slot listing filters from the query string.
type ListSlotsQuery struct {
	Pagination
	TutorProfileID *string    `form:"tutor_profile_id" binding:"omitempty,uuid"`
	Status         *string    `form:"status" binding:"omitempty,oneof=OPEN BOOKED"`
	Search         string     `form:"search" binding:"omitempty,max=255"`
	From           *time.Time `form:"from" binding:"omitempty" time_format:"2006-01-02T15:04:05Z07:00"`
	To             *time.Time `form:"to" binding:"omitempty" time_format:"2006-01-02T15:04:05Z07:00"`
}

type Pagination struct {
	Page      int    `form:"page" binding:"omitempty,min=1"`
	Limit     int    `form:"limit" binding:"omitempty,min=1,max=100"`
	SortBy    string `form:"sort_by" binding:"omitempty,max=50"`
	SortOrder string `form:"sort_order" binding:"omitempty,oneof=asc desc"`
}
