package request

import "github.com/google/uuid"

type CreateBookingRequest struct {
	SlotID uuid.UUID `json:"slot_id" binding:"required"`
}

type CancelBookingRequest struct {
	Reason *string `json:"reason" binding:"omitempty,max=500"`
}

type ListBookingsQuery struct {
	Pagination
	Status *string `form:"status" binding:"omitempty,oneof=CONFIRMED CANCELLED COMPLETED"`
}
