package api

import (
	"errors"
	"net/http"

	dombooking "tutorhive/internal/domain/booking"
	reqdto "tutorhive/internal/handler/dto/request"
	resdto "tutorhive/internal/handler/dto/response"
	"tutorhive/internal/handler/httperr"
	"tutorhive/internal/handler/middleware"
	"tutorhive/internal/usecase/commands"
	"tutorhive/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
	}
}

// @Summary Book a slot
// @Description Reserve an open slot for the authenticated student
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingIdentity, "Unauthorized", nil)
		return
	}

	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.bookingCommands.Create(c.Request.Context(), req.SlotID, userID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrSlotNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Slot not found", nil)
		case errors.Is(err, commands.ErrSlotUnavailable):
			httperr.AbortWithError(c, http.StatusConflict, err, "Slot no longer available", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	view, err := h.bookingQueries.GetMyBooking(c.Request.Context(), result.BookingID, userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load booking", nil)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBookingView(view))
}

// @Summary List my bookings
// @Description List bookings made by the authenticated student
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param status query string false "Booking status filter"
// @Success 200 {object} resdto.BookingListResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /bookings/my-bookings [get]
func (h *BookingHandler) ListMyBookings(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingIdentity, "Unauthorized", nil)
		return
	}

	q, filter, ok := h.bindListQuery(c)
	if !ok {
		return
	}

	views, info, err := h.bookingQueries.ListMyBookings(c.Request.Context(), userID, filter, pageRequest(q.Pagination))
	if err != nil {
		h.handleListError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingList(views, info))
}

// @Summary List tutor bookings
// @Description List bookings against slots owned by the authenticated tutor
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param status query string false "Booking status filter"
// @Success 200 {object} resdto.BookingListResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/tutor-bookings [get]
func (h *BookingHandler) ListTutorBookings(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingIdentity, "Unauthorized", nil)
		return
	}

	q, filter, ok := h.bindListQuery(c)
	if !ok {
		return
	}

	views, info, err := h.bookingQueries.ListTutorBookings(c.Request.Context(), userID, filter, pageRequest(q.Pagination))
	if err != nil {
		if errors.Is(err, queries.ErrTutorProfileNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Tutor profile not found", nil)
			return
		}
		h.handleListError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingList(views, info))
}

// @Summary Get my booking
// @Description Get a booking owned by the authenticated student
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/my-bookings/{id} [get]
func (h *BookingHandler) GetMyBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingIdentity, "Unauthorized", nil)
		return
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking id", nil)
		return
	}

	view, err := h.bookingQueries.GetMyBooking(c.Request.Context(), bookingID, userID)
	if err != nil {
		if errors.Is(err, queries.ErrBookingNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Cancel my booking
// @Description Cancel a confirmed booking and release its slot
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.CancelBookingRequest false "Cancellation reason"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/my-bookings/{id}/cancel [patch]
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingIdentity, "Unauthorized", nil)
		return
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking id", nil)
		return
	}

	var req reqdto.CancelBookingRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
			return
		}
	}

	result, err := h.bookingCommands.Cancel(c.Request.Context(), bookingID, commands.CancelBookingRequest{
		Reason: req.Reason,
	}, userID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
		case errors.Is(err, commands.ErrBookingAlreadyCompleted):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Completed bookings cannot be cancelled", nil)
		case errors.Is(err, commands.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request data", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	view, err := h.bookingQueries.GetMyBooking(c.Request.Context(), result.BookingID, userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load booking", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Complete a booking
// @Description Mark a confirmed booking as completed after the session
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/tutor-bookings/{id}/complete [patch]
func (h *BookingHandler) CompleteBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingIdentity, "Unauthorized", nil)
		return
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking id", nil)
		return
	}

	result, err := h.bookingCommands.Complete(c.Request.Context(), bookingID, userID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrTutorProfileNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Tutor profile not found", nil)
		case errors.Is(err, commands.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
		case errors.Is(err, commands.ErrBookingAlreadyCancelled):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Cancelled bookings cannot be completed", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	view, err := h.bookingQueries.GetTutorBooking(c.Request.Context(), result.BookingID, userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load booking", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

func (h *BookingHandler) bindListQuery(c *gin.Context) (reqdto.ListBookingsQuery, queries.BookingFilter, bool) {
	var q reqdto.ListBookingsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", nil)
		return q, queries.BookingFilter{}, false
	}

	var filter queries.BookingFilter
	if q.Status != nil {
		status := dombooking.Status(*q.Status)
		filter.Status = &status
	}
	return q, filter, true
}

func (h *BookingHandler) handleListError(c *gin.Context, err error) {
	if errors.Is(err, queries.ErrInvalidSortField) {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid sort field", nil)
		return
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
}
