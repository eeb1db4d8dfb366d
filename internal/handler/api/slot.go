package api

import (
	"errors"
	"net/http"

	domslot "tutorhive/internal/domain/slot"
	reqdto "tutorhive/internal/handler/dto/request"
	resdto "tutorhive/internal/handler/dto/response"
	"tutorhive/internal/handler/httperr"
	"tutorhive/internal/handler/middleware"
	"tutorhive/internal/usecase/commands"
	"tutorhive/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SlotHandler struct {
	slotCommands commands.SlotCommands
	slotQueries  queries.SlotQueries
}

func NewSlotHandler(slotCommands commands.SlotCommands, slotQueries queries.SlotQueries) *SlotHandler {
	return &SlotHandler{
		slotCommands: slotCommands,
		slotQueries:  slotQueries,
	}
}

// @Summary Create availability slot
// @Description Publish a new open time slot for the authenticated tutor
// @Tags slots
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateSlotRequest true "Slot request"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /slots [post]
func (h *SlotHandler) CreateSlot(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingIdentity, "Unauthorized", nil)
		return
	}

	var req reqdto.CreateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.slotCommands.Create(c.Request.Context(), commands.CreateSlotRequest{
		StartAt: req.StartAt,
		EndAt:   req.EndAt,
	}, userID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrTutorProfileNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Tutor profile not found", nil)
		case errors.Is(err, commands.ErrInvalidTimeWindow):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Slot start must be before end", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: result.SlotID.String()})
}

// @Summary List availability slots
// @Description List slots with filtering, sorting and pagination
// @Tags slots
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param sort_by query string false "Sort field"
// @Param sort_order query string false "Sort direction"
// @Param status query string false "Slot status filter"
// @Param tutor_profile_id query string false "Tutor profile filter"
// @Param search query string false "Tutor name or email substring"
// @Param from query string false "Window overlap start (RFC3339)"
// @Param to query string false "Window overlap end (RFC3339)"
// @Success 200 {object} resdto.SlotListResponse
// @Failure 400 {object} map[string]string
// @Router /slots [get]
func (h *SlotHandler) ListSlots(c *gin.Context) {
	var q reqdto.ListSlotsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", nil)
		return
	}

	filter := queries.SlotFilter{
		Search: q.Search,
		From:   q.From,
		To:     q.To,
	}
	if q.TutorProfileID != nil {
		id, err := uuid.Parse(*q.TutorProfileID)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid tutor profile id", nil)
			return
		}
		filter.TutorProfileID = &id
	}
	if q.Status != nil {
		status := domslot.Status(*q.Status)
		filter.Status = &status
	}

	views, info, err := h.slotQueries.List(c.Request.Context(), filter, pageRequest(q.Pagination))
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrInvalidSortField):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid sort field", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromSlotList(views, info))
}

// @Summary Get availability slot
// @Description Get a single slot by id
// @Tags slots
// @Produce json
// @Param id path string true "Slot ID"
// @Success 200 {object} resdto.SlotResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /slots/{id} [get]
func (h *SlotHandler) GetSlot(c *gin.Context) {
	slotID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid slot id", nil)
		return
	}

	view, err := h.slotQueries.GetByID(c.Request.Context(), slotID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrSlotNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Slot not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromSlotView(view))
}

// @Summary Update availability slot
// @Description Reschedule or patch an open slot owned by the tutor
// @Tags slots
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Slot ID"
// @Param request body reqdto.UpdateSlotRequest true "Slot patch"
// @Success 200 {object} resdto.SlotResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /slots/{id} [patch]
func (h *SlotHandler) UpdateSlot(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingIdentity, "Unauthorized", nil)
		return
	}

	slotID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid slot id", nil)
		return
	}

	var req reqdto.UpdateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	err = h.slotCommands.Update(c.Request.Context(), slotID, commands.UpdateSlotRequest{
		StartAt: req.StartAt,
		EndAt:   req.EndAt,
		Status:  req.Status,
	}, userID)
	if err != nil {
		h.handleSlotMutationError(c, err)
		return
	}

	view, err := h.slotQueries.GetByID(c.Request.Context(), slotID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load slot", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromSlotView(view))
}

// @Summary Delete availability slot
// @Description Remove an open slot owned by the tutor
// @Tags slots
// @Produce json
// @Security BearerAuth
// @Param id path string true "Slot ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /slots/{id} [delete]
func (h *SlotHandler) DeleteSlot(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingIdentity, "Unauthorized", nil)
		return
	}

	slotID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid slot id", nil)
		return
	}

	if err := h.slotCommands.Delete(c.Request.Context(), slotID, userID); err != nil {
		h.handleSlotMutationError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Slot deleted"})
}

func (h *SlotHandler) handleSlotMutationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrTutorProfileNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Tutor profile not found", nil)
	case errors.Is(err, commands.ErrSlotNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Slot not found", nil)
	case errors.Is(err, commands.ErrSlotBooked):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Booked slots cannot be modified", nil)
	case errors.Is(err, commands.ErrInvalidTimeWindow):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Slot start must be before end", nil)
	case errors.Is(err, commands.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request data", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

func pageRequest(p reqdto.Pagination) queries.PageRequest {
	return queries.PageRequest{
		Page:      p.Page,
		Limit:     p.Limit,
		SortBy:    p.SortBy,
		SortOrder: queries.SortOrder(p.SortOrder),
	}
}
