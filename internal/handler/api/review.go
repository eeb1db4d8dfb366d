package api

import (
	"errors"
	"net/http"

	reqdto "tutorhive/internal/handler/dto/request"
	resdto "tutorhive/internal/handler/dto/response"
	"tutorhive/internal/handler/httperr"
	"tutorhive/internal/handler/middleware"
	"tutorhive/internal/usecase/commands"
	"tutorhive/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReviewHandler struct {
	reviewCommands commands.ReviewCommands
	reviewQueries  queries.ReviewQueries
}

func NewReviewHandler(reviewCommands commands.ReviewCommands, reviewQueries queries.ReviewQueries) *ReviewHandler {
	return &ReviewHandler{
		reviewCommands: reviewCommands,
		reviewQueries:  reviewQueries,
	}
}

// @Summary Create review
// @Description Review a booking; each booking accepts exactly one review
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateReviewRequest true "Review request"
// @Success 201 {object} resdto.ReviewResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /reviews [post]
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingIdentity, "Unauthorized", nil)
		return
	}

	var req reqdto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.reviewCommands.CreateReview(c.Request.Context(), commands.CreateReviewRequest{
		BookingID: req.BookingID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	}, userID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
		case errors.Is(err, commands.ErrDuplicateReview):
			httperr.AbortWithError(c, http.StatusConflict, err, "Booking already reviewed", nil)
		case errors.Is(err, commands.ErrInvalidRating):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Rating must be between 1 and 5", nil)
		case errors.Is(err, commands.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request data", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	view, err := h.reviewQueries.GetByID(c.Request.Context(), result.ReviewID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load review", nil)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromReviewView(view))
}

// @Summary List tutor reviews
// @Description List reviews received by a tutor with optional rating floor
// @Tags reviews
// @Produce json
// @Param id path string true "Tutor profile ID"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param min_rating query int false "Minimum rating"
// @Success 200 {object} resdto.ReviewListResponse
// @Failure 400 {object} map[string]string
// @Router /tutors/{id}/reviews [get]
func (h *ReviewHandler) ListTutorReviews(c *gin.Context) {
	tutorProfileID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid tutor profile id", nil)
		return
	}

	var q reqdto.ListReviewsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", nil)
		return
	}

	views, info, err := h.reviewQueries.ListTutorReviews(c.Request.Context(), tutorProfileID,
		queries.ReviewFilter{MinRating: q.MinRating}, pageRequest(q.Pagination))
	if err != nil {
		if errors.Is(err, queries.ErrInvalidSortField) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid sort field", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReviewList(views, info))
}

// @Summary Tutor rating summary
// @Description Average rating and review count for a tutor
// @Tags reviews
// @Produce json
// @Param id path string true "Tutor profile ID"
// @Success 200 {object} resdto.TutorRatingSummaryResponse
// @Failure 400 {object} map[string]string
// @Router /tutors/{id}/rating [get]
func (h *ReviewHandler) GetTutorRating(c *gin.Context) {
	tutorProfileID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid tutor profile id", nil)
		return
	}

	summary, err := h.reviewQueries.GetTutorRatingSummary(c.Request.Context(), tutorProfileID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to get rating summary", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRatingSummary(summary))
}
