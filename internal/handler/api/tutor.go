package api

import (
	"errors"
	"net/http"

	reqdto "tutorhive/internal/handler/dto/request"
	resdto "tutorhive/internal/handler/dto/response"
	"tutorhive/internal/handler/httperr"
	"tutorhive/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TutorHandler struct {
	tutorQueries queries.TutorQueries
}

func NewTutorHandler(tutorQueries queries.TutorQueries) *TutorHandler {
	return &TutorHandler{tutorQueries: tutorQueries}
}

// @Summary List tutors
// @Description List tutor profiles with search and category filtering
// @Tags tutors
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param search query string false "Name or bio substring"
// @Param category_id query string false "Category filter"
// @Success 200 {object} resdto.TutorListResponse
// @Failure 400 {object} map[string]string
// @Router /tutors [get]
func (h *TutorHandler) ListTutors(c *gin.Context) {
	var q reqdto.ListTutorsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", nil)
		return
	}

	filter := queries.TutorFilter{Search: q.Search}
	if q.CategoryID != nil {
		id, err := uuid.Parse(*q.CategoryID)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid category id", nil)
			return
		}
		filter.CategoryID = &id
	}

	views, info, err := h.tutorQueries.List(c.Request.Context(), filter, pageRequest(q.Pagination))
	if err != nil {
		if errors.Is(err, queries.ErrInvalidSortField) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid sort field", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromTutorList(views, info))
}

// @Summary Get tutor
// @Description Get a tutor profile by id
// @Tags tutors
// @Produce json
// @Param id path string true "Tutor profile ID"
// @Success 200 {object} resdto.TutorResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /tutors/{id} [get]
func (h *TutorHandler) GetTutor(c *gin.Context) {
	tutorProfileID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid tutor profile id", nil)
		return
	}

	view, err := h.tutorQueries.GetByID(c.Request.Context(), tutorProfileID)
	if err != nil {
		if errors.Is(err, queries.ErrTutorProfileNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Tutor profile not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromTutorView(view))
}
