package api

import (
	"errors"
	"net/http"

	reqdto "tutorhive/internal/handler/dto/request"
	resdto "tutorhive/internal/handler/dto/response"
	"tutorhive/internal/handler/httperr"
	"tutorhive/internal/usecase/commands"
	"tutorhive/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	categoryCommands commands.CategoryCommands
	categoryQueries  queries.CategoryQueries
}

func NewCategoryHandler(categoryCommands commands.CategoryCommands, categoryQueries queries.CategoryQueries) *CategoryHandler {
	return &CategoryHandler{
		categoryCommands: categoryCommands,
		categoryQueries:  categoryQueries,
	}
}

// @Summary List categories
// @Description List all subject categories
// @Tags categories
// @Produce json
// @Success 200 {array} resdto.CategoryResponse
// @Router /categories [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	views, err := h.categoryQueries.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCategoryList(views))
}

// @Summary Create category
// @Description Create a subject category (admin only)
// @Tags categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateCategoryRequest true "Category request"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /categories [post]
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req reqdto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.categoryCommands.Create(c.Request.Context(), commands.CreateCategoryRequest{
		Name: req.Name,
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrDuplicateCategory):
			httperr.AbortWithError(c, http.StatusConflict, err, "Category already exists", nil)
		case errors.Is(err, commands.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request data", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: result.CategoryID.String()})
}
