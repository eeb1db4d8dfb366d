package api

import (
	"errors"
	"net/http"

	"tutorhive/internal/domain/user"
	reqdto "tutorhive/internal/handler/dto/request"
	resdto "tutorhive/internal/handler/dto/response"
	"tutorhive/internal/handler/httperr"
	"tutorhive/internal/usecase/commands"
	"tutorhive/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type UserHandler struct {
	userCommands commands.UserCommands
	userQueries  queries.UserQueries
}

func NewUserHandler(userCommands commands.UserCommands, userQueries queries.UserQueries) *UserHandler {
	return &UserHandler{
		userCommands: userCommands,
		userQueries:  userQueries,
	}
}

// @Summary List users
// @Description List user accounts with filtering, sorting and pagination (admin only)
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param sort_by query string false "Sort field"
// @Param sort_order query string false "Sort direction"
// @Param search query string false "Name or email substring"
// @Param role query string false "Role filter"
// @Param is_active query bool false "Account status filter"
// @Success 200 {object} resdto.UserListResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	var q reqdto.ListUsersQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", nil)
		return
	}

	filter := queries.UserFilter{IsActive: q.IsActive}
	if q.Search != nil {
		filter.Search = *q.Search
	}
	if q.Role != nil {
		role, err := user.NewRole(*q.Role)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid role", nil)
			return
		}
		filter.Role = &role
	}

	views, info, err := h.userQueries.List(c.Request.Context(), filter, pageRequest(q.Pagination))
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrInvalidSortField):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid sort field", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromUserList(views, info))
}

// @Summary Update user status
// @Description Activate or deactivate a user account (admin only)
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param request body reqdto.UpdateUserStatusRequest true "Status request"
// @Success 200 {object} resdto.UserResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /users/{id}/status [patch]
func (h *UserHandler) UpdateUserStatus(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid user id", nil)
		return
	}

	var req reqdto.UpdateUserStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	if err := h.userCommands.SetActive(c.Request.Context(), userID, *req.IsActive); err != nil {
		switch {
		case errors.Is(err, commands.ErrUserNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "User not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	view, err := h.userQueries.GetByID(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load user", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromAuthorizedUserView(view))
}
