package request

type ListUsersQuery struct {
	Pagination
	Search   *string `form:"search" binding:"omitempty,max=200"`
	Role     *string `form:"role" binding:"omitempty,oneof=STUDENT TUTOR ADMIN"`
	IsActive *bool   `form:"is_active"`
}

type UpdateUserStatusRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}
