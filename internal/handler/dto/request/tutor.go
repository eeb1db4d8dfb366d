package request

type ListTutorsQuery struct {
	Pagination
	Search     string  `form:"search" binding:"omitempty,max=255"`
	CategoryID *string `form:"category_id" binding:"omitempty,uuid"`
}

type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}
