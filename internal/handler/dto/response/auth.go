package response

import "tutorhive/internal/usecase/queries"

type RegisterResponse struct {
	UserID string `json:"user_id"`
}

type LoginResponse struct {
	AccessToken string        `json:"access_token"`
	User        *UserResponse `json:"user"`
}

type UserResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	IsActive bool   `json:"is_active"`
}

func FromAuthorizedUserView(v *queries.AuthorizedUserView) *UserResponse {
	return &UserResponse{
		ID:       v.ID.String(),
		Name:     v.Name,
		Email:    v.Email,
		Role:     v.Role,
		IsActive: v.IsActive,
	}
}
