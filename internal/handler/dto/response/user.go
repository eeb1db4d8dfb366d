package response

import "tutorhive/internal/usecase/queries"

type UserDetailResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	IsActive  bool   `json:"is_active"`
	LastLogin *int64 `json:"last_login,omitempty"`
	CreatedAt int64  `json:"created_at"`
	UpdatedAt int64  `json:"updated_at"`
}

func FromUserView(v *queries.UserView) *UserDetailResponse {
	resp := &UserDetailResponse{
		ID:        v.ID.String(),
		Name:      v.Name,
		Email:     v.Email,
		Role:      v.Role,
		IsActive:  v.IsActive,
		CreatedAt: v.CreatedAt.Unix(),
		UpdatedAt: v.UpdatedAt.Unix(),
	}
	if v.LastLogin != nil {
		ts := v.LastLogin.Unix()
		resp.LastLogin = &ts
	}
	return resp
}

type UserListResponse struct {
	Users []*UserDetailResponse `json:"users"`
	Meta  PageMeta              `json:"meta"`
}

func FromUserList(items []*queries.UserView, info queries.PageInfo) *UserListResponse {
	res := make([]*UserDetailResponse, len(items))
	for i, it := range items {
		res[i] = FromUserView(it)
	}
	return &UserListResponse{Users: res, Meta: FromPageInfo(info)}
}
