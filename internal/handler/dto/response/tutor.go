package response

import (
	"tutorhive/internal/usecase/queries"
)

type TutorResponse struct {
	ID         string   `json:"id"`
	UserID     string   `json:"user_id"`
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Bio        *string  `json:"bio,omitempty"`
	Categories []string `json:"categories"`
	CreatedAt  int64    `json:"created_at"`
}

func FromTutorView(v *queries.TutorProfileView) *TutorResponse {
	return &TutorResponse{
		ID:         v.ID.String(),
		UserID:     v.UserID.String(),
		Name:       v.Name,
		Email:      v.Email,
		Bio:        v.Bio,
		Categories: v.Categories,
		CreatedAt:  v.CreatedAt.Unix(),
	}
}

type TutorListResponse struct {
	Tutors []*TutorResponse `json:"tutors"`
	Meta   PageMeta         `json:"meta"`
}

func FromTutorList(items []*queries.TutorProfileView, info queries.PageInfo) *TutorListResponse {
	res := make([]*TutorResponse, len(items))
	for i, it := range items {
		res[i] = FromTutorView(it)
	}
	return &TutorListResponse{Tutors: res, Meta: FromPageInfo(info)}
}

type CategoryResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt int64  `json:"created_at"`
}

func FromCategoryList(items []*queries.CategoryView) []*CategoryResponse {
	res := make([]*CategoryResponse, len(items))
	for i, it := range items {
		res[i] = &CategoryResponse{
			ID:        it.ID.String(),
			Name:      it.Name,
			CreatedAt: it.CreatedAt.Unix(),
		}
	}
	return res
}
