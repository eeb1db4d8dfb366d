package request

type RegisterRequest struct {
	Name     string  `json:"name" binding:"required,max=255"`
	Email    string  `json:"email" binding:"required,email"`
	Password string  `json:"password" binding:"required,min=8"`
	Role     string  `json:"role" binding:"required,oneof=STUDENT TUTOR"`
	Bio      *string `json:"bio" binding:"omitempty,max=2000"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}
