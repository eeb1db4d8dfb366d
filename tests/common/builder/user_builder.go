//go:build unit || integration

package builder

import (
	domuser "tutorhive/internal/domain/user"
	reqdto "tutorhive/internal/handler/dto/request"
	"tutorhive/internal/usecase/queries"

	"github.com/google/uuid"
)

// bcrypt hash of "password123", cost 10.
const TestPasswordHash = "$2a$10$N9qo8uLOickgx2ZMRZoMye0eLo0kZhF1FJ0OFXpVp0sJb9eWbC3y6"

type UserBuilder struct {
	ID       uuid.UUID
	Name     string
	Email    string
	Password string
	Role     string
	Bio      *string
	IsActive bool
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:       uuid.New(),
		Name:     "Test Student",
		Email:    "student@example.com",
		Password: "password123",
		Role:     domuser.RoleStudent.String(),
		IsActive: true,
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

func (u *UserBuilder) BuildDomain() (*domuser.User, error) {
	name, err := domuser.NewName(u.Name)
	if err != nil {
		return nil, err
	}
	email, err := domuser.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}
	if _, err := domuser.NewPassword(u.Password); err != nil {
		return nil, err
	}
	role, err := domuser.NewRole(u.Role)
	if err != nil {
		return nil, err
	}
	return domuser.NewUser(name, email, TestPasswordHash, role), nil
}

func (u *UserBuilder) BuildRegisterRequestDTO() reqdto.RegisterRequest {
	return reqdto.RegisterRequest{
		Name:     u.Name,
		Email:    u.Email,
		Password: u.Password,
		Role:     u.Role,
		Bio:      u.Bio,
	}
}

func (u *UserBuilder) BuildAuthorizedView() *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:       u.ID,
		Name:     u.Name,
		Email:    u.Email,
		Role:     u.Role,
		IsActive: u.IsActive,
	}
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithName(name string) *UserBuilder {
	u.Name = name
	return u
}

func (u *UserBuilder) WithPassword(password string) *UserBuilder {
	u.Password = password
	return u
}

func (u *UserBuilder) AsTutor() *UserBuilder {
	u.Name = "Test Tutor"
	u.Email = "tutor@example.com"
	u.Role = domuser.RoleTutor.String()
	return u
}

func (u *UserBuilder) AsAdmin() *UserBuilder {
	u.Name = "Test Admin"
	u.Email = "admin@example.com"
	u.Role = domuser.RoleAdmin.String()
	return u
}
