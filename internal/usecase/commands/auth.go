package commands

import (
	"context"
	"log/slog"

	"tutorhive/internal/domain/user"
	"tutorhive/internal/infra"
	"tutorhive/internal/pkg/errs"
	"tutorhive/internal/pkg/jwt"
	"tutorhive/internal/pkg/password"
	"tutorhive/internal/usecase/queries"
	"tutorhive/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound         = errs.New("user not found")
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrUserInactive         = errs.New("user inactive")
	ErrEmailTaken           = errs.New("email already registered")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
	ErrTokenValidation      = errs.New("token validation failed")
)

type RegisterRequest struct {
	Name     string
	Email    string
	Password string
	Role     string
	Bio      *string
}

type LoginRequest struct {
	Email    string
	Password string
}

type RegisterResult struct {
	UserID uuid.UUID
}

type LoginResult struct {
	UserID    uuid.UUID
	TokenPair *TokenPair
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type AuthCommands interface {
	Register(ctx context.Context, req RegisterRequest) (*RegisterResult, error)
	Login(ctx context.Context, req LoginRequest) (*LoginResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	readStore  queries.UserReadStore
	jwtService *jwt.Service
}

func NewAuthCommands(uow shared.UnitOfWork, readStore queries.UserReadStore, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		readStore:  readStore,
		jwtService: jwtService,
	}
}

// Register creates the user and, for tutors, the tutor profile in one
// transaction. Admin accounts are never self-registered.
func (a *authCommandsImpl) Register(ctx context.Context, req RegisterRequest) (*RegisterResult, error) {
	name, err := user.NewName(req.Name)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	email, err := user.NewEmail(req.Email)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	pw, err := user.NewPassword(req.Password)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	role, err := user.NewRole(req.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	if role == user.RoleAdmin {
		return nil, ErrDomainValidation
	}

	hash, err := password.HashPassword(pw.Value())
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	entity := user.NewUser(name, email, hash, role)

	var createdID uuid.UUID
	uerr := a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, derr := tx.Users().Create(ctx, tx.DB(), entity)
		if derr != nil {
			if infra.IsKind(derr, infra.KindDuplicateKey) {
				return ErrEmailTaken
			}
			return derr
		}
		if role == user.RoleTutor {
			if _, derr := tx.TutorProfiles().Create(ctx, tx.DB(), id, req.Bio); derr != nil {
				return derr
			}
		}
		createdID = id
		return nil
	})
	if uerr != nil {
		return nil, uerr
	}
	return &RegisterResult{UserID: createdID}, nil
}

func (a *authCommandsImpl) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	view, err := a.validateUser(ctx, req)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(view.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	pair, err := a.issueTokens(view.ID, role)
	if err != nil {
		return nil, err
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdateLastLogin(ctx, tx.DB(), view.ID)
	})
	if err != nil {
		// Login already succeeded; the timestamp is best effort.
		slog.Warn("failed to update last login", "user_id", view.ID, "error", err.Error())
	}

	return &LoginResult{UserID: view.ID, TokenPair: pair}, nil
}

func (a *authCommandsImpl) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := a.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	// The user must still exist and be active for rotation.
	view, err := a.readStore.FindByID(ctx, claims.UserID)
	if err != nil || view == nil {
		return nil, ErrUserNotFound
	}
	if !view.IsActive {
		return nil, ErrUserInactive
	}

	return a.issueTokens(claims.UserID, role)
}

func (a *authCommandsImpl) issueTokens(userID uuid.UUID, role user.Role) (*TokenPair, error) {
	accessToken, err := a.jwtService.GenerateAccessToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	refreshToken, err := a.jwtService.GenerateRefreshToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

func (a *authCommandsImpl) validateUser(ctx context.Context, req LoginRequest) (*queries.AuthorizedUserView, error) {
	view, hash, err := a.readStore.FindByEmail(ctx, req.Email)
	if err != nil {
		// Same error as a password mismatch to prevent user enumeration.
		return nil, ErrInvalidCredentials
	}
	if view == nil {
		return nil, ErrUserNotFound
	}
	if !view.IsActive {
		return nil, ErrUserInactive
	}
	if err := password.ComparePassword(hash, req.Password); err != nil {
		return nil, ErrInvalidCredentials
	}
	return view, nil
}
