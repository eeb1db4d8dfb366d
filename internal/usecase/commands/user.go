package commands

import (
	"context"

	"tutorhive/internal/usecase/shared"

	"github.com/google/uuid"
)

type UserCommands interface {
	// SetActive flips a user's account on or off. Deactivated accounts
	// fail login and token refresh until an admin reactivates them.
	SetActive(ctx context.Context, userID uuid.UUID, isActive bool) error
}

type userCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewUserCommands(uow shared.UnitOfWork) UserCommands {
	return &userCommandsImpl{uow: uow}
}

func (c *userCommandsImpl) SetActive(ctx context.Context, userID uuid.UUID, isActive bool) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		affected, err := tx.Users().SetActive(ctx, tx.DB(), userID, isActive)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrUserNotFound
		}
		return nil
	})
}
