//go:build unit

package commands_test

import (
	"context"
	"testing"

	"tutorhive/internal/pkg/errs"
	"tutorhive/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserSetActive(t *testing.T) {
	ctx := context.Background()

	t.Run("admin deactivates an account", func(t *testing.T) {
		uow := newFakeUoW()
		sut := commands.NewUserCommands(uow)
		userID := uuid.New()

		err := sut.SetActive(ctx, userID, false)
		require.NoError(t, err)

		require.Len(t, uow.tx.users.setActiveCalls, 1)
		assert.Equal(t, userID, uow.tx.users.setActiveCalls[0].userID)
		assert.False(t, uow.tx.users.setActiveCalls[0].isActive)
	})

	t.Run("admin reactivates an account", func(t *testing.T) {
		uow := newFakeUoW()
		sut := commands.NewUserCommands(uow)
		userID := uuid.New()

		err := sut.SetActive(ctx, userID, true)
		require.NoError(t, err)

		require.Len(t, uow.tx.users.setActiveCalls, 1)
		assert.True(t, uow.tx.users.setActiveCalls[0].isActive)
	})

	t.Run("unknown user id", func(t *testing.T) {
		uow := newFakeUoW()
		uow.tx.users.setActiveAffected = 0

		sut := commands.NewUserCommands(uow)

		err := sut.SetActive(ctx, uuid.New(), false)
		require.ErrorIs(t, err, commands.ErrUserNotFound)
	})

	t.Run("store failure is propagated", func(t *testing.T) {
		uow := newFakeUoW()
		uow.tx.users.setActiveErr = errs.New("connection reset")

		sut := commands.NewUserCommands(uow)

		err := sut.SetActive(ctx, uuid.New(), false)
		require.Error(t, err)
		assert.NotErrorIs(t, err, commands.ErrUserNotFound)
	})
}
