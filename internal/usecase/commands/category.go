package commands

import (
	"context"
	"strings"

	"tutorhive/internal/infra"
	"tutorhive/internal/usecase/shared"

	"github.com/google/uuid"
)

const maxCategoryNameLength = 100

type CreateCategoryRequest struct {
	Name string
}

type CategoryResult struct {
	CategoryID uuid.UUID
}

type CategoryCommands interface {
	Create(ctx context.Context, req CreateCategoryRequest) (*CategoryResult, error)
}

type categoryCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewCategoryCommands(uow shared.UnitOfWork) CategoryCommands {
	return &categoryCommandsImpl{uow: uow}
}

func (c *categoryCommandsImpl) Create(ctx context.Context, req CreateCategoryRequest) (*CategoryResult, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" || len(name) > maxCategoryNameLength {
		return nil, ErrDomainValidation
	}

	var createdID uuid.UUID
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, derr := tx.Categories().Create(ctx, tx.DB(), name)
		if derr != nil {
			if infra.IsKind(derr, infra.KindDuplicateKey) {
				return ErrDuplicateCategory
			}
			return derr
		}
		createdID = id
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &CategoryResult{CategoryID: createdID}, nil
}
