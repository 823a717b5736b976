package commands_test

import (
	"context"
	"errors"
	"testing"

	"cctexpress/internal/core/application/usecases/commands"
	"cctexpress/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRegisterCustomerCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	cmd, err := commands.NewRegisterCustomerCommand(kernel.NewUUID(), "Alice Smith")
	require.NoError(t, err)

	repo := new(MockCustomerRepository)
	uow := new(MockUnitOfWork)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*customer.Customer")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCustomerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterCustomerCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestRegisterCustomerCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := context.Background()
	factory := new(MockCustomerUoWFactory)
	h := commands.NewRegisterCustomerCommandHandler(factory)

	err := h.Handle(ctx, commands.RegisterCustomerCommand{})
	require.ErrorIs(t, err, commands.ErrRegisterCustomerCommandIsNotConstructed)
}

func TestRegisterCustomerCommandHandler_Handle_AddError(t *testing.T) {
	ctx := context.Background()
	cmd, err := commands.NewRegisterCustomerCommand(kernel.NewUUID(), "Alice Smith")
	require.NoError(t, err)

	repo := new(MockCustomerRepository)
	uow := new(MockUnitOfWork)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*customer.Customer")).Return(errors.New("duplicate key")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCustomerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterCustomerCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
