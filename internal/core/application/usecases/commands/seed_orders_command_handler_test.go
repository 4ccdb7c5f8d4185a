package commands_test

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"oms/internal/core/application/usecases/commands"
	"oms/internal/core/domain/model/item"
	"oms/internal/core/domain/model/order"
)

func TestSeedOrdersCommandHandler_Handle_CreatesRequestedCount(t *testing.T) {
	ctx := t.Context()
	const count = 3

	cmd, err := commands.NewSeedOrdersCommand(count)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("Add", mock.Anything, mock.MatchedBy(func(o *order.Order) bool {
		if o.Status() != order.Pending || o.ItemID() == nil {
			return false
		}
		return *o.ItemID() >= 1 && *o.ItemID() <= item.CatalogSize &&
			o.Total().Amount() >= 10.00 && o.Total().Amount() <= 2000.00
	})).Return(nil).Times(count)

	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Times(count)
	uow.On("OrderRepository").Return(repo).Times(count)
	uow.On("Commit", ctx).Return(nil).Times(count)
	uow.On("Rollback", ctx).Return(nil).Times(count)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Times(count)

	createHandler := commands.NewCreateOrderCommandHandler(factory)
	h := commands.NewSeedOrdersCommandHandler(createHandler)
	require.NoError(t, h.Handle(ctx, cmd))
	repo.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestNewSeedOrdersCommand_CountBounds(t *testing.T) {
	_, err := commands.NewSeedOrdersCommand(0)
	require.Error(t, err)

	_, err = commands.NewSeedOrdersCommand(101)
	require.Error(t, err)

	_, err = commands.NewSeedOrdersCommand(1)
	require.NoError(t, err)

	_, err = commands.NewSeedOrdersCommand(100)
	require.NoError(t, err)
}
