package commands_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"orderops/internal/core/application/usecases/commands"
	"orderops/internal/core/domain/model/discount"
	"orderops/internal/core/domain/model/kernel"
)

func newDiscountLine(t *testing.T) *discount.Line {
	t.Helper()
	line, err := discount.NewLine(
		kernel.NewUUID(), "factory-1", "SKU-300",
		decimal.NewFromInt(1000), 10,
	)
	require.NoError(t, err)
	return line
}

func TestEditDiscountCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	line := newDiscountLine(t)
	cmd, err := commands.NewEditDiscountCommand(line.ID(), "100")
	require.NoError(t, err)

	repo := new(MockDiscountLineRepository)
	uow := new(MockDiscountUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DiscountLineRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, line.ID()).Return(line, nil).Once(),
		repo.On("Update", mock.Anything, line).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDiscountUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewEditDiscountCommandHandler(factory)
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.True(t, result.UnitPrice.Equal(decimal.NewFromInt(900)))
	require.True(t, result.Amount.Equal(decimal.NewFromInt(9000)))
	require.True(t, result.OverrideFlag)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestEditDiscountCommandHandler_Handle_MalformedAmount(t *testing.T) {
	ctx := t.Context()
	line := newDiscountLine(t)
	require.True(t, line.ApplyDefaultIfUnset(decimal.NewFromInt(50)))
	cmd, err := commands.NewEditDiscountCommand(line.ID(), "abc")
	require.NoError(t, err)

	repo := new(MockDiscountLineRepository)
	uow := new(MockDiscountUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DiscountLineRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, line.ID()).Return(line, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDiscountUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewEditDiscountCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, discount.ErrInvalidDiscount)

	// The previously applied default survives a rejected edit.
	require.True(t, line.DiscountAmt().Equal(decimal.NewFromInt(50)))
	require.False(t, line.OverrideFlag())
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
