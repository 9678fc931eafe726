package orderbook_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	orderbook "github.com/GenYuLi/go-orderbook/orderbook"
	mockorderbook "github.com/GenYuLi/go-orderbook/orderbook/mocks"
)

func newUint(value uint64) orderbook.Uint {
	return orderbook.NewUint(value).Mul64(orderbook.UintPrecision)
}

func setupMockHandler(t *testing.T, handler *mockorderbook.MockHandler) {
	t.Helper()
	handler.EXPECT().OnAddOrder(gomock.Any(), gomock.Any()).AnyTimes()
	handler.EXPECT().OnUpdateOrder(gomock.Any(), gomock.Any()).AnyTimes()
	handler.EXPECT().OnDeleteOrder(gomock.Any(), gomock.Any()).AnyTimes()
	handler.EXPECT().OnAddPriceLevel(gomock.Any(), gomock.Any()).AnyTimes()
	handler.EXPECT().OnUpdatePriceLevel(gomock.Any(), gomock.Any()).AnyTimes()
	handler.EXPECT().OnDeletePriceLevel(gomock.Any(), gomock.Any()).AnyTimes()
	handler.EXPECT().OnExecuteTrade(gomock.Any(), gomock.Any()).AnyTimes()
}

func TestOrderBookBasic(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("resting limit order", func(t *testing.T) {
		handler := mockorderbook.NewMockHandler(ctrl)
		ob := orderbook.NewOrderBook(handler)

		handler.EXPECT().OnAddOrder(ob, gomock.Any()).Times(1)
		handler.EXPECT().OnAddPriceLevel(ob, gomock.Any()).Times(1)

		result, err := ob.AddOrder(orderbook.NewLimitOrderSpec(orderbook.OrderSideBuy, newUint(100), newUint(10)))
		require.NoError(t, err)
		require.False(t, result.FullyFilled)
		require.True(t, result.FilledQuantity.IsZero())
		require.Equal(t, newUint(10), result.RemainingQuantity)
		require.False(t, result.HasTrades())

		require.Equal(t, 1, ob.Size())
		order := ob.Order(result.OrderID)
		require.NotNil(t, order)
		require.Equal(t, orderbook.OrderStatusNew, order.Status())
		require.Equal(t, newUint(100), order.Price())
		require.Equal(t, newUint(10), order.RestQuantity())
	})

	t.Run("order id and sequence are monotonic", func(t *testing.T) {
		handler := mockorderbook.NewMockHandler(ctrl)
		setupMockHandler(t, handler)
		ob := orderbook.NewOrderBook(handler)

		first, err := ob.AddOrder(orderbook.NewLimitOrderSpec(orderbook.OrderSideBuy, newUint(100), newUint(1)))
		require.NoError(t, err)
		second, err := ob.AddOrder(orderbook.NewLimitOrderSpec(orderbook.OrderSideBuy, newUint(101), newUint(1)))
		require.NoError(t, err)

		require.Greater(t, second.OrderID, first.OrderID)
		require.Greater(t, ob.Order(second.OrderID).Sequence(), ob.Order(first.OrderID).Sequence())
	})

	t.Run("validation rejects before any mutation", func(t *testing.T) {
		handler := mockorderbook.NewMockHandler(ctrl)
		ob := orderbook.NewOrderBook(handler)

		_, err := ob.AddOrder(orderbook.NewLimitOrderSpec(orderbook.OrderSideBuy, newUint(100), orderbook.NewZeroUint()))
		require.ErrorIs(t, err, orderbook.ErrInvalidOrderQuantity)

		_, err = ob.AddOrder(orderbook.NewLimitOrderSpec(orderbook.OrderSideBuy, orderbook.NewZeroUint(), newUint(10)))
		require.ErrorIs(t, err, orderbook.ErrInvalidOrderPrice)

		_, err = ob.AddOrder(orderbook.OrderSpec{Type: orderbook.OrderTypeLimit, Price: newUint(100), Quantity: newUint(10)})
		require.ErrorIs(t, err, orderbook.ErrInvalidOrderSide)

		_, err = ob.AddOrder(orderbook.OrderSpec{Side: orderbook.OrderSideBuy, Price: newUint(100), Quantity: newUint(10)})
		require.ErrorIs(t, err, orderbook.ErrInvalidOrderType)

		require.True(t, ob.IsEmpty())
		require.Zero(t, ob.TotalTrades())
	})
}

func TestOrderBookCancelOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := mockorderbook.NewMockHandler(ctrl)
	setupMockHandler(t, handler)
	ob := orderbook.NewOrderBook(handler)

	result, err := ob.AddOrder(orderbook.NewLimitOrderSpec(orderbook.OrderSideSell, newUint(100), newUint(10)))
	require.NoError(t, err)

	require.True(t, ob.CancelOrder(result.OrderID))
	require.Nil(t, ob.Order(result.OrderID))
	require.True(t, ob.IsEmpty())

	_, ok := ob.BestAskPrice()
	require.False(t, ok)

	// Cancelling twice reports false, not an error
	require.False(t, ob.CancelOrder(result.OrderID))
	require.False(t, ob.CancelOrder(42))
}

func TestOrderBookModifyOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := mockorderbook.NewMockHandler(ctrl)
	setupMockHandler(t, handler)
	ob := orderbook.NewOrderBook(handler)

	first, err := ob.AddOrder(orderbook.NewLimitOrderSpec(orderbook.OrderSideBuy, newUint(100), newUint(10)))
	require.NoError(t, err)
	second, err := ob.AddOrder(orderbook.NewLimitOrderSpec(orderbook.OrderSideBuy, newUint(100), newUint(5)))
	require.NoError(t, err)

	require.True(t, ob.ModifyOrder(first.OrderID, newUint(20)))

	modified := ob.Order(first.OrderID)
	require.NotNil(t, modified)
	require.Equal(t, newUint(20), modified.Quantity())
	require.Equal(t, newUint(20), modified.RestQuantity())

	// Modifying re-queues the order behind its level peers
	require.Greater(t, modified.Sequence(), ob.Order(second.OrderID).Sequence())

	depth := ob.MarketDepth(1)
	require.Len(t, depth.Bids, 1)
	require.Equal(t, newUint(25), depth.Bids[0].Volume)

	require.False(t, ob.ModifyOrder(first.OrderID, orderbook.NewZeroUint()))
	require.False(t, ob.ModifyOrder(42, newUint(1)))
}

func TestOrderBookClear(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := mockorderbook.NewMockHandler(ctrl)
	setupMockHandler(t, handler)
	ob := orderbook.NewOrderBook(handler)

	for i := uint64(1); i <= 5; i++ {
		_, err := ob.AddOrder(orderbook.NewLimitOrderSpec(orderbook.OrderSideBuy, newUint(100-i), newUint(1)))
		require.NoError(t, err)
		_, err = ob.AddOrder(orderbook.NewLimitOrderSpec(orderbook.OrderSideSell, newUint(100+i), newUint(1)))
		require.NoError(t, err)
	}
	require.Equal(t, 10, ob.Size())

	ob.Clear()

	require.True(t, ob.IsEmpty())
	_, ok := ob.BestBidPrice()
	require.False(t, ok)
	_, ok = ob.BestAskPrice()
	require.False(t, ok)
	require.Empty(t, ob.MarketDepth(0).Bids)
	require.Empty(t, ob.MarketDepth(0).Asks)

	// The book stays usable after clearing
	_, err := ob.AddOrder(orderbook.NewLimitOrderSpec(orderbook.OrderSideBuy, newUint(100), newUint(1)))
	require.NoError(t, err)
	require.Equal(t, 1, ob.Size())
}

func TestOrderBookAddPassiveOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := mockorderbook.NewMockHandler(ctrl)
	setupMockHandler(t, handler)
	ob := orderbook.NewOrderBook(handler)

	// Passive orders skip matching entirely even when they cross
	buy, err := ob.AddPassiveOrder(orderbook.NewLimitOrderSpec(orderbook.OrderSideBuy, newUint(105), newUint(10)))
	require.NoError(t, err)
	sell, err := ob.AddPassiveOrder(orderbook.NewLimitOrderSpec(orderbook.OrderSideSell, newUint(100), newUint(10)))
	require.NoError(t, err)

	require.Equal(t, 2, ob.Size())
	require.NotNil(t, ob.Order(buy.OrderID))
	require.NotNil(t, ob.Order(sell.OrderID))
	require.Zero(t, ob.TotalTrades())

	// The seeded book is crossed so there is no meaningful spread
	_, ok := ob.Spread()
	require.False(t, ok)

	_, err = ob.AddPassiveOrder(orderbook.NewMarketOrderSpec(orderbook.OrderSideBuy, newUint(1)))
	require.ErrorIs(t, err, orderbook.ErrInvalidOrderType)
}

func TestOrderBookBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := mockorderbook.NewMockHandler(ctrl)
	setupMockHandler(t, handler)
	ob := orderbook.NewOrderBook(handler)

	specs := []orderbook.OrderSpec{
		orderbook.NewLimitOrderSpec(orderbook.OrderSideSell, newUint(100), newUint(5)),
		orderbook.NewLimitOrderSpec(orderbook.OrderSideSell, orderbook.NewZeroUint(), newUint(5)), // invalid
		orderbook.NewLimitOrderSpec(orderbook.OrderSideBuy, newUint(100), newUint(5)),
	}

	results := ob.AddOrdersBatch(specs)
	require.Len(t, results, len(specs))

	require.NoError(t, results[0].Err)
	require.ErrorIs(t, results[1].Err, orderbook.ErrInvalidOrderPrice)

	// The invalid order does not stop the batch: the last one still matches
	require.NoError(t, results[2].Err)
	require.True(t, results[2].Result.FullyFilled)
	require.Equal(t, 1, results[2].Result.NumTrades())
	require.True(t, ob.IsEmpty())
}
