package orderbook_test

import (
	"math/rand"
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

func newBook(t *testing.T, ctrl *gomock.Controller) *orderbook.OrderBook {
	t.Helper()
	handler := mockorderbook.NewMockHandler(ctrl)
	setupMockHandler(t, handler)
	return orderbook.NewOrderBook(handler)
}

func TestScenarioSingleMatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ob := newBook(t, ctrl)

	sell, err := ob.AddOrder(orderbook.NewLimitOrderSpec(orderbook.OrderSideSell, newUint(100), newUint(10)))
	require.NoError(t, err)
	require.False(t, sell.HasTrades())

	buy, err := ob.AddOrder(orderbook.NewLimitOrderSpec(orderbook.OrderSideBuy, newUint(100), newUint(10)))
	require.NoError(t, err)

	require.Equal(t, 1, buy.NumTrades())
	require.Equal(t, newUint(100), buy.Trades[0].Price)
	require.Equal(t, newUint(10), buy.Trades[0].Quantity)

	require.Equal(t, uint64(1), ob.TotalTrades())
	require.Equal(t, newUint(10), ob.TotalVolume())
	require.True(t, ob.IsEmpty())
}

func TestScenarioMultiMakerSweep(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ob := newBook(t, ctrl)

	makers := make([]uint64, 0, 3)
	for i := 0; i < 3; i++ {
		result, err := ob.AddOrder(orderbook.NewLimitOrderSpec(orderbook.OrderSideSell, newUint(100), newUint(5)))
		require.NoError(t, err)
		makers = append(makers, result.OrderID)
	}

	buy, err := ob.AddOrder(orderbook.NewLimitOrderSpec(orderbook.OrderSideBuy, newUint(100), newUint(15)))
	require.NoError(t, err)

	require.True(t, buy.FullyFilled)
	require.Equal(t, 3, buy.NumTrades())
	for i, trade := range buy.Trades {
		require.Equal(t, makers[i], trade.MakerOrderID)
		require.Equal(t, newUint(100), trade.Price)
		require.Equal(t, newUint(5), trade.Quantity)
	}

	require.Equal(t, uint64(3), ob.TotalTrades())
	require.Equal(t, newUint(15), ob.TotalVolume())
	require.True(t, ob.IsEmpty())
}

func TestScenarioQuoteBuild(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ob := newBook(t, ctrl)

	_, err := ob.AddOrder(orderbook.NewLimitOrderSpec(orderbook.OrderSideBuy, newUint(100), newUint(10)))
	require.NoError(t, err)
	_, err = ob.AddOrder(orderbook.NewLimitOrderSpec(orderbook.OrderSideSell, newUint(102), newUint(10)))
	require.NoError(t, err)

	bid, ok := ob.BestBidPrice()
	require.True(t, ok)
	require.Equal(t, newUint(100), bid)

	ask, ok := ob.BestAskPrice()
	require.True(t, ok)
	require.Equal(t, newUint(102), ask)

	spread, ok := ob.Spread()
	require.True(t, ok)
	require.Equal(t, newUint(2), spread)

	mid, ok := ob.MidPrice()
	require.True(t, ok)
	require.Equal(t, newUint(101), mid)

	require.Zero(t, ob.TotalTrades())
}

func TestScenarioRandomizedFlow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ob := newBook(t, ctrl)
	rng := rand.New(rand.NewSource(1337))

	resting := make([]uint64, 0, 1024)

	checkNotCrossed := func() {
		bid, okBid := ob.BestBidPrice()
		ask, okAsk := ob.BestAskPrice()
		if okBid && okAsk {
			require.True(t, bid.LessThan(ask),
				"book is crossed: bid %s, ask %s", bid.ToFloatString(), ask.ToFloatString())
		}
	}

	for i := 0; i < 10_000; i++ {
		side := orderbook.OrderSideBuy
		if rng.Intn(2) == 0 {
			side = orderbook.OrderSideSell
		}

		switch action := rng.Intn(10); {
		case action < 6: // limit order
			price := newUint(uint64(90 + rng.Intn(21)))
			quantity := newUint(uint64(1 + rng.Intn(10)))
			result, err := ob.AddOrder(orderbook.NewLimitOrderSpec(side, price, quantity))
			require.NoError(t, err)
			require.Equal(t, quantity, result.FilledQuantity.Add(result.RemainingQuantity))
			if order := ob.Order(result.OrderID); order != nil {
				resting = append(resting, result.OrderID)
			}
		case action < 8: // market order
			quantity := newUint(uint64(1 + rng.Intn(10)))
			result, err := ob.AddOrder(orderbook.NewMarketOrderSpec(side, quantity))
			require.NoError(t, err)
			require.Nil(t, ob.Order(result.OrderID))
		case action < 9 && len(resting) > 0: // cancel
			idx := rng.Intn(len(resting))
			id := resting[idx]
			ob.CancelOrder(id)
			require.Nil(t, ob.Order(id))
			resting[idx] = resting[len(resting)-1]
			resting = resting[:len(resting)-1]
		case len(resting) > 0: // modify
			id := resting[rng.Intn(len(resting))]
			ob.ModifyOrder(id, newUint(uint64(1+rng.Intn(10))))
		}

		checkNotCrossed()
	}

	// Every tracked order is either still resting intact or gone
	for _, id := range resting {
		if order := ob.Order(id); order != nil {
			require.False(t, order.RestQuantity().IsZero())
			require.True(t, order.RestQuantity().LessThanOrEqualTo(order.Quantity()))
		}
	}

	depthTotal := func(levels []orderbook.DepthLevel) (volume orderbook.Uint, orders int) {
		for _, level := range levels {
			require.False(t, level.Volume.IsZero())
			volume = volume.Add(level.Volume)
			orders += level.Orders
		}
		return
	}

	depth := ob.MarketDepth(1 << 20)
	_, bidOrders := depthTotal(depth.Bids)
	_, askOrders := depthTotal(depth.Asks)
	require.Equal(t, ob.Size(), bidOrders+askOrders)
}
