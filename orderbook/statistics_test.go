package orderbook_test

import (
	"sync"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	orderbook "github.com/GenYuLi/go-orderbook/orderbook"
	mockorderbook "github.com/GenYuLi/go-orderbook/orderbook/mocks"
)

func TestStatisticsTracking(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := mockorderbook.NewMockHandler(ctrl)
	setupMockHandler(t, handler)
	ob := orderbook.NewOrderBook(handler)

	require.Zero(t, ob.TotalTrades())
	require.True(t, ob.TotalVolume().IsZero())

	_, err := ob.AddOrder(orderbook.NewLimitOrderSpec(orderbook.OrderSideSell, newUint(100), newUint(5)))
	require.NoError(t, err)
	_, err = ob.AddOrder(orderbook.NewLimitOrderSpec(orderbook.OrderSideSell, newUint(100), newUint(5)))
	require.NoError(t, err)

	// One aggressor hitting two resting orders produces two trades
	result, err := ob.AddOrder(orderbook.NewLimitOrderSpec(orderbook.OrderSideBuy, newUint(100), newUint(8)))
	require.NoError(t, err)
	require.Equal(t, 2, result.NumTrades())

	require.Equal(t, uint64(2), ob.TotalTrades())
	require.Equal(t, newUint(8), ob.TotalVolume())

	trades, volume := ob.Statistics().Totals()
	require.Equal(t, uint64(2), trades)
	require.Equal(t, newUint(8), volume)

	// Cancellations do not touch statistics
	_, err = ob.AddOrder(orderbook.NewLimitOrderSpec(orderbook.OrderSideBuy, newUint(99), newUint(1)))
	require.NoError(t, err)
	ob.Clear()
	require.Equal(t, uint64(2), ob.TotalTrades())
	require.Equal(t, newUint(8), ob.TotalVolume())

	ob.ResetStatistics()
	require.Zero(t, ob.TotalTrades())
	require.True(t, ob.TotalVolume().IsZero())
}

func TestStatisticsConcurrentReads(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := mockorderbook.NewMockHandler(ctrl)
	setupMockHandler(t, handler)
	ob := orderbook.NewOrderBook(handler)

	const rounds = 1000

	var wg sync.WaitGroup
	wg.Add(2)

	// Single writer mutating the book
	go func() {
		defer wg.Done()
		for i := 0; i < rounds; i++ {
			ob.AddOrder(orderbook.NewLimitOrderSpec(orderbook.OrderSideSell, newUint(100), newUint(2)))
			ob.AddOrder(orderbook.NewLimitOrderSpec(orderbook.OrderSideBuy, newUint(100), newUint(2)))
		}
	}()

	// Concurrent reader observing a consistent trades/volume pair
	go func() {
		defer wg.Done()
		for i := 0; i < rounds; i++ {
			trades, volume := ob.Statistics().Totals()
			if newUint(trades * 2) != volume {
				t.Errorf("inconsistent statistics: %d trades, %s volume", trades, volume.ToFloatString())
				return
			}
		}
	}()

	wg.Wait()

	require.Equal(t, uint64(rounds), ob.TotalTrades())
	require.Equal(t, newUint(rounds*2), ob.TotalVolume())
}
