package main

import (
	"flag"
	"fmt"
	"math/rand"
	"time"

	"github.com/GenYuLi/go-orderbook/orderbook"
)

var _ orderbook.Handler = &Matcher{}

var (
	numOrders   = flag.Int("orders", 1_000_000, "amount of orders to simulate")
	midPrice    = flag.Uint64("mid", 10_000, "initial mid price of the simulated flow")
	priceRange  = flag.Int("range", 200, "price range around the mid price")
	maxQuantity = flag.Int("qty", 100, "max order quantity")
	marketRatio = flag.Int("market", 10, "percentage of market orders")
	cancelRatio = flag.Int("cancel", 20, "percentage of cancellations")
	depthLevels = flag.Int("depth", 5, "amount of depth levels to print")
	seed        = flag.Int64("seed", 1, "random source seed")
)

func main() {
	flag.Parse()

	handler := &Matcher{}
	book := orderbook.NewOrderBook(handler)

	rng := rand.New(rand.NewSource(*seed))
	resting := make([]uint64, 0, *numOrders)

	randomPrice := func() orderbook.Uint {
		offset := uint64(rng.Intn(*priceRange*2+1)) + *midPrice - uint64(*priceRange)
		return orderbook.NewUint(offset).Mul64(orderbook.UintPrecision)
	}
	randomQuantity := func() orderbook.Uint {
		return orderbook.NewUint(uint64(1 + rng.Intn(*maxQuantity))).Mul64(orderbook.UintPrecision)
	}
	randomSide := func() orderbook.OrderSide {
		if rng.Intn(2) == 0 {
			return orderbook.OrderSideBuy
		}
		return orderbook.OrderSideSell
	}

	timeStart := time.Now()

	for i := 0; i < *numOrders; i++ {
		switch roll := rng.Intn(100); {
		case roll < *cancelRatio && len(resting) > 0:
			idx := rng.Intn(len(resting))
			book.CancelOrder(resting[idx])
			resting[idx] = resting[len(resting)-1]
			resting = resting[:len(resting)-1]
		case roll < *cancelRatio+*marketRatio:
			book.AddOrder(orderbook.NewMarketOrderSpec(randomSide(), randomQuantity()))
		default:
			result, err := book.AddOrder(orderbook.NewLimitOrderSpec(randomSide(), randomPrice(), randomQuantity()))
			if err == nil && book.Order(result.OrderID) != nil {
				resting = append(resting, result.OrderID)
			}
		}
	}

	timeElapsed := time.Since(timeStart)

	fmt.Printf("Simulated %d orders in %f seconds (%.0f orders/sec)\n\n",
		*numOrders, timeElapsed.Seconds(), float64(*numOrders)/timeElapsed.Seconds())

	handler.PrintStatistics(timeElapsed)

	fmt.Printf("\nTotal trades: %d\n", book.TotalTrades())
	fmt.Printf("Total volume: %s\n", book.TotalVolume().ToFloatString())
	fmt.Printf("Resting orders: %d\n", book.Size())

	if bid, ok := book.BestBidPrice(); ok {
		fmt.Printf("Best bid: %s\n", bid.ToFloatString())
	}
	if ask, ok := book.BestAskPrice(); ok {
		fmt.Printf("Best ask: %s\n", ask.ToFloatString())
	}
	if spread, ok := book.Spread(); ok {
		fmt.Printf("Spread: %s\n", spread.ToFloatString())
	}

	depth := book.MarketDepth(*depthLevels)
	fmt.Printf("\nDepth (top %d levels per side):\n", *depthLevels)
	for _, level := range depth.Asks {
		fmt.Printf("  ask %s x %s (%d orders)\n",
			level.Price.ToFloatString(), level.Volume.ToFloatString(), level.Orders)
	}
	for _, level := range depth.Bids {
		fmt.Printf("  bid %s x %s (%d orders)\n",
			level.Price.ToFloatString(), level.Volume.ToFloatString(), level.Orders)
	}
}
