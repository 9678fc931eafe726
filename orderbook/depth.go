package orderbook

import (
	"github.com/GenYuLi/go-orderbook/types/avl"
)

// DepthLevel is one aggregated row of the level 2 market data snapshot.
type DepthLevel struct {
	Price  Uint
	Volume Uint
	Orders int
}

// Depth is a level 2 market data snapshot of both book sides. Bids are
// ordered best (highest) price first, asks best (lowest) price first.
type Depth struct {
	Bids []DepthLevel
	Asks []DepthLevel
}

// BestBidPrice returns the highest resting buy price.
// The second return value reports whether the bid side is non-empty.
func (ob *OrderBook) BestBidPrice() (Uint, bool) {
	top := ob.TopBid()
	if top == nil {
		return Uint{}, false
	}
	return top.Value().Price(), true
}

// BestAskPrice returns the lowest resting sell price.
// The second return value reports whether the ask side is non-empty.
func (ob *OrderBook) BestAskPrice() (Uint, bool) {
	top := ob.TopAsk()
	if top == nil {
		return Uint{}, false
	}
	return top.Value().Price(), true
}

// Spread returns the difference between the best ask and the best bid
// prices. It reports false when either side is empty or the book is
// crossed by passively seeded orders.
func (ob *OrderBook) Spread() (Uint, bool) {
	bid, ok := ob.BestBidPrice()
	if !ok {
		return Uint{}, false
	}
	ask, ok := ob.BestAskPrice()
	if !ok {
		return Uint{}, false
	}
	if ask.LessThan(bid) {
		return Uint{}, false
	}
	return ask.Sub(bid), true
}

// MidPrice returns the arithmetic mean of the best bid and ask prices.
// It reports false when either side is empty.
func (ob *OrderBook) MidPrice() (Uint, bool) {
	bid, ok := ob.BestBidPrice()
	if !ok {
		return Uint{}, false
	}
	ask, ok := ob.BestAskPrice()
	if !ok {
		return Uint{}, false
	}
	return bid.Add(ask).Div64(2), true
}

// MarketDepth returns up to limit aggregated price levels per side, best
// prices first. A non-positive limit is replaced with DefaultDepthLevels.
// The returned snapshot copies level aggregates and does not alias the
// book, so it stays valid after subsequent mutations.
func (ob *OrderBook) MarketDepth(limit int) Depth {
	if limit <= 0 {
		limit = DefaultDepthLevels
	}
	return Depth{
		Bids: collectDepth(&ob.bids, limit),
		Asks: collectDepth(&ob.asks, limit),
	}
}

func collectDepth(tree *avl.Tree[Uint, *PriceLevel], limit int) []DepthLevel {
	levels := make([]DepthLevel, 0, min(limit, tree.Size()))
	tree.IterateInOrder(func(priceLevel *PriceLevel) bool {
		levels = append(levels, DepthLevel{
			Price:  priceLevel.Price(),
			Volume: priceLevel.Volume(),
			Orders: priceLevel.Orders(),
		})
		return len(levels) >= limit
	})
	return levels
}
