package orderbook

// Trade is a single execution between an aggressor order and a resting
// order. The trade is always priced at the resting (maker) order's price so
// the aggressor never trades worse than its own limit. Trades are immutable
// once created; trade IDs give a total ordering across the book lifetime.
type Trade struct {
	ID           uint64
	MakerOrderID uint64 // resting order
	TakerOrderID uint64 // aggressor order
	Price        Uint
	Quantity     Uint
}

// MatchResult summarizes the outcome of a single order submission: the
// final filled/remaining quantities of the accepted order and the trades it
// produced, in order of price level consumption then FIFO within a level.
// The result is returned by value; the book keeps no reference to it.
type MatchResult struct {
	OrderID           uint64
	FilledQuantity    Uint
	RemainingQuantity Uint
	FullyFilled       bool
	Trades            []Trade
}

// HasTrades returns true if the submission produced at least one trade.
func (mr *MatchResult) HasTrades() bool {
	return len(mr.Trades) > 0
}

// NumTrades returns the amount of trades the submission produced.
func (mr *MatchResult) NumTrades() int {
	return len(mr.Trades)
}

// BatchResult is a single entry of the AddOrdersBatch output, index-aligned
// with the submitted specs. A rejected spec carries its validation error
// here while the remaining batch entries are still processed.
type BatchResult struct {
	Result MatchResult
	Err    error
}
