package orderbook

// OrderType is an enumeration of possible order types.
type OrderType uint8

const (
	// A limit order is an order to buy or sell at a specific price or better.
	// A buy limit order can only be executed at the limit price or lower, and
	// a sell limit order can only be executed at the limit price or higher.
	// A limit order is not guaranteed to execute; the unmatched remainder
	// rests in the book awaiting the market price to reach the limit price.
	OrderTypeLimit OrderType = iota + 1

	// A market order is an order to buy or sell at the best available price.
	// Generally, this type of order will be executed immediately, however the
	// price at which it executes is not guaranteed. A market order never
	// rests in the book: any quantity that cannot be matched immediately is
	// discarded.
	OrderTypeMarket
)

func (ot OrderType) String() string {
	switch ot {
	case OrderTypeLimit:
		return "limit"
	case OrderTypeMarket:
		return "market"
	default:
		return "unknown"
	}
}
