package orderbook

import (
	"github.com/GenYuLi/go-orderbook/types/list"
)

// Order contains information about a single order. An order is an
// instruction to buy or sell a quantity at a limit price (or at the best
// available price for market orders). Orders are created by the order book
// on acceptance and mutated in place while matching; the book retains
// ownership of resting orders until they are filled or cancelled.
type Order struct {
	id        uint64
	sequence  uint64
	side      OrderSide
	orderType OrderType
	status    OrderStatus

	price            Uint
	quantity         Uint
	restQuantity     Uint
	executedQuantity Uint

	// Cached placement of the resting order inside the order book,
	// allowing cancellation without scanning the book.
	priceLevel  *PriceLevel
	orderQueued *list.Element[*Order]
}

// ID returns the order ID assigned at acceptance.
func (o *Order) ID() uint64 {
	return o.id
}

// Sequence returns the monotonic sequence number assigned at acceptance.
// Within one price level earlier sequence numbers match first.
func (o *Order) Sequence() uint64 {
	return o.sequence
}

// Side returns the market side of the order.
func (o *Order) Side() OrderSide {
	return o.side
}

// IsBuy returns true if buy order.
func (o *Order) IsBuy() bool {
	return o.side == OrderSideBuy
}

// IsSell returns true if sell order.
func (o *Order) IsSell() bool {
	return o.side == OrderSideSell
}

// Type returns the order type.
func (o *Order) Type() OrderType {
	return o.orderType
}

// IsLimit returns true if limit order.
func (o *Order) IsLimit() bool {
	return o.orderType == OrderTypeLimit
}

// IsMarket returns true if market order.
func (o *Order) IsMarket() bool {
	return o.orderType == OrderTypeMarket
}

// Status returns the order lifecycle status.
func (o *Order) Status() OrderStatus {
	return o.status
}

// Price returns the order limit price.
func (o *Order) Price() Uint {
	return o.price
}

// Quantity returns the original order quantity.
func (o *Order) Quantity() Uint {
	return o.quantity
}

// RestQuantity returns order remaining quantity.
func (o *Order) RestQuantity() Uint {
	return o.restQuantity
}

// ExecutedQuantity returns order executed quantity.
func (o *Order) ExecutedQuantity() Uint {
	return o.executedQuantity
}

// IsExecuted returns true if the order is completely executed.
func (o *Order) IsExecuted() bool {
	return o.restQuantity.IsZero()
}

// IsResting returns true if the order is currently placed in the book.
func (o *Order) IsResting() bool {
	return o.priceLevel != nil
}

// Crosses reports whether the order is marketable against the given
// opposite side price. Market orders cross any price.
func (o *Order) Crosses(price Uint) bool {
	if o.IsMarket() {
		return true
	}
	if o.IsBuy() {
		return o.price.GreaterThanOrEqualTo(price)
	}
	return o.price.LessThanOrEqualTo(price)
}
