package orderbook

// OrderStatus is an enumeration of possible order lifecycle states.
type OrderStatus uint8

const (
	// OrderStatusNew marks an accepted order with no executions yet.
	OrderStatusNew OrderStatus = iota + 1
	// OrderStatusPartiallyFilled marks an order with some executed quantity remaining.
	OrderStatusPartiallyFilled
	// OrderStatusFilled marks a completely executed order.
	OrderStatusFilled
	// OrderStatusCancelled marks an order removed from the book before full execution.
	// The remaining quantity is frozen at cancellation time.
	OrderStatusCancelled
)

func (os OrderStatus) String() string {
	switch os {
	case OrderStatusNew:
		return "new"
	case OrderStatusPartiallyFilled:
		return "partially-filled"
	case OrderStatusFilled:
		return "filled"
	case OrderStatusCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}
