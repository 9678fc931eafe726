package orderbook

const (
	// defaultReservedOrderSlots specifies initial size of hashmap array storing orders by order id.
	defaultReservedOrderSlots = 1024

	// DefaultDepthLevels is the amount of price levels per side reported by
	// depth queries when callers have no better preference.
	DefaultDepthLevels = 10
)
