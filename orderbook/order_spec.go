package orderbook

// OrderSpec describes a single order submission. It is the strongly typed
// boundary record: every field is validated before the book is touched, so a
// rejected spec never leaves a partially applied order behind.
type OrderSpec struct {
	Side     OrderSide
	Type     OrderType
	Price    Uint
	Quantity Uint

	// RestingAllowed controls whether the unmatched remainder of a limit
	// order is placed into the book. Market orders never rest regardless.
	RestingAllowed bool
}

// NewLimitOrderSpec creates a limit order submission with resting allowed.
func NewLimitOrderSpec(side OrderSide, price Uint, quantity Uint) OrderSpec {
	return OrderSpec{
		Side:           side,
		Type:           OrderTypeLimit,
		Price:          price,
		Quantity:       quantity,
		RestingAllowed: true,
	}
}

// NewMarketOrderSpec creates a market order submission.
func NewMarketOrderSpec(side OrderSide, quantity Uint) OrderSpec {
	return OrderSpec{
		Side:     side,
		Type:     OrderTypeMarket,
		Quantity: quantity,
	}
}

// Validate returns error if the spec fails validation so it can be used safely.
func (s OrderSpec) Validate() error {
	if s.Side != OrderSideBuy && s.Side != OrderSideSell {
		return ErrInvalidOrderSide
	}

	switch s.Type {
	case OrderTypeLimit:
		if s.Price.IsZero() {
			return ErrInvalidOrderPrice
		}
	case OrderTypeMarket:
	default:
		return ErrInvalidOrderType
	}

	if s.Quantity.IsZero() {
		return ErrInvalidOrderQuantity
	}

	return nil
}
