package orderbook

import (
	"errors"
)

// Errors used by the package.
var (
	ErrPriceLevelDuplicate  = errors.New("price level is duplicated")
	ErrPriceLevelNotFound   = errors.New("price level is not found")
	ErrInvalidOrderSide     = errors.New("invalid order side")
	ErrInvalidOrderType     = errors.New("invalid order type")
	ErrInvalidOrderPrice    = errors.New("invalid order price")
	ErrInvalidOrderQuantity = errors.New("invalid order quantity")
)
