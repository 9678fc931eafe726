package orderbook

import (
	"sync"

	"github.com/GenYuLi/go-orderbook/types/avl"
	"github.com/GenYuLi/go-orderbook/types/list"
)

// Allocator is an object encapsulating all used objects allocation using sync.Pool internally.
type Allocator struct {

	// Price levels
	priceLevels sync.Pool

	// Orders
	orders sync.Pool

	// Pools used by containers
	priceLevelNodes    sync.Pool // used by avl.Tree[Uint, *PriceLevel]
	orderQueueElements sync.Pool // used by list.List[*Order]
}

// NewAllocator creates and returns new Allocator instance.
func NewAllocator() *Allocator {
	a := new(Allocator)
	// Price levels
	a.priceLevels = sync.Pool{New: func() any {
		return NewPriceLevel(a)
	}}
	// Orders
	a.orders = sync.Pool{New: func() any {
		return new(Order)
	}}
	// Pools used by containers
	a.priceLevelNodes = sync.Pool{New: func() any {
		return new(avl.Node[Uint, *PriceLevel])
	}}
	a.orderQueueElements = sync.Pool{New: func() any {
		return new(list.Element[*Order])
	}}
	return a
}

// GetPriceLevel allocates PriceLevel instance.
func (a *Allocator) GetPriceLevel() *PriceLevel {
	return a.priceLevels.Get().(*PriceLevel)
}

// PutPriceLevel releases PriceLevel instance.
func (a *Allocator) PutPriceLevel(priceLevel *PriceLevel) {
	// Clean up the instance before releasing
	priceLevel.Clean()
	a.priceLevels.Put(priceLevel)
}

// GetOrder allocates Order instance.
func (a *Allocator) GetOrder() *Order {
	return a.orders.Get().(*Order)
}

// PutOrder releases Order instance.
func (a *Allocator) PutOrder(order *Order) {
	// Clean up the instance before releasing
	*order = Order{}
	a.orders.Put(order)
}
