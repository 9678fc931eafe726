package orderbook

import (
	"github.com/GenYuLi/go-orderbook/types/list"
)

// PriceLevel contains the FIFO queue of resting orders at one price and
// encapsulates order queue management. The total volume of the queue is
// cached so depth queries never rescan individual orders.
// NOTE: Not thread-safe.
type PriceLevel struct {
	price  Uint
	volume Uint // total rest quantity of entire order queue
	queue  *list.List[*Order]
}

// NewPriceLevel creates and returns new PriceLevel instance.
func NewPriceLevel(allocator *Allocator) *PriceLevel {
	return &PriceLevel{
		queue: list.NewListPooled[*Order](&allocator.orderQueueElements),
	}
}

// Price returns price of the level.
func (pl *PriceLevel) Price() Uint {
	return pl.price
}

// Volume returns total rest quantity of orders queued at the level.
func (pl *PriceLevel) Volume() Uint {
	return pl.volume
}

// Orders returns amount of orders in the queue.
func (pl *PriceLevel) Orders() int {
	return pl.queue.Len()
}

// Front returns the first (earliest accepted) order element of the queue.
func (pl *PriceLevel) Front() *list.Element[*Order] {
	return pl.queue.Front()
}

// Clean cleans the price level by removing all queued orders.
func (pl *PriceLevel) Clean() {
	pl.price = NewZeroUint()
	pl.volume = NewZeroUint()
	pl.queue.Clean()
}
