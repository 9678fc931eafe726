package orderbook

import (
	"fmt"

	"github.com/tidwall/hashmap"

	"github.com/GenYuLi/go-orderbook/types/avl"
)

// OrderBook stores resting buy and sell orders of a single instrument in
// price-time priority and matches incoming orders against them. Bids are
// ordered by highest price first, asks by lowest price first; within one
// price level orders match in acceptance (sequence number) order.
//
// NOTE: Not thread-safe. All mutating operations must be serialized by the
// caller; read-only market data queries may run concurrently with each
// other but not with mutations.
type OrderBook struct {
	// Allocator used by the order book
	allocator *Allocator

	// Optional event callbacks
	handler Handler

	// Bid/Ask price levels
	bids avl.Tree[Uint, *PriceLevel]
	asks avl.Tree[Uint, *PriceLevel]

	// Orders storage maps order id to the resting order
	orders *hashmap.Map[uint64, *Order]

	// Monotonic counters
	lastOrderID  uint64
	lastSequence uint64
	lastTradeID  uint64
	lastUpdateID uint64

	// Running trade statistics
	stats StatisticsTracker
}

// NewOrderBook creates and returns new OrderBook instance.
// A nil handler is replaced with a no-op one.
func NewOrderBook(handler Handler) *OrderBook {
	if handler == nil {
		handler = NopHandler{}
	}
	allocator := NewAllocator()
	return &OrderBook{
		allocator: allocator,
		handler:   handler,
		bids: avl.NewTreePooled[Uint, *PriceLevel](
			func(a, b Uint) int { return -a.Cmp(b) },
			&allocator.priceLevelNodes,
		),
		asks: avl.NewTreePooled[Uint, *PriceLevel](
			func(a, b Uint) int { return a.Cmp(b) },
			&allocator.priceLevelNodes,
		),
		orders: hashmap.New[uint64, *Order](defaultReservedOrderSlots),
	}
}

////////////////////////////////////////////////////////////////
// Order book getters
////////////////////////////////////////////////////////////////

// IsEmpty returns true if the order book has no resting orders.
func (ob *OrderBook) IsEmpty() bool {
	return ob.Size() == 0
}

// Size returns total amount of resting orders in the order book.
func (ob *OrderBook) Size() int {
	return ob.orders.Len()
}

// Order returns the resting order with given id or nil.
func (ob *OrderBook) Order(id uint64) *Order {
	if order, ok := ob.orders.Get(id); ok {
		return order
	}
	return nil
}

// TopBid returns best buy order price level.
func (ob *OrderBook) TopBid() *avl.Node[Uint, *PriceLevel] {
	return ob.bids.MostLeft()
}

// TopAsk returns best sell order price level.
func (ob *OrderBook) TopAsk() *avl.Node[Uint, *PriceLevel] {
	return ob.asks.MostLeft()
}

// TotalTrades returns the amount of trades produced since the last statistics reset.
func (ob *OrderBook) TotalTrades() uint64 {
	return ob.stats.TotalTrades()
}

// TotalVolume returns the total matched quantity since the last statistics reset.
func (ob *OrderBook) TotalVolume() Uint {
	return ob.stats.TotalVolume()
}

// Statistics returns the statistics tracker of the book.
func (ob *OrderBook) Statistics() *StatisticsTracker {
	return &ob.stats
}

// ResetStatistics zeroes trade statistics. Book contents are not affected.
func (ob *OrderBook) ResetStatistics() {
	ob.stats.Reset()
}

////////////////////////////////////////////////////////////////
// Order management
////////////////////////////////////////////////////////////////

// AddOrder accepts the given order submission, matches it against resting
// liquidity and rests the remainder when the spec permits. The returned
// MatchResult carries the final filled/remaining quantities and produced
// trades. Validation errors are reported before any book mutation.
func (ob *OrderBook) AddOrder(spec OrderSpec) (MatchResult, error) {
	if err := spec.Validate(); err != nil {
		return MatchResult{}, err
	}

	order := ob.newOrder(spec)

	// Call the corresponding handler
	ob.handler.OnAddOrder(ob, order)

	result := MatchResult{OrderID: order.id}
	if err := ob.matchOrder(order, &result); err != nil {
		return result, fmt.Errorf("failed to match order (id: %d): %w", order.id, err)
	}

	// Rest the remainder of the limit order
	if !order.IsExecuted() && order.IsLimit() && spec.RestingAllowed {
		if err := ob.restOrder(order); err != nil {
			return result, fmt.Errorf("failed to rest order (id: %d): %w", order.id, err)
		}
	}

	result.FilledQuantity = order.executedQuantity
	result.RemainingQuantity = order.restQuantity
	result.FullyFilled = order.IsExecuted()

	// Discard the order unless it has been rested: market order remainders
	// and non-resting limit remainders are reported, never stored.
	if !order.IsResting() {
		if !order.IsExecuted() {
			order.status = OrderStatusCancelled
		}
		ob.handler.OnDeleteOrder(ob, order)
		ob.allocator.PutOrder(order)
	}

	return result, nil
}

// AddPassiveOrder accepts the given limit order submission and rests it
// without any matching. It is used to seed liquidity; inputs are validated
// exactly as in AddOrder.
func (ob *OrderBook) AddPassiveOrder(spec OrderSpec) (MatchResult, error) {
	if err := spec.Validate(); err != nil {
		return MatchResult{}, err
	}

	// Market orders never rest
	if spec.Type != OrderTypeLimit {
		return MatchResult{}, ErrInvalidOrderType
	}

	order := ob.newOrder(spec)

	// Call the corresponding handler
	ob.handler.OnAddOrder(ob, order)

	result := MatchResult{OrderID: order.id, RemainingQuantity: order.restQuantity}
	if err := ob.restOrder(order); err != nil {
		return result, fmt.Errorf("failed to rest order (id: %d): %w", order.id, err)
	}

	return result, nil
}

// AddOrdersBatch applies AddOrder to every spec sequentially in input
// order, so price-time priority is exactly as if each order was submitted
// individually. Output is index-aligned with the input; a rejected spec
// yields an error entry while subsequent specs still process.
func (ob *OrderBook) AddOrdersBatch(specs []OrderSpec) []BatchResult {
	results := make([]BatchResult, 0, len(specs))
	for _, spec := range specs {
		result, err := ob.AddOrder(spec)
		results = append(results, BatchResult{Result: result, Err: err})
	}
	return results
}

// CancelOrder removes the resting order with given id from the book.
// It returns false if the order is unknown or already terminal; cancelling
// an unknown order is an expected outcome, not an error.
func (ob *OrderBook) CancelOrder(id uint64) bool {
	order, ok := ob.orders.Get(id)
	if !ok {
		return false
	}

	update, err := ob.unlinkOrder(order)
	if err != nil {
		return false
	}
	ob.handleUpdatePriceLevel(update)

	// The remaining quantity stays frozen at cancellation time
	order.status = OrderStatusCancelled

	// Call the corresponding handler
	ob.handler.OnDeleteOrder(ob, order)

	// Erase the order
	ob.orders.Delete(id)

	// Release the order
	ob.allocator.PutOrder(order)

	return true
}

// ModifyOrder replaces the quantity of the resting order with given id.
// The order keeps its id but is re-queued at the back of its price level
// with a fresh sequence number, so it loses time priority. Returns false
// if the order is unknown or the new quantity is not positive.
func (ob *OrderBook) ModifyOrder(id uint64, newQuantity Uint) bool {
	if newQuantity.IsZero() {
		return false
	}

	order, ok := ob.orders.Get(id)
	if !ok {
		return false
	}

	update, err := ob.unlinkOrder(order)
	if err != nil {
		return false
	}
	ob.handleUpdatePriceLevel(update)

	ob.lastSequence++
	order.sequence = ob.lastSequence
	order.quantity = newQuantity
	order.restQuantity = newQuantity
	order.executedQuantity = NewZeroUint()
	order.status = OrderStatusNew

	update, err = ob.linkOrder(order)
	if err != nil {
		return false
	}
	ob.handleUpdatePriceLevel(update)

	// Call the corresponding handler
	ob.handler.OnUpdateOrder(ob, order)

	return true
}

// Clear removes all resting orders from both sides and resets the order
// storage. Trade statistics are kept; use ResetStatistics separately.
func (ob *OrderBook) Clear() {
	// Release all orders
	ob.orders.Scan(func(_ uint64, order *Order) bool {
		ob.handler.OnDeleteOrder(ob, order)
		ob.allocator.PutOrder(order)
		return true
	})
	ob.orders = hashmap.New[uint64, *Order](defaultReservedOrderSlots)

	// Release all price levels
	clean := func(priceLevel *PriceLevel) bool {
		ob.allocator.PutPriceLevel(priceLevel)
		return false
	}
	ob.bids.IteratePostOrder(clean)
	ob.asks.IteratePostOrder(clean)
	ob.bids.Clear()
	ob.asks.Clear()
}

////////////////////////////////////////////////////////////////
// Internal order plumbing
////////////////////////////////////////////////////////////////

// newOrder creates an accepted order from the validated spec, assigning
// the order id and the time-priority sequence number.
func (ob *OrderBook) newOrder(spec OrderSpec) *Order {
	order := ob.allocator.GetOrder()
	ob.lastOrderID++
	ob.lastSequence++
	*order = Order{
		id:           ob.lastOrderID,
		sequence:     ob.lastSequence,
		side:         spec.Side,
		orderType:    spec.Type,
		status:       OrderStatusNew,
		price:        spec.Price,
		quantity:     spec.Quantity,
		restQuantity: spec.Quantity,
	}
	return order
}

// restOrder stores the order and places it into its side of the book.
func (ob *OrderBook) restOrder(order *Order) error {
	ob.orders.Set(order.id, order)
	update, err := ob.linkOrder(order)
	if err != nil {
		return err
	}
	ob.handleUpdatePriceLevel(update)
	return nil
}

// linkOrder appends the order to the FIFO queue of its price level,
// creating the level when it does not exist yet.
func (ob *OrderBook) linkOrder(order *Order) (update PriceLevelUpdate, err error) {
	update.Kind = PriceLevelUpdateKindUpdate
	tree := ob.sideTree(order.side)

	// Find the price level for the order
	node := tree.Find(order.price)

	// Create a new price level if no one found
	if node == nil {
		node, err = ob.addPriceLevel(tree, order.price)
		if err != nil {
			return
		}
		update.Kind = PriceLevelUpdateKindAdd
	}

	// Update the price level volume
	priceLevel := node.Value()
	priceLevel.volume = priceLevel.volume.Add(order.restQuantity)

	// Enqueue the new order to the order queue of the price level
	order.orderQueued = priceLevel.queue.PushBack(order)

	// Cache the price level in the given order
	order.priceLevel = priceLevel

	update = PriceLevelUpdate{
		Kind:   update.Kind,
		Side:   order.side,
		Price:  priceLevel.Price(),
		Volume: priceLevel.Volume(),
		Orders: priceLevel.Orders(),
		Top:    tree.MostLeft() == node,
	}

	return
}

// reduceOrder subtracts the executed quantity from the price level of the
// order, dequeues the order when it is fully executed and deletes the
// level when it becomes empty. The order rest quantity must already be
// decremented by the caller.
func (ob *OrderBook) reduceOrder(order *Order, quantity Uint) (update PriceLevelUpdate, err error) {
	update.Kind = PriceLevelUpdateKindUpdate
	tree := ob.sideTree(order.side)

	priceLevel := order.priceLevel
	if priceLevel == nil {
		err = ErrPriceLevelNotFound
		return
	}

	// Update the price level volume
	priceLevel.volume = priceLevel.volume.Sub(quantity)

	if order.IsExecuted() {
		// Dequeue the empty order from the order queue of the price level
		if _, err = priceLevel.queue.Remove(order.orderQueued); err != nil {
			return
		}
		order.orderQueued = nil

		// Clear the price level cache in the given order
		order.priceLevel = nil
	}

	update = PriceLevelUpdate{
		Kind:   update.Kind,
		Side:   order.side,
		Price:  priceLevel.Price(),
		Volume: priceLevel.Volume(),
		Orders: priceLevel.Orders(),
		Top:    tree.MostLeft() != nil && tree.MostLeft().Value() == priceLevel,
	}

	// Delete the empty price level
	if priceLevel.volume.IsZero() {
		if err = ob.deletePriceLevel(tree, priceLevel.price); err != nil {
			return
		}
		update.Kind = PriceLevelUpdateKindDelete
	}

	return
}

// unlinkOrder removes the resting order from its price level entirely,
// deleting the level when it becomes empty.
func (ob *OrderBook) unlinkOrder(order *Order) (update PriceLevelUpdate, err error) {
	update.Kind = PriceLevelUpdateKindUpdate
	tree := ob.sideTree(order.side)

	priceLevel := order.priceLevel
	if priceLevel == nil {
		err = ErrPriceLevelNotFound
		return
	}

	// Update the price level volume
	priceLevel.volume = priceLevel.volume.Sub(order.restQuantity)

	// Dequeue the removed order from the order queue of the price level
	if _, err = priceLevel.queue.Remove(order.orderQueued); err != nil {
		return
	}
	order.orderQueued = nil

	// Clear the price level cache in the given order
	order.priceLevel = nil

	update = PriceLevelUpdate{
		Kind:   update.Kind,
		Side:   order.side,
		Price:  priceLevel.Price(),
		Volume: priceLevel.Volume(),
		Orders: priceLevel.Orders(),
		Top:    tree.MostLeft() != nil && tree.MostLeft().Value() == priceLevel,
	}

	// Delete the empty price level
	if priceLevel.volume.IsZero() {
		if err = ob.deletePriceLevel(tree, priceLevel.price); err != nil {
			return
		}
		update.Kind = PriceLevelUpdateKindDelete
	}

	return
}

////////////////////////////////////////////////////////////////
// Price levels management
////////////////////////////////////////////////////////////////

func (ob *OrderBook) addPriceLevel(tree *avl.Tree[Uint, *PriceLevel], price Uint) (*avl.Node[Uint, *PriceLevel], error) {
	priceLevel := ob.allocator.GetPriceLevel()
	priceLevel.price = price
	node, err := tree.Add(price, priceLevel)
	if err != nil {
		return nil, ErrPriceLevelDuplicate
	}
	return node, nil
}

func (ob *OrderBook) deletePriceLevel(tree *avl.Tree[Uint, *PriceLevel], price Uint) error {
	priceLevel, err := tree.Remove(price)
	if err != nil {
		return ErrPriceLevelNotFound
	}
	ob.allocator.PutPriceLevel(priceLevel)
	return nil
}

////////////////////////////////////////////////////////////////
// Internal helpers
////////////////////////////////////////////////////////////////

func (ob *OrderBook) sideTree(side OrderSide) *avl.Tree[Uint, *PriceLevel] {
	if side == OrderSideBuy {
		return &ob.bids
	}
	return &ob.asks
}

func (ob *OrderBook) handleUpdatePriceLevel(update PriceLevelUpdate) {
	ob.lastUpdateID++
	update.ID = ob.lastUpdateID
	switch update.Kind {
	case PriceLevelUpdateKindAdd:
		ob.handler.OnAddPriceLevel(ob, update)
	case PriceLevelUpdateKindUpdate:
		ob.handler.OnUpdatePriceLevel(ob, update)
	case PriceLevelUpdateKindDelete:
		ob.handler.OnDeletePriceLevel(ob, update)
	}
}
