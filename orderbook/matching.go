package orderbook

import (
	"github.com/GenYuLi/go-orderbook/types/avl"
)

// matchOrder matches the incoming aggressor order against resting orders
// of the opposite book side. Matching walks the best opposite price level
// first and its FIFO order queue in sequence order, producing one trade
// per resting counterparty. Every trade executes at the resting order
// price. Matching stops when the aggressor is fully executed, the
// opposite side is empty or the best opposite price no longer crosses the
// aggressor limit price.
func (ob *OrderBook) matchOrder(order *Order, result *MatchResult) error {
	for !order.IsExecuted() {
		// Find the best opposite price level
		var top *avl.Node[Uint, *PriceLevel]
		if order.IsBuy() {
			top = ob.TopAsk()
		} else {
			top = ob.TopBid()
		}
		if top == nil {
			return nil
		}

		priceLevel := top.Value()

		// Check the arbitrage opportunity
		if !order.Crosses(priceLevel.Price()) {
			return nil
		}

		// Execute crossed orders in FIFO order
		for element := priceLevel.Front(); element != nil && !order.IsExecuted(); {
			// The element is unlinked from the queue when the resting
			// order is fully executed, so advance before executing.
			elementNext := element.Next()

			restingOrder := element.Value
			quantity := Min(order.restQuantity, restingOrder.restQuantity)
			if err := ob.executeTrade(restingOrder, order, quantity, result); err != nil {
				return err
			}

			element = elementNext
		}
	}
	return nil
}

// executeTrade executes the trade of given quantity between the resting
// (maker) order and the aggressor (taker) order at the resting order price.
func (ob *OrderBook) executeTrade(maker *Order, taker *Order, quantity Uint, result *MatchResult) error {
	price := maker.price

	ob.lastTradeID++
	trade := Trade{
		ID:           ob.lastTradeID,
		MakerOrderID: maker.id,
		TakerOrderID: taker.id,
		Price:        price,
		Quantity:     quantity,
	}

	// Update the taker order state
	taker.executedQuantity = taker.executedQuantity.Add(quantity)
	taker.restQuantity = taker.restQuantity.Sub(quantity)
	if taker.IsExecuted() {
		taker.status = OrderStatusFilled
	} else {
		taker.status = OrderStatusPartiallyFilled
	}

	// Update the maker order state
	maker.executedQuantity = maker.executedQuantity.Add(quantity)
	maker.restQuantity = maker.restQuantity.Sub(quantity)
	if maker.IsExecuted() {
		maker.status = OrderStatusFilled
		ob.handler.OnDeleteOrder(ob, maker)
	} else {
		maker.status = OrderStatusPartiallyFilled
		ob.handler.OnUpdateOrder(ob, maker)
	}

	// Reduce the maker price level by the executed quantity
	update, err := ob.reduceOrder(maker, quantity)
	if err != nil {
		return err
	}
	ob.handleUpdatePriceLevel(update)

	// Erase the fully executed maker order
	if maker.IsExecuted() {
		ob.orders.Delete(maker.id)
		ob.allocator.PutOrder(maker)
	}

	// Update the trade statistics
	ob.stats.record(quantity)

	result.Trades = append(result.Trades, trade)

	// Call the corresponding handler
	ob.handler.OnExecuteTrade(ob, trade)

	return nil
}
