package orderbook

//go:generate mockgen -destination=mocks/handler.go -package=mockorderbook . Handler
type Handler interface {

	// Orders handlers
	OnAddOrder(book *OrderBook, order *Order)
	OnUpdateOrder(book *OrderBook, order *Order)
	OnDeleteOrder(book *OrderBook, order *Order)

	// Price level handlers
	OnAddPriceLevel(book *OrderBook, update PriceLevelUpdate)
	OnUpdatePriceLevel(book *OrderBook, update PriceLevelUpdate)
	OnDeletePriceLevel(book *OrderBook, update PriceLevelUpdate)

	// Matching handler
	// NOTE: Called AFTER both orders' executed/rest quantities are changed.
	OnExecuteTrade(book *OrderBook, trade Trade)
}

// NopHandler is a Handler implementation ignoring all events. It is used
// when the book is constructed without a handler.
type NopHandler struct{}

var _ Handler = NopHandler{}

func (NopHandler) OnAddOrder(book *OrderBook, order *Order)                    {}
func (NopHandler) OnUpdateOrder(book *OrderBook, order *Order)                 {}
func (NopHandler) OnDeleteOrder(book *OrderBook, order *Order)                 {}
func (NopHandler) OnAddPriceLevel(book *OrderBook, update PriceLevelUpdate)    {}
func (NopHandler) OnUpdatePriceLevel(book *OrderBook, update PriceLevelUpdate) {}
func (NopHandler) OnDeletePriceLevel(book *OrderBook, update PriceLevelUpdate) {}
func (NopHandler) OnExecuteTrade(book *OrderBook, trade Trade)                 {}
