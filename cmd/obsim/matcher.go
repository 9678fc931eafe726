package main

import (
	"fmt"
	"time"

	"github.com/GenYuLi/go-orderbook/orderbook"
)

// Matcher counts order book events produced by the simulated order flow.
type Matcher struct {
	orderUpdates      [3]uint64
	priceLevelUpdates [3]uint64
	executedTrades    uint64
	totalUpdates      uint64
}

func (m *Matcher) OnAddOrder(book *orderbook.OrderBook, order *orderbook.Order) {
	m.orderUpdates[0]++
	m.totalUpdates++
}

func (m *Matcher) OnUpdateOrder(book *orderbook.OrderBook, order *orderbook.Order) {
	m.orderUpdates[1]++
	m.totalUpdates++
}

func (m *Matcher) OnDeleteOrder(book *orderbook.OrderBook, order *orderbook.Order) {
	m.orderUpdates[2]++
	m.totalUpdates++
}

func (m *Matcher) OnAddPriceLevel(book *orderbook.OrderBook, update orderbook.PriceLevelUpdate) {
	m.priceLevelUpdates[0]++
	m.totalUpdates++
}

func (m *Matcher) OnUpdatePriceLevel(book *orderbook.OrderBook, update orderbook.PriceLevelUpdate) {
	m.priceLevelUpdates[1]++
	m.totalUpdates++
}

func (m *Matcher) OnDeletePriceLevel(book *orderbook.OrderBook, update orderbook.PriceLevelUpdate) {
	m.priceLevelUpdates[2]++
	m.totalUpdates++
}

func (m *Matcher) OnExecuteTrade(book *orderbook.OrderBook, trade orderbook.Trade) {
	m.executedTrades++
	m.totalUpdates++
}

func (m *Matcher) PrintStatistics(elapsed time.Duration) {
	fmt.Printf("Added orders: %d\n", m.orderUpdates[0])
	fmt.Printf("Updated orders: %d\n", m.orderUpdates[1])
	fmt.Printf("Deleted orders: %d\n", m.orderUpdates[2])
	fmt.Printf("Added price levels: %d\n", m.priceLevelUpdates[0])
	fmt.Printf("Updated price levels: %d\n", m.priceLevelUpdates[1])
	fmt.Printf("Deleted price levels: %d\n", m.priceLevelUpdates[2])
	fmt.Printf("Executed trades: %d\n", m.executedTrades)
	fmt.Printf("Total updates: %d\n", m.totalUpdates)
	fmt.Printf("Updates per second: %.0f\n", float64(m.totalUpdates)/elapsed.Seconds())
}
