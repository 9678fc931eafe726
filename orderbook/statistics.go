package orderbook

import (
	"sync"
)

// StatisticsTracker accumulates running totals over produced trades.
// Both counters are updated under one lock together with each emitted
// trade, so a reader never observes a trade count inconsistent with the
// matched volume. Readers may run concurrently with each other.
type StatisticsTracker struct {
	mutex  sync.RWMutex
	trades uint64
	volume Uint
}

// TotalTrades returns the amount of trades produced since the last reset.
func (st *StatisticsTracker) TotalTrades() uint64 {
	st.mutex.RLock()
	defer st.mutex.RUnlock()

	return st.trades
}

// TotalVolume returns the total matched quantity since the last reset.
func (st *StatisticsTracker) TotalVolume() Uint {
	st.mutex.RLock()
	defer st.mutex.RUnlock()

	return st.volume
}

// Totals returns both counters as one consistent snapshot.
func (st *StatisticsTracker) Totals() (uint64, Uint) {
	st.mutex.RLock()
	defer st.mutex.RUnlock()

	return st.trades, st.volume
}

// Reset zeroes both counters. Book contents are not affected.
func (st *StatisticsTracker) Reset() {
	st.mutex.Lock()
	defer st.mutex.Unlock()

	st.trades = 0
	st.volume = NewZeroUint()
}

// record accounts one trade of the given quantity.
func (st *StatisticsTracker) record(quantity Uint) {
	st.mutex.Lock()
	defer st.mutex.Unlock()

	st.trades++
	st.volume = st.volume.Add(quantity)
}
