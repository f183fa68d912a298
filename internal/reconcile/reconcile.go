// Package reconcile rebuilds open positions from a raw brokerage ledger.
//
// Equity and option lines are folded through two independent state
// machines, in trade-date order, into per-symbol net position and
// average cost. Nothing is persisted and no state is shared between
// calls, so it is safe to call concurrently.
package reconcile

import (
	"sort"

	"tradebook/internal/domain"

	"github.com/shopspring/decimal"
)

// positions within this distance of zero are closed.
var closedPositionThreshold = decimal.New(1, -3)

// book holds the working state of one instrument class, keyed by symbol.
// symbols keeps first-seen order so output is deterministic.
type book struct {
	class   domain.InstrumentClass
	states  map[string]WorkingState
	symbols []string
}

func newBook(class domain.InstrumentClass) book {
	return book{
		class:   class,
		states:  map[string]WorkingState{},
		symbols: []string{},
	}
}

func (b book) apply(c classifiedTransaction) book {
	state, ok := b.states[c.Symbol]
	if !ok {
		b.symbols = append(b.symbols, c.Symbol)
	}
	if b.class == domain.InstrumentClass_Option {
		b.states[c.Symbol] = stepOption(state, c)
	} else {
		b.states[c.Symbol] = stepEquity(state, c)
	}
	return b
}

// fold is a left fold of sorted transactions into a book.
func fold(class domain.InstrumentClass, txs []classifiedTransaction) book {
	b := newBook(class)
	for _, c := range txs {
		b = b.apply(c)
	}
	return b
}

func (b book) openPositions() []domain.OpenPosition {
	out := []domain.OpenPosition{}
	for _, symbol := range b.symbols {
		state := b.states[symbol]
		if !state.isOpen() {
			continue
		}
		out = append(out, state.toOpenPosition(symbol, b.class))
	}
	return out
}

// Result is the output of a reconciliation along with counts of what
// went into it.
type Result struct {
	Positions          []domain.OpenPosition
	EquityTransactions int
	OptionTransactions int
	Ignored            int
}

// Reconcile computes the open positions implied by txs. txs is not
// modified and may be in any order.
func Reconcile(txs []domain.Transaction) Result {
	equityTxs, optionTxs, ignored := partition(txs)

	equity := fold(domain.InstrumentClass_Equity, equityTxs)
	option := fold(domain.InstrumentClass_Option, optionTxs)

	positions := append(equity.openPositions(), option.openPositions()...)
	sort.SliceStable(positions, func(i, j int) bool {
		return positions[i].TotalCost.GreaterThan(positions[j].TotalCost)
	})

	return Result{
		Positions:          positions,
		EquityTransactions: len(equityTxs),
		OptionTransactions: len(optionTxs),
		Ignored:            ignored,
	}
}

// OpenPositions returns every instrument with a non-zero net position,
// most expensive first.
func OpenPositions(txs []domain.Transaction) []domain.OpenPosition {
	return Reconcile(txs).Positions
}
