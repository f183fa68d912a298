package reconcile

import (
	"sort"
	"time"

	"tradebook/internal/domain"
)

// classifiedTransaction is a ledger line that survived classification,
// with its parsed trade date cached for sorting.
type classifiedTransaction struct {
	domain.Transaction
	action  domain.Action
	date    time.Time
	hasDate bool
}

// partition splits the ledger into the equity and option books. Lines
// without a symbol or with an action outside both vocabularies are only
// counted. Each book is sorted chronologically before it is returned.
func partition(txs []domain.Transaction) (equity, option []classifiedTransaction, ignored int) {
	equity = []classifiedTransaction{}
	option = []classifiedTransaction{}
	for _, t := range txs {
		if t.Symbol == "" {
			ignored++
			continue
		}
		action, class := domain.Classify(t.Action)
		date, ok := t.TradeDate()
		c := classifiedTransaction{
			Transaction: t,
			action:      action,
			date:        date,
			hasDate:     ok,
		}
		switch class {
		case domain.InstrumentClass_Equity:
			equity = append(equity, c)
		case domain.InstrumentClass_Option:
			option = append(option, c)
		default:
			ignored++
		}
	}

	sortChronologically(equity)
	sortChronologically(option)

	return equity, option, ignored
}

// sortChronologically orders by trade date, keeping file order for
// same-day lines since that is the only intraday ordering we have.
// Unreadable dates sort first.
func sortChronologically(txs []classifiedTransaction) {
	sort.SliceStable(txs, func(i, j int) bool {
		return txs[i].date.Before(txs[j].date)
	})
}
