package reconcile

import (
	"time"

	"tradebook/internal/domain"

	"github.com/shopspring/decimal"
)

// WorkingState is the running state of one instrument in one book.
// NetPosition is signed: positive is long, negative is short.
type WorkingState struct {
	Description    string
	NetPosition    decimal.Decimal
	CostBasis      decimal.Decimal
	FirstTradeDate *time.Time
	LastTradeDate  *time.Time
	TradeCount     int
}

// Step folds a single transaction into state and returns the new state.
// The class of the transaction picks the state machine; ignored actions
// leave the state untouched.
func Step(state WorkingState, t domain.Transaction) WorkingState {
	action, class := domain.Classify(t.Action)
	date, ok := t.TradeDate()
	c := classifiedTransaction{Transaction: t, action: action, date: date, hasDate: ok}

	switch class {
	case domain.InstrumentClass_Equity:
		return stepEquity(state, c)
	case domain.InstrumentClass_Option:
		return stepOption(state, c)
	}
	return state
}

// record does the bookkeeping every transaction gets, whether or not it
// moves the position.
func (s WorkingState) record(c classifiedTransaction) WorkingState {
	if s.TradeCount == 0 {
		s.Description = c.Description
	}
	s.TradeCount++
	if c.hasDate {
		d := c.date
		if s.FirstTradeDate == nil || d.Before(*s.FirstTradeDate) {
			s.FirstTradeDate = &d
		}
		if s.LastTradeDate == nil || d.After(*s.LastTradeDate) {
			s.LastTradeDate = &d
		}
	}
	return s
}

func (s WorkingState) open(qty, price decimal.Decimal, sign int) WorkingState {
	if sign > 0 {
		s.NetPosition = s.NetPosition.Add(qty)
	} else {
		s.NetPosition = s.NetPosition.Sub(qty)
	}
	s.CostBasis = s.CostBasis.Add(qty.Mul(price))
	return s
}

// shrink scales cost down to what remains open after closing closed
// units out of prior. prior is a magnitude.
func shrink(cost, prior, closed decimal.Decimal) decimal.Decimal {
	if prior.IsZero() {
		return cost
	}
	return cost.Mul(prior.Sub(closed)).Div(prior)
}

// resolvePrice uses the explicit price when there is one, otherwise the
// per-unit price implied by the cash amount.
func resolvePrice(c classifiedTransaction, qty decimal.Decimal) decimal.Decimal {
	if c.Price != nil && !c.Price.IsZero() {
		return *c.Price
	}
	if qty.IsPositive() {
		return c.Amount.Abs().Div(qty)
	}
	return decimal.Zero
}

func (s WorkingState) isOpen() bool {
	return s.NetPosition.Abs().GreaterThan(closedPositionThreshold)
}

func (s WorkingState) toOpenPosition(symbol string, class domain.InstrumentClass) domain.OpenPosition {
	quantity := s.NetPosition.Abs()
	side := domain.Side_Long
	if s.NetPosition.IsNegative() {
		side = domain.Side_Short
	}
	return domain.OpenPosition{
		Symbol:         symbol,
		Description:    s.Description,
		Class:          class,
		Side:           side,
		Quantity:       quantity,
		AvgCostBasis:   s.CostBasis.Div(quantity),
		TotalCost:      s.CostBasis,
		FirstTradeDate: s.FirstTradeDate,
		LastTradeDate:  s.LastTradeDate,
		TradeCount:     s.TradeCount,
	}
}
