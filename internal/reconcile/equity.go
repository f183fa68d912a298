package reconcile

import (
	"tradebook/internal/domain"

	"github.com/shopspring/decimal"
)

func stepEquity(s WorkingState, c classifiedTransaction) WorkingState {
	s = s.record(c)

	qty := c.QuantityOrZero()
	price := resolvePrice(c, qty)

	switch c.action {
	case domain.Action_Buy, domain.Action_BuyToCover:
		if !s.NetPosition.IsNegative() {
			return s.open(qty, price, 1)
		}
		short := s.NetPosition.Abs()
		coverQty := decimal.Min(qty, short)
		s.CostBasis = shrink(s.CostBasis, short, coverQty)
		s.NetPosition = s.NetPosition.Add(coverQty)
		if remainder := qty.Sub(coverQty); remainder.IsPositive() {
			s = s.open(remainder, price, 1)
		}

	case domain.Action_Sell:
		if !s.NetPosition.IsPositive() {
			return s.open(qty, price, -1)
		}
		long := s.NetPosition
		sellQty := decimal.Min(qty, long)
		s.CostBasis = shrink(s.CostBasis, long, sellQty)
		s.NetPosition = s.NetPosition.Sub(sellQty)
		if remainder := qty.Sub(sellQty); remainder.IsPositive() {
			s = s.open(remainder, price, -1)
		}

	case domain.Action_SellShort:
		// no reversal handling: a short sale while long just layers a
		// short delta on top of the long position.
		s = s.open(qty, price, -1)
	}

	return s
}
