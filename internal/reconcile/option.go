package reconcile

import (
	"tradebook/internal/domain"

	"github.com/shopspring/decimal"
)

// stepOption never reverses sides within a single transaction; closes
// are capped at the open quantity.
func stepOption(s WorkingState, c classifiedTransaction) WorkingState {
	s = s.record(c)

	qty := c.QuantityOrZero()
	price := resolvePrice(c, qty)

	switch c.action {
	case domain.Action_BuyToOpen:
		s = s.open(qty, price, 1)

	case domain.Action_SellToClose:
		closeQty := decimal.Min(qty, s.NetPosition)
		if s.NetPosition.IsPositive() {
			s.CostBasis = shrink(s.CostBasis, s.NetPosition, closeQty)
		}
		s.NetPosition = s.NetPosition.Sub(closeQty)

	case domain.Action_SellToOpen:
		s = s.open(qty, price, -1)

	case domain.Action_BuyToClose:
		short := s.NetPosition.Abs()
		closeQty := decimal.Min(qty, short)
		if s.NetPosition.IsNegative() {
			s.CostBasis = shrink(s.CostBasis, short, closeQty)
		}
		s.NetPosition = s.NetPosition.Add(closeQty)
	}

	return s
}
