package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Side string

const (
	Side_Long  Side = "long"
	Side_Short Side = "short"
)

// OpenPosition is what's left of an instrument after folding its whole
// transaction history. Quantity is always positive; Side carries the sign.
type OpenPosition struct {
	Symbol       string          `json:"symbol"`
	Description  string          `json:"description"`
	Class        InstrumentClass `json:"class"`
	Side         Side            `json:"side"`
	Quantity     decimal.Decimal `json:"quantity"`
	AvgCostBasis decimal.Decimal `json:"avgCostBasis"`
	// TotalCost is attributed to the open quantity only, not to
	// everything ever traded.
	TotalCost      decimal.Decimal `json:"totalCost"`
	FirstTradeDate *time.Time      `json:"firstTradeDate"`
	LastTradeDate  *time.Time      `json:"lastTradeDate"`
	TradeCount     int             `json:"tradeCount"`
}
