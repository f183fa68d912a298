package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var tradeDateLayouts = []string{
	"1/2/2006",
	"2006-01-02",
}

// Transaction is one normalized line of a brokerage ledger. Quantity,
// Price and FeesAndComm are nil when the broker left them blank.
type Transaction struct {
	ID          string
	Date        string
	Action      string
	Symbol      string
	Description string
	Quantity    *decimal.Decimal
	Price       *decimal.Decimal
	FeesAndComm *decimal.Decimal
	Amount      decimal.Decimal
	AcctgRuleCd string
}

// DateKey is the leading date token, without any "as of" annotation.
func (t Transaction) DateKey() string {
	return strings.Split(strings.TrimSpace(t.Date), " ")[0]
}

// TradeDate parses DateKey. ok is false when the date can't be read.
func (t Transaction) TradeDate() (time.Time, bool) {
	return ParseTradeDate(t.Date)
}

func ParseTradeDate(s string) (time.Time, bool) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return time.Time{}, false
	}
	for _, layout := range tradeDateLayouts {
		d, err := time.Parse(layout, fields[0])
		if err == nil {
			return d, true
		}
	}
	return time.Time{}, false
}

func (t Transaction) QuantityOrZero() decimal.Decimal {
	if t.Quantity == nil {
		return decimal.Zero
	}
	return *t.Quantity
}

func (t Transaction) FeesOrZero() decimal.Decimal {
	if t.FeesAndComm == nil {
		return decimal.Zero
	}
	return *t.FeesAndComm
}

// TransactionFile is a full brokerage export: header totals plus every line.
type TransactionFile struct {
	FromDate                string
	ToDate                  string
	TotalTransactionsAmount decimal.Decimal
	TotalFeesAndCommAmount  decimal.Decimal
	Transactions            []Transaction
}

func DecimalPtr(d decimal.Decimal) *decimal.Decimal {
	return &d
}
