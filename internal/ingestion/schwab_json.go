package ingestion

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"tradebook/internal/domain"
)

type rawBrokerageTransaction struct {
	Date        string `json:"Date"`
	Action      string `json:"Action"`
	Symbol      string `json:"Symbol"`
	Description string `json:"Description"`
	Quantity    string `json:"Quantity"`
	Price       string `json:"Price"`
	FeesAndComm string `json:"Fees & Comm"`
	Amount      string `json:"Amount"`
	AcctgRuleCd string `json:"AcctgRuleCd"`
}

type rawTransactionFile struct {
	FromDate                string                    `json:"FromDate"`
	ToDate                  string                    `json:"ToDate"`
	TotalTransactionsAmount string                    `json:"TotalTransactionsAmount"`
	TotalFeesAndCommAmount  string                    `json:"TotalFeesAndCommAmount"`
	BrokerageTransactions   []rawBrokerageTransaction `json:"BrokerageTransactions"`
}

// ParseSchwabJSON reads a Schwab brokerage JSON export. Every field in
// the export is a string; blank numbers become nil (or zero for amounts).
// A leading UTF-8 byte order mark is skipped.
func ParseSchwabJSON(r io.Reader) (*domain.TransactionFile, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read transaction file: %w", err)
	}

	var raw rawTransactionFile
	err = json.Unmarshal(bytes.TrimPrefix(data, utf8Bom), &raw)
	if err != nil {
		return nil, fmt.Errorf("could not decode transaction file: %w", err)
	}

	transactions := make([]domain.Transaction, len(raw.BrokerageTransactions))
	for i, t := range raw.BrokerageTransactions {
		transactions[i] = domain.Transaction{
			ID:          transactionID(i, t.Date, t.Symbol),
			Date:        t.Date,
			Action:      t.Action,
			Symbol:      t.Symbol,
			Description: t.Description,
			Quantity:    parseOptional(t.Quantity),
			Price:       parseOptional(t.Price),
			FeesAndComm: parseOptional(t.FeesAndComm),
			Amount:      parseAmount(t.Amount),
			AcctgRuleCd: t.AcctgRuleCd,
		}
	}

	return &domain.TransactionFile{
		FromDate:                raw.FromDate,
		ToDate:                  raw.ToDate,
		TotalTransactionsAmount: parseAmount(raw.TotalTransactionsAmount),
		TotalFeesAndCommAmount:  parseAmount(raw.TotalFeesAndCommAmount),
		Transactions:            transactions,
	}, nil
}

func transactionID(index int, date, symbol string) string {
	if symbol == "" {
		symbol = "none"
	}
	return fmt.Sprintf("txn-%d-%s-%s", index, date, symbol)
}
