package ingestion

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	tradebook_errors "tradebook/internal"
	"tradebook/internal/domain"
)

var requiredColumns = []string{
	"date",
	"action",
	"symbol",
	"quantity",
	"price",
	"amount",
}

var optionalColumns = []string{
	"description",
	"fees_&_comm",
}

var knownColumns = append(append([]string{}, requiredColumns...), optionalColumns...)

func normalizeHeader(h string) string {
	h = strings.TrimPrefix(h, "\ufeff")
	h = strings.ToLower(strings.TrimSpace(h))
	return strings.ReplaceAll(h, " ", "_")
}

func determineColumnOrder(headerRow []string) (map[string]int, error) {
	columnIndices := map[string]int{}
	for i, h := range headerRow {
		h = normalizeHeader(h)
		for _, c := range knownColumns {
			if h == c {
				columnIndices[h] = i
			}
		}
	}

	for _, rc := range requiredColumns {
		if _, ok := columnIndices[rc]; !ok {
			return nil, tradebook_errors.ErrMissingColumn{Column: rc}
		}
	}

	return columnIndices, nil
}

// isHeader reports whether a row looks like the column header. Older
// exports put a title line above it.
func isHeader(row []string) bool {
	hasDate, hasAction := false, false
	for _, h := range row {
		switch normalizeHeader(h) {
		case "date":
			hasDate = true
		case "action":
			hasAction = true
		}
	}
	return hasDate && hasAction
}

// ParseSchwabCSV reads a Schwab transaction history CSV export. Rows
// before the header and the trailing totals row are skipped.
func ParseSchwabCSV(r io.Reader) ([]domain.Transaction, error) {
	csvFile := csv.NewReader(r)
	csvFile.FieldsPerRecord = -1
	csvFile.LazyQuotes = true

	records, err := csvFile.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv file: %w", err)
	}

	headerIndex := -1
	for i, row := range records {
		if isHeader(row) {
			headerIndex = i
			break
		}
	}
	if headerIndex < 0 {
		return nil, tradebook_errors.ErrMissingColumn{Column: "date"}
	}

	ordering, err := determineColumnOrder(records[headerIndex])
	if err != nil {
		return nil, err
	}

	field := func(record []string, column string) string {
		i, ok := ordering[column]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	transactions := []domain.Transaction{}
	for lineNo, record := range records[headerIndex+1:] {
		if isBlank(record) {
			continue
		}
		date := field(record, "date")
		if strings.HasPrefix(strings.ToLower(date), "transactions total") {
			continue
		}
		if len(record) <= ordering["action"] {
			return nil, tradebook_errors.ErrMalformedRecord{
				Line:    headerIndex + lineNo + 2,
				Message: fmt.Sprintf("expected at least %d fields, got %d", ordering["action"]+1, len(record)),
			}
		}

		symbol := field(record, "symbol")
		transactions = append(transactions, domain.Transaction{
			ID:          transactionID(len(transactions), date, symbol),
			Date:        date,
			Action:      field(record, "action"),
			Symbol:      symbol,
			Description: field(record, "description"),
			Quantity:    parseOptional(field(record, "quantity")),
			Price:       parseOptional(field(record, "price")),
			FeesAndComm: parseOptional(field(record, "fees_&_comm")),
			Amount:      parseAmount(field(record, "amount")),
		})
	}

	return transactions, nil
}

func isBlank(record []string) bool {
	for _, f := range record {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
