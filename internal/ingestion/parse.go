package ingestion

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"tradebook/internal/domain"
)

var ErrUnknownFormat = errors.New("unrecognized transaction file format")

var utf8Bom = []byte{0xEF, 0xBB, 0xBF}

// Parse reads a brokerage export, picking the format from the file
// extension and falling back to sniffing the content.
func Parse(name string, r io.Reader) (*domain.TransactionFile, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json":
		return ParseSchwabJSON(r)
	case ".csv":
		return parseCSVFile(r)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	trimmed := bytes.TrimLeft(bytes.TrimPrefix(data, utf8Bom), " \t\r\n")
	if len(trimmed) == 0 {
		return nil, ErrUnknownFormat
	}
	if trimmed[0] == '{' {
		return ParseSchwabJSON(bytes.NewReader(trimmed))
	}
	return parseCSVFile(bytes.NewReader(trimmed))
}

func parseCSVFile(r io.Reader) (*domain.TransactionFile, error) {
	transactions, err := ParseSchwabCSV(r)
	if err != nil {
		return nil, err
	}
	return &domain.TransactionFile{Transactions: transactions}, nil
}
