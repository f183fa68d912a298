package tradebook_errors

import (
	"fmt"

	"github.com/google/uuid"
)

type ErrMissingColumn struct {
	Column string
}

func (e ErrMissingColumn) Error() string {
	return fmt.Sprintf("missing required column '%s'", e.Column)
}

// ErrMalformedRecord is returned when a ledger row can't be read at all,
// as opposed to a single blank or garbled field.
type ErrMalformedRecord struct {
	Line    int
	Message string
}

func (e ErrMalformedRecord) Error() string {
	return fmt.Sprintf("malformed record on line %d: %s", e.Line, e.Message)
}

type ErrUnknownPortfolio struct {
	PortfolioID uuid.UUID
}

func (e ErrUnknownPortfolio) Error() string {
	return fmt.Sprintf("portfolio %s does not exist", e.PortfolioID.String())
}

// ErrInvalidLedger wraps a failure to read an uploaded ledger file.
type ErrInvalidLedger struct {
	Name string
	Err  error
}

func (e ErrInvalidLedger) Error() string {
	return fmt.Sprintf("could not read ledger %s: %s", e.Name, e.Err.Error())
}

func (e ErrInvalidLedger) Unwrap() error {
	return e.Err
}
