package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"tradebook/internal/domain"
	"tradebook/internal/summary"

	"github.com/google/subcommands"
	md "github.com/nao1215/markdown"
	"github.com/shopspring/decimal"
)

type symbolsCmd struct {
	limit int
}

func (*symbolsCmd) Name() string     { return "symbols" }
func (*symbolsCmd) Synopsis() string { return "break a ledger down by symbol" }
func (*symbolsCmd) Usage() string {
	return `tradebook symbols [-n <limit>] <file>

  Prints buy and sell totals for each symbol, most active first.
`
}

func (c *symbolsCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.limit, "n", 0, "show only the n most active symbols (0 for all)")
}

func (c *symbolsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "expected exactly one ledger file")
		return subcommands.ExitUsageError
	}

	file, err := loadLedger(f.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	err = writeSymbolsMarkdown(os.Stdout, file.Transactions, c.limit)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func optionalCurrency(d *decimal.Decimal) string {
	if d == nil {
		return "-"
	}
	return formatCurrency(*d)
}

func writeSymbolsMarkdown(w io.Writer, txs []domain.Transaction, limit int) error {
	symbols := summary.SymbolSummaries(txs)
	if limit > 0 && limit < len(symbols) {
		symbols = symbols[:limit]
	}

	rows := [][]string{}
	for _, s := range symbols {
		rows = append(rows, []string{
			s.Symbol,
			strconv.Itoa(s.TransactionCount),
			formatQuantity(s.TotalBuyQuantity),
			formatQuantity(s.TotalSellQuantity),
			optionalCurrency(s.AvgBuyPrice),
			optionalCurrency(s.AvgSellPrice),
			formatCurrency(s.NetAmount),
			formatCurrency(s.TotalFees),
		})
	}

	doc := md.NewMarkdown(w)
	doc.H1("Symbols")
	doc.Table(md.TableSet{
		Header:    []string{"Symbol", "Trades", "Bought", "Sold", "Avg Buy", "Avg Sell", "Net", "Fees"},
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight},
		Rows:      rows,
	})
	return doc.Build()
}
