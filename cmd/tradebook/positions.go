package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"tradebook/internal/domain"
	"tradebook/internal/reconcile"

	"github.com/google/subcommands"
	md "github.com/nao1215/markdown"
	"github.com/shopspring/decimal"
)

type positionsCmd struct {
	asJSON bool
}

func (*positionsCmd) Name() string     { return "positions" }
func (*positionsCmd) Synopsis() string { return "list the positions still open at the end of a ledger" }
func (*positionsCmd) Usage() string {
	return `tradebook positions [-json] <file>

  Replays every trade in a Schwab JSON or CSV export and prints the
  positions left open, most expensive first.
`
}

func (c *positionsCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.asJSON, "json", false, "print positions as JSON instead of a table")
}

func (c *positionsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "expected exactly one ledger file")
		return subcommands.ExitUsageError
	}

	file, err := loadLedger(f.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	result := reconcile.Reconcile(file.Transactions)

	if c.asJSON {
		err = writePositionsJSON(os.Stdout, result.Positions)
	} else {
		err = writePositionsMarkdown(os.Stdout, result)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func writePositionsJSON(w io.Writer, positions []domain.OpenPosition) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(positions)
}

func writePositionsMarkdown(w io.Writer, result reconcile.Result) error {
	doc := md.NewMarkdown(w)
	doc.H1("Open Positions")

	rows := [][]string{}
	total := decimal.Zero
	for _, p := range result.Positions {
		total = total.Add(p.TotalCost)
		rows = append(rows, []string{
			p.Symbol,
			string(p.Class),
			string(p.Side),
			formatQuantity(p.Quantity),
			formatCurrency(p.AvgCostBasis),
			formatCurrency(p.TotalCost),
			formatDate(p.FirstTradeDate),
			formatDate(p.LastTradeDate),
			strconv.Itoa(p.TradeCount),
		})
	}
	doc.Table(md.TableSet{
		Header:    []string{"Symbol", "Class", "Side", "Quantity", "Avg Cost", "Total Cost", "First Trade", "Last Trade", "Trades"},
		Rows:      rows,
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignLeft, md.AlignLeft, md.AlignRight},
	})

	doc.PlainTextf("%d open positions, %s total cost. %d equity and %d option transactions replayed, %d ignored.",
		len(result.Positions),
		formatCurrency(total),
		result.EquityTransactions,
		result.OptionTransactions,
		result.Ignored,
	)
	return doc.Build()
}
