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
)

type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "summarize the cash flows of a ledger" }
func (*summaryCmd) Usage() string {
	return `tradebook summary <file>

  Prints ledger totals and a breakdown by action.
`
}

func (*summaryCmd) SetFlags(*flag.FlagSet) {}

func (*summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "expected exactly one ledger file")
		return subcommands.ExitUsageError
	}

	file, err := loadLedger(f.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	err = writeSummaryMarkdown(os.Stdout, file.Transactions)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func writeSummaryMarkdown(w io.Writer, txs []domain.Transaction) error {
	s := summary.Summarize(txs)
	doc := md.NewMarkdown(w)
	doc.H1("Transaction Summary")

	doc.Table(md.TableSet{
		Header:    []string{"Metric", "Value"},
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Rows: [][]string{
			{"Transactions", strconv.Itoa(s.TotalTransactions)},
			{"Period", fmt.Sprintf("%s to %s", formatDate(s.DateRange.From), formatDate(s.DateRange.To))},
			{"Total Volume", formatCompactCurrency(s.TotalVolume)},
			{"Buy Volume", formatCompactCurrency(s.TotalBuyVolume)},
			{"Sell Volume", formatCompactCurrency(s.TotalSellVolume)},
			{"Fees", formatCurrency(s.TotalFees)},
			{"Net Cash Flow", formatCurrency(s.NetCashFlow)},
			{"Symbols", strconv.Itoa(s.UniqueSymbols)},
		},
	})

	doc.H2("By Action")
	rows := [][]string{}
	for _, a := range summary.ActionSummaries(txs) {
		rows = append(rows, []string{
			a.Action,
			string(domain.Category(a.Action)),
			strconv.Itoa(a.TransactionCount),
			formatCurrency(a.TotalAmount),
			formatCurrency(a.TotalFees),
		})
	}
	doc.Table(md.TableSet{
		Header:    []string{"Action", "Category", "Count", "Amount", "Fees"},
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight},
		Rows:      rows,
	})

	return doc.Build()
}
