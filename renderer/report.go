// Package renderer renders documents and their derived figures as markdown.
package renderer

import (
	"bytes"
	"cmp"
	"fmt"
	"slices"

	"github.com/fundflow/fundflow"
	md "github.com/nao1215/markdown"
)

// SummaryMarkdown renders the derived aggregates as a compact markdown
// summary.
func SummaryMarkdown(s *fundflow.Summary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("FundFlow Summary")
	doc.PlainText(fmt.Sprintf("Available Remainder: **%s**", Currency(s.AvailableRemainder)))

	doc.H2("Levies")
	doc.Table(md.TableSet{
		Header: []string{"Levy", "Owed (10%)", "Outstanding"},
		Rows: [][]string{
			{"Tithe", Currency(s.TitheOwed), Currency(s.Tithe)},
			{"Offering", Currency(s.OfferingOwed), Currency(s.Offering)},
			{"Charity", Currency(s.CharityOwed), Currency(s.Charity)},
		},
	})

	doc.H2("Breakdown")
	doc.Table(md.TableSet{
		Header: []string{"Figure", "Amount"},
		Rows: [][]string{
			{"Total Income", Currency(s.TotalIncome)},
			{"Mandatory Deductions", Currency(s.TotalDeductions)},
			{"Total Savings Allocated", Currency(s.TotalInContainers)},
			{"Total Expenses", Currency(s.TotalExpenses)},
			{"Available Remainder", Currency(s.AvailableRemainder)},
		},
	})

	return doc.String()
}

// ReportMarkdown renders the full multi-section financial report: summary,
// income breakdown, savings buckets and expense history.
func ReportMarkdown(document *fundflow.Document, s *fundflow.Summary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("FundFlow Financial Report")

	doc.H2("Summary")
	doc.Table(md.TableSet{
		Header: []string{"Figure", "Amount"},
		Rows: [][]string{
			{"Total Income", Currency(s.TotalIncome)},
			{"Tithe (10%)", Currency(s.TitheOwed)},
			{"Offering (10%)", Currency(s.OfferingOwed)},
			{"Charity (10%)", Currency(s.CharityOwed)},
			{"Mandatory Deductions", Currency(s.TotalDeductions)},
			{"Total Savings Allocated", Currency(s.TotalInContainers)},
			{"Total Expenses", Currency(s.TotalExpenses)},
			{"Available Remainder", Currency(s.AvailableRemainder)},
		},
	})

	doc.H2("Income")
	if len(document.Incomes) == 0 {
		doc.PlainText("No income logged yet.")
	} else {
		rows := make([][]string, 0, len(document.Incomes))
		for _, inc := range document.Incomes {
			rows = append(rows, []string{inc.Source, inc.Date, Currency(inc.Amount)})
		}
		doc.Table(md.TableSet{
			Header: []string{"Source", "Date", "Amount"},
			Rows:   rows,
		})
	}

	doc.H2("Savings Buckets")
	if len(document.Containers) == 0 {
		doc.PlainText("No buckets created yet.")
	} else {
		rows := make([][]string, 0, len(document.Containers))
		for _, c := range document.Containers {
			rows = append(rows, []string{c.Name, Currency(c.Balance)})
		}
		doc.Table(md.TableSet{
			Header: []string{"Bucket", "Balance"},
			Rows:   rows,
		})
	}

	doc.H2("Expense History")
	if len(document.Expenses) == 0 {
		doc.PlainText("No expenses logged.")
	} else {
		// Newest first, the way the expense history is browsed.
		expenses := slices.Clone(document.Expenses)
		slices.SortStableFunc(expenses, func(a, b fundflow.Expense) int {
			return cmp.Compare(b.CreatedAt, a.CreatedAt)
		})
		rows := make([][]string, 0, len(expenses))
		for _, e := range expenses {
			rows = append(rows, []string{e.Description, e.Date, "-" + Currency(e.Amount)})
		}
		doc.Table(md.TableSet{
			Header: []string{"Description", "Date", "Amount"},
			Rows:   rows,
		})
	}

	return doc.String()
}
