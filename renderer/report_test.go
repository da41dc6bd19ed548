package renderer

import (
	"strings"
	"testing"

	"github.com/fundflow/fundflow"
)

func testDocument() (fundflow.Document, fundflow.Summary) {
	doc := fundflow.NewDocument()
	doc.Incomes = append(doc.Incomes, fundflow.Income{ID: "i1", Source: "Salary", Amount: 1000, Date: "8/1/2026", CreatedAt: 1})
	doc.Containers = append(doc.Containers, fundflow.Container{ID: "c1", Name: "Car", Balance: 200, CreatedAt: 2})
	doc.Expenses = append(doc.Expenses,
		fundflow.Expense{ID: "e1", Description: "Groceries", Amount: 50, Date: "8/2/2026", CreatedAt: 3},
		fundflow.Expense{ID: "e2", Description: "Fuel", Amount: 30, Date: "8/3/2026", CreatedAt: 4},
	)
	return doc, fundflow.Summarize(doc)
}

func TestSummaryMarkdown(t *testing.T) {
	_, sum := testDocument()

	got := SummaryMarkdown(&sum)

	for _, want := range []string{
		"FundFlow Summary",
		"Levies",
		"Tithe", "Offering", "Charity",
		"$100.00", // each levy owed
		"$300.00", // mandatory deductions
		"$420.00", // available remainder: 1000 - 300 - 200 - 80
	} {
		if !strings.Contains(got, want) {
			t.Errorf("summary is missing %q:\n%s", want, got)
		}
	}
}

func TestReportMarkdown_Sections(t *testing.T) {
	doc, sum := testDocument()

	got := ReportMarkdown(&doc, &sum)

	for _, want := range []string{
		"FundFlow Financial Report",
		"Summary",
		"Income",
		"Savings Buckets",
		"Expense History",
		"Salary",
		"Car",
		"Groceries",
		"$1,000.00",
		"-$50.00",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("report is missing %q:\n%s", want, got)
		}
	}

	// Expense history is newest first.
	if strings.Index(got, "Fuel") > strings.Index(got, "Groceries") {
		t.Errorf("expense history is not newest-first:\n%s", got)
	}
}

func TestReportMarkdown_EmptyDocument(t *testing.T) {
	doc := fundflow.NewDocument()
	sum := fundflow.Summarize(doc)

	got := ReportMarkdown(&doc, &sum)

	for _, want := range []string{
		"No income logged yet.",
		"No buckets created yet.",
		"No expenses logged.",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("empty report is missing %q:\n%s", want, got)
		}
	}
}

func TestCurrency(t *testing.T) {
	testCases := []struct {
		in   float64
		want string
	}{
		{0, "$0.00"},
		{1000, "$1,000.00"},
		{19.99, "$19.99"},
		{0.005, "$0.01"},
		{-42.5, "-$42.50"},
	}
	for _, tc := range testCases {
		if got := Currency(tc.in); got != tc.want {
			t.Errorf("Currency(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSignedCurrency(t *testing.T) {
	if got := SignedCurrency(-50); got != "-$50.00" {
		t.Errorf("SignedCurrency(-50) = %q", got)
	}
	if got := SignedCurrency(50); got != "$50.00" {
		t.Errorf("SignedCurrency(50) = %q", got)
	}
}
