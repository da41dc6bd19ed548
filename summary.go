package fundflow

import "fmt"

// LevyRate is the share of total income owed to each levy.
const LevyRate = 0.10

// Levy identifies one of the three mandatory deductions.
type Levy string

const (
	Tithe    Levy = "tithe"
	Offering Levy = "offering"
	Charity  Levy = "charity"
)

// ParseLevy parses a string into a Levy.
func ParseLevy(s string) (Levy, error) {
	switch Levy(s) {
	case Tithe, Offering, Charity:
		return Levy(s), nil
	default:
		return "", fmt.Errorf("unknown levy: %q", s)
	}
}

// Summary holds every figure derived from a document. All fields are
// recomputed from scratch on each call to Summarize; nothing here is stored.
type Summary struct {
	TotalIncome float64

	// Owed amounts: 10% of total income each, independent of clearing.
	TitheOwed    float64
	OfferingOwed float64
	CharityOwed  float64

	// Outstanding amounts: the owed portion not yet cleared, floored at 0.
	Tithe    float64
	Offering float64
	Charity  float64

	// TotalDeductions is always the owed amount, not the outstanding one:
	// clearing a levy settles the debt but does not return the money to the
	// spendable balance.
	TotalDeductions float64

	TotalInContainers  float64
	TotalExpenses      float64
	AvailableRemainder float64
}

// Summarize computes the derived figures for a document. It is pure and does
// not modify doc.
func Summarize(doc Document) Summary {
	var s Summary
	for _, inc := range doc.Incomes {
		s.TotalIncome += inc.Amount
	}

	s.TitheOwed = s.TotalIncome * LevyRate
	s.OfferingOwed = s.TotalIncome * LevyRate
	s.CharityOwed = s.TotalIncome * LevyRate
	s.TotalDeductions = s.TitheOwed + s.OfferingOwed + s.CharityOwed

	s.Tithe = outstanding(s.TitheOwed, doc.ClearedTithe)
	s.Offering = outstanding(s.OfferingOwed, doc.ClearedOffering)
	s.Charity = outstanding(s.CharityOwed, doc.ClearedCharity)

	for _, c := range doc.Containers {
		s.TotalInContainers += c.Balance
	}
	for _, e := range doc.Expenses {
		s.TotalExpenses += e.Amount
	}

	s.AvailableRemainder = s.TotalIncome - s.TotalDeductions - s.TotalInContainers - s.TotalExpenses
	return s
}

// Outstanding returns the uncleared portion of the given levy.
func (s Summary) Outstanding(l Levy) float64 {
	switch l {
	case Tithe:
		return s.Tithe
	case Offering:
		return s.Offering
	case Charity:
		return s.Charity
	default:
		return 0
	}
}

func outstanding(owed, cleared float64) float64 {
	if out := owed - cleared; out > 0 {
		return out
	}
	return 0
}
