package fundflow

import "time"

// LegacyIncomeID is the fixed id of the income record synthesized from the
// legacy singular income field. Fixed so the migration stays reproducible.
const LegacyIncomeID = "legacy-income"

// Migrate normalizes a document decoded from any previously persisted shape
// into the current one. It is idempotent: Migrate(Migrate(d)) == Migrate(d).
//
// healed reports whether the input carried legacy state that was upgraded, in
// which case the caller should persist the result immediately so the upgrade
// happens only once.
func Migrate(doc Document) (migrated Document, healed bool) {
	// The legacy shape stored one singular income figure. When no income
	// records exist yet, it becomes a single synthesized record; when records
	// already exist the figure is discarded, never merged, to avoid double
	// counting.
	if doc.LegacyIncome != nil {
		if legacy := *doc.LegacyIncome; legacy > 0 && len(doc.Incomes) == 0 {
			now := time.Now()
			doc.Incomes = []Income{{
				ID:        LegacyIncomeID,
				Source:    "Initial Income",
				Amount:    legacy,
				Date:      displayDate(now),
				CreatedAt: now.UnixMilli(),
			}}
		}
		doc.LegacyIncome = nil
		healed = true
	}

	if doc.Incomes == nil {
		doc.Incomes = []Income{}
	}
	if doc.Containers == nil {
		doc.Containers = []Container{}
	}
	if doc.Expenses == nil {
		doc.Expenses = []Expense{}
	}
	return doc, healed
}
