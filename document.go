package fundflow

import (
	"time"

	"github.com/google/uuid"
)

// displayDateLayout is the format used for the human readable date carried by
// income and expense records. It is display data, never parsed back.
const displayDateLayout = "1/2/2006"

// Income is a single income entry. It is immutable once created, except by
// deletion.
type Income struct {
	ID        string  `json:"id"`
	Source    string  `json:"source"`
	Amount    float64 `json:"amount"`
	Date      string  `json:"date"`
	CreatedAt int64   `json:"createdAt"`
}

// Container is a named savings bucket with a running balance.
type Container struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Balance   float64 `json:"balance"`
	CreatedAt int64   `json:"createdAt"`
}

// Expense is a single expense entry. It is immutable once created, except by
// deletion.
type Expense struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
	CreatedAt   int64   `json:"createdAt"`
}

// Document is the single persisted aggregate. It exclusively owns every
// record; there are no cross-record references.
//
// After Migrate, the three slices are never nil and LegacyIncome is always
// nil.
type Document struct {
	Incomes    []Income    `json:"incomes"`
	Containers []Container `json:"containers"`
	Expenses   []Expense   `json:"expenses"`

	ClearedTithe    float64 `json:"clearedTithe"`
	ClearedOffering float64 `json:"clearedOffering"`
	ClearedCharity  float64 `json:"clearedCharity"`

	// LegacyIncome is the singular income figure persisted by early versions.
	// Migrate consumes it; it never survives a write.
	LegacyIncome *float64 `json:"income,omitempty"`
}

// NewDocument returns an empty document satisfying all invariants.
func NewDocument() Document {
	return Document{
		Incomes:    []Income{},
		Containers: []Container{},
		Expenses:   []Expense{},
	}
}

// Clone returns a deep copy of the document, so callers can hold or mutate it
// without aliasing the store's state.
func (d Document) Clone() Document {
	c := d
	c.Incomes = append([]Income{}, d.Incomes...)
	c.Containers = append([]Container{}, d.Containers...)
	c.Expenses = append([]Expense{}, d.Expenses...)
	if d.LegacyIncome != nil {
		v := *d.LegacyIncome
		c.LegacyIncome = &v
	}
	return c
}

// FindContainer returns the container with this id, or nil if unknown.
func (d *Document) FindContainer(id string) *Container {
	for i := range d.Containers {
		if d.Containers[i].ID == id {
			return &d.Containers[i]
		}
	}
	return nil
}

// newID returns a unique record id. Early versions derived ids from the
// current millisecond, which collides for two records created in the same
// millisecond; random uuids remove that hazard.
func newID() string { return uuid.NewString() }

// displayDate formats t the way records carry their date field.
func displayDate(t time.Time) string { return t.Format(displayDateLayout) }
