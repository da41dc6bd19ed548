package fundflow

import (
	"math"
	"strings"
	"time"
)

// This file implements the mutation API. Every operation follows the same
// cycle: load and migrate the current document, apply one change, persist,
// notify. Invalid input (empty required text, non-finite amount, unknown id
// on update) is a silent no-op: nothing is persisted and no error is raised,
// matching the optimistic form-level validation of the UI this layer serves.

// AddIncome appends a new income record and returns it. Empty source or a
// non-finite amount is a no-op returning the zero Income.
func (s *Store) AddIncome(source string, amount float64) (Income, error) {
	source = strings.TrimSpace(source)
	if source == "" || !isFinite(amount) {
		return Income{}, nil
	}
	now := time.Now()
	inc := Income{
		ID:        newID(),
		Source:    source,
		Amount:    amount,
		Date:      displayDate(now),
		CreatedAt: now.UnixMilli(),
	}
	err := s.update(func(doc *Document) {
		doc.Incomes = append(doc.Incomes, inc)
	})
	if err != nil {
		return Income{}, err
	}
	return inc, nil
}

// DeleteIncome removes the income record with this id. An unknown id leaves
// the records untouched but still persists and notifies.
func (s *Store) DeleteIncome(id string) error {
	return s.update(func(doc *Document) {
		doc.Incomes = deleteByID(doc.Incomes, id, func(i Income) string { return i.ID })
	})
}

// AddContainer appends a new savings container with a zero balance and
// returns it. An empty name is a no-op returning the zero Container.
func (s *Store) AddContainer(name string) (Container, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Container{}, nil
	}
	c := Container{
		ID:        newID(),
		Name:      name,
		CreatedAt: time.Now().UnixMilli(),
	}
	err := s.update(func(doc *Document) {
		doc.Containers = append(doc.Containers, c)
	})
	if err != nil {
		return Container{}, err
	}
	return c, nil
}

// ContainerUpdate holds the container fields an update may overwrite. Nil
// fields are left untouched.
type ContainerUpdate struct {
	Name    *string
	Balance *float64
}

// UpdateContainer merges the partial update into the container with this id.
// An unknown id is a no-op.
func (s *Store) UpdateContainer(id string, updates ContainerUpdate) error {
	return s.update(func(doc *Document) {
		c := doc.FindContainer(id)
		if c == nil {
			return
		}
		if updates.Name != nil {
			c.Name = *updates.Name
		}
		if updates.Balance != nil {
			c.Balance = *updates.Balance
		}
	})
}

// DeleteContainer removes the container with this id.
func (s *Store) DeleteContainer(id string) error {
	return s.update(func(doc *Document) {
		doc.Containers = deleteByID(doc.Containers, id, func(c Container) string { return c.ID })
	})
}

// AddExpense appends a new expense record and returns it. An empty
// description or a non-finite amount is a no-op returning the zero Expense.
func (s *Store) AddExpense(description string, amount float64) (Expense, error) {
	description = strings.TrimSpace(description)
	if description == "" || !isFinite(amount) {
		return Expense{}, nil
	}
	now := time.Now()
	e := Expense{
		ID:          newID(),
		Description: description,
		Amount:      amount,
		Date:        displayDate(now),
		CreatedAt:   now.UnixMilli(),
	}
	err := s.update(func(doc *Document) {
		doc.Expenses = append(doc.Expenses, e)
	})
	if err != nil {
		return Expense{}, err
	}
	return e, nil
}

// DeleteExpense removes the expense record with this id.
func (s *Store) DeleteExpense(id string) error {
	return s.update(func(doc *Document) {
		doc.Expenses = deleteByID(doc.Expenses, id, func(e Expense) string { return e.ID })
	})
}

// ClearedUpdate holds the cleared-levy counters an update may overwrite. Nil
// fields are left untouched. Values are absolute totals, not deltas: the
// caller computes the new counter.
type ClearedUpdate struct {
	Tithe    *float64
	Offering *float64
	Charity  *float64
}

// UpdateClearedDeductions overwrites the provided cleared counters.
func (s *Store) UpdateClearedDeductions(updates ClearedUpdate) error {
	return s.update(func(doc *Document) {
		if updates.Tithe != nil {
			doc.ClearedTithe = *updates.Tithe
		}
		if updates.Offering != nil {
			doc.ClearedOffering = *updates.Offering
		}
		if updates.Charity != nil {
			doc.ClearedCharity = *updates.Charity
		}
	})
}

// Allocate adds delta to the balance of the container with this id. A
// negative delta is a withdrawal and is not prevented. A non-finite delta or
// an unknown id is a no-op.
func (s *Store) Allocate(id string, delta float64) error {
	if !isFinite(delta) {
		return nil
	}
	return s.update(func(doc *Document) {
		if c := doc.FindContainer(id); c != nil {
			c.Balance += delta
		}
	})
}

// ClearLevy marks the full outstanding amount of the levy as settled, adding
// it to the cleared counter. Clearing a levy with nothing outstanding is a
// no-op. The outstanding figure drops to zero; the total deduction in the
// balance formula is unchanged.
func (s *Store) ClearLevy(levy Levy) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc := s.load()
	sum := Summarize(doc)
	out := sum.Outstanding(levy)
	if out <= 0 {
		return nil
	}
	switch levy {
	case Tithe:
		doc.ClearedTithe += out
	case Offering:
		doc.ClearedOffering += out
	case Charity:
		doc.ClearedCharity += out
	default:
		return nil
	}
	return s.save(doc)
}

func deleteByID[T any](items []T, id string, idOf func(T) string) []T {
	kept := make([]T, 0, len(items))
	for _, item := range items {
		if idOf(item) != id {
			kept = append(kept, item)
		}
	}
	return kept
}

func isFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
