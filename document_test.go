package fundflow

import "testing"

func TestDocument_Clone(t *testing.T) {
	doc := NewDocument()
	doc.Incomes = append(doc.Incomes, Income{ID: "i1", Amount: 100})
	doc.Containers = append(doc.Containers, Container{ID: "c1", Name: "Car"})
	doc.Expenses = append(doc.Expenses, Expense{ID: "e1", Amount: 5})

	clone := doc.Clone()
	clone.Incomes[0].Amount = -1
	clone.Containers[0].Name = "Boat"
	clone.Expenses = clone.Expenses[:0]

	if doc.Incomes[0].Amount != 100 {
		t.Errorf("clone aliases incomes")
	}
	if doc.Containers[0].Name != "Car" {
		t.Errorf("clone aliases containers")
	}
	if len(doc.Expenses) != 1 {
		t.Errorf("clone aliases expenses")
	}
}

func TestDocument_FindContainer(t *testing.T) {
	doc := NewDocument()
	doc.Containers = append(doc.Containers, Container{ID: "c1", Name: "Car"}, Container{ID: "c2", Name: "House"})

	if got := doc.FindContainer("c2"); got == nil || got.Name != "House" {
		t.Errorf("FindContainer(c2) = %+v, want House", got)
	}
	if got := doc.FindContainer("nope"); got != nil {
		t.Errorf("FindContainer(nope) = %+v, want nil", got)
	}

	// The pointer addresses the document's own record, so in-place updates stick.
	doc.FindContainer("c1").Balance = 42
	if doc.Containers[0].Balance != 42 {
		t.Errorf("FindContainer returned a detached copy")
	}
}

func TestNewID_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := newID()
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
	}
}
