package fundflow

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// memBackend is an in-memory Backend for tests. It does not implement
// Watcher, so subscriber counts are deterministic.
type memBackend struct {
	data    []byte
	saves   int
	failing bool
}

var errBackendDown = errors.New("backend down")

func (b *memBackend) Load() ([]byte, error) {
	if b.failing {
		return nil, errBackendDown
	}
	if b.data == nil {
		return nil, os.ErrNotExist
	}
	return b.data, nil
}

func (b *memBackend) Save(data []byte) error {
	if b.failing {
		return errBackendDown
	}
	b.data = append([]byte{}, data...)
	b.saves++
	return nil
}

func newTestStore() (*Store, *memBackend) {
	backend := &memBackend{}
	return NewStore(backend), backend
}

func TestStore_GetEmptyOnMissingStorage(t *testing.T) {
	store, _ := newTestStore()

	doc := store.Get()

	if len(doc.Incomes) != 0 || len(doc.Containers) != 0 || len(doc.Expenses) != 0 {
		t.Errorf("expected an empty document, got %+v", doc)
	}
	if doc.Incomes == nil || doc.Containers == nil || doc.Expenses == nil {
		t.Errorf("empty document has nil sequences")
	}
}

func TestStore_GetEmptyOnCorruptStorage(t *testing.T) {
	store, backend := newTestStore()
	backend.data = []byte("not json at all {{{")

	doc := store.Get()

	if len(doc.Incomes) != 0 {
		t.Errorf("expected an empty document from corrupt storage, got %+v", doc)
	}
}

func TestStore_SelfHealingMigration(t *testing.T) {
	store, backend := newTestStore()
	backend.data = []byte(`{"income": 500, "containers": [], "expenses": []}`)

	doc := store.Get()

	if len(doc.Incomes) != 1 || doc.Incomes[0].Amount != 500 {
		t.Fatalf("legacy income not migrated: %+v", doc.Incomes)
	}
	if backend.saves != 1 {
		t.Errorf("expected exactly one self-healing write, got %d", backend.saves)
	}

	// The persisted upgrade must not be re-healed on the next load.
	store.Get()
	if backend.saves != 1 {
		t.Errorf("migration ran again on an already-healed document, saves = %d", backend.saves)
	}
}

func TestStore_AddDeleteSymmetry(t *testing.T) {
	store, _ := newTestStore()

	a, err := store.AddIncome("Salary", 1000)
	if err != nil {
		t.Fatal(err)
	}
	b, err := store.AddIncome("Freelance", 250)
	if err != nil {
		t.Fatal(err)
	}
	if a.ID == b.ID {
		t.Fatalf("duplicate income ids: %q", a.ID)
	}

	if err := store.DeleteIncome(a.ID); err != nil {
		t.Fatal(err)
	}

	doc := store.Get()
	if len(doc.Incomes) != 1 || doc.Incomes[0].ID != b.ID {
		t.Errorf("after add+add+delete, incomes = %+v, want only %q", doc.Incomes, b.ID)
	}

	// Deleting the remaining one restores the empty state.
	if err := store.DeleteIncome(b.ID); err != nil {
		t.Fatal(err)
	}
	if got := store.Get().Incomes; len(got) != 0 {
		t.Errorf("expected no incomes left, got %+v", got)
	}
}

func TestStore_SaveErrorSurfaced(t *testing.T) {
	store, backend := newTestStore()
	backend.failing = true

	if _, err := store.AddIncome("Salary", 1000); err == nil {
		t.Errorf("expected a persistence error to surface")
	}
}

func TestStore_Subscribe(t *testing.T) {
	store, _ := newTestStore()

	var seen []Document
	unsubscribe := store.Subscribe(func(doc Document) {
		seen = append(seen, doc)
	})

	if len(seen) != 1 {
		t.Fatalf("expected the initial callback on subscribe, got %d calls", len(seen))
	}

	if _, err := store.AddIncome("Salary", 1000); err != nil {
		t.Fatal(err)
	}
	if len(seen) != 2 {
		t.Fatalf("expected a callback after a mutation, got %d calls", len(seen))
	}
	if got := Summarize(seen[1]); got.TotalIncome != 1000 {
		t.Errorf("subscriber saw TotalIncome = %v, want 1000", got.TotalIncome)
	}

	unsubscribe()
	unsubscribe() // safe to call twice

	if _, err := store.AddIncome("Freelance", 10); err != nil {
		t.Fatal(err)
	}
	if len(seen) != 2 {
		t.Errorf("callback fired after unsubscribe, got %d calls", len(seen))
	}
}

func TestStore_MultipleSubscribers(t *testing.T) {
	store, _ := newTestStore()

	var first, second int
	defer store.Subscribe(func(Document) { first++ })()
	defer store.Subscribe(func(Document) { second++ })()

	if _, err := store.AddExpense("Groceries", 50); err != nil {
		t.Fatal(err)
	}

	if first != 2 || second != 2 {
		t.Errorf("subscribers saw %d/%d calls, want 2/2 (initial + change)", first, second)
	}
}

func TestStore_SubscriberGetsCopy(t *testing.T) {
	store, _ := newTestStore()
	if _, err := store.AddIncome("Salary", 1000); err != nil {
		t.Fatal(err)
	}

	unsubscribe := store.Subscribe(func(doc Document) {
		if len(doc.Incomes) > 0 {
			doc.Incomes[0].Amount = -1
		}
	})
	defer unsubscribe()

	if got := store.Get().Incomes[0].Amount; got != 1000 {
		t.Errorf("subscriber mutation leaked into the store: amount = %v", got)
	}
}

func TestFileBackend_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fundflow.json")
	store := NewStore(NewFileBackend(path))

	if _, err := store.AddIncome("Salary", 1000); err != nil {
		t.Fatal(err)
	}
	if _, err := store.AddContainer("Car"); err != nil {
		t.Fatal(err)
	}

	// A fresh store over the same file sees the persisted state.
	reopened := NewStore(NewFileBackend(path))
	doc := reopened.Get()
	if len(doc.Incomes) != 1 || len(doc.Containers) != 1 {
		t.Errorf("reopened store got %d incomes, %d containers; want 1 and 1",
			len(doc.Incomes), len(doc.Containers))
	}
}

func TestFileBackend_MissingFile(t *testing.T) {
	backend := NewFileBackend(filepath.Join(t.TempDir(), "missing.json"))
	if _, err := backend.Load(); err == nil {
		t.Errorf("expected an error for a missing file")
	}
}
