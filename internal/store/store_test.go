package store

import (
	"errors"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "budgets.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func TestSaveAndLoadBudget(t *testing.T) {
	st := openTestStore(t)

	payload := []byte(`{"income": 1000, "categories": []}`)
	if err := st.SaveBudget(DefaultSlot, payload); err != nil {
		t.Fatalf("SaveBudget: %v", err)
	}

	got, err := st.LoadBudget(DefaultSlot)
	if err != nil {
		t.Fatalf("LoadBudget: %v", err)
	}
	if string(got) != string(payload) {
		t.Fatalf("payload = %q, want %q", got, payload)
	}
}

func TestSaveBudgetReplaces(t *testing.T) {
	st := openTestStore(t)

	if err := st.SaveBudget("vacation", []byte(`{"income": 1}`)); err != nil {
		t.Fatal(err)
	}
	if err := st.SaveBudget("vacation", []byte(`{"income": 2}`)); err != nil {
		t.Fatal(err)
	}

	got, err := st.LoadBudget("vacation")
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != `{"income": 2}` {
		t.Fatalf("payload = %q after replace", got)
	}

	count, err := st.BudgetCount()
	if err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Fatalf("count = %d, want 1", count)
	}
}

func TestLoadBudgetNotFound(t *testing.T) {
	st := openTestStore(t)

	if _, err := st.LoadBudget("missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("LoadBudget err = %v, want ErrNotFound", err)
	}
}

func TestListAndDeleteBudgets(t *testing.T) {
	st := openTestStore(t)

	for _, name := range []string{"default", "vacation"} {
		if err := st.SaveBudget(name, []byte("{}")); err != nil {
			t.Fatal(err)
		}
	}

	infos, err := st.ListBudgets()
	if err != nil {
		t.Fatal(err)
	}
	if len(infos) != 2 {
		t.Fatalf("got %d budgets, want 2", len(infos))
	}
	for _, info := range infos {
		if info.UpdatedAt.IsZero() {
			t.Errorf("budget %q has zero UpdatedAt", info.Name)
		}
	}

	if err := st.DeleteBudget("vacation"); err != nil {
		t.Fatalf("DeleteBudget: %v", err)
	}
	if _, err := st.LoadBudget("vacation"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("deleted budget still loads: %v", err)
	}
}
