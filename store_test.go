package fintrack

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/etnz/fintrack/storage"
	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"
)

func TestStore_CoffeeAndPaycheck(t *testing.T) {
	s, _ := newTestStore(t)

	coffee := mustAdd(t, s, "Coffee", "4.50", Food, Expense)
	mustAdd(t, s, "Paycheck", "2000", Salary, Income)

	got := s.Summarize()
	want := Summary{Income: D("2000"), Expense: D("4.50"), Balance: D("1995.50"), Count: 2}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Summarize() mismatch (-want +got):\n%s", diff)
	}

	expenses := s.Filter(Criteria{Kind: Expense})
	if diff := cmp.Diff([]Transaction{coffee}, expenses); diff != "" {
		t.Errorf("Filter(expense) mismatch (-want +got):\n%s", diff)
	}
}

func TestStore_Add(t *testing.T) {
	s, _ := newTestStore(t)

	tx := mustAdd(t, s, "  Bus ticket  ", "1.8", Transport, Expense)

	if tx.ID != "tx-1" {
		t.Errorf("ID = %q, want tx-1", tx.ID)
	}
	if tx.Description != "Bus ticket" {
		t.Errorf("Description = %q, want it trimmed", tx.Description)
	}
	if !tx.Amount.Equal(D("1.8")) || tx.Category != Transport || tx.Kind != Expense {
		t.Errorf("Add() = %v, fields do not match the input", tx)
	}
	if !tx.CreatedAt.Equal(t0) {
		t.Errorf("CreatedAt = %v, want %v", tx.CreatedAt, t0)
	}
	if got, ok := s.Get(tx.ID); !ok || !got.Equal(tx) {
		t.Errorf("Get(%q) = %v, %v; want the added transaction", tx.ID, got, ok)
	}
}

func TestStore_AddPrepends(t *testing.T) {
	s, _ := newTestStore(t)
	for i := range 3 {
		mustAdd(t, s, fmt.Sprintf("tx %d", i), "1", Other, Expense)
	}

	var got []string
	for _, tx := range s.Transactions() {
		got = append(got, tx.Description)
	}
	want := []string{"tx 2", "tx 1", "tx 0"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
}

// Insertion order wins over timestamps, even when the clock goes backward.
func TestStore_OrderIsInsertionOrder(t *testing.T) {
	s, _ := newTestStore(t, WithClock(clock(t0, -time.Hour)))
	first := mustAdd(t, s, "first", "1", Other, Expense)
	second := mustAdd(t, s, "second", "1", Other, Expense)

	all := s.All()
	if !all[0].Equal(second) || !all[1].Equal(first) {
		t.Errorf("All() = %v, want newest insertion first", all)
	}
}

func TestStore_AddInvalid(t *testing.T) {
	testCases := []struct {
		name  string
		in    Input
		field Field
	}{
		{"zero amount", Input{"Coffee", "0", "Food", "expense"}, FieldAmount},
		{"negative amount", Input{"Coffee", "-3", "Food", "expense"}, FieldAmount},
		{"not a number", Input{"Coffee", "four", "Food", "expense"}, FieldAmount},
		{"infinite amount", Input{"Coffee", "Inf", "Food", "expense"}, FieldAmount},
		{"blank description", Input{"   ", "4", "Food", "expense"}, FieldDescription},
		{"missing category", Input{"Coffee", "4", "", "expense"}, FieldCategory},
		{"missing type", Input{"Coffee", "4", "Food", ""}, FieldKind},
		{"unknown type", Input{"Coffee", "4", "Food", "transfer"}, FieldKind},
		// the first failing field wins
		{"everything wrong", Input{"", "0", "", ""}, FieldDescription},
		{"amount before category", Input{"Coffee", "", "", "bogus"}, FieldAmount},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, mem := newTestStore(t)
			mustAdd(t, s, "Existing", "1", Other, Income)
			before, _, _ := mem.Get(LedgerKey)

			_, err := s.Add(tc.in)

			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Add() error = %v, want a *ValidationError", err)
			}
			if verr.Field != tc.field {
				t.Errorf("ValidationError.Field = %q, want %q", verr.Field, tc.field)
			}
			if s.Len() != 1 {
				t.Errorf("Len() = %d, the store must not change", s.Len())
			}
			if after, _, _ := mem.Get(LedgerKey); after != before {
				t.Errorf("storage was written by an invalid Add")
			}
		})
	}
}

func TestStore_AddThenRemove(t *testing.T) {
	s, _ := newTestStore(t)
	mustAdd(t, s, "Rent", "800", Bills, Expense)
	before := s.Len()

	tx := mustAdd(t, s, "Cinema", "12", Entertainment, Expense)
	if err := s.Remove(tx.ID); err != nil {
		t.Fatalf("Remove() error: %v", err)
	}

	if s.Len() != before {
		t.Errorf("Len() = %d, want %d", s.Len(), before)
	}
	if _, ok := s.Get(tx.ID); ok {
		t.Errorf("Get(%q) still finds the removed transaction", tx.ID)
	}
}

func TestStore_RemoveNotFound(t *testing.T) {
	s, mem := newTestStore(t)
	mustAdd(t, s, "Rent", "800", Bills, Expense)
	before := s.All()
	blob, _, _ := mem.Get(LedgerKey)

	err := s.Remove("nonexistent-id")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Remove() error = %v, want ErrNotFound", err)
	}
	if diff := cmp.Diff(before, s.All()); diff != "" {
		t.Errorf("ledger changed (-before +after):\n%s", diff)
	}
	if after, _, _ := mem.Get(LedgerKey); after != blob {
		t.Errorf("storage was written by a failed Remove")
	}
}

// 1000 adds within the same instant still get distinct ids.
func TestStore_UniqueIDs(t *testing.T) {
	frozen := func() time.Time { return t0 }
	s := Open(storage.NewMemory(0), WithLogger(zerolog.Nop()), WithClock(frozen))

	ids := make(map[string]struct{})
	for i := range 1000 {
		tx := mustAdd(t, s, fmt.Sprintf("item %d", i), "1", Shopping, Expense)
		if _, dup := ids[tx.ID]; dup {
			t.Fatalf("duplicate id %q after %d adds", tx.ID, i)
		}
		ids[tx.ID] = struct{}{}
	}
	if s.Len() != 1000 {
		t.Errorf("Len() = %d, want 1000", s.Len())
	}
}

func TestStore_DuplicateIDGenerator(t *testing.T) {
	s, _ := newTestStore(t, WithIDGenerator(func() string { return "same" }))
	mustAdd(t, s, "first", "1", Other, Expense)

	_, err := s.Add(Input{"second", "1", "Other", "expense"})
	if !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("Add() error = %v, want ErrDuplicateID", err)
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}
}

func TestStore_Persistence(t *testing.T) {
	s, mem := newTestStore(t)
	coffee := mustAdd(t, s, "Coffee", "4.50", Food, Expense)
	pay := mustAdd(t, s, "Paycheck", "2000", Salary, Income)
	gift := mustAdd(t, s, "Birthday", "50.25", Gift, Income)
	if err := s.Remove(pay.ID); err != nil {
		t.Fatalf("Remove() error: %v", err)
	}

	reopened := Open(mem, WithLogger(zerolog.Nop()))
	want := []Transaction{gift, coffee}
	if diff := cmp.Diff(want, reopened.All()); diff != "" {
		t.Errorf("reopened store mismatch (-want +got):\n%s", diff)
	}
}

func TestStore_Load(t *testing.T) {
	testCases := []struct {
		name     string
		blob     *string
		wantLen  int
		wantWarn bool
	}{
		{name: "absent", blob: nil, wantLen: 0},
		{name: "blank", blob: ptr("  "), wantLen: 0},
		{name: "empty array", blob: ptr("[]"), wantLen: 0},
		{name: "valid", blob: ptr(`[{"id":"a","description":"Tea","amount":2,"category":"Food","type":"expense","createdAt":"2025-08-01T09:00:00Z"}]`), wantLen: 1},
		{name: "truncated", blob: ptr(`[{"id":"a","descr`), wantWarn: true},
		{name: "not an array", blob: ptr(`{"id":"a"}`), wantWarn: true},
		{name: "trailing data", blob: ptr(`[{"id":"a","description":"Tea","amount":2,"category":"Food","type":"expense","createdAt":"2025-08-01T09:00:00Z"}] garbage`), wantWarn: true},
		{name: "invalid record", blob: ptr(`[{"id":"a","description":"Tea","amount":-2,"category":"Food","type":"expense","createdAt":"2025-08-01T09:00:00Z"}]`), wantWarn: true},
		{name: "duplicate ids", blob: ptr(`[
			{"id":"a","description":"Tea","amount":2,"category":"Food","type":"expense","createdAt":"2025-08-01T09:00:00Z"},
			{"id":"a","description":"Tea","amount":2,"category":"Food","type":"expense","createdAt":"2025-08-01T09:00:00Z"}]`), wantWarn: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mem := storage.NewMemory(0)
			if tc.blob != nil {
				mem.Set(LedgerKey, *tc.blob)
			}
			var logs bytes.Buffer
			s := NewStore(mem, WithLogger(zerolog.New(&logs)))

			got := s.Load()

			if len(got) != tc.wantLen || s.Len() != tc.wantLen {
				t.Errorf("Load() returned %d transactions (store has %d), want %d", len(got), s.Len(), tc.wantLen)
			}
			if warned := strings.Contains(logs.String(), `"level":"warn"`); warned != tc.wantWarn {
				t.Errorf("warning logged = %v, want %v; logs: %s", warned, tc.wantWarn, logs.String())
			}
		})
	}
}

func TestStore_LoadUnreadableStorage(t *testing.T) {
	var logs bytes.Buffer
	s := Open(&brokenStorage{getErr: errDiskGone}, WithLogger(zerolog.New(&logs)))

	if s.Len() != 0 {
		t.Errorf("Len() = %d, want an empty store", s.Len())
	}
	if !strings.Contains(logs.String(), errDiskGone.Error()) {
		t.Errorf("logs = %q, want the storage error", logs.String())
	}
}

func TestStore_WriteFailureKeepsMemory(t *testing.T) {
	broken := &brokenStorage{}
	s := Open(broken, WithLogger(zerolog.Nop()), WithIDGenerator(sequence()))
	kept := mustAdd(t, s, "Saved", "10", Other, Income)

	broken.setErr = errDiskGone
	tx, err := s.Add(Input{"Unsaved", "5", "Food", "expense"})

	var serr *StorageError
	if !errors.As(err, &serr) {
		t.Fatalf("Add() error = %v, want a *StorageError", err)
	}
	if !errors.Is(err, errDiskGone) {
		t.Errorf("Add() error = %v, want it to wrap the storage cause", err)
	}
	if tx.ID == "" || tx.Description != "Unsaved" {
		t.Errorf("Add() = %v, want the recorded transaction despite the storage error", tx)
	}
	if s.Len() != 2 {
		t.Errorf("Len() = %d, the in-memory mutation must stand", s.Len())
	}

	// Remove also keeps its in-memory effect.
	if err := s.Remove(kept.ID); !errors.As(err, &serr) {
		t.Errorf("Remove() error = %v, want a *StorageError", err)
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d after failed Remove write, want 1", s.Len())
	}

	// Once storage is back, the next write reconciles both.
	broken.setErr = nil
	mustAdd(t, s, "Back", "1", Other, Income)
	reopened := Open(broken, WithLogger(zerolog.Nop()))
	if reopened.Len() != 2 {
		t.Errorf("reopened Len() = %d, want 2", reopened.Len())
	}
}

func TestStore_WriteFailureIsLogged(t *testing.T) {
	broken := &brokenStorage{}
	var logs bytes.Buffer
	s := Open(broken, WithLogger(zerolog.New(&logs).Level(zerolog.WarnLevel)), WithIDGenerator(sequence()))
	kept := mustAdd(t, s, "Saved", "10", Other, Income)
	if logs.Len() != 0 {
		t.Fatalf("successful write logged %s", logs.String())
	}

	broken.setErr = errDiskGone
	s.Add(Input{"Unsaved", "5", "Food", "expense"})
	s.Remove(kept.ID)

	// One warning per change kept in memory only.
	if n := strings.Count(logs.String(), `"level":"warn"`); n != 2 {
		t.Errorf("logged %d warnings, want 2; logs: %s", n, logs.String())
	}
	if !strings.Contains(logs.String(), errDiskGone.Error()) {
		t.Errorf("logs = %q, want the storage error", logs.String())
	}
}

func TestStore_QuotaExceeded(t *testing.T) {
	mem := storage.NewMemory(300)
	s := Open(mem, WithLogger(zerolog.Nop()))

	var err error
	for i := 0; i < 10 && err == nil; i++ {
		_, err = s.Add(Input{fmt.Sprintf("item %d", i), "1", "Food", "expense"})
	}
	if !errors.Is(err, storage.ErrQuotaExceeded) {
		t.Fatalf("Add() error = %v, want ErrQuotaExceeded", err)
	}
	persisted := Open(mem, WithLogger(zerolog.Nop())).Len()
	if s.Len() != persisted+1 {
		t.Errorf("memory has %d transactions, storage %d: want exactly the last one unsaved", s.Len(), persisted)
	}
}

func TestStore_Filter(t *testing.T) {
	s, _ := newTestStore(t)
	lunch := mustAdd(t, s, "Lunch", "12", Food, Expense)
	mustAdd(t, s, "Taxi", "20", Transport, Expense)
	refund := mustAdd(t, s, "Refund", "12", Food, Income)
	dinner := mustAdd(t, s, "Dinner", "30", Food, Expense)

	testCases := []struct {
		name     string
		criteria Criteria
		want     []Transaction
	}{
		{"category", Criteria{Category: Food}, []Transaction{dinner, refund, lunch}},
		{"category and kind", Criteria{Category: Food, Kind: Expense}, []Transaction{dinner, lunch}},
		{"no match", Criteria{Category: Gift}, []Transaction{}},
		{"wildcard", Criteria{}, s.All()},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := s.Filter(tc.criteria)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Filter() mismatch (-want +got):\n%s", diff)
			}
			for _, tx := range got {
				if tc.criteria.Category != "" && tx.Category != tc.criteria.Category {
					t.Errorf("Filter() returned %v outside category %s", tx, tc.criteria.Category)
				}
			}
		})
	}
}

func TestStore_TransactionsSince(t *testing.T) {
	s, _ := newTestStore(t, WithClock(clock(t0, 24*time.Hour)))
	for i := range 5 {
		mustAdd(t, s, fmt.Sprintf("day %d", i), "1", Other, Expense)
	}

	var got []string
	for _, tx := range s.Transactions(Since(t0.Add(3 * 24 * time.Hour))) {
		got = append(got, tx.Description)
	}
	if diff := cmp.Diff([]string{"day 4", "day 3"}, got); diff != "" {
		t.Errorf("Since() mismatch (-want +got):\n%s", diff)
	}
}

func TestStore_BalanceInvariant(t *testing.T) {
	s, _ := newTestStore(t)
	amounts := []string{"0.1", "0.2", "1000000.01", "3.333", "7"}
	for i, a := range amounts {
		kind := Expense
		if i%2 == 0 {
			kind = Income
		}
		mustAdd(t, s, "x", a, Other, kind)

		sum := s.Summarize()
		if !sum.Balance.Equal(sum.Income.Sub(sum.Expense)) {
			t.Fatalf("Balance %s != Income %s - Expense %s", sum.Balance, sum.Income, sum.Expense)
		}
	}
	// decimals keep amounts exact
	if got := s.Summarize().Income; !got.Equal(D("1000007.11")) {
		t.Errorf("Income = %s, want 1000007.11", got)
	}
}

func TestStore_AccessorsReturnCopies(t *testing.T) {
	s, _ := newTestStore(t)
	mustAdd(t, s, "Original", "1", Other, Expense)

	all := s.All()
	all[0].Description = "tampered"
	filtered := s.Filter(Criteria{})
	filtered[0].Description = "tampered"

	if got, _ := s.Get("tx-1"); got.Description != "Original" {
		t.Errorf("store was modified through a returned slice: %v", got)
	}
}

func TestStore_ExportText(t *testing.T) {
	s, mem := newTestStore(t)
	mustAdd(t, s, "Coffee", "4.50", Food, Expense)
	blob, _, _ := mem.Get(LedgerKey)

	text, err := s.ExportText()
	if err != nil {
		t.Fatalf("ExportText() error: %v", err)
	}
	want := `[
  {
    "id": "tx-1",
    "description": "Coffee",
    "amount": 4.5,
    "category": "Food",
    "type": "expense",
    "createdAt": "2025-08-01T09:00:00Z"
  }
]
`
	if text != want {
		t.Errorf("ExportText() =\n%s\nwant:\n%s", text, want)
	}
	if after, _, _ := mem.Get(LedgerKey); after != blob || s.Len() != 1 {
		t.Errorf("ExportText() must not have side effects")
	}
}

func ptr[T any](v T) *T { return &v }
