package fintrack

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/etnz/fintrack/storage"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// D is a helper for tests to create decimals from literals.
func D(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// clock returns a fake clock starting at start and advancing by step at each call.
func clock(start time.Time, step time.Duration) func() time.Time {
	now := start
	return func() time.Time {
		t := now
		now = now.Add(step)
		return t
	}
}

// sequence returns an id generator yielding "tx-1", "tx-2", ...
func sequence() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("tx-%d", n)
	}
}

var t0 = time.Date(2025, time.August, 1, 9, 0, 0, 0, time.UTC)

// newTestStore returns a store over an in-memory storage, with a deterministic
// clock and ids.
func newTestStore(t *testing.T, opts ...Option) (*Store, *storage.Memory) {
	t.Helper()
	mem := storage.NewMemory(0)
	opts = append([]Option{
		WithLogger(zerolog.Nop()),
		WithClock(clock(t0, time.Minute)),
		WithIDGenerator(sequence()),
	}, opts...)
	return Open(mem, opts...), mem
}

// mustAdd adds a transaction and fails the test on error.
func mustAdd(t *testing.T, s *Store, description, amount string, category Category, kind Kind) Transaction {
	t.Helper()
	tx, err := s.Add(Input{Description: description, Amount: amount, Category: string(category), Kind: string(kind)})
	if err != nil {
		t.Fatalf("Add(%q) error: %v", description, err)
	}
	return tx
}

// brokenStorage is a storage whose operations fail on demand.
type brokenStorage struct {
	storage.Memory
	getErr error
	setErr error
}

func (b *brokenStorage) Get(key string) (string, bool, error) {
	if b.getErr != nil {
		return "", false, b.getErr
	}
	return b.Memory.Get(key)
}

func (b *brokenStorage) Set(key, value string) error {
	if b.setErr != nil {
		return b.setErr
	}
	return b.Memory.Set(key, value)
}

var errDiskGone = errors.New("disk gone")
