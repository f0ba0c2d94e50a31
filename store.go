package fintrack

import (
	"errors"
	"fmt"
	"iter"
	"os"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Fixed storage keys.
const (
	LedgerKey = "finance-tracker-data"
	ThemeKey  = "finance-tracker-theme"
)

// ErrDuplicateID is returned when the id generator produces an id already in use.
var ErrDuplicateID = errors.New("duplicate transaction id")

// Storage is a string key/value storage, local to the user.
type Storage interface {
	// Get returns the value stored under key; ok is false if there is none.
	Get(key string) (value string, ok bool, err error)
	// Set stores value under key. It may fail, for instance when a quota is exhausted.
	Set(key, value string) error
}

// Store owns the ledger: the transactions, newest first, and their persistence.
//
// Every mutation is written back to the storage before returning. A Store is safe
// for concurrent use.
type Store struct {
	mu           sync.Mutex
	transactions []Transaction // newest first

	storage Storage
	key     string
	log     zerolog.Logger
	now     func() time.Time
	newID   func() string
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used to report storage warnings.
func WithLogger(l zerolog.Logger) Option { return func(s *Store) { s.log = l } }

// WithClock sets the clock used to timestamp new transactions.
func WithClock(now func() time.Time) Option { return func(s *Store) { s.now = now } }

// WithIDGenerator sets the generator of transaction ids.
func WithIDGenerator(newID func() string) Option { return func(s *Store) { s.newID = newID } }

// WithKey changes the storage key of the ledger document.
func WithKey(key string) Option { return func(s *Store) { s.key = key } }

// NewStore creates an empty Store on top of storage. Call Load to read the persisted ledger.
func NewStore(storage Storage, opts ...Option) *Store {
	s := &Store{
		transactions: []Transaction{},
		storage:      storage,
		key:          LedgerKey,
		log:          zerolog.New(os.Stderr).With().Timestamp().Logger(),
		now:          time.Now,
		newID:        uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Open creates a Store on top of storage and loads the persisted ledger.
func Open(storage Storage, opts ...Option) *Store {
	s := NewStore(storage, opts...)
	s.Load()
	return s
}

// Load replaces the in-memory ledger with the persisted one and returns it.
//
// A missing document is an empty ledger. An unreadable or corrupt document is
// logged and also yields an empty ledger: start-up never fails because of it.
func (s *Store) Load() []Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.transactions = s.read()
	return slices.Clone(s.transactions)
}

func (s *Store) read() []Transaction {
	blob, ok, err := s.storage.Get(s.key)
	if err != nil {
		err = &StorageError{Op: "get", Key: s.key, Err: err}
		s.log.Warn().Err(err).Msg("cannot read ledger, starting empty")
		return []Transaction{}
	}
	if !ok || strings.TrimSpace(blob) == "" {
		return []Transaction{}
	}
	txs, err := DecodeLedger(strings.NewReader(blob))
	if err != nil {
		s.log.Warn().Err(err).Str("key", s.key).Msg("corrupt ledger, starting empty")
		return []Transaction{}
	}
	s.log.Debug().Int("transactions", len(txs)).Str("key", s.key).Msg("ledger loaded")
	return txs
}

// write persists the whole ledger. Must be called with mu held.
func (s *Store) write() error {
	var b strings.Builder
	err := EncodeLedger(&b, s.transactions)
	if err == nil {
		err = s.storage.Set(s.key, b.String())
	}
	if err != nil {
		err = &StorageError{Op: "set", Key: s.key, Err: err}
		s.log.Warn().Err(err).Msg("cannot save ledger, changes are kept in memory only")
		return err
	}
	return nil
}

// Add validates in, records it as the newest transaction and persists the ledger.
//
// On a *ValidationError nothing is recorded. On a *StorageError the transaction
// is recorded in memory and returned, but could not be persisted.
func (s *Store) Add(in Input) (Transaction, error) {
	d, err := in.validate()
	if err != nil {
		return Transaction{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.newID()
	if s.indexOf(id) >= 0 {
		return Transaction{}, fmt.Errorf("cannot add %q: %w %q", d.description, ErrDuplicateID, id)
	}

	tx := Transaction{
		ID:          id,
		Description: d.description,
		Amount:      d.amount,
		Category:    d.category,
		Kind:        d.kind,
		CreatedAt:   s.now().UTC(),
	}
	s.transactions = slices.Insert(s.transactions, 0, tx)
	s.log.Debug().Str("id", tx.ID).Stringer("kind", tx.Kind).Str("amount", tx.Amount.String()).Msg("transaction added")

	return tx, s.write()
}

// Remove deletes the transaction with this id and persists the ledger.
//
// It returns ErrNotFound, and changes nothing, if there is no such transaction.
// On a *StorageError the transaction is removed from memory only.
func (s *Store) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return fmt.Errorf("cannot remove %q: %w", id, ErrNotFound)
	}
	s.transactions = slices.Delete(s.transactions, i, i+1)
	s.log.Debug().Str("id", id).Msg("transaction removed")

	return s.write()
}

func (s *Store) indexOf(id string) int {
	return slices.IndexFunc(s.transactions, func(tx Transaction) bool { return tx.ID == id })
}

// Get returns the transaction with this id.
func (s *Store) Get(id string) (Transaction, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(id); i >= 0 {
		return s.transactions[i], true
	}
	return Transaction{}, false
}

// Len returns the number of transactions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.transactions)
}

// snapshot returns a copy of the ledger, safe to use without holding mu.
func (s *Store) snapshot() []Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.transactions)
}

// All returns a copy of all transactions, newest first.
func (s *Store) All() []Transaction { return s.snapshot() }

// Transactions returns an iterator over the transactions accepted by all filters,
// newest first, with their position in the ledger.
//
// It iterates over a snapshot: the store can be modified during the iteration.
func (s *Store) Transactions(filters ...Filter) iter.Seq2[int, Transaction] {
	txs := s.snapshot()
	return func(yield func(int, Transaction) bool) {
		for i, tx := range txs {
			if !match(tx, filters) {
				continue
			}
			if !yield(i, tx) {
				return
			}
		}
	}
}

// Filter returns the transactions matching all the criteria, in ledger order.
func (s *Store) Filter(c Criteria) []Transaction {
	result := []Transaction{}
	for _, tx := range s.Transactions(c.Filters()...) {
		result = append(result, tx)
	}
	return result
}

// Summarize computes income, expense and balance over the whole ledger.
func (s *Store) Summarize() Summary { return Summarize(s.snapshot()) }

// ExportText returns the whole ledger as indented JSON. It has no side effect.
func (s *Store) ExportText() (string, error) {
	var b strings.Builder
	if err := ExportLedger(&b, s.snapshot()); err != nil {
		return "", err
	}
	return b.String(), nil
}
