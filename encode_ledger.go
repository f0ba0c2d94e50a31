package fintrack

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/goccy/go-json"
)

// DecodeLedger decodes a ledger document: a JSON array of transactions, newest first.
//
// Every transaction must satisfy the ledger invariants and ids must be unique,
// otherwise the whole document is rejected.
func DecodeLedger(r io.Reader) ([]Transaction, error) {
	var txs []Transaction
	dec := json.NewDecoder(r)
	if err := dec.Decode(&txs); err != nil {
		if err == io.EOF {
			return []Transaction{}, nil
		}
		return nil, fmt.Errorf("could not decode ledger: %w", err)
	}
	// The document is a single array.
	var extra json.RawMessage
	if err := dec.Decode(&extra); err != io.EOF {
		return nil, fmt.Errorf("could not decode ledger: unexpected data after the transactions")
	}

	seen := make(map[string]struct{}, len(txs))
	for i, tx := range txs {
		if err := tx.Validate(); err != nil {
			return nil, fmt.Errorf("invalid transaction #%d: %w", i, err)
		}
		if _, dup := seen[tx.ID]; dup {
			return nil, fmt.Errorf("invalid transaction #%d: duplicate id %q", i, tx.ID)
		}
		seen[tx.ID] = struct{}{}
	}
	if txs == nil {
		txs = []Transaction{}
	}
	return txs, nil
}

// EncodeLedger writes transactions as a compact JSON array, in the given order.
func EncodeLedger(w io.Writer, txs []Transaction) error {
	if txs == nil {
		txs = []Transaction{}
	}
	data, err := json.Marshal(txs)
	if err != nil {
		return fmt.Errorf("failed to marshal ledger: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write ledger: %w", err)
	}
	return nil
}

// ExportLedger writes transactions as an indented JSON array, meant to be read by humans.
func ExportLedger(w io.Writer, txs []Transaction) error {
	var compact bytes.Buffer
	if err := EncodeLedger(&compact, txs); err != nil {
		return err
	}
	var out bytes.Buffer
	if err := json.Indent(&out, compact.Bytes(), "", "  "); err != nil {
		return fmt.Errorf("failed to indent ledger: %w", err)
	}
	out.WriteByte('\n')
	if _, err := out.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	return nil
}

// ExportFilename returns the conventional name of an export made on day.
func ExportFilename(day time.Time) string {
	return fmt.Sprintf("finance-tracker-%s.json", day.Format(time.DateOnly))
}
