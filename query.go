package fintrack

import (
	"bytes"
	"context"
	"fmt"

	"github.com/PaesslerAG/jsonpath"
	"github.com/goccy/go-json"
)

// Query evaluates a JSONPath expression against the exported form of txs, e.g.
// `$[?(@.category == "Food")].amount`.
//
// The result is made of plain JSON values: maps, slices, strings, float64 and bools.
func Query(ctx context.Context, txs []Transaction, path string) (any, error) {
	var buf bytes.Buffer
	if err := EncodeLedger(&buf, txs); err != nil {
		return nil, err
	}
	var doc any
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		return nil, fmt.Errorf("could not decode ledger for query: %w", err)
	}

	eval, err := jsonpath.New(path)
	if err != nil {
		return nil, fmt.Errorf("invalid query %q: %w", path, err)
	}
	result, err := eval(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q: %w", path, err)
	}
	return result, nil
}
