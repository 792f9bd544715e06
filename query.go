package barbershop

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/PaesslerAG/jsonpath"
)

// Query evaluates a JSONPath expression against the persisted form of the
// ledger, e.g. `$.inventory[?(@.quantity < 3)].component`.
//
// The ledger is not modified. Numbers are returned as float64.
func (l *Ledger) Query(path string) (any, error) {
	var buf bytes.Buffer
	if err := EncodeLedger(&buf, l); err != nil {
		return nil, err
	}
	var doc any
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		return nil, fmt.Errorf("could not decode ledger for query: %w", err)
	}
	v, err := jsonpath.Get(path, doc)
	if err != nil {
		return nil, fmt.Errorf("%w: query %q: %w", ErrValidation, path, err)
	}
	return v, nil
}
