package cashcook

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/PaesslerAG/jsonpath"
)

// Query evaluates a JSONPath expression against the persisted form of txs,
// e.g. `$[? @.type=="take"].description`.
//
// The result is made of plain JSON values (maps, slices, strings, float64...).
func Query(txs []Transaction, path string) (any, error) {
	var b bytes.Buffer
	if err := EncodeTransactions(&b, txs); err != nil {
		return nil, err
	}
	var doc any
	if err := json.Unmarshal(b.Bytes(), &doc); err != nil {
		return nil, fmt.Errorf("could not decode transactions for query: %w", err)
	}
	res, err := jsonpath.Get(path, doc)
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q: %w", path, err)
	}
	return res, nil
}
