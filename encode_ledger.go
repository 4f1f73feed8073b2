package cashcook

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// EncodeTransactions writes the transactions as a JSON array, in order.
//
// Each transaction is written on its own line so that the persisted file stays
// readable and diffs well, and keys are always in the same order.
func EncodeTransactions(w io.Writer, txs []Transaction) error {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, tx := range txs {
		data, err := json.Marshal(tx)
		if err != nil {
			return fmt.Errorf("failed to marshal transaction %d: %w", tx.ID, err)
		}
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
		buf.Write(data)
	}
	if len(txs) > 0 {
		buf.WriteByte('\n')
	}
	buf.WriteString("]\n")
	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write transactions: %w", err)
	}
	return nil
}

// DecodeTransactions reads a JSON array of transactions, as written by EncodeTransactions.
func DecodeTransactions(r io.Reader) ([]Transaction, error) {
	var txs []Transaction
	dec := json.NewDecoder(r)
	if err := dec.Decode(&txs); err != nil {
		return nil, fmt.Errorf("could not decode transactions: %w", err)
	}
	if dec.More() {
		return nil, errors.New("could not decode transactions: trailing data after the array")
	}
	if txs == nil {
		// a JSON null is an empty ledger.
		txs = []Transaction{}
	}
	return txs, nil
}

// marshalText returns the persisted text form of the transactions.
func marshalText(txs []Transaction) (string, error) {
	var b bytes.Buffer
	if err := EncodeTransactions(&b, txs); err != nil {
		return "", err
	}
	return b.String(), nil
}

// unmarshalText parses the persisted text form of the transactions.
func unmarshalText(text string) ([]Transaction, error) {
	return DecodeTransactions(bytes.NewReader([]byte(text)))
}

// ExportJSONL writes one transaction per line. Empty category and notes are omitted.
func ExportJSONL(w io.Writer, txs []Transaction) error {
	for _, tx := range txs {
		var o jsonObjectWriter
		o.Append("id", tx.ID)
		o.Append("description", tx.Description)
		o.Append("amount", tx.Amount)
		o.Append("type", tx.Type)
		o.Append("date", tx.Date)
		o.Optional("category", tx.Category)
		o.Optional("notes", tx.Notes)
		data, err := o.MarshalJSON()
		if err != nil {
			return fmt.Errorf("failed to marshal transaction %d: %w", tx.ID, err)
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("failed to write transaction: %w", err)
		}
	}
	return nil
}

// maxLineSize bounds a single JSONL line.
const maxLineSize = 16 * 1024 * 1024

// ImportJSONL reads transactions written one per line. Blank lines are skipped.
// All malformed lines are reported together.
func ImportJSONL(r io.Reader) ([]Transaction, error) {
	var txs []Transaction
	var errs error
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	line := 0
	for scanner.Scan() {
		line++
		lineBytes := bytes.TrimSpace(scanner.Bytes())
		if len(lineBytes) == 0 {
			continue
		}
		var tx Transaction
		if err := json.Unmarshal(lineBytes, &tx); err != nil {
			errs = errors.Join(errs, fmt.Errorf("line %d: %w", line, err))
			continue
		}
		txs = append(txs, tx)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}
	return txs, errs
}
