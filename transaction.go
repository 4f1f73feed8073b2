package cashcook

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/etnz/cashcook/date"
)

var (
	// ErrUnknownType is returned when parsing a transaction type that is neither give nor take.
	ErrUnknownType = errors.New("unknown transaction type")
	// ErrUnknownCategory is returned when parsing a category outside of the known set.
	ErrUnknownCategory = errors.New("unknown category")
)

// Type is the polarity of a transaction.
type Type string

const (
	// Give is money paid out.
	Give Type = "give"
	// Take is money received.
	Take Type = "take"
)

// Types returns all the transaction types.
func Types() []Type { return []Type{Give, Take} }

// ParseType parses a transaction type, case-insensitively.
func ParseType(s string) (Type, error) {
	switch Type(strings.ToLower(strings.TrimSpace(s))) {
	case Give:
		return Give, nil
	case Take:
		return Take, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownType, s)
	}
}

// UnmarshalJSON rejects types other than give and take.
func (t *Type) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	v, err := ParseType(s)
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// Category classifies a transaction. The zero value means unset.
type Category string

const (
	Food          Category = "Food"
	Rent          Category = "Rent"
	Travel        Category = "Travel"
	Miscellaneous Category = "Miscellaneous"
	Unset         Category = ""
)

// Categories returns the set categories, in display order.
func Categories() []Category { return []Category{Food, Rent, Travel, Miscellaneous} }

// ParseCategory parses a category name, case-insensitively. The empty string is Unset.
func ParseCategory(s string) (Category, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Unset, nil
	}
	for _, c := range Categories() {
		if strings.EqualFold(string(c), s) {
			return c, nil
		}
	}
	return Unset, fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

// Transaction is a single give or take entry of the ledger.
type Transaction struct {
	ID          int64
	Description string
	Amount      Amount
	Type        Type
	Date        date.Stamp
	Category    Category
	Notes       string
}

// Draft returns the editable fields of the transaction.
func (tx Transaction) Draft() Draft {
	return Draft{
		Description: tx.Description,
		Amount:      tx.Amount,
		Type:        tx.Type,
		Date:        tx.Date,
		Category:    tx.Category,
		Notes:       tx.Notes,
	}
}

// MarshalJSON writes the fields in their persisted order.
func (tx Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", tx.ID)
	w.Append("description", tx.Description)
	w.Append("amount", tx.Amount)
	w.Append("type", tx.Type)
	w.Append("date", tx.Date)
	w.Append("category", tx.Category)
	w.Append("notes", tx.Notes)
	return w.MarshalJSON()
}

// UnmarshalJSON reads a persisted transaction.
func (tx *Transaction) UnmarshalJSON(data []byte) error {
	var temp struct {
		ID          int64      `json:"id"`
		Description string     `json:"description"`
		Amount      Amount     `json:"amount"`
		Type        Type       `json:"type"`
		Date        date.Stamp `json:"date"`
		Category    Category   `json:"category"`
		Notes       string     `json:"notes"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	*tx = Transaction(temp)
	return nil
}

// Draft holds the user supplied fields of a transaction, without identity.
//
// Date is carried along for convenience but add and update ignore it.
type Draft struct {
	Description string
	Amount      Amount
	Type        Type
	Date        date.Stamp
	Category    Category
	Notes       string
}

// Complete reports whether the required fields are present.
func (d Draft) Complete() bool {
	return d.Description != "" && d.Amount != ""
}

// normalize returns d with a canonical type, give if unset.
// ok is false if d is not Complete or its type is unknown.
func (d Draft) normalize() (_ Draft, ok bool) {
	if !d.Complete() {
		return d, false
	}
	if d.Type == "" {
		d.Type = Give
		return d, true
	}
	t, err := ParseType(string(d.Type))
	if err != nil {
		return d, false
	}
	d.Type = t
	return d, true
}

// transaction builds a Transaction from a normalized draft with the given identity.
func (d Draft) transaction(id int64, on date.Stamp) Transaction {
	return Transaction{
		ID:          id,
		Description: d.Description,
		Amount:      d.Amount,
		Type:        d.Type,
		Date:        on,
		Category:    d.Category,
		Notes:       d.Notes,
	}
}
