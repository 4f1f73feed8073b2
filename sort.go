package cashcook

import (
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortKey selects the ordering applied by Ledger.Sort.
type SortKey string

const (
	ByDate     SortKey = "date"
	ByAmount   SortKey = "amount"
	ByType     SortKey = "type"
	ByCategory SortKey = "category"
)

// SortKeys returns the supported sort keys, the default first.
func SortKeys() []SortKey { return []SortKey{ByDate, ByAmount, ByType, ByCategory} }

// ParseSortKey returns the sort key named s, or ByDate for anything unknown.
func ParseSortKey(s string) SortKey {
	k := SortKey(strings.ToLower(strings.TrimSpace(s)))
	if slices.Contains(SortKeys(), k) {
		return k
	}
	return ByDate
}

// Sort reorders the working set by key, persists the new order and returns it.
//
// Dates sort chronologically, amounts numerically with unparsable amounts last,
// types and categories alphabetically using collation. The sort is stable.
// An unknown key sorts by date.
func (l *Ledger) Sort(key SortKey) []Transaction {
	slices.SortStableFunc(l.transactions, compareBy(ParseSortKey(string(key))))
	l.commit(OpSort)
	return l.Transactions()
}

// compareBy returns the comparison function for key.
func compareBy(key SortKey) func(a, b Transaction) int {
	switch key {
	case ByAmount:
		return compareAmounts
	case ByType:
		c := collate.New(language.Und)
		return func(a, b Transaction) int { return c.CompareString(string(a.Type), string(b.Type)) }
	case ByCategory:
		c := collate.New(language.Und)
		return func(a, b Transaction) int { return c.CompareString(string(a.Category), string(b.Category)) }
	default:
		return func(a, b Transaction) int { return a.Date.Compare(b.Date) }
	}
}

func compareAmounts(a, b Transaction) int {
	da, errA := a.Amount.Decimal()
	db, errB := b.Amount.Decimal()
	switch {
	case errA != nil && errB != nil:
		return 0
	case errA != nil:
		return 1
	case errB != nil:
		return -1
	default:
		return da.Cmp(db)
	}
}
