package cashcook

import (
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Totals sums the amounts of a set of transactions by type.
type Totals struct {
	Give    decimal.Decimal
	Take    decimal.Decimal
	Skipped int // amounts that did not parse and were counted as zero
}

// Balance is the net position, money received minus money paid out.
func (t Totals) Balance() decimal.Decimal { return t.Take.Sub(t.Give) }

// Sum computes the totals of txs. Amounts that do not parse count as zero.
func Sum(txs []Transaction) Totals {
	return sum(txs, zap.NewNop())
}

func sum(txs []Transaction, logger *zap.Logger) Totals {
	t := Totals{Give: decimal.Zero, Take: decimal.Zero}
	for _, tx := range txs {
		v, err := tx.Amount.Decimal()
		if err != nil {
			t.Skipped++
			logger.Warn("amount is not a number, counted as zero", zap.Int64("id", tx.ID), zap.Error(err))
			continue
		}
		switch tx.Type {
		case Give:
			t.Give = t.Give.Add(v)
		case Take:
			t.Take = t.Take.Add(v)
		}
	}
	return t
}

// Aggregate returns the give and take totals of the whole ledger.
func (l *Ledger) Aggregate() Totals {
	return sum(l.transactions, l.logger)
}

// ByCategory returns the totals per category, unset included.
func (l *Ledger) ByCategory() map[Category]Totals {
	groups := make(map[Category][]Transaction)
	for _, tx := range l.transactions {
		groups[tx.Category] = append(groups[tx.Category], tx)
	}
	res := make(map[Category]Totals, len(groups))
	for c, txs := range groups {
		res[c] = sum(txs, l.logger)
	}
	return res
}

// Rates holds the fixed divisors used to convert totals to other currencies.
type Rates struct {
	KD  decimal.Decimal // units of ledger currency per Kuwaiti dinar
	USD decimal.Decimal // units of ledger currency per US dollar
}

// DefaultRates are the divisors used when none are configured.
var DefaultRates = Rates{
	KD:  decimal.RequireFromString("279.151"),
	USD: decimal.RequireFromString("86.20"),
}

// ParseRates parses the two divisors. Both must be strictly positive.
func ParseRates(kd, usd string) (Rates, error) {
	var r Rates
	var err error
	if r.KD, err = decimal.NewFromString(kd); err != nil {
		return Rates{}, fmt.Errorf("invalid KD rate %q: %w", kd, err)
	}
	if r.USD, err = decimal.NewFromString(usd); err != nil {
		return Rates{}, fmt.Errorf("invalid USD rate %q: %w", usd, err)
	}
	if !r.KD.IsPositive() || !r.USD.IsPositive() {
		return Rates{}, fmt.Errorf("rates must be positive, got KD=%s USD=%s", kd, usd)
	}
	return r, nil
}

// Converted is an amount with its currency-converted views, rounded to 2 decimals.
type Converted struct {
	Amount decimal.Decimal
	KD     decimal.Decimal
	USD    decimal.Decimal
}

// Convert divides v by each rate. A zero rate converts to zero.
func (r Rates) Convert(v decimal.Decimal) Converted {
	return Converted{
		Amount: v,
		KD:     divide(v, r.KD),
		USD:    divide(v, r.USD),
	}
}

func divide(v, rate decimal.Decimal) decimal.Decimal {
	if rate.IsZero() {
		return decimal.Zero
	}
	return v.Div(rate).Round(2)
}

// Convert returns the converted views of both totals.
func (t Totals) Convert(r Rates) (give, take Converted) {
	return r.Convert(t.Give), r.Convert(t.Take)
}
