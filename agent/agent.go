// Package agent suggests categories for uncategorized transactions using a
// Gemini model.
package agent

import (
	"context"
	"fmt"

	"github.com/etnz/cashcook"
	"go.uber.org/zap"
)

// Suggester proposes a category for a transaction.
//
// Unset is a valid answer and means "no opinion".
type Suggester interface {
	Suggest(ctx context.Context, tx cashcook.Transaction) (cashcook.Category, error)
}

// Categorize asks s for the category of every transaction of l that has none,
// and updates those for which a category is suggested. It returns the number of
// updated transactions.
//
// It stops at the first error of s; updates already made are kept.
func Categorize(ctx context.Context, l *cashcook.Ledger, s Suggester, logger *zap.Logger) (int, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	n := 0
	for _, tx := range l.Transactions() {
		if tx.Category != cashcook.Unset {
			continue
		}
		c, err := s.Suggest(ctx, tx)
		if err != nil {
			return n, fmt.Errorf("could not categorize transaction %d: %w", tx.ID, err)
		}
		if c == cashcook.Unset {
			logger.Debug("no category suggested", zap.Int64("id", tx.ID))
			continue
		}
		d := tx.Draft()
		d.Category = c
		if _, ok := l.Update(tx.ID, d); ok {
			logger.Info("categorized", zap.Int64("id", tx.ID), zap.String("category", string(c)))
			n++
		}
	}
	return n, nil
}
