package cashcook

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/etnz/cashcook/date"
	"go.uber.org/zap"
)

// Op names the mutation that produced an Event.
type Op string

const (
	OpAdd    Op = "add"
	OpUpdate Op = "update"
	OpDelete Op = "delete"
	OpClear  Op = "clear"
	OpSort   Op = "sort"
	OpImport Op = "import"
)

// Event notifies subscribers that the working set changed.
type Event struct {
	Op  Op
	IDs []int64 // transactions touched by the operation, if any
}

// Ledger is the ordered working set of transactions.
//
// Every mutation persists the full working set through the on-change hook,
// then notifies subscribers. The order of transactions is the order of the
// last applied sort, or insertion order.
//
// A Ledger is not safe for concurrent use.
type Ledger struct {
	transactions []Transaction
	store        Store
	onChange     func([]Transaction) error
	observers    []func(Event)
	logger       *zap.Logger
	now          func() time.Time
	err          error
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithLogger sets the logger used to report recovered anomalies.
func WithLogger(logger *zap.Logger) Option {
	return func(l *Ledger) { l.logger = logger }
}

// WithClock sets the clock used to stamp and identify new transactions.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) { l.now = now }
}

// WithOnChange replaces the persistence hook run after every mutation.
// By default the ledger saves itself to its store.
func WithOnChange(hook func([]Transaction) error) Option {
	return func(l *Ledger) { l.onChange = hook }
}

// NewLedger creates an empty ledger that is not backed by any store.
func NewLedger(opts ...Option) *Ledger {
	l := &Ledger{
		transactions: make([]Transaction, 0),
		logger:       zap.NewNop(),
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Open loads the ledger saved in store.
//
// A missing or unparsable value yields an empty ledger: a warning is logged
// and no error is returned. Only a failure to read the store is an error.
// Duplicate ids are renumbered with a warning.
func Open(store Store, opts ...Option) (*Ledger, error) {
	l := NewLedger(append([]Option{func(l *Ledger) { l.store = store }}, opts...)...)
	if l.onChange == nil {
		l.onChange = l.save
	}

	text, ok, err := store.Load(Key)
	if err != nil {
		return nil, fmt.Errorf("could not load ledger: %w", err)
	}
	if !ok {
		l.logger.Debug("no saved ledger, starting empty", zap.String("key", Key))
		return l, nil
	}
	txs, err := unmarshalText(text)
	if err != nil {
		l.logger.Warn("saved ledger is unreadable, starting empty", zap.String("key", Key), zap.Error(err))
		return l, nil
	}
	l.transactions = txs
	l.renumberDuplicates()
	l.logger.Debug("ledger loaded", zap.Int("transactions", len(txs)))
	return l, nil
}

// renumberDuplicates gives a fresh id to every transaction whose id is already
// used by an earlier one. The first occurrence keeps its id.
func (l *Ledger) renumberDuplicates() {
	var top int64
	for _, tx := range l.transactions {
		top = max(top, tx.ID)
	}
	seen := make(map[int64]bool, len(l.transactions))
	for i := range l.transactions {
		tx := &l.transactions[i]
		if seen[tx.ID] {
			top++
			l.logger.Warn("duplicate id in saved ledger, renumbered", zap.Int64("id", tx.ID), zap.Int64("new_id", top))
			tx.ID = top
		}
		seen[tx.ID] = true
	}
}

// save is the default on-change hook.
func (l *Ledger) save(txs []Transaction) error {
	text, err := marshalText(txs)
	if err != nil {
		return err
	}
	return l.store.Save(Key, text)
}

// Save persists the working set now, as any mutation would.
func (l *Ledger) Save() error {
	l.persist()
	return l.err
}

// persist runs the on-change hook. A failure is logged and kept for Err; the
// in-memory state is not rolled back.
func (l *Ledger) persist() {
	if l.onChange == nil {
		return
	}
	if err := l.onChange(slices.Clone(l.transactions)); err != nil {
		l.err = fmt.Errorf("could not persist ledger: %w", err)
		l.logger.Error("persist failed, memory and store may diverge", zap.Error(err))
		return
	}
	l.err = nil
}

// Err returns the error of the last persist attempt, if it failed.
func (l *Ledger) Err() error { return l.err }

// Subscribe registers f to be called after every mutation.
func (l *Ledger) Subscribe(f func(Event)) {
	l.observers = append(l.observers, f)
}

func (l *Ledger) commit(op Op, ids ...int64) {
	l.persist()
	e := Event{Op: op, IDs: ids}
	for _, f := range l.observers {
		f(e)
	}
}

// Len returns the number of transactions.
func (l *Ledger) Len() int { return len(l.transactions) }

// Transactions returns a copy of the working set, in order.
func (l *Ledger) Transactions() []Transaction {
	return slices.Clone(l.transactions)
}

// Get returns the transaction with id.
func (l *Ledger) Get(id int64) (Transaction, bool) {
	i := l.index(id)
	if i < 0 {
		return Transaction{}, false
	}
	return l.transactions[i], true
}

func (l *Ledger) index(id int64) int {
	return slices.IndexFunc(l.transactions, func(tx Transaction) bool { return tx.ID == id })
}

// nextID derives an id from the clock, bumped past the largest id on collision.
func (l *Ledger) nextID(now time.Time) int64 {
	id := now.UnixMilli()
	if l.index(id) < 0 {
		return id
	}
	for _, tx := range l.transactions {
		id = max(id, tx.ID+1)
	}
	return id
}

// Add appends a new transaction built from d, stamped now.
// It returns false, and changes nothing, if d is not Complete or its type is
// neither give nor take. The type is stored lower case.
func (l *Ledger) Add(d Draft) (Transaction, bool) {
	d, ok := d.normalize()
	if !ok {
		return Transaction{}, false
	}
	now := l.now()
	tx := d.transaction(l.nextID(now), date.New(now))
	l.transactions = append(l.transactions, tx)
	l.commit(OpAdd, tx.ID)
	return tx, true
}

// Update replaces the fields of the transaction with id, in place. Its date is kept.
//
// It returns false, and changes nothing, if d is not Complete or its type is
// unknown. If no transaction has this id, nothing changes but the ledger is
// still persisted, and false is returned.
func (l *Ledger) Update(id int64, d Draft) (Transaction, bool) {
	d, ok := d.normalize()
	if !ok {
		return Transaction{}, false
	}
	i := l.index(id)
	if i < 0 {
		l.logger.Debug("update of an unknown transaction", zap.Int64("id", id))
		l.commit(OpUpdate)
		return Transaction{}, false
	}
	tx := d.transaction(id, l.transactions[i].Date)
	l.transactions[i] = tx
	l.commit(OpUpdate, id)
	return tx, true
}

// Delete removes the transaction with id, if any. The ledger is always persisted.
func (l *Ledger) Delete(id int64) {
	i := l.index(id)
	if i < 0 {
		l.commit(OpDelete)
		return
	}
	l.transactions = slices.Delete(l.transactions, i, i+1)
	l.commit(OpDelete, id)
}

// Clear removes all transactions. The ledger is always persisted.
func (l *Ledger) Clear() {
	l.transactions = make([]Transaction, 0)
	l.commit(OpClear)
}

// Import appends transactions keeping their id and date, and returns how many were added.
//
// Transactions that are not complete, have an unknown type, or whose id is
// already in the ledger are skipped, so importing the same file twice adds
// nothing the second time.
// A transaction with no date is stamped now.
func (l *Ledger) Import(txs ...Transaction) int {
	var added []int64
	for _, tx := range txs {
		d, ok := tx.Draft().normalize()
		if !ok || l.index(tx.ID) >= 0 {
			l.logger.Debug("skipping imported transaction", zap.Int64("id", tx.ID))
			continue
		}
		tx.Type = d.Type
		if tx.ID == 0 {
			tx.ID = l.nextID(l.now())
		}
		if tx.Date.IsZero() {
			tx.Date = date.New(l.now())
		}
		l.transactions = append(l.transactions, tx)
		added = append(added, tx.ID)
	}
	if len(added) > 0 {
		l.commit(OpImport, added...)
	}
	return len(added)
}

// Filter returns the transactions whose description contains search,
// case-insensitively. An empty search returns all transactions.
// The ledger is not modified.
func (l *Ledger) Filter(search string) []Transaction {
	if search == "" {
		return l.Transactions()
	}
	search = strings.ToLower(search)
	var res []Transaction
	for _, tx := range l.transactions {
		if strings.Contains(strings.ToLower(tx.Description), search) {
			res = append(res, tx)
		}
	}
	return res
}

// Within returns the transactions whose date is in r.
func (l *Ledger) Within(r date.Range) []Transaction {
	var res []Transaction
	for _, tx := range l.transactions {
		if r.Contains(tx.Date) {
			res = append(res, tx)
		}
	}
	return res
}
