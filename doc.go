// Package cashcook provides a small, local-first ledger of "give/take"
// transactions: money paid out and money received.
//
// The core functionalities include:
//   - Ledger Management: adding, editing, deleting and clearing transactions,
//     with every change persisted immediately.
//   - Search and Ordering: case-insensitive search on descriptions, and a
//     persistent sort by date, amount, type or category.
//   - Totals: give and take sums computed exactly with decimals, and their
//     conversion to other currencies through fixed rates.
//   - Data Persistence: the working set is stored as a human-readable JSON
//     array in a key-value Store, backed by a file, SQLite or PostgreSQL.
//
// This package serves as the foundational logic for the `cashcook`
// command-line tool.
package cashcook
