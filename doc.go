// Package balancegrid computes period-aggregated account balances from a
// ledger of financial movements, organized along a fixed dimensional
// hierarchy (currency → account → year → month → date), and shapes them
// into a variable-granularity pivot grid driven by an independent
// expand/collapse selection.
//
// The core functionalities include:
//   - Ledger Indexing: grouping a flat list of movements into a nested
//     index keyed by currency, account label, year, month and calendar
//     date, preserving the original movement order.
//   - Rollup Calculation: computing opening balance, net-of-period and
//     closing balance for every node of the hierarchy in a single
//     bottom-up pass, consistent across all grain levels.
//   - Grain Selection: tracking which hierarchy nodes are expanded and
//     deciding, for any path, the deepest grain actually visible.
//   - Grid Generation: flattening the hierarchy under the current
//     selection into an ordered list of leaf columns with header spans.
//   - Currency Conversion: converting amounts to USD using a
//     units-per-USD rate table, degrading gracefully on missing rates.
//   - Detail Windowing: packing a category's movements into display
//     rows and paginating them.
//
// Every computation is a pure, synchronous function of its inputs: the
// engine holds no mutable state, and the structures it produces are
// immutable once returned. This package serves as the foundational
// logic for the `bgr` command-line tool.
package balancegrid
