// Package finance provides the data model and store for a personal
// finance tracker. It is designed to be local-first: every record lives
// in plain JSON files the user owns, and every metric shown by the
// `pft` command-line tool is derived on demand from those records.
//
// The core functionalities include:
//   - Record Keeping: transactions (income and expenses), investments,
//     savings goals, cards and recurring payments, each kept in its own
//     collection with add/update/delete semantics.
//   - Derived Metrics: balance, income, expenses, savings rate, total
//     invested, expense breakdowns and monthly history, all computed
//     from the current collections and never persisted.
//   - Data Persistence: each collection is stored independently as a
//     JSON array in a canonical field order, so files are
//     human-readable and diff-friendly. A corrupt collection never
//     prevents the others from loading.
//
// This package serves as the foundational logic for the `pft`
// command-line tool; the CLI and renderers are pure consumers of the
// Store's read and write interface.
package finance
