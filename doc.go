// Package fintrack provides the ledger of a single-user personal finance tracker.
// It is designed to be local-first: the whole ledger lives in memory and is written
// back to a local key/value storage after every change.
//
// The core functionalities include:
//   - Ledger Management: recording income and expense transactions in a
//     newest-first sequence through a validated [Store.Add], and deleting them with
//     [Store.Remove].
//   - Aggregates: income, expense and balance totals ([Store.Summarize]) and
//     spending analytics per month, per category and per day.
//   - Data Persistence: the ledger round-trips through a single JSON document stored
//     under a fixed key of a [Storage]. A corrupt document never prevents start-up,
//     the store starts empty instead.
//   - Export: a human-readable JSON dump of the ledger ([Store.ExportText]).
//
// This package serves as the foundational logic for the `ft` command-line tool,
// which is only one possible front end: any presentation layer drives the ledger
// through the methods of [Store].
package fintrack
