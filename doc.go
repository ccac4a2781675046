// Package taxhelper turns the transaction history of a USD-denominated
// PayPal account into the artifacts needed for a Japanese tax return.
//
// The core functionalities include:
//   - Rate Table: a date-indexed table of daily TTM exchange rates with a
//     forward-fill lookup, so every transaction date resolves to the most
//     recent published quote.
//   - Ledger: the normalized, chronologically sorted list of account
//     transactions (date, currency, balance effect, net amount) decoded from
//     the account's CSV export.
//   - Recognition Engine: a single stateful pass over the ledger that values
//     each USD deposit in JPY as miscellaneous income, accumulates the JPY
//     cost basis of the held balance, and on each fully settled withdrawal
//     recognizes the foreign-exchange gain/loss and the spread expense
//     before resetting the balance to zero.
//   - Reporting: a merged chronological view with running USD/JPY balances,
//     and monthly/yearly aggregation of income and deductible expense.
//   - Data Persistence: CSV encoding of every report with the Japanese
//     column labels expected by the tax preparer, preserved losslessly.
//
// This package serves as the foundational logic for the `ptx` command-line
// tool.
package taxhelper
