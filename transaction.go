package taxhelper

import (
	"github.com/shopspring/decimal"
	"github.com/youce23/paypal-tax-helper/date"
)

// Currency is an ISO-4217 currency code as it appears in the account export.
type Currency string

const (
	USD Currency = "USD"
	JPY Currency = "JPY"
)

// BalanceEffect classifies how a transaction row affects the account balance.
// The account export labels rows in Japanese; anything that is neither a
// deposit nor a withdrawal (holds, reversals, fee detail lines...) is Other
// and ignored by the engine.
type BalanceEffect int

const (
	Other BalanceEffect = iota
	Deposit
	Withdrawal
)

// Balance-effect labels used by the account's CSV export.
const (
	labelDeposit    = "入金"
	labelWithdrawal = "引落し"
)

// ParseBalanceEffect maps a raw balance-effect label to its kind.
// Unrecognized labels are Other, never an error.
func ParseBalanceEffect(label string) BalanceEffect {
	switch label {
	case labelDeposit:
		return Deposit
	case labelWithdrawal:
		return Withdrawal
	default:
		return Other
	}
}

func (e BalanceEffect) String() string {
	switch e {
	case Deposit:
		return labelDeposit
	case Withdrawal:
		return labelWithdrawal
	default:
		return "other"
	}
}

// Transaction is one normalized row of the account ledger. Net is signed:
// the export records outflows as negative amounts.
type Transaction struct {
	Date     date.Date
	Currency Currency
	Effect   BalanceEffect
	Net      decimal.Decimal
}

// NewTransaction builds a transaction row.
func NewTransaction(on date.Date, cur Currency, effect BalanceEffect, net decimal.Decimal) Transaction {
	return Transaction{Date: on, Currency: cur, Effect: effect, Net: net}
}
