package taxhelper

import (
	"encoding/csv"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/youce23/paypal-tax-helper/date"
)

// Ledger represents the list of account transactions.
//
// In a Ledger transactions are always in chronological order: Append keeps
// the list stable-sorted by date, so same-day rows stay in insertion order.
// The engine processes transactions strictly in ledger order; a caller that
// needs a different same-day order must build the ledger in that order.
//
// JPY withdrawal legs are additionally indexed by date so settlement lookup
// during recognition is O(1) instead of a scan per withdrawal.
type Ledger struct {
	transactions []Transaction
	settlements  map[date.Date][]Transaction // JPY withdrawal legs by date
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{settlements: make(map[date.Date][]Transaction)}
}

// Len returns the number of transactions in the ledger.
func (l *Ledger) Len() int { return len(l.transactions) }

// Append adds a transaction, keeping the ledger sorted by date.
func (l *Ledger) Append(tx Transaction) *Ledger {
	// Find the insertion point after all same-day rows to keep a stable order.
	i, _ := slices.BinarySearchFunc(l.transactions, tx, func(a, b Transaction) int {
		if a.Date.After(b.Date) {
			return 1
		}
		return -1
	})
	l.transactions = slices.Insert(l.transactions, i, tx)
	if tx.Currency == JPY && tx.Effect == Withdrawal {
		l.settlements[tx.Date] = append(l.settlements[tx.Date], tx)
	}
	return l
}

// All calls yield for every transaction in chronological order.
func (l *Ledger) All(yield func(Transaction) bool) {
	for _, tx := range l.transactions {
		if !yield(tx) {
			return
		}
	}
}

// SettlementOn returns the JPY withdrawal leg recorded on a given day and
// how many candidate legs share that day. When several legs share the day
// the first one is returned; the caller decides how to surface the
// ambiguity. n == 0 means the day has no settlement leg.
func (l *Ledger) SettlementOn(day date.Date) (tx Transaction, n int) {
	legs := l.settlements[day]
	if len(legs) == 0 {
		return Transaction{}, 0
	}
	return legs[0], len(legs)
}

// ledger CSV columns of the account export.
const (
	colLedgerDate     = "日付"
	colLedgerCurrency = "通貨"
	colLedgerEffect   = "残高への影響"
	colLedgerNet      = "正味"
)

// DecodeLedger reads an account ledger in CSV format.
//
// The export carries many more columns than the four used here; columns are
// located by header name so their position and surroundings do not matter.
// Unlike the rate table, ledger rows are parsed strictly: an unparseable
// date or amount aborts the decode with the line number, because a silently
// dropped transaction would corrupt every downstream figure.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("cannot read ledger header: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimPrefix(strings.TrimSpace(name), "\uFEFF")] = i
	}
	for _, name := range []string{colLedgerDate, colLedgerCurrency, colLedgerEffect, colLedgerNet} {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("ledger is missing the %q column", name)
		}
	}

	ledger := NewLedger()
	for line := 2; ; line++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("cannot read ledger line %d: %w", line, err)
		}
		field := func(name string) string {
			i := cols[name]
			if i >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[i])
		}

		on, err := date.Parse(field(colLedgerDate))
		if err != nil {
			return nil, fmt.Errorf("ledger line %d: %w", line, err)
		}
		// The export formats amounts with thousands separators.
		raw := strings.ReplaceAll(field(colLedgerNet), ",", "")
		net, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, fmt.Errorf("ledger line %d: invalid amount %q: %w", line, field(colLedgerNet), err)
		}

		ledger.Append(NewTransaction(on, Currency(field(colLedgerCurrency)), ParseBalanceEffect(field(colLedgerEffect)), net))
	}
	return ledger, nil
}
