package taxhelper

import (
	"log"

	"github.com/shopspring/decimal"
	"github.com/youce23/paypal-tax-helper/date"
)

// State is the running state of a recognition pass: the USD balance held in
// the account and the accumulated JPY cost basis assigned to it.
//
// Invariant: CostBasis is nonzero only while USDBalance is nonzero; a
// recognized withdrawal resets both to exactly zero together.
type State struct {
	USDBalance decimal.Decimal
	CostBasis  decimal.Decimal
}

// IncomeRecord values a USD deposit in JPY at the deposit day's rate.
// The JPY equivalent is miscellaneous income at acquisition.
type IncomeRecord struct {
	Date          date.Date
	USDAmount     decimal.Decimal
	Rate          decimal.Decimal
	JPYEquivalent decimal.Decimal // USDAmount × Rate
}

// WithdrawalRecord captures the recognition of a full drawdown: the whole
// USD balance is valued at the withdrawal day's rate, gain/loss is taken
// against the accumulated cost basis, and the shortfall between the
// mark-to-market value and the JPY actually disbursed is the spread expense.
type WithdrawalRecord struct {
	Date            date.Date
	USDAmount       decimal.Decimal // the whole balance before the withdrawal
	Rate            decimal.Decimal
	CostBasis       decimal.Decimal // accumulated basis before the withdrawal
	FXGainLoss      decimal.Decimal // JPYMarkToMarket − CostBasis
	SpreadExpense   decimal.Decimal // JPYMarkToMarket − ActualJPYOut
	ActualJPYOut    decimal.Decimal // magnitude of the JPY settlement leg
	JPYMarkToMarket decimal.Decimal // USDAmount × Rate
}

// Outcome reports what a withdrawal row did to the engine state.
type Outcome int

const (
	// Recognized: the withdrawal was matched to a JPY settlement leg,
	// a WithdrawalRecord was emitted and the state was reset.
	Recognized Outcome = iota
	// SkippedEmpty: the USD balance was zero, nothing to recognize.
	SkippedEmpty
	// SkippedUnsettled: no same-day JPY settlement leg exists yet; the
	// balance is left intact for a later settled withdrawal.
	SkippedUnsettled
)

// Recognition is the result of one engine pass over a ledger.
type Recognition struct {
	Incomes     []IncomeRecord
	Withdrawals []WithdrawalRecord

	// Unsettled counts USD withdrawal rows skipped for lack of a same-day
	// JPY settlement leg. Ambiguous counts recognitions where more than one
	// candidate leg shared the withdrawal date and the first was taken.
	Unsettled int
	Ambiguous int
}

// engine owns the mutable state for the duration of a single pass.
type engine struct {
	ledger *Ledger
	rates  *RateTable
	state  State
	result Recognition
}

// Recognize runs the recognition pass over the ledger, in ledger order.
//
// A missing rate aborts the pass with a *MissingRateError and no result:
// every downstream figure depends on complete rate coverage.
func Recognize(ledger *Ledger, rates *RateTable) (*Recognition, error) {
	e := &engine{ledger: ledger, rates: rates}
	for tx := range ledger.All {
		var err error
		switch {
		case tx.Currency == USD && tx.Effect == Deposit:
			err = e.recognizeIncome(tx)
		case tx.Currency == USD && tx.Effect == Withdrawal:
			_, err = e.recognizeWithdrawal(tx)
		default:
			// JPY legs and non-balance rows carry no recognition of their own.
		}
		if err != nil {
			return nil, err
		}
	}
	return &e.result, nil
}

// recognizeIncome values the deposit at the day's rate and accumulates it
// into the balance and the cost basis.
func (e *engine) recognizeIncome(tx Transaction) error {
	rate, err := e.rates.RateOn(tx.Date)
	if err != nil {
		return err
	}
	jpy := tx.Net.Mul(rate)

	e.state.USDBalance = e.state.USDBalance.Add(tx.Net)
	e.state.CostBasis = e.state.CostBasis.Add(jpy)

	e.result.Incomes = append(e.result.Incomes, IncomeRecord{
		Date:          tx.Date,
		USDAmount:     tx.Net,
		Rate:          rate,
		JPYEquivalent: jpy,
	})
	return nil
}

// recognizeWithdrawal recognizes a full drawdown of the current balance
// against its same-day JPY settlement leg, then resets the state.
func (e *engine) recognizeWithdrawal(tx Transaction) (Outcome, error) {
	if e.state.USDBalance.IsZero() {
		return SkippedEmpty, nil
	}

	rate, err := e.rates.RateOn(tx.Date)
	if err != nil {
		return SkippedEmpty, err
	}

	leg, n := e.ledger.SettlementOn(tx.Date)
	if n == 0 {
		// Not settled in JPY yet: leave the balance for a later withdrawal.
		e.result.Unsettled++
		return SkippedUnsettled, nil
	}
	if n > 1 {
		log.Printf("warning: %d JPY settlement legs on %s, using the first", n, tx.Date)
		e.result.Ambiguous++
	}

	mtm := e.state.USDBalance.Mul(rate)
	actual := leg.Net.Neg() // the leg records the outflow as negative

	e.result.Withdrawals = append(e.result.Withdrawals, WithdrawalRecord{
		Date:            tx.Date,
		USDAmount:       e.state.USDBalance,
		Rate:            rate,
		CostBasis:       e.state.CostBasis,
		FXGainLoss:      mtm.Sub(e.state.CostBasis),
		SpreadExpense:   mtm.Sub(actual),
		ActualJPYOut:    actual,
		JPYMarkToMarket: mtm,
	})

	// The whole balance left the account.
	e.state.USDBalance = decimal.Zero
	e.state.CostBasis = decimal.Zero
	return Recognized, nil
}
