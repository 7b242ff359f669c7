// internal/bank/withdrawal.go

package bank

import "github.com/shopspring/decimal"

// Outcome 區分提款是否足額。
type Outcome int

const (
	Sufficient Outcome = iota + 1
	Insufficient
)

func (o Outcome) String() string {
	switch o {
	case Sufficient:
		return "sufficient"
	case Insufficient:
		return "insufficient"
	default:
		return "unknown"
	}
}

// Withdrawal 為一次提款的結果。
// Insufficient 時餘額不變，Balance 為目前餘額；Fee 僅支票帳戶會填入。
type Withdrawal struct {
	Outcome Outcome
	Amount  decimal.Decimal
	Fee     decimal.Decimal
	Balance decimal.Decimal
	Message string
}

// OK 回報是否已實際扣款。
func (w Withdrawal) OK() bool { return w.Outcome == Sufficient }

func (w Withdrawal) String() string { return w.Message }
