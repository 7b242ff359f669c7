// internal/bank/checking.go

package bank

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Checking 為支票帳戶：每次提款另加固定手續費。
type Checking struct {
	Plain
	fee decimal.Decimal
}

var _ Account = (*Checking)(nil)

// NewCheckingAccount 建立支票帳戶，手續費預設為 DefaultTransactionFee。
func NewCheckingAccount(holder, balance any, opts ...Option) (*Checking, error) {
	p, err := newPlain(holder, balance)
	if err != nil {
		return nil, err
	}
	o := buildOptions(opts)
	fee, err := ToAmount(o.transactionFee, "Transaction fee")
	if err != nil {
		return nil, err
	}
	return &Checking{Plain: p, fee: fee}, nil
}

func (c *Checking) Kind() Kind { return KindChecking }

func (c *Checking) TransactionFee() decimal.Decimal { return c.fee }

// Withdraw 扣除「金額 + 手續費」；總額超過餘額時不扣款並回傳 Insufficient。
func (c *Checking) Withdraw(amount any) (Withdrawal, error) {
	amt, err := withdrawalAmount(amount)
	if err != nil {
		return Withdrawal{}, err
	}
	total := amt.Add(c.fee)
	if total.GreaterThan(c.balance) {
		return Withdrawal{
			Outcome: Insufficient,
			Amount:  amt,
			Fee:     c.fee,
			Balance: c.balance,
			Message: fmt.Sprintf("Withdrawal + fee exceeds balance (%s kr)", money(c.balance)),
		}, nil
	}
	c.balance = c.balance.Sub(total)
	return Withdrawal{
		Outcome: Sufficient,
		Amount:  amt,
		Fee:     c.fee,
		Balance: c.balance,
		Message: fmt.Sprintf("%s kr withdrawn with %s kr fee. Total balance: %s kr",
			money(amt), money(c.fee), money(c.balance)),
	}, nil
}

func (c *Checking) Info() string {
	return fmt.Sprintf("%s, Transaction Fee: %s kr", c.Plain.Info(), money(c.fee))
}
