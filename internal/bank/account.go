// Package bank 定義帳戶模型：一般帳戶、儲蓄帳戶（利息）與支票帳戶（提款手續費）。
// 本檔定義 Account 介面與一般帳戶 Plain，不含任何 I/O 或設定細節。
//
// 帳戶值不具備併發安全性，呼叫端需自行序列化對同一帳戶的操作。
package bank

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Account 為三種帳戶共同的操作集合。
type Account interface {
	Kind() Kind
	Holder() string
	Balance() decimal.Decimal
	Deposit(amount any) (string, error)
	Withdraw(amount any) (Withdrawal, error)
	Info() string
}

// Plain 為一般帳戶，也是 Savings 與 Checking 的共同基底。
type Plain struct {
	holder  string
	balance decimal.Decimal
}

// NewAccount 以持有人與初始餘額建立一般帳戶。
// holder 任意型別皆轉為文字；balance 需可轉為數字，否則回傳 type 類錯誤。
func NewAccount(holder, balance any) (*Plain, error) {
	p, err := newPlain(holder, balance)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func newPlain(holder, balance any) (Plain, error) {
	b, err := ToAmount(balance, "Balance")
	if err != nil {
		return Plain{}, err
	}
	return Plain{holder: HolderText(holder), balance: b}, nil
}

func (a *Plain) Kind() Kind { return KindPlain }

func (a *Plain) Holder() string { return a.holder }

func (a *Plain) Balance() decimal.Decimal { return a.balance }

// Deposit 存款：金額不得為負；成功後回傳包含金額與新餘額的確認訊息。
func (a *Plain) Deposit(amount any) (string, error) {
	amt, err := ToAmount(amount, "Deposit amount")
	if err != nil {
		return "", err
	}
	if amt.IsNegative() {
		return "", valueError("Deposit amount")
	}
	a.balance = a.balance.Add(amt)
	return fmt.Sprintf("%s kr was added. Total balance: %s kr", money(amt), money(a.balance)), nil
}

// Withdraw 提款：金額不得為負。
// 金額超過餘額時不扣款，回傳 Insufficient 結果而非錯誤。
func (a *Plain) Withdraw(amount any) (Withdrawal, error) {
	amt, err := withdrawalAmount(amount)
	if err != nil {
		return Withdrawal{}, err
	}
	if amt.GreaterThan(a.balance) {
		return Withdrawal{
			Outcome: Insufficient,
			Amount:  amt,
			Balance: a.balance,
			Message: fmt.Sprintf("Withdrawal amount exceeds your current balance of %s kr", money(a.balance)),
		}, nil
	}
	a.balance = a.balance.Sub(amt)
	return Withdrawal{
		Outcome: Sufficient,
		Amount:  amt,
		Balance: a.balance,
		Message: fmt.Sprintf("%s kr withdrawn. Total balance: %s kr", money(amt), money(a.balance)),
	}, nil
}

func (a *Plain) Info() string {
	return fmt.Sprintf("Account Holder: %s, Balance: %s kr", a.holder, money(a.balance))
}

func withdrawalAmount(amount any) (decimal.Decimal, error) {
	amt, err := ToAmount(amount, "Withdrawal amount")
	if err != nil {
		return decimal.Zero, err
	}
	if amt.IsNegative() {
		return decimal.Zero, valueError("Withdrawal amount")
	}
	return amt, nil
}

// money 以兩位小數顯示金額。
func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

var hundred = decimal.NewFromInt(100)

func percent(rate decimal.Decimal) string {
	return rate.Mul(hundred).StringFixed(2) + "%"
}
