// internal/bank/savings.go

package bank

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// InterestBearer 為可計息的帳戶。
type InterestBearer interface {
	Account
	InterestRate() decimal.Decimal
	ApplyInterest() string
}

// Savings 為儲蓄帳戶，依利率按需計息；存提款沿用 Plain。
type Savings struct {
	Plain
	rate decimal.Decimal
}

var _ InterestBearer = (*Savings)(nil)

// NewSavingsAccount 建立儲蓄帳戶，利率預設為 DefaultInterestRate。
func NewSavingsAccount(holder, balance any, opts ...Option) (*Savings, error) {
	p, err := newPlain(holder, balance)
	if err != nil {
		return nil, err
	}
	o := buildOptions(opts)
	rate, err := ToAmount(o.interestRate, "Interest rate")
	if err != nil {
		return nil, err
	}
	return &Savings{Plain: p, rate: rate}, nil
}

func (s *Savings) Kind() Kind { return KindSavings }

func (s *Savings) InterestRate() decimal.Decimal { return s.rate }

// ApplyInterest 以目前餘額乘上利率計息並入帳。利率不設上下限。
func (s *Savings) ApplyInterest() string {
	old := s.balance
	interest := old.Mul(s.rate)
	s.balance = old.Add(interest)
	return fmt.Sprintf("Applied %s interest. Old balance: %s kr, Interest: %s kr, New balance: %s kr",
		percent(s.rate), money(old), money(interest), money(s.balance))
}

func (s *Savings) Info() string {
	return fmt.Sprintf("%s, Interest Rate: %s", s.Plain.Info(), percent(s.rate))
}
