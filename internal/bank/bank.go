// internal/bank/bank.go

// 本檔負責依帳戶種類建立帳戶：Kind 標記、預設值與建構選項。
// 利率與手續費以原始值保存於選項中，於建構時才統一經 ToAmount 轉換，
// 因此設定檔或情境檔中的錯誤值會得到與直接呼叫相同的 type 類錯誤。
package bank

import (
	"fmt"
	"strings"
)

// Kind 標記帳戶種類。
type Kind string

const (
	KindPlain    Kind = "plain"
	KindSavings  Kind = "savings"
	KindChecking Kind = "checking"
)

// 預設利率 2%、預設手續費 1 kr。
const (
	DefaultInterestRate   = 0.02
	DefaultTransactionFee = 1
)

// ParseKind 解析帳戶種類名稱（不分大小寫）；空字串視為 plain。
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case "", KindPlain:
		return KindPlain, nil
	case KindSavings, KindChecking:
		return k, nil
	default:
		return "", fmt.Errorf("unknown account kind %q", s)
	}
}

type options struct {
	interestRate   any
	transactionFee any
}

// Option 調整帳戶建構參數。
type Option func(*options)

// WithInterestRate 設定儲蓄帳戶利率；v 可為數字或數字文字。
func WithInterestRate(v any) Option {
	return func(o *options) { o.interestRate = v }
}

// WithTransactionFee 設定支票帳戶提款手續費；v 可為數字或數字文字。
func WithTransactionFee(v any) Option {
	return func(o *options) { o.transactionFee = v }
}

func buildOptions(opts []Option) options {
	o := options{
		interestRate:   DefaultInterestRate,
		transactionFee: DefaultTransactionFee,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// Open 依 kind 建立對應的帳戶。不適用於該種類的選項會被忽略。
// 建構失敗時回傳的 Account 為 nil（不會是包著 nil 指標的介面值）。
func Open(kind Kind, holder, balance any, opts ...Option) (Account, error) {
	switch kind {
	case KindPlain, "":
		a, err := NewAccount(holder, balance)
		if err != nil {
			return nil, err
		}
		return a, nil
	case KindSavings:
		a, err := NewSavingsAccount(holder, balance, opts...)
		if err != nil {
			return nil, err
		}
		return a, nil
	case KindChecking:
		a, err := NewCheckingAccount(holder, balance, opts...)
		if err != nil {
			return nil, err
		}
		return a, nil
	default:
		return nil, fmt.Errorf("unknown account kind %q", kind)
	}
}
