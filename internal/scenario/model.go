// internal/scenario/model.go
//
// 定義情境檔（scenario）的結構：要建立哪些帳戶、依序執行哪些操作。
// 金額、利率、手續費、持有人皆保留 YAML 解析出的原始值（int、float64、string…），
// 交由帳戶模型轉換，因此無法轉換的值會在執行時以 type 類錯誤呈現。
package scenario

import "errors"

// ErrInvalid 代表情境檔結構不合法。
var ErrInvalid = errors.New("invalid scenario")

// Op 為步驟要執行的帳戶操作。
type Op string

const (
	OpDeposit       Op = "deposit"
	OpWithdraw      Op = "withdraw"
	OpApplyInterest Op = "apply_interest"
	OpInfo          Op = "info"
)

// NeedsAmount 回報該操作是否需要金額。
func (o Op) NeedsAmount() bool {
	return o == OpDeposit || o == OpWithdraw
}

func (o Op) valid() bool {
	switch o {
	case OpDeposit, OpWithdraw, OpApplyInterest, OpInfo:
		return true
	}
	return false
}

// Scenario 為一份完整情境。
type Scenario struct {
	Name     string        `yaml:"name"`
	Accounts []AccountSpec `yaml:"accounts"`
	Steps    []Step        `yaml:"steps"`
}

// AccountSpec 描述一個要建立的帳戶。
// InterestRate 與 TransactionFee 為 nil 時使用設定檔預設值。
type AccountSpec struct {
	ID             string `yaml:"id"`
	Kind           string `yaml:"kind"`
	Title          string `yaml:"title"`
	Holder         any    `yaml:"holder"`
	Balance        any    `yaml:"balance"`
	InterestRate   any    `yaml:"interest_rate"`
	TransactionFee any    `yaml:"transaction_fee"`
}

// Step 為對某帳戶執行的一次操作。
type Step struct {
	Account string `yaml:"account"`
	Op      Op     `yaml:"op"`
	Amount  any    `yaml:"amount"`
}

// Account 依 ID 取得帳戶描述。
func (s Scenario) Account(id string) (AccountSpec, bool) {
	for _, a := range s.Accounts {
		if a.ID == id {
			return a, true
		}
	}
	return AccountSpec{}, false
}
