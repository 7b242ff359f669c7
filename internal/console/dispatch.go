// internal/console/dispatch.go
//
// 本檔負責將情境中的操作名稱對應到帳戶方法。
// 與 runner.go 分離：runner 負責流程與結果彙整，這裡只負責「操作如何被執行」。
package console

import (
	"errors"

	"bankaccounts/internal/bank"
	"bankaccounts/internal/scenario"
)

// errNotInterestBearing 代表對非儲蓄帳戶執行計息。
// 情境檔載入時已檢查，此處僅防止直接組出的 Scenario 繞過驗證。
var errNotInterestBearing = errors.New("apply_interest needs a savings account")

// outcome 為單一操作的結果；ok=false 且 err=nil 表示餘額不足的正常回傳。
type outcome struct {
	msg string
	ok  bool
}

type opFunc func(a bank.Account, amount any) (outcome, error)

var ops = map[scenario.Op]opFunc{
	scenario.OpDeposit: func(a bank.Account, amount any) (outcome, error) {
		msg, err := a.Deposit(amount)
		return outcome{msg: msg, ok: err == nil}, err
	},
	scenario.OpWithdraw: func(a bank.Account, amount any) (outcome, error) {
		w, err := a.Withdraw(amount)
		if err != nil {
			return outcome{}, err
		}
		return outcome{msg: w.Message, ok: w.OK()}, nil
	},
	scenario.OpApplyInterest: func(a bank.Account, _ any) (outcome, error) {
		ib, ok := a.(bank.InterestBearer)
		if !ok {
			return outcome{}, errNotInterestBearing
		}
		return outcome{msg: ib.ApplyInterest(), ok: true}, nil
	},
	scenario.OpInfo: func(a bank.Account, _ any) (outcome, error) {
		return outcome{msg: a.Info(), ok: true}, nil
	},
}
