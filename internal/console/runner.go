// internal/console/runner.go
//
// Package console 將情境（scenario）套用到帳戶模型，並把每一步的結果整理成 Report。
// Runner 只負責：
//  1. 依 AccountSpec 建立帳戶（缺少的利率/手續費使用注入的預設值）
//  2. 依序執行步驟，收集訊息與錯誤
//  3. 交給 render.go 輸出為文字或 JSON
//
// 帳戶模型不知道情境與輸出格式的存在；console 依賴 bank，反之則否。
package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"bankaccounts/internal/bank"
	"bankaccounts/internal/scenario"
)

// errNotOpened 標記因帳戶建立失敗而被略過的步驟。
var errNotOpened = errors.New("account was not opened")

// AccountResult 為一個帳戶的建立結果與最終狀態。
type AccountResult struct {
	ID        string `json:"id"`
	Kind      string `json:"kind"`
	Title     string `json:"title,omitempty"`
	Holder    string `json:"holder,omitempty"`
	Balance   string `json:"balance,omitempty"`
	Info      string `json:"info,omitempty"`
	Error     string `json:"error,omitempty"`
	ErrorKind string `json:"error_kind,omitempty"`
}

// StepResult 為單一步驟的結果。
// OK=false 且 Error 為空代表餘額不足（正常回傳，不算失敗）。
type StepResult struct {
	Index     int    `json:"index"`
	Account   string `json:"account"`
	Op        string `json:"op"`
	OK        bool   `json:"ok"`
	Skipped   bool   `json:"skipped,omitempty"`
	Message   string `json:"message,omitempty"`
	Error     string `json:"error,omitempty"`
	ErrorKind string `json:"error_kind,omitempty"`
	Balance   string `json:"balance,omitempty"`
}

// Failed 回報此步驟是否以錯誤結束。
func (r StepResult) Failed() bool { return r.Error != "" }

// Report 為整份情境的執行結果。
type Report struct {
	Scenario string          `json:"scenario"`
	Accounts []AccountResult `json:"accounts"`
	Steps    []StepResult    `json:"steps"`
}

// Failures 計算建立失敗的帳戶與失敗步驟（含被略過者）的總數。
func (r Report) Failures() int {
	n := 0
	for _, a := range r.Accounts {
		if a.Error != "" {
			n++
		}
	}
	for _, s := range r.Steps {
		if s.Failed() {
			n++
		}
	}
	return n
}

// Runner 執行情境。
// - log：記錄每一步的執行狀況（可為 nil，則不記錄）。
// - defaults：建立帳戶時的預設選項（通常來自設定檔）。
type Runner struct {
	log      *slog.Logger
	defaults []bank.Option
}

// NewRunner 建立 Runner。
func NewRunner(log *slog.Logger, defaults ...bank.Option) *Runner {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Runner{log: log, defaults: defaults}
}

// Run 依序建立帳戶並執行所有步驟。
// 型別或負數錯誤只會記錄在該步驟的結果中，不會中斷後續步驟；
// ctx 被取消時回傳目前為止的結果與 ctx.Err()。
func (r *Runner) Run(ctx context.Context, s scenario.Scenario) (Report, error) {
	rep := Report{Scenario: s.Name}
	accounts := make(map[string]bank.Account, len(s.Accounts))
	index := make(map[string]int, len(s.Accounts))

	for _, def := range s.Accounts {
		if err := ctx.Err(); err != nil {
			return rep, err
		}
		res, acc := r.open(def)
		index[def.ID] = len(rep.Accounts)
		rep.Accounts = append(rep.Accounts, res)
		if acc != nil {
			accounts[def.ID] = acc
		}
	}

	for i, st := range s.Steps {
		if err := ctx.Err(); err != nil {
			return rep, err
		}
		res := r.apply(i, st, accounts[st.Account])
		rep.Steps = append(rep.Steps, res)
	}

	// 回填各帳戶最終狀態
	for id, acc := range accounts {
		a := &rep.Accounts[index[id]]
		a.Balance = acc.Balance().StringFixed(2)
		a.Info = acc.Info()
	}
	return rep, nil
}

func (r *Runner) open(def scenario.AccountSpec) (AccountResult, bank.Account) {
	res := AccountResult{ID: def.ID, Kind: def.Kind, Title: def.Title}

	kind, err := bank.ParseKind(def.Kind)
	if err != nil {
		res.Error = err.Error()
		r.log.Warn("account.open_failed", "account", def.ID, "err", err)
		return res, nil
	}
	res.Kind = string(kind)

	opts := append([]bank.Option{}, r.defaults...)
	if def.InterestRate != nil {
		opts = append(opts, bank.WithInterestRate(def.InterestRate))
	}
	if def.TransactionFee != nil {
		opts = append(opts, bank.WithTransactionFee(def.TransactionFee))
	}
	balance := def.Balance
	if balance == nil {
		balance = 0
	}

	acc, err := bank.Open(kind, def.Holder, balance, opts...)
	if err != nil {
		res.Error, res.ErrorKind = describe(err)
		r.log.Warn("account.open_failed", "account", def.ID, "kind", kind, "err", err)
		return res, nil
	}
	res.Holder = acc.Holder()
	r.log.Debug("account.opened", "account", def.ID, "kind", kind, "balance", acc.Balance().String())
	return res, acc
}

func (r *Runner) apply(i int, st scenario.Step, acc bank.Account) StepResult {
	res := StepResult{Index: i, Account: st.Account, Op: string(st.Op)}
	if acc == nil {
		res.Skipped = true
		res.Error = errNotOpened.Error()
		return res
	}

	fn, ok := ops[st.Op]
	if !ok {
		res.Error = fmt.Sprintf("unknown op %q", st.Op)
		r.log.Warn("step.failed", "index", i, "account", st.Account, "op", st.Op, "err", res.Error)
		return res
	}

	out, err := fn(acc, st.Amount)
	res.Balance = acc.Balance().StringFixed(2)
	if err != nil {
		res.Error, res.ErrorKind = describe(err)
		r.log.Warn("step.failed", "index", i, "account", st.Account, "op", st.Op, "err", err)
		return res
	}
	res.OK = out.ok
	res.Message = out.msg
	r.log.Debug("step.applied", "index", i, "account", st.Account, "op", st.Op, "ok", out.ok, "balance", res.Balance)
	return res
}

// describe 取出錯誤訊息與帳戶模型的錯誤類別（若有）。
func describe(err error) (msg, kind string) {
	var be *bank.Error
	if errors.As(err, &be) {
		return be.Error(), string(be.Kind)
	}
	return err.Error(), ""
}
