// internal/scenario/loader.go
//
// 讀取並驗證 YAML 情境檔。
// 驗證只檢查結構（ID、種類、操作、參照關係）；數值本身留給帳戶模型判斷。
package scenario

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"bankaccounts/internal/bank"
)

//go:embed demo.yaml
var demoYAML []byte

// Demo 回傳內建的示範情境（Alice / Bob / Charlie）。
func Demo() (Scenario, error) {
	return Parse(demoYAML, "demo.yaml")
}

// Load 讀取指定路徑的情境檔。
func Load(path string) (Scenario, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("scenario.load %s: %w", path, err)
	}
	return Parse(b, path)
}

// Parse 解析 YAML 內容；name 僅用於錯誤訊息。未知欄位視為錯誤。
func Parse(b []byte, name string) (Scenario, error) {
	var s Scenario
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return Scenario{}, fmt.Errorf("%w: %s: empty document", ErrInvalid, name)
		}
		return Scenario{}, fmt.Errorf("%w: %s: %v", ErrInvalid, name, err)
	}
	if err := validate(s); err != nil {
		return Scenario{}, fmt.Errorf("%w: %s: %v", ErrInvalid, name, err)
	}
	return s, nil
}

func validate(s Scenario) error {
	kinds := make(map[string]bank.Kind, len(s.Accounts))
	for i, a := range s.Accounts {
		if a.ID == "" {
			return fmt.Errorf("accounts[%d].id is required", i)
		}
		if _, dup := kinds[a.ID]; dup {
			return fmt.Errorf("accounts[%d].id %q is duplicated", i, a.ID)
		}
		k, err := bank.ParseKind(a.Kind)
		if err != nil {
			return fmt.Errorf("accounts[%d].kind: %v", i, err)
		}
		kinds[a.ID] = k
	}

	for i, st := range s.Steps {
		k, ok := kinds[st.Account]
		if !ok {
			return fmt.Errorf("steps[%d].account %q is not declared", i, st.Account)
		}
		if !st.Op.valid() {
			return fmt.Errorf("steps[%d].op %q is unknown", i, st.Op)
		}
		if st.Op.NeedsAmount() && st.Amount == nil {
			return fmt.Errorf("steps[%d].amount is required for %s", i, st.Op)
		}
		if st.Op == OpApplyInterest && k != bank.KindSavings {
			return fmt.Errorf("steps[%d].op apply_interest needs a savings account, %q is %s", i, st.Account, k)
		}
	}
	return nil
}
