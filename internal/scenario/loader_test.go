// internal/scenario/loader_test.go
//
// 驗證情境檔的解析與結構檢查；使用 t.TempDir() 確保不汙染本機環境。
package scenario

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "scenario.yaml")
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return p
}

func TestLoadValid(t *testing.T) {
	p := writeFile(t, `
name: Mixed input
accounts:
  - id: eve
    kind: Checking
    holder: 12345
    balance: "2000"
    transaction_fee: "15"
steps:
  - account: eve
    op: withdraw
    amount: 100
  - account: eve
    op: info
`)
	s, err := Load(p)
	if err != nil {
		t.Fatalf("Load err=%v", err)
	}
	if s.Name != "Mixed input" || len(s.Accounts) != 1 || len(s.Steps) != 2 {
		t.Fatalf("unexpected scenario: %+v", s)
	}

	a, ok := s.Account("eve")
	if !ok {
		t.Fatalf("account eve not found")
	}
	// 原始值保留 YAML 型別，不在此層轉換
	if _, isInt := a.Holder.(int); !isInt {
		t.Fatalf("holder should stay an int, got %T", a.Holder)
	}
	if _, isStr := a.Balance.(string); !isStr {
		t.Fatalf("balance should stay a string, got %T", a.Balance)
	}
	if a.InterestRate != nil {
		t.Fatalf("interest_rate should be nil when omitted, got %v", a.InterestRate)
	}
	if s.Steps[0].Op != OpWithdraw || !s.Steps[0].Op.NeedsAmount() {
		t.Fatalf("unexpected step: %+v", s.Steps[0])
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("want ErrNotExist, got %v", err)
	}
}

func TestParseInvalid(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want string
	}{
		{"empty", ``, "empty document"},
		{"syntax", "accounts: [", "yaml"},
		{"unknown field", "accounts:\n  - id: a\n    ammount: 1\n", "ammount"},
		{"missing id", "accounts:\n  - kind: plain\n", "accounts[0].id is required"},
		{"duplicate id", "accounts:\n  - id: a\n  - id: a\n", `accounts[1].id "a" is duplicated`},
		{"bad kind", "accounts:\n  - id: a\n    kind: brokerage\n", "accounts[0].kind"},
		{"undeclared account", "accounts:\n  - id: a\nsteps:\n  - account: b\n    op: info\n", `steps[0].account "b" is not declared`},
		{"unknown op", "accounts:\n  - id: a\nsteps:\n  - account: a\n    op: transfer\n", `steps[0].op "transfer" is unknown`},
		{"missing amount", "accounts:\n  - id: a\nsteps:\n  - account: a\n    op: deposit\n", "steps[0].amount is required"},
		{"interest on plain", "accounts:\n  - id: a\nsteps:\n  - account: a\n    op: apply_interest\n", "needs a savings account"},
	}
	for _, c := range cases {
		_, err := Parse([]byte(c.doc), "test.yaml")
		if !errors.Is(err, ErrInvalid) {
			t.Fatalf("%s: want ErrInvalid, got %v", c.name, err)
		}
		if !strings.Contains(err.Error(), c.want) {
			t.Fatalf("%s: error %q should contain %q", c.name, err.Error(), c.want)
		}
		if !strings.Contains(err.Error(), "test.yaml") {
			t.Fatalf("%s: error should name the file: %v", c.name, err)
		}
	}
}

// 非數字金額在此層不擋，留給帳戶模型回報 type 類錯誤。
func TestParseKeepsNonNumericAmount(t *testing.T) {
	s, err := Parse([]byte("accounts:\n  - id: a\nsteps:\n  - account: a\n    op: deposit\n    amount: hello\n"), "x.yaml")
	if err != nil {
		t.Fatalf("Parse err=%v", err)
	}
	if s.Steps[0].Amount != "hello" {
		t.Fatalf("amount=%v", s.Steps[0].Amount)
	}
}

func TestDemo(t *testing.T) {
	s, err := Demo()
	if err != nil {
		t.Fatalf("Demo err=%v", err)
	}
	if len(s.Accounts) != 3 || len(s.Steps) != 7 {
		t.Fatalf("unexpected demo: %d accounts, %d steps", len(s.Accounts), len(s.Steps))
	}
	bob, ok := s.Account("bob")
	if !ok || bob.Kind != "savings" || bob.InterestRate != 0.05 {
		t.Fatalf("unexpected bob: %+v", bob)
	}
}
