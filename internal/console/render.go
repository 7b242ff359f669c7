// internal/console/render.go
//
// 本檔負責統一輸出格式：文字（人類閱讀）與 JSON（程式處理）。
// 所有輸出都經由這裡，runner 與 cli 不直接寫入 Writer。
package console

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

const (
	bannerFill = "===================="
	separator  = "------------------------------------------------------------"
)

// WriteJSON 以縮排 JSON 輸出整份 Report。
func WriteJSON(w io.Writer, rep Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}

// WriteText 以文字輸出 Report：標題橫幅，之後每個帳戶一段，段與段之間以虛線分隔。
// 錯誤以 "error: <訊息>" 顯示。
func WriteText(w io.Writer, rep Report) error {
	tw := &textWriter{w: w}

	if rep.Scenario != "" {
		tw.printf("\n%s %s %s\n\n", bannerFill, rep.Scenario, bannerFill)
	}

	titles := make(map[string]AccountResult, len(rep.Accounts))
	for _, a := range rep.Accounts {
		titles[a.ID] = a
	}

	// 建立失敗的帳戶只報告一次
	reported := make(map[string]bool)
	current := ""
	for i, st := range rep.Steps {
		if i == 0 || st.Account != current {
			if i > 0 {
				tw.println(separator)
			}
			current = st.Account
			a := titles[st.Account]
			tw.println(heading(a))
			if a.Error != "" && !reported[a.ID] {
				tw.println("error: " + a.Error)
				reported[a.ID] = true
			}
		}
		switch {
		case st.Skipped:
			tw.printf("skipped %s: %s\n", st.Op, st.Error)
		case st.Failed():
			tw.println("error: " + st.Error)
		default:
			tw.println(st.Message)
		}
	}

	// 沒有任何步驟的失敗帳戶仍需回報
	for _, a := range rep.Accounts {
		if a.Error != "" && !reported[a.ID] {
			tw.printf("%s\nerror: %s\n", heading(a), a.Error)
		}
	}
	return tw.err
}

func heading(a AccountResult) string {
	if strings.TrimSpace(a.Title) != "" {
		return a.Title
	}
	kind := a.Kind
	if kind == "" {
		kind = "plain"
	}
	return fmt.Sprintf("%s account (%s)", kind, a.ID)
}

// textWriter 保留第一個寫入錯誤，之後的寫入皆略過。
type textWriter struct {
	w   io.Writer
	err error
}

func (t *textWriter) printf(format string, args ...any) {
	if t.err != nil {
		return
	}
	_, t.err = fmt.Fprintf(t.w, format, args...)
}

func (t *textWriter) println(s string) {
	t.printf("%s\n", s)
}
