// internal/bank/errors.go
//
// 本檔集中定義帳戶模型的錯誤類別。
// 只有兩種：無法轉成數字的輸入（type）與負數金額（value）。
// 餘額不足「不是」錯誤，而是 Withdrawal 的正常回傳結果。

package bank

import "errors"

var (
	// ErrNotNumber 代表輸入值無法轉換為有限數字。
	ErrNotNumber = errors.New("not a number")

	// ErrNegativeAmount 代表存款或提款金額為負數。
	ErrNegativeAmount = errors.New("negative amount")
)

// ErrorKind 為錯誤的粗分類，供上層決定如何呈現。
type ErrorKind string

const (
	KindType  ErrorKind = "type"
	KindValue ErrorKind = "value"
)

// Error 為帳戶模型回傳的錯誤。
// Msg 為給使用者看的完整訊息；Err 為對應的 sentinel，可用 errors.Is 比對。
type Error struct {
	Kind  ErrorKind
	Field string
	Msg   string
	Err   error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	return e.Msg
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsKind 判斷 err（含被包裝者）是否為指定類別的 *Error。
func IsKind(err error, kind ErrorKind) bool {
	var be *Error
	if errors.As(err, &be) {
		return be.Kind == kind
	}
	return false
}

func typeError(label string) error {
	return &Error{
		Kind:  KindType,
		Field: label,
		Msg:   label + " must be a number or convertible to a number",
		Err:   ErrNotNumber,
	}
}

func valueError(label string) error {
	return &Error{
		Kind:  KindValue,
		Field: label,
		Msg:   label + " cannot be negative",
		Err:   ErrNegativeAmount,
	}
}
