// internal/bank/coerce.go
//
// 數值轉換：所有由呼叫端傳入的金額、利率、手續費都先經過 ToAmount。
// 接受原生數字型別與可解析為十進位數字的文字，其餘一律回傳 type 類錯誤。

package bank

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
)

// 整數或浮點語法：可選正負號、可選小數部分、可選指數。
var numericText = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

// ToAmount 將任意輸入轉成有限的十進位數字。
// label 會出現在錯誤訊息中，例如 "Deposit amount must be a number or convertible to a number"。
func ToAmount(v any, label string) (decimal.Decimal, error) {
	switch x := v.(type) {
	case decimal.Decimal:
		return inRange(x, label)
	case *decimal.Decimal:
		if x != nil {
			return inRange(*x, label)
		}
	case float64:
		return fromFloat(x, label)
	case float32:
		return fromFloat(float64(x), label)
	case int:
		return decimal.NewFromInt(int64(x)), nil
	case int8:
		return decimal.NewFromInt(int64(x)), nil
	case int16:
		return decimal.NewFromInt(int64(x)), nil
	case int32:
		return decimal.NewFromInt(int64(x)), nil
	case int64:
		return decimal.NewFromInt(x), nil
	case uint:
		return fromText(strconv.FormatUint(uint64(x), 10), label)
	case uint8:
		return decimal.NewFromInt(int64(x)), nil
	case uint16:
		return decimal.NewFromInt(int64(x)), nil
	case uint32:
		return decimal.NewFromInt(int64(x)), nil
	case uint64:
		return fromText(strconv.FormatUint(x, 10), label)
	case json.Number:
		return fromText(string(x), label)
	case string:
		return fromText(x, label)
	case []byte:
		return fromText(string(x), label)
	}
	return decimal.Zero, typeError(label)
}

func fromFloat(f float64, label string) (decimal.Decimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero, typeError(label)
	}
	return decimal.NewFromFloat(f), nil
}

func fromText(s, label string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if !numericText.MatchString(s) {
		return decimal.Zero, typeError(label)
	}
	d, err := decimal.NewFromString(strings.TrimPrefix(s, "+"))
	if err != nil {
		return decimal.Zero, typeError(label)
	}
	return inRange(d, label)
}

// 十進位數量級上下限，約為 float64 可表示的範圍。
const (
	maxMagnitude = 309
	minMagnitude = -330
)

// inRange 只看係數位數與指數判斷數量級，不展開數值本身。
// 超出 float64 上限（如 "1e400"）視為非有限數；小於下限則與浮點數相同下溢為 0。
func inRange(d decimal.Decimal, label string) (decimal.Decimal, error) {
	if d.IsZero() {
		return decimal.Zero, nil
	}
	c := d.Coefficient()
	mag := int64(d.Exponent()) + int64(len(c.Abs(c).String()))
	switch {
	case mag > maxMagnitude+1:
		return decimal.Zero, typeError(label)
	case mag < minMagnitude:
		return decimal.Zero, nil
	case mag >= maxMagnitude:
		if f, _ := d.Float64(); math.IsInf(f, 0) {
			return decimal.Zero, typeError(label)
		}
	}
	return d, nil
}

// HolderText 將任意持有人值轉為文字，例如 123 → "123"、45.67 → "45.67"。
func HolderText(v any) string {
	if s, err := cast.ToStringE(v); err == nil {
		return s
	}
	return fmt.Sprint(v)
}
