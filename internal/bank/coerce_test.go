// internal/bank/coerce_test.go
//
// 驗證 ToAmount 與 HolderText 的轉換規則。

package bank

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/shopspring/decimal"
)

func TestToAmountValid(t *testing.T) {
	cases := []struct {
		in   any
		want string
	}{
		{1000, "1000"},
		{"1000", "1000"},
		{99.99, "99.99"},
		{"123.45", "123.45"},
		{int64(-7), "-7"},
		{uint(5), "5"},
		{uint64(math.MaxUint64), "18446744073709551615"},
		{float32(0.5), "0.5"},
		{"  12.5 ", "12.5"},
		{"+3", "3"},
		{"-2", "-2"},
		{".5", "0.5"},
		{"7.", "7"},
		{"1e3", "1000"},
		{"2.5E-1", "0.25"},
		{json.Number("42"), "42"},
		{[]byte("8"), "8"},
		{decimal.RequireFromString("3.14"), "3.14"},
	}
	for _, c := range cases {
		got, err := ToAmount(c.in, "Value")
		if err != nil {
			t.Fatalf("ToAmount(%#v) err=%v", c.in, err)
		}
		if !got.Equal(decimal.RequireFromString(c.want)) {
			t.Fatalf("ToAmount(%#v)=%s want=%s", c.in, got, c.want)
		}
	}
}

// 已是數字的值轉換後應維持原值。
func TestToAmountIdempotent(t *testing.T) {
	first, err := ToAmount("250.75", "Value")
	if err != nil {
		t.Fatal(err)
	}
	second, err := ToAmount(first, "Value")
	if err != nil {
		t.Fatal(err)
	}
	if !first.Equal(second) {
		t.Fatalf("first=%s second=%s", first, second)
	}
}

func TestToAmountInvalid(t *testing.T) {
	var nilDec *decimal.Decimal
	inputs := []any{
		"Fivehundred", "100s0", "abc123", "", "   ", "1_000", "1.2.3", "--1", "+-1",
		"inf", "NaN", "0x10", nil, true, nilDec, struct{}{},
		math.NaN(), math.Inf(1), math.Inf(-1),
		"1e400", "-1e400", "1e2000000000", "1.8e308", decimal.New(1, 2000000000),
	}
	for _, in := range inputs {
		_, err := ToAmount(in, "Deposit amount")
		if err == nil {
			t.Fatalf("ToAmount(%#v) expected error", in)
		}
		if !errors.Is(err, ErrNotNumber) || !IsKind(err, KindType) {
			t.Fatalf("ToAmount(%#v) want type error, got %v", in, err)
		}
		if err.Error() != "Deposit amount must be a number or convertible to a number" {
			t.Fatalf("unexpected message: %q", err.Error())
		}
	}
}

// TestToAmountMagnitude：極端指數不展開數值，極小值下溢為 0。
func TestToAmountMagnitude(t *testing.T) {
	cases := []struct {
		in   any
		want string
	}{
		{"1e308", "1e308"},
		{"1.7e308", "1.7e308"},
		{"1e-2000000000", "0"},
		{"-1e-400", "0"},
		{"0e2000000000", "0"},
		{"1e-300", "1e-300"},
	}
	for _, c := range cases {
		got, err := ToAmount(c.in, "Deposit amount")
		if err != nil {
			t.Fatalf("ToAmount(%#v) unexpected error: %v", c.in, err)
		}
		want, _ := decimal.NewFromString(c.want)
		if !got.Equal(want) {
			t.Fatalf("ToAmount(%#v) = %s, want %s", c.in, got, want)
		}
	}

	acc, err := NewAccount("A", 0)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := acc.Deposit("1e2000000000"); !IsKind(err, KindType) {
		t.Fatalf("huge exponent deposit want type error, got %v", err)
	}
	msg, err := acc.Deposit("1e-2000000000")
	if err != nil {
		t.Fatal(err)
	}
	if msg != "0.00 kr was added. Total balance: 0.00 kr" {
		t.Fatalf("unexpected message: %q", msg)
	}
}

func TestToAmountErrorCarriesLabel(t *testing.T) {
	_, err := ToAmount("xyz", "Interest rate")
	var be *Error
	if !errors.As(err, &be) {
		t.Fatalf("want *Error, got %T", err)
	}
	if be.Field != "Interest rate" || be.Kind != KindType {
		t.Fatalf("unexpected error: %+v", be)
	}
}

func TestHolderText(t *testing.T) {
	cases := []struct {
		in   any
		want string
	}{
		{"Alice", "Alice"},
		{12345, "12345"},
		{123.45, "123.45"},
		{45.67, "45.67"},
		{[]int{1, 2}, "[1 2]"},
	}
	for _, c := range cases {
		if got := HolderText(c.in); got != c.want {
			t.Fatalf("HolderText(%#v)=%q want=%q", c.in, got, c.want)
		}
	}
}
