package common

import (
	"math"
	"testing"
	"time"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{1234.56, "$1,234.56"},
		{0, "$0.00"},
		{-500.00, "-$500.00"},
		{1000000.99, "$1,000,000.99"},
		{0.29, "$0.29"},
		{12.345, "$12.34"}, // 12.345 sits just below the half-cent in binary
	}

	for _, tt := range tests {
		got := FormatCurrency(tt.value)
		if got != tt.want {
			t.Errorf("FormatCurrency(%v) = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestFormatCurrency_NonFinite(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		got := FormatCurrency(v)
		if got != "$0.00" {
			t.Errorf("FormatCurrency(%v) = %q, want %q", v, got, "$0.00")
		}
	}
}

func TestFormatSignedMoney(t *testing.T) {
	if got := FormatSignedMoney(200); got != "+$200.00" {
		t.Errorf("FormatSignedMoney(200) = %q, want %q", got, "+$200.00")
	}
	if got := FormatSignedMoney(-3.46); got != "-$3.46" {
		t.Errorf("FormatSignedMoney(-3.46) = %q, want %q", got, "-$3.46")
	}
}

func TestFormatSignedPct(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{2, "+2.00%"},
		{-3.456, "-3.46%"},
		{0, "+0.00%"},
		{math.NaN(), "0.00%"},
		{math.Inf(1), "0.00%"},
	}

	for _, tt := range tests {
		got := FormatSignedPct(tt.value)
		if got != tt.want {
			t.Errorf("FormatSignedPct(%v) = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestIsFresh(t *testing.T) {
	if IsFresh(time.Time{}, FreshnessQuote) {
		t.Error("zero timestamp should never be fresh")
	}
	if !IsFresh(time.Now(), FreshnessQuote) {
		t.Error("a just-written timestamp should be fresh")
	}
	if IsFresh(time.Now().Add(-FreshnessQuote-time.Minute), FreshnessQuote) {
		t.Error("a timestamp past the TTL should be stale")
	}
}
