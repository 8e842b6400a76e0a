package util

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

func TestFormatEGP(t *testing.T) {
	testCases := []struct {
		amount string
		want   string
	}{
		{"1250.5", "1250.50 EGP"},
		{"25.5", "25.50 EGP"},
		{"0", "0.00 EGP"},
		{"171", "171.00 EGP"},
	}

	for _, tc := range testCases {
		amount, err := decimal.NewFromString(tc.amount)
		if err != nil {
			t.Fatalf("bad amount %q: %v", tc.amount, err)
		}
		if got := FormatEGP(amount); got != tc.want {
			t.Errorf("FormatEGP(%s) = %q, want %q", tc.amount, got, tc.want)
		}
	}
}

func TestTruncateContentShortStringUntouched(t *testing.T) {
	if got := TruncateContent("Panadol", 10); got != "Panadol" {
		t.Fatalf("got %q, want the input unchanged", got)
	}
}

func TestTruncateContentCutsOnRunes(t *testing.T) {
	// Arabic text is multi-byte per rune; a byte-based cut would split
	// a sequence and emit invalid UTF-8.
	content := strings.Repeat("بنادول أقراص ", 20)

	got := TruncateContent(content, 15)

	if !utf8.ValidString(got) {
		t.Fatalf("truncated string is not valid UTF-8: %q", got)
	}
	runes := []rune(got)
	if len(runes) != 15+len("...") {
		t.Fatalf("rune length = %d, want 18", len(runes))
	}
	if !strings.HasSuffix(got, "...") {
		t.Fatalf("got %q, want ellipsis suffix", got)
	}
}
