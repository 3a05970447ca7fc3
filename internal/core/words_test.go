package core_test

import (
	"testing"

	"gst-invoicing/internal/core"
)

func TestAmountInWords(t *testing.T) {
	tests := []struct {
		amount int64
		want   string
	}{
		{0, "Zero"},
		{1, "One Rupees Only"},
		{9, "Nine Rupees Only"},
		{10, "Ten Rupees Only"},
		{19, "Nineteen Rupees Only"},
		{20, "Twenty Rupees Only"},
		{25, "Twenty Five Rupees Only"},
		{100, "One Hundred Rupees Only"},
		{105, "One Hundred Five Rupees Only"},
		{708, "Seven Hundred Eight Rupees Only"},
		{999, "Nine Hundred Ninety Nine Rupees Only"},
		{1000, "One Thousand Rupees Only"},
		{1500, "One Thousand Five Hundred Rupees Only"},
		{20000, "Twenty Thousand Rupees Only"},
		{100000, "One Lakh Rupees Only"},
		{1234567, "Twelve Lakh Thirty Four Thousand Five Hundred Sixty Seven Rupees Only"},
		{10000000, "One Crore Rupees Only"},
		{56789012, "Five Crore Sixty Seven Lakh Eighty Nine Thousand Twelve Rupees Only"},
		{123000000, "Twelve Crore Thirty Lakh Rupees Only"},
		// Amounts beyond 999 crore recurse on the crore group.
		{10000000000, "One Thousand Crore Rupees Only"},
	}

	for _, tt := range tests {
		if got := core.AmountInWords(tt.amount); got != tt.want {
			t.Errorf("AmountInWords(%d) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}
