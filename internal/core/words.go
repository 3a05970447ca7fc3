package core

import "strings"

var (
	onesWords = []string{"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine"}
	teenWords = []string{"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen", "Seventeen", "Eighteen", "Nineteen"}
	tensWords = []string{"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety"}
)

// underThousand appends the words for 0 < n < 1000 to parts.
func underThousand(parts []string, n int64) []string {
	if n >= 100 {
		parts = append(parts, onesWords[n/100], "Hundred")
		n %= 100
	}
	switch {
	case n >= 20:
		parts = append(parts, tensWords[n/10])
		if n%10 != 0 {
			parts = append(parts, onesWords[n%10])
		}
	case n >= 10:
		parts = append(parts, teenWords[n-10])
	case n > 0:
		parts = append(parts, onesWords[n])
	}
	return parts
}

// groupWords appends the Indian-numbering words for n: successive division
// by crore (10^7), lakh (10^5), and thousand (10^3), then the remainder
// under 1000. The crore quotient can itself exceed 999, so that group
// recurses ("One Lakh Crore" and up).
func groupWords(parts []string, n int64) []string {
	if n >= 10_000_000 {
		parts = groupWords(parts, n/10_000_000)
		parts = append(parts, "Crore")
		n %= 10_000_000
	}
	if n >= 100_000 {
		parts = underThousand(parts, n/100_000)
		parts = append(parts, "Lakh")
		n %= 100_000
	}
	if n >= 1_000 {
		parts = underThousand(parts, n/1_000)
		parts = append(parts, "Thousand")
		n %= 1_000
	}
	return underThousand(parts, n)
}

// AmountInWords renders a whole-rupee amount in words using the Indian
// numbering system (crore/lakh/thousand). Zero renders as the literal
// "Zero"; every other amount ends in "Rupees Only". The caller rounds
// fractional paise before calling.
func AmountInWords(n int64) string {
	if n == 0 {
		return "Zero"
	}
	parts := groupWords(nil, n)
	parts = append(parts, "Rupees", "Only")
	return strings.Join(parts, " ")
}
