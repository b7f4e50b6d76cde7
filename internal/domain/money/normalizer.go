package money

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Accepted user-input grammar: optional "R$" prefix, digits with optional
// "."-separated thousands groups, optional decimal comma with 1-2 digits.
// No sign: negative amounts are not valid input in this domain.
var (
	inputPattern     = regexp.MustCompile(`^(?:R\$\s*)?(?:\d{1,3}(?:\.\d{3})+|\d+)(?:,\d{1,2})?$`)
	thousandsPattern = regexp.MustCompile(`^\d{1,3}(?:\.\d{3})+$`)
)

// ValidateInput reports whether text is acceptable form-field input: empty
// (meaning "not yet entered") or matching the pt-BR decimal grammar. A bare
// or trailing comma is invalid.
func ValidateInput(text string) bool {
	s := strings.TrimSpace(text)
	if s == "" {
		return true
	}
	return inputPattern.MatchString(s)
}

// ParseDecimal converts locale-formatted text into an exact decimal.
//
// Empty text returns nil, meaning "unset": a normal UI state, distinct
// from zero and not an error. Unparsable or negative text also returns nil;
// callers treat any nil as "no value entered".
//
// Both pt-BR ("1.234,56") and machine ("1234.56") forms are accepted. A
// dot-only string is read as thousands groups when it matches the 3-digit
// grouping ("1.234"), as a machine decimal otherwise ("12.5").
// More than 2 fractional digits round half away from zero to 2.
func ParseDecimal(text string) *decimal.Decimal {
	s := strings.TrimSpace(text)
	if s == "" {
		return nil
	}
	s = strings.TrimPrefix(s, "R$")
	s = strings.ReplaceAll(s, " ", " ")
	s = strings.ReplaceAll(s, " ", "")
	if s == "" {
		return nil
	}

	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	} else if thousandsPattern.MatchString(s) {
		s = strings.ReplaceAll(s, ".", "")
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil
	}
	if d.IsNegative() {
		return nil
	}
	d = d.Round(2)
	return &d
}

// ParseAmount is ParseDecimal lifted into Money. nil means "unset".
func ParseAmount(text string) *Money {
	d := ParseDecimal(text)
	if d == nil {
		return nil
	}
	return &Money{amount: *d}
}

// Format renders a Money as pt-BR display text: 2 decimals, comma decimal
// separator, dot thousands separator. Example: 1234.56 -> "1.234,56".
func Format(m Money) string {
	fixed := m.amount.StringFixed(2)
	intPart, fracPart, _ := strings.Cut(fixed, ".")
	return groupThousands(intPart) + "," + fracPart
}

// FormatWithSymbol is Format with the "R$ " currency prefix.
func FormatWithSymbol(m Money) string {
	return "R$ " + Format(m)
}

// FormatPtr renders nil (unset) as the empty string.
func FormatPtr(m *Money) string {
	if m == nil {
		return ""
	}
	return Format(*m)
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
