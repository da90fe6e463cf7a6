// Package textutil provides pure formatting helpers shared by the ETP
// generator and the assistant: monetary values in the Brazilian convention,
// bounded truncation for prompt embedding, and chunk windowing.
package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// NotInformed is the placeholder rendered for absent numeric fields.
const NotInformed = "Não informado"

var brPrinter = message.NewPrinter(language.BrazilianPortuguese)

// FormatCurrency renders a monetary value in the Brazilian convention
// (grouping dot, decimal comma): 1234567.5 -> "R$ 1.234.567,50".
// A nil value renders as "Não informado".
func FormatCurrency(valor *float64) string {
	if valor == nil {
		return NotInformed
	}
	return brPrinter.Sprintf("R$ %v", number.Decimal(*valor,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2)))
}

// Truncate limits s to max runes, appending "..." when content was cut.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}

// Windows slices s into rune windows of at most size, consecutive windows
// sharing overlap runes. Used as the last resort when a text block has no
// natural boundary to split on.
func Windows(s string, size, overlap int) []string {
	if size <= 0 {
		return nil
	}
	if overlap < 0 || overlap >= size {
		overlap = 0
	}
	runes := []rune(s)
	if len(runes) == 0 {
		return nil
	}
	step := size - overlap
	var out []string
	for start := 0; start < len(runes); start += step {
		end := start + size
		if end > len(runes) {
			end = len(runes)
		}
		out = append(out, string(runes[start:end]))
		if end == len(runes) {
			break
		}
	}
	return out
}

// Tokens lowercases s and splits it on any non-letter, non-digit rune.
func Tokens(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// SharedTokens counts distinct tokens that appear in both a and b.
func SharedTokens(a, b string) int {
	seen := make(map[string]bool)
	for _, tok := range Tokens(a) {
		seen[tok] = true
	}
	counted := make(map[string]bool)
	shared := 0
	for _, tok := range Tokens(b) {
		if seen[tok] && !counted[tok] {
			counted[tok] = true
			shared++
		}
	}
	return shared
}
