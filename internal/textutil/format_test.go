package textutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	v := 1234567.5
	assert.Equal(t, "R$ 1.234.567,50", FormatCurrency(&v))
}

func TestFormatCurrency_Small(t *testing.T) {
	v := 150.0
	assert.Equal(t, "R$ 150,00", FormatCurrency(&v))
}

func TestFormatCurrency_Nil(t *testing.T) {
	assert.Equal(t, "Não informado", FormatCurrency(nil))
}

func TestTruncate_ShortString(t *testing.T) {
	assert.Equal(t, "abc", Truncate("abc", 10))
}

func TestTruncate_LongString(t *testing.T) {
	got := Truncate(strings.Repeat("x", 250), 200)
	assert.Len(t, []rune(got), 203)
	assert.True(t, strings.HasSuffix(got, "..."))
}

func TestTruncate_Multibyte(t *testing.T) {
	got := Truncate("licitação pública", 9)
	assert.Equal(t, "licitação...", got)
}

func TestWindows(t *testing.T) {
	got := Windows(strings.Repeat("a", 25), 10, 2)

	assert.Equal(t, []string{
		strings.Repeat("a", 10),
		strings.Repeat("a", 10),
		strings.Repeat("a", 9),
	}, got)
}

func TestWindows_Overlap(t *testing.T) {
	got := Windows("abcdefghij", 6, 2)

	assert.Equal(t, []string{"abcdef", "efghij"}, got)
}

func TestWindows_Empty(t *testing.T) {
	assert.Nil(t, Windows("", 10, 2))
}

func TestTokens(t *testing.T) {
	got := Tokens("Sistema de ponto, eletrônico!")
	assert.Equal(t, []string{"sistema", "de", "ponto", "eletrônico"}, got)
}

func TestSharedTokens(t *testing.T) {
	shared := SharedTokens(
		"Sistema de ponto eletrônico obsoleto",
		"Novo sistema biométrico de ponto",
	)
	assert.Equal(t, 3, shared) // sistema, de, ponto
}

func TestSharedTokens_Disjoint(t *testing.T) {
	assert.Equal(t, 0, SharedTokens("aquisição de licenças", "obra civil predial"))
}
