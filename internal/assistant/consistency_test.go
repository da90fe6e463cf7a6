package assistant

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LGPDNOW/etp-generator-maelson/internal/etp"
	"github.com/LGPDNOW/etp-generator-maelson/internal/llm"
)

func TestValidateConsistency_OnlyFilledFieldsEnterPrompt(t *testing.T) {
	var captured string
	a := New(&mockClient{SendFunc: func(ctx context.Context, system, user string) (string, error) {
		captured = user
		return "Sem contradições relevantes.", nil
	}})

	fields := &etp.Fields{
		DescricaoProblema: "Sistema de ponto eletrônico obsoleto.",
		SolucaoProposta:   "Novo sistema biométrico de ponto.",
	}
	parecer, err := a.ValidateConsistency(context.Background(), fields)
	require.NoError(t, err)
	assert.Equal(t, "Sem contradições relevantes.", parecer)

	assert.Contains(t, captured, "DESCRICAO_PROBLEMA: Sistema de ponto eletrônico obsoleto.")
	assert.Contains(t, captured, "SOLUCAO_PROPOSTA: Novo sistema biométrico de ponto.")
	assert.NotContains(t, captured, "CRONOGRAMA")
	assert.NotContains(t, captured, "VALOR_MINIMO")
	assert.NotContains(t, captured, "Não informado")
}

func TestValidateConsistency_TruncatesLongValues(t *testing.T) {
	var captured string
	a := New(&mockClient{SendFunc: func(ctx context.Context, system, user string) (string, error) {
		captured = user
		return "ok", nil
	}})

	fields := &etp.Fields{DescricaoProblema: strings.Repeat("b", 400)}
	_, err := a.ValidateConsistency(context.Background(), fields)
	require.NoError(t, err)
	assert.Contains(t, captured, strings.Repeat("b", 300)+"...")
	assert.NotContains(t, captured, strings.Repeat("b", 301))
}

func TestValidateConsistency_NilClient(t *testing.T) {
	a := New(nil)
	_, err := a.ValidateConsistency(context.Background(), &etp.Fields{})
	require.Error(t, err)
	assert.True(t, llm.IsConfigError(err))
}

func TestExample_FormatsPrompt(t *testing.T) {
	var captured string
	a := New(&mockClient{SendFunc: func(ctx context.Context, system, user string) (string, error) {
		captured = user
		return "Exemplo de preenchimento gerado.", nil
	}})

	texto, err := a.Example(context.Background(), "declaracao_viabilidade", map[string]string{
		"descricao_problema": "Sistema de ponto eletrônico obsoleto.",
		"solucao_proposta":   "Novo sistema biométrico de ponto.",
	})
	require.NoError(t, err)
	assert.Equal(t, "Exemplo de preenchimento gerado.", texto)
	assert.Contains(t, captured, `"declaracao_viabilidade"`)
	assert.Contains(t, captured, "DESCRICAO_PROBLEMA: Sistema de ponto eletrônico obsoleto.")
	assert.Contains(t, captured, "SOLUCAO_PROPOSTA: Novo sistema biométrico de ponto.")
}

func TestExample_EmptyContext(t *testing.T) {
	var captured string
	a := New(&mockClient{SendFunc: func(ctx context.Context, system, user string) (string, error) {
		captured = user
		return "ok", nil
	}})

	_, err := a.Example(context.Background(), "beneficios", nil)
	require.NoError(t, err)
	assert.Contains(t, captured, "(nenhum campo preenchido anteriormente)")
}

func TestExample_NilClient(t *testing.T) {
	a := New(nil)
	_, err := a.Example(context.Background(), "beneficios", nil)
	require.Error(t, err)
	assert.True(t, llm.IsConfigError(err))
}
