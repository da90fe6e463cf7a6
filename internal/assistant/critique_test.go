package assistant

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockClient struct {
	SendFunc func(ctx context.Context, system, user string) (string, error)
}

func (m *mockClient) Send(ctx context.Context, system, user string) (string, error) {
	return m.SendFunc(ctx, system, user)
}

func (m *mockClient) Model() string { return "mock-model" }

func TestCritique_ParsesMarkedResponse(t *testing.T) {
	resposta := strings.Join([]string{
		"PONTOS POSITIVOS:",
		"O texto está claro e formal.",
		"PONTOS DE ATENÇÃO:",
		"Falta indicar as consequências da não contratação.",
		"SUGESTÕES DE MELHORIA:",
		"Inclua dados quantitativos que fundamentem a demanda.",
		"EXEMPLO DE TEXTO MELHORADO:",
		"O sistema atual de registro de ponto apresenta falhas recorrentes.",
	}, "\n")

	a := New(&mockClient{SendFunc: func(ctx context.Context, system, user string) (string, error) {
		return resposta, nil
	}})

	result := a.Critique(context.Background(), "descricao_problema", "Sistema obsoleto.", nil)

	require.Empty(t, result.Erro)
	assert.Equal(t, "descricao_problema", result.Campo)
	assert.Equal(t, resposta, result.Analise)
	assert.Equal(t, "O texto está claro e formal.", result.PontosPositivos)
	assert.Equal(t, "Falta indicar as consequências da não contratação.", result.PontosAtencao)
	assert.Equal(t, "Inclua dados quantitativos que fundamentem a demanda.", result.Sugestoes)
	assert.Equal(t, "O sistema atual de registro de ponto apresenta falhas recorrentes.", result.ExemploMelhorado)
	assert.Equal(t, QualidadeBoa, result.Qualidade)
	assert.False(t, result.Timestamp.IsZero())
}

func TestCritique_EmptyConcernsYieldExcellent(t *testing.T) {
	resposta := "PONTOS POSITIVOS:\nCompleto e bem fundamentado.\n" +
		"PONTOS DE ATENÇÃO:\n" +
		"SUGESTÕES DE MELHORIA:\n" +
		"EXEMPLO DE TEXTO MELHORADO:\nVersão aprimorada."

	a := New(&mockClient{SendFunc: func(ctx context.Context, system, user string) (string, error) {
		return resposta, nil
	}})

	result := a.Critique(context.Background(), "beneficios", "Benefícios mensuráveis.", nil)
	assert.Empty(t, result.PontosAtencao)
	assert.Empty(t, result.Sugestoes)
	assert.Equal(t, QualidadeExcelente, result.Qualidade)
}

func TestCritique_MissingMarkerYieldsEmptySection(t *testing.T) {
	resposta := "PONTOS POSITIVOS:\nTexto adequado.\n" +
		"PONTOS DE ATENÇÃO:\nCronograma sem folga para trâmites.\n" +
		"SUGESTÕES DE MELHORIA:\nPreveja prazo para análise jurídica."

	a := New(&mockClient{SendFunc: func(ctx context.Context, system, user string) (string, error) {
		return resposta, nil
	}})

	result := a.Critique(context.Background(), "cronograma", "Seis meses.", nil)
	require.Empty(t, result.Erro)
	assert.Equal(t, "Texto adequado.", result.PontosPositivos)
	assert.Equal(t, "Cronograma sem folga para trâmites.", result.PontosAtencao)
	assert.Equal(t, "Preveja prazo para análise jurídica.", result.Sugestoes)
	assert.Empty(t, result.ExemploMelhorado)
}

func TestCritique_NilClient(t *testing.T) {
	a := New(nil)
	result := a.Critique(context.Background(), "cronograma", "Seis meses.", nil)
	assert.NotEmpty(t, result.Erro)
	assert.Equal(t, QualidadeErro, result.Qualidade)
	assert.Empty(t, result.Analise)
}

func TestCritique_CallErrorCapturedInResult(t *testing.T) {
	a := New(&mockClient{SendFunc: func(ctx context.Context, system, user string) (string, error) {
		return "", errors.New("timeout ao chamar o provedor")
	}})

	result := a.Critique(context.Background(), "beneficios", "Redução de custos.", nil)
	assert.Contains(t, result.Erro, "timeout")
	assert.Equal(t, QualidadeErro, result.Qualidade)
	assert.Empty(t, result.Analise)
	assert.Equal(t, "beneficios", result.Campo)
}

func TestCritique_SpecializedRubricSelection(t *testing.T) {
	var captured string
	a := New(&mockClient{SendFunc: func(ctx context.Context, system, user string) (string, error) {
		captured = user
		return "PONTOS POSITIVOS:\nOK.", nil
	}})

	a.Critique(context.Background(), "cronograma", "Seis meses.", nil)
	assert.Contains(t, captured, "Analise o cronograma")
	assert.Contains(t, captured, "Seis meses.")
	assert.Contains(t, captured, "EXEMPLO DE TEXTO MELHORADO:")

	a.Critique(context.Background(), "orgao_responsavel", "TRT da 2ª Região", nil)
	assert.Contains(t, captured, "Avalie segundo os critérios")
	assert.Contains(t, captured, `"orgao_responsavel"`)
}

func TestCritique_ContextRenderedInAuthoringOrderAndTruncated(t *testing.T) {
	var captured string
	a := New(&mockClient{SendFunc: func(ctx context.Context, system, user string) (string, error) {
		captured = user
		return "PONTOS POSITIVOS:\nOK.", nil
	}})

	longo := strings.Repeat("a", 250)
	a.Critique(context.Background(), "solucao_proposta", "Sistema biométrico.", map[string]string{
		"comparativo_solucoes": "Comparativo em três critérios.",
		"solucoes_mercado":     "Três fornecedores avaliados.",
		"descricao_problema":   longo,
		"campo_livre":          "Anotação avulsa.",
	})

	assert.Contains(t, captured, "DESCRICAO_PROBLEMA: "+strings.Repeat("a", 200)+"...")
	assert.NotContains(t, captured, strings.Repeat("a", 201))
	assert.Contains(t, captured, "SOLUCOES_MERCADO: Três fornecedores avaliados.")

	// Authoring order, not alphabetical: solucoes_mercado precedes
	// comparativo_solucoes in the document.
	assert.Less(t,
		strings.Index(captured, "DESCRICAO_PROBLEMA"),
		strings.Index(captured, "SOLUCOES_MERCADO"))
	assert.Less(t,
		strings.Index(captured, "SOLUCOES_MERCADO"),
		strings.Index(captured, "COMPARATIVO_SOLUCOES"))

	// Unknown keys render after the known fields.
	assert.Less(t,
		strings.Index(captured, "COMPARATIVO_SOLUCOES"),
		strings.Index(captured, "CAMPO_LIVRE: Anotação avulsa."))
}

func TestQualityTier(t *testing.T) {
	tests := []struct {
		name      string
		atencao   string
		sugestoes string
		want      string
	}{
		{"both empty", "", "", QualidadeExcelente},
		{"short concerns and suggestions", strings.Repeat("x", 99), strings.Repeat("x", 199), QualidadeBoa},
		{"concerns at boundary", strings.Repeat("x", 100), "", QualidadeRegular},
		{"suggestions at boundary", "", strings.Repeat("x", 200), QualidadeRegular},
		{"medium critique", strings.Repeat("x", 299), strings.Repeat("x", 499), QualidadeRegular},
		{"long concerns", strings.Repeat("x", 300), "", QualidadePrecisaMelhorar},
		{"long suggestions", "", strings.Repeat("x", 500), QualidadePrecisaMelhorar},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, qualityTier(tt.atencao, tt.sugestoes))
		})
	}
}
