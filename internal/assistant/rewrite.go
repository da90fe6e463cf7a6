package assistant

import (
	"context"
	"strings"

	"github.com/LGPDNOW/etp-generator-maelson/internal/llm"
	"github.com/LGPDNOW/etp-generator-maelson/internal/prompts"
)

// Rewrite modes. Unknown modes fall back to ModeGeral.
const (
	ModeGramatica = "gramatica"
	ModeTecnico   = "tecnico"
	ModeGeral     = "geral"
)

// changesMarker separates the rewritten text from the change summary in the
// LLM response.
const changesMarker = "MUDANÇAS REALIZADAS:"

// defaultChangeSummary is used when the response carries no change summary.
const defaultChangeSummary = "Melhorias aplicadas ao texto."

// RewriteResult holds the original text alongside its improved version and
// a summary of what changed.
type RewriteResult struct {
	Original  string `json:"original"`
	Melhorado string `json:"melhorado"`
	Mudancas  string `json:"mudancas"`
}

// Rewrite improves a text in one of three modes: grammar and spelling only,
// formal administrative register, or general improvement.
func (a *Assistant) Rewrite(ctx context.Context, texto, modo string) (*RewriteResult, error) {
	if a.client == nil {
		return nil, &llm.ConfigError{Message: "cliente LLM não configurado"}
	}

	var key string
	switch modo {
	case ModeGramatica:
		key = "melhoria_gramatica"
	case ModeTecnico:
		key = "melhoria_tecnico"
	default:
		key = "melhoria_geral"
	}

	prompt := prompts.Format(prompts.MustGet("assistente.json", key), map[string]string{
		"Texto": texto,
	})
	resposta, err := a.client.Send(ctx, prompts.MustGet("assistente.json", "system"), prompt)
	if err != nil {
		return nil, err
	}

	melhorado, mudancas := splitChanges(resposta)
	return &RewriteResult{
		Original:  texto,
		Melhorado: melhorado,
		Mudancas:  mudancas,
	}, nil
}

func splitChanges(resposta string) (melhorado, mudancas string) {
	idx := strings.Index(resposta, changesMarker)
	if idx < 0 {
		return strings.TrimSpace(resposta), defaultChangeSummary
	}
	melhorado = strings.TrimSpace(resposta[:idx])
	mudancas = strings.TrimSpace(resposta[idx+len(changesMarker):])
	if mudancas == "" {
		mudancas = defaultChangeSummary
	}
	return melhorado, mudancas
}
