package assistant

import (
	"context"

	"github.com/LGPDNOW/etp-generator-maelson/internal/llm"
	"github.com/LGPDNOW/etp-generator-maelson/internal/prompts"
)

// Example produces a realistic sample text for a field, grounded on the
// previously filled fields. The response is returned verbatim.
func (a *Assistant) Example(ctx context.Context, campo string, contexto map[string]string) (string, error) {
	if a.client == nil {
		return "", &llm.ConfigError{Message: "cliente LLM não configurado"}
	}

	prompt := prompts.Format(prompts.MustGet("assistente.json", "exemplo_campo"), map[string]string{
		"Campo":    campo,
		"Contexto": renderContext(contexto),
	})
	return a.client.Send(ctx, prompts.MustGet("assistente.json", "system"), prompt)
}
