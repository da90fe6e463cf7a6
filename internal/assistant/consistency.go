package assistant

import (
	"context"
	"strings"

	"github.com/LGPDNOW/etp-generator-maelson/internal/etp"
	"github.com/LGPDNOW/etp-generator-maelson/internal/llm"
	"github.com/LGPDNOW/etp-generator-maelson/internal/prompts"
	"github.com/LGPDNOW/etp-generator-maelson/internal/textutil"
)

// maxConsistencyChars bounds each field value embedded into the
// consistency prompt.
const maxConsistencyChars = 300

// ValidateConsistency asks the LLM for a cross-field review of the whole
// study: contradictions, value mismatches, and gaps between problem and
// solution. Only filled fields enter the prompt. The narrative is returned
// verbatim.
func (a *Assistant) ValidateConsistency(ctx context.Context, fields *etp.Fields) (string, error) {
	if a.client == nil {
		return "", &llm.ConfigError{Message: "cliente LLM não configurado"}
	}

	var sb strings.Builder
	for _, entry := range fields.Entries() {
		if entry.Value == "" || entry.Value == textutil.NotInformed {
			continue
		}
		sb.WriteString(strings.ToUpper(entry.Name))
		sb.WriteString(": ")
		sb.WriteString(textutil.Truncate(entry.Value, maxConsistencyChars))
		sb.WriteString("\n")
	}

	prompt := prompts.Format(prompts.MustGet("assistente.json", "consistencia"), map[string]string{
		"Dados": strings.TrimRight(sb.String(), "\n"),
	})
	return a.client.Send(ctx, prompts.MustGet("assistente.json", "system"), prompt)
}
