package etp

import (
	"fmt"
	"strings"

	"github.com/LGPDNOW/etp-generator-maelson/internal/prompts"
)

// BuildPrompt renders the generation instruction for the sections in
// [from, to]: the fixed preamble, a verbatim restatement of every field's
// current value, the content bullets of only the requested sections, and
// the closing directive restricting output to that range. Pure function of
// its inputs.
func BuildPrompt(fields *Fields, from, to int) string {
	rangeData := map[string]string{
		"Inicio": fmt.Sprintf("%d", from),
		"Fim":    fmt.Sprintf("%d", to),
	}

	var sb strings.Builder
	sb.WriteString(prompts.Format(prompts.MustGet("etp.json", "preambulo"), rangeData))
	sb.WriteString("\n\n")

	// Every field is restated, empty or not, so each grouped call sees the
	// same complete context.
	for _, entry := range fields.Entries() {
		sb.WriteString(entry.Label)
		sb.WriteString(": ")
		sb.WriteString(entry.Value)
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(prompts.MustGet("etp.json", "instrucao_secoes"))
	sb.WriteString("\n\n")
	for _, section := range SectionsInRange(from, to) {
		sb.WriteString(section.Label())
		sb.WriteString("\n")
		for _, bullet := range section.Bullets {
			sb.WriteString("- ")
			sb.WriteString(bullet)
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	sb.WriteString(prompts.Format(prompts.MustGet("etp.json", "encerramento"), rangeData))
	return sb.String()
}
