// Package assistant implements the field-level authoring assistant for ETP
// documents: structured critique with per-field rubrics, text rewriting,
// example generation, and consistency/alignment validation.
package assistant

import (
	"context"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/LGPDNOW/etp-generator-maelson/internal/etp"
	"github.com/LGPDNOW/etp-generator-maelson/internal/llm"
	"github.com/LGPDNOW/etp-generator-maelson/internal/prompts"
	"github.com/LGPDNOW/etp-generator-maelson/internal/textutil"
)

// Quality tiers, derived deterministically from the critique text.
const (
	QualidadeExcelente       = "excelente"
	QualidadeBoa             = "boa"
	QualidadeRegular         = "regular"
	QualidadePrecisaMelhorar = "precisa_melhorar"
	QualidadeErro            = "erro"
)

// Response markers, located in this order when parsing critique output.
var critiqueMarkers = []string{
	"PONTOS POSITIVOS:",
	"PONTOS DE ATENÇÃO:",
	"SUGESTÕES DE MELHORIA:",
	"EXEMPLO DE TEXTO MELHORADO:",
}

// maxContextChars bounds each prior-field value embedded into a prompt.
const maxContextChars = 200

// Assistant reviews ETP field content through the configured LLM client.
// The client handle is immutable after construction; the Assistant holds
// no other state.
type Assistant struct {
	client llm.Client
}

// New creates an Assistant backed by the given client. A nil client is
// tolerated: operations then report a configuration error in their results.
func New(client llm.Client) *Assistant {
	return &Assistant{client: client}
}

// CritiqueResult is the structured outcome of one field critique. Erro is
// filled (and Qualidade set to "erro") instead of failing the call, so the
// caller always has a displayable record.
type CritiqueResult struct {
	Campo            string    `json:"campo"`
	Analise          string    `json:"analise"`
	PontosPositivos  string    `json:"pontos_positivos"`
	PontosAtencao    string    `json:"pontos_atencao"`
	Sugestoes        string    `json:"sugestoes_melhoria"`
	ExemploMelhorado string    `json:"exemplo_melhorado"`
	Qualidade        string    `json:"qualidade"`
	Timestamp        time.Time `json:"timestamp"`
	Erro             string    `json:"erro,omitempty"`
}

// Critique reviews one field's content given the previously filled fields.
// Fields with a specialized rubric use it; every other field falls back to
// the generic clarity/formality/completeness/consistency rubric.
func (a *Assistant) Critique(ctx context.Context, campo, conteudo string, contexto map[string]string) *CritiqueResult {
	result := &CritiqueResult{Campo: campo, Timestamp: time.Now()}

	if a.client == nil {
		result.Erro = "cliente LLM não configurado"
		result.Qualidade = QualidadeErro
		return result
	}

	rubric, err := prompts.Get("rubricas.json", campo)
	if err != nil {
		rubric = prompts.MustGet("assistente.json", "critica_generica")
	}
	prompt := prompts.Format(rubric, map[string]string{
		"Campo":    campo,
		"Contexto": renderContext(contexto),
		"Conteudo": conteudo,
	}) + "\n\n" + prompts.MustGet("assistente.json", "formato_critica")

	resposta, err := a.client.Send(ctx, prompts.MustGet("assistente.json", "system"), prompt)
	if err != nil {
		result.Erro = err.Error()
		result.Qualidade = QualidadeErro
		return result
	}

	result.Analise = resposta
	parts := extractSections(resposta, critiqueMarkers)
	result.PontosPositivos = parts[0]
	result.PontosAtencao = parts[1]
	result.Sugestoes = parts[2]
	result.ExemploMelhorado = parts[3]
	result.Qualidade = qualityTier(result.PontosAtencao, result.Sugestoes)
	return result
}

// fieldOrder is the document's authoring order, used to render prior
// fields in the same sequence the study presents them.
var fieldOrder = func() []string {
	entries := (&etp.Fields{}).Entries()
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}()

// renderContext joins prior fields as "NAME: value" lines, each value
// truncated to maxContextChars. Known fields keep the document's
// authoring order; unknown keys follow, sorted for determinism.
func renderContext(contexto map[string]string) string {
	if len(contexto) == 0 {
		return "(nenhum campo preenchido anteriormente)"
	}
	names := make([]string, 0, len(contexto))
	known := make(map[string]bool, len(contexto))
	for _, name := range fieldOrder {
		if _, ok := contexto[name]; ok {
			names = append(names, name)
			known[name] = true
		}
	}
	var extra []string
	for name := range contexto {
		if !known[name] {
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)
	names = append(names, extra...)

	var sb strings.Builder
	for _, name := range names {
		sb.WriteString(strings.ToUpper(name))
		sb.WriteString(": ")
		sb.WriteString(textutil.Truncate(contexto[name], maxContextChars))
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

// extractSections splits raw LLM output on the given markers, located in
// order. The content of a marker runs to the next located marker (or end
// of string for the last). A missing marker yields an empty section, never
// an error.
func extractSections(text string, markers []string) []string {
	starts := make([]int, len(markers)) // content start, -1 when absent
	pos := 0
	for i, marker := range markers {
		idx := strings.Index(text[pos:], marker)
		if idx < 0 {
			starts[i] = -1
			continue
		}
		starts[i] = pos + idx + len(marker)
		pos = starts[i]
	}

	out := make([]string, len(markers))
	for i, start := range starts {
		if start < 0 {
			continue
		}
		end := len(text)
		for j := i + 1; j < len(starts); j++ {
			if starts[j] >= 0 {
				end = starts[j] - len(markers[j])
				break
			}
		}
		out[i] = strings.TrimSpace(text[start:end])
	}
	return out
}

// qualityTier maps the length of the concern and suggestion text to a
// quality tier. Pure function: identical critiques yield identical tiers.
func qualityTier(atencao, sugestoes string) string {
	concerns := utf8.RuneCountInString(atencao)
	suggestions := utf8.RuneCountInString(sugestoes)

	switch {
	case concerns == 0 && suggestions == 0:
		return QualidadeExcelente
	case concerns < 100 && suggestions < 200:
		return QualidadeBoa
	case concerns < 300 && suggestions < 500:
		return QualidadeRegular
	default:
		return QualidadePrecisaMelhorar
	}
}
