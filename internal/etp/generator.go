package etp

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/LGPDNOW/etp-generator-maelson/internal/llm"
	"github.com/LGPDNOW/etp-generator-maelson/internal/prompts"
)

// Generator produces a complete 17-section ETP despite per-call
// output-length limits, issuing one generation call per section group and
// assembling the results in group order.
type Generator struct {
	client llm.Client
}

// NewGenerator creates a Generator backed by the given client.
func NewGenerator(client llm.Client) *Generator {
	return &Generator{client: client}
}

// Result is the outcome of one generation: the assembled document and the
// advisory completeness report.
type Result struct {
	Document     string
	Completeness CompletenessReport
}

// Generate builds one prompt per section group, issues the generation
// calls, concatenates the results in group order separated by a blank
// line, and audits the assembled document.
//
// The group calls run concurrently; assembly order is by group index,
// never by completion order. Any failed call fails the whole generation.
// An unconfigured client fails fast with a *llm.ConfigError before any
// call is dispatched. A completeness shortfall is reported, not an error.
func (g *Generator) Generate(ctx context.Context, fields *Fields) (*Result, error) {
	if g.client == nil {
		return nil, &llm.ConfigError{
			Message: "cliente LLM não configurado; configure o provedor antes de gerar o ETP",
		}
	}

	system := prompts.MustGet("etp.json", "system")

	blocks := make([]string, len(SectionGroups))
	eg, egCtx := errgroup.WithContext(ctx)
	for i, group := range SectionGroups {
		i, group := i, group
		eg.Go(func() error {
			prompt := BuildPrompt(fields, group.From, group.To)
			text, err := g.client.Send(egCtx, system, prompt)
			if err != nil {
				return fmt.Errorf("geração das seções %d a %d: %w", group.From, group.To, err)
			}
			blocks[i] = strings.TrimSpace(text)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	document := strings.Join(blocks, "\n\n")
	report := Audit(document)
	if !report.Complete() {
		slog.Warn("documento gerado com seções faltantes",
			"faltantes", report.Missing,
			"completude", fmt.Sprintf("%.1f%%", report.Percent))
	}

	return &Result{Document: document, Completeness: report}, nil
}
