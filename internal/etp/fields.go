// Package etp implements the core of the Estudo Técnico Preliminar (ETP)
// generator: the field set collected from the requesting unit, the fixed
// 17-section document structure, prompt composition and the sectioned
// generation orchestrator with its completeness audit.
package etp

import (
	"strings"

	"github.com/LGPDNOW/etp-generator-maelson/internal/textutil"
)

// Fields holds the information collected for one ETP. Every field tolerates
// being empty; absence is an empty string, empty list or nil number. The
// package never mutates a Fields value.
type Fields struct {
	OrgaoResponsavel        string   `json:"orgao_responsavel"`
	DescricaoProblema       string   `json:"descricao_problema"`
	AreasImpactadas         []string `json:"areas_impactadas"`
	Stakeholders            []string `json:"stakeholders"`
	RequisitosFuncionais    string   `json:"requisitos_funcionais"`
	RequisitosNaoFuncionais string   `json:"requisitos_nao_funcionais"`
	SolucoesMercado         string   `json:"solucoes_mercado"`
	ComparativoSolucoes     string   `json:"comparativo_solucoes"`
	ValorMinimo             *float64 `json:"valor_minimo"`
	ValorMedio              *float64 `json:"valor_medio"`
	ValorMaximo             *float64 `json:"valor_maximo"`
	SolucaoProposta         string   `json:"solucao_proposta"`
	JustificativaEscolha    string   `json:"justificativa_escolha"`
	EstrategiaImplantacao   string   `json:"estrategia_implantacao"`
	Cronograma              string   `json:"cronograma"`
	RecursosNecessarios     string   `json:"recursos_necessarios"`
	Beneficios              string   `json:"beneficios"`
	Beneficiarios           string   `json:"beneficiarios"`
	Providencias            string   `json:"providencias"`
	DeclaracaoViabilidade   string   `json:"declaracao_viabilidade"`
}

// Entry is one field in presentation order: machine name, human label and
// the value already rendered as text (currency formatted, lists joined).
type Entry struct {
	Name  string
	Label string
	Value string
}

// Entries returns every field in the fixed presentation order, including
// empty ones. Omitting an empty field would break the model's context
// continuity across the grouped generation calls.
func (f *Fields) Entries() []Entry {
	return []Entry{
		{"orgao_responsavel", "Órgão responsável", f.OrgaoResponsavel},
		{"descricao_problema", "Descrição do problema", f.DescricaoProblema},
		{"areas_impactadas", "Áreas impactadas", strings.Join(f.AreasImpactadas, ", ")},
		{"stakeholders", "Stakeholders", strings.Join(f.Stakeholders, ", ")},
		{"requisitos_funcionais", "Requisitos funcionais", f.RequisitosFuncionais},
		{"requisitos_nao_funcionais", "Requisitos não funcionais", f.RequisitosNaoFuncionais},
		{"solucoes_mercado", "Soluções disponíveis no mercado", f.SolucoesMercado},
		{"comparativo_solucoes", "Comparativo entre soluções", f.ComparativoSolucoes},
		{"valor_minimo", "Valor mínimo estimado", textutil.FormatCurrency(f.ValorMinimo)},
		{"valor_medio", "Valor médio estimado", textutil.FormatCurrency(f.ValorMedio)},
		{"valor_maximo", "Valor máximo estimado", textutil.FormatCurrency(f.ValorMaximo)},
		{"solucao_proposta", "Solução proposta", f.SolucaoProposta},
		{"justificativa_escolha", "Justificativa da escolha", f.JustificativaEscolha},
		{"estrategia_implantacao", "Estratégia de implantação", f.EstrategiaImplantacao},
		{"cronograma", "Cronograma", f.Cronograma},
		{"recursos_necessarios", "Recursos necessários", f.RecursosNecessarios},
		{"beneficios", "Benefícios esperados", f.Beneficios},
		{"beneficiarios", "Beneficiários", f.Beneficiarios},
		{"providencias", "Providências", f.Providencias},
		{"declaracao_viabilidade", "Declaração de viabilidade", f.DeclaracaoViabilidade},
	}
}

// Get returns the rendered value of a field by machine name.
func (f *Fields) Get(name string) (string, bool) {
	for _, e := range f.Entries() {
		if e.Name == name {
			return e.Value, true
		}
	}
	return "", false
}
