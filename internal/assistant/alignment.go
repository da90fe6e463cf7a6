package assistant

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/LGPDNOW/etp-generator-maelson/internal/etp"
	"github.com/LGPDNOW/etp-generator-maelson/internal/textutil"
)

// Alignment statuses.
const (
	StatusAprovado      = "aprovado"
	StatusRequerAjustes = "requer_ajustes"
)

// minFieldChars is the minimum substantive length for a required field.
const minFieldChars = 50

// minSharedTokens is the minimum lexical overlap expected between the
// problem description and the proposed solution.
const minSharedTokens = 3

// AlignmentReport lists the structural problems found in a study and the
// resulting status. An empty issue list means aprovado.
type AlignmentReport struct {
	Issues []string `json:"problemas"`
	Status string   `json:"status"`
}

// requiredField ties a field to the document section it feeds, for the
// wording of issue messages. Labels come from etp.Sections so the issue
// text always matches the generated document's headings.
type requiredField struct {
	name      string
	sectionID int
}

var requiredFields = []requiredField{
	{"descricao_problema", 1},
	{"solucoes_mercado", 3},
	{"solucao_proposta", 7},
	{"justificativa_escolha", 8},
	{"estrategia_implantacao", 14},
	{"beneficios", 15},
}

// Lowercase stems used in the comparison/advantage heuristic. Accented and
// unaccented spellings are both listed.
var (
	comparisonStems = []string{"compar", "versus", "alternativ"}
	advantageStems  = []string{"vantag", "benefíci", "benefici", "superior", "melhor"}
)

// ValidateAlignment runs local structural checks over the study, without
// any LLM call: required fields present with substantive content, lexical
// overlap between problem and solution, and advantage language in the
// justification whenever the market comparison mentions comparisons.
func ValidateAlignment(fields *etp.Fields) *AlignmentReport {
	report := &AlignmentReport{Issues: []string{}}

	for _, rf := range requiredFields {
		raw, _ := fields.Get(rf.name)
		value := strings.TrimSpace(raw)
		if utf8.RuneCountInString(value) < minFieldChars {
			report.Issues = append(report.Issues, fmt.Sprintf(
				"Campo %q (seção %s) ausente ou com conteúdo insuficiente (mínimo %d caracteres)",
				rf.name, etp.Sections[rf.sectionID-1].Label(), minFieldChars))
		}
	}

	problema := fields.DescricaoProblema
	solucao := fields.SolucaoProposta
	if problema != "" && solucao != "" && textutil.SharedTokens(problema, solucao) < minSharedTokens {
		report.Issues = append(report.Issues,
			"A solução proposta tem pouca relação lexical com o problema descrito; revise se a solução de fato endereça a necessidade")
	}

	comparativo := strings.ToLower(fields.ComparativoSolucoes)
	justificativa := strings.ToLower(fields.JustificativaEscolha)
	if containsAny(comparativo, comparisonStems) && !containsAny(justificativa, advantageStems) {
		report.Issues = append(report.Issues,
			"O comparativo de soluções menciona comparações, mas a justificativa da escolha não cita vantagens ou benefícios da solução escolhida")
	}

	if len(report.Issues) == 0 {
		report.Status = StatusAprovado
	} else {
		report.Status = StatusRequerAjustes
	}
	return report
}

func containsAny(s string, stems []string) bool {
	for _, stem := range stems {
		if strings.Contains(s, stem) {
			return true
		}
	}
	return false
}
