package etp

import "fmt"

// Section describes one of the 17 fixed sections of an ETP: its number,
// title and the content bullets the generated text must cover. This is
// static data; it is never derived from input.
type Section struct {
	ID      int
	Title   string
	Bullets []string
}

// Label returns the numbered heading of the section ("7. DEFINIÇÃO DO OBJETO").
func (s Section) Label() string {
	return fmt.Sprintf("%d. %s", s.ID, s.Title)
}

// Group is a contiguous range of section IDs generated in one LLM call,
// keeping each call under the provider's output-length limit.
type Group struct {
	From, To int
}

// SectionGroups is the fixed partition of the document into generation
// calls. Together the groups cover sections 1-17 exactly once.
var SectionGroups = []Group{
	{From: 1, To: 6},
	{From: 7, To: 12},
	{From: 13, To: 17},
}

// Sections lists the 17 canonical sections of an ETP under the
// Lei nº 14.133/2021, in document order.
var Sections = []Section{
	{1, "DESCRIÇÃO DA NECESSIDADE", []string{
		"Caracterização do problema ou da necessidade que motiva a contratação",
		"Interesse público envolvido e consequências da não contratação",
		"Áreas e partes interessadas afetadas",
	}},
	{2, "HISTÓRICO DE CONTRATAÇÕES SIMILARES", []string{
		"Contratações anteriores do órgão para necessidades equivalentes",
		"Lições aprendidas e problemas enfrentados nessas contratações",
	}},
	{3, "SOLUÇÕES EXISTENTES NO MERCADO", []string{
		"Levantamento das alternativas disponíveis no mercado",
		"Fontes consultadas na pesquisa",
		"Soluções adotadas por outros órgãos públicos",
	}},
	{4, "LEVANTAMENTO E ANÁLISE DE RISCOS", []string{
		"Riscos do processo de contratação e da solução",
		"Probabilidade, impacto e tratamento previsto para cada risco",
	}},
	{5, "CRITÉRIOS DE SUSTENTABILIDADE", []string{
		"Requisitos de sustentabilidade ambiental, social e econômica aplicáveis",
		"Práticas de logística reversa e descarte, quando cabíveis",
	}},
	{6, "ESTIMATIVA DO VALOR DA CONTRATAÇÃO", []string{
		"Valores mínimo, médio e máximo estimados",
		"Metodologia e fontes da estimativa de preços",
	}},
	{7, "DEFINIÇÃO DO OBJETO", []string{
		"Descrição precisa e delimitada do objeto da contratação",
		"Natureza, quantitativos e condições essenciais",
	}},
	{8, "JUSTIFICATIVA DE ESCOLHA DA SOLUÇÃO", []string{
		"Vantagens da solução escolhida frente às alternativas comparadas",
		"Fundamentação técnica e econômica da escolha",
	}},
	{9, "PREVISÃO DE CONTRATAÇÕES FUTURAS (PCA)", []string{
		"Alinhamento com o Plano de Contratações Anual",
		"Contratações correlatas ou complementares previstas",
	}},
	{10, "ESTIMATIVA DE QUANTIDADES", []string{
		"Quantidades estimadas e memória de cálculo",
		"Histórico de consumo ou demanda projetada que fundamenta a estimativa",
	}},
	{11, "JUSTIFICATIVAS PARA PARCELAMENTO, AGRUPAMENTO E SUBCONTRATAÇÃO", []string{
		"Análise da viabilidade técnica e econômica do parcelamento do objeto",
		"Posição sobre agrupamento em lotes e sobre admissão de subcontratação",
	}},
	{12, "DEPENDÊNCIA DO CONTRATADO", []string{
		"Medidas para evitar dependência tecnológica ou de fornecedor único",
		"Portabilidade de dados e transferência de conhecimento",
	}},
	{13, "TRANSIÇÃO CONTRATUAL", []string{
		"Plano de transição do contrato atual, quando existente",
		"Continuidade do serviço durante a troca de contratado",
	}},
	{14, "ESTRATÉGIA DE IMPLANTAÇÃO", []string{
		"Etapas, marcos e responsáveis pela implantação",
		"Cronograma estimado e providências prévias",
		"Recursos humanos, materiais e tecnológicos necessários",
	}},
	{15, "BENEFÍCIOS ESPERADOS", []string{
		"Benefícios diretos e indiretos da contratação",
		"Beneficiários alcançados e forma de aferição dos resultados",
	}},
	{16, "DECLARAÇÃO DE ADEQUAÇÃO ORÇAMENTÁRIA", []string{
		"Compatibilidade da despesa com a lei orçamentária e o plano plurianual",
		"Indicação da fonte de recursos",
	}},
	{17, "APROVAÇÃO DA AUTORIDADE COMPETENTE", []string{
		"Declaração de viabilidade ou inviabilidade da contratação",
		"Encaminhamento para aprovação da autoridade competente",
	}},
}

// SectionsInRange returns the sections with from <= ID <= to, in order.
func SectionsInRange(from, to int) []Section {
	var out []Section
	for _, s := range Sections {
		if s.ID >= from && s.ID <= to {
			out = append(out, s)
		}
	}
	return out
}
