package rag

import (
	"context"
	"strings"

	"github.com/LGPDNOW/etp-generator-maelson/internal/llm"
	"github.com/LGPDNOW/etp-generator-maelson/internal/prompts"
	"github.com/LGPDNOW/etp-generator-maelson/internal/textutil"
)

// historyWindow is how many trailing conversation messages enter a prompt.
const historyWindow = 6

// maxMessageChars bounds each history message embedded into a prompt.
const maxMessageChars = 200

// Fragment is one retrieved piece of a normative document.
type Fragment struct {
	Content string `json:"content"`
	Fonte   string `json:"fonte"`
}

// Retriever yields the document fragments relevant to a query.
type Retriever interface {
	Retrieve(ctx context.Context, query string) ([]Fragment, error)
}

// Message roles in the conversation history.
const (
	RoleUser      = "usuario"
	RoleAssistant = "assistente"
)

// Message is one turn of the conversation history.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Chain answers questions about Lei nº 14.133/2021 grounded on retrieved
// document fragments.
type Chain struct {
	retriever Retriever
	client    llm.Client
}

// NewChain builds a question chain over the given retriever and client.
func NewChain(retriever Retriever, client llm.Client) *Chain {
	return &Chain{retriever: retriever, client: client}
}

// Ask answers a standalone question.
func (c *Chain) Ask(ctx context.Context, pergunta string) (string, error) {
	return c.AskWithHistory(ctx, pergunta, nil)
}

// AskWithHistory answers a question in the context of a conversation. Only
// the current question drives retrieval; the history enters the prompt as
// plain dialogue, limited to the trailing window with each message
// truncated.
func (c *Chain) AskWithHistory(ctx context.Context, pergunta string, historico []Message) (string, error) {
	if c.client == nil {
		return "", &llm.ConfigError{Message: "cliente LLM não configurado"}
	}
	if c.retriever == nil {
		return "", &llm.ConfigError{Message: "índice de documentos não configurado"}
	}

	fragments, err := c.retriever.Retrieve(ctx, pergunta)
	if err != nil {
		return "", err
	}

	data := map[string]string{
		"Contexto": renderFragments(fragments),
		"Pergunta": pergunta,
	}
	key := "pergunta"
	if len(historico) > 0 {
		key = "pergunta_com_historico"
		data["Historico"] = renderHistory(historico)
	}

	prompt := prompts.Format(prompts.MustGet("rag.json", key), data)
	return c.client.Send(ctx, prompts.MustGet("rag.json", "system"), prompt)
}

func renderFragments(fragments []Fragment) string {
	if len(fragments) == 0 {
		return "(nenhum trecho relevante encontrado nos documentos)"
	}
	parts := make([]string, 0, len(fragments))
	for _, f := range fragments {
		if f.Fonte != "" {
			parts = append(parts, "["+f.Fonte+"]\n"+f.Content)
			continue
		}
		parts = append(parts, f.Content)
	}
	return strings.Join(parts, "\n\n")
}

func renderHistory(historico []Message) string {
	if len(historico) > historyWindow {
		historico = historico[len(historico)-historyWindow:]
	}
	lines := make([]string, 0, len(historico))
	for _, msg := range historico {
		label := "Usuário"
		if msg.Role == RoleAssistant {
			label = "Assistente"
		}
		lines = append(lines, label+": "+textutil.Truncate(msg.Content, maxMessageChars))
	}
	return strings.Join(lines, "\n")
}
