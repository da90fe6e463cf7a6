package rag

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	chromem "github.com/philippgille/chromem-go"

	"github.com/LGPDNOW/etp-generator-maelson/internal/llm"
)

// DefaultTopK is the number of fragments retrieved per question.
const DefaultTopK = 5

const collectionName = "lei-14133"

// Index is an in-memory vector index over the chunked normative documents.
type Index struct {
	collection *chromem.Collection
}

// NewIndex loads and chunks the given documents and embeds them into a
// fresh chromem collection. Embeddings use the OpenAI API regardless of
// the chat provider; apiKey falls back to OPENAI_API_KEY when empty.
func NewIndex(ctx context.Context, paths []string, apiKey string) (*Index, error) {
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}
	if apiKey == "" {
		return nil, &llm.ConfigError{Message: "chave da API OpenAI ausente para gerar embeddings"}
	}

	docs, err := LoadDocuments(paths)
	if err != nil {
		return nil, err
	}

	db := chromem.NewDB()
	collection, err := db.CreateCollection(collectionName, nil,
		chromem.NewEmbeddingFuncOpenAI(apiKey, chromem.EmbeddingModelOpenAI3Small))
	if err != nil {
		return nil, fmt.Errorf("criar coleção de embeddings: %w", err)
	}

	var chunks []chromem.Document
	for _, doc := range docs {
		base := filepath.Base(doc.Path)
		for i, chunk := range splitText(doc.Content, chunkSize, chunkOverlap) {
			chunks = append(chunks, chromem.Document{
				ID:       fmt.Sprintf("%s#%d", base, i),
				Metadata: map[string]string{"fonte": base},
				Content:  chunk,
			})
		}
	}
	if err := collection.AddDocuments(ctx, chunks, runtime.NumCPU()); err != nil {
		return nil, fmt.Errorf("indexar documentos: %w", err)
	}

	return &Index{collection: collection}, nil
}

// Retrieve returns the fragments most similar to the query, at most
// DefaultTopK. The requested count is clamped to the collection size.
func (ix *Index) Retrieve(ctx context.Context, query string) ([]Fragment, error) {
	n := DefaultTopK
	if count := ix.collection.Count(); count < n {
		n = count
	}
	if n == 0 {
		return nil, nil
	}

	results, err := ix.collection.Query(ctx, query, n, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("consultar índice: %w", err)
	}

	fragments := make([]Fragment, 0, len(results))
	for _, r := range results {
		fragments = append(fragments, Fragment{
			Content: r.Content,
			Fonte:   r.Metadata["fonte"],
		})
	}
	return fragments, nil
}

// Index construction is expensive (one embedding call per chunk), so built
// indexes are memoized by document set for the life of the process.
var (
	indexMu    sync.Mutex
	indexCache = make(map[string]*Index)
)

// OpenIndex returns a memoized index for the given document set, building
// it on first use.
func OpenIndex(ctx context.Context, paths []string, apiKey string) (*Index, error) {
	sorted := append([]string(nil), paths...)
	sort.Strings(sorted)
	key := strings.Join(sorted, "\x00")

	indexMu.Lock()
	defer indexMu.Unlock()

	if ix, ok := indexCache[key]; ok {
		return ix, nil
	}
	ix, err := NewIndex(ctx, paths, apiKey)
	if err != nil {
		return nil, err
	}
	indexCache[key] = ix
	return ix, nil
}
