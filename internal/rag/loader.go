// Package rag implements the conversational assistant over the normative
// documents of Lei nº 14.133/2021: document loading, chunking, a vector
// index backed by chromem-go and the retrieval-augmented question chain.
package rag

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Document is one loaded source file before chunking.
type Document struct {
	Path    string
	Content string
}

// LoadDocuments reads the given files into memory. PDF files go through
// text extraction; anything else is read as plain text. Unreadable files
// are skipped with a warning. An error is returned only when no file could
// be loaded at all.
func LoadDocuments(paths []string) ([]Document, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("nenhum documento informado")
	}

	docs := make([]Document, 0, len(paths))
	for _, path := range paths {
		content, err := loadFile(path)
		if err != nil {
			slog.Warn("documento ignorado", "path", path, "error", err)
			continue
		}
		if strings.TrimSpace(content) == "" {
			slog.Warn("documento sem texto extraível", "path", path)
			continue
		}
		docs = append(docs, Document{Path: path, Content: content})
	}

	if len(docs) == 0 {
		return nil, fmt.Errorf("nenhum dos %d documentos pôde ser carregado", len(paths))
	}
	return docs, nil
}

func loadFile(path string) (string, error) {
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		return extractPDFText(path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func extractPDFText(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("abrir PDF: %w", err)
	}
	defer f.Close()

	reader, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extrair texto do PDF: %w", err)
	}
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(reader); err != nil {
		return "", fmt.Errorf("ler texto do PDF: %w", err)
	}
	return buf.String(), nil
}
