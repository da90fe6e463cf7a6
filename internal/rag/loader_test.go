package rag

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDoc(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDocuments_PlainText(t *testing.T) {
	dir := t.TempDir()
	a := writeDoc(t, dir, "lei.txt", "Art. 18. A fase preparatória do processo licitatório.")
	b := writeDoc(t, dir, "decreto.md", "Regulamenta o estudo técnico preliminar.")

	docs, err := LoadDocuments([]string{a, b})
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, a, docs[0].Path)
	assert.Equal(t, "Art. 18. A fase preparatória do processo licitatório.", docs[0].Content)
	assert.Equal(t, "Regulamenta o estudo técnico preliminar.", docs[1].Content)
}

func TestLoadDocuments_SkipsUnreadableAndEmpty(t *testing.T) {
	dir := t.TempDir()
	ok := writeDoc(t, dir, "lei.txt", "Art. 18.")
	empty := writeDoc(t, dir, "vazio.txt", "   \n")
	missing := filepath.Join(dir, "inexistente.txt")

	docs, err := LoadDocuments([]string{missing, empty, ok})
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, ok, docs[0].Path)
}

func TestLoadDocuments_AllFailing(t *testing.T) {
	dir := t.TempDir()
	_, err := LoadDocuments([]string{filepath.Join(dir, "a.txt"), filepath.Join(dir, "b.txt")})
	assert.Error(t, err)
}

func TestLoadDocuments_NoPaths(t *testing.T) {
	_, err := LoadDocuments(nil)
	assert.Error(t, err)
}
