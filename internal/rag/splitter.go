package rag

import (
	"strings"
	"unicode/utf8"

	"github.com/LGPDNOW/etp-generator-maelson/internal/textutil"
)

// Chunking parameters for indexed documents.
const (
	chunkSize    = 1000
	chunkOverlap = 200
)

// splitText breaks text into chunks of at most size runes, overlapping by
// overlap runes. Paragraph breaks are preferred as split points, then line
// breaks; a fixed sliding window is the fallback for text without any.
func splitText(text string, size, overlap int) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	if utf8.RuneCountInString(text) <= size {
		return []string{text}
	}

	if paragraphs := splitOnSeparator(text, "\n\n", size); paragraphs != nil {
		return mergeChunks(paragraphs, size, overlap)
	}
	if lines := splitOnSeparator(text, "\n", size); lines != nil {
		return mergeChunks(lines, size, overlap)
	}
	return textutil.Windows(text, size, overlap)
}

// splitOnSeparator returns the pieces of text between separators, provided
// every piece fits a chunk. Oversized pieces are windowed in place so the
// merge step only ever sees fitting units.
func splitOnSeparator(text, sep string, size int) []string {
	parts := strings.Split(text, sep)
	if len(parts) < 2 {
		return nil
	}
	units := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if utf8.RuneCountInString(part) > size {
			units = append(units, textutil.Windows(part, size, 0)...)
			continue
		}
		units = append(units, part)
	}
	if len(units) == 0 {
		return nil
	}
	return units
}

// mergeChunks greedily packs units into chunks up to size runes, carrying
// the tail of each finished chunk into the next one for overlap.
func mergeChunks(units []string, size, overlap int) []string {
	var chunks []string
	var current strings.Builder
	currentLen := 0
	fresh := false // whether current holds anything beyond the carried tail

	flush := func() {
		if !fresh {
			return
		}
		chunk := current.String()
		chunks = append(chunks, chunk)
		current.Reset()
		currentLen = 0
		fresh = false
		if overlap > 0 {
			runes := []rune(chunk)
			if len(runes) > overlap {
				runes = runes[len(runes)-overlap:]
			}
			tail := strings.TrimSpace(string(runes))
			if tail != "" {
				current.WriteString(tail)
				currentLen = utf8.RuneCountInString(tail)
			}
		}
	}

	for _, unit := range units {
		unitLen := utf8.RuneCountInString(unit)
		if fresh && currentLen+1+unitLen > size {
			flush()
		}
		if currentLen > 0 && currentLen+1+unitLen > size {
			// The carried tail alone does not leave room for this unit.
			current.Reset()
			currentLen = 0
		}
		if currentLen > 0 {
			current.WriteString("\n")
			currentLen++
		}
		current.WriteString(unit)
		currentLen += unitLen
		fresh = true
	}
	if fresh {
		chunks = append(chunks, current.String())
	}
	return chunks
}
