package etp

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fullDocument renders a document containing every numbered section heading.
func fullDocument() string {
	var sb strings.Builder
	for _, section := range Sections {
		sb.WriteString(section.Label())
		sb.WriteString("\nConteúdo da seção.\n\n")
	}
	return sb.String()
}

func TestAudit_CompleteDocument(t *testing.T) {
	report := Audit(fullDocument())

	assert.Empty(t, report.Missing)
	assert.InDelta(t, 100.0, report.Percent, 0.001)
	assert.True(t, report.Complete())
}

func TestAudit_MissingSections(t *testing.T) {
	var sb strings.Builder
	for _, section := range Sections {
		if section.ID == 13 {
			continue
		}
		sb.WriteString(section.Label())
		sb.WriteString("\n")
	}

	report := Audit(sb.String())

	require.Len(t, report.Missing, 1)
	assert.Equal(t, "13. TRANSIÇÃO CONTRATUAL", report.Missing[0])
	assert.InDelta(t, 16.0/17.0*100, report.Percent, 0.001)
	assert.False(t, report.Complete())
}

func TestAudit_EmptyDocument(t *testing.T) {
	report := Audit("")

	assert.Len(t, report.Missing, 17)
	assert.InDelta(t, 0.0, report.Percent, 0.001)
}

func TestAudit_NumeralEmbeddedInLineCounts(t *testing.T) {
	// The scan is a heuristic: the numeral anywhere on a line counts,
	// even inside unrelated text.
	var sb strings.Builder
	for id := 1; id <= 17; id++ {
		fmt.Fprintf(&sb, "conforme item %d. deste estudo\n", id)
	}

	report := Audit(sb.String())

	assert.Empty(t, report.Missing)
}
