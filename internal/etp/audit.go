package etp

import (
	"fmt"
	"strings"
)

// CompletenessReport is the result of the post-generation audit: which
// section labels were not found and the resulting completeness percentage.
// It is advisory; a shortfall never blocks returning the document.
type CompletenessReport struct {
	Missing []string `json:"secoes_faltantes"`
	Percent float64  `json:"percentual_completude"`
}

// Complete reports whether every section was found.
func (r CompletenessReport) Complete() bool {
	return len(r.Missing) == 0
}

// Audit scans the document for each of the 17 section labels. A section
// counts as present when any line contains its numeral followed by a
// period ("7."). This is a cheap sanity check, not a structure parse:
// incidental numerals (a cited statute article, a statement like "17.
// providências") can false-positive, and a label split across a line wrap
// can false-negative. Both are accepted.
func Audit(document string) CompletenessReport {
	lines := strings.Split(document, "\n")

	var missing []string
	for _, section := range Sections {
		marker := fmt.Sprintf("%d.", section.ID)
		found := false
		for _, line := range lines {
			if strings.Contains(line, marker) {
				found = true
				break
			}
		}
		if !found {
			missing = append(missing, section.Label())
		}
	}

	total := len(Sections)
	return CompletenessReport{
		Missing: missing,
		Percent: float64(total-len(missing)) / float64(total) * 100,
	}
}
