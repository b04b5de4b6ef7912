// Package render formats evaluation reports for terminal output.
package render

import (
	"fmt"
	"io"

	"github.com/baditaflorin/go_password_strength/internal/core/domain"
)

const divider = "------------------------------------------------------"

// DefaultNameWidth is the column width criterion names are padded to.
const DefaultNameWidth = 30

// TextRenderer writes a report as a fixed-width text table.
type TextRenderer struct {
	// NameWidth is the padded width of the criterion name column.
	NameWidth int
}

// NewTextRenderer creates a renderer with the default column layout.
func NewTextRenderer() *TextRenderer {
	return &TextRenderer{
		NameWidth: DefaultNameWidth,
	}
}

// Render writes the report: a divider, the total score as "<score>/100",
// then one row per criterion with a pass/fail marker, the left-aligned
// name and the verdict message.
func (r *TextRenderer) Render(w io.Writer, report domain.Report) {
	fmt.Fprintln(w, divider)
	fmt.Fprintf(w, "Strength Score: %d/100\n", report.TotalScore)
	fmt.Fprintln(w, "Evaluation Criteria:")
	fmt.Fprintln(w, divider)

	for _, result := range report.Results {
		marker := "  [FAIL] "
		if result.Passed {
			marker = "  [PASS] "
		}
		fmt.Fprintf(w, "%s%-*s | %s\n", marker, r.NameWidth, result.Name, result.Message)
	}

	fmt.Fprintln(w, divider)
}
