package outwriter

import (
	"os"

	"github.com/huangsam/gantt/internal/contract"
	"golang.org/x/term"
)

// GetMaxTaskNameWidth calculates the maximum width for task names in table output
// based on terminal width and the fixed columns.
func GetMaxTaskNameWidth(cfg *contract.Config) int {
	termWidth := cfg.Width

	if termWidth == 0 { // Not set by override
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Row + Start + End + Days + Span with borders/padding
	baseWidth := 60
	// Owner column
	baseWidth += 20

	available := termWidth - baseWidth
	if available < 12 {
		return 12
	}
	if available > 60 {
		return 60
	}
	return available
}
