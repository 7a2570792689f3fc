// Package terminal provides small terminal helpers. The CLI uses them to
// scrub credential prompts from the screen once login input is submitted.
package terminal

import (
	"fmt"
	"math"
	"os"

	"golang.org/x/term"
)

// ClearPreviousLines erases the lines occupied by previously printed text.
// textLength is the character count of prompt plus input; the line count is
// derived from the current terminal width (80 when it cannot be read). One
// extra line is cleared for the newline the user's Enter produced.
func ClearPreviousLines(textLength int) {
	termWidth := 80
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
		termWidth = width
	}

	totalLines := int(math.Ceil(float64(textLength) / float64(termWidth)))
	if totalLines < 1 {
		totalLines = 1
	}
	linesToClear := totalLines + 1

	for i := 0; i < linesToClear; i++ {
		fmt.Print("\r\x1b[2K")
		if i < linesToClear-1 {
			fmt.Print("\x1b[1A")
		}
	}
}
