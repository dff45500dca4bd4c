package cmd

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// printMarkdown renders markdown for the terminal, or prints it as is if it
// cannot be rendered.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err != nil {
		logger.Debug("cannot render markdown", "err", err)
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		logger.Debug("cannot render markdown", "err", err)
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
