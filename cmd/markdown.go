package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
)

// stdout is where commands print their output.
var stdout io.Writer = os.Stdout

// printMarkdown renders md for the terminal. It falls back to the raw markdown.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err == nil {
		var out string
		if out, err = r.Render(md); err == nil {
			fmt.Fprint(stdout, out)
			return
		}
	}
	fmt.Fprint(stdout, md)
}
