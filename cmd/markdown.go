package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
	"github.com/etnz/fintrack"
	"golang.org/x/term"
)

// printMarkdown prints md to stdout, rendered for the terminal if it is one.
func printMarkdown(md string) { writeMarkdown(stdout, md) }

// writeMarkdown writes md to w. Terminals get it rendered with the style of the
// user's theme, anything else gets the markdown source.
func writeMarkdown(w io.Writer, md string) {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(w, md)
		if !strings.HasSuffix(md, "\n") {
			fmt.Fprintln(w)
		}
		return
	}

	style := styles.LightStyle
	if OpenPreferences().Theme() == fintrack.Dark {
		style = styles.DarkStyle
	}
	r, err := glamour.NewTermRenderer(glamour.WithStandardStyle(style), glamour.WithEmoji(), glamour.WithWordWrap(100))
	if err != nil {
		fmt.Fprint(w, md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Fprint(w, md)
		return
	}
	fmt.Fprint(w, out)
}
