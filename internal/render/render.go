// Package render formats answers and listings for the terminal.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/itsmostafa/constbot/internal/articles"
	"github.com/itsmostafa/constbot/internal/query"
)

var (
	// titleStyle for bold headers
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("33"))

	// dimStyle for muted metadata text
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	// successStyle for success indicators
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	// warnStyle for fallback messages
	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	// headerBoxStyle for the session header
	headerBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("33")).
			Padding(0, 1)

	// articleBoxStyle for article bodies
	articleBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("33")).
			Padding(0, 1)

	// idStyle for article numbers in listings
	idStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("81")).
		Bold(true).
		Width(6)

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("33")).
			Bold(true)
)

// FormatHeader renders the interactive session header
func FormatHeader(w io.Writer, path string, count int) {
	content := fmt.Sprintf("%s %s\n%s %s",
		dimStyle.Render("Document:"), path,
		dimStyle.Render("Articles:"), successStyle.Render(fmt.Sprintf("%d", count)),
	)
	fmt.Fprintln(w, headerBoxStyle.Render(content))
	fmt.Fprintln(w, dimStyle.Render("Ask for an article by number, e.g. \"Article 21\" or \"21A\". Type exit to quit."))
}

// FormatAnswer renders a resolver answer. Article bodies are boxed; the two
// fallback messages are shown as a single highlighted line.
func FormatAnswer(w io.Writer, answer string) {
	if answer == query.NotFoundMessage || answer == query.NoInformationMessage {
		fmt.Fprintln(w, warnStyle.Render(answer))
		return
	}

	header, body, found := strings.Cut(answer, "\n\n")
	if !found {
		fmt.Fprintln(w, answer)
		return
	}

	content := titleStyle.Render(header) + "\n\n" + body
	fmt.Fprintln(w, articleBoxStyle.Render(content))
}

// FormatPrompt writes the input prompt without a trailing newline
func FormatPrompt(w io.Writer) {
	fmt.Fprint(w, promptStyle.Render("> "))
}

// FormatList renders one line per article: its id and title.
func FormatList(w io.Writer, entries []articles.Entry) {
	for _, e := range entries {
		fmt.Fprintf(w, "%s %s\n", idStyle.Render(string(e.ID)), articles.Title(e.Text))
	}
	fmt.Fprintln(w, dimStyle.Render(fmt.Sprintf("%d articles", len(entries))))
}

// FormatGoodbye renders the closing line of an interactive session
func FormatGoodbye(w io.Writer) {
	fmt.Fprintln(w, dimStyle.Render("Goodbye."))
}
