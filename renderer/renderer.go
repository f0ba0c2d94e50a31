// Package renderer turns ledger data into markdown reports.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"
)

//go:embed templates/*.md
var templateFS embed.FS

// templates holds the report templates by file name.
var templates = mustSub(templateFS, "templates")

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(err)
	}
	return sub
}

// RenderSummary renders the ledger totals with their surplus or deficit status.
func RenderSummary(s *Summary) string {
	partials := map[string]string{
		"summary_status": "summary_status.md",
	}
	return renderTemplate("summary", "summary.md", partials, s)
}

// RenderTransactions renders a list of transactions, or a placeholder if it is empty.
func RenderTransactions(l *TransactionList) string {
	partials := map[string]string{
		"transactions_row":   "transactions_row.md",
		"transactions_empty": "transactions_empty.md",
	}
	return renderTemplate("transactions", "transactions.md", partials, l)
}

// RenderStats renders the spending analytics tables.
func RenderStats(s *Stats) string {
	partials := map[string]string{
		"stats_months":     "stats_months.md",
		"stats_categories": "stats_categories.md",
		"stats_trend":      "stats_trend.md",
	}
	return renderTemplate("stats", "stats.md", partials, s)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, err := fs.ReadFile(templates, file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
