package docs

import (
	"os"
	"regexp"
	"slices"
	"strings"
	"testing"

	"github.com/etnz/fintrack"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

func TestTopics(t *testing.T) {
	// Every topic is listed in readme.md, and every listed topic exists.
	content, err := os.ReadFile("readme.md")
	if err != nil {
		t.Fatalf("failed to open readme.md: %v", err)
	}

	var listed []string
	topicRegex := regexp.MustCompile(`^\*\s+([^:]+):.*$`)
	for _, line := range strings.Split(string(content), "\n") {
		if m := topicRegex.FindStringSubmatch(line); m != nil {
			listed = append(listed, strings.TrimSpace(m[1]))
		}
	}

	for _, topic := range listed {
		if _, err := GetTopic(topic); err != nil {
			t.Errorf("failed to get topic %q: %v", topic, err)
		}
	}

	all, err := GetAllTopics()
	if err != nil {
		t.Fatalf("GetAllTopics() error: %v", err)
	}
	for _, topic := range all {
		if !slices.Contains(listed, topic) {
			t.Errorf("topic %q is not listed in readme.md", topic)
		}
	}
	if slices.Contains(all, readme) {
		t.Errorf("GetAllTopics() must not list the readme")
	}
}

func TestGetTopic_Star(t *testing.T) {
	all, err := GetTopic("*")
	if err != nil {
		t.Fatalf("GetTopic(*) error: %v", err)
	}
	for _, title := range []string{"# Categories", "# Dates", "# Queries"} {
		if !strings.Contains(all, title) {
			t.Errorf("GetTopic(*) is missing %q", title)
		}
	}
	if _, err := GetTopic("nope"); err == nil {
		t.Errorf("GetTopic(nope) should fail")
	}
}

func parseMarkdown(t *testing.T, topic string) (ast.Node, []byte) {
	t.Helper()
	content, err := GetTopic(topic)
	if err != nil {
		t.Fatal(err)
	}
	source := []byte(content)
	md := goldmark.New(goldmark.WithExtensions(extension.Table))
	return md.Parser().Parse(text.NewReader(source)), source
}

func TestTopicsHaveTitle(t *testing.T) {
	topics, _ := GetAllTopics()
	for _, topic := range append(topics, readme) {
		root, _ := parseMarkdown(t, topic)
		h, ok := root.FirstChild().(*ast.Heading)
		if !ok || h.Level != 1 {
			t.Errorf("topic %q must start with a level 1 heading", topic)
		}
	}
}

// The categories table documents every well-known category with its icon.
func TestCategoriesTable(t *testing.T) {
	root, source := parseMarkdown(t, "categories")

	icons := make(map[string]string)
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering || n.Kind() != extast.KindTableRow {
			return ast.WalkContinue, nil
		}
		var cells []string
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			cells = append(cells, strings.TrimSpace(string(c.Text(source))))
		}
		if len(cells) >= 2 {
			icons[cells[0]] = cells[1]
		}
		return ast.WalkSkipChildren, nil
	})

	for _, c := range fintrack.Categories() {
		icon, ok := icons[string(c)]
		if !ok {
			t.Errorf("category %s is not documented", c)
			continue
		}
		if icon != c.Emoji() {
			t.Errorf("category %s is documented with %q, want %q", c, icon, c.Emoji())
		}
	}
	if len(icons) != len(fintrack.Categories()) {
		t.Errorf("documented %d categories, want %d", len(icons), len(fintrack.Categories()))
	}
}
