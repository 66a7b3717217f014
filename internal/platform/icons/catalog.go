package icons

import (
	"fmt"
	"strings"
)

// ID identifies an interface glyph.
type ID string

const (
	Check      ID = "check"
	ArrowRight ID = "arrow-right"
)

// Definition describes a glyph entry.
type Definition struct {
	ID          ID
	Name        string
	Description string
}

var catalog = []Definition{
	{
		ID:          Check,
		Name:        "Check",
		Description: "Affirmative marker in front of each offer feature.",
	},
	{
		ID:          ArrowRight,
		Name:        "Arrow right",
		Description: "Forward cue on the primary call to action.",
	},
}

// Catalog returns the glyph definitions in declaration order.
func Catalog() []Definition {
	return append([]Definition(nil), catalog...)
}

// CatalogMarkdown renders the catalog as a markdown table.
func CatalogMarkdown() string {
	var b strings.Builder
	b.WriteString("| ID | Name | Lucide | Description |\n")
	b.WriteString("| --- | --- | --- | --- |\n")
	for _, def := range catalog {
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", def.ID, def.Name, LucideNameOrDefault(def.ID), def.Description)
	}
	return b.String()
}
