package web

import (
	"embed"
	"html/template"

	"github.com/andresmatiasescobar/pokedex/internal/entities"
	"github.com/andresmatiasescobar/pokedex/internal/services/browser"
)

//go:embed templates/*.html
var templateFS embed.FS

const indexTemplate = "index.html"

// Page is the data the index template renders
type Page struct {
	View         *browser.View
	Notice       string
	EmptyMessage string
}

// NewPage wraps a view for rendering. Notice is an optional line above the list.
func NewPage(v *browser.View, notice string) *Page {
	return &Page{
		View:         v,
		Notice:       notice,
		EmptyMessage: browser.EmptyMessage,
	}
}

func parseTemplates() (*template.Template, error) {
	return template.New("").
		Funcs(template.FuncMap{"capitalize": entities.Capitalize}).
		ParseFS(templateFS, "templates/*.html")
}
