package web

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/abenov/authweb/internal/common/logger"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageNames = []string{"index", "login", "register", "dashboard"}

type Templates struct {
	pages map[string]*template.Template
	log   *logger.Logger
}

type pageData struct {
	Title    string
	Flashes  []Flash
	Routes   Routes
	UserName string
}

func NewTemplates(log *logger.Logger) (*Templates, error) {
	pages := make(map[string]*template.Template, len(pageNames))

	for _, name := range pageNames {
		tmpl, err := template.ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		pages[name] = tmpl
	}

	return &Templates{pages: pages, log: log}, nil
}

func (t *Templates) Render(w http.ResponseWriter, name string, data pageData) {
	tmpl, ok := t.pages[name]
	if !ok {
		t.log.Errorf("unknown template: %s", name)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.ExecuteTemplate(w, "layout", data); err != nil {
		t.log.Errorf("failed to render template %s: %v", name, err)
	}
}
