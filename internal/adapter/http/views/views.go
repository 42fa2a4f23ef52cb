package views

import (
	"embed"
	"html/template"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"todoapp/internal/adapter/http/dto"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page is the data every template receives. Messages are already translated.
type Page struct {
	Lang          string
	Title         string
	Authenticated bool
	Flashes       []string
	Notice        string
	Errors        map[string]string
	Form          any
	Data          any
}

type DashboardData struct {
	Tasks  []dto.TaskItem
	Stats  dto.TaskStats
	Status string
	Search string
}

// TaskFormData backs task_form.html for both adding and editing.
type TaskFormData struct {
	Heading    string
	Action     string
	Submit     string
	Priorities []string
	Categories []string
}

// ErrorData backs error.html.
type ErrorData struct {
	Code    int
	Message string
}

func funcMap() template.FuncMap {
	return template.FuncMap{
		// A Caser is stateful, so each call gets its own.
		"title": func(s string) string {
			return cases.Title(language.Und).String(s)
		},
		"fieldError": func(errs map[string]string, field string) string {
			return errs[field]
		},
	}
}

// Load parses the embedded templates. Each page is addressed by file name.
func Load() (*template.Template, error) {
	return template.New("").Funcs(funcMap()).ParseFS(templateFS, "templates/*.html")
}
