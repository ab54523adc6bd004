package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"petcare-crm/internal/platform/logger"
)

//go:embed templates/*.html
var files embed.FS

// Renderer ejecuta los templates HTML embebidos. El set completo se parsea
// una sola vez al construirlo; un template roto falla el arranque, no un
// request.
type Renderer struct {
	tmpl *template.Template
	log  logger.Logger
}

func New(log logger.Logger) (*Renderer, error) {
	funcs := template.FuncMap{
		"fmtDateTime": func(t time.Time) string {
			return t.Format("02/01/2006 15:04")
		},
		"inputDateTime": func(t time.Time) string {
			// formato que espera <input type="datetime-local">
			return t.Format("2006-01-02T15:04")
		},
		"money": func(v float64) string {
			return fmt.Sprintf("%.2f", v)
		},
		"intVal": func(p *int) any {
			if p == nil {
				return ""
			}
			return *p
		},
	}

	tmpl, err := template.New("views").Funcs(funcs).ParseFS(files, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	return &Renderer{tmpl: tmpl, log: log}, nil
}

// HTML renderiza el template a un buffer antes de escribir, para no mandar
// media página si la ejecución falla.
func (rnd *Renderer) HTML(w http.ResponseWriter, status int, name string, data any) {
	var buf bytes.Buffer
	if err := rnd.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		rnd.log.Error("render template failed", map[string]any{
			"template": name,
			"error":    err.Error(),
		})
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
