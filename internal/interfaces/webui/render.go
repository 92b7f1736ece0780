package webui

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strconv"
	"time"

	"github.com/a-h/templ"
	"github.com/riskibarqy/football-pulse/internal/domain/match"
	"github.com/valyala/bytebufferpool"
)

//go:embed templates/*.gohtml
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

type renderer struct {
	tmpl *template.Template
}

func newRenderer(loc *time.Location) (*renderer, error) {
	if loc == nil {
		loc = time.Local
	}

	funcs := template.FuncMap{
		"kickoff": func(m match.Match) string {
			return m.LocalDate(loc)
		},
		"stat": func(v float64) string {
			return strconv.FormatFloat(v, 'f', -1, 64)
		},
		"shirt": func(n *int) string {
			if n == nil {
				return "-"
			}
			return strconv.Itoa(*n)
		},
		"orDash": func(v string) string {
			if v == "" {
				return "-"
			}
			return v
		},
		"add": func(a, b int) int { return a + b },
	}

	tmpl, err := template.New("webui").Funcs(funcs).ParseFS(templateFS, "templates/*.gohtml")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &renderer{tmpl: tmpl}, nil
}

// component adapts a named template into a templ component so pages share one render path.
func (r *renderer) component(name string, data any) (templ.Component, error) {
	t := r.tmpl.Lookup(name)
	if t == nil {
		return nil, fmt.Errorf("template %q not found", name)
	}
	return templ.FromGoHTML(t, data), nil
}

// render buffers the whole document before writing so a template failure never
// leaves a half-written page behind.
func (r *renderer) render(ctx context.Context, w http.ResponseWriter, name string, data any) error {
	component, err := r.component(name, data)
	if err != nil {
		return err
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := component.Render(ctx, buf); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, err = w.Write(buf.B)
	return err
}

func staticHandler() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.StripPrefix("/static/", http.FileServerFS(sub))
}
