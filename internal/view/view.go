// Package view renders the site's html/template pages and the surrounding
// HTML document.
package view

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tdewolff/minify/v2"
	minifyHTML "github.com/tdewolff/minify/v2/html"
)

//go:embed templates/*.html
var templateFS embed.FS

// ErrNotFound is returned by page loaders when the addressed item does not exist.
var ErrNotFound = errors.New("not found")

type Options struct {
	// BasePath prefixes every generated link.
	BasePath string

	// SiteTitle is used for the <title> when a page sets none.
	SiteTitle string

	// Minify runs the finished document through the HTML minifier.
	Minify bool
}

type Renderer struct {
	opts     Options
	tmpl     *template.Template
	minifier *minify.M
}

func New(opts Options) (*Renderer, error) {
	tmpl, err := template.New("").Funcs(funcMap(opts.BasePath)).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	r := &Renderer{opts: opts, tmpl: tmpl}
	if opts.Minify {
		m := minify.New()
		m.AddFunc("text/html", minifyHTML.Minify)
		r.minifier = m
	}
	return r, nil
}

// Render executes the named template into an HTML fragment.
func (r *Renderer) Render(name string, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return template.HTML(buf.String()), nil
}

// Has reports whether a template with the given name was parsed.
func (r *Renderer) Has(name string) bool {
	return r.tmpl.Lookup(name) != nil
}

type documentData struct {
	Title string
	Site  string
	Body  template.HTML
	Nav   Navigation
}

// Document writes body wrapped in the full HTML document.
func (r *Renderer) Document(c *gin.Context, status int, body template.HTML) {
	title := TitleFrom(c)
	if title == "" {
		title = r.opts.SiteTitle
	} else if r.opts.SiteTitle != "" {
		title = title + " | " + r.opts.SiteTitle
	}

	html, err := r.Render("document", documentData{
		Title: title,
		Site:  r.opts.SiteTitle,
		Body:  body,
		Nav:   NavigationFrom(c),
	})
	if err != nil {
		_ = c.Error(err)
		c.String(http.StatusInternalServerError, "internal server error")
		return
	}

	out := []byte(html)
	if r.minifier != nil {
		if min, err := r.minifier.Bytes("text/html", out); err == nil {
			out = min
		}
	}
	c.Data(status, "text/html; charset=utf-8", out)
}

const titleKey = "folio.view.title"

// SetTitle records the page title for the document. The first caller wins,
// so the innermost page decides over enclosing components.
func SetTitle(c *gin.Context, title string) {
	if title == "" {
		return
	}
	if _, ok := c.Get(titleKey); ok {
		return
	}
	c.Set(titleKey, title)
}

func TitleFrom(c *gin.Context) string {
	return c.GetString(titleKey)
}
