package view

import (
	"html/template"

	"github.com/gin-gonic/gin"
)

// Loader produces the data a page template renders.
type Loader func(c *gin.Context) (any, error)

// Page is a renderable unit backed by a named template.
type Page struct {
	r        *Renderer
	template string
	title    string
	load     Loader
}

// PageData is the value every page template executes with.
type PageData struct {
	Data   any
	Outlet template.HTML
	Nav    Navigation
}

// Page binds a template to the renderer. load may be nil for static pages.
func (r *Renderer) Page(templateName, title string, load Loader) *Page {
	return &Page{r: r, template: templateName, title: title, load: load}
}

func (p *Page) Name() string {
	return p.template
}

func (p *Page) Render(c *gin.Context, outlet template.HTML) (template.HTML, error) {
	var data any
	if p.load != nil {
		var err error
		if data, err = p.load(c); err != nil {
			return "", err
		}
	}
	SetTitle(c, p.title)
	return p.r.Render(p.template, PageData{
		Data:   data,
		Outlet: outlet,
		Nav:    NavigationFrom(c),
	})
}
