// Package layout selects and renders the chrome that wraps page content.
package layout

import (
	"fmt"
	"html/template"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/folio/internal/content"
	"github.com/Zachkp/folio/internal/view"
)

// Wrapper returns content wrapped in a layout's chrome.
type Wrapper func(c *gin.Context, content template.HTML) (template.HTML, error)

// Selector maps a layout kind to its Wrapper.
type Selector interface {
	Select(kind Kind, opts Options) (Wrapper, error)
}

// Shells renders the site's layouts with the shared templates.
type Shells struct {
	r    *view.Renderer
	site content.Site
}

func NewShells(r *view.Renderer, site content.Site) *Shells {
	return &Shells{r: r, site: site}
}

// Select returns the Wrapper for kind. None returns content unchanged.
func (s *Shells) Select(kind Kind, opts Options) (Wrapper, error) {
	switch kind {
	case None:
		return passThrough, nil
	case Main:
		return s.main(opts), nil
	case Dashboard:
		return s.dashboard, nil
	case APIExplorer:
		return s.explorer, nil
	}
	return nil, fmt.Errorf("no shell for %s", kind)
}

func passThrough(_ *gin.Context, content template.HTML) (template.HTML, error) {
	return content, nil
}

type mainShell struct {
	Site    content.Site
	Nav     view.Navigation
	Options Options
	Content template.HTML
}

func (s *Shells) main(opts Options) Wrapper {
	return func(c *gin.Context, inner template.HTML) (template.HTML, error) {
		return s.r.Render("shell-main", mainShell{
			Site:    s.site,
			Nav:     view.NavigationFrom(c),
			Options: opts,
			Content: inner,
		})
	}
}

type menuGroup struct {
	Title string
	Items []content.MenuItem
}

type dashboardShell struct {
	Site    content.Site
	Nav     view.Navigation
	Groups  []menuGroup
	Current content.MenuItem
	Content template.HTML
}

func (s *Shells) dashboard(c *gin.Context, inner template.HTML) (template.HTML, error) {
	nav := view.NavigationFrom(c)
	groups := make([]menuGroup, 0, len(content.MenuGroupTitles))
	for i, title := range content.MenuGroupTitles {
		items := content.MenuByGroup(i)
		if len(items) > 0 {
			groups = append(groups, menuGroup{Title: title, Items: items})
		}
	}
	current, ok := content.MenuItemByPath(nav.Path)
	if !ok {
		current = content.MenuItem{Text: "Overview", Path: "/statistics"}
	}
	return s.r.Render("shell-dashboard", dashboardShell{
		Site:    s.site,
		Nav:     nav,
		Groups:  groups,
		Current: current,
		Content: inner,
	})
}

type explorerTab struct {
	Label string
	Path  string
	Exact bool
}

var explorerTabs = []explorerTab{
	{Label: "Overview", Path: "/api-explorer", Exact: true},
	{Label: "Users", Path: "/api-explorer/users"},
	{Label: "Posts", Path: "/api-explorer/posts"},
	{Label: "Albums", Path: "/api-explorer/albums"},
	{Label: "Todos", Path: "/api-explorer/todos"},
}

type explorerShell struct {
	Site    content.Site
	Nav     view.Navigation
	Tabs    []explorerTab
	Content template.HTML
}

func (s *Shells) explorer(c *gin.Context, inner template.HTML) (template.HTML, error) {
	return s.r.Render("shell-explorer", explorerShell{
		Site:    s.site,
		Nav:     view.NavigationFrom(c),
		Tabs:    explorerTabs,
		Content: inner,
	})
}
