package route

import (
	"fmt"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/folio/internal/layout"
)

// MountOptions controls how rendered routes are written.
type MountOptions struct {
	// Document writes the rendered body as the response.
	Document func(c *gin.Context, status int, body template.HTML)

	// Error handles a failed render.
	Error func(c *gin.Context, err error)

	// NoRoute installs the catch-all handler, normally (*gin.Engine).NoRoute.
	// When nil a catch-all descriptor is skipped.
	NoRoute func(handlers ...gin.HandlerFunc)
}

// Mounted describes one registered URL pattern.
type Mounted struct {
	Pattern  string
	Chain    []string
	Layout   layout.Kind
	CatchAll bool
}

type mounter struct {
	r       gin.IRoutes
	opts    MountOptions
	mounted []Mounted
	errs    *ValidationErrors
}

// Mount registers a GET handler for every renderable path of routes. Index
// children are served at their parent's path, and a parent without an index
// child serves its own path with an empty outlet.
func Mount(r gin.IRoutes, routes Routes, opts MountOptions) ([]Mounted, error) {
	if opts.Document == nil {
		opts.Document = func(c *gin.Context, status int, body template.HTML) {
			c.Data(status, "text/html; charset=utf-8", []byte(body))
		}
	}
	if opts.Error == nil {
		opts.Error = func(c *gin.Context, err error) {
			_ = c.AbortWithError(http.StatusInternalServerError, err)
		}
	}

	m := &mounter{r: r, opts: opts, errs: &ValidationErrors{}}
	m.walk(routes, "", nil)
	if err := m.errs.err(); err != nil {
		return m.mounted, err
	}
	return m.mounted, nil
}

func (m *mounter) walk(routes []Route, parent string, chain []Route) {
	for _, rt := range routes {
		path := rt.Chain(chain)

		if rt.Path == CatchAll && len(chain) == 0 {
			if m.opts.NoRoute == nil {
				continue
			}
			m.opts.NoRoute(m.handler(path, http.StatusNotFound))
			m.record(CatchAll, path, true)
			continue
		}

		full := JoinPath(parent, rt.Path)
		if rt.Index {
			full = JoinPath(parent, "")
		}

		if len(rt.Children) > 0 {
			m.walk(rt.Children, full, path)
			if !hasIndex(rt.Children) {
				m.register(full, path)
			}
			continue
		}
		m.register(full, path)
	}
}

// Chain returns the ancestors followed by rt, without aliasing ancestors.
func (rt Route) Chain(ancestors []Route) []Route {
	out := make([]Route, len(ancestors), len(ancestors)+1)
	copy(out, ancestors)
	return append(out, rt)
}

func (m *mounter) register(pattern string, chain []Route) {
	defer func() {
		if v := recover(); v != nil {
			m.errs.add(DefectMountConflict, pattern, "%v", v)
		}
	}()
	m.r.GET(pattern, m.handler(chain, http.StatusOK))
	m.record(pattern, chain, false)
}

func (m *mounter) record(pattern string, chain []Route, catchAll bool) {
	mt := Mounted{Pattern: pattern, CatchAll: catchAll}
	for _, rt := range chain {
		if rt.Element.Wrapped() {
			mt.Layout = rt.Element.Layout
		}
		name := "outlet"
		if rt.Element.Component != nil {
			name = rt.Element.Component.Name()
		}
		mt.Chain = append(mt.Chain, name)
	}
	m.mounted = append(m.mounted, mt)
}

func (m *mounter) handler(chain []Route, status int) gin.HandlerFunc {
	return func(c *gin.Context) {
		body, err := Render(c, chain)
		if err != nil {
			m.opts.Error(c, err)
			return
		}
		m.opts.Document(c, status, body)
	}
}

// Render renders a root-to-leaf chain: the leaf first, then each ancestor's
// component with the result as its outlet, then the ancestor's shell.
func Render(c *gin.Context, chain []Route) (template.HTML, error) {
	var out template.HTML
	for i := len(chain) - 1; i >= 0; i-- {
		el := chain[i].Element
		if el.Component != nil {
			rendered, err := el.Component.Render(c, out)
			if err != nil {
				return "", err
			}
			out = rendered
		}
		if el.wrap != nil {
			wrapped, err := el.wrap(c, out)
			if err != nil {
				return "", fmt.Errorf("%s layout: %w", el.Layout, err)
			}
			out = wrapped
		}
	}
	return out, nil
}

func hasIndex(routes []Route) bool {
	for _, rt := range routes {
		if rt.Index {
			return true
		}
	}
	return false
}
