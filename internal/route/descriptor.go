// Package route turns the site's static route descriptors into a tree of
// renderable routes and mounts that tree on a gin router.
//
// A descriptor either groups children under one layout shell, marks the
// default child of its parent (Index), or is a leaf page. Resolution applies
// each layout exactly once per subtree, at the highest ancestor that declares
// it; nested children render through their parent's outlet without a second
// shell.
package route

import (
	"html/template"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/folio/internal/layout"
)

// Component is a renderable unit. outlet holds the rendered child route when
// the component is a parent; it is empty for leaves.
type Component interface {
	Name() string
	Render(c *gin.Context, outlet template.HTML) (template.HTML, error)
}

// CatchAll is the path of the descriptor that renders unmatched URLs.
const CatchAll = "*"

// Descriptor is one node of the static route table.
type Descriptor struct {
	Path       string
	Component  Component
	Layout     layout.Kind
	ShowHeader *bool
	ShowFooter *bool
	Children   []Descriptor
	Index      bool
}

// Bool returns a pointer to b for the optional descriptor flags.
func Bool(b bool) *bool {
	return &b
}

// Options resolves the optional chrome flags, both defaulting to true.
func (d Descriptor) Options() layout.Options {
	opts := layout.DefaultOptions()
	if d.ShowHeader != nil {
		opts.ShowHeader = *d.ShowHeader
	}
	if d.ShowFooter != nil {
		opts.ShowFooter = *d.ShowFooter
	}
	return opts
}

// Element is what a resolved route renders: an optional layout shell around
// either the component or, when the component is nil, the child outlet.
type Element struct {
	Layout    layout.Kind
	Options   layout.Options
	Component Component

	wrap layout.Wrapper
}

// Wrapped reports whether this element applies a layout shell.
func (e Element) Wrapped() bool {
	return e.wrap != nil
}

// Outlet reports whether the element renders only its children.
func (e Element) Outlet() bool {
	return e.Component == nil
}

// Route is a node of the resolved tree.
type Route struct {
	Path     string
	Index    bool
	Element  Element
	Children []Route
}

// Routes is a resolved route table in declaration order.
type Routes []Route
