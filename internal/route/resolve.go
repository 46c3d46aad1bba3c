package route

import (
	"strings"

	"github.com/Zachkp/folio/internal/layout"
)

// Resolver builds routes from descriptors, asking its Selector for the
// wrapper of each layout it applies.
type Resolver struct {
	shells layout.Selector
}

func NewResolver(shells layout.Selector) *Resolver {
	return &Resolver{shells: shells}
}

type resolveState struct {
	errs *ValidationErrors
	seen map[string]string
}

func newResolveState() *resolveState {
	return &resolveState{errs: &ValidationErrors{}, seen: make(map[string]string)}
}

// Resolve turns one descriptor into a route. nested is true when d sits inside
// a parent whose subtree is already wrapped. Every defect of the subtree is
// returned as a *ValidationErrors.
func (r *Resolver) Resolve(d Descriptor, nested bool) (Route, error) {
	st := newResolveState()
	out := r.resolve(st, d, nested, "", layout.None)
	if err := st.errs.err(); err != nil {
		return Route{}, err
	}
	return out, nil
}

// ResolveAll resolves a top-level route table in declaration order.
func (r *Resolver) ResolveAll(ds []Descriptor) (Routes, error) {
	st := newResolveState()
	out := make(Routes, 0, len(ds))
	for _, d := range ds {
		out = append(out, r.resolve(st, d, false, "", layout.None))
	}
	if err := st.errs.err(); err != nil {
		return nil, err
	}
	return out, nil
}

// MustResolveAll is ResolveAll for tables that are fixed at compile time; a
// defect is a programming error and panics.
func (r *Resolver) MustResolveAll(ds []Descriptor) Routes {
	out, err := r.ResolveAll(ds)
	if err != nil {
		panic(err)
	}
	return out
}

// resolve applies the four resolution rules. applied is the layout already
// wrapped around d by its ancestors.
func (r *Resolver) resolve(st *resolveState, d Descriptor, nested bool, parent string, applied layout.Kind) Route {
	full := JoinPath(parent, d.Path)
	if d.Index {
		full = JoinPath(parent, "")
	}

	if !d.Layout.Valid() {
		st.errs.add(DefectInvalidLayout, full, "layout %s is not a known layout", d.Layout)
	}
	if d.Path == CatchAll && (nested || len(d.Children) > 0) {
		st.errs.add(DefectMisplacedCatchAll, full, "catch-all must be a top-level leaf")
	}

	switch {
	case len(d.Children) > 0:
		if d.Index {
			st.errs.add(DefectIndexChildren, full, "index route cannot have children")
		}
		if nested && d.Layout != layout.None && applied != layout.None && d.Layout != applied {
			st.errs.add(DefectLayoutConflict, full, "declares layout %s inside %s", d.Layout, applied)
		}

		el := Element{Component: d.Component}
		inner := applied
		if applied == layout.None && d.Layout != layout.None {
			el = r.wrapped(st, d, full)
			inner = d.Layout
		}

		out := Route{Path: d.Path, Element: el, Children: make([]Route, 0, len(d.Children))}
		indexes := 0
		for _, child := range d.Children {
			if child.Index {
				indexes++
			}
			out.Children = append(out.Children, r.resolve(st, child, true, full, inner))
		}
		if indexes > 1 {
			st.errs.add(DefectMultipleIndex, full, "%d children are marked as index", indexes)
		}
		if indexes == 0 {
			st.claim(full, d)
		}
		return out

	case d.Index:
		r.checkNestedLayout(st, d, full, applied)
		st.requireComponent(d, full)
		st.claim(full, d)
		return Route{Path: d.Path, Index: true, Element: Element{Component: d.Component}}

	case nested:
		r.checkNestedLayout(st, d, full, applied)
		st.requireComponent(d, full)
		st.claim(full, d)
		return Route{Path: d.Path, Element: Element{Component: d.Component}}

	default:
		st.requireComponent(d, full)
		st.claim(full, d)
		el := Element{Component: d.Component}
		if d.Layout != layout.None {
			el = r.wrapped(st, d, full)
		}
		return Route{Path: d.Path, Element: el}
	}
}

func (r *Resolver) wrapped(st *resolveState, d Descriptor, full string) Element {
	el := Element{Layout: d.Layout, Options: d.Options(), Component: d.Component}
	if !d.Layout.Valid() {
		return el
	}
	wrap, err := r.shells.Select(d.Layout, el.Options)
	if err != nil {
		st.errs.add(DefectInvalidLayout, full, "%v", err)
		return el
	}
	el.wrap = wrap
	return el
}

// checkNestedLayout rejects a leaf that asks for chrome its ancestors do not
// provide; the leaf would silently render without it.
func (r *Resolver) checkNestedLayout(st *resolveState, d Descriptor, full string, applied layout.Kind) {
	if d.Layout != layout.None && d.Layout != applied {
		st.errs.add(DefectLayoutConflict, full, "declares layout %s inside %s", d.Layout, applied)
	}
}

func (st *resolveState) requireComponent(d Descriptor, full string) {
	if d.Component == nil {
		what := "leaf route"
		if d.Index {
			what = "index route"
		}
		st.errs.add(DefectMissingComponent, full, "%s has no component", what)
	}
}

// claim records the URL pattern a descriptor renders at.
func (st *resolveState) claim(full string, d Descriptor) {
	key := patternKey(full)
	name := "outlet"
	if d.Component != nil {
		name = d.Component.Name()
	}
	if prev, ok := st.seen[key]; ok {
		st.errs.add(DefectDuplicatePath, full, "both %s and %s render here", prev, name)
		return
	}
	st.seen[key] = name
}

// patternKey normalizes parameter names so /blog/:id and /blog/:slug collide.
func patternKey(p string) string {
	segs := strings.Split(p, "/")
	for i, s := range segs {
		if strings.HasPrefix(s, ":") {
			segs[i] = ":"
		}
	}
	return strings.Join(segs, "/")
}

// JoinPath appends a relative route path to its parent's full path.
func JoinPath(parent, child string) string {
	if child == CatchAll && parent == "" {
		return CatchAll
	}
	child = strings.Trim(child, "/")
	parent = strings.TrimRight(parent, "/")
	if child == "" {
		if parent == "" {
			return "/"
		}
		return parent
	}
	return parent + "/" + child
}
