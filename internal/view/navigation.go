package view

import (
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

const navigationKey = "folio.view.navigation"

// Navigation describes where the current request sits in the site. It is
// built once per request by Navigate and handed to templates explicitly.
type Navigation struct {
	// Path is the request path with the mount prefix removed.
	Path string

	// BasePath is the mount prefix.
	BasePath string

	// Previous is the same-site path the visitor came from, if known.
	Previous string

	query url.Values
}

// NewNavigation builds a Navigation from the raw request path, query and
// Referer header.
func NewNavigation(basePath, requestPath, rawQuery, referer, host string) Navigation {
	q, _ := url.ParseQuery(rawQuery)
	return Navigation{
		Path:     trimBase(basePath, requestPath),
		BasePath: basePath,
		Previous: refererPath(basePath, referer, host),
		query:    q,
	}
}

// Navigate stores the request's Navigation on the gin context.
func Navigate(basePath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(navigationKey, fromRequest(c, basePath))
		c.Next()
	}
}

// NavigationFrom returns the Navigation stored by Navigate, computing one
// without a mount prefix when the middleware did not run.
func NavigationFrom(c *gin.Context) Navigation {
	if v, ok := c.Get(navigationKey); ok {
		if nav, ok := v.(Navigation); ok {
			return nav
		}
	}
	return fromRequest(c, "")
}

func fromRequest(c *gin.Context, basePath string) Navigation {
	return NewNavigation(basePath, c.Request.URL.Path, c.Request.URL.RawQuery, c.GetHeader("Referer"), c.Request.Host)
}

// ScrollReset reports whether the page changed since the previous view. A
// change of query string or fragment alone keeps the scroll position.
func (n Navigation) ScrollReset() bool {
	return n.Previous != "" && n.Previous != n.Path
}

// IsActive reports whether target is the current page, or an ancestor of it
// when exact is false.
func (n Navigation) IsActive(target string, exact bool) bool {
	if exact || target == "/" {
		return n.Path == target
	}
	return n.Path == target || strings.HasPrefix(n.Path, strings.TrimRight(target, "/")+"/")
}

// Query returns the first value of a query parameter.
func (n Navigation) Query(key string) string {
	return n.query.Get(key)
}

// QueryInt returns a positive integer query parameter or def.
func (n Navigation) QueryInt(key string, def int) int {
	v, err := strconv.Atoi(n.query.Get(key))
	if err != nil || v < 1 {
		return def
	}
	return v
}

// URL returns path prefixed with the mount prefix.
func (n Navigation) URL(path string) string {
	return JoinURL(n.BasePath, path)
}

// PageURL builds a link to the given page of the current listing, keeping
// the other query parameters.
func (n Navigation) PageURL(page int) string {
	params := url.Values{}
	for k, vs := range n.query {
		if k == "page" {
			continue
		}
		params[k] = vs
	}
	params.Set("page", strconv.Itoa(page))
	return n.URL(n.Path) + "?" + params.Encode()
}

// WithQuery links to the current path with key set to value and the page
// reset, as filters do.
func (n Navigation) WithQuery(key, value string) string {
	params := url.Values{}
	keys := make([]string, 0, len(n.query))
	for k := range n.query {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if k == key || k == "page" {
			continue
		}
		params[k] = n.query[k]
	}
	if value != "" {
		params.Set(key, value)
	}
	if len(params) == 0 {
		return n.URL(n.Path)
	}
	return n.URL(n.Path) + "?" + params.Encode()
}

func trimBase(basePath, p string) string {
	base := strings.TrimRight(basePath, "/")
	if base != "" && strings.HasPrefix(p, base) {
		p = strings.TrimPrefix(p, base)
	}
	if p == "" {
		return "/"
	}
	return p
}

func refererPath(basePath, referer, host string) string {
	if referer == "" {
		return ""
	}
	u, err := url.Parse(referer)
	if err != nil {
		return ""
	}
	if u.Host != "" && host != "" && u.Host != host {
		return ""
	}
	return trimBase(basePath, u.Path)
}
