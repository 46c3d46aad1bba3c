package view

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestNewNavigation(t *testing.T) {
	tests := []struct {
		name        string
		base        string
		path        string
		referer     string
		wantPath    string
		wantPrev    string
		scrollReset bool
	}{
		{"first visit", "", "/about", "", "/about", "", false},
		{"page change", "", "/about", "http://example.com/projects?category=it", "/about", "/projects", true},
		{"query change only", "", "/projects", "http://example.com/projects?page=2", "/projects", "/projects", false},
		{"fragment change only", "", "/", "http://example.com/#contact", "/", "/", false},
		{"other site", "", "/about", "https://elsewhere.org/", "/about", "", false},
		{"mount prefix", "/site", "/site/blog", "http://example.com/site/", "/blog", "/", true},
		{"mount root", "/site", "/site", "", "/", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nav := NewNavigation(tt.base, tt.path, "", tt.referer, "example.com")
			if nav.Path != tt.wantPath {
				t.Errorf("Path = %q, want %q", nav.Path, tt.wantPath)
			}
			if nav.Previous != tt.wantPrev {
				t.Errorf("Previous = %q, want %q", nav.Previous, tt.wantPrev)
			}
			if nav.ScrollReset() != tt.scrollReset {
				t.Errorf("ScrollReset() = %v, want %v", nav.ScrollReset(), tt.scrollReset)
			}
		})
	}
}

func TestNavigationIsActive(t *testing.T) {
	tests := []struct {
		path   string
		target string
		exact  bool
		want   bool
	}{
		{"/", "/", false, true},
		{"/about", "/", false, false},
		{"/statistics/users", "/statistics", false, true},
		{"/statistics/users", "/statistics", true, false},
		{"/statistics", "/statistics", true, true},
		{"/statisticsx", "/statistics", false, false},
		{"/api-explorer/posts/4", "/api-explorer/posts", false, true},
	}
	for _, tt := range tests {
		nav := NewNavigation("", tt.path, "", "", "")
		if got := nav.IsActive(tt.target, tt.exact); got != tt.want {
			t.Errorf("IsActive(%q, %v) at %q = %v, want %v", tt.target, tt.exact, tt.path, got, tt.want)
		}
	}
}

func TestNavigationQuery(t *testing.T) {
	nav := NewNavigation("/site", "/site/blog", "category=tech&page=2&bad=x", "", "")

	if got := nav.Query("category"); got != "tech" {
		t.Errorf("Query(category) = %q", got)
	}
	if got := nav.QueryInt("page", 1); got != 2 {
		t.Errorf("QueryInt(page) = %d, want 2", got)
	}
	if got := nav.QueryInt("bad", 1); got != 1 {
		t.Errorf("QueryInt(bad) = %d, want default", got)
	}
	if got := NewNavigation("", "/", "page=0", "", "").QueryInt("page", 1); got != 1 {
		t.Errorf("QueryInt(page=0) = %d, want default", got)
	}

	if got, want := nav.PageURL(3), "/site/blog?bad=x&category=tech&page=3"; got != want {
		t.Errorf("PageURL(3) = %q, want %q", got, want)
	}
	if got, want := nav.WithQuery("category", "design"), "/site/blog?bad=x&category=design"; got != want {
		t.Errorf("WithQuery = %q, want %q", got, want)
	}
	if got, want := NewNavigation("", "/blog", "category=tech", "", "").WithQuery("category", ""), "/blog"; got != want {
		t.Errorf("WithQuery(empty) = %q, want %q", got, want)
	}
	if got := nav.URL("/static/site.css"); got != "/site/static/site.css" {
		t.Errorf("URL = %q", got)
	}
}

func TestNavigateMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(Navigate("/site"))
	var got Navigation
	r.GET("/site/about", func(c *gin.Context) {
		got = NavigationFrom(c)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/site/about?x=1", nil)
	req.Header.Set("Referer", "http://example.com/site/projects")
	r.ServeHTTP(w, req)

	if got.Path != "/about" || got.BasePath != "/site" || got.Previous != "/projects" {
		t.Errorf("Navigation = %+v", got)
	}
	if got.Query("x") != "1" {
		t.Errorf("Query(x) = %q", got.Query("x"))
	}
}
