package layout

import (
	"html/template"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/folio/internal/content"
	"github.com/Zachkp/folio/internal/view"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newShells(t *testing.T) *Shells {
	t.Helper()
	r, err := view.New(view.Options{SiteTitle: "Test"})
	if err != nil {
		t.Fatalf("view.New() error = %v", err)
	}
	return NewShells(r, content.DefaultSite())
}

func testContext(path string) *gin.Context {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, path, nil)
	return c
}

func wrap(t *testing.T, s *Shells, kind Kind, opts Options, path string) string {
	t.Helper()
	w, err := s.Select(kind, opts)
	if err != nil {
		t.Fatalf("Select(%s) error = %v", kind, err)
	}
	out, err := w(testContext(path), template.HTML("<p>inner</p>"))
	if err != nil {
		t.Fatalf("wrapper error = %v", err)
	}
	return string(out)
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in      string
		want    Kind
		wantErr bool
	}{
		{"", None, false},
		{"none", None, false},
		{"Main", Main, false},
		{"pages", Main, false},
		{"statistics", Dashboard, false},
		{" dashboard ", Dashboard, false},
		{"api-explorer", APIExplorer, false},
		{"sidebar", None, true},
	}
	for _, tt := range tests {
		got, err := ParseKind(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseKind(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseKind(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestKindString(t *testing.T) {
	for _, k := range []Kind{None, Main, Dashboard, APIExplorer} {
		back, err := ParseKind(k.String())
		if err != nil || back != k {
			t.Errorf("ParseKind(%q) = %s, %v", k.String(), back, err)
		}
	}
	if got := Kind(9).String(); got != "layout(9)" {
		t.Errorf("Kind(9).String() = %q", got)
	}
	if Kind(9).Valid() || Kind(-1).Valid() {
		t.Error("out of range kinds are valid")
	}
}

func TestSelectNoneIsPassThrough(t *testing.T) {
	s := newShells(t)
	if got := wrap(t, s, None, DefaultOptions(), "/started"); got != "<p>inner</p>" {
		t.Errorf("None wrapper = %q", got)
	}
	if _, err := s.Select(Kind(7), DefaultOptions()); err == nil {
		t.Error("Select(7) returned no error")
	}
}

func TestMainShellOptions(t *testing.T) {
	s := newShells(t)

	full := wrap(t, s, Main, DefaultOptions(), "/about")
	for _, want := range []string{"<p>inner</p>", `class="site-header"`, `class="site-footer"`, `aria-current="page">About`} {
		if !strings.Contains(full, want) {
			t.Errorf("main shell missing %q", want)
		}
	}

	bare := wrap(t, s, Main, Options{}, "/about")
	if strings.Contains(bare, "site-header") || strings.Contains(bare, "site-footer") {
		t.Errorf("header or footer rendered with both disabled:\n%s", bare)
	}
	if !strings.Contains(bare, "<p>inner</p>") {
		t.Error("content missing from bare main shell")
	}
}

func TestDashboardShellMarksCurrentItem(t *testing.T) {
	out := wrap(t, newShells(t), Dashboard, DefaultOptions(), "/statistics/devices")
	if !strings.Contains(out, "<h1>Devices</h1>") {
		t.Errorf("dashboard header does not name the current page:\n%s", out)
	}
	if !strings.Contains(out, `href="/statistics/devices" class="active"`) {
		t.Errorf("current menu item is not active:\n%s", out)
	}
	if !strings.Contains(out, "Work data") {
		t.Error("second menu group missing")
	}
}

func TestExplorerShellTabs(t *testing.T) {
	s := newShells(t)
	tests := []struct {
		path   string
		active string
	}{
		{"/api-explorer", `href="/api-explorer" class="active"`},
		{"/api-explorer/posts/3", `href="/api-explorer/posts" class="active"`},
	}
	for _, tt := range tests {
		out := wrap(t, s, APIExplorer, DefaultOptions(), tt.path)
		if !strings.Contains(out, tt.active) {
			t.Errorf("%s: missing %s", tt.path, tt.active)
		}
		if strings.Count(out, `class="active"`) != 1 {
			t.Errorf("%s: %d active tabs, want 1", tt.path, strings.Count(out, `class="active"`))
		}
	}
}
