package pages

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/folio/internal/content"
	"github.com/Zachkp/folio/internal/explorer"
	"github.com/Zachkp/folio/internal/layout"
	"github.com/Zachkp/folio/internal/route"
	"github.com/Zachkp/folio/internal/tracking"
	"github.com/Zachkp/folio/internal/view"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeExplorer struct {
	err error
}

func (f fakeExplorer) Users(context.Context) ([]explorer.User, error) {
	return []explorer.User{{ID: 1, Name: "Leanne Graham", Username: "Bret"}, {ID: 2, Name: "Ervin Howell", Username: "Antonette"}}, f.err
}

func (f fakeExplorer) Posts(context.Context) ([]explorer.Post, error) {
	return []explorer.Post{{UserID: 1, ID: 1, Title: "sunt aut facere", Body: "quia et suscipit"}, {UserID: 2, ID: 2, Title: "qui est esse", Body: "est rerum"}}, f.err
}

func (f fakeExplorer) PostComments(_ context.Context, id int) ([]explorer.Comment, error) {
	return []explorer.Comment{{PostID: id, ID: 1, Name: "id labore", Email: "Eliseo@gardner.biz", Body: "laudantium"}}, f.err
}

func (f fakeExplorer) Albums(context.Context) ([]explorer.Album, error) {
	return []explorer.Album{{UserID: 1, ID: 1, Title: "quidem molestiae enim"}}, f.err
}

func (f fakeExplorer) AlbumPhotos(_ context.Context, id int) ([]explorer.Photo, error) {
	return []explorer.Photo{{AlbumID: id, ID: 1, Title: "accusamus", URL: "https://via.placeholder.com/600/92c952", ThumbnailURL: "https://via.placeholder.com/150/92c952"}}, f.err
}

func (f fakeExplorer) Todos(context.Context) ([]explorer.Todo, error) {
	return []explorer.Todo{{UserID: 1, ID: 1, Title: "delectus aut autem"}, {UserID: 2, ID: 2, Title: "fugiat veniam", Completed: true}}, f.err
}

func (f fakeExplorer) Overview(context.Context) (explorer.Overview, error) {
	if f.err != nil {
		return explorer.Overview{}, f.err
	}
	return explorer.Overview{Users: 10, Posts: 100, Albums: 100, Todos: 200, CompletedTodos: 90}, nil
}

type fakeVisits struct{}

func (fakeVisits) Stats(context.Context, time.Time) (*tracking.Stats, error) {
	return &tracking.Stats{TotalVisitors: 42, UniqueVisitors: 7}, nil
}

func newEngine(t *testing.T, ex Explorer) *gin.Engine {
	t.Helper()
	r, err := view.New(view.Options{SiteTitle: "Test"})
	if err != nil {
		t.Fatalf("view.New() error = %v", err)
	}
	blog, err := content.DefaultBlog()
	if err != nil {
		t.Fatalf("DefaultBlog() error = %v", err)
	}
	site := content.DefaultSite()
	routes, err := route.NewResolver(layout.NewShells(r, site)).ResolveAll(Table(Deps{
		Renderer: r,
		Site:     site,
		Blog:     blog,
		Explorer: ex,
		Visits:   fakeVisits{},
	}))
	if err != nil {
		t.Fatalf("ResolveAll() error = %v", err)
	}

	engine := gin.New()
	engine.Use(view.Navigate(""))
	_, err = route.Mount(engine, routes, route.MountOptions{
		NoRoute: engine.NoRoute,
		Error: func(c *gin.Context, err error) {
			status := http.StatusInternalServerError
			if errors.Is(err, view.ErrNotFound) {
				status = http.StatusNotFound
			}
			c.String(status, "error: %v", err)
		},
	})
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	return engine
}

func get(engine *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestEveryPageRenders(t *testing.T) {
	engine := newEngine(t, fakeExplorer{})
	tests := []struct {
		path string
		want string
	}{
		{"/", "Featured projects"},
		{"/1", "Blob Cursor"},
		{"/about", "Tech stack"},
		{"/projects", "Projects"},
		{"/projects?category=electrical&page=1", "Smart Grid System"},
		{"/electrical/smart-grid", "Key features"},
		{"/blog", "Featured"},
		{"/blog?category=design", "class=\"active\">design"},
		{"/blog/graphql-vs-rest", "Related posts"},
		{"/statistics", "Monthly traffic"},
		{"/statistics/overview", "Live visitors"},
		{"/statistics/analytics", "Monthly detail"},
		{"/statistics/geographic", "Visitors by region"},
		{"/statistics/devices", "Operating systems"},
		{"/statistics/projects", "By category"},
		{"/statistics/users", "Last seen"},
		{"/statistics/email", "Inbox"},
		{"/statistics/calendar", "Upcoming events"},
		{"/statistics/work-data-1", "Average progress"},
		{"/statistics/work-data-2?status=pending", "export.csv?status=pending"},
		{"/statistics/work-data-3?q=kim", "results for"},
		{"/api-explorer", "Todo completion"},
		{"/api-explorer/users?user=2", "Ervin Howell"},
		{"/api-explorer/posts?q=esse", "qui est esse"},
		{"/api-explorer/posts/1", "Eliseo@gardner.biz"},
		{"/api-explorer/albums", "quidem molestiae enim"},
		{"/api-explorer/albums/1", "via.placeholder.com/150"},
		{"/api-explorer/todos?status=completed", "fugiat veniam"},
		{"/started", "Banking that keeps up with you"},
		{"/future", "Particle fields"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := get(engine, tt.path)
			if w.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200\n%s", w.Code, w.Body.String())
			}
			if !strings.Contains(w.Body.String(), tt.want) {
				t.Errorf("body does not contain %q", tt.want)
			}
		})
	}
}

func TestLayoutsWrapTheirSubtrees(t *testing.T) {
	engine := newEngine(t, fakeExplorer{})
	tests := []struct {
		path    string
		shell   string
		without []string
	}{
		{"/about", "shell-main", []string{"shell-dashboard", "shell-explorer"}},
		{"/statistics/devices", "shell-dashboard", []string{"shell-main", "site-header"}},
		{"/api-explorer/todos", "shell-explorer", []string{"shell-main"}},
		{"/blog", "blog-header", []string{"shell-main", "site-footer"}},
		{"/started", "landing", []string{"shell-"}},
	}
	for _, tt := range tests {
		body := get(engine, tt.path).Body.String()
		if !strings.Contains(body, tt.shell) {
			t.Errorf("%s: missing %s", tt.path, tt.shell)
		}
		for _, w := range tt.without {
			if strings.Contains(body, w) {
				t.Errorf("%s: unexpected %s", tt.path, w)
			}
		}
		if n := strings.Count(body, `class="shell `); n > 1 {
			t.Errorf("%s: %d shells, want at most 1", tt.path, n)
		}
	}
}

func TestMissingItems(t *testing.T) {
	engine := newEngine(t, fakeExplorer{})
	for _, path := range []string{"/blog/no-such-post", "/api-explorer/posts/999", "/api-explorer/posts/abc", "/api-explorer/albums/0"} {
		if w := get(engine, path); w.Code != http.StatusNotFound {
			t.Errorf("%s: status = %d, want 404", path, w.Code)
		}
	}

	w := get(engine, "/no/such/page")
	if w.Code != http.StatusNotFound {
		t.Errorf("catch-all status = %d, want 404", w.Code)
	}
	if !strings.Contains(w.Body.String(), "shell-main") || !strings.Contains(w.Body.String(), "/no/such/page") {
		t.Errorf("catch-all body:\n%s", w.Body.String())
	}
}

func TestExplorerFailureShowsNotice(t *testing.T) {
	engine := newEngine(t, fakeExplorer{err: errors.New("connection refused")})
	for _, path := range []string{"/api-explorer", "/api-explorer/users", "/api-explorer/posts", "/api-explorer/posts/1", "/api-explorer/albums/1", "/api-explorer/todos"} {
		w := get(engine, path)
		if w.Code != http.StatusOK {
			t.Errorf("%s: status = %d, want 200", path, w.Code)
			continue
		}
		if !strings.Contains(w.Body.String(), "could not be reached") {
			t.Errorf("%s: no notice shown", path)
		}
	}
}

func TestWorkFilterFrom(t *testing.T) {
	nav := view.NewNavigation("", "/statistics/work-data-2", "q=api&status=inprogress&category=test&priority=medium", "", "")
	got := WorkFilterFrom(nav)
	want := content.WorkFilter{Keyword: "api", Status: "inprogress", Category: "test", Priority: "medium"}
	if got != want {
		t.Errorf("WorkFilterFrom() = %+v, want %+v", got, want)
	}
}
