package explorer

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"
)

type countingRecorder struct {
	mu    sync.Mutex
	calls map[string]int
}

func (r *countingRecorder) ExplorerRequest(endpoint, outcome string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.calls == nil {
		r.calls = make(map[string]int)
	}
	r.calls[endpoint+"/"+outcome]++
}

func fakeAPI(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/users", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":1,"name":"Leanne Graham","username":"Bret","email":"Sincere@april.biz","company":{"name":"Romaguera-Crona"}},{"id":2,"name":"Ervin Howell","username":"Antonette","email":"Shanna@melissa.tv"}]`))
	})
	mux.HandleFunc("/posts", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"userId":1,"id":1,"title":"sunt aut facere","body":"quia et suscipit"},{"userId":2,"id":2,"title":"qui est esse","body":"est rerum tempore"},{"userId":2,"id":3,"title":"ea molestias","body":"et iusto sed"}]`))
	})
	mux.HandleFunc("/posts/1/comments", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"postId":1,"id":1,"name":"id labore","email":"Eliseo@gardner.biz","body":"laudantium"}]`))
	})
	mux.HandleFunc("/albums", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"userId":1,"id":1,"title":"quidem molestiae enim"}]`))
	})
	mux.HandleFunc("/albums/1/photos", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"albumId":1,"id":1,"title":"accusamus","url":"https://via.placeholder.com/600/92c952","thumbnailUrl":"https://via.placeholder.com/150/92c952"}]`))
	})
	mux.HandleFunc("/todos", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"userId":1,"id":1,"title":"delectus aut autem","completed":false},{"userId":1,"id":2,"title":"quis ut nam","completed":true},{"userId":2,"id":3,"title":"fugiat veniam","completed":true},{"userId":2,"id":4,"title":"et porro","completed":false}]`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestClientDecodes(t *testing.T) {
	srv := fakeAPI(t)
	c := New(srv.URL+"/", time.Second)
	ctx := context.Background()

	users, err := c.Users(ctx)
	if err != nil {
		t.Fatalf("Users() error = %v", err)
	}
	if len(users) != 2 || users[0].Company.Name != "Romaguera-Crona" {
		t.Errorf("Users() = %+v", users)
	}

	comments, err := c.PostComments(ctx, 1)
	if err != nil {
		t.Fatalf("PostComments() error = %v", err)
	}
	if len(comments) != 1 || comments[0].Email != "Eliseo@gardner.biz" {
		t.Errorf("PostComments() = %+v", comments)
	}

	photos, err := c.AlbumPhotos(ctx, 1)
	if err != nil {
		t.Fatalf("AlbumPhotos() error = %v", err)
	}
	if len(photos) != 1 || photos[0].ThumbnailURL == "" {
		t.Errorf("AlbumPhotos() = %+v", photos)
	}
}

func TestClientStatusError(t *testing.T) {
	srv := fakeAPI(t)
	rec := &countingRecorder{}
	c := New(srv.URL, time.Second, WithRecorder(rec))

	_, err := c.PostComments(context.Background(), 999)
	var se *StatusError
	if !errors.As(err, &se) {
		t.Fatalf("error = %v, want *StatusError", err)
	}
	if se.Code != http.StatusNotFound {
		t.Errorf("Code = %d, want 404", se.Code)
	}
	if rec.calls["post_comments/status_404"] != 1 {
		t.Errorf("recorded = %v", rec.calls)
	}
}

func TestClientCanceled(t *testing.T) {
	srv := fakeAPI(t)
	rec := &countingRecorder{}
	c := New(srv.URL, time.Second, WithRecorder(rec))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := c.Users(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
	if rec.calls["users/canceled"] != 1 {
		t.Errorf("recorded = %v", rec.calls)
	}
}

func TestOverview(t *testing.T) {
	srv := fakeAPI(t)
	rec := &countingRecorder{}
	c := New(srv.URL, time.Second, WithRecorder(rec))

	o, err := c.Overview(context.Background())
	if err != nil {
		t.Fatalf("Overview() error = %v", err)
	}
	want := Overview{Users: 2, Posts: 3, Albums: 1, Todos: 4, CompletedTodos: 2}
	if o != want {
		t.Errorf("Overview() = %+v, want %+v", o, want)
	}
	if o.CompletionRate() != 50 {
		t.Errorf("CompletionRate() = %d, want 50", o.CompletionRate())
	}
	for _, ep := range []string{"users", "posts", "albums", "todos"} {
		if rec.calls[ep+"/ok"] != 1 {
			t.Errorf("%s recorded %d times", ep, rec.calls[ep+"/ok"])
		}
	}
}

func TestOverviewFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/albums" {
			http.Error(w, "down", http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	_, err := New(srv.URL, time.Second).Overview(context.Background())
	var se *StatusError
	if !errors.As(err, &se) || se.Code != http.StatusServiceUnavailable {
		t.Errorf("error = %v, want 503 StatusError", err)
	}
}
