package content

import (
	"strings"
	"testing"
	"testing/fstest"
)

func TestDefaultBlog(t *testing.T) {
	b, err := DefaultBlog()
	if err != nil {
		t.Fatalf("DefaultBlog() error = %v", err)
	}
	posts := b.Posts()
	if len(posts) != 10 {
		t.Fatalf("loaded %d posts, want 10", len(posts))
	}
	for i := 1; i < len(posts); i++ {
		if posts[i-1].Date < posts[i].Date {
			t.Errorf("posts not newest first: %s before %s", posts[i-1].Date, posts[i].Date)
		}
	}
	for _, p := range posts {
		if p.Content == "" {
			t.Errorf("post %s has no rendered content", p.ID)
		}
	}

	stats := b.Stats()
	if stats.Total != 10 || stats.Featured != len(b.Featured()) {
		t.Errorf("Stats() = %+v", stats)
	}
	sum := 0
	for _, n := range stats.Categories {
		sum += n
	}
	if sum != stats.Total {
		t.Errorf("category counts sum to %d, want %d", sum, stats.Total)
	}
}

func TestBlogQueries(t *testing.T) {
	b, err := DefaultBlog()
	if err != nil {
		t.Fatalf("DefaultBlog() error = %v", err)
	}

	post, ok := b.PostByID("graphql-vs-rest")
	if !ok {
		t.Fatal("PostByID(graphql-vs-rest) not found")
	}
	if _, ok := b.PostByID("missing"); ok {
		t.Error("PostByID(missing) found a post")
	}

	for _, r := range b.Related(post.ID, 3) {
		if r.ID == post.ID {
			t.Error("Related includes the post itself")
		}
	}
	if got := len(b.Related(post.ID, 1)); got > 1 {
		t.Errorf("Related(n=1) returned %d posts", got)
	}

	for _, p := range b.ByCategory(BlogDesign) {
		if p.Category != BlogDesign {
			t.Errorf("ByCategory(design) returned %s in %s", p.ID, p.Category)
		}
	}
	if got := len(b.ByCategory(BlogAll)); got != 10 {
		t.Errorf("ByCategory(all) = %d posts, want 10", got)
	}

	page := b.Page(BlogAll, 2, PostsPerPage)
	if page.Pagination.CurrentPage != 2 || !page.Pagination.HasPrevPage {
		t.Errorf("Page(2) pagination = %+v", page.Pagination)
	}
	if got := len(b.Recent(3)); got != 3 {
		t.Errorf("Recent(3) = %d posts", got)
	}
	if got := ParseBlogCategory("bogus"); got != BlogAll {
		t.Errorf("ParseBlogCategory(bogus) = %s, want all", got)
	}
}

func TestLoadBlog(t *testing.T) {
	fsys := fstest.MapFS{
		"hello.md": {Data: []byte("---\ntitle: Hello\ndate: \"2024-01-02\"\ntags: [go]\n---\n# Heading\n\nSome *text*.\n")},
		"other.md": {Data: []byte("---\nid: custom\ntitle: Other\ndate: \"2024-01-01\"\ncategory: news\n---\nBody\n")},
	}
	b, err := LoadBlog(fsys)
	if err != nil {
		t.Fatalf("LoadBlog() error = %v", err)
	}

	hello, ok := b.PostByID("hello")
	if !ok {
		t.Fatal("id did not default to the file name")
	}
	if hello.Category != BlogTech {
		t.Errorf("default category = %s, want tech", hello.Category)
	}
	if !strings.Contains(string(hello.Content), "<em>text</em>") || !strings.Contains(string(hello.Content), `id="heading"`) {
		t.Errorf("Content = %s", hello.Content)
	}
	if _, ok := b.PostByID("custom"); !ok {
		t.Error("front matter id was ignored")
	}
	if b.Posts()[0].ID != "hello" {
		t.Errorf("first post = %s, want newest (hello)", b.Posts()[0].ID)
	}
}

func TestLoadBlogErrors(t *testing.T) {
	tests := []struct {
		name string
		fsys fstest.MapFS
		want string
	}{
		{
			name: "missing title",
			fsys: fstest.MapFS{"a.md": {Data: []byte("---\ndate: \"2024-01-01\"\n---\nx\n")}},
			want: "no title",
		},
		{
			name: "duplicate id",
			fsys: fstest.MapFS{
				"a.md": {Data: []byte("---\nid: same\ntitle: A\n---\nx\n")},
				"b.md": {Data: []byte("---\nid: same\ntitle: B\n---\nx\n")},
			},
			want: "defined in both",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadBlog(tt.fsys)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("LoadBlog() error = %v, want %q", err, tt.want)
			}
		})
	}
}
