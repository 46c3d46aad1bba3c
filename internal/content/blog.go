package content

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"slices"
	"sort"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

//go:embed posts/*.md
var postsFS embed.FS

type BlogCategory string

const (
	BlogAll         BlogCategory = "all"
	BlogTech        BlogCategory = "tech"
	BlogDesign      BlogCategory = "design"
	BlogDevelopment BlogCategory = "development"
	BlogTutorial    BlogCategory = "tutorial"
	BlogNews        BlogCategory = "news"
)

// BlogCategories lists the filter tabs in display order.
var BlogCategories = []BlogCategory{BlogAll, BlogTech, BlogDesign, BlogDevelopment, BlogTutorial, BlogNews}

func ParseBlogCategory(s string) BlogCategory {
	for _, c := range BlogCategories {
		if string(c) == s {
			return c
		}
	}
	return BlogAll
}

// PostsPerPage is the blog listing page size.
const PostsPerPage = 6

type BlogPost struct {
	ID       string       `yaml:"id"`
	Title    string       `yaml:"title"`
	Excerpt  string       `yaml:"excerpt"`
	Date     string       `yaml:"date"`
	Tags     []string     `yaml:"tags"`
	Category BlogCategory `yaml:"category"`
	Featured bool         `yaml:"featured"`
	Gradient string       `yaml:"gradient"`

	Markdown string        `yaml:"-"`
	Content  template.HTML `yaml:"-"`
}

type BlogStats struct {
	Total      int
	Featured   int
	Tags       int
	Categories map[BlogCategory]int
}

// Blog is the parsed, immutable set of posts, newest first.
type Blog struct {
	posts []BlogPost
}

var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithParserOptions(parser.WithAutoHeadingID()),
)

// LoadBlog parses every *.md file in fsys. Each file carries YAML front
// matter; the id defaults to the file name.
func LoadBlog(fsys fs.FS) (*Blog, error) {
	files, err := fs.Glob(fsys, "*.md")
	if err != nil {
		return nil, err
	}

	seen := make(map[string]string, len(files))
	posts := make([]BlogPost, 0, len(files))
	for _, name := range files {
		raw, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, err
		}
		post, err := parsePost(name, raw)
		if err != nil {
			return nil, err
		}
		if prev, ok := seen[post.ID]; ok {
			return nil, fmt.Errorf("blog post %q defined in both %s and %s", post.ID, prev, name)
		}
		seen[post.ID] = name
		posts = append(posts, post)
	}

	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].Date > posts[j].Date
	})
	return &Blog{posts: posts}, nil
}

// DefaultBlog loads the posts compiled into the binary.
func DefaultBlog() (*Blog, error) {
	sub, err := fs.Sub(postsFS, "posts")
	if err != nil {
		return nil, err
	}
	return LoadBlog(sub)
}

func parsePost(name string, raw []byte) (BlogPost, error) {
	var post BlogPost
	body, err := frontmatter.Parse(bytes.NewReader(raw), &post)
	if err != nil {
		return BlogPost{}, fmt.Errorf("parse front matter of %s: %w", name, err)
	}
	if post.ID == "" {
		post.ID = strings.TrimSuffix(path.Base(name), path.Ext(name))
	}
	if post.Title == "" {
		return BlogPost{}, fmt.Errorf("blog post %s has no title", name)
	}
	if post.Category == "" {
		post.Category = BlogTech
	}

	var buf bytes.Buffer
	if err := markdown.Convert(body, &buf); err != nil {
		return BlogPost{}, fmt.Errorf("render %s: %w", name, err)
	}
	post.Markdown = string(body)
	post.Content = template.HTML(buf.String())
	return post, nil
}

func (b *Blog) Posts() []BlogPost {
	return slices.Clone(b.posts)
}

func (b *Blog) Stats() BlogStats {
	stats := BlogStats{Total: len(b.posts), Categories: make(map[BlogCategory]int)}
	tags := make(map[string]struct{})
	for _, p := range b.posts {
		if p.Featured {
			stats.Featured++
		}
		stats.Categories[p.Category]++
		for _, t := range p.Tags {
			tags[t] = struct{}{}
		}
	}
	stats.Tags = len(tags)
	return stats
}

func (b *Blog) PostByID(id string) (BlogPost, bool) {
	for _, p := range b.posts {
		if p.ID == id {
			return p, true
		}
	}
	return BlogPost{}, false
}

func (b *Blog) Featured() []BlogPost {
	var out []BlogPost
	for _, p := range b.posts {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}

func (b *Blog) ByCategory(c BlogCategory) []BlogPost {
	if c == BlogAll {
		return b.Posts()
	}
	var out []BlogPost
	for _, p := range b.posts {
		if p.Category == c {
			out = append(out, p)
		}
	}
	return out
}

func (b *Blog) Page(c BlogCategory, page, perPage int) Page[BlogPost] {
	return Paginate(b.ByCategory(c), page, perPage)
}

func (b *Blog) Recent(n int) []BlogPost {
	if n <= 0 {
		return nil
	}
	return slices.Clone(b.posts[:min(n, len(b.posts))])
}

// Related returns up to n other posts sharing the category or a tag with id.
func (b *Blog) Related(id string, n int) []BlogPost {
	cur, ok := b.PostByID(id)
	if !ok {
		return nil
	}
	var out []BlogPost
	for _, p := range b.posts {
		if len(out) == n {
			break
		}
		if p.ID == id {
			continue
		}
		if p.Category == cur.Category || sharesTag(p.Tags, cur.Tags) {
			out = append(out, p)
		}
	}
	return out
}

func sharesTag(a, b []string) bool {
	for _, t := range a {
		if slices.Contains(b, t) {
			return true
		}
	}
	return false
}
