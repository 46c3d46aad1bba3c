// Package pages declares the site's route table and the loaders that feed
// each page template.
package pages

import (
	"context"
	"log/slog"
	"time"

	"github.com/Zachkp/folio/internal/content"
	"github.com/Zachkp/folio/internal/explorer"
	"github.com/Zachkp/folio/internal/layout"
	"github.com/Zachkp/folio/internal/route"
	"github.com/Zachkp/folio/internal/tracking"
	"github.com/Zachkp/folio/internal/view"
)

// Explorer is the upstream API the explorer pages read from.
type Explorer interface {
	Users(ctx context.Context) ([]explorer.User, error)
	Posts(ctx context.Context) ([]explorer.Post, error)
	PostComments(ctx context.Context, postID int) ([]explorer.Comment, error)
	Albums(ctx context.Context) ([]explorer.Album, error)
	AlbumPhotos(ctx context.Context, albumID int) ([]explorer.Photo, error)
	Todos(ctx context.Context) ([]explorer.Todo, error)
	Overview(ctx context.Context) (explorer.Overview, error)
}

// VisitStats reports live visitor numbers. It may be nil when tracking is off.
type VisitStats interface {
	Stats(ctx context.Context, now time.Time) (*tracking.Stats, error)
}

type Deps struct {
	Renderer *view.Renderer
	Site     content.Site
	Blog     *content.Blog
	Explorer Explorer
	Visits   VisitStats
	Log      *slog.Logger
}

type pageSet struct {
	Deps
	dashboard content.Dashboard
}

// Table returns the descriptors of every page in declaration order.
func Table(d Deps) []route.Descriptor {
	if d.Log == nil {
		d.Log = slog.Default()
	}
	p := &pageSet{Deps: d, dashboard: content.SampleDashboard()}
	r := d.Renderer

	overview := r.Page("stats-overview", "Overview", p.statsOverview)

	return []route.Descriptor{
		{
			Path:       "/",
			Layout:     layout.Main,
			ShowHeader: route.Bool(true),
			ShowFooter: route.Bool(true),
			Children: []route.Descriptor{
				{Component: r.Page("page-home", "", p.home), Index: true},
				{Path: "1", Component: r.Page("page-blobcursor", "Blob Cursor", nil)},
				{Path: "about", Component: r.Page("page-about", "About", p.about)},
				{Path: "projects", Component: r.Page("page-projects", "Projects", p.projects)},
				{Path: "electrical/smart-grid", Component: r.Page("page-smart-grid", "Smart Grid System", p.smartGrid)},
			},
		},
		{
			Path:   "/blog",
			Layout: layout.None,
			Children: []route.Descriptor{
				{Component: r.Page("page-blog-list", "Blog", p.blogList), Index: true},
				{Path: ":id", Component: r.Page("page-blog-post", "", p.blogPost)},
			},
		},
		{
			Path:   "/statistics",
			Layout: layout.Dashboard,
			Children: []route.Descriptor{
				{Component: overview, Index: true},
				{Path: "overview", Component: overview},
				{Path: "analytics", Component: r.Page("stats-analytics", "Analytics", p.statsDashboard)},
				{Path: "geographic", Component: r.Page("stats-geographic", "Regions", p.statsDashboard)},
				{Path: "devices", Component: r.Page("stats-devices", "Devices", p.statsDashboard)},
				{Path: "projects", Component: r.Page("stats-projects", "Project statistics", p.statsProjects)},
				{Path: "users", Component: r.Page("stats-users", "Users", p.statsDashboard)},
				{Path: "email", Component: r.Page("stats-email", "Email", p.statsDashboard)},
				{Path: "calendar", Component: r.Page("stats-calendar", "Calendar", p.statsDashboard)},
				{Path: "work-data-1", Component: r.Page("stats-work-data-1", "Work data", p.workMetrics)},
				{Path: "work-data-2", Component: r.Page("stats-work-data-2", "Work data table", p.workTable)},
				{Path: "work-data-3", Component: r.Page("stats-work-data-3", "Work data search", p.workSearch)},
			},
		},
		{
			Path:   "/api-explorer",
			Layout: layout.APIExplorer,
			Children: []route.Descriptor{
				{Component: r.Page("explorer-overview", "API Explorer", p.explorerOverview), Index: true},
				{Path: "users", Component: r.Page("explorer-users", "Users", p.explorerUsers)},
				{Path: "posts", Component: r.Page("explorer-posts", "Posts", p.explorerPosts)},
				{Path: "posts/:id", Component: r.Page("explorer-post", "", p.explorerPost)},
				{Path: "albums", Component: r.Page("explorer-albums", "Albums", p.explorerAlbums)},
				{Path: "albums/:id", Component: r.Page("explorer-album", "", p.explorerAlbum)},
				{Path: "todos", Component: r.Page("explorer-todos", "Todos", p.explorerTodos)},
			},
		},
		{Path: "/started", Component: r.Page("page-started", "Getting Started", startedData)},
		{Path: "/future", Component: r.Page("page-future", "Future", futureData)},
		{
			Path:       route.CatchAll,
			Component:  NotFound(r),
			Layout:     layout.Main,
			ShowHeader: route.Bool(true),
			ShowFooter: route.Bool(true),
		},
	}
}

// NotFound is the page rendered for unknown paths and missing items.
func NotFound(r *view.Renderer) *view.Page {
	return r.Page("page-not-found", "Page not found", nil)
}
