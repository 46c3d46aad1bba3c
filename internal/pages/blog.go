package pages

import (
	"github.com/gin-gonic/gin"

	"github.com/Zachkp/folio/internal/content"
	"github.com/Zachkp/folio/internal/view"
)

type blogListData struct {
	Site       content.Site
	Category   content.BlogCategory
	Categories []content.BlogCategory
	Featured   []content.BlogPost
	Page       content.Page[content.BlogPost]
	Window     []int
	Stats      content.BlogStats
}

func (p *pageSet) blogList(c *gin.Context) (any, error) {
	nav := view.NavigationFrom(c)
	cat := content.ParseBlogCategory(nav.Query("category"))
	page := p.Blog.Page(cat, nav.QueryInt("page", 1), content.PostsPerPage)
	return blogListData{
		Site:       p.Site,
		Category:   cat,
		Categories: content.BlogCategories,
		Featured:   p.Blog.Featured(),
		Page:       page,
		Window:     page.Pagination.Window(5),
		Stats:      p.Blog.Stats(),
	}, nil
}

type blogPostData struct {
	Site    content.Site
	Post    content.BlogPost
	Related []content.BlogPost
}

func (p *pageSet) blogPost(c *gin.Context) (any, error) {
	post, ok := p.Blog.PostByID(c.Param("id"))
	if !ok {
		return nil, view.ErrNotFound
	}
	view.SetTitle(c, post.Title)
	return blogPostData{
		Site:    p.Site,
		Post:    post,
		Related: p.Blog.Related(post.ID, 3),
	}, nil
}
