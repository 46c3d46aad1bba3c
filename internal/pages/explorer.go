package pages

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/folio/internal/explorer"
	"github.com/Zachkp/folio/internal/view"
)

// explorerNotice is shown in place of data when the upstream API fails.
const explorerNotice = "The JSONPlaceholder API could not be reached. Please try again later."

type explorerOverviewData struct {
	Overview explorer.Overview
	Notice   string
}

func (p *pageSet) explorerOverview(c *gin.Context) (any, error) {
	o, err := p.Explorer.Overview(c.Request.Context())
	if err != nil {
		p.Log.Warn("explorer overview", "err", err)
		return explorerOverviewData{Notice: explorerNotice}, nil
	}
	return explorerOverviewData{Overview: o}, nil
}

type explorerUsersData struct {
	Query    string
	Users    []explorer.User
	Total    int
	Selected *explorer.User
	Notice   string
}

func (p *pageSet) explorerUsers(c *gin.Context) (any, error) {
	nav := view.NavigationFrom(c)
	data := explorerUsersData{Query: nav.Query("q")}
	users, err := p.Explorer.Users(c.Request.Context())
	if err != nil {
		p.Log.Warn("explorer users", "err", err)
		data.Notice = explorerNotice
		return data, nil
	}
	data.Total = len(users)
	data.Users = explorer.SearchUsers(users, data.Query)
	if id := nav.QueryInt("user", 0); id > 0 {
		for i := range users {
			if users[i].ID == id {
				data.Selected = &users[i]
				break
			}
		}
	}
	return data, nil
}

type explorerPostsData struct {
	Query   string
	Posts   []explorer.Post
	Total   int
	Authors map[int]string
	Notice  string
}

func (p *pageSet) explorerPosts(c *gin.Context) (any, error) {
	ctx := c.Request.Context()
	data := explorerPostsData{Query: view.NavigationFrom(c).Query("q")}
	posts, err := p.Explorer.Posts(ctx)
	if err != nil {
		p.Log.Warn("explorer posts", "err", err)
		data.Notice = explorerNotice
		return data, nil
	}
	data.Total = len(posts)
	data.Posts = explorer.SearchPosts(posts, data.Query)
	data.Authors = p.authors(c)
	return data, nil
}

type explorerPostData struct {
	Post     explorer.Post
	Author   string
	Comments []explorer.Comment
	Notice   string
}

func (p *pageSet) explorerPost(c *gin.Context) (any, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		return nil, view.ErrNotFound
	}
	ctx := c.Request.Context()
	posts, err := p.Explorer.Posts(ctx)
	if err != nil {
		p.Log.Warn("explorer posts", "err", err)
		view.SetTitle(c, "Post #"+strconv.Itoa(id))
		return explorerPostData{Post: explorer.Post{ID: id}, Notice: explorerNotice}, nil
	}

	data := explorerPostData{}
	found := false
	for _, post := range posts {
		if post.ID == id {
			data.Post, found = post, true
			break
		}
	}
	if !found {
		return nil, view.ErrNotFound
	}
	view.SetTitle(c, data.Post.Title)
	data.Author = p.authors(c)[data.Post.UserID]

	if data.Comments, err = p.Explorer.PostComments(ctx, id); err != nil {
		p.Log.Warn("explorer comments", "post", id, "err", err)
		data.Notice = explorerNotice
	}
	return data, nil
}

type explorerAlbumsData struct {
	Query   string
	Albums  []explorer.Album
	Total   int
	Authors map[int]string
	Notice  string
}

func (p *pageSet) explorerAlbums(c *gin.Context) (any, error) {
	data := explorerAlbumsData{Query: view.NavigationFrom(c).Query("q")}
	albums, err := p.Explorer.Albums(c.Request.Context())
	if err != nil {
		p.Log.Warn("explorer albums", "err", err)
		data.Notice = explorerNotice
		return data, nil
	}
	data.Total = len(albums)
	data.Albums = explorer.SearchAlbums(albums, data.Query)
	data.Authors = p.authors(c)
	return data, nil
}

type explorerAlbumData struct {
	ID     int
	Photos []explorer.Photo
	Notice string
}

func (p *pageSet) explorerAlbum(c *gin.Context) (any, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		return nil, view.ErrNotFound
	}
	view.SetTitle(c, "Album #"+strconv.Itoa(id))
	data := explorerAlbumData{ID: id}
	if data.Photos, err = p.Explorer.AlbumPhotos(c.Request.Context(), id); err != nil {
		p.Log.Warn("explorer photos", "album", id, "err", err)
		data.Notice = explorerNotice
	}
	return data, nil
}

type explorerTodosData struct {
	Query     string
	Status    explorer.TodoStatus
	Todos     []explorer.Todo
	Total     int
	Completed int
	Authors   map[int]string
	Notice    string
}

func (p *pageSet) explorerTodos(c *gin.Context) (any, error) {
	nav := view.NavigationFrom(c)
	data := explorerTodosData{
		Query:  nav.Query("q"),
		Status: explorer.ParseTodoStatus(nav.Query("status")),
	}
	todos, err := p.Explorer.Todos(c.Request.Context())
	if err != nil {
		p.Log.Warn("explorer todos", "err", err)
		data.Notice = explorerNotice
		return data, nil
	}
	data.Total = len(todos)
	for _, t := range todos {
		if t.Completed {
			data.Completed++
		}
	}
	data.Todos = explorer.FilterTodos(todos, data.Query, data.Status)
	data.Authors = p.authors(c)
	return data, nil
}

// authors labels items with their user's name. Without users the labels
// fall back to ids in the templates.
func (p *pageSet) authors(c *gin.Context) map[int]string {
	users, err := p.Explorer.Users(c.Request.Context())
	if err != nil {
		p.Log.Warn("explorer users", "err", err)
		return nil
	}
	return explorer.UserNames(users)
}
