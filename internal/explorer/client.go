// Package explorer is a read-only client for the JSONPlaceholder REST API.
package explorer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

const DefaultBaseURL = "https://jsonplaceholder.typicode.com"

const tracerName = "github.com/Zachkp/folio/internal/explorer"

// StatusError is returned for a non-2xx upstream response.
type StatusError struct {
	Code   int
	Status string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("api error: %s", e.Status)
}

// Recorder counts upstream calls by endpoint and outcome.
type Recorder interface {
	ExplorerRequest(endpoint, outcome string)
}

type Client struct {
	baseURL  string
	http     *http.Client
	tracer   trace.Tracer
	recorder Recorder
}

type Option func(*Client)

// WithHTTPClient replaces the default client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithRecorder counts every call on r.
func WithRecorder(r Recorder) Option {
	return func(c *Client) { c.recorder = r }
}

func New(baseURL string, timeout time.Duration, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		tracer:  otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) Users(ctx context.Context) ([]User, error) {
	var out []User
	return out, c.get(ctx, "users", "/users", &out)
}

func (c *Client) Posts(ctx context.Context) ([]Post, error) {
	var out []Post
	return out, c.get(ctx, "posts", "/posts", &out)
}

func (c *Client) PostComments(ctx context.Context, postID int) ([]Comment, error) {
	var out []Comment
	return out, c.get(ctx, "post_comments", "/posts/"+strconv.Itoa(postID)+"/comments", &out)
}

func (c *Client) Albums(ctx context.Context) ([]Album, error) {
	var out []Album
	return out, c.get(ctx, "albums", "/albums", &out)
}

func (c *Client) AlbumPhotos(ctx context.Context, albumID int) ([]Photo, error) {
	var out []Photo
	return out, c.get(ctx, "album_photos", "/albums/"+strconv.Itoa(albumID)+"/photos", &out)
}

func (c *Client) Todos(ctx context.Context) ([]Todo, error) {
	var out []Todo
	return out, c.get(ctx, "todos", "/todos", &out)
}

// Overview fetches the four collections concurrently. The first failure
// cancels the other requests.
func (c *Client) Overview(ctx context.Context) (Overview, error) {
	var (
		users  []User
		posts  []Post
		albums []Album
		todos  []Todo
	)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { users, err = c.Users(ctx); return })
	g.Go(func() (err error) { posts, err = c.Posts(ctx); return })
	g.Go(func() (err error) { albums, err = c.Albums(ctx); return })
	g.Go(func() (err error) { todos, err = c.Todos(ctx); return })
	if err := g.Wait(); err != nil {
		return Overview{}, err
	}

	o := Overview{Users: len(users), Posts: len(posts), Albums: len(albums), Todos: len(todos)}
	for _, t := range todos {
		if t.Completed {
			o.CompletedTodos++
		}
	}
	return o, nil
}

func (c *Client) get(ctx context.Context, endpoint, path string, out any) (err error) {
	ctx, span := c.tracer.Start(ctx, "explorer."+endpoint,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("explorer.endpoint", endpoint),
			attribute.String("http.url", c.baseURL+path),
		),
	)
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
		c.record(endpoint, err)
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("get %s: %w", path, err)
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Code: resp.StatusCode, Status: resp.Status}
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

func (c *Client) record(endpoint string, err error) {
	if c.recorder == nil {
		return
	}
	outcome := "ok"
	var se *StatusError
	switch {
	case err == nil:
	case errors.As(err, &se):
		outcome = "status_" + strconv.Itoa(se.Code)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		outcome = "canceled"
	default:
		outcome = "error"
	}
	c.recorder.ExplorerRequest(endpoint, outcome)
}
