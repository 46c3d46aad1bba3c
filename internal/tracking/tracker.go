package tracking

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/gin-gonic/gin"
)

type Options struct {
	// BasePath is stripped from request paths before matching and storing.
	BasePath string

	// Exclude lists doublestar patterns of paths that are never recorded.
	Exclude []string

	// Retention is how long visits are kept. Zero keeps them forever.
	Retention time.Duration

	// QueueSize bounds the number of visits waiting to be written.
	QueueSize int

	// OnDrop is called when a visit is discarded because the queue is full.
	OnDrop func()

	Logger *slog.Logger
}

// Tracker queues visits from the middleware and writes them from Run.
type Tracker struct {
	store  *Store
	hasher *Hasher
	opts   Options
	queue  chan Visitor
	log    *slog.Logger
	now    func() time.Time
}

func NewTracker(store *Store, hasher *Hasher, opts Options) (*Tracker, error) {
	for _, p := range opts.Exclude {
		if !doublestar.ValidatePattern(p) {
			return nil, fmt.Errorf("invalid exclude pattern %q", p)
		}
	}
	if opts.QueueSize <= 0 {
		opts.QueueSize = 256
	}
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	return &Tracker{
		store:  store,
		hasher: hasher,
		opts:   opts,
		queue:  make(chan Visitor, opts.QueueSize),
		log:    log,
		now:    time.Now,
	}, nil
}

// Excluded reports whether path matches an exclude pattern.
func (t *Tracker) Excluded(path string) bool {
	for _, p := range t.opts.Exclude {
		if ok, _ := doublestar.Match(p, path); ok {
			return true
		}
	}
	return false
}

// Middleware records GET page views. Requests that send DNT: 1 or that
// match an exclude pattern are skipped.
func (t *Tracker) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Request.Method != http.MethodGet {
			return
		}
		if c.GetHeader("DNT") == "1" {
			return
		}
		path := t.trimBase(c.Request.URL.Path)
		if t.Excluded(path) {
			return
		}
		t.Enqueue(Visitor{
			HashedIP:  t.hasher.Hash(c.ClientIP()),
			UserAgent: c.GetHeader("User-Agent"),
			Path:      path,
			Timestamp: t.now(),
			Country:   c.GetHeader("CF-IPCountry"),
		})
	}
}

// Enqueue queues v without blocking. It reports false when the queue is full.
func (t *Tracker) Enqueue(v Visitor) bool {
	select {
	case t.queue <- v:
		return true
	default:
		if t.opts.OnDrop != nil {
			t.opts.OnDrop()
		}
		return false
	}
}

// Run writes queued visits until ctx is done, then flushes what is left.
// Expired visits are removed once at start and then daily.
func (t *Tracker) Run(ctx context.Context) error {
	t.cleanup(context.WithoutCancel(ctx))
	tick := time.NewTicker(24 * time.Hour)
	defer tick.Stop()

	for {
		select {
		case v := <-t.queue:
			t.write(v)
		case <-tick.C:
			t.cleanup(ctx)
		case <-ctx.Done():
			t.flush()
			return nil
		}
	}
}

func (t *Tracker) flush() {
	for {
		select {
		case v := <-t.queue:
			t.write(v)
		default:
			return
		}
	}
}

// write is detached from Run's context so visits queued before shutdown
// still land.
func (t *Tracker) write(v Visitor) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := t.store.Record(ctx, v); err != nil {
		t.log.Error("record visitor", "path", v.Path, "err", err)
	}
}

// Cleanup removes visits older than the retention window.
func (t *Tracker) Cleanup(ctx context.Context) (int64, error) {
	if t.opts.Retention <= 0 {
		return 0, nil
	}
	return t.store.Cleanup(ctx, t.now().Add(-t.opts.Retention))
}

func (t *Tracker) cleanup(ctx context.Context) {
	n, err := t.Cleanup(ctx)
	if err != nil {
		t.log.Error("privacy cleanup", "err", err)
		return
	}
	if n > 0 {
		t.log.Info("privacy cleanup", "removed", n, "retention", t.opts.Retention)
	}
}

// Hash exposes the tracker's hasher for log lines that mention a client.
func (t *Tracker) Hash(ip string) string {
	return t.hasher.Hash(ip)
}

func (t *Tracker) Store() *Store {
	return t.store
}

func (t *Tracker) trimBase(p string) string {
	base := strings.TrimRight(t.opts.BasePath, "/")
	if base != "" && strings.HasPrefix(p, base) {
		p = strings.TrimPrefix(p, base)
	}
	if p == "" {
		return "/"
	}
	return p
}
