package server

import (
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/folio/internal/tracking"
	"github.com/Zachkp/folio/internal/view"
)

const adminCookie = "admin_token"

// admin guards the visitor statistics behind a single cookie token that is
// regenerated on every start.
type admin struct {
	s     *Server
	token string
}

func newAdmin(s *Server) (*admin, error) {
	token, err := tracking.NewToken()
	if err != nil {
		return nil, err
	}
	a := &admin{s: s, token: token}
	if s.cfg.Admin.Username == "admin" && s.cfg.Admin.Password == "admin123" {
		s.log.Warn("using default admin credentials; set ADMIN_USERNAME and ADMIN_PASSWORD")
	}
	return a, nil
}

func (a *admin) register(g *gin.RouterGroup) {
	g.GET("/privacy", a.privacy)
	g.GET("/admin/login", a.loginPage)
	g.POST("/admin/login", a.login)
	g.GET("/admin/logout", a.logout)

	protected := g.Group("/admin", a.auth())
	protected.GET("/dashboard", a.dashboard)
	protected.GET("/visitors", a.visitors)
	protected.GET("/api/stats", a.statsJSON)
	protected.GET("/export/stats", a.exportStats)
	protected.POST("/privacy/cleanup", a.cleanup)
}

func (a *admin) url(path string) string {
	return view.JoinURL(a.s.cfg.BasePath, path)
}

func (a *admin) cookiePath() string {
	return a.url("/admin")
}

func (a *admin) auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(adminCookie)
		if err != nil || subtle.ConstantTimeCompare([]byte(token), []byte(a.token)) != 1 {
			c.Redirect(http.StatusFound, a.url("/admin/login"))
			c.Abort()
			return
		}
		c.Next()
	}
}

func (a *admin) clientHash(c *gin.Context) string {
	if a.s.tracker == nil {
		return ""
	}
	return a.s.tracker.Hash(c.ClientIP())
}

func (a *admin) privacy(c *gin.Context) {
	a.s.standalone(c, http.StatusOK, "admin-privacy", "Privacy Policy", privacyData{
		Tracking:  a.s.tracker != nil,
		Retention: a.s.cfg.Tracking.Retention,
	})
}

type privacyData struct {
	Tracking  bool
	Retention time.Duration
}

// RetentionMonths rounds the retention window to months for display.
func (p privacyData) RetentionMonths() int {
	return int(p.Retention.Hours() / 24 / 30)
}

type loginData struct {
	Error string
}

func (a *admin) loginPage(c *gin.Context) {
	a.s.standalone(c, http.StatusOK, "admin-login", "Admin Login", loginData{})
}

func (a *admin) login(c *gin.Context) {
	user := []byte(c.PostForm("username"))
	pass := []byte(c.PostForm("password"))
	okUser := subtle.ConstantTimeCompare(user, []byte(a.s.cfg.Admin.Username)) == 1
	okPass := subtle.ConstantTimeCompare(pass, []byte(a.s.cfg.Admin.Password)) == 1

	if !okUser || !okPass {
		a.s.log.Warn("failed admin login", "client", a.clientHash(c))
		a.s.standalone(c, http.StatusUnauthorized, "admin-login", "Admin Login", loginData{Error: "Invalid credentials"})
		return
	}
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(adminCookie, a.token, 3600*24, a.cookiePath(), "", false, true)
	a.s.log.Info("admin login", "client", a.clientHash(c))
	c.Redirect(http.StatusFound, a.url("/admin/dashboard"))
}

func (a *admin) logout(c *gin.Context) {
	c.SetCookie(adminCookie, "", -1, a.cookiePath(), "", false, true)
	a.s.log.Info("admin logout", "client", a.clientHash(c))
	c.Redirect(http.StatusFound, a.url("/admin/login"))
}

type adminErrorData struct {
	Error string
}

// stats loads the summary, rendering the admin error page on failure.
func (a *admin) stats(c *gin.Context) (*tracking.Stats, bool) {
	if a.s.store == nil {
		a.s.standalone(c, http.StatusServiceUnavailable, "admin-error", "Admin", adminErrorData{Error: "Visitor tracking is disabled"})
		return nil, false
	}
	stats, err := a.s.store.Stats(c.Request.Context(), time.Now())
	if err != nil {
		a.s.log.Error("load admin stats", "err", err)
		a.s.standalone(c, http.StatusInternalServerError, "admin-error", "Admin", adminErrorData{Error: "Failed to load statistics"})
		return nil, false
	}
	return stats, true
}

func (a *admin) dashboard(c *gin.Context) {
	if stats, ok := a.stats(c); ok {
		a.s.standalone(c, http.StatusOK, "admin-dashboard", "Admin Dashboard", stats)
	}
}

func (a *admin) visitors(c *gin.Context) {
	if a.s.store == nil {
		a.s.standalone(c, http.StatusServiceUnavailable, "admin-error", "Admin", adminErrorData{Error: "Visitor tracking is disabled"})
		return
	}
	visitors, err := a.s.store.Recent(c.Request.Context(), 200)
	if err != nil {
		a.s.log.Error("load visitors", "err", err)
		a.s.standalone(c, http.StatusInternalServerError, "admin-error", "Admin", adminErrorData{Error: "Failed to load visitors"})
		return
	}
	a.s.standalone(c, http.StatusOK, "admin-visitors", "Visitors", visitors)
}

func (a *admin) statsJSON(c *gin.Context) {
	if a.s.store == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "visitor tracking is disabled"})
		return
	}
	stats, err := a.s.store.Stats(c.Request.Context(), time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (a *admin) exportStats(c *gin.Context) {
	c.Header("Content-Disposition", "attachment; filename=admin-stats.json")
	a.s.log.Info("admin stats exported", "client", a.clientHash(c))
	a.statsJSON(c)
}

func (a *admin) cleanup(c *gin.Context) {
	if a.s.tracker == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "visitor tracking is disabled"})
		return
	}
	n, err := a.s.tracker.Cleanup(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Privacy cleanup complete", "removed": n})
}
