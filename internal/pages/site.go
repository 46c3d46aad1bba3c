package pages

import (
	"github.com/gin-gonic/gin"

	"github.com/Zachkp/folio/internal/content"
	"github.com/Zachkp/folio/internal/view"
)

type homeData struct {
	Site     content.Site
	Featured []content.Project
	Posts    []content.BlogPost
	Stats    content.ProjectStats
}

func (p *pageSet) home(c *gin.Context) (any, error) {
	featured := content.FeaturedProjects()
	if len(featured) > 6 {
		featured = featured[:6]
	}
	return homeData{
		Site:     p.Site,
		Featured: featured,
		Posts:    p.Blog.Recent(3),
		Stats:    content.GetProjectStats(),
	}, nil
}

func (p *pageSet) about(c *gin.Context) (any, error) {
	return p.Site, nil
}

type projectsData struct {
	Category   content.Category
	Categories []content.CategoryOption
	Page       content.Page[content.Project]
	Window     []int
	Stats      content.ProjectStats
}

func (p *pageSet) projects(c *gin.Context) (any, error) {
	nav := view.NavigationFrom(c)
	cat := content.ParseCategory(nav.Query("category"))
	page := content.ProjectsPage(cat, nav.QueryInt("page", 1), content.ProjectsPerPage)
	return projectsData{
		Category:   cat,
		Categories: content.Categories(),
		Page:       page,
		Window:     page.Pagination.Window(5),
		Stats:      content.GetProjectStats(),
	}, nil
}

type feature struct {
	Title       string
	Description string
}

type skill struct {
	Name  string
	Level int
}

type achievement struct {
	Metric string
	Label  string
}

type smartGridData struct {
	Project      content.Project
	Features     []feature
	Skills       []skill
	Achievements []achievement
}

func (p *pageSet) smartGrid(c *gin.Context) (any, error) {
	project, ok := content.ProjectByID("smart-grid")
	if !ok {
		return nil, view.ErrNotFound
	}
	return smartGridData{
		Project: project,
		Features: []feature{
			{"Real-time monitoring", "Sensor readings from every feeder are collected and charted as they arrive."},
			{"Optimisation", "Load forecasts shift flexible demand away from peak hours."},
			{"Safety", "Protection relays and alarms react to faults before they spread."},
			{"Energy efficiency", "Loss analysis pinpoints the circuits worth upgrading first."},
		},
		Skills: []skill{
			{"IoT Sensors", 95},
			{"Machine Learning", 88},
			{"SCADA Systems", 92},
			{"Cloud Computing", 85},
			{"Power Analysis", 90},
			{"Cybersecurity", 87},
		},
		Achievements: []achievement{
			{"30%", "Energy saved"},
			{"99.9%", "System uptime"},
			{"50+", "Connected sensors"},
			{"24/7", "Live monitoring"},
		},
	}, nil
}

type section struct {
	Eyebrow string
	Title   string
	Body    string
}

func startedData(c *gin.Context) (any, error) {
	return []section{
		{"Simple", "Money moves in a few taps", "Transfers, payments and savings sit one screen away, without forms in the way."},
		{"Secure", "Protected at every step", "Biometric sign-in and per-transaction checks keep every account safe."},
		{"Clear", "See where it all goes", "Spending is grouped and charted automatically so the month makes sense at a glance."},
		{"Together", "Shared with the people you trust", "Split bills and shared wallets keep group expenses fair."},
	}, nil
}

func futureData(c *gin.Context) (any, error) {
	return []feature{
		{"Particle fields", "Thousands of points respond to the cursor in real time."},
		{"Timeline animation", "Sections enter on scroll with choreographed transitions."},
		{"Adaptive layout", "Every scene reflows from phones to wide monitors."},
		{"Low overhead", "Animations run on the compositor and respect reduced motion."},
	}, nil
}
