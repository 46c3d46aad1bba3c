package pages

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/folio/internal/content"
	"github.com/Zachkp/folio/internal/tracking"
	"github.com/Zachkp/folio/internal/view"
)

type statsOverviewData struct {
	dashboardData
	Visits *tracking.Stats
}

// statsOverview adds live visitor numbers when a store is configured. A
// failing store only hides that panel.
func (p *pageSet) statsOverview(c *gin.Context) (any, error) {
	data := statsOverviewData{dashboardData: p.dashboardData()}
	if p.Visits != nil {
		stats, err := p.Visits.Stats(c.Request.Context(), time.Now())
		if err != nil {
			p.Log.Warn("load visitor stats", "err", err)
		} else {
			data.Visits = stats
		}
	}
	return data, nil
}

type dashboardData struct {
	content.Dashboard
	MaxVisits int
}

func (p *pageSet) dashboardData() dashboardData {
	return dashboardData{Dashboard: p.dashboard, MaxVisits: maxVisits(p.dashboard.Monthly)}
}

func (p *pageSet) statsDashboard(c *gin.Context) (any, error) {
	return p.dashboardData(), nil
}

func maxVisits(months []content.MonthlyTraffic) int {
	m := 0
	for _, mt := range months {
		m = max(m, mt.Visits, mt.Users, mt.Projects)
	}
	return m
}

type statsProjectsData struct {
	Stats      content.ProjectStats
	Featured   []content.Project
	Categories []content.Share
}

func (p *pageSet) statsProjects(c *gin.Context) (any, error) {
	stats := content.GetProjectStats()
	return statsProjectsData{
		Stats:    stats,
		Featured: content.FeaturedProjects(),
		Categories: []content.Share{
			{Name: "IT", Value: stats.IT, Percent: percent(stats.IT, stats.Total), Color: "#0064FF"},
			{Name: "Electrical", Value: stats.Electrical, Percent: percent(stats.Electrical, stats.Total), Color: "#FF6B35"},
		},
	}, nil
}

func percent(part, total int) int {
	if total == 0 {
		return 0
	}
	return part * 100 / total
}

type categoryProgress struct {
	Category string
	Items    int
	Progress int
}

// statusCounts flattens content.CountByStatus for templates, which cannot
// index a map by a named string type.
type statusCounts struct {
	Completed  int
	InProgress int
	Pending    int
}

func countStatus(items []content.WorkItem) statusCounts {
	m := content.CountByStatus(items)
	return statusCounts{
		Completed:  m[content.StatusCompleted],
		InProgress: m[content.StatusInProgress],
		Pending:    m[content.StatusPending],
	}
}

type workMetricsData struct {
	Items      []content.WorkItem
	ByStatus   statusCounts
	Categories []categoryProgress
	Average    int
}

func (p *pageSet) workMetrics(c *gin.Context) (any, error) {
	items := content.WorkItems()
	data := workMetricsData{Items: items, ByStatus: countStatus(items)}

	total := 0
	for _, cat := range content.WorkCategories {
		cp := categoryProgress{Category: cat}
		sum := 0
		for _, it := range items {
			if it.Category == cat {
				cp.Items++
				sum += it.Progress
			}
		}
		if cp.Items == 0 {
			continue
		}
		cp.Progress = sum / cp.Items
		data.Categories = append(data.Categories, cp)
	}
	for _, it := range items {
		total += it.Progress
	}
	if len(items) > 0 {
		data.Average = total / len(items)
	}
	return data, nil
}

type workTableData struct {
	Filter     content.WorkFilter
	Items      []content.WorkItem
	Total      int
	Statuses   []content.WorkStatus
	Categories []string
	Priorities []string
	ExportURL  string
}

// WorkFilterFrom reads the work table filter from the query string.
func WorkFilterFrom(nav view.Navigation) content.WorkFilter {
	return content.WorkFilter{
		Keyword:  nav.Query("q"),
		Status:   nav.Query("status"),
		Category: nav.Query("category"),
		Priority: nav.Query("priority"),
	}
}

func (p *pageSet) workTable(c *gin.Context) (any, error) {
	nav := view.NavigationFrom(c)
	f := WorkFilterFrom(nav)
	all := content.WorkItems()

	export := nav.URL("/statistics/work-data-2/export.csv")
	if q := c.Request.URL.RawQuery; q != "" {
		export += "?" + q
	}
	return workTableData{
		Filter:     f,
		Items:      content.FilterWork(all, f),
		Total:      len(all),
		Statuses:   content.WorkStatuses,
		Categories: content.WorkCategories,
		Priorities: content.WorkPriorities,
		ExportURL:  export,
	}, nil
}

type workSearchData struct {
	Filter   content.WorkFilter
	Items    []content.WorkItem
	ByStatus statusCounts
	Searched bool
}

func (p *pageSet) workSearch(c *gin.Context) (any, error) {
	nav := view.NavigationFrom(c)
	f := WorkFilterFrom(nav)
	items := content.FilterWork(content.WorkItems(), f)
	return workSearchData{
		Filter:   f,
		Items:    items,
		ByStatus: countStatus(items),
		Searched: f != (content.WorkFilter{}),
	}, nil
}
