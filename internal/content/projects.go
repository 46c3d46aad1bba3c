package content

import "slices"

type Category string

const (
	CategoryAll        Category = "all"
	CategoryIT         Category = "it"
	CategoryElectrical Category = "electrical"
)

// ParseCategory maps a query value to a Category, falling back to all.
func ParseCategory(s string) Category {
	switch Category(s) {
	case CategoryIT, CategoryElectrical:
		return Category(s)
	}
	return CategoryAll
}

type Project struct {
	ID          string
	Title       string
	Description string
	Tags        []string
	Link        string
	Gradient    string
	BgGradient  string
	Featured    bool
	Category    Category
}

// ProjectsPerPage is the gallery page size.
const ProjectsPerPage = 9

var projects = []Project{
	{ID: "blog", Title: "Tech Blog", Description: "A minimal blog about development and design. Clean typography and a simple layout keep the focus on the writing.", Tags: []string{"Go", "Markdown", "Blog", "Minimal Design"}, Link: "/blog", Gradient: "from-gray-900 to-gray-700", BgGradient: "from-gray-50 to-white", Featured: true, Category: CategoryIT},
	{ID: "future", Title: "Future Project", Description: "A future-facing interactive web experience built around particle effects and timeline animation.", Tags: []string{"GSAP", "TypeScript", "Interactive"}, Link: "/future", Gradient: "from-cyan-500 to-blue-500", BgGradient: "from-cyan-50 to-blue-50", Featured: true, Category: CategoryIT},
	{ID: "toss", Title: "Toss Style Page", Description: "A scroll-driven landing page with per-section transitions in the style of a fintech app.", Tags: []string{"Scroll Animation", "TypeScript", "Modern UI"}, Link: "/started", Gradient: "from-purple-500 to-pink-500", BgGradient: "from-purple-50 to-pink-50", Featured: true, Category: CategoryIT},
	{ID: "ecommerce-platform", Title: "E-Commerce Platform", Description: "A storefront with real-time inventory management and integrated payments.", Tags: []string{"React", "Node.js", "MongoDB", "Stripe"}, Link: "/ecommerce", Gradient: "from-emerald-500 to-green-500", BgGradient: "from-emerald-50 to-green-50", Category: CategoryIT},
	{ID: "task-management", Title: "Task Management App", Description: "Real-time task tracking for teams with drag and drop boards and live sync.", Tags: []string{"React", "Socket.io", "PostgreSQL", "Redis"}, Link: "/tasks", Gradient: "from-indigo-500 to-purple-500", BgGradient: "from-indigo-50 to-purple-50", Category: CategoryIT},
	{ID: "ai-chatbot", Title: "AI Chatbot Service", Description: "A support chatbot using natural language processing for around-the-clock customer help.", Tags: []string{"Python", "TensorFlow", "FastAPI", "Docker"}, Link: "/chatbot", Gradient: "from-pink-500 to-rose-500", BgGradient: "from-pink-50 to-rose-50", Category: CategoryIT},
	{ID: "mobile-app", Title: "Mobile Banking App", Description: "A secure mobile banking app with biometric login and live transaction history.", Tags: []string{"React Native", "TypeScript", "Biometric", "Encryption"}, Link: "/mobile-bank", Gradient: "from-teal-500 to-cyan-500", BgGradient: "from-teal-50 to-cyan-50", Category: CategoryIT},
	{ID: "data-analytics", Title: "Data Analytics Dashboard", Description: "Real-time data visualisation with charts and drill-down filters.", Tags: []string{"D3.js", "Python", "Pandas", "Chart.js"}, Link: "/analytics", Gradient: "from-amber-500 to-orange-500", BgGradient: "from-amber-50 to-orange-50", Category: CategoryIT},
	{ID: "statistics-dashboard", Title: "Statistics Dashboard", Description: "A dashboard of project statistics with traffic, device and regional breakdowns.", Tags: []string{"Go", "SQLite", "Dashboard"}, Link: "/statistics", Gradient: "from-violet-500 to-purple-500", BgGradient: "from-violet-50 to-purple-50", Featured: true, Category: CategoryIT},
	{ID: "api-explorer", Title: "API Explorer", Description: "Browse users, posts, albums and todos from the public JSONPlaceholder API.", Tags: []string{"Go", "REST", "OpenTelemetry"}, Link: "/api-explorer", Gradient: "from-sky-500 to-indigo-500", BgGradient: "from-sky-50 to-indigo-50", Featured: true, Category: CategoryIT},

	{ID: "smart-grid", Title: "Smart Grid System", Description: "Real-time power monitoring and optimisation with IoT sensors, improving energy efficiency by 30%.", Tags: []string{"IoT", "PLC", "SCADA", "Power Analysis"}, Link: "/electrical/smart-grid", Gradient: "from-yellow-500 to-orange-500", BgGradient: "from-yellow-50 to-orange-50", Featured: true, Category: CategoryElectrical},
	{ID: "automation-control", Title: "Industrial Automation", Description: "PLC and HMI integrated control, raising production efficiency by 40%.", Tags: []string{"PLC", "HMI", "Automation", "Safety Systems"}, Link: "/electrical/automation", Gradient: "from-blue-500 to-cyan-500", BgGradient: "from-blue-50 to-cyan-50", Featured: true, Category: CategoryElectrical},
	{ID: "led-control", Title: "Smart LED Control", Description: "DALI based lighting control balancing energy savings and comfort.", Tags: []string{"DALI", "LED Control", "Energy Saving", "Wireless"}, Link: "/electrical/led-control", Gradient: "from-purple-500 to-pink-500", BgGradient: "from-purple-50 to-pink-50", Category: CategoryElectrical},
	{ID: "power-monitoring", Title: "Power Monitoring System", Description: "Power quality monitoring and analysis that keeps losses low and supply stable.", Tags: []string{"Power Quality", "Monitoring", "Analysis", "Real-time"}, Link: "/electrical/power-monitoring", Gradient: "from-green-500 to-teal-500", BgGradient: "from-green-50 to-teal-50", Category: CategoryElectrical},
	{ID: "motor-control", Title: "Variable Frequency Drive", Description: "Inverter based motor speed control that saves energy and extends motor life.", Tags: []string{"VFD", "Motor Control", "Inverter", "Energy Efficiency"}, Link: "/electrical/vfd", Gradient: "from-red-500 to-pink-500", BgGradient: "from-red-50 to-pink-50", Category: CategoryElectrical},
	{ID: "renewable-energy", Title: "Renewable Energy Integration", Description: "A hybrid solar and wind system for efficient use of renewable generation.", Tags: []string{"Solar", "Wind", "Hybrid", "Renewable Energy"}, Link: "/electrical/renewable", Gradient: "from-lime-500 to-green-500", BgGradient: "from-lime-50 to-green-50", Category: CategoryElectrical},
}

// Projects returns every project in display order.
func Projects() []Project {
	return slices.Clone(projects)
}

type ProjectStats struct {
	Total      int
	Featured   int
	Tags       int
	IT         int
	Electrical int
}

func GetProjectStats() ProjectStats {
	stats := ProjectStats{Total: len(projects)}
	tags := make(map[string]struct{})
	for _, p := range projects {
		if p.Featured {
			stats.Featured++
		}
		switch p.Category {
		case CategoryIT:
			stats.IT++
		case CategoryElectrical:
			stats.Electrical++
		}
		for _, t := range p.Tags {
			tags[t] = struct{}{}
		}
	}
	stats.Tags = len(tags)
	return stats
}

func ProjectByID(id string) (Project, bool) {
	for _, p := range projects {
		if p.ID == id {
			return p, true
		}
	}
	return Project{}, false
}

func FeaturedProjects() []Project {
	var out []Project
	for _, p := range projects {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}

func ProjectsByCategory(c Category) []Project {
	if c == CategoryAll {
		return Projects()
	}
	var out []Project
	for _, p := range projects {
		if p.Category == c {
			out = append(out, p)
		}
	}
	return out
}

func ProjectsPage(c Category, page, perPage int) Page[Project] {
	return Paginate(ProjectsByCategory(c), page, perPage)
}
