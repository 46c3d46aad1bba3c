package content

// MenuItem is an entry of the statistics dashboard sidebar.
type MenuItem struct {
	Path  string
	Text  string
	Code  string
	Group int
	Icon  string
}

var statisticsMenu = []MenuItem{
	{Path: "/statistics/overview", Text: "Overview", Code: "STAT_001", Group: 0, Icon: "chart-bar"},
	{Path: "/statistics/analytics", Text: "Analytics", Code: "STAT_002", Group: 0, Icon: "presentation-chart"},
	{Path: "/statistics/geographic", Text: "Regions", Code: "STAT_003", Group: 0, Icon: "map"},
	{Path: "/statistics/devices", Text: "Devices", Code: "STAT_004", Group: 0, Icon: "device-mobile"},
	{Path: "/statistics/projects", Text: "Projects", Code: "STAT_005", Group: 0, Icon: "cpu-chip"},
	{Path: "/statistics/users", Text: "Users", Code: "STAT_006", Group: 0, Icon: "user-group"},
	{Path: "/statistics/email", Text: "Email", Code: "STAT_007", Group: 0, Icon: "globe"},
	{Path: "/statistics/calendar", Text: "Calendar", Code: "STAT_008", Group: 0, Icon: "bolt"},

	{Path: "/statistics/work-data-1", Text: "Work data 1", Code: "STAT_101", Group: 1, Icon: "document-chart"},
	{Path: "/statistics/work-data-2", Text: "Work data 2", Code: "STAT_102", Group: 1, Icon: "document-chart"},
	{Path: "/statistics/work-data-3", Text: "Work data 3", Code: "STAT_103", Group: 1, Icon: "document-chart"},
}

// MenuGroupTitles names the sidebar sections by group index.
var MenuGroupTitles = []string{"Dashboard", "Work data"}

func StatisticsMenu() []MenuItem {
	out := make([]MenuItem, len(statisticsMenu))
	copy(out, statisticsMenu)
	return out
}

func MenuByGroup(group int) []MenuItem {
	var out []MenuItem
	for _, m := range statisticsMenu {
		if m.Group == group {
			out = append(out, m)
		}
	}
	return out
}

func MenuItemByPath(path string) (MenuItem, bool) {
	for _, m := range statisticsMenu {
		if m.Path == path {
			return m, true
		}
	}
	return MenuItem{}, false
}

// CheckMenuPermission grants every menu code. Dashboard pages are public.
func CheckMenuPermission(code string, permissions []string) bool {
	return true
}

type MonthlyTraffic struct {
	Month    string
	Visits   int
	Users    int
	Projects int
}

type Share struct {
	Name    string
	Value   int
	Percent int
	Color   string
}

type StatCard struct {
	Title  string
	Value  string
	Change string
	Up     bool
}

type DashboardUser struct {
	Name     string
	Email    string
	Role     string
	Status   string
	LastSeen string
}

type EmailMessage struct {
	From    string
	Subject string
	Date    string
	Unread  bool
}

type CalendarEvent struct {
	Date  string
	Time  string
	Title string
	Kind  string
}

// Dashboard holds the sample data behind the statistics pages.
type Dashboard struct {
	Cards    []StatCard
	Monthly  []MonthlyTraffic
	Category []Share
	Devices  []Share
	Browsers []Share
	Systems  []Share
	Screens  []Share
	Regions  []Share
	Users    []DashboardUser
	Emails   []EmailMessage
	Events   []CalendarEvent
}

func SampleDashboard() Dashboard {
	return Dashboard{
		Cards: []StatCard{
			{Title: "Total visitors", Value: "12,345", Change: "+12%", Up: true},
			{Title: "Page views", Value: "45,678", Change: "+8%", Up: true},
			{Title: "Avg. time on site", Value: "3:42", Change: "-5%"},
			{Title: "Bounce rate", Value: "32.1%", Change: "-3%", Up: true},
		},
		Monthly: []MonthlyTraffic{
			{Month: "Jan", Visits: 4000, Users: 2400, Projects: 2400},
			{Month: "Feb", Visits: 3000, Users: 1398, Projects: 2210},
			{Month: "Mar", Visits: 2000, Users: 9800, Projects: 2290},
			{Month: "Apr", Visits: 2780, Users: 3908, Projects: 2000},
			{Month: "May", Visits: 1890, Users: 4800, Projects: 2181},
			{Month: "Jun", Visits: 2390, Users: 3800, Projects: 2500},
		},
		Category: []Share{
			{Name: "IT projects", Value: 45, Percent: 45, Color: "#3B82F6"},
			{Name: "Electrical projects", Value: 30, Percent: 30, Color: "#10B981"},
			{Name: "Other", Value: 25, Percent: 25, Color: "#F59E0B"},
		},
		Devices: []Share{
			{Name: "Desktop", Value: 4000, Percent: 60, Color: "#3B82F6"},
			{Name: "Mobile", Value: 2500, Percent: 35, Color: "#10B981"},
			{Name: "Tablet", Value: 500, Percent: 5, Color: "#F59E0B"},
		},
		Browsers: []Share{
			{Name: "Chrome", Value: 6500, Percent: 65, Color: "#4285F4"},
			{Name: "Safari", Value: 1800, Percent: 18, Color: "#0FB5EE"},
			{Name: "Firefox", Value: 900, Percent: 9, Color: "#FF7139"},
			{Name: "Edge", Value: 600, Percent: 6, Color: "#0078D7"},
			{Name: "Other", Value: 200, Percent: 2, Color: "#9CA3AF"},
		},
		Systems: []Share{
			{Name: "Windows", Value: 4500, Percent: 45, Color: "#0078D4"},
			{Name: "macOS", Value: 2500, Percent: 25, Color: "#A3AAAE"},
			{Name: "iOS", Value: 1500, Percent: 15, Color: "#000000"},
			{Name: "Android", Value: 1200, Percent: 12, Color: "#3DDC84"},
			{Name: "Linux", Value: 300, Percent: 3, Color: "#FCC624"},
		},
		Screens: []Share{
			{Name: "1920x1080", Value: 3500, Percent: 35, Color: "#6366F1"},
			{Name: "1366x768", Value: 2000, Percent: 20, Color: "#8B5CF6"},
			{Name: "390x844", Value: 1800, Percent: 18, Color: "#EC4899"},
			{Name: "2560x1440", Value: 1500, Percent: 15, Color: "#14B8A6"},
			{Name: "Other", Value: 1200, Percent: 12, Color: "#9CA3AF"},
		},
		Regions: []Share{
			{Name: "Seoul", Value: 4200, Percent: 42, Color: "#3B82F6"},
			{Name: "Gyeonggi", Value: 2300, Percent: 23, Color: "#10B981"},
			{Name: "Busan", Value: 1200, Percent: 12, Color: "#F59E0B"},
			{Name: "Incheon", Value: 900, Percent: 9, Color: "#EF4444"},
			{Name: "Daegu", Value: 800, Percent: 8, Color: "#8B5CF6"},
			{Name: "Other", Value: 600, Percent: 6, Color: "#9CA3AF"},
		},
		Users: []DashboardUser{
			{Name: "Kim Dev", Email: "kim@example.com", Role: "Admin", Status: "active", LastSeen: "2024-01-15"},
			{Name: "Lee Test", Email: "lee@example.com", Role: "Editor", Status: "active", LastSeen: "2024-01-14"},
			{Name: "Park Design", Email: "park@example.com", Role: "Viewer", Status: "inactive", LastSeen: "2023-12-02"},
			{Name: "Choi Docs", Email: "choi@example.com", Role: "Editor", Status: "active", LastSeen: "2024-01-12"},
		},
		Emails: []EmailMessage{
			{From: "GitHub", Subject: "Your weekly repository digest", Date: "2024-01-15", Unread: true},
			{From: "Kim Dev", Subject: "Re: dashboard refactoring", Date: "2024-01-14", Unread: true},
			{From: "Newsletter", Subject: "Frontend news this week", Date: "2024-01-12"},
		},
		Events: []CalendarEvent{
			{Date: "2024-01-16", Time: "10:00", Title: "Sprint planning", Kind: "meeting"},
			{Date: "2024-01-17", Time: "14:00", Title: "Design review", Kind: "review"},
			{Date: "2024-01-19", Time: "09:30", Title: "Release 1.2", Kind: "deadline"},
		},
	}
}
