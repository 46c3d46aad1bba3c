package content

// NavItem is a link in the header or footer.
type NavItem struct {
	Label    string
	Href     string
	External bool
}

// SocialLink is an external profile shown in the footer.
type SocialLink struct {
	Name string
	Href string
	Icon string // SVG path data
}

// CategoryOption describes a project filter tab.
type CategoryOption struct {
	Label    string
	Value    Category
	Color    string
	Gradient string
}

type Site struct {
	Name        string
	Title       string
	Description string
	Author      string
	Email       string
	Version     string

	AboutMe   string
	Header    []NavItem
	Footer    []NavItem
	Social    []SocialLink
	Frontend  []string
	Backend   []string
	Education []Experience
	Work      []Experience
}

// Experience is one entry of the about page's work or education history.
type Experience struct {
	Title     string
	Place     string
	StartDate string
	EndDate   string
	Bullets   []string
}

var aboutMe = `I love building software that is both useful and fun, and I am always curious about how things work behind the scenes.
Most of my projects start with a simple idea and turn into a chance to learn something new, whether it is exploring a
different language, experimenting with tools, or solving tricky problems. The projects here range from web services and
dashboards to electrical engineering work on power systems and automation.`

// DefaultSite is the portfolio's static configuration.
func DefaultSite() Site {
	return Site{
		Name:        "JeongRyongWoo",
		Title:       "JeongRyongWoo Portfolio",
		Description: "Building better digital experiences with practical engineering and creative ideas.",
		Author:      "JeongRyongWoo",
		Email:       "contact@example.com",
		Version:     "1.0.0",
		AboutMe:     aboutMe,
		Header: []NavItem{
			{Label: "About", Href: "/about"},
			{Label: "Projects", Href: "/projects"},
			{Label: "Blog", Href: "/blog"},
			{Label: "Contact", Href: "/#contact"},
		},
		Footer: []NavItem{
			{Label: "About", Href: "/about"},
			{Label: "Projects", Href: "/projects"},
			{Label: "Blog", Href: "/blog"},
			{Label: "Privacy", Href: "/privacy"},
		},
		Social: []SocialLink{
			{Name: "GitHub", Href: "https://github.com/ziguin0925", Icon: "M15 3C8.37 3 3 8.37 3 15c0 5.62 3.87 10.33 9.09 11.63v-4.63c-3.4.74-4.12-1.45-4.12-1.45-.56-1.41-1.36-1.79-1.36-1.79-1.11-.76.08-.74.08-.74 1.23.09 1.88 1.26 1.88 1.26 1.09 1.87 2.86 1.33 3.56 1.02.11-.79.43-1.33.78-1.64-2.72-.31-5.58-1.36-5.58-6.05 0-1.34.48-2.43 1.26-3.29-.13-.31-.55-1.56.12-3.25 0 0 1.03-.33 3.37 1.26a11.7 11.7 0 0 1 6.14 0c2.34-1.59 3.37-1.26 3.37-1.26.67 1.69.25 2.94.12 3.25.79.86 1.26 1.95 1.26 3.29 0 4.7-2.87 5.74-5.6 6.04.44.38.83 1.13.83 2.28v3.38C23.64 24.68 27 20.24 27 15 27 8.37 21.63 3 15 3z"},
			{Name: "Instagram", Href: "https://www.instagram.com/ryong_w0_0", Icon: "M10 3C6.14 3 3 6.14 3 10v10c0 3.86 3.14 7 7 7h10c3.86 0 7-3.14 7-7V10c0-3.86-3.14-7-7-7H10zm12 4a1 1 0 1 1 0 2 1 1 0 0 1 0-2zm-7 2a6 6 0 1 1 0 12 6 6 0 0 1 0-12zm0 2a4 4 0 1 0 0 8 4 4 0 0 0 0-8z"},
		},
		Frontend: []string{"React", "TypeScript"},
		Backend:  []string{"Java", "Spring", "Python", "NEST.js", "Go"},
		Work: []Experience{
			{
				Title:     "Software Engineer",
				Place:     "Freelance",
				StartDate: "Mar 2023",
				EndDate:   "Present",
				Bullets: []string{
					"Built dashboards and content sites for small teams, from data model to deployment",
					"Integrated third-party REST APIs with careful handling of failures and slow responses",
				},
			},
			{
				Title:     "Electrical Engineer",
				Place:     "Power Systems Lab",
				StartDate: "Jan 2020",
				EndDate:   "Feb 2023",
				Bullets: []string{
					"Designed monitoring for low-voltage distribution panels using PLC and SCADA",
					"Reduced energy consumption of a pilot site by 30% through load analysis",
				},
			},
		},
		Education: []Experience{
			{
				Title:     "B.S. Electrical Engineering",
				Place:     "University",
				StartDate: "Mar 2014",
				EndDate:   "Feb 2020",
				Bullets: []string{
					"Power systems, control engineering and embedded programming",
				},
			},
		},
	}
}

// Categories lists the project filter tabs in display order.
func Categories() []CategoryOption {
	return []CategoryOption{
		{Label: "All", Value: CategoryAll, Color: "#6B7280", Gradient: "from-gray-600 to-slate-600"},
		{Label: "IT", Value: CategoryIT, Color: "#0064FF", Gradient: "from-blue-600 to-cyan-600"},
		{Label: "Electrical", Value: CategoryElectrical, Color: "#FF6B35", Gradient: "from-yellow-600 to-orange-600"},
	}
}
