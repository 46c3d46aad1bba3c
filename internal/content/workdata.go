package content

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
)

type WorkStatus string

const (
	StatusCompleted  WorkStatus = "completed"
	StatusInProgress WorkStatus = "inprogress"
	StatusPending    WorkStatus = "pending"
)

type WorkItem struct {
	ID          int
	Title       string
	Category    string
	Status      WorkStatus
	Date        string
	Progress    int
	Assignee    string
	Priority    string
	Description string
}

var workItems = []WorkItem{
	{ID: 1, Title: "Refactor React components", Category: "development", Status: StatusCompleted, Date: "2024-01-15", Progress: 100, Assignee: "Kim Dev", Priority: "high", Description: "Performance tuning and cleanup of existing components"},
	{ID: 2, Title: "Write API test cases", Category: "test", Status: StatusInProgress, Date: "2024-01-14", Progress: 75, Assignee: "Lee Test", Priority: "medium", Description: "Test cases and verification for REST API endpoints"},
	{ID: 3, Title: "Build UI/UX design system", Category: "design", Status: StatusPending, Date: "2024-01-13", Progress: 30, Assignee: "Park Design", Priority: "low", Description: "Component design for a consistent design system"},
	{ID: 4, Title: "Project documentation", Category: "document", Status: StatusCompleted, Date: "2024-01-12", Progress: 100, Assignee: "Choi Docs", Priority: "medium", Description: "API documentation and user guide"},
	{ID: 5, Title: "Code review and quality checks", Category: "review", Status: StatusInProgress, Date: "2024-01-11", Progress: 60, Assignee: "Jung Review", Priority: "high", Description: "Improve the code quality and review process"},
	{ID: 6, Title: "Database optimisation", Category: "development", Status: StatusCompleted, Date: "2024-01-10", Progress: 100, Assignee: "Kim Dev", Priority: "high", Description: "Query tuning and index improvements"},
	{ID: 7, Title: "Security vulnerability audit", Category: "security", Status: StatusInProgress, Date: "2024-01-09", Progress: 45, Assignee: "Lee Security", Priority: "high", Description: "Find and fix application security issues"},
	{ID: 8, Title: "Set up performance monitoring", Category: "operation", Status: StatusPending, Date: "2024-01-08", Progress: 20, Assignee: "Park Ops", Priority: "medium", Description: "Configure application performance monitoring tools"},
}

// WorkCategories and WorkPriorities list the filter options in display order.
var (
	WorkCategories = []string{"development", "test", "design", "document", "review", "security", "operation"}
	WorkPriorities = []string{"high", "medium", "low"}
	WorkStatuses   = []WorkStatus{StatusCompleted, StatusInProgress, StatusPending}
)

func WorkItems() []WorkItem {
	out := make([]WorkItem, len(workItems))
	copy(out, workItems)
	return out
}

// WorkFilter narrows the work item table. Empty or "all" fields match
// everything.
type WorkFilter struct {
	Keyword  string
	Status   string
	Category string
	Priority string
}

// FilterWork applies f to items. The keyword matches title, description and
// assignee case-insensitively.
func FilterWork(items []WorkItem, f WorkFilter) []WorkItem {
	fold := cases.Fold()
	keyword := fold.String(strings.TrimSpace(f.Keyword))
	var out []WorkItem
	for _, it := range items {
		if keyword != "" &&
			!strings.Contains(fold.String(it.Title), keyword) &&
			!strings.Contains(fold.String(it.Description), keyword) &&
			!strings.Contains(fold.String(it.Assignee), keyword) {
			continue
		}
		if !matchOption(f.Status, string(it.Status)) ||
			!matchOption(f.Category, it.Category) ||
			!matchOption(f.Priority, it.Priority) {
			continue
		}
		out = append(out, it)
	}
	return out
}

func matchOption(want, got string) bool {
	return want == "" || want == "all" || want == got
}

// CountByStatus tallies items per status.
func CountByStatus(items []WorkItem) map[WorkStatus]int {
	out := make(map[WorkStatus]int, len(WorkStatuses))
	for _, it := range items {
		out[it.Status]++
	}
	return out
}

var workCSVHeader = []string{"ID", "Title", "Category", "Status", "Progress", "Assignee", "Priority", "Date", "Description"}

// utf8BOM makes spreadsheet applications detect the encoding.
const utf8BOM = "\ufeff"

// WriteWorkCSV writes items as CSV prefixed with a UTF-8 byte order mark.
func WriteWorkCSV(w io.Writer, items []WorkItem) error {
	if _, err := io.WriteString(w, utf8BOM); err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(workCSVHeader); err != nil {
		return err
	}
	for _, it := range items {
		if err := cw.Write([]string{
			strconv.Itoa(it.ID),
			it.Title,
			it.Category,
			string(it.Status),
			strconv.Itoa(it.Progress),
			it.Assignee,
			it.Priority,
			it.Date,
			it.Description,
		}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
