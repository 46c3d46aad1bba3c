package layout

import (
	"fmt"
	"strings"
)

// Kind selects the chrome a route subtree is rendered inside.
type Kind int

const (
	None Kind = iota
	Main
	Dashboard
	APIExplorer
)

var kindNames = [...]string{
	None:        "none",
	Main:        "main",
	Dashboard:   "dashboard",
	APIExplorer: "api-explorer",
}

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("layout(%d)", int(k))
	}
	return kindNames[k]
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool {
	return k >= None && int(k) < len(kindNames)
}

// ParseKind maps a layout name back to its Kind. "statistics" and "pages"
// are accepted as aliases for Dashboard and Main.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return None, nil
	case "main", "pages":
		return Main, nil
	case "dashboard", "statistics":
		return Dashboard, nil
	case "api-explorer", "apiexplorer":
		return APIExplorer, nil
	}
	return None, fmt.Errorf("unknown layout %q", s)
}

// Options fine-tune the Main chrome. They are ignored by the other kinds.
type Options struct {
	ShowHeader bool
	ShowFooter bool
}

func DefaultOptions() Options {
	return Options{ShowHeader: true, ShowFooter: true}
}
