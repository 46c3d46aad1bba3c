package route

import (
	"fmt"
	"io"
	"strings"
)

// Print writes the resolved tree, one route per line, indented by depth.
func Print(w io.Writer, routes Routes) error {
	return printLevel(w, routes, 0)
}

func printLevel(w io.Writer, routes []Route, depth int) error {
	for _, rt := range routes {
		path := rt.Path
		if rt.Index {
			path = "(index)"
		}

		var attrs []string
		if rt.Element.Wrapped() {
			attrs = append(attrs, "layout="+rt.Element.Layout.String())
			if !rt.Element.Options.ShowHeader {
				attrs = append(attrs, "no-header")
			}
			if !rt.Element.Options.ShowFooter {
				attrs = append(attrs, "no-footer")
			}
		}
		name := "<outlet>"
		if rt.Element.Component != nil {
			name = rt.Element.Component.Name()
		}

		line := fmt.Sprintf("%s%-24s %s", strings.Repeat("  ", depth), path, name)
		if len(attrs) > 0 {
			line += "  [" + strings.Join(attrs, " ") + "]"
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
		if err := printLevel(w, rt.Children, depth+1); err != nil {
			return err
		}
	}
	return nil
}
