package view

import (
	"fmt"
	"html/template"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

func funcMap(basePath string) template.FuncMap {
	return template.FuncMap{
		"url": func(path string) string {
			return JoinURL(basePath, path)
		},
		"join": strings.Join,
		"add":  func(a, b int) int { return a + b },
		"sub":  func(a, b int) int { return a - b },
		"seq": func(from, to int) []int {
			var out []int
			for i := from; i <= to; i++ {
				out = append(out, i)
			}
			return out
		},
		"number": FormatNumber,
		"percent": func(part, total int) string {
			if total == 0 {
				return "0%"
			}
			return fmt.Sprintf("%d%%", part*100/total)
		},
		"safe": func(s string) template.HTML {
			return template.HTML(s)
		},
	}
}

// JoinURL prefixes path with the mount prefix, keeping exactly one slash
// between them.
func JoinURL(basePath, path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") || strings.HasPrefix(path, "#") {
		return path
	}
	base := strings.TrimRight(basePath, "/")
	if path == "" || path == "/" {
		if base == "" {
			return "/"
		}
		return base + "/"
	}
	return base + "/" + strings.TrimLeft(path, "/")
}

// FormatNumber renders n with thousands separators.
func FormatNumber(n int) string {
	return printer.Sprintf("%d", n)
}
