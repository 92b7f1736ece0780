package webui

import "strings"

type NavLink struct {
	Label  string
	Path   string
	Active bool
}

var navRoutes = []NavLink{
	{Label: "Home", Path: "/"},
	{Label: "Teams", Path: "/teams"},
	{Label: "Matches", Path: "/matches"},
	{Label: "Statistics", Path: "/statistics"},
}

// BuildNav returns the navigation links with at most one marked active: the one whose
// path equals requestPath. Player profiles have no nav entry and highlight nothing.
func BuildNav(requestPath string) []NavLink {
	current := normalizePath(requestPath)

	out := make([]NavLink, len(navRoutes))
	for i, link := range navRoutes {
		link.Active = link.Path == current
		out[i] = link
	}
	return out
}

func normalizePath(path string) string {
	path = strings.TrimSpace(path)
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	if path == "" {
		return "/"
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
		if path == "" {
			return "/"
		}
	}
	return path
}
