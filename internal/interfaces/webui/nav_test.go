package webui

import "testing"

func TestBuildNav_ExactlyOneActive(t *testing.T) {
	cases := []struct {
		path   string
		active string
	}{
		{path: "/", active: "Home"},
		{path: "", active: "Home"},
		{path: "/teams", active: "Teams"},
		{path: "/teams/", active: "Teams"},
		{path: "/matches?competition=2021", active: "Matches"},
		{path: "/statistics", active: "Statistics"},
		{path: "/players/44", active: ""},
		{path: "/teamsx", active: ""},
	}

	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			links := BuildNav(tc.path)
			if len(links) != 4 {
				t.Fatalf("expected 4 links, got %d", len(links))
			}
			activeCount := 0
			for _, link := range links {
				if link.Active {
					activeCount++
					if link.Label != tc.active {
						t.Fatalf("expected %q active, got %q", tc.active, link.Label)
					}
				}
			}
			want := 1
			if tc.active == "" {
				want = 0
			}
			if activeCount != want {
				t.Fatalf("expected %d active links, got %d", want, activeCount)
			}
		})
	}
}
