package webui

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/football-pulse/internal/domain/competition"
	"github.com/riskibarqy/football-pulse/internal/platform/logging"
)

func TestLoad_TransitionsFromLoading(t *testing.T) {
	view := Loading[[]string]()
	if !view.IsLoading() || view.Data != nil {
		t.Fatalf("expected empty loading view, got %+v", view)
	}

	view = load(context.Background(), logging.NewNop(), "teams", "teams", func(context.Context) ([]string, error) {
		return []string{"a", "b"}, nil
	})
	if !view.IsReady() || len(view.Data) != 2 || view.Error != "" {
		t.Fatalf("expected ready view, got %+v", view)
	}

	view = load(context.Background(), logging.NewNop(), "teams", "teams", func(context.Context) ([]string, error) {
		return nil, errors.New("timeout")
	})
	if !view.IsError() || view.Error != "Failed to load teams. Please try again later." {
		t.Fatalf("expected error view, got %+v", view)
	}
}

func TestFragmentURL_KeepsWhitelistedKeys(t *testing.T) {
	got := fragmentURL("/view/statistics", map[string][]string{
		"competition": {"2021"},
		"tab":         {"standings"},
		"debug":       {"1"},
	}, "competition", "tab")
	if got != "/view/statistics?competition=2021&tab=standings" {
		t.Fatalf("unexpected fragment url %q", got)
	}
	if got := fragmentURL("/view/home", nil); got != "/view/home" {
		t.Fatalf("unexpected fragment url %q", got)
	}
}

func TestSelectorView_MatchesIDOrCode(t *testing.T) {
	pl := competition.Competition{ID: 2021, Code: "PL", Name: "Premier League"}
	pd := competition.Competition{ID: 2014, Code: "PD", Name: "Primera Division"}

	cases := map[string]struct {
		selected string
		want     bool
	}{
		"numeric id":  {selected: "2021", want: true},
		"code":        {selected: "PL", want: true},
		"lower code":  {selected: "pl", want: true},
		"other code":  {selected: "PD", want: false},
		"no selected": {selected: "", want: false},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			s := selectorView{Selected: tc.selected}
			if got := s.IsSelected(pl); got != tc.want {
				t.Fatalf("IsSelected(%q) = %v, want %v", tc.selected, got, tc.want)
			}
		})
	}

	if (selectorView{Selected: "PL"}).IsSelected(pd) {
		t.Fatalf("expected PD not to match PL selection")
	}
}
