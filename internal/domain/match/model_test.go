package match

import (
	"testing"
	"time"
)

func intPtr(v int) *int { return &v }

func TestMatch_ScoreLine(t *testing.T) {
	cases := []struct {
		name string
		ft   FullTime
		want string
	}{
		{name: "not played", ft: FullTime{}, want: "vs"},
		{name: "finished", ft: FullTime{Home: intPtr(2), Away: intPtr(1)}, want: "2 - 1"},
		{name: "goalless", ft: FullTime{Home: intPtr(0), Away: intPtr(0)}, want: "0 - 0"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := (Match{FullTime: tc.ft}).ScoreLine(); got != tc.want {
				t.Fatalf("ScoreLine()=%q want %q", got, tc.want)
			}
		})
	}
}

func TestStatus_Tone(t *testing.T) {
	cases := map[Status]Tone{
		StatusFinished:  ToneSuccess,
		"finished":      ToneSuccess,
		StatusInPlay:    ToneWarning,
		"In_Play":       ToneWarning,
		StatusScheduled: ToneInfo,
		StatusTimed:     ToneDefault,
		StatusPostponed: ToneDefault,
		"":              ToneDefault,
	}
	for status, want := range cases {
		if got := status.Tone(); got != want {
			t.Fatalf("Tone(%q)=%q want %q", status, got, want)
		}
	}
}

func TestStatus_Label(t *testing.T) {
	if got := StatusInPlay.Label(); got != "In Play" {
		t.Fatalf("unexpected label: %q", got)
	}
	if got := StatusFinished.Label(); got != "Finished" {
		t.Fatalf("unexpected label: %q", got)
	}
}

func TestMatch_LocalDate(t *testing.T) {
	m := Match{UTCDate: time.Date(2026, 8, 15, 14, 0, 0, 0, time.UTC)}
	jakarta := time.FixedZone("WIB", 7*60*60)

	if got := m.LocalDate(jakarta); got != "Sat, 15 Aug 2026 21:00" {
		t.Fatalf("unexpected local date: %q", got)
	}
	if got := (Match{}).LocalDate(jakarta); got != "" {
		t.Fatalf("expected empty date for zero time, got %q", got)
	}
}
