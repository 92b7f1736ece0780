package player

import (
	"strings"
	"unicode"
)

// Progress bar scales used on the player overview.
const (
	GoalsScale         = 20
	AssistsScale       = 15
	MinutesPlayedScale = 3420
)

// Player is a squad member as listed by the provider.
type Player struct {
	ID          int64
	Name        string
	Position    string
	DateOfBirth string
	Nationality string
	ShirtNumber *int
	LastUpdated string
}

// Club is the team a player currently plays for.
type Club struct {
	ID    int64
	Name  string
	Crest string
}

// StatEntry is one numeric statistic with a display label.
type StatEntry struct {
	Key   string
	Label string
	Value float64
}

type Statistics struct {
	Goals         int
	Assists       int
	MinutesPlayed int
	// Entries holds every numeric statistic, sorted by key.
	Entries []StatEntry
}

type CareerEntry struct {
	Team         string
	Period       string
	Role         string
	Achievements string
}

// Profile is the extended player view. Fields beyond Player are optional upstream
// and stay zero when absent.
type Profile struct {
	Player
	Photo        string
	Team         *Club
	Statistics   Statistics
	Achievements []string
	Career       []CareerEntry
}

func (s Statistics) GoalsProgress() int {
	return ProgressPercent(s.Goals, GoalsScale)
}

func (s Statistics) AssistsProgress() int {
	return ProgressPercent(s.Assists, AssistsScale)
}

func (s Statistics) MinutesProgress() int {
	return ProgressPercent(s.MinutesPlayed, MinutesPlayedScale)
}

// ProgressPercent scales value against max into [0, 100].
func ProgressPercent(value, max int) int {
	if max <= 0 || value <= 0 {
		return 0
	}
	pct := value * 100 / max
	if pct > 100 {
		return 100
	}
	return pct
}

// HumanizeKey turns a camelCase statistic key into a title, e.g.
// "minutesPlayed" becomes "Minutes Played".
func HumanizeKey(key string) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return ""
	}

	var b strings.Builder
	runes := []rune(key)
	for i, r := range runes {
		if r == '_' {
			b.WriteRune(' ')
			continue
		}
		if i > 0 && unicode.IsUpper(r) && !unicode.IsUpper(runes[i-1]) && runes[i-1] != '_' {
			b.WriteRune(' ')
		}
		if i == 0 || (i > 0 && (runes[i-1] == '_')) {
			r = unicode.ToUpper(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}
