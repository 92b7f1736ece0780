package match

import (
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/football-pulse/internal/domain/team"
)

type Status string

const (
	StatusScheduled Status = "SCHEDULED"
	StatusTimed     Status = "TIMED"
	StatusInPlay    Status = "IN_PLAY"
	StatusPaused    Status = "PAUSED"
	StatusFinished  Status = "FINISHED"
	StatusSuspended Status = "SUSPENDED"
	StatusPostponed Status = "POSTPONED"
	StatusCancelled Status = "CANCELLED"
	StatusAwarded   Status = "AWARDED"
)

// UndecidedTeam names a fixture side that is not known yet.
const UndecidedTeam = "TBD"

// Tone is the visual emphasis of a status chip.
type Tone string

const (
	ToneSuccess Tone = "success"
	ToneWarning Tone = "warning"
	ToneInfo    Tone = "info"
	ToneDefault Tone = "default"
)

// Tone maps a status to its chip tone, ignoring case.
func (s Status) Tone() Tone {
	switch Status(strings.ToUpper(strings.TrimSpace(string(s)))) {
	case StatusFinished:
		return ToneSuccess
	case StatusInPlay:
		return ToneWarning
	case StatusScheduled:
		return ToneInfo
	default:
		return ToneDefault
	}
}

// Label renders a status for display, e.g. IN_PLAY becomes "In Play".
func (s Status) Label() string {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(string(s))), "_")
	for i, part := range parts {
		if part == "" {
			continue
		}
		parts[i] = strings.ToUpper(part[:1]) + part[1:]
	}
	return strings.Join(parts, " ")
}

type CompetitionRef struct {
	ID   int64
	Name string
}

// FullTime holds the final score. Home and Away are both nil or both set.
type FullTime struct {
	Home *int
	Away *int
}

type Match struct {
	ID          int64
	Competition CompetitionRef
	HomeTeam    team.Ref
	AwayTeam    team.Ref
	FullTime    FullTime
	UTCDate     time.Time
	Status      Status
}

// ScoreLine is "vs" before a result exists and "H - A" afterwards.
func (m Match) ScoreLine() string {
	if m.FullTime.Home == nil || m.FullTime.Away == nil {
		return "vs"
	}
	return fmt.Sprintf("%d - %d", *m.FullTime.Home, *m.FullTime.Away)
}

// LocalDate formats the kickoff in loc. A nil loc means time.Local.
func (m Match) LocalDate(loc *time.Location) string {
	if m.UTCDate.IsZero() {
		return ""
	}
	if loc == nil {
		loc = time.Local
	}
	return m.UTCDate.In(loc).Format("Mon, 02 Jan 2006 15:04")
}
