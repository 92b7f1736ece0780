package competition

// Season is the running season of a competition as reported upstream.
type Season struct {
	ID              int64
	StartDate       string
	EndDate         string
	CurrentMatchday int
}

// Competition is a league or cup exposed by the football data provider.
type Competition struct {
	ID            int64
	Name          string
	Code          string
	Emblem        string
	CurrentSeason *Season
}

// Featured returns the first n competitions in upstream order.
func Featured(items []Competition, n int) []Competition {
	if n <= 0 {
		return []Competition{}
	}
	if len(items) < n {
		n = len(items)
	}
	out := make([]Competition, n)
	copy(out, items[:n])
	return out
}
